package stack

// The queries below read an ordered item slice and never mutate it. They are
// evaluated on every call because stack formation moves items between calls.

// anchorPos returns the position of the first item whose top edge is at or
// below the top boundary, or -1.
func anchorPos(items []*Item, topBoundary int) int {
	for i, it := range items {
		if it.top >= topBoundary {
			return i
		}
	}
	return -1
}

// beforeBottomPos returns the position of the last item whose top edge is above
// the bottom boundary, or -1.
func beforeBottomPos(items []*Item, bottomBoundary int) int {
	for i := len(items) - 1; i >= 0; i-- {
		if items[i].top < bottomBoundary {
			return i
		}
	}
	return -1
}

func topStackCount(items []*Item, topBoundary int) int {
	n := 0
	for _, it := range items {
		if it.top < topBoundary {
			n++
		}
	}
	return n
}

func bottomStackCount(items []*Item, bottomBoundary int) int {
	n := 0
	for _, it := range items {
		if it.top >= bottomBoundary {
			n++
		}
	}
	return n
}
