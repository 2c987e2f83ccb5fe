package stack

// Top and bottom stacks are formed on a flat arrangement, after the scroll
// offset has been applied and the window filled. Scrolling in either direction
// runs both routines: the one on the leading edge collapses items that just
// crossed a boundary, the one on the trailing edge collapses what expansion
// spread out at the start of the step.

// formTopStack collapses the items above the top boundary onto the slot grid
// below the top edge, releasing those beyond the maximum depth.
func (m *Manager) formTopStack() {
	g := m.geom
	boundary := g.TopBoundary()

	n := topStackCount(m.cache.items, boundary)
	for n > g.MaxDepth {
		m.release(m.cache.removeAt(0))
		n--
	}
	if n == 0 || n == m.cache.len() {
		// Without an item below the boundary there is nothing to keep the
		// flat arrangement recoverable from, so the items stay where they are.
		return
	}

	edge := g.Margins.Top
	for i := 0; i < n; i++ {
		it := m.cache.at(i)
		if it.top < edge {
			it.moveTo(edge)
		}
		edge = it.top + g.SlotHeight
	}

	limit := min(m.cache.at(n).top-g.SlotHeight, boundary-1)
	for i := n - 1; i >= 0; i-- {
		it := m.cache.at(i)
		if it.top > limit {
			it.moveTo(limit)
		}
		limit = it.top - g.SlotHeight
	}
}

// formBottomStack collapses the items at or below the bottom boundary onto the
// slot grid above the bottom edge, releasing those beyond the maximum depth.
func (m *Manager) formBottomStack() {
	g := m.geom
	boundary := g.BottomBoundary()

	pivot := max(
		beforeBottomPos(m.cache.items, boundary),
		anchorPos(m.cache.items, g.TopBoundary()),
	)
	if pivot < 0 {
		return
	}

	depth := g.MaxDepth
	if m.cache.at(pivot).top >= boundary {
		depth--
	}
	for m.cache.len()-pivot-1 > depth {
		m.release(m.cache.removeAt(m.cache.len() - 1))
	}
	start := pivot + 1
	if start >= m.cache.len() {
		return
	}

	edge := g.ViewportHeight - g.Margins.Bottom - g.SlotHeight
	for i := m.cache.len() - 1; i >= start; i-- {
		it := m.cache.at(i)
		if it.top > edge {
			it.moveTo(edge)
		}
		edge = it.top - g.SlotHeight
	}

	limit := max(m.cache.at(pivot).top+g.SlotHeight, boundary)
	for i := start; i < m.cache.len(); i++ {
		it := m.cache.at(i)
		if it.top < limit {
			it.moveTo(limit)
		}
		limit = it.top + g.SlotHeight
	}
}
