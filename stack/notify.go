package stack

// pendingChanges records data changes reported since the last layout. Indices
// are kept in the collection's current index space.
type pendingChanges struct {
	inserted map[int]struct{}
	changed  map[int]struct{}
	removed  []*Item
	full     bool
}

func (p *pendingChanges) empty() bool {
	return len(p.inserted) == 0 && len(p.changed) == 0 && len(p.removed) == 0 && !p.full
}

func (p *pendingChanges) reset() {
	clear(p.inserted)
	clear(p.changed)
	clear(p.removed)
	p.removed = p.removed[:0]
	p.full = false
}

func (p *pendingChanges) isInserted(index int) bool {
	_, ok := p.inserted[index]
	return ok
}

func (p *pendingChanges) isChanged(index int) bool {
	_, ok := p.changed[index]
	return ok
}

// remap moves every recorded index through f. Indices for which f reports
// false are dropped.
func (p *pendingChanges) remap(f func(int) (int, bool)) {
	p.inserted = remapSet(p.inserted, f)
	p.changed = remapSet(p.changed, f)
}

func remapSet(set map[int]struct{}, f func(int) (int, bool)) map[int]struct{} {
	if len(set) == 0 {
		return set
	}
	out := make(map[int]struct{}, len(set))
	for index := range set {
		if next, ok := f(index); ok {
			out[next] = struct{}{}
		}
	}
	return out
}

// remapItems moves the indices of the laid out items through f. Items for which
// f reports false are returned.
func (m *Manager) remapItems(f func(int) (int, bool)) []*Item {
	var dropped []*Item
	kept := m.items[:0]
	for _, it := range m.items {
		next, ok := f(it.index)
		if !ok {
			dropped = append(dropped, it)
			continue
		}
		it.index = next
		kept = append(kept, it)
	}
	clear(m.items[len(kept):])
	m.items = kept
	return dropped
}

// NotifyItemRangeInserted reports that n items were inserted at start. The
// inserted items appear on the next Layout.
func (m *Manager) NotifyItemRangeInserted(start, n int) {
	if n <= 0 {
		return
	}
	shift := func(i int) (int, bool) {
		if i >= start {
			return i + n, true
		}
		return i, true
	}
	m.remapItems(shift)
	m.pending.remap(shift)
	if m.pending.inserted == nil {
		m.pending.inserted = make(map[int]struct{}, n)
	}
	for i := start; i < start+n; i++ {
		m.pending.inserted[i] = struct{}{}
	}
	m.log.Debug("items inserted", "start", start, "count", n)
}

// NotifyItemRangeRemoved reports that the n items starting at start were
// removed. Laid out items among them disappear on the next Layout.
func (m *Manager) NotifyItemRangeRemoved(start, n int) {
	if n <= 0 {
		return
	}
	shift := func(i int) (int, bool) {
		switch {
		case i >= start+n:
			return i - n, true
		case i >= start:
			return i, false
		}
		return i, true
	}
	removed := m.remapItems(shift)
	m.pending.remap(shift)
	m.pending.removed = append(m.pending.removed, removed...)
	m.log.Debug("items removed", "start", start, "count", n, "attached", len(removed))
}

// NotifyItemMoved reports that the item at from moved to to.
func (m *Manager) NotifyItemMoved(from, to int) {
	if from == to {
		return
	}
	move := func(i int) (int, bool) {
		switch {
		case i == from:
			return to, true
		case from < to && i > from && i <= to:
			return i - 1, true
		case from > to && i >= to && i < from:
			return i + 1, true
		}
		return i, true
	}
	m.remapItems(move)
	m.pending.remap(move)
	m.log.Debug("item moved", "from", from, "to", to)
}

// NotifyItemRangeChanged reports that the content of the n items starting at
// start changed. Laid out items among them are rebound on the next Layout.
func (m *Manager) NotifyItemRangeChanged(start, n int) {
	if n <= 0 {
		return
	}
	if m.pending.changed == nil {
		m.pending.changed = make(map[int]struct{}, n)
	}
	for i := start; i < start+n; i++ {
		m.pending.changed[i] = struct{}{}
	}
}

// NotifyDataSetChanged reports that the whole collection may have changed.
// Every laid out item is rebound on the next Layout and no transitions run.
func (m *Manager) NotifyDataSetChanged() {
	m.pending.full = true
	m.log.Debug("data set changed")
}
