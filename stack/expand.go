package stack

// expansionAnchor returns the position the current arrangement is flattened
// around: the anchor item, or the last item when every item is above the top
// boundary.
func (m *Manager) expansionAnchor() int {
	pos := anchorPos(m.cache.items, m.geom.TopBoundary())
	if pos < 0 {
		pos = m.cache.len() - 1
	}
	return pos
}

// expand undoes stacking: every item is moved to the flat position implied by
// its index distance from the item at pos. Calling it again with the same pos
// moves nothing.
func (m *Manager) expand(pos int) {
	if pos < 0 || pos >= m.cache.len() {
		return
	}
	pitch := m.geom.Pitch()
	anchor := m.cache.at(pos)
	for i := pos - 1; i >= 0; i-- {
		it := m.cache.at(i)
		it.moveTo(anchor.top - (anchor.index-it.index)*pitch)
	}
	for i := pos + 1; i < m.cache.len(); i++ {
		it := m.cache.at(i)
		it.moveTo(anchor.top + (it.index-anchor.index)*pitch)
	}
}
