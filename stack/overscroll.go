package stack

// pull translates the laid out items for a scroll of dy past an end of the
// collection. Items move in the pull direction only, by at most the
// accumulated pull, and bunch up no tighter than half a slot apart against the
// opposite edge of the viewport.
func (m *Manager) pull(dy int) {
	g := m.geom
	half := max(g.SlotHeight/2, 1)
	n := len(m.items)
	for i, it := range m.items {
		if m.anims.has(it, TranslationY) {
			continue
		}
		t := it.translationY - float64(dy)
		if dy > 0 {
			floor := float64(g.Margins.Top + i*half - it.top)
			t = min(0, max(t, floor))
		} else {
			ceil := float64(g.ViewportHeight - g.Margins.Bottom - (n-i)*half - it.top)
			t = max(0, min(t, ceil))
		}
		it.translationY = t
	}
}
