package stack

import "fmt"

// window returns the range of rows, margins included, in which items are
// retained: the viewport extended by one full stack of flat items on each side.
func (m *Manager) window() (lo, hi int) {
	extra := m.geom.MaxDepth * m.geom.Pitch()
	return -extra, m.geom.ViewportHeight + extra
}

// fillAfter adds the items following index, laid out flat from edge downwards,
// until the window or the collection ends. edge is the row just below the item
// at index, margins included.
func (m *Manager) fillAfter(index, edge int) error {
	g := m.geom
	pitch := g.Pitch()
	lo, hi := m.window()
	if edge < lo {
		skip := (lo - edge) / pitch
		index += skip
		edge += skip * pitch
	}

	count := m.adapter.ItemCount()
	for i := index + 1; i < count && edge < hi; i++ {
		if i < 0 {
			edge += pitch
			continue
		}
		item, err := m.obtain(i)
		if err != nil {
			return err
		}
		item.place(g.Margins.Left, edge+g.Margins.Top, g.ItemWidth, g.ItemHeight)
		m.cache.put(item)
		edge = item.bottom + g.Margins.Bottom
	}
	return nil
}

// fillBefore adds the items preceding index, laid out flat from edge upwards,
// until the window or the collection ends. edge is the row at the top of the
// item at index, margins included.
func (m *Manager) fillBefore(index, edge int) error {
	g := m.geom
	pitch := g.Pitch()
	lo, hi := m.window()
	if edge > hi {
		skip := (edge - hi) / pitch
		index -= skip
		edge -= skip * pitch
	}

	count := m.adapter.ItemCount()
	for i := index - 1; i >= 0 && edge > lo; i-- {
		if i >= count {
			edge -= pitch
			continue
		}
		item, err := m.obtain(i)
		if err != nil {
			return err
		}
		item.place(g.Margins.Left, edge-g.Margins.Bottom-g.ItemHeight, g.ItemWidth, g.ItemHeight)
		m.cache.put(item)
		edge = item.top - g.Margins.Top
	}
	return nil
}

// releaseOutside releases every cached item that lies entirely outside the
// window.
func (m *Manager) releaseOutside() {
	g := m.geom
	lo, hi := m.window()
	for i := m.cache.len() - 1; i >= 0; i-- {
		it := m.cache.at(i)
		if it.bottom+g.Margins.Bottom <= lo || it.top-g.Margins.Top >= hi {
			m.release(m.cache.removeAt(i))
		}
	}
}

// obtain returns the item for index, reusing a scrapped item when the layout
// pass has one.
func (m *Manager) obtain(index int) (*Item, error) {
	if item, ok := m.scrap[index]; ok {
		delete(m.scrap, index)
		return item, nil
	}
	item, err := m.adapter.CreateItem(index)
	if err != nil {
		return nil, fmt.Errorf("create item %d: %w", index, err)
	}
	item.reset()
	item.index = index
	item.attached = true
	m.created = append(m.created, item)
	return item, nil
}

// release detaches item and hands it back to the adapter.
func (m *Manager) release(item *Item) {
	m.anims.cancelItem(item)
	item.attached = false
	m.adapter.ReleaseItem(item)
	m.released++
}
