package stack

import "fmt"

// Adapter supplies the items laid out by a Manager.
type Adapter interface {
	// ItemCount returns the number of items in the collection.
	ItemCount() int
	// CreateItem returns an item bound to the content at index. It may return
	// a previously released item.
	CreateItem(index int) (*Item, error)
	// ReleaseItem hands an item the Manager no longer lays out back to the
	// adapter.
	ReleaseItem(item *Item)
	// Measure returns the item's preferred size. A width of zero or less means
	// the item fills the viewport between its margins.
	Measure(item *Item) (width, height int)
}

// Source is the content behind a Pool.
type Source interface {
	// Len returns the number of entries.
	Len() int
	// Bind stores the content for index in item. Bind may set item.Margins.
	Bind(item *Item, index int) error
	// Measure returns the preferred size of a bound item.
	Measure(item *Item) (width, height int)
}

// PoolStats counts the items a Pool has handed out.
type PoolStats struct {
	// Created is the number of items allocated.
	Created int
	// Reused is the number of CreateItem calls served from released items.
	Reused int
	// Free is the number of released items waiting for reuse.
	Free int
}

// Pool is an Adapter that recycles released items.
type Pool struct {
	source Source
	free   []*Item
	stats  PoolStats
}

// NewPool returns a pool binding items from source.
func NewPool(source Source) *Pool {
	return &Pool{source: source}
}

// ItemCount implements Adapter.
func (p *Pool) ItemCount() int {
	return p.source.Len()
}

// CreateItem implements Adapter.
func (p *Pool) CreateItem(index int) (*Item, error) {
	if n := p.source.Len(); index < 0 || index >= n {
		return nil, fmt.Errorf("index %d out of range [0, %d)", index, n)
	}

	var item *Item
	if n := len(p.free); n > 0 {
		item = p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		p.stats.Reused++
	} else {
		item = &Item{}
		p.stats.Created++
	}
	item.reset()
	item.Value = nil
	item.Margins = Margins{}

	if err := p.source.Bind(item, index); err != nil {
		p.free = append(p.free, item)
		return nil, fmt.Errorf("bind item %d: %w", index, err)
	}
	item.index = index
	return item, nil
}

// ReleaseItem implements Adapter.
func (p *Pool) ReleaseItem(item *Item) {
	if item == nil {
		return
	}
	item.attached = false
	p.free = append(p.free, item)
}

// Measure implements Adapter.
func (p *Pool) Measure(item *Item) (int, int) {
	return p.source.Measure(item)
}

// Stats returns the pool's allocation counters.
func (p *Pool) Stats() PoolStats {
	s := p.stats
	s.Free = len(p.free)
	return s
}
