package stack

import (
	"cmp"
	"slices"
)

// cache is the working set of one layout pass: items ordered by strictly
// increasing index.
type cache struct {
	items []*Item
}

func (c *cache) load(items []*Item) {
	c.items = append(c.items[:0], items...)
	slices.SortFunc(c.items, func(a, b *Item) int {
		return cmp.Compare(a.index, b.index)
	})
}

func (c *cache) len() int { return len(c.items) }

func (c *cache) at(pos int) *Item { return c.items[pos] }

func (c *cache) first() *Item {
	if len(c.items) == 0 {
		return nil
	}
	return c.items[0]
}

func (c *cache) last() *Item {
	if len(c.items) == 0 {
		return nil
	}
	return c.items[len(c.items)-1]
}

// search returns the position of index in the cache, or the position it would
// be inserted at.
func (c *cache) search(index int) (int, bool) {
	return slices.BinarySearchFunc(c.items, index, func(it *Item, index int) int {
		return cmp.Compare(it.index, index)
	})
}

func (c *cache) get(index int) *Item {
	if pos, ok := c.search(index); ok {
		return c.items[pos]
	}
	return nil
}

// put inserts item at its index, replacing any item already stored there. The
// replaced item is returned.
func (c *cache) put(item *Item) *Item {
	pos, ok := c.search(item.index)
	if ok {
		old := c.items[pos]
		c.items[pos] = item
		return old
	}
	c.items = slices.Insert(c.items, pos, item)
	return nil
}

func (c *cache) removeAt(pos int) *Item {
	item := c.items[pos]
	c.items = slices.Delete(c.items, pos, pos+1)
	return item
}

func (c *cache) remove(index int) *Item {
	if pos, ok := c.search(index); ok {
		return c.removeAt(pos)
	}
	return nil
}

func (c *cache) offset(dy int) {
	for _, it := range c.items {
		it.offset(dy)
	}
}

// snapshot returns a copy of the cached items.
func (c *cache) snapshot() []*Item {
	return slices.Clone(c.items)
}

func (c *cache) clear() {
	clear(c.items)
	c.items = c.items[:0]
}
