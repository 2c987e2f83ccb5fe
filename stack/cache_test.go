package stack

import "testing"

func itemAt(index, top int) *Item {
	it := NewItem(index)
	it.index = index
	it.place(0, top, 10, 10)
	return it
}

func TestCacheOrder(t *testing.T) {
	var c cache
	for _, i := range []int{5, 1, 3, 9, 7} {
		c.put(itemAt(i, i*10))
	}

	want := []int{1, 3, 5, 7, 9}
	if c.len() != len(want) {
		t.Fatalf("want %d items, got %d", len(want), c.len())
	}
	for pos, index := range want {
		if got := c.at(pos).index; got != index {
			t.Errorf("want index %d at %d, got %d", index, pos, got)
		}
	}
	if c.first().index != 1 || c.last().index != 9 {
		t.Errorf("want ends 1 and 9, got %d and %d", c.first().index, c.last().index)
	}

	replacement := itemAt(5, 0)
	if old := c.put(replacement); old == nil || old.index != 5 {
		t.Errorf("want the previous item 5 returned, got %v", old)
	}
	if c.get(5) != replacement || c.len() != len(want) {
		t.Error("want item 5 replaced in place")
	}

	if got := c.remove(3); got == nil || got.index != 3 {
		t.Errorf("want item 3 removed, got %v", got)
	}
	if c.get(3) != nil {
		t.Error("want no item 3")
	}
	if c.remove(4) != nil {
		t.Error("want nothing removed for a missing index")
	}

	c.clear()
	if c.len() != 0 || c.first() != nil || c.last() != nil {
		t.Error("want an empty cache")
	}
}

func TestCacheLoadSorts(t *testing.T) {
	var c cache
	c.load([]*Item{itemAt(4, 0), itemAt(2, 0), itemAt(3, 0)})
	for pos, index := range []int{2, 3, 4} {
		if got := c.at(pos).index; got != index {
			t.Errorf("want index %d at %d, got %d", index, pos, got)
		}
	}
}

func TestStackQueries(t *testing.T) {
	items := []*Item{
		itemAt(0, 0),
		itemAt(1, 20),
		itemAt(2, 200),
		itemAt(3, 500),
		itemAt(4, 1000),
		itemAt(5, 1020),
	}
	tests := []struct {
		name      string
		want, got int
	}{
		{"anchor", 2, anchorPos(items, 200)},
		{"before bottom", 3, beforeBottomPos(items, 1000)},
		{"top count", 2, topStackCount(items, 200)},
		{"bottom count", 2, bottomStackCount(items, 1000)},
		{"no anchor", -1, anchorPos(items, 2000)},
		{"nothing before bottom", -1, beforeBottomPos(items, 0)},
	}
	for _, tt := range tests {
		if tt.want != tt.got {
			t.Errorf("%s: want %d, got %d", tt.name, tt.want, tt.got)
		}
	}
}
