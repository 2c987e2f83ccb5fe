package stack

import (
	"testing"
	"time"
)

func TestInsertedItemsAppear(t *testing.T) {
	src := &testSource{height: testItem}
	m := New(NewPool(src), WithAppearAnimator(linearAnimator(100*time.Millisecond)))
	if err := m.Layout(testWidth, testHeight); err != nil {
		t.Fatalf("layout: %v", err)
	}

	src.n = 20
	m.NotifyItemRangeInserted(0, 20)
	if err := m.Layout(testWidth, testHeight); err != nil {
		t.Fatalf("layout: %v", err)
	}
	items := m.Items()
	if len(items) != 14 {
		t.Fatalf("want 14 items, got %d", len(items))
	}
	for _, it := range items {
		if _, ty := it.Translation(); ty != testHeight {
			t.Errorf("want item %d to start below the viewport, got translation %v", it.Index(), ty)
		}
	}

	m.Tick(50 * time.Millisecond)
	if _, ty := items[0].Translation(); ty != testHeight/2 {
		t.Errorf("want item 0 half way, got %v", ty)
	}
	// The next item starts one stagger later.
	if _, ty := items[1].Translation(); ty != testHeight {
		t.Errorf("want item 1 still waiting, got %v", ty)
	}

	for i := 0; m.Tick(16 * time.Millisecond); i++ {
		if i > 1000 {
			t.Fatal("appearance never finished")
		}
	}
	for _, it := range items {
		if _, ty := it.Translation(); ty != 0 {
			t.Errorf("want item %d at rest, got translation %v", it.Index(), ty)
		}
	}
}

func TestInsertBeforeWindowKeepsPosition(t *testing.T) {
	m, src, _ := newTestManager(t, 20)
	scroll(t, m, 3000)
	anchor := m.AnchorItem()
	if anchor == nil || anchor.Index() != 11 {
		t.Fatalf("want anchor item 11, got %v", anchor)
	}

	src.n = 25
	m.NotifyItemRangeInserted(0, 5)
	if err := m.Layout(testWidth, testHeight); err != nil {
		t.Fatalf("layout: %v", err)
	}
	if got := m.AnchorItem(); got != anchor {
		t.Fatalf("want the same anchor item, got %v", got)
	}
	if anchor.Index() != 16 || anchor.Top() != 300 {
		t.Errorf("want anchor item 16 at 300, got item %d at %d", anchor.Index(), anchor.Top())
	}
	if m.Animating() {
		t.Error("want no transitions for items outside the window")
	}
	checkInvariants(t, m)
}

func TestRemovedItemDisappears(t *testing.T) {
	m, src, pool := newTestManager(t, 20,
		WithTransition(Disappear, FadeOut),
		WithAppearAnimator(linearAnimator(100*time.Millisecond)),
	)
	removed := m.Items()[1]
	next := m.Items()[2]

	src.n = 19
	m.NotifyItemRangeRemoved(1, 1)
	if err := m.Layout(testWidth, testHeight); err != nil {
		t.Fatalf("layout: %v", err)
	}

	if got := m.Disappearing(); len(got) != 1 || got[0] != removed {
		t.Fatalf("want the removed item disappearing, got %v", got)
	}
	if removed.Alpha() != 1 {
		t.Errorf("want alpha 1, got %v", removed.Alpha())
	}
	if m.Items()[1] != next || next.Index() != 1 || next.Top() != testItem {
		t.Errorf("want the following item in its place, got item %d at %d", next.Index(), next.Top())
	}
	for i, it := range m.Items() {
		if it.Index() != i {
			t.Fatalf("want contiguous indices, got %d at %d", it.Index(), i)
		}
	}

	free := pool.Stats().Free
	m.Tick(150 * time.Millisecond)
	if got := len(m.Disappearing()); got != 0 {
		t.Errorf("want no disappearing items, got %d", got)
	}
	if removed.Attached() {
		t.Error("want the removed item released")
	}
	if got := pool.Stats().Free; got != free+1 {
		t.Errorf("want %d free items, got %d", free+1, got)
	}
}

func TestRemovedItemWithoutTransition(t *testing.T) {
	m, src, pool := newTestManager(t, 20)
	free := pool.Stats().Free

	src.n = 18
	m.NotifyItemRangeRemoved(0, 2)
	if err := m.Layout(testWidth, testHeight); err != nil {
		t.Fatalf("layout: %v", err)
	}
	if got := len(m.Disappearing()); got != 0 {
		t.Errorf("want no disappearing items, got %d", got)
	}
	// Both removed items are released before the layout pass and serve the
	// two items that move into the window.
	if got := pool.Stats().Free; got != free {
		t.Errorf("want %d free items, got %d", free, got)
	}
	if first := m.Items()[0]; first.Index() != 0 || first.Top() != 0 || first.Value != 2 {
		t.Errorf("want old item 2 first at 0, got item %d at %d bound to %v", first.Index(), first.Top(), first.Value)
	}
}

func TestMovedItemKeepsHandle(t *testing.T) {
	m, _, _ := newTestManager(t, 20)
	moved := m.Items()[0]

	m.NotifyItemMoved(0, 2)
	if err := m.Layout(testWidth, testHeight); err != nil {
		t.Fatalf("layout: %v", err)
	}
	items := m.Items()
	if items[2] != moved || moved.Index() != 2 || moved.Top() != 2*testItem {
		t.Errorf("want the moved item at index 2 and row %d, got index %d at %d", 2*testItem, moved.Index(), moved.Top())
	}
	if items[0].Index() != 0 || items[0].Top() != 0 {
		t.Errorf("want item 0 at 0, got item %d at %d", items[0].Index(), items[0].Top())
	}
	checkInvariants(t, m)
}

func TestChangedItemIsRebound(t *testing.T) {
	m, src, _ := newTestManager(t, 20)

	src.values = map[int]string{2: "changed"}
	m.NotifyItemRangeChanged(2, 1)
	if err := m.Layout(testWidth, testHeight); err != nil {
		t.Fatalf("layout: %v", err)
	}
	if got := m.Items()[2].Value; got != "changed" {
		t.Errorf("want changed, got %v", got)
	}
	if got := m.Items()[3].Value; got != 3 {
		t.Errorf("want 3, got %v", got)
	}
}

func TestChangeTransition(t *testing.T) {
	fade := func(*Item, Geometry) []Tween {
		return []Tween{{Property: Alpha, Start: 0, End: 1}}
	}
	m, _, _ := newTestManager(t, 20,
		WithTransition(Change, fade),
		WithAppearAnimator(linearAnimator(100*time.Millisecond)),
	)

	m.NotifyItemRangeChanged(0, 1)
	if err := m.Layout(testWidth, testHeight); err != nil {
		t.Fatalf("layout: %v", err)
	}
	if got := m.Items()[0].Alpha(); got != 0 {
		t.Errorf("want alpha 0, got %v", got)
	}
	if got := m.Items()[1].Alpha(); got != 1 {
		t.Errorf("want untouched item at alpha 1, got %v", got)
	}
	m.Tick(time.Second)
	if got := m.Items()[0].Alpha(); got != 1 {
		t.Errorf("want alpha 1, got %v", got)
	}
}

func TestPendingIndicesShift(t *testing.T) {
	var p pendingChanges
	p.inserted = map[int]struct{}{1: {}, 4: {}, 7: {}}

	p.remap(func(i int) (int, bool) {
		switch {
		case i >= 5:
			return i - 2, true
		case i >= 3:
			return i, false
		}
		return i, true
	})

	for _, i := range []int{1, 5} {
		if !p.isInserted(i) {
			t.Errorf("want %d inserted", i)
		}
	}
	if p.isInserted(4) || p.isInserted(7) {
		t.Errorf("want 4 and 7 dropped, got %v", p.inserted)
	}
}
