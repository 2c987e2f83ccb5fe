package stack

import (
	"testing"
	"time"
)

func TestInitialLayout(t *testing.T) {
	m, _, _ := newTestManager(t, 20)

	items := m.Items()
	if len(items) != 14 {
		t.Fatalf("want 14 items, got %d", len(items))
	}
	for i := 0; i < 4; i++ {
		if items[i].Index() != i || items[i].Top() != i*testItem {
			t.Errorf("want item %d at %d, got item %d at %d", i, i*testItem, items[i].Index(), items[i].Top())
		}
	}
	// The rest waits in the bottom stack, one slot apart.
	for i := 4; i < len(items); i++ {
		want := 1000 + (i-4)*20
		if items[i].Top() != want {
			t.Errorf("want item %d at %d, got %d", i, want, items[i].Top())
		}
	}
	if got := m.BottomStackCount(); got != 10 {
		t.Errorf("want 10 items in the bottom stack, got %d", got)
	}
	if anchor := m.AnchorItem(); anchor == nil || anchor.Index() != 1 {
		t.Errorf("want anchor item 1, got %v", anchor)
	}
	if before := m.FirstItemBeforeBottomStack(); before == nil || before.Index() != 3 {
		t.Errorf("want item 3 before the bottom stack, got %v", before)
	}
	if !m.CanScrollVertically() {
		t.Error("want vertical scrolling")
	}
	checkInvariants(t, m)
}

func TestScrollFormsTopStack(t *testing.T) {
	m, _, _ := newTestManager(t, 20)

	if got := scroll(t, m, 3*testHeight); got != 3*testHeight {
		t.Fatalf("want %d consumed, got %d", 3*testHeight, got)
	}
	// Items 0 to 12 scrolled above the boundary; only the last ten remain.
	if got := m.TopStackCount(); got != 10 {
		t.Errorf("want 10 items in the top stack, got %d", got)
	}
	items := m.Items()
	if items[0].Index() != 3 {
		t.Errorf("want first item 3, got %d", items[0].Index())
	}
	for i := 0; i < 10; i++ {
		if want := i * 20; items[i].Top() != want {
			t.Errorf("want stacked item %d at %d, got %d", items[i].Index(), want, items[i].Top())
		}
	}
	if anchor := m.AnchorItem(); anchor == nil || anchor.Index() != 13 || anchor.Top() != 300 {
		t.Errorf("want anchor item 13 at 300, got %v", anchor)
	}
	if m.State() != Neutral {
		t.Errorf("want %s, got %s", Neutral, m.State())
	}
	checkInvariants(t, m)
}

func TestEmptyCollection(t *testing.T) {
	m, _, _ := newTestManager(t, 0)

	if got := len(m.Items()); got != 0 {
		t.Errorf("want no items, got %d", got)
	}
	if got := scroll(t, m, 100); got != 0 {
		t.Errorf("want 0 consumed, got %d", got)
	}
	m.OnScrollIdle()
	if m.Tick(time.Second) {
		t.Error("want no animations")
	}
}

func TestLayoutAfterCollectionEmptied(t *testing.T) {
	m, src, pool := newTestManager(t, 20)
	scroll(t, m, 1000)

	src.n = 0
	m.NotifyDataSetChanged()
	if err := m.Layout(testWidth, testHeight); err != nil {
		t.Fatalf("layout: %v", err)
	}
	if got := len(m.Items()); got != 0 {
		t.Errorf("want no items, got %d", got)
	}
	stats := pool.Stats()
	if stats.Free != stats.Created {
		t.Errorf("want every item released, got %d free of %d", stats.Free, stats.Created)
	}
}

func TestConsumedDelta(t *testing.T) {
	m, _, _ := newTestManager(t, 20)

	steps := []int{50, 700, -300, 2500, 4000, 10, -10, -9000, -1, 123, 4800, 1, -1}
	for _, dy := range steps {
		got := scroll(t, m, dy)
		if abs(got) > abs(dy) {
			t.Errorf("scroll by %d: want |consumed| <= %d, got %d", dy, abs(dy), got)
		}
		if got != 0 && (got > 0) != (dy > 0) {
			t.Errorf("scroll by %d: want consumed with the same sign, got %d", dy, got)
		}
		checkInvariants(t, m)
		m.OnScrollIdle()
		for m.Tick(16 * time.Millisecond) {
		}
	}
}

func TestScrollClampsAtEnds(t *testing.T) {
	m, _, _ := newTestManager(t, 20)

	// 20 items of 300 rows leave 4800 rows to scroll.
	if got := scroll(t, m, 10000); got != 4800 {
		t.Errorf("want 4800 consumed, got %d", got)
	}
	if m.State() != Neutral {
		t.Errorf("want %s, got %s", Neutral, m.State())
	}
	if got := scroll(t, m, 10); got != 0 {
		t.Errorf("want 0 consumed, got %d", got)
	}
	if m.State() != ReachedBottom {
		t.Errorf("want %s, got %s", ReachedBottom, m.State())
	}
	items := m.Items()
	if last := items[len(items)-1]; last.Index() != 19 || last.Bottom() != testHeight {
		t.Errorf("want item 19 ending at %d, got item %d ending at %d", testHeight, last.Index(), last.Bottom())
	}

	if got := scroll(t, m, -10000); got != -4800 {
		t.Errorf("want -4800 consumed, got %d", got)
	}
	if got := scroll(t, m, -10); got != 0 {
		t.Errorf("want 0 consumed, got %d", got)
	}
	if m.State() != ReachedTop {
		t.Errorf("want %s, got %s", ReachedTop, m.State())
	}
	if first := m.Items()[0]; first.Index() != 0 || first.Top() != 0 {
		t.Errorf("want item 0 at 0, got item %d at %d", first.Index(), first.Top())
	}
}

func TestOverscrollRebound(t *testing.T) {
	m, _, _ := newTestManager(t, 20)

	for i := 0; m.State() != ReachedBottom; i++ {
		if i > 100 {
			t.Fatal("never reached the bottom")
		}
		scroll(t, m, 500)
	}
	before := snapshot(m)

	if got := scroll(t, m, 50); got != 0 {
		t.Errorf("want 0 consumed while pulling, got %d", got)
	}
	if m.State() != ReachedBottom {
		t.Errorf("want %s, got %s", ReachedBottom, m.State())
	}
	moved := 0
	for _, it := range m.Items() {
		_, ty := it.Translation()
		if ty < -50 || ty > 0 {
			t.Errorf("want translation of item %d in [-50, 0], got %v", it.Index(), ty)
		}
		if ty != 0 {
			moved++
		}
	}
	if moved == 0 {
		t.Fatal("want translated items")
	}
	if !equalPlacements(before, snapshot(m)) {
		t.Error("want the layout untouched by the pull")
	}
	if m.Rebounding() {
		t.Error("want no rebound before idle")
	}

	m.OnScrollIdle()
	if !m.Rebounding() {
		t.Fatal("want rebound after idle")
	}
	if got := scroll(t, m, -100); got != 0 {
		t.Errorf("want 0 consumed while rebounding, got %d", got)
	}

	for i := 0; m.Rebounding(); i++ {
		if i > 1000 {
			t.Fatal("rebound never finished")
		}
		m.Tick(16 * time.Millisecond)
	}
	for _, it := range m.Items() {
		if _, ty := it.Translation(); ty != 0 {
			t.Errorf("want item %d at rest, got translation %v", it.Index(), ty)
		}
	}
	if !equalPlacements(before, snapshot(m)) {
		t.Error("want the layout untouched by the rebound")
	}
}

func TestOverscrollTop(t *testing.T) {
	m, _, _ := newTestManager(t, 20)

	scroll(t, m, -10)
	if m.State() != ReachedTop {
		t.Fatalf("want %s, got %s", ReachedTop, m.State())
	}
	scroll(t, m, -40)
	scroll(t, m, -40)

	moved := 0
	for _, it := range m.Items() {
		_, ty := it.Translation()
		if ty < 0 || ty > 80 {
			t.Errorf("want translation of item %d in [0, 80], got %v", it.Index(), ty)
		}
		if it.VisualTop() > testHeight {
			t.Errorf("want item %d inside the viewport, got %d", it.Index(), it.VisualTop())
		}
		if ty != 0 {
			moved++
		}
	}
	if moved == 0 {
		t.Error("want translated items")
	}
}

func TestReverseDirectionReboundsPull(t *testing.T) {
	m, _, _ := newTestManager(t, 20)
	scroll(t, m, -10)
	scroll(t, m, -30)

	// Scrolling the other way lays out normally and starts the rebound.
	if got := scroll(t, m, 100); got != 100 {
		t.Errorf("want 100 consumed, got %d", got)
	}
	if !m.Rebounding() {
		t.Error("want rebound after reversing")
	}
}

func TestRapidReversal(t *testing.T) {
	tests := []struct {
		name  string
		start int
	}{
		{"top", 0},
		{"middle", 1000},
		{"stacked", 3000},
		{"near end", 4700},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, _ := newTestManager(t, 20)
			scroll(t, m, tt.start)
			before := snapshot(m)

			scroll(t, m, 10)
			scroll(t, m, -10)

			if after := snapshot(m); !equalPlacements(before, after) {
				t.Errorf("want %v, got %v", before, after)
			}
		})
	}
}

func TestScrollConservation(t *testing.T) {
	for _, x := range []int{1, 150, 299, 300, 1234, 2000} {
		m, _, _ := newTestManager(t, 40)
		scroll(t, m, 2000)
		before := snapshot(m)

		if got := scroll(t, m, x); got != x {
			t.Fatalf("scroll by %d: want everything consumed, got %d", x, got)
		}
		checkInvariants(t, m)
		scroll(t, m, -x)

		if after := snapshot(m); !equalPlacements(before, after) {
			t.Errorf("scroll by %d and back: want %v, got %v", x, before, after)
		}
	}
}

func TestExpandIsIdempotent(t *testing.T) {
	m, _, _ := newTestManager(t, 20)
	scroll(t, m, 2500)

	m.cache.load(m.items)
	defer m.cache.clear()
	pos := m.expansionAnchor()
	m.expand(pos)
	first := make([]int, m.cache.len())
	for i, it := range m.cache.items {
		first[i] = it.top
	}
	m.expand(pos)
	for i, it := range m.cache.items {
		if it.top != first[i] {
			t.Errorf("want item %d to stay at %d, got %d", it.index, first[i], it.top)
		}
	}

	pitch := m.geom.Pitch()
	for i := 1; i < m.cache.len(); i++ {
		prev, cur := m.cache.at(i-1), m.cache.at(i)
		if cur.top-prev.top != pitch {
			t.Errorf("want items %d and %d %d apart, got %d", prev.index, cur.index, pitch, cur.top-prev.top)
		}
	}
}

func TestShortCollection(t *testing.T) {
	m, _, _ := newTestManager(t, 3)

	if got := len(m.Items()); got != 3 {
		t.Fatalf("want 3 items, got %d", got)
	}
	if got := scroll(t, m, 100); got != 0 {
		t.Errorf("want 0 consumed, got %d", got)
	}
	if m.State() != ReachedBottom {
		t.Errorf("want %s, got %s", ReachedBottom, m.State())
	}
	scroll(t, m, 100)
	if _, ty := m.Items()[2].Translation(); ty >= 0 {
		t.Errorf("want the last item pulled up, got %v", ty)
	}
}

func TestRelayoutKeepsPosition(t *testing.T) {
	m, _, _ := newTestManager(t, 30)
	scroll(t, m, 2345)
	before := snapshot(m)

	if err := m.Layout(testWidth, testHeight); err != nil {
		t.Fatalf("layout: %v", err)
	}
	if after := snapshot(m); !equalPlacements(before, after) {
		t.Errorf("want %v, got %v", before, after)
	}
}

func TestLayoutClampsShrunkCollection(t *testing.T) {
	m, src, _ := newTestManager(t, 20)
	scroll(t, m, 4800)

	src.n = 5
	m.NotifyDataSetChanged()
	if err := m.Layout(testWidth, testHeight); err != nil {
		t.Fatalf("layout: %v", err)
	}
	items := m.Items()
	if len(items) != 5 {
		t.Fatalf("want 5 items, got %d", len(items))
	}
	if last := items[4]; last.Index() != 4 || last.Bottom() != testHeight {
		t.Errorf("want item 4 ending at %d, got item %d ending at %d", testHeight, last.Index(), last.Bottom())
	}
	checkInvariants(t, m)
}

func TestPoolRecyclesItems(t *testing.T) {
	m, _, pool := newTestManager(t, 200)
	for i := 0; i < 50; i++ {
		scroll(t, m, 350)
	}

	stats := pool.Stats()
	if stats.Reused == 0 {
		t.Error("want released items to be reused")
	}
	if live := stats.Created - stats.Free; live != len(m.Items()) {
		t.Errorf("want %d items in use, got %d", len(m.Items()), live)
	}
	for _, it := range m.Items() {
		if !it.Attached() {
			t.Errorf("want item %d attached", it.Index())
		}
		if it.Value != it.Index() {
			t.Errorf("want item %d bound to %d, got %v", it.Index(), it.Index(), it.Value)
		}
	}
}

func TestLongJump(t *testing.T) {
	m, _, _ := newTestManager(t, 1000)

	if got := scroll(t, m, 150000); got != 150000 {
		t.Fatalf("want 150000 consumed, got %d", got)
	}
	checkInvariants(t, m)
	anchor := m.AnchorItem()
	if anchor == nil || anchor.Index() != 501 || anchor.Top() != 300 {
		t.Errorf("want anchor item 501 at 300, got %v", anchor)
	}
	if got := m.TopStackCount(); got != 10 {
		t.Errorf("want 10 items in the top stack, got %d", got)
	}

	if got := scroll(t, m, -150000); got != -150000 {
		t.Fatalf("want -150000 consumed, got %d", got)
	}
	if first := m.Items()[0]; first.Index() != 0 || first.Top() != 0 {
		t.Errorf("want item 0 at 0, got item %d at %d", first.Index(), first.Top())
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
