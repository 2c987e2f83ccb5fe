package stack

import (
	"testing"
	"time"

	"github.com/ayn2op/stackview/anim"
)

const (
	testWidth  = 400
	testHeight = 1200
	testItem   = 300
)

type testSource struct {
	n       int
	height  int
	margins Margins
	values  map[int]string
	fail    map[int]error
}

func (s *testSource) Len() int { return s.n }

func (s *testSource) Bind(item *Item, index int) error {
	if err := s.fail[index]; err != nil {
		return err
	}
	item.Value = index
	if v, ok := s.values[index]; ok {
		item.Value = v
	}
	item.Margins = s.margins
	return nil
}

func (s *testSource) Measure(*Item) (int, int) { return 0, s.height }

// linear animates from start to end over a fixed duration.
type linear struct {
	from, to float64
	total    time.Duration
	elapsed  time.Duration
}

func (l *linear) Step(dt time.Duration) (float64, bool) {
	l.elapsed += dt
	if l.elapsed >= l.total {
		return l.to, true
	}
	return l.from + (l.to-l.from)*float64(l.elapsed)/float64(l.total), false
}

func linearAnimator(total time.Duration) anim.Animator {
	return anim.AnimatorFunc(func(from, to float64) anim.Animation {
		return &linear{from: from, to: to, total: total}
	})
}

func newTestManager(t *testing.T, n int, opts ...Option) (*Manager, *testSource, *Pool) {
	t.Helper()
	src := &testSource{n: n, height: testItem}
	pool := NewPool(src)
	m := New(pool, opts...)
	if err := m.Layout(testWidth, testHeight); err != nil {
		t.Fatalf("layout: %v", err)
	}
	return m, src, pool
}

type placement struct {
	index, top int
}

func snapshot(m *Manager) []placement {
	out := make([]placement, 0, len(m.Items()))
	for _, it := range m.Items() {
		out = append(out, placement{it.Index(), it.Top()})
	}
	return out
}

func equalPlacements(a, b []placement) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func scroll(t *testing.T, m *Manager, dy int) int {
	t.Helper()
	consumed, err := m.ScrollBy(dy)
	if err != nil {
		t.Fatalf("scroll by %d: %v", dy, err)
	}
	return consumed
}

func checkInvariants(t *testing.T, m *Manager) {
	t.Helper()
	items := m.Items()
	for i := 1; i < len(items); i++ {
		if items[i].Index() <= items[i-1].Index() {
			t.Fatalf("want strictly increasing indices, got %d after %d", items[i].Index(), items[i-1].Index())
		}
		if items[i].Top() < items[i-1].Top() {
			t.Fatalf("want non-decreasing tops, got item %d at %d after item %d at %d",
				items[i].Index(), items[i].Top(), items[i-1].Index(), items[i-1].Top())
		}
	}
	depth := m.Geometry().MaxDepth
	if got := m.TopStackCount(); got > depth {
		t.Fatalf("want top stack of at most %d items, got %d", depth, got)
	}
	if got := m.BottomStackCount(); got > depth {
		t.Fatalf("want bottom stack of at most %d items, got %d", depth, got)
	}
}
