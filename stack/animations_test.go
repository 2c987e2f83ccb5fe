package stack

import (
	"testing"
	"time"
)

func TestAnimationReplacesInFlight(t *testing.T) {
	as := newAnimations()
	it := NewItem(nil)

	as.start(it, TranslationY, kindRebound, &linear{from: -40, to: 0, total: time.Second}, 0, 0)
	as.start(it, TranslationY, kindRebound, &linear{from: -20, to: 0, total: 100 * time.Millisecond}, 0, 0)
	if as.len() != 1 {
		t.Fatalf("want one animation, got %d", as.len())
	}

	as.step(50 * time.Millisecond)
	if _, ty := it.Translation(); ty != -10 {
		t.Errorf("want -10, got %v", ty)
	}
	as.step(50 * time.Millisecond)
	if as.rebounding() {
		t.Error("want the rebound finished")
	}
}

func TestAnimationDelay(t *testing.T) {
	as := newAnimations()
	it := NewItem(nil)
	it.setProperty(Alpha, 0)

	as.start(it, Alpha, kindTransition, &linear{from: 0, to: 1, total: 100 * time.Millisecond}, 1, 200*time.Millisecond)
	as.step(150 * time.Millisecond)
	if it.Alpha() != 0 {
		t.Errorf("want alpha 0 while delayed, got %v", it.Alpha())
	}
	as.step(100 * time.Millisecond)
	if it.Alpha() != 0.5 {
		t.Errorf("want alpha 0.5, got %v", it.Alpha())
	}
	if as.rebounding() {
		t.Error("want transitions not counted as rebound")
	}
}

func TestCancelSnapsToEnd(t *testing.T) {
	as := newAnimations()
	a, b := NewItem(nil), NewItem(nil)
	as.start(a, TranslationY, kindRebound, &linear{from: -30, to: 0, total: time.Second}, 0, 0)
	as.start(b, TranslationY, kindRebound, &linear{from: -30, to: 0, total: time.Second}, 0, 0)
	a.setProperty(TranslationY, -30)

	as.cancelItem(a)
	if _, ty := a.Translation(); ty != 0 {
		t.Errorf("want translation 0, got %v", ty)
	}
	if as.active(a) || !as.active(b) {
		t.Error("want only the other item animating")
	}
}

func TestPoolOutOfRange(t *testing.T) {
	pool := NewPool(&testSource{n: 2, height: 1})
	if _, err := pool.CreateItem(2); err == nil {
		t.Error("want an error for index 2")
	}
	if _, err := pool.CreateItem(-1); err == nil {
		t.Error("want an error for index -1")
	}

	it, err := pool.CreateItem(1)
	if err != nil {
		t.Fatalf("create item: %v", err)
	}
	pool.ReleaseItem(it)
	again, err := pool.CreateItem(0)
	if err != nil {
		t.Fatalf("create item: %v", err)
	}
	if again != it || again.Value != 0 || again.Index() != 0 {
		t.Errorf("want the released item rebound to 0, got %v", again)
	}
	if stats := pool.Stats(); stats.Created != 1 || stats.Reused != 1 {
		t.Errorf("want 1 created and 1 reused, got %+v", stats)
	}
}
