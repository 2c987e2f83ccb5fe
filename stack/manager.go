// Package stack lays out a virtualized vertical list whose items collapse into
// overlapping stacks at the top and bottom of the viewport instead of
// scrolling off screen.
//
// A Manager materializes only the items in and around the viewport. Each
// scroll step flattens the stacks around an anchor item, applies the scroll
// offset, fills the space it exposed, and collapses the items that crossed a
// stack boundary again. Items pulled past either end of the collection are
// translated elastically and spring back once scrolling goes idle.
//
// A Manager is not safe for concurrent use. Layout, ScrollBy, OnScrollIdle and
// Tick must be called from one goroutine.
package stack

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/ayn2op/stackview/anim"
)

// ScrollState records whether the last scroll step reached an end of the
// collection.
type ScrollState int

const (
	Neutral ScrollState = iota
	ReachedTop
	ReachedBottom
)

func (s ScrollState) String() string {
	switch s {
	case Neutral:
		return "neutral"
	case ReachedTop:
		return "reached_top"
	case ReachedBottom:
		return "reached_bottom"
	}
	return "unknown"
}

// Manager is the stacking layout engine.
type Manager struct {
	adapter Adapter
	log     *slog.Logger

	stackFraction   int
	slotSize        float64
	density         float64
	reboundAnimator anim.Animator
	appearAnimator  anim.Animator
	transitions     map[TransitionKind]Transition
	stagger         time.Duration

	geom         Geometry
	items        []*Item
	disappearing []*Item
	state        ScrollState
	anims        *animations
	pending      pendingChanges

	// Per pass.
	cache    cache
	scrap    map[int]*Item
	created  []*Item
	released int
}

// New returns a manager laying out the items supplied by adapter.
func New(adapter Adapter, opts ...Option) *Manager {
	m := &Manager{
		adapter:         adapter,
		log:             engineLogger,
		stackFraction:   DefaultStackFraction,
		slotSize:        DefaultSlotSize,
		density:         1,
		reboundAnimator: anim.ReboundSpring(),
		appearAnimator:  anim.AppearSpring(),
		transitions:     defaultTransitions(),
		stagger:         DefaultStagger,
		anims:           newAnimations(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Layout lays out the collection in a viewport of width x height. On an
// existing layout it keeps the scroll position, applies the data changes
// reported since the previous call and starts their transitions.
func (m *Manager) Layout(width, height int) error {
	if width <= 0 || height <= 0 {
		return nil
	}

	count := m.adapter.ItemCount()
	if count == 0 {
		for _, it := range m.items {
			m.release(it)
		}
		clear(m.items)
		m.items = m.items[:0]
		m.startDisappearing()
		m.state = Neutral
		m.pending.reset()
		return nil
	}

	if len(m.items) == 0 || !m.geom.Valid() || width != m.geom.ViewportWidth || height != m.geom.ViewportHeight {
		if err := m.resolveGeometry(width, height); err != nil {
			return err
		}
	}

	changed := !m.pending.empty()
	m.startDisappearing()

	m.cache.load(m.items)
	startIndex, startEdge := 0, 0
	if m.cache.len() > 0 {
		m.expand(m.expansionAnchor())
		first := m.cache.first()
		startIndex, startEdge = first.index, first.top-m.geom.Margins.Top
	}
	startIndex = min(startIndex, count-1)

	m.scrap = make(map[int]*Item, m.cache.len())
	for _, it := range m.cache.items {
		if m.pending.full || m.pending.isChanged(it.index) || it.index >= count {
			m.release(it)
			continue
		}
		m.scrap[it.index] = it
	}
	m.cache.clear()
	m.created = m.created[:0]
	m.released = 0

	err := m.fillAfter(startIndex-1, startEdge)
	if err == nil {
		err = m.fillBefore(startIndex, startEdge)
	}
	if err == nil && m.cache.len() == 0 {
		err = m.fillAfter(-1, 0)
	}
	if err == nil {
		err = m.settle()
	}
	if err == nil {
		m.formTopStack()
		m.formBottomStack()
	}
	m.releaseScrap()
	m.commit()
	if err != nil {
		return err
	}

	if changed {
		m.state = Neutral
		m.runPendingTransitions()
	}
	m.pending.reset()
	m.log.Debug("layout", "items", len(m.items), "created", len(m.created), "released", m.released)
	return nil
}

// settle moves a flat arrangement back into range when the collection no
// longer reaches from the top to the bottom of the viewport at the current
// offset, then fills the space that opened up.
func (m *Manager) settle() error {
	if m.cache.len() == 0 {
		return nil
	}
	start, end := m.contentStart(), m.contentEnd()

	shift := 0
	switch {
	case start > 0:
		shift = -start
	case end < m.geom.ViewportHeight && start < 0:
		shift = min(m.geom.ViewportHeight-end, -start)
	}
	if shift == 0 {
		return nil
	}

	m.cache.offset(shift)
	ends := m.cacheEnds()
	m.releaseOutside()
	return m.fillEnds(ends)
}

// fillRef locates the ends of the cached run of items: the index and top edge
// of the first item and the index and bottom edge of the last, margins
// included.
type fillRef struct {
	firstIndex, firstEdge int
	lastIndex, lastEdge   int
}

func (m *Manager) cacheEnds() fillRef {
	first, last := m.cache.first(), m.cache.last()
	mg := m.geom.Margins
	return fillRef{
		firstIndex: first.index,
		firstEdge:  first.top - mg.Top,
		lastIndex:  last.index,
		lastEdge:   last.bottom + mg.Bottom,
	}
}

// fillEnds fills the window on both sides of the cached items. ref stands in
// for the cache ends when the cache is empty.
func (m *Manager) fillEnds(ref fillRef) error {
	if m.cache.len() > 0 {
		ref = m.cacheEnds()
	}
	if err := m.fillBefore(ref.firstIndex, ref.firstEdge); err != nil {
		return err
	}
	if m.cache.len() > 0 {
		ref = m.cacheEnds()
	}
	return m.fillAfter(ref.lastIndex, ref.lastEdge)
}

// contentStart returns the row the first item of the collection starts at in
// the flat arrangement, margin included.
func (m *Manager) contentStart() int {
	first := m.cache.first()
	return first.top - m.geom.Margins.Top - first.index*m.geom.Pitch()
}

// contentEnd returns the row the last item of the collection ends at in the
// flat arrangement, margin included.
func (m *Manager) contentEnd() int {
	last := m.cache.last()
	remaining := m.adapter.ItemCount() - 1 - last.index
	return last.bottom + m.geom.Margins.Bottom + remaining*m.geom.Pitch()
}

// ScrollBy scrolls the content by dy rows, positive towards the end of the
// collection, and returns the part of dy that was applied.
func (m *Manager) ScrollBy(dy int) (int, error) {
	if dy == 0 || len(m.items) == 0 || !m.geom.Valid() || m.adapter.ItemCount() == 0 {
		return 0, nil
	}
	if m.anims.rebounding() {
		return 0, nil
	}
	if (m.state == ReachedBottom && dy > 0) || (m.state == ReachedTop && dy < 0) {
		m.pull(dy)
		return 0, nil
	}

	m.rebound()
	m.cache.load(m.items)
	m.expand(m.expansionAnchor())
	m.created = m.created[:0]
	m.released = 0

	delta := m.clampDelta(dy)
	var err error
	if delta != 0 {
		m.cache.offset(delta)
		// A long jump can move every cached item out of the window; their
		// old ends are where filling resumes then.
		ends := m.cacheEnds()
		m.releaseOutside()
		err = m.fillEnds(ends)
	}
	if err == nil {
		m.formTopStack()
		m.formBottomStack()
	}
	m.commit()
	if err != nil {
		return 0, err
	}

	prev := m.state
	switch {
	case delta != 0:
		m.state = Neutral
	case dy > 0:
		m.state = ReachedBottom
	default:
		m.state = ReachedTop
	}
	if m.state != prev {
		m.log.Debug("scroll state changed", "from", prev, "to", m.state)
	}
	if m.released > 0 || len(m.created) > 0 {
		m.log.Debug("recycled", "created", len(m.created), "released", m.released)
	}
	return -delta, nil
}

// clampDelta returns the offset to apply to the flat arrangement for a scroll
// of dy, limited so that neither end of the collection moves past its edge of
// the viewport.
func (m *Manager) clampDelta(dy int) int {
	if dy > 0 {
		room := max(m.contentEnd()-m.geom.ViewportHeight, 0)
		return -min(dy, room)
	}
	room := max(-m.contentStart(), 0)
	return min(-dy, room)
}

// commit makes the cache the laid out item list and empties it.
func (m *Manager) commit() {
	clear(m.items)
	m.items = append(m.items[:0], m.cache.items...)
	for _, it := range m.items {
		it.attached = true
	}
	m.cache.clear()
}

// releaseScrap releases the scrapped items the pass did not reuse.
func (m *Manager) releaseScrap() {
	if len(m.scrap) == 0 {
		m.scrap = nil
		return
	}
	items := make([]*Item, 0, len(m.scrap))
	for _, it := range m.scrap {
		items = append(items, it)
	}
	slices.SortFunc(items, func(a, b *Item) int { return cmp.Compare(a.index, b.index) })
	for _, it := range items {
		m.release(it)
	}
	m.scrap = nil
}

// runPendingTransitions classifies the laid out items against the changes
// reported since the previous layout and starts their transitions.
func (m *Manager) runPendingTransitions() {
	if m.pending.full {
		return
	}

	fresh := make(map[*Item]bool, len(m.created))
	for _, it := range m.created {
		fresh[it] = true
	}

	appearing := 0
	prevTop := 0
	for _, it := range m.items {
		switch {
		case fresh[it] && m.pending.isInserted(it.index):
			delay := time.Duration(appearing) * m.stagger
			if appearing > 0 && it.top-prevTop < it.Height()/4 {
				delay += 2 * m.stagger
			}
			m.runTransition(Appear, it, delay)
			appearing++
			prevTop = it.top
		case fresh[it] && m.pending.isChanged(it.index):
			m.runTransition(Change, it, 0)
		case !fresh[it]:
			m.runTransition(Persist, it, 0)
		}
	}
	if appearing > 0 {
		m.log.Debug("items appearing", "count", appearing)
	}
}

// startDisappearing runs the Disappear transition of the removed items. Items
// without tweens are released immediately; the rest stay drawable until their
// tweens finish.
func (m *Manager) startDisappearing() {
	for _, it := range m.pending.removed {
		if m.runTransition(Disappear, it, 0) == 0 {
			m.release(it)
			continue
		}
		m.disappearing = append(m.disappearing, it)
	}
	clear(m.pending.removed)
	m.pending.removed = m.pending.removed[:0]
}

// OnScrollIdle reports that scrolling stopped. Items translated by an
// over-pull start springing back to rest.
func (m *Manager) OnScrollIdle() {
	m.rebound()
}

// rebound starts a rebound animation for every translated item property that
// is not already animating.
func (m *Manager) rebound() {
	n := 0
	for _, it := range m.items {
		for _, p := range [...]Property{TranslationX, TranslationY} {
			v := it.property(p)
			if v == 0 || m.anims.has(it, p) {
				continue
			}
			m.anims.start(it, p, kindRebound, m.reboundAnimator.Animate(v, 0), 0, 0)
			n++
		}
	}
	if n > 0 {
		m.log.Debug("rebound started", "animations", n)
	}
}

// Tick advances all animations by dt. It reports whether any animation is
// still running.
func (m *Manager) Tick(dt time.Duration) bool {
	wasRebounding := m.anims.rebounding()
	m.anims.step(dt)
	if wasRebounding && !m.anims.rebounding() {
		m.log.Debug("rebound finished")
	}

	kept := m.disappearing[:0]
	for _, it := range m.disappearing {
		if m.anims.active(it) {
			kept = append(kept, it)
			continue
		}
		m.release(it)
	}
	clear(m.disappearing[len(kept):])
	m.disappearing = kept

	return m.anims.len() > 0
}

// Animating reports whether any animation is running.
func (m *Manager) Animating() bool {
	return m.anims.len() > 0
}

// Rebounding reports whether over-pulled items are springing back. Scrolling
// is suspended until they come to rest.
func (m *Manager) Rebounding() bool {
	return m.anims.rebounding()
}

// CanScrollVertically reports whether the layout scrolls vertically. It always
// does.
func (m *Manager) CanScrollVertically() bool {
	return true
}

// Items returns the laid out items in ascending index order. The slice is
// owned by the manager and is valid until the next call that changes the
// layout.
func (m *Manager) Items() []*Item {
	return m.items
}

// Disappearing returns the removed items still running a Disappear transition.
func (m *Manager) Disappearing() []*Item {
	return m.disappearing
}

// State returns the scroll state set by the last scroll step.
func (m *Manager) State() ScrollState {
	return m.state
}

// Geometry returns the resolved layout constants.
func (m *Manager) Geometry() Geometry {
	return m.geom
}

// TopStackBoundary returns the row above which items form the top stack.
func (m *Manager) TopStackBoundary() int {
	return m.geom.TopBoundary()
}

// BottomStackBoundary returns the row at or below which items form the bottom
// stack.
func (m *Manager) BottomStackBoundary() int {
	return m.geom.BottomBoundary()
}

// AnchorItem returns the first laid out item at or below the top stack
// boundary, or nil.
func (m *Manager) AnchorItem() *Item {
	if pos := anchorPos(m.items, m.geom.TopBoundary()); pos >= 0 {
		return m.items[pos]
	}
	return nil
}

// FirstItemBeforeBottomStack returns the last laid out item above the bottom
// stack boundary, or nil.
func (m *Manager) FirstItemBeforeBottomStack() *Item {
	if pos := beforeBottomPos(m.items, m.geom.BottomBoundary()); pos >= 0 {
		return m.items[pos]
	}
	return nil
}

// TopStackCount returns the number of laid out items above the top stack
// boundary.
func (m *Manager) TopStackCount() int {
	return topStackCount(m.items, m.geom.TopBoundary())
}

// BottomStackCount returns the number of laid out items at or below the bottom
// stack boundary.
func (m *Manager) BottomStackCount() int {
	return bottomStackCount(m.items, m.geom.BottomBoundary())
}

func (m *Manager) String() string {
	return fmt.Sprintf("stack.Manager{items: %d, state: %s, rebounding: %t}", len(m.items), m.state, m.Rebounding())
}
