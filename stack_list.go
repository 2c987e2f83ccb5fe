package stackview

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ayn2op/stackview/keybind"
	"github.com/ayn2op/stackview/stack"
	"github.com/gdamore/tcell/v2"
)

const (
	// DefaultIdleDelay is how long scrolling must pause before over-pulled
	// cards spring back.
	DefaultIdleDelay = 150 * time.Millisecond
	// minCardHeight is the smallest automatic card height in rows.
	minCardHeight = 3
)

// CardSource supplies the cards shown by a StackList.
type CardSource interface {
	// Len returns the number of cards.
	Len() int
	// Card returns the card at index.
	Card(index int) (Card, error)
}

// StackListKeyMap holds the keys a StackList responds to.
type StackListKeyMap struct {
	Up       keybind.Keybind
	Down     keybind.Keybind
	PageUp   keybind.Keybind
	PageDown keybind.Keybind
	Top      keybind.Keybind
	Bottom   keybind.Keybind
}

// DefaultStackListKeyMap returns arrow, vi and paging keys.
func DefaultStackListKeyMap() StackListKeyMap {
	return StackListKeyMap{
		Up:       keybind.NewKeybind(keybind.WithKeys("up", "k"), keybind.WithHelp("↑/k", "up")),
		Down:     keybind.NewKeybind(keybind.WithKeys("down", "j"), keybind.WithHelp("↓/j", "down")),
		PageUp:   keybind.NewKeybind(keybind.WithKeys("pgup", "ctrl+b"), keybind.WithHelp("pgup", "page up")),
		PageDown: keybind.NewKeybind(keybind.WithKeys("pgdn", "ctrl+f"), keybind.WithHelp("pgdn", "page down")),
		Top:      keybind.NewKeybind(keybind.WithKeys("home", "g"), keybind.WithHelp("home/g", "first")),
		Bottom:   keybind.NewKeybind(keybind.WithKeys("end", "G"), keybind.WithHelp("end/G", "last")),
	}
}

// ShortHelp returns the keybinds shown in single-line help.
func (k StackListKeyMap) ShortHelp() []keybind.Keybind {
	return []keybind.Keybind{k.Up, k.Down}
}

// FullHelp returns the keybinds shown in full help, one column per group.
func (k StackListKeyMap) FullHelp() [][]keybind.Keybind {
	return [][]keybind.Keybind{{k.Up, k.Down}, {k.PageUp, k.PageDown}, {k.Top, k.Bottom}}
}

// StackList displays a collection of cards whose overflow collapses into
// stacks at the top and bottom of the list instead of scrolling away.
type StackList struct {
	*Box

	source    CardSource
	pool      *stack.Pool
	manager   *stack.Manager
	scrollBar *ScrollBar
	keyMap    StackListKeyMap
	log       *slog.Logger

	cardHeight  int
	cardMargins stack.Margins
	scrollStep  int
	wheelStep   int
	idleDelay   time.Duration
	emptyText   string

	// Viewport the manager was last laid out in.
	layoutWidth, layoutHeight int
	needsLayout               bool

	scrolling bool
	quiet     time.Duration
}

// NewStackList returns a list of the cards in source. The options configure
// the layout engine.
func NewStackList(source CardSource, opts ...stack.Option) *StackList {
	l := &StackList{
		Box:        NewBox(),
		source:     source,
		scrollBar:  NewScrollBar(),
		keyMap:     DefaultStackListKeyMap(),
		log:        slog.Default(),
		scrollStep: 1,
		wheelStep:  2,
		idleDelay:  DefaultIdleDelay,
		emptyText:  "Nothing here yet",
	}
	l.pool = stack.NewPool(l)
	l.manager = stack.New(l.pool, opts...)
	l.needsLayout = true
	return l
}

// Len implements stack.Source.
func (l *StackList) Len() int {
	return l.source.Len()
}

// Bind implements stack.Source.
func (l *StackList) Bind(item *stack.Item, index int) error {
	card, err := l.source.Card(index)
	if err != nil {
		return fmt.Errorf("card %d: %w", index, err)
	}
	item.Value = card
	item.Margins = l.cardMargins
	return nil
}

// Measure implements stack.Source. Cards span the list's width.
func (l *StackList) Measure(*stack.Item) (int, int) {
	if l.cardHeight > 0 {
		return 0, l.cardHeight
	}
	return 0, max(l.layoutHeight/4, minCardHeight)
}

// SetCardHeight sets the card height in rows. Zero picks a quarter of the
// list's height.
func (l *StackList) SetCardHeight(height int) *StackList {
	l.cardHeight = max(height, 0)
	l.NotifyDataSetChanged()
	return l
}

// SetCardMargins sets the blank space around every card.
func (l *StackList) SetCardMargins(margins stack.Margins) *StackList {
	l.cardMargins = margins
	l.NotifyDataSetChanged()
	return l
}

// SetScrollStep sets the rows scrolled by one up or down key press.
func (l *StackList) SetScrollStep(rows int) *StackList {
	l.scrollStep = max(rows, 1)
	return l
}

// SetWheelStep sets the rows scrolled by one mouse wheel notch.
func (l *StackList) SetWheelStep(rows int) *StackList {
	l.wheelStep = max(rows, 1)
	return l
}

// SetIdleDelay sets how long scrolling must pause before over-pulled cards
// spring back.
func (l *StackList) SetIdleDelay(d time.Duration) *StackList {
	if d > 0 {
		l.idleDelay = d
	}
	return l
}

// SetKeyMap sets the keys the list responds to.
func (l *StackList) SetKeyMap(keyMap StackListKeyMap) *StackList {
	l.keyMap = keyMap
	return l
}

// KeyMap returns the keys the list responds to.
func (l *StackList) KeyMap() StackListKeyMap {
	return l.keyMap
}

// SetEmptyText sets the text shown while there are no cards.
func (l *StackList) SetEmptyText(text string) *StackList {
	l.emptyText = text
	return l
}

// SetLogger sets the logger used to report layout errors.
func (l *StackList) SetLogger(logger *slog.Logger) *StackList {
	if logger != nil {
		l.log = logger
	}
	return l
}

// ScrollBar returns the list's scroll bar.
func (l *StackList) ScrollBar() *ScrollBar {
	return l.scrollBar
}

// Manager returns the layout engine behind the list.
func (l *StackList) Manager() *stack.Manager {
	return l.manager
}

// PoolStats returns the card recycling counters.
func (l *StackList) PoolStats() stack.PoolStats {
	return l.pool.Stats()
}

// NotifyItemRangeInserted reports that n cards were inserted at start.
func (l *StackList) NotifyItemRangeInserted(start, n int) {
	l.manager.NotifyItemRangeInserted(start, n)
	l.needsLayout = true
}

// NotifyItemRangeRemoved reports that n cards were removed at start.
func (l *StackList) NotifyItemRangeRemoved(start, n int) {
	l.manager.NotifyItemRangeRemoved(start, n)
	l.needsLayout = true
}

// NotifyItemMoved reports that the card at from moved to to.
func (l *StackList) NotifyItemMoved(from, to int) {
	l.manager.NotifyItemMoved(from, to)
	l.needsLayout = true
}

// NotifyItemRangeChanged reports that the content of n cards at start
// changed.
func (l *StackList) NotifyItemRangeChanged(start, n int) {
	l.manager.NotifyItemRangeChanged(start, n)
	l.needsLayout = true
}

// NotifyDataSetChanged reports that every card may have changed.
func (l *StackList) NotifyDataSetChanged() {
	l.manager.NotifyDataSetChanged()
	l.needsLayout = true
}

// cardRect returns the area cards are drawn in. The last inner column is
// kept for the scroll bar.
func (l *StackList) cardRect() (int, int, int, int) {
	x, y, width, height := l.GetInnerRect()
	return x, y, max(width-1, 0), height
}

// layout lays the cards out again when the data or the viewport changed.
func (l *StackList) layout() {
	_, _, width, height := l.cardRect()
	if width <= 0 || height <= 0 {
		return
	}
	if !l.needsLayout && width == l.layoutWidth && height == l.layoutHeight {
		return
	}
	l.layoutWidth, l.layoutHeight = width, height
	l.needsLayout = false
	if err := l.manager.Layout(width, height); err != nil {
		l.log.Error("failed to lay out cards", "err", err)
	}
}

// Draw draws the cards, the scroll bar and the list's frame.
func (l *StackList) Draw(screen tcell.Screen) {
	l.Box.Draw(screen)
	l.layout()

	x, y, width, height := l.cardRect()
	if width <= 0 || height <= 0 {
		return
	}

	if l.source.Len() == 0 && len(l.manager.Disappearing()) == 0 {
		Print(screen, l.emptyText, x, y+height/2, width, AlignmentCenter, Styles.SecondaryTextColor)
		return
	}

	clipped := newClippedScreen(screen, x, y, width, height)
	for _, it := range l.manager.Disappearing() {
		l.drawItem(clipped, x, y, it)
	}
	for _, it := range l.manager.Items() {
		l.drawItem(clipped, x, y, it)
	}

	l.updateScrollBar()
	l.scrollBar.SetRect(x+width, y, 1, height)
	l.scrollBar.Draw(screen)
}

func (l *StackList) drawItem(screen tcell.Screen, x, y int, it *stack.Item) {
	card, ok := it.Value.(Card)
	if !ok {
		return
	}
	card.Draw(screen, x+it.VisualLeft(), y+it.VisualTop(), it.Width(), it.Height(), it.Alpha(), l.GetBackgroundColor())
}

// updateScrollBar sizes the thumb to the cards shown between the stacks.
func (l *StackList) updateScrollBar() {
	count := l.source.Len()
	items := l.manager.Items()
	flat := len(items) - l.manager.TopStackCount() - l.manager.BottomStackCount()
	offset := 0
	if anchor := l.manager.AnchorItem(); anchor != nil {
		offset = anchor.Index()
	} else if count > 0 {
		offset = count - 1
	}
	l.scrollBar.SetLengths(count, max(flat, 1)).SetOffset(offset)
}

// ScrollBy scrolls the cards by dy rows. Positive values move toward the end
// of the collection.
func (l *StackList) ScrollBy(dy int) Command {
	if dy == 0 {
		return nil
	}
	l.layout()
	if _, err := l.manager.ScrollBy(dy); err != nil {
		l.log.Error("failed to scroll cards", "dy", dy, "err", err)
	}
	l.scrolling = true
	l.quiet = 0
	return AnimateCommand{}
}

// scrollToEnd scrolls to the first or last card without over-pulling.
func (l *StackList) scrollToEnd(direction int) Command {
	state := l.manager.State()
	if direction < 0 && state == stack.ReachedTop || direction > 0 && state == stack.ReachedBottom {
		return nil
	}
	g := l.manager.Geometry()
	distance := (l.source.Len()+1)*g.Pitch() + g.ViewportHeight
	return l.ScrollBy(direction * distance)
}

// InputHandler scrolls the list.
func (l *StackList) InputHandler(event *tcell.EventKey) Command {
	_, _, _, height := l.cardRect()
	page := max(height/2, 1)
	switch {
	case keybind.Matches(event, l.keyMap.Up):
		return l.ScrollBy(-l.scrollStep)
	case keybind.Matches(event, l.keyMap.Down):
		return l.ScrollBy(l.scrollStep)
	case keybind.Matches(event, l.keyMap.PageUp):
		return l.ScrollBy(-page)
	case keybind.Matches(event, l.keyMap.PageDown):
		return l.ScrollBy(page)
	case keybind.Matches(event, l.keyMap.Top):
		return l.scrollToEnd(-1)
	case keybind.Matches(event, l.keyMap.Bottom):
		return l.scrollToEnd(1)
	}
	return nil
}

// MouseHandler scrolls the list with the mouse wheel.
func (l *StackList) MouseHandler(action MouseAction, event *tcell.EventMouse) Command {
	if !l.InRect(event.Position()) {
		return nil
	}
	switch action {
	case MouseScrollUp:
		return l.ScrollBy(-l.wheelStep)
	case MouseScrollDown:
		return l.ScrollBy(l.wheelStep)
	}
	return nil
}

// Tick advances card animations and springs over-pulled cards back once
// scrolling has paused for the idle delay.
func (l *StackList) Tick(dt time.Duration) bool {
	if l.scrolling {
		l.quiet += dt
		if l.quiet >= l.idleDelay {
			l.scrolling = false
			l.manager.OnScrollIdle()
		}
	}
	animating := l.manager.Tick(dt)
	return animating || l.scrolling
}

var (
	_ Primitive    = &StackList{}
	_ Animated     = &StackList{}
	_ stack.Source = &StackList{}
)
