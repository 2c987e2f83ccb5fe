package stack

import "math"

// Margins are the blank space the layout keeps around an item.
type Margins struct {
	Left, Top, Right, Bottom int
}

// Item is a materialized element of the collection. Its edges are set by the
// layout; its transform properties are set by animations and overscroll.
//
// Adapters own Value and Margins. Everything else belongs to the Manager while
// the item is attached.
type Item struct {
	// Value is the adapter's content for the item.
	Value any
	// Margins of the item. The margins of the first item resolve the layout
	// geometry.
	Margins Margins

	index                    int
	left, top, right, bottom int

	translationX, translationY float64
	scaleX, scaleY             float64
	alpha                      float64

	attached bool
}

// NewItem returns a detached item holding value.
func NewItem(value any) *Item {
	item := &Item{Value: value}
	item.reset()
	return item
}

func (it *Item) reset() {
	it.index = -1
	it.left, it.top, it.right, it.bottom = 0, 0, 0, 0
	it.translationX, it.translationY = 0, 0
	it.scaleX, it.scaleY = 1, 1
	it.alpha = 1
	it.attached = false
}

// Index returns the item's logical index in the collection.
func (it *Item) Index() int { return it.index }

// Top returns the layout top edge, excluding translation.
func (it *Item) Top() int { return it.top }

// Bottom returns the layout bottom edge, excluding translation.
func (it *Item) Bottom() int { return it.bottom }

// Left returns the layout left edge.
func (it *Item) Left() int { return it.left }

// Right returns the layout right edge.
func (it *Item) Right() int { return it.right }

// Width returns the laid out width.
func (it *Item) Width() int { return it.right - it.left }

// Height returns the laid out height.
func (it *Item) Height() int { return it.bottom - it.top }

// Translation returns the visual offset applied on top of the layout position.
func (it *Item) Translation() (x, y float64) { return it.translationX, it.translationY }

// Scale returns the visual scale factors.
func (it *Item) Scale() (x, y float64) { return it.scaleX, it.scaleY }

// Alpha returns the item's opacity in the range [0, 1].
func (it *Item) Alpha() float64 { return it.alpha }

// VisualTop returns the row the item is drawn at: its top edge plus the
// rounded vertical translation.
func (it *Item) VisualTop() int {
	return it.top + int(math.Round(it.translationY))
}

// VisualLeft returns the column the item is drawn at.
func (it *Item) VisualLeft() int {
	return it.left + int(math.Round(it.translationX))
}

// Attached reports whether the item is currently laid out by a Manager.
func (it *Item) Attached() bool { return it.attached }

func (it *Item) place(left, top, width, height int) {
	it.left, it.top = left, top
	it.right, it.bottom = left+width, top+height
}

func (it *Item) moveTo(top int) {
	it.offset(top - it.top)
}

func (it *Item) offset(dy int) {
	it.top += dy
	it.bottom += dy
}

func (it *Item) translated() bool {
	return it.translationX != 0 || it.translationY != 0
}

func (it *Item) property(p Property) float64 {
	switch p {
	case TranslationX:
		return it.translationX
	case TranslationY:
		return it.translationY
	case ScaleX:
		return it.scaleX
	case ScaleY:
		return it.scaleY
	case Alpha:
		return it.alpha
	}
	return 0
}

func (it *Item) setProperty(p Property, v float64) {
	switch p {
	case TranslationX:
		it.translationX = v
	case TranslationY:
		it.translationY = v
	case ScaleX:
		it.scaleX = v
	case ScaleY:
		it.scaleY = v
	case Alpha:
		it.alpha = v
	}
}
