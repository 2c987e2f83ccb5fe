package stackview

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Primitive is implemented by everything the Application can draw.
type Primitive interface {
	// Draw draws this primitive onto the screen.
	Draw(screen tcell.Screen)

	// GetRect returns the current position of the primitive, x, y, width, and
	// height.
	GetRect() (int, int, int, int)
	// SetRect sets a new position of the primitive.
	SetRect(x, y, width, height int)

	// InputHandler receives key events when this primitive has focus.
	InputHandler(event *tcell.EventKey) Command
	// MouseHandler receives mouse events inside the primitive.
	MouseHandler(action MouseAction, event *tcell.EventMouse) Command

	// HasFocus determines if the primitive has focus.
	HasFocus() bool
	// Focus is called by the application when the primitive receives focus.
	Focus()
	// Blur is called by the application when the primitive loses focus.
	Blur()
}

// Animated is implemented by primitives that change between events. The
// application calls Tick on every frame until it returns false.
type Animated interface {
	Tick(dt time.Duration) bool
}
