package stackview

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

const (
	// The size of the queued updates channel.
	updatesQueueSize = 100
	// DefaultFrameRate is the number of frames per second delivered to an
	// animated root primitive.
	DefaultFrameRate = 60
)

// MouseAction indicates one of the actions the mouse is logically doing.
type MouseAction int16

// Available mouse actions.
const (
	MouseMove MouseAction = iota
	MouseLeftDown
	MouseLeftUp
	MouseLeftClick
	MouseScrollUp
	MouseScrollDown
)

// queuedUpdate represents the execution of f queued by
// Application.QueueUpdate(). If "done" is not nil, it receives exactly one
// element after f has executed.
type queuedUpdate struct {
	f    func()
	done chan struct{}
}

// Application owns the screen, runs the event loop and delivers frames to an
// animated root primitive.
//
// The following displays a primitive p until it returns a QuitCommand:
//
//	if err := stackview.NewApplication().SetRoot(p).Run(); err != nil {
//	    panic(err)
//	}
type Application struct {
	sync.RWMutex

	screen tcell.Screen
	focus  Primitive
	root   Primitive

	events  chan tcell.Event
	updates chan queuedUpdate

	frameRate int
	frames    *time.Ticker
	lastFrame time.Time

	lastMouseX, lastMouseY int
	mouseDownX, mouseDownY int
	lastMouseButtons       tcell.ButtonMask

	// forceRedraw requests a full clear before the next frame.
	forceRedraw bool
}

// NewApplication creates and returns a new application.
func NewApplication() *Application {
	return &Application{
		updates:   make(chan queuedUpdate, updatesQueueSize),
		frameRate: DefaultFrameRate,
	}
}

// SetScreen sets an already initialized screen. It has no effect once a
// screen is set.
func (a *Application) SetScreen(screen tcell.Screen) *Application {
	a.Lock()
	defer a.Unlock()
	if a.screen == nil {
		a.screen = screen
		a.forceRedraw = true
	}
	return a
}

// SetFrameRate sets the frames per second delivered to animated primitives.
func (a *Application) SetFrameRate(fps int) *Application {
	a.Lock()
	defer a.Unlock()
	if fps > 0 {
		a.frameRate = fps
	}
	return a
}

// Run starts the application and thus the event loop. It returns when
// [Application.Stop] was called or the screen reported an error.
func (a *Application) Run() error {
	a.Lock()
	if a.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			a.Unlock()
			return err
		}
		if err = screen.Init(); err != nil {
			a.Unlock()
			return err
		}
		a.screen = screen
	}
	screen := a.screen
	screen.EnableMouse()
	a.events = make(chan tcell.Event, updatesQueueSize)
	events := a.events
	a.Unlock()

	// Panics leave the terminal in raw mode unless the screen is finalized.
	defer func() {
		if p := recover(); p != nil {
			a.Stop()
			panic(p)
		}
	}()

	go func() {
		for {
			event := screen.PollEvent()
			events <- event
			if event == nil {
				return
			}
		}
	}()

	a.draw()
	a.animate()
	defer a.stopFrames()

	var appErr error
	for {
		var frames <-chan time.Time
		if a.frames != nil {
			frames = a.frames.C
		}

		select {
		case event := <-events:
			if event == nil {
				return appErr
			}
			if a.handleEvent(event) {
				a.draw()
				a.animate()
			}
			if err, ok := event.(*tcell.EventError); ok {
				appErr = err
				a.Stop()
			}
		case update := <-a.updates:
			update.f()
			if update.done != nil {
				update.done <- struct{}{}
			}
			a.animate()
		case now := <-frames:
			a.frame(now)
		}
	}
}

func (a *Application) handleEvent(event tcell.Event) bool {
	a.RLock()
	root := a.root
	a.RUnlock()

	switch event := event.(type) {
	case *tcell.EventKey:
		if root != nil && root.HasFocus() {
			return a.executeCommand(root.InputHandler(event))
		}
	case *tcell.EventResize:
		a.Lock()
		a.forceRedraw = true
		a.Unlock()
		return true
	case *tcell.EventMouse:
		return a.fireMouseActions(root, event)
	}
	return false
}

// fireMouseActions derives mouse actions from event and forwards them to the
// root primitive.
func (a *Application) fireMouseActions(root Primitive, event *tcell.EventMouse) bool {
	if root == nil {
		return false
	}

	handled := false
	fire := func(action MouseAction) {
		if a.executeCommand(root.MouseHandler(action, event)) {
			handled = true
		}
	}

	x, y := event.Position()
	buttons := event.Buttons()
	if x != a.lastMouseX || y != a.lastMouseY {
		fire(MouseMove)
		a.lastMouseX, a.lastMouseY = x, y
	}

	if (buttons^a.lastMouseButtons)&tcell.ButtonPrimary != 0 {
		if buttons&tcell.ButtonPrimary != 0 {
			fire(MouseLeftDown)
			a.mouseDownX, a.mouseDownY = x, y
		} else {
			fire(MouseLeftUp)
			if x == a.mouseDownX && y == a.mouseDownY {
				fire(MouseLeftClick)
			}
		}
	}
	if buttons&tcell.WheelUp != 0 {
		fire(MouseScrollUp)
	}
	if buttons&tcell.WheelDown != 0 {
		fire(MouseScrollDown)
	}
	a.lastMouseButtons = buttons & (tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle)
	return handled
}

// animate starts the frame ticker when the root primitive is animated.
func (a *Application) animate() {
	a.Lock()
	defer a.Unlock()
	if _, ok := a.root.(Animated); !ok || a.frames != nil || a.screen == nil {
		return
	}
	a.frames = time.NewTicker(time.Second / time.Duration(a.frameRate))
	a.lastFrame = time.Now()
}

func (a *Application) stopFrames() {
	a.Lock()
	defer a.Unlock()
	if a.frames != nil {
		a.frames.Stop()
		a.frames = nil
	}
}

func (a *Application) frame(now time.Time) {
	a.Lock()
	animated, _ := a.root.(Animated)
	dt := now.Sub(a.lastFrame)
	a.lastFrame = now
	a.Unlock()

	if animated == nil {
		a.stopFrames()
		return
	}
	more := animated.Tick(dt)
	a.draw()
	if !more {
		a.stopFrames()
	}
}

// Stop stops the application, causing Run() to return.
func (a *Application) Stop() {
	a.Lock()
	defer a.Unlock()
	screen := a.screen
	if screen == nil {
		return
	}
	screen.Fini()
	a.screen = nil
}

// Draw queues a redraw of the root primitive.
func (a *Application) Draw() *Application {
	a.QueueUpdate(func() {
		a.draw()
	})
	return a
}

// draw actually does what Draw() promises to do.
func (a *Application) draw() *Application {
	a.Lock()
	screen := a.screen
	root := a.root
	forceRedraw := a.forceRedraw
	a.forceRedraw = false
	a.Unlock()

	if screen == nil || root == nil {
		return a
	}

	width, height := screen.Size()
	root.SetRect(0, 0, width, height)
	if forceRedraw {
		screen.Clear()
	}
	root.Draw(screen)
	screen.Show()
	return a
}

// SetRoot sets the root primitive and gives it focus.
func (a *Application) SetRoot(root Primitive) *Application {
	a.Lock()
	a.root = root
	if a.screen != nil {
		a.forceRedraw = true
	}
	a.Unlock()

	a.SetFocus(root)
	return a
}

// SetFocus moves the keyboard focus to p, blurring the previous primitive.
func (a *Application) SetFocus(p Primitive) *Application {
	a.Lock()
	if a.focus != nil {
		a.focus.Blur()
	}
	a.focus = p
	a.Unlock()
	if p != nil {
		p.Focus()
	}
	return a
}

// GetFocus returns the primitive which has the current focus. If none has it,
// nil is returned.
func (a *Application) GetFocus() Primitive {
	a.RLock()
	defer a.RUnlock()
	return a.focus
}

// QueueUpdate runs f on the event loop goroutine and returns after it has
// executed. It must not be called from the event loop itself.
func (a *Application) QueueUpdate(f func()) *Application {
	ch := make(chan struct{})
	a.updates <- queuedUpdate{f: f, done: ch}
	<-ch
	return a
}

// QueueUpdateDraw works like QueueUpdate() except it refreshes the screen
// immediately after executing f.
func (a *Application) QueueUpdateDraw(f func()) *Application {
	a.QueueUpdate(func() {
		f()
		a.draw()
	})
	return a
}

func (a *Application) executeCommand(cmd Command) bool {
	switch c := cmd.(type) {
	case nil:
		return false
	case BatchCommand:
		handled := false
		for _, item := range c {
			if a.executeCommand(item) {
				handled = true
			}
		}
		return handled
	case RedrawCommand, AnimateCommand:
		return true
	case QuitCommand:
		a.Stop()
		return false
	}
	return false
}
