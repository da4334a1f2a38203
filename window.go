package picoview

import (
	"github.com/1broseidon/picoview/backend"
	"github.com/1broseidon/picoview/event"
	"github.com/1broseidon/picoview/geom"
)

// State is a window handle's lifecycle position. StateClosed is terminal;
// every operation on a closed handle fails ErrHandleClosed.
type State uint8

const (
	// StateCreated covers the gap between creation and the first pump,
	// while the window system is still materializing the window.
	StateCreated State = iota
	StateVisible
	StateHidden
	// StateClosing means the user or window manager asked the window to
	// close. The window stays alive until Close.
	StateClosing
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateVisible:
		return "visible"
	case StateHidden:
		return "hidden"
	case StateClosing:
		return "closing"
	case StateClosed:
		return "closed"
	}
	return "unknown"
}

// Window is a handle to one native window. It is not safe for concurrent
// use; the connecting goroutine owns it.
type Window struct {
	conn   *Connection
	native backend.Window
	state  State
}

func newWindow(c *Connection, nw backend.Window) *Window {
	return &Window{conn: c, native: nw}
}

// State reports the handle's lifecycle position.
func (w *Window) State() State {
	return w.state
}

// Pump returns the events accumulated since the last call without
// blocking. Seeing WindowClose moves the handle to StateClosing; the
// caller decides whether to Close.
func (w *Window) Pump() []event.Event {
	if w.state == StateClosed {
		return nil
	}
	if w.state == StateCreated {
		// Windows are mapped at creation; the first pump observes that.
		w.state = StateVisible
	}

	events := w.native.Pump()
	for _, ev := range events {
		if _, ok := ev.(event.WindowClose); ok && w.state != StateClosing {
			w.state = StateClosing
		}
	}
	return events
}

func (w *Window) SetTitle(title string) error {
	if w.state == StateClosed {
		return ErrHandleClosed
	}
	return w.native.SetTitle(title)
}

func (w *Window) SetSize(size geom.Size) error {
	if w.state == StateClosed {
		return ErrHandleClosed
	}
	return w.native.SetSize(size)
}

func (w *Window) SetPosition(pos geom.Point) error {
	if w.state == StateClosed {
		return ErrHandleClosed
	}
	return w.native.SetPosition(pos)
}

// SetVisible shows or hides the window and tracks the Visible/Hidden
// states. A closing window can still be hidden or re-shown.
func (w *Window) SetVisible(visible bool) error {
	if w.state == StateClosed {
		return ErrHandleClosed
	}
	if err := w.native.SetVisible(visible); err != nil {
		return err
	}
	if w.state != StateClosing {
		if visible {
			w.state = StateVisible
		} else {
			w.state = StateHidden
		}
	}
	return nil
}

func (w *Window) SetCursor(c event.Cursor) error {
	if w.state == StateClosed {
		return ErrHandleClosed
	}
	return w.native.SetCursor(c)
}

func (w *Window) WarpCursor(pos geom.Point) error {
	if w.state == StateClosed {
		return ErrHandleClosed
	}
	return w.native.WarpCursor(pos)
}

func (w *Window) ClipboardText() (string, error) {
	if w.state == StateClosed {
		return "", ErrHandleClosed
	}
	return w.native.ClipboardText()
}

func (w *Window) SetClipboardText(text string) error {
	if w.state == StateClosed {
		return ErrHandleClosed
	}
	return w.native.SetClipboardText(text)
}

// GrabKeyboard routes all keyboard input to this window while held.
// Availability is platform-dependent; see backend.Capabilities.
func (w *Window) GrabKeyboard(grab bool) error {
	if w.state == StateClosed {
		return ErrHandleClosed
	}
	return w.native.GrabKeyboard(grab)
}

// OpenURL opens the URL with the platform's default handler. Best effort.
func (w *Window) OpenURL(url string) bool {
	if w.state == StateClosed {
		return false
	}
	return w.native.OpenURL(url)
}

// GLSurface creates an OpenGL surface on the window. The caller drives the
// context; picoview only hands it over.
func (w *Window) GLSurface(cfg backend.GLConfig) (backend.Surface, error) {
	if w.state == StateClosed {
		return nil, ErrHandleClosed
	}
	return w.native.GLSurface(cfg)
}

// Handle returns the native handle: an X window id, an HWND, or an NSView
// pointer, fit to pass as Descriptor.Parent in a host process.
func (w *Window) Handle() uintptr {
	if w.state == StateClosed {
		return 0
	}
	return w.native.Handle()
}

// Close releases the native window. Idempotent; the native release
// happens exactly once, on the first call.
func (w *Window) Close() error {
	if w.state == StateClosed {
		return nil
	}
	w.state = StateClosed
	return w.native.Destroy()
}
