//go:build windows

package win32

import (
	"fmt"
	"unsafe"

	"github.com/atotto/clipboard"
	"golang.org/x/sys/windows"

	"github.com/1broseidon/picoview/backend"
	"github.com/1broseidon/picoview/event"
	"github.com/1broseidon/picoview/geom"
	"github.com/1broseidon/picoview/internal/evqueue"
	"github.com/1broseidon/picoview/internal/pacing"
)

// Window is one Win32 window. The wndProc translates messages into the
// queue while Pump dispatches; the pacer raises its tick flag from the
// vblank thread.
type Window struct {
	b    *Backend
	hwnd windows.HWND

	embedded  bool
	style     uint32
	queue     *evqueue.Queue
	pacer     *pacing.Pacer
	destroyed bool

	lastMods   event.Modifiers
	lastMouse  geom.Point
	cursor     windows.Handle
	pendingKey *event.KeyDown
	tracking   bool
}

var _ backend.Window = (*Window)(nil)

// CreateWindow creates a native window. Style bits are fixed at creation:
// decorated top-level windows get the overlapped frame, undecorated ones
// WS_POPUP, embedded ones WS_CHILD under the parent HWND.
func (b *Backend) CreateWindow(desc backend.Descriptor) (backend.Window, error) {
	if b.closed {
		return nil, fmt.Errorf("%w: backend is closed", backend.ErrWindowCreate)
	}
	if desc.Size.Width == 0 || desc.Size.Height == 0 {
		return nil, fmt.Errorf("%w: zero initial size", backend.ErrWindowCreate)
	}

	embedded := desc.Parent != 0
	var style uint32
	switch {
	case embedded:
		style = wsChild
	case desc.Decorated:
		style = wsOverlapped | wsCaption | wsSysmenu | wsMinimizebox
		if desc.Resizable {
			style |= wsThickframe | wsMaximizebox
		}
	default:
		style = wsPopup
	}

	// The descriptor size is the client area; grow the outer rect by the
	// frame so the drawable surface comes out exactly as requested.
	outer := outerRect(style, desc.Size)
	outerW := outer.Right - outer.Left
	outerH := outer.Bottom - outer.Top

	var x, y int32
	switch {
	case desc.Position != nil:
		x, y = int32(desc.Position.X), int32(desc.Position.Y)
	case embedded:
		x, y = 0, 0
	default:
		// Centered default placement on the primary display.
		screenW, _, _ := procGetSystemMetrics.Call(smCxScreen)
		screenH, _, _ := procGetSystemMetrics.Call(smCyScreen)
		x = (int32(screenW) - outerW) / 2
		y = (int32(screenH) - outerH) / 2
	}

	title, err := windows.UTF16PtrFromString(desc.Title)
	if err != nil {
		return nil, fmt.Errorf("%w: bad title: %v", backend.ErrWindowCreate, err)
	}
	clsName, _ := windows.UTF16PtrFromString(className)

	hwnd, _, callErr := procCreateWindowExW.Call(
		0,
		uintptr(unsafe.Pointer(clsName)),
		uintptr(unsafe.Pointer(title)),
		uintptr(style),
		uintptr(x), uintptr(y),
		uintptr(outerW), uintptr(outerH),
		uintptr(desc.Parent),
		0,
		uintptr(b.instance),
		0,
	)
	if hwnd == 0 {
		return nil, fmt.Errorf("%w: CreateWindowEx failed: %v", backend.ErrWindowCreate, callErr)
	}

	w := &Window{
		b:        b,
		hwnd:     windows.HWND(hwnd),
		embedded: embedded,
		style:    style,
		queue:    evqueue.New(),
	}
	w.cursor = loadCursor(event.CursorDefault)
	b.windows[w.hwnd] = w

	w.pacer = pacing.Start(pacing.Config{
		WaitVBlank:  waitVBlank,
		RefreshRate: func() float64 { return b.refreshRateFor(w.hwnd) },
		ForceTimer:  b.cfg != nil && b.cfg.Pacing.ForceTimer,
	})

	procShowWindow.Call(uintptr(w.hwnd), swShow)
	return w, nil
}

// Handle returns the HWND for embedding by a host.
func (w *Window) Handle() uintptr {
	return uintptr(w.hwnd)
}

func (w *Window) SetTitle(title string) error {
	if w.destroyed {
		return backend.ErrHandleClosed
	}
	t, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return fmt.Errorf("bad title: %w", err)
	}
	procSetWindowTextW.Call(uintptr(w.hwnd), uintptr(unsafe.Pointer(t)))
	return nil
}

// SetSize requests a client-area resize; WM_SIZE confirms it later as a
// WindowResize event. The outer rect grows by the frame of the style the
// window was actually created with, so the client area comes out exactly
// as requested for decorated, popup, and child windows alike.
func (w *Window) SetSize(size geom.Size) error {
	if w.destroyed {
		return backend.ErrHandleClosed
	}
	outer := outerRect(w.style, size)
	procSetWindowPos.Call(
		uintptr(w.hwnd), 0, 0, 0,
		uintptr(outer.Right-outer.Left), uintptr(outer.Bottom-outer.Top),
		swpNomove|swpNozorder|swpNoactivate,
	)
	return nil
}

// outerRect converts a client-area size to the window rect for a style.
// Child windows have no frame of their own; popup and decorated styles get
// whatever AdjustWindowRectEx says their frame adds.
func outerRect(style uint32, size geom.Size) rect {
	outer := rect{Right: int32(size.Width), Bottom: int32(size.Height)}
	if style&wsChild == 0 {
		procAdjustWindowRectEx.Call(uintptr(unsafe.Pointer(&outer)), uintptr(style), 0, 0)
	}
	return outer
}

func (w *Window) SetPosition(pos geom.Point) error {
	if w.destroyed {
		return backend.ErrHandleClosed
	}
	procSetWindowPos.Call(
		uintptr(w.hwnd), 0,
		uintptr(int32(pos.X)), uintptr(int32(pos.Y)), 0, 0,
		swpNosize|swpNozorder|swpNoactivate,
	)
	return nil
}

func (w *Window) SetVisible(visible bool) error {
	if w.destroyed {
		return backend.ErrHandleClosed
	}
	cmd := uintptr(swHide)
	if visible {
		cmd = swShow
	}
	procShowWindow.Call(uintptr(w.hwnd), cmd)
	return nil
}

func (w *Window) ClipboardText() (string, error) {
	if w.destroyed {
		return "", backend.ErrHandleClosed
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("clipboard read failed: %w", err)
	}
	return text, nil
}

func (w *Window) SetClipboardText(text string) error {
	if w.destroyed {
		return backend.ErrHandleClosed
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard write failed: %w", err)
	}
	return nil
}

// GrabKeyboard is unsupported: Win32 has no keyboard grab short of a
// global hook, which is out of bounds for a library.
func (w *Window) GrabKeyboard(bool) error {
	if w.destroyed {
		return backend.ErrHandleClosed
	}
	return backend.ErrUnsupported
}

// OpenURL opens the URL with the shell default handler. Best effort.
func (w *Window) OpenURL(url string) bool {
	if w.destroyed {
		return false
	}
	verb, _ := windows.UTF16PtrFromString("open")
	u, err := windows.UTF16PtrFromString(url)
	if err != nil {
		return false
	}
	ret, _, _ := procShellExecuteW.Call(
		0, uintptr(unsafe.Pointer(verb)), uintptr(unsafe.Pointer(u)), 0, 0, swShow,
	)
	return ret > 32
}

// Destroy joins the pacer thread first so no tick is sent against a dead
// HWND, then destroys the native window.
func (w *Window) Destroy() error {
	if w.destroyed {
		return nil
	}
	w.destroyed = true

	w.pacer.Stop()
	delete(w.b.windows, w.hwnd)
	procDestroyWindow.Call(uintptr(w.hwnd))
	return nil
}
