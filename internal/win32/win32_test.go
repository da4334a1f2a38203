//go:build windows

package win32

import (
	"testing"

	"golang.org/x/sys/windows"

	"github.com/1broseidon/picoview/event"
	"github.com/1broseidon/picoview/geom"
	"github.com/1broseidon/picoview/internal/evqueue"
)

func newTestWindow() (*Backend, *Window) {
	b := &Backend{windows: make(map[windows.HWND]*Window)}
	w := &Window{
		b:        b,
		hwnd:     windows.HWND(1),
		style:    wsOverlapped | wsCaption | wsSysmenu,
		queue:    evqueue.New(),
		lastMods: readModifiers(),
	}
	b.windows[w.hwnd] = w
	return b, w
}

func moveLparam(x, y int16) uintptr {
	return uintptr(uint16(x)) | uintptr(uint16(y))<<16
}

func TestMouseLeaveEmitsExit(t *testing.T) {
	b, w := newTestWindow()

	b.wndProc(w.hwnd, wmMousemove, 0, moveLparam(10, 20))
	b.wndProc(w.hwnd, wmMouseleave, 0, 0)

	out := w.queue.Drain()
	if len(out) != 1 {
		t.Fatalf("drained %d events, want the move and leave collapsed to 1", len(out))
	}
	mv, ok := out[0].(event.MouseMove)
	if !ok {
		t.Fatalf("out[0] = %T, want MouseMove", out[0])
	}
	if mv.Entered {
		t.Error("leave must report Entered=false")
	}
	if mv.Pos != (geom.Point{X: 10, Y: 20}) {
		t.Errorf("leave pos = %+v, want the last known (10,20)", mv.Pos)
	}
}

func TestMouseLeaveRearmsTracking(t *testing.T) {
	b, w := newTestWindow()
	w.tracking = true

	b.wndProc(w.hwnd, wmMouseleave, 0, 0)
	if w.tracking {
		t.Error("WM_MOUSELEAVE must clear the one-shot subscription so the next move re-arms")
	}
}

func TestOuterRectKeepsClientSize(t *testing.T) {
	size := geom.Size{Width: 640, Height: 480}

	// Frameless styles: the window rect is the client rect.
	for _, style := range []uint32{wsPopup, wsChild} {
		r := outerRect(style, size)
		if r.Right-r.Left != 640 || r.Bottom-r.Top != 480 {
			t.Errorf("style %#x outer = %dx%d, want 640x480",
				style, r.Right-r.Left, r.Bottom-r.Top)
		}
	}

	// A decorated window grows by its frame, and a resizable one by the
	// thicker frame.
	fixed := outerRect(wsOverlapped|wsCaption|wsSysmenu, size)
	if fixed.Bottom-fixed.Top <= 480 {
		t.Errorf("decorated outer height %d does not include the caption", fixed.Bottom-fixed.Top)
	}
	sizable := outerRect(wsOverlapped|wsCaption|wsSysmenu|wsThickframe|wsMaximizebox, size)
	if sizable.Right-sizable.Left < fixed.Right-fixed.Left ||
		sizable.Bottom-sizable.Top < fixed.Bottom-fixed.Top {
		t.Errorf("resizable outer %dx%d smaller than fixed %dx%d",
			sizable.Right-sizable.Left, sizable.Bottom-sizable.Top,
			fixed.Right-fixed.Left, fixed.Bottom-fixed.Top)
	}
}
