//go:build darwin

package cocoa

/*
#include <stdlib.h>
#include "os_cocoa.h"
*/
import "C"

import (
	"fmt"
	"time"
	"unsafe"

	"github.com/atotto/clipboard"

	"github.com/1broseidon/picoview/backend"
	"github.com/1broseidon/picoview/event"
	"github.com/1broseidon/picoview/geom"
	"github.com/1broseidon/picoview/internal/evqueue"
	"github.com/1broseidon/picoview/internal/pacing"
)

// Window is one NSWindow (or, embedded, one NSView inside a host view).
// Only the display link runs off the owning thread; it talks through the
// vblank channel and the pacer's atomic flag.
type Window struct {
	b  *Backend
	id uintptr

	embedded  bool
	queue     *evqueue.Queue
	pacer     *pacing.Pacer
	destroyed bool

	// vblank carries display link ticks into the pacer's wait. Buffer of
	// one: a tick that arrives while the previous one is unconsumed merges
	// with it.
	vblank chan struct{}

	lastMods  event.Modifiers
	lastMouse geom.Point
	entered   bool
	cursor    event.Cursor
}

var _ backend.Window = (*Window)(nil)

// CreateWindow creates a native window for the descriptor. With a parent
// handle present the descriptor's Parent must be an NSView pointer; the
// window becomes a subview of it and reports parent-relative geometry.
func (b *Backend) CreateWindow(desc backend.Descriptor) (backend.Window, error) {
	if b.closed {
		return nil, fmt.Errorf("%w: backend connection is closed", backend.ErrWindowCreate)
	}
	if desc.Size.Width == 0 || desc.Size.Height == 0 {
		return nil, fmt.Errorf("%w: zero initial size", backend.ErrWindowCreate)
	}

	embedded := desc.Parent != 0
	centered := desc.Position == nil && !embedded

	pos := geom.Point{}
	if desc.Position != nil {
		pos = *desc.Position
	}

	ctitle := C.CString(desc.Title)
	defer C.free(unsafe.Pointer(ctitle))

	frame := C.pv_rect{
		x:      C.double(pos.X),
		y:      C.double(pos.Y),
		width:  C.double(desc.Size.Width),
		height: C.double(desc.Size.Height),
	}
	id := uintptr(C.pv_window_create(ctitle, frame,
		C.bool(desc.Decorated), C.bool(desc.Resizable), C.bool(centered),
		C.uintptr_t(desc.Parent)))
	if id == 0 {
		return nil, fmt.Errorf("%w: native window creation failed", backend.ErrWindowCreate)
	}

	w := &Window{
		b:        b,
		id:       id,
		embedded: embedded,
		queue:    evqueue.New(),
		vblank:   make(chan struct{}, 1),
	}

	registryMu.Lock()
	registry[id] = w
	registryMu.Unlock()
	b.windows[id] = w

	// Pace from the display link when it starts; otherwise the timer
	// carries the cadence alone.
	var wait func() bool
	if bool(C.pv_displaylink_start(C.uintptr_t(id))) {
		wait = w.waitVBlank
	} else {
		b.log.Warnf("display link unavailable on %#x, pacing from timer", id)
	}
	w.pacer = pacing.Start(pacing.Config{
		WaitVBlank:  wait,
		RefreshRate: b.RefreshRate,
		ForceTimer:  b.cfg != nil && b.cfg.Pacing.ForceTimer,
	})

	return w, nil
}

// waitVBlank blocks until the display link delivers a tick. The timeout
// covers links that stall when the display sleeps.
func (w *Window) waitVBlank() bool {
	select {
	case <-w.vblank:
		return true
	case <-time.After(250 * time.Millisecond):
		return false
	}
}

// Handle returns the NSView pointer, suitable as a Parent for embedding.
func (w *Window) Handle() uintptr {
	return uintptr(C.pv_window_native_view(C.uintptr_t(w.id)))
}

func (w *Window) SetTitle(title string) error {
	if w.destroyed {
		return backend.ErrHandleClosed
	}
	ctitle := C.CString(title)
	defer C.free(unsafe.Pointer(ctitle))
	C.pv_window_set_title(C.uintptr_t(w.id), ctitle)
	return nil
}

func (w *Window) SetSize(size geom.Size) error {
	if w.destroyed {
		return backend.ErrHandleClosed
	}
	C.pv_window_set_size(C.uintptr_t(w.id), C.double(size.Width), C.double(size.Height))
	return nil
}

func (w *Window) SetPosition(pos geom.Point) error {
	if w.destroyed {
		return backend.ErrHandleClosed
	}
	C.pv_window_set_position(C.uintptr_t(w.id), C.double(pos.X), C.double(pos.Y))
	return nil
}

func (w *Window) SetVisible(visible bool) error {
	if w.destroyed {
		return backend.ErrHandleClosed
	}
	C.pv_window_set_visible(C.uintptr_t(w.id), C.bool(visible))
	return nil
}

func (w *Window) SetCursor(c event.Cursor) error {
	if w.destroyed {
		return backend.ErrHandleClosed
	}
	w.cursor = c
	C.pv_window_set_cursor(C.uintptr_t(w.id), C.int(c))
	return nil
}

func (w *Window) WarpCursor(pos geom.Point) error {
	if w.destroyed {
		return backend.ErrHandleClosed
	}
	C.pv_window_warp_cursor(C.uintptr_t(w.id), C.double(pos.X), C.double(pos.Y))
	return nil
}

func (w *Window) ClipboardText() (string, error) {
	if w.destroyed {
		return "", backend.ErrHandleClosed
	}
	return clipboard.ReadAll()
}

func (w *Window) SetClipboardText(text string) error {
	if w.destroyed {
		return backend.ErrHandleClosed
	}
	return clipboard.WriteAll(text)
}

// GrabKeyboard is unsupported: AppKit routes key events through the
// responder chain and offers no exclusive grab short of a CGEvent tap,
// which needs accessibility permission. See the capability matrix.
func (w *Window) GrabKeyboard(bool) error {
	if w.destroyed {
		return backend.ErrHandleClosed
	}
	return backend.ErrUnsupported
}

// OpenURL hands the URL to the shared workspace. Best effort.
func (w *Window) OpenURL(url string) bool {
	if w.destroyed {
		return false
	}
	curl := C.CString(url)
	defer C.free(unsafe.Pointer(curl))
	return bool(C.pv_open_url(curl))
}

// Destroy stops the display link and pacer, then releases the native
// window. The pacer is joined first so no late tick can land on the dead
// window.
func (w *Window) Destroy() error {
	if w.destroyed {
		return nil
	}
	w.destroyed = true

	// The link must stop before the pacer: a tick sent after the vblank
	// channel's reader is gone would be dropped anyway, but stopping the
	// link first keeps the shutdown order obvious.
	C.pv_displaylink_stop(C.uintptr_t(w.id))
	w.pacer.Stop()

	registryMu.Lock()
	delete(registry, w.id)
	registryMu.Unlock()
	delete(w.b.windows, w.id)

	C.pv_window_destroy(C.uintptr_t(w.id))
	return nil
}
