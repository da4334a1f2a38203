//go:build linux

package x11

import (
	"fmt"
	"os/exec"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/motif"
	"github.com/BurntSushi/xgbutil/xprop"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/1broseidon/picoview/backend"
	"github.com/1broseidon/picoview/event"
	"github.com/1broseidon/picoview/geom"
	"github.com/1broseidon/picoview/internal/evqueue"
	"github.com/1broseidon/picoview/internal/pacing"
)

const windowEventMask = xproto.EventMaskButtonPress |
	xproto.EventMaskButtonRelease |
	xproto.EventMaskKeyPress |
	xproto.EventMaskKeyRelease |
	xproto.EventMaskPointerMotion |
	xproto.EventMaskEnterWindow |
	xproto.EventMaskLeaveWindow |
	xproto.EventMaskFocusChange |
	xproto.EventMaskStructureNotify |
	xproto.EventMaskExposure

// Window is one X11 window. It is owned by the thread that owns the
// backend; only the pacer goroutine runs elsewhere, and it communicates
// through an atomic flag.
type Window struct {
	b  *Backend
	id xproto.Window

	embedded  bool
	queue     *evqueue.Queue
	pacer     *pacing.Pacer
	destroyed bool

	lastMods      event.Modifiers
	lastSize      geom.Size
	lastPos       geom.Point
	lastCursor    event.Cursor
	pendingDamage geom.Rect

	cursors map[event.Cursor]xproto.Cursor
	grabbed bool
}

var _ backend.Window = (*Window)(nil)

// CreateWindow creates an X11 window for the descriptor. With a parent
// handle present the window is created as a child of that window and all
// reported geometry stays parent-relative.
func (b *Backend) CreateWindow(desc backend.Descriptor) (backend.Window, error) {
	if b.closed {
		return nil, fmt.Errorf("%w: backend connection is closed", backend.ErrWindowCreate)
	}
	if desc.Size.Width == 0 || desc.Size.Height == 0 {
		return nil, fmt.Errorf("%w: zero initial size", backend.ErrWindowCreate)
	}

	parent := b.root
	embedded := desc.Parent != 0
	if embedded {
		parent = xproto.Window(desc.Parent)
	}

	pos := geom.Point{}
	switch {
	case desc.Position != nil:
		pos = *desc.Position
	case !embedded:
		// Centered default placement on the active monitor; the window
		// manager may still override it.
		mon := b.primaryMonitor()
		pos.X = mon.Min.X + float32(mon.Size.Width/2) - float32(desc.Size.Width/2)
		pos.Y = mon.Min.Y + float32(mon.Size.Height/2) - float32(desc.Size.Height/2)
	}

	xwin, err := xwindow.Generate(b.xu)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot allocate window id: %v", backend.ErrWindowCreate, err)
	}
	err = xwin.CreateChecked(
		parent,
		int(pos.X), int(pos.Y),
		int(desc.Size.Width), int(desc.Size.Height),
		xproto.CwEventMask, windowEventMask,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", backend.ErrWindowCreate, err)
	}

	w := &Window{
		b:        b,
		id:       xwin.Id,
		embedded: embedded,
		queue:    evqueue.New(),
		lastSize: desc.Size,
		lastPos:  pos,
		cursors:  make(map[event.Cursor]xproto.Cursor),
	}

	// Opt into the WM close protocol so a close request arrives as a
	// ClientMessage instead of a killed connection.
	if err := xprop.ChangeProp32(b.xu, w.id, "WM_PROTOCOLS", "ATOM", uint(b.wmDeleteWindow)); err != nil {
		b.log.Warnf("WM_PROTOCOLS setup failed on %d: %v", w.id, err)
	}

	if desc.Title != "" {
		w.setTitle(desc.Title)
	}

	if !desc.Decorated && !embedded {
		hints := motif.Hints{
			Flags:      motif.HintDecorations,
			Decoration: motif.DecorationNone,
		}
		if err := motif.WmHintsSet(b.xu, w.id, &hints); err != nil {
			b.log.Warnf("motif decoration hints failed on %d: %v", w.id, err)
		}
	}

	if !desc.Resizable {
		hints := icccm.NormalHints{
			Flags:     icccm.SizeHintPMinSize | icccm.SizeHintPMaxSize,
			MinWidth:  uint(desc.Size.Width),
			MinHeight: uint(desc.Size.Height),
			MaxWidth:  uint(desc.Size.Width),
			MaxHeight: uint(desc.Size.Height),
		}
		if err := icccm.WmNormalHintsSet(b.xu, w.id, &hints); err != nil {
			b.log.Warnf("size hints failed on %d: %v", w.id, err)
		}
	}

	b.windows[w.id] = w

	w.pacer = pacing.Start(pacing.Config{
		RefreshRate: b.RefreshRate,
		ForceTimer:  b.cfg != nil && b.cfg.Pacing.ForceTimer,
	})

	xwin.Map()
	return w, nil
}

// Handle returns the X window id for embedding by a host.
func (w *Window) Handle() uintptr {
	return uintptr(w.id)
}

func (w *Window) SetTitle(title string) error {
	if w.destroyed {
		return backend.ErrHandleClosed
	}
	w.setTitle(title)
	return nil
}

func (w *Window) setTitle(title string) {
	// Both properties: _NET_WM_NAME for EWMH window managers, WM_NAME
	// for the rest.
	if err := ewmh.WmNameSet(w.b.xu, w.id, title); err != nil {
		w.b.log.Warnf("_NET_WM_NAME set failed on %d: %v", w.id, err)
	}
	if err := icccm.WmNameSet(w.b.xu, w.id, title); err != nil {
		w.b.log.Warnf("WM_NAME set failed on %d: %v", w.id, err)
	}
}

// SetSize requests a resize. The new size is reported back asynchronously
// as a WindowResize event once the server applied it.
func (w *Window) SetSize(size geom.Size) error {
	if w.destroyed {
		return backend.ErrHandleClosed
	}
	xwindow.New(w.b.xu, w.id).Resize(int(size.Width), int(size.Height))
	return nil
}

func (w *Window) SetPosition(pos geom.Point) error {
	if w.destroyed {
		return backend.ErrHandleClosed
	}
	xwindow.New(w.b.xu, w.id).Move(int(pos.X), int(pos.Y))
	return nil
}

func (w *Window) SetVisible(visible bool) error {
	if w.destroyed {
		return backend.ErrHandleClosed
	}
	xwin := xwindow.New(w.b.xu, w.id)
	if visible {
		xwin.Map()
	} else {
		xwin.Unmap()
	}
	return nil
}

// ClipboardText is unsupported on this backend: X selections require a
// peer that owns the selection to keep serving it, which a pumped library
// without a resident thread cannot guarantee. See the capability matrix.
func (w *Window) ClipboardText() (string, error) {
	if w.destroyed {
		return "", backend.ErrHandleClosed
	}
	return "", backend.ErrUnsupported
}

func (w *Window) SetClipboardText(string) error {
	if w.destroyed {
		return backend.ErrHandleClosed
	}
	return backend.ErrUnsupported
}

// OpenURL hands the URL to xdg-open. Best effort.
func (w *Window) OpenURL(url string) bool {
	if w.destroyed {
		return false
	}
	return exec.Command("xdg-open", url).Start() == nil
}

// Destroy stops pacing, joins the pacer goroutine, and releases the native
// window. The pacer is joined first so no late tick can land on the dead
// window.
func (w *Window) Destroy() error {
	if w.destroyed {
		return nil
	}
	w.destroyed = true

	w.pacer.Stop()
	if w.grabbed {
		xproto.UngrabKeyboard(w.b.xu.Conn(), xproto.TimeCurrentTime)
	}
	delete(w.b.windows, w.id)

	for _, c := range w.cursors {
		xproto.FreeCursor(w.b.xu.Conn(), c)
	}
	xproto.DestroyWindow(w.b.xu.Conn(), w.id)
	w.b.xu.Sync()
	return nil
}
