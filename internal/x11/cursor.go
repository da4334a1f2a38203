//go:build linux

package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xcursor"

	"github.com/1broseidon/picoview/backend"
	"github.com/1broseidon/picoview/event"
	"github.com/1broseidon/picoview/geom"
)

// cursorFont maps cursor kinds onto the closest X cursor-font glyph.
// Kinds with no entry fall back to the default arrow.
var cursorFont = map[event.Cursor]uint16{
	event.CursorDefault:      xcursor.LeftPtr,
	event.CursorHand:         xcursor.Hand2,
	event.CursorHandGrabbing: xcursor.Fleur,
	event.CursorHelp:         xcursor.QuestionArrow,
	event.CursorText:         xcursor.XTerm,
	event.CursorCrosshair:    xcursor.Crosshair,
	event.CursorMove:         xcursor.Fleur,
	event.CursorWorking:      xcursor.Watch,
	event.CursorNotAllowed:   xcursor.Circle,
	event.CursorAllScroll:    xcursor.Fleur,

	event.CursorResizeN:    xcursor.TopSide,
	event.CursorResizeS:    xcursor.BottomSide,
	event.CursorResizeE:    xcursor.RightSide,
	event.CursorResizeW:    xcursor.LeftSide,
	event.CursorResizeNE:   xcursor.TopRightCorner,
	event.CursorResizeNW:   xcursor.TopLeftCorner,
	event.CursorResizeSE:   xcursor.BottomRightCorner,
	event.CursorResizeSW:   xcursor.BottomLeftCorner,
	event.CursorResizeEW:   xcursor.SBHDoubleArrow,
	event.CursorResizeNS:   xcursor.SBVDoubleArrow,
	event.CursorResizeNWSE: xcursor.Sizing,
	event.CursorResizeNESW: xcursor.Sizing,
	event.CursorResizeCol:  xcursor.SBHDoubleArrow,
	event.CursorResizeRow:  xcursor.SBVDoubleArrow,
}

// SetCursor applies a standard cursor to the window. Created cursors are
// cached per window; repeated calls with the same kind are free.
func (w *Window) SetCursor(c event.Cursor) error {
	if w.destroyed {
		return backend.ErrHandleClosed
	}
	if c == w.lastCursor {
		return nil
	}

	xid, err := w.cursorFor(c)
	if err != nil {
		return err
	}
	err = xproto.ChangeWindowAttributesChecked(
		w.b.xu.Conn(), w.id, xproto.CwCursor, []uint32{uint32(xid)},
	).Check()
	if err != nil {
		return fmt.Errorf("failed to set cursor %s: %w", c, err)
	}
	w.lastCursor = c
	return nil
}

func (w *Window) cursorFor(c event.Cursor) (xproto.Cursor, error) {
	if xid, ok := w.cursors[c]; ok {
		return xid, nil
	}

	var xid xproto.Cursor
	var err error
	if c == event.CursorHidden {
		xid, err = w.blankCursor()
	} else {
		glyph, ok := cursorFont[c]
		if !ok {
			glyph = xcursor.LeftPtr
		}
		xid, err = xcursor.CreateCursor(w.b.xu, glyph)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to create cursor %s: %w", c, err)
	}
	w.cursors[c] = xid
	return xid, nil
}

// blankCursor builds the invisible cursor from a 1x1 empty bitmap; the
// cursor font has no hidden glyph.
func (w *Window) blankCursor() (xproto.Cursor, error) {
	conn := w.b.xu.Conn()

	pixmap, err := xproto.NewPixmapId(conn)
	if err != nil {
		return 0, err
	}
	if err := xproto.CreatePixmapChecked(conn, 1, xproto.Pixmap(pixmap), xproto.Drawable(w.b.root), 1, 1).Check(); err != nil {
		return 0, err
	}
	defer xproto.FreePixmap(conn, xproto.Pixmap(pixmap))

	cursor, err := xproto.NewCursorId(conn)
	if err != nil {
		return 0, err
	}
	err = xproto.CreateCursorChecked(
		conn, cursor, xproto.Pixmap(pixmap), xproto.Pixmap(pixmap),
		0, 0, 0, 0, 0, 0, 0, 0,
	).Check()
	if err != nil {
		return 0, err
	}
	return cursor, nil
}

// WarpCursor moves the pointer to a window-local position. XWayland
// silently ignores the request; the matrix marks this cell partial.
func (w *Window) WarpCursor(pos geom.Point) error {
	if w.destroyed {
		return backend.ErrHandleClosed
	}
	err := xproto.WarpPointerChecked(
		w.b.xu.Conn(), xproto.WindowNone, w.id,
		0, 0, 0, 0,
		int16(pos.X), int16(pos.Y),
	).Check()
	if err != nil {
		return fmt.Errorf("failed to warp pointer: %w", err)
	}
	return nil
}

// GrabKeyboard routes all keyboard input to this window while held, the
// way an embedded plugin editor takes typing focus from its host.
func (w *Window) GrabKeyboard(grab bool) error {
	if w.destroyed {
		return backend.ErrHandleClosed
	}
	conn := w.b.xu.Conn()

	if !grab {
		if w.grabbed {
			xproto.UngrabKeyboard(conn, xproto.TimeCurrentTime)
			w.grabbed = false
		}
		return nil
	}

	reply, err := xproto.GrabKeyboard(
		conn, false, w.id, xproto.TimeCurrentTime,
		xproto.GrabModeAsync, xproto.GrabModeAsync,
	).Reply()
	if err != nil {
		return fmt.Errorf("keyboard grab failed: %w", err)
	}
	if reply.Status != xproto.GrabStatusSuccess {
		return fmt.Errorf("keyboard grab refused with status %d", reply.Status)
	}
	w.grabbed = true
	return nil
}
