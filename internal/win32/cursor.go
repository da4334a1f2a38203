//go:build windows

package win32

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/1broseidon/picoview/backend"
	"github.com/1broseidon/picoview/event"
	"github.com/1broseidon/picoview/geom"
)

// Standard cursor resource ids (IDC_*).
const (
	idcArrow       = 32512
	idcIbeam       = 32513
	idcWait        = 32514
	idcCross       = 32515
	idcSizenwse    = 32642
	idcSizenesw    = 32643
	idcSizewe      = 32644
	idcSizens      = 32645
	idcSizeall     = 32646
	idcNo          = 32648
	idcHand        = 32649
	idcAppstarting = 32650
	idcHelp        = 32651
)

var cursorIDs = map[event.Cursor]uintptr{
	event.CursorDefault:      idcArrow,
	event.CursorHand:         idcHand,
	event.CursorHandGrabbing: idcSizeall,
	event.CursorHelp:         idcHelp,
	event.CursorText:         idcIbeam,
	event.CursorCrosshair:    idcCross,
	event.CursorMove:         idcSizeall,
	event.CursorWorking:      idcWait,
	event.CursorNotAllowed:   idcNo,
	event.CursorAllScroll:    idcSizeall,

	event.CursorResizeN:    idcSizens,
	event.CursorResizeS:    idcSizens,
	event.CursorResizeNS:   idcSizens,
	event.CursorResizeRow:  idcSizens,
	event.CursorResizeE:    idcSizewe,
	event.CursorResizeW:    idcSizewe,
	event.CursorResizeEW:   idcSizewe,
	event.CursorResizeCol:  idcSizewe,
	event.CursorResizeNE:   idcSizenesw,
	event.CursorResizeSW:   idcSizenesw,
	event.CursorResizeNESW: idcSizenesw,
	event.CursorResizeNW:   idcSizenwse,
	event.CursorResizeSE:   idcSizenwse,
	event.CursorResizeNWSE: idcSizenwse,
}

func loadCursor(c event.Cursor) windows.Handle {
	if c == event.CursorHidden {
		return 0 // SetCursor(NULL) hides the pointer
	}
	id, ok := cursorIDs[c]
	if !ok {
		id = idcArrow
	}
	h, _, _ := procLoadCursorW.Call(0, id)
	return windows.Handle(h)
}

// SetCursor records the cursor and applies it immediately; WM_SETCURSOR
// re-applies it whenever the pointer re-enters the client area.
func (w *Window) SetCursor(c event.Cursor) error {
	if w.destroyed {
		return backend.ErrHandleClosed
	}
	w.cursor = loadCursor(c)
	procSetCursor.Call(uintptr(w.cursor))
	return nil
}

// WarpCursor moves the pointer to a window-local position.
func (w *Window) WarpCursor(pos geom.Point) error {
	if w.destroyed {
		return backend.ErrHandleClosed
	}
	pt := point{X: int32(pos.X), Y: int32(pos.Y)}
	procClientToScreen.Call(uintptr(w.hwnd), uintptr(unsafe.Pointer(&pt)))
	if ok, _, err := procSetCursorPos.Call(uintptr(pt.X), uintptr(pt.Y)); ok == 0 {
		return fmt.Errorf("SetCursorPos failed: %v", err)
	}
	return nil
}
