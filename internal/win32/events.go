//go:build windows

package win32

import (
	"unicode"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/1broseidon/picoview/event"
	"github.com/1broseidon/picoview/geom"
)

// Pump dispatches every message queued for this window. PeekMessage
// filters by HWND, so one window's pump never consumes a sibling's input.
func (w *Window) Pump() []event.Event {
	if w.destroyed {
		return nil
	}

	var m msg
	for {
		ret, _, _ := procPeekMessageW.Call(
			uintptr(unsafe.Pointer(&m)), uintptr(w.hwnd), 0, 0, pmRemove,
		)
		if ret == 0 {
			break
		}
		procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
		procDispatchMessageW.Call(uintptr(unsafe.Pointer(&m)))
	}
	w.flushPendingKey()

	if w.pacer.TakeTick() {
		w.queue.Push(event.WindowFrame{})
	}
	return w.queue.Drain()
}

// push queues an event, flushing a held-back KeyDown first so ordering
// follows the native queue.
func (w *Window) push(ev event.Event) {
	w.flushPendingKey()
	w.queue.Push(ev)
}

// flushPendingKey releases a KeyDown that was waiting for its WM_CHAR.
func (w *Window) flushPendingKey() {
	if w.pendingKey != nil {
		w.queue.Push(*w.pendingKey)
		w.pendingKey = nil
	}
}

func (b *Backend) wndProc(hwnd windows.HWND, message uint32, wparam, lparam uintptr) uintptr {
	w, ok := b.windows[hwnd]
	if !ok {
		return b.defProc(hwnd, message, wparam, lparam)
	}

	switch message {
	case wmLbuttondown, wmRbuttondown, wmMbuttondown, wmXbuttondown:
		w.syncModifiers()
		if btn, ok := messageButton(message, wparam); ok {
			w.push(event.MouseDown{Button: btn, Pos: lparamPos(lparam)})
		}
		return 0

	case wmLbuttonup, wmRbuttonup, wmMbuttonup, wmXbuttonup:
		w.syncModifiers()
		if btn, ok := messageButton(message, wparam); ok {
			w.push(event.MouseUp{Button: btn, Pos: lparamPos(lparam)})
		}
		return 0

	case wmMousemove:
		w.syncModifiers()
		w.armMouseLeave()
		pos := lparamPos(lparam)
		w.lastMouse = pos
		w.push(event.MouseMove{Pos: pos, Entered: true})
		return 0

	case wmMouseleave:
		// The TME_LEAVE subscription is one-shot; the next move re-arms.
		w.tracking = false
		w.push(event.MouseMove{Pos: w.lastMouse, Entered: false})
		return 0

	case wmMousewheel, wmMousehwheel:
		// Wheel coordinates arrive in screen space, unlike buttons.
		pt := point{X: signedX(lparam), Y: signedY(lparam)}
		procScreenToClient.Call(uintptr(w.hwnd), uintptr(unsafe.Pointer(&pt)))
		delta := float32(int16(hiword(wparam))) / wheelDelta
		scroll := event.MouseScroll{Pos: geom.Point{X: float32(pt.X), Y: float32(pt.Y)}}
		if message == wmMousewheel {
			scroll.DeltaY = delta
		} else {
			scroll.DeltaX = delta
		}
		w.push(scroll)
		return 0

	case wmKeydown, wmSyskeydown:
		w.syncModifiers()
		if key := vkToKey(wparam); key != event.KeyUnknown {
			// Held back until TranslateMessage posts the WM_CHAR that
			// carries the text for this press.
			w.flushPendingKey()
			w.pendingKey = &event.KeyDown{Key: key}
		}
		return 0

	case wmChar:
		if w.pendingKey != nil {
			if r := rune(wparam); unicode.IsPrint(r) {
				w.pendingKey.Text = string(r)
			}
			w.flushPendingKey()
		}
		return 0

	case wmKeyup, wmSyskeyup:
		w.syncModifiers()
		if key := vkToKey(wparam); key != event.KeyUnknown {
			w.push(event.KeyUp{Key: key})
		}
		return 0

	case wmSetfocus:
		w.push(event.WindowFocus{Focused: true})
		return 0

	case wmKillfocus:
		w.push(event.WindowFocus{Focused: false})
		return 0

	case wmMove:
		// Client position: parent-relative for WS_CHILD windows, screen
		// for top-level, which is exactly the embedding contract.
		w.push(event.WindowMove{Pos: geom.Point{
			X: float32(signedX(lparam)),
			Y: float32(signedY(lparam)),
		}})
		return 0

	case wmSize:
		w.push(event.WindowResize{Size: geom.Size{
			Width:  uint32(loword(lparam)),
			Height: uint32(hiword(lparam)),
		}})
		return 0

	case wmPaint:
		var dirty rect
		has, _, _ := procGetUpdateRect.Call(uintptr(w.hwnd), uintptr(unsafe.Pointer(&dirty)), 0)
		procValidateRect.Call(uintptr(w.hwnd), 0)
		if has != 0 {
			w.push(event.WindowDamage{Rect: geom.Rect{
				Min: geom.Point{X: float32(dirty.Left), Y: float32(dirty.Top)},
				Size: geom.Size{
					Width:  uint32(dirty.Right - dirty.Left),
					Height: uint32(dirty.Bottom - dirty.Top),
				},
			}})
		}
		return 0

	case wmClose:
		// The caller decides; the window is not destroyed here.
		w.push(event.WindowClose{})
		return 0

	case wmSetcursor:
		if loword(lparam) == htClient {
			procSetCursor.Call(uintptr(w.cursor))
			return 1
		}

	case wmDpichanged:
		scale := float32(loword(wparam)) / 96.0
		if b.cfg != nil && b.cfg.Scale.Override > 0 {
			scale = b.cfg.Scale.Override
		}
		if scale > 0 && scale != b.scale {
			b.scale = scale
			geom.SetScale(scale)
			w.push(event.WindowScale{Scale: scale})
		}
		w.pacer.NotifyDisplayChange()
		return 0

	case wmDisplaychange:
		w.pacer.NotifyDisplayChange()
		return 0
	}

	return b.defProc(hwnd, message, wparam, lparam)
}

func (b *Backend) defProc(hwnd windows.HWND, message uint32, wparam, lparam uintptr) uintptr {
	ret, _, _ := procDefWindowProcW.Call(uintptr(hwnd), uintptr(message), wparam, lparam)
	return ret
}

// armMouseLeave subscribes to the one-shot WM_MOUSELEAVE notification.
// Without it the OS never posts the message and a pointer exit would go
// unnoticed.
func (w *Window) armMouseLeave() {
	if w.tracking {
		return
	}
	tme := trackMouseEventW{
		Size:      uint32(unsafe.Sizeof(trackMouseEventW{})),
		Flags:     tmeLeave,
		HwndTrack: w.hwnd,
	}
	if ok, _, _ := procTrackMouseEvent.Call(uintptr(unsafe.Pointer(&tme))); ok != 0 {
		w.tracking = true
	}
}

// syncModifiers reads the live modifier state and queues a KeyModifiers
// event when it changed.
func (w *Window) syncModifiers() {
	mods := readModifiers()
	if mods == w.lastMods {
		return
	}
	w.lastMods = mods
	w.push(event.KeyModifiers{Modifiers: mods})
}

func keyHeld(vk uintptr) bool {
	state, _, _ := procGetKeyState.Call(vk)
	return int16(state) < 0
}

func keyToggled(vk uintptr) bool {
	state, _, _ := procGetKeyState.Call(vk)
	return state&1 != 0
}

func readModifiers() event.Modifiers {
	var mods event.Modifiers
	if keyHeld(0x10) { // VK_SHIFT
		mods |= event.ModShift
	}
	if keyHeld(0x11) { // VK_CONTROL
		mods |= event.ModCtrl
	}
	if keyHeld(0x12) { // VK_MENU
		mods |= event.ModAlt
	}
	if keyHeld(0x5B) || keyHeld(0x5C) { // VK_LWIN / VK_RWIN
		mods |= event.ModMeta
	}
	if keyToggled(0x14) { // VK_CAPITAL
		mods |= event.ModCapsLock
	}
	if keyToggled(0x90) { // VK_NUMLOCK
		mods |= event.ModNumLock
	}
	if keyToggled(0x91) { // VK_SCROLL
		mods |= event.ModScrollLock
	}
	return mods
}

func lparamPos(lparam uintptr) geom.Point {
	return geom.Point{X: float32(signedX(lparam)), Y: float32(signedY(lparam))}
}

func messageButton(message uint32, wparam uintptr) (event.MouseButton, bool) {
	switch message {
	case wmLbuttondown, wmLbuttonup:
		return event.ButtonLeft, true
	case wmRbuttondown, wmRbuttonup:
		return event.ButtonRight, true
	case wmMbuttondown, wmMbuttonup:
		return event.ButtonMiddle, true
	case wmXbuttondown, wmXbuttonup:
		switch hiword(wparam) {
		case xbutton1:
			return event.ButtonBack, true
		case xbutton2:
			return event.ButtonForward, true
		}
	}
	return 0, false
}
