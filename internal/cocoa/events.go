//go:build darwin

package cocoa

/*
#include "os_cocoa.h"
*/
import "C"

import (
	"github.com/1broseidon/picoview/event"
	"github.com/1broseidon/picoview/geom"
)

// Pump drains the AppKit event queue without blocking, folds in a pending
// frame tick, and returns everything coalesced since the last call. The
// shim's callbacks land in the queue while pv_window_pump dispatches.
func (w *Window) Pump() []event.Event {
	if w.destroyed {
		return nil
	}

	C.pv_window_pump(C.uintptr_t(w.id))

	if w.pacer.TakeTick() {
		w.queue.Push(event.WindowFrame{})
	}
	return w.queue.Drain()
}

// NSEventModifierFlags bits.
const (
	nsFlagCapsLock = 1 << 16
	nsFlagShift    = 1 << 17
	nsFlagControl  = 1 << 18
	nsFlagOption   = 1 << 19
	nsFlagCommand  = 1 << 20
)

func flagsToModifiers(flags C.ulong) event.Modifiers {
	var m event.Modifiers
	if flags&nsFlagCapsLock != 0 {
		m |= event.ModCapsLock
	}
	if flags&nsFlagShift != 0 {
		m |= event.ModShift
	}
	if flags&nsFlagControl != 0 {
		m |= event.ModCtrl
	}
	if flags&nsFlagOption != 0 {
		m |= event.ModAlt
	}
	if flags&nsFlagCommand != 0 {
		m |= event.ModMeta
	}
	return m
}

func (w *Window) pushModifiers(m event.Modifiers) {
	if m != w.lastMods {
		w.lastMods = m
		w.queue.Push(event.KeyModifiers{Modifiers: m})
	}
}

func mapButton(button int) (event.MouseButton, bool) {
	switch button {
	case 0:
		return event.ButtonLeft, true
	case 1:
		return event.ButtonRight, true
	case 2:
		return event.ButtonMiddle, true
	case 3:
		return event.ButtonBack, true
	case 4:
		return event.ButtonForward, true
	}
	return 0, false
}

// printableText rejects control characters and the AppKit function-key
// private range, which NSEvent reports as characters for arrow and F keys.
func printableText(s string) string {
	for _, r := range s {
		if r < 0x20 || r == 0x7F || (r >= 0xF700 && r <= 0xF8FF) {
			return ""
		}
	}
	return s
}

// Mouse callback kinds, matching the dispatch in os_cocoa.m.
const (
	mouseKindDown = iota
	mouseKindUp
	mouseKindMove
	mouseKindExit
	mouseKindScroll
)

//export pv_on_mouse
func pv_on_mouse(id C.uintptr_t, kind, button C.int, x, y, dx, dy C.double) {
	w := lookupWindow(uintptr(id))
	if w == nil || w.destroyed {
		return
	}
	pos := geom.Point{X: float32(x), Y: float32(y)}

	switch int(kind) {
	case mouseKindDown:
		if b, ok := mapButton(int(button)); ok {
			w.queue.Push(event.MouseDown{Button: b, Pos: pos})
		}
	case mouseKindUp:
		if b, ok := mapButton(int(button)); ok {
			w.queue.Push(event.MouseUp{Button: b, Pos: pos})
		}
	case mouseKindMove:
		w.lastMouse = pos
		w.entered = true
		w.queue.Push(event.MouseMove{Pos: pos, Entered: true})
	case mouseKindExit:
		if w.entered {
			w.entered = false
			w.queue.Push(event.MouseMove{Pos: w.lastMouse, Entered: false})
		}
	case mouseKindScroll:
		w.queue.Push(event.MouseScroll{
			DeltaX: float32(dx),
			DeltaY: float32(dy),
			Pos:    pos,
		})
	}
}

//export pv_on_key
func pv_on_key(id C.uintptr_t, down C.int, keycode C.ushort, text *C.char, flags C.ulong) {
	w := lookupWindow(uintptr(id))
	if w == nil || w.destroyed {
		return
	}

	w.pushModifiers(flagsToModifiers(flags))

	key := keyCodeToKey(uint16(keycode))
	if down != 0 {
		w.queue.Push(event.KeyDown{Key: key, Text: printableText(C.GoString(text))})
	} else {
		w.queue.Push(event.KeyUp{Key: key})
	}
}

//export pv_on_modifiers
func pv_on_modifiers(id C.uintptr_t, flags C.ulong) {
	w := lookupWindow(uintptr(id))
	if w == nil || w.destroyed {
		return
	}
	w.pushModifiers(flagsToModifiers(flags))
}

//export pv_on_focus
func pv_on_focus(id C.uintptr_t, focused C.bool) {
	w := lookupWindow(uintptr(id))
	if w == nil || w.destroyed {
		return
	}
	w.queue.Push(event.WindowFocus{Focused: bool(focused)})
}

//export pv_on_move
func pv_on_move(id C.uintptr_t, x, y C.double) {
	w := lookupWindow(uintptr(id))
	if w == nil || w.destroyed {
		return
	}
	w.queue.Push(event.WindowMove{Pos: geom.Point{X: float32(x), Y: float32(y)}})
}

//export pv_on_resize
func pv_on_resize(id C.uintptr_t, width, height C.double) {
	w := lookupWindow(uintptr(id))
	if w == nil || w.destroyed {
		return
	}
	w.queue.Push(event.WindowResize{Size: geom.Size{
		Width:  uint32(width),
		Height: uint32(height),
	}})
}

//export pv_on_damage
func pv_on_damage(id C.uintptr_t, x, y, width, height C.double) {
	w := lookupWindow(uintptr(id))
	if w == nil || w.destroyed {
		return
	}
	w.queue.Push(event.WindowDamage{Rect: geom.Rect{
		Min:  geom.Point{X: float32(x), Y: float32(y)},
		Size: geom.Size{Width: uint32(width), Height: uint32(height)},
	}})
}

//export pv_on_close
func pv_on_close(id C.uintptr_t) {
	w := lookupWindow(uintptr(id))
	if w == nil || w.destroyed {
		return
	}
	w.queue.Push(event.WindowClose{})
}

//export pv_on_scale
func pv_on_scale(id C.uintptr_t, scale C.double) {
	w := lookupWindow(uintptr(id))
	if w == nil || w.destroyed {
		return
	}

	s := float32(scale)
	if w.b.cfg != nil && w.b.cfg.Scale.Override > 0 {
		s = w.b.cfg.Scale.Override
	}
	if s == w.b.scale {
		return
	}
	w.b.scale = s

	// Update the process factor before queueing so a handler reading
	// geom.ScaleFactor observes the new value.
	geom.SetScale(s)
	w.queue.Push(event.WindowScale{Scale: s})
	w.pacer.NotifyDisplayChange()
}

//export pv_on_display_change
func pv_on_display_change(id C.uintptr_t) {
	w := lookupWindow(uintptr(id))
	if w == nil || w.destroyed {
		return
	}
	w.pacer.NotifyDisplayChange()
}

//export pv_on_frame
func pv_on_frame(id C.uintptr_t) {
	// Display link thread. Only touch the channel.
	w := lookupWindow(uintptr(id))
	if w == nil {
		return
	}
	select {
	case w.vblank <- struct{}{}:
	default:
	}
}
