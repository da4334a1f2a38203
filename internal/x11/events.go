//go:build linux

package x11

import (
	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/picoview/event"
	"github.com/1broseidon/picoview/geom"
)

// Pump drains the shared connection, routing native events to their owning
// windows, then returns everything pending for this window plus at most
// one coalesced frame tick. A destroyed window pumps nothing.
func (w *Window) Pump() []event.Event {
	if w.destroyed {
		return nil
	}
	w.b.dispatchPending()
	if w.pacer.TakeTick() {
		w.queue.Push(event.WindowFrame{})
	}
	return w.queue.Drain()
}

// dispatchPending translates every native event currently queued on the
// connection. Events for unknown windows and unknown event types are
// dropped and logged; pump never fails.
func (b *Backend) dispatchPending() {
	for {
		ev, xerr := b.xu.Conn().PollForEvent()
		if xerr != nil {
			b.log.Debugf("x11 protocol error: %v", xerr)
			continue
		}
		if ev == nil {
			return
		}

		switch e := ev.(type) {
		case xproto.ButtonPressEvent:
			b.withWindow(e.Event, func(w *Window) { w.onButtonPress(e) })
		case xproto.ButtonReleaseEvent:
			b.withWindow(e.Event, func(w *Window) { w.onButtonRelease(e) })
		case xproto.KeyPressEvent:
			b.withWindow(e.Event, func(w *Window) { w.onKeyPress(e) })
		case xproto.KeyReleaseEvent:
			b.withWindow(e.Event, func(w *Window) { w.onKeyRelease(e) })
		case xproto.MotionNotifyEvent:
			b.withWindow(e.Event, func(w *Window) {
				w.pushModifiers(maskToModifiers(e.State))
				w.queue.Push(event.MouseMove{
					Pos:     geom.Point{X: float32(e.EventX), Y: float32(e.EventY)},
					Entered: true,
				})
			})
		case xproto.EnterNotifyEvent:
			b.withWindow(e.Event, func(w *Window) {
				w.queue.Push(event.MouseMove{
					Pos:     geom.Point{X: float32(e.EventX), Y: float32(e.EventY)},
					Entered: true,
				})
			})
		case xproto.LeaveNotifyEvent:
			b.withWindow(e.Event, func(w *Window) {
				w.queue.Push(event.MouseMove{
					Pos:     geom.Point{X: float32(e.EventX), Y: float32(e.EventY)},
					Entered: false,
				})
			})
		case xproto.FocusInEvent:
			b.withWindow(e.Event, func(w *Window) {
				w.queue.Push(event.WindowFocus{Focused: true})
			})
		case xproto.FocusOutEvent:
			b.withWindow(e.Event, func(w *Window) {
				w.queue.Push(event.WindowFocus{Focused: false})
			})
		case xproto.ConfigureNotifyEvent:
			b.withWindow(e.Window, func(w *Window) { w.onConfigure(e) })
		case xproto.ExposeEvent:
			b.withWindow(e.Window, func(w *Window) { w.onExpose(e) })
		case xproto.ClientMessageEvent:
			b.withWindow(e.Window, func(w *Window) { w.onClientMessage(e) })
		case xproto.MapNotifyEvent, xproto.UnmapNotifyEvent,
			xproto.ReparentNotifyEvent, xproto.DestroyNotifyEvent:
			// Lifecycle bookkeeping the handle layer already tracks.
		case randr.ScreenChangeNotifyEvent:
			b.onScreenChange()
		default:
			b.log.Debugf("dropped unhandled x11 event %T", ev)
		}
	}
}

func (b *Backend) withWindow(id xproto.Window, fn func(*Window)) {
	if w, ok := b.windows[id]; ok {
		fn(w)
	} else {
		b.log.Debugf("dropped event for unknown window %d", id)
	}
}

func (w *Window) onButtonPress(e xproto.ButtonPressEvent) {
	w.pushModifiers(maskToModifiers(e.State))
	pos := geom.Point{X: float32(e.EventX), Y: float32(e.EventY)}

	// Buttons 4-7 are the scroll wheel in core protocol terms.
	switch e.Detail {
	case 4:
		w.queue.Push(event.MouseScroll{DeltaY: 1, Pos: pos})
		return
	case 5:
		w.queue.Push(event.MouseScroll{DeltaY: -1, Pos: pos})
		return
	case 6:
		w.queue.Push(event.MouseScroll{DeltaX: 1, Pos: pos})
		return
	case 7:
		w.queue.Push(event.MouseScroll{DeltaX: -1, Pos: pos})
		return
	}

	button, ok := mapButton(e.Detail)
	if !ok {
		w.b.log.Debugf("dropped press of unknown button %d", e.Detail)
		return
	}
	w.queue.Push(event.MouseDown{Button: button, Pos: pos})
}

func (w *Window) onButtonRelease(e xproto.ButtonReleaseEvent) {
	w.pushModifiers(maskToModifiers(e.State))
	if e.Detail >= 4 && e.Detail <= 7 {
		return // wheel releases carry no information
	}
	button, ok := mapButton(e.Detail)
	if !ok {
		return
	}
	w.queue.Push(event.MouseUp{
		Button: button,
		Pos:    geom.Point{X: float32(e.EventX), Y: float32(e.EventY)},
	})
}

func (w *Window) onKeyPress(e xproto.KeyPressEvent) {
	w.pushModifiers(maskToModifiers(e.State) | keycodeModifier(w.b, e.Detail))
	key, text := w.b.translateKey(e.Detail, e.State)
	if key == event.KeyUnknown && text == "" {
		w.b.log.Debugf("dropped unmapped keycode %d", e.Detail)
		return
	}
	w.queue.Push(event.KeyDown{Key: key, Text: text})
}

func (w *Window) onKeyRelease(e xproto.KeyReleaseEvent) {
	w.pushModifiers(maskToModifiers(e.State) &^ keycodeModifier(w.b, e.Detail))
	key, _ := w.b.translateKey(e.Detail, e.State)
	if key == event.KeyUnknown {
		return
	}
	w.queue.Push(event.KeyUp{Key: key})
}

// onConfigure reports geometry changes. Child window coordinates are
// parent-relative on the wire, which is exactly the embedded contract; a
// reparented top-level window translates to root coordinates instead.
func (w *Window) onConfigure(e xproto.ConfigureNotifyEvent) {
	pos := geom.Point{X: float32(e.X), Y: float32(e.Y)}
	if !w.embedded {
		translated, err := xproto.TranslateCoordinates(
			w.b.xu.Conn(), w.id, w.b.root, 0, 0,
		).Reply()
		if err == nil {
			pos = geom.Point{X: float32(translated.DstX), Y: float32(translated.DstY)}
		}
	}
	if pos != w.lastPos {
		w.lastPos = pos
		w.queue.Push(event.WindowMove{Pos: pos})
	}

	size := geom.Size{Width: uint32(e.Width), Height: uint32(e.Height)}
	if size != w.lastSize {
		w.lastSize = size
		// The queue collapses a burst of these into one final size.
		w.queue.Push(event.WindowResize{Size: size})
	}
}

func (w *Window) onExpose(e xproto.ExposeEvent) {
	rect := geom.Rect{
		Min:  geom.Point{X: float32(e.X), Y: float32(e.Y)},
		Size: geom.Size{Width: uint32(e.Width), Height: uint32(e.Height)},
	}
	// Count > 0 means more rectangles of the same series follow; deliver
	// the union once the series completes.
	w.pendingDamage = w.pendingDamage.Union(rect)
	if e.Count == 0 {
		w.queue.Push(event.WindowDamage{Rect: w.pendingDamage})
		w.pendingDamage = geom.Rect{}
	}
}

func (w *Window) onClientMessage(e xproto.ClientMessageEvent) {
	if e.Type != w.b.wmProtocols || e.Format != 32 {
		return
	}
	if xproto.Atom(e.Data.Data32[0]) == w.b.wmDeleteWindow {
		w.queue.Push(event.WindowClose{})
	}
}

// onScreenChange re-reads the scale factor and refresh rate. The scale is
// updated before the WindowScale event is queued, so handlers observe the
// new value.
func (b *Backend) onScreenChange() {
	newScale := b.detectScale()
	scaleChanged := newScale != b.scale
	if scaleChanged {
		b.scale = newScale
		geom.SetScale(newScale)
	}
	for _, w := range b.windows {
		if scaleChanged {
			w.queue.Push(event.WindowScale{Scale: newScale})
		}
		w.pacer.NotifyDisplayChange()
	}
}

// pushModifiers queues a KeyModifiers event only when the bitset changed.
func (w *Window) pushModifiers(mods event.Modifiers) {
	if mods == w.lastMods {
		return
	}
	w.lastMods = mods
	w.queue.Push(event.KeyModifiers{Modifiers: mods})
}

func mapButton(detail xproto.Button) (event.MouseButton, bool) {
	switch detail {
	case 1:
		return event.ButtonLeft, true
	case 2:
		return event.ButtonMiddle, true
	case 3:
		return event.ButtonRight, true
	case 8:
		return event.ButtonBack, true
	case 9:
		return event.ButtonForward, true
	}
	return 0, false
}

func maskToModifiers(state uint16) event.Modifiers {
	var mods event.Modifiers
	if state&xproto.KeyButMaskShift != 0 {
		mods |= event.ModShift
	}
	if state&xproto.KeyButMaskLock != 0 {
		mods |= event.ModCapsLock
	}
	if state&xproto.KeyButMaskControl != 0 {
		mods |= event.ModCtrl
	}
	if state&xproto.KeyButMaskMod1 != 0 {
		mods |= event.ModAlt
	}
	if state&xproto.KeyButMaskMod2 != 0 {
		mods |= event.ModNumLock
	}
	if state&xproto.KeyButMaskMod4 != 0 {
		mods |= event.ModMeta
	}
	return mods
}
