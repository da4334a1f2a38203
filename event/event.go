// Package event defines the closed set of events a picoview window can
// deliver. Every backend translates its native queue into these types; the
// set is sealed so a pump consumer can switch over it exhaustively.
package event

import (
	"strings"

	"github.com/1broseidon/picoview/geom"
)

// Event is the tagged union of everything a pump call can return. It is
// sealed: only types in this package implement it.
type Event interface {
	isEvent()
}

// MouseButton identifies a pointer button.
type MouseButton uint8

const (
	ButtonLeft MouseButton = iota
	ButtonRight
	ButtonMiddle
	ButtonBack
	ButtonForward
)

func (b MouseButton) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	case ButtonBack:
		return "back"
	case ButtonForward:
		return "forward"
	}
	return "unknown"
}

// Modifiers is the bitset of keyboard modifiers currently held.
type Modifiers uint16

const (
	ModAlt Modifiers = 1 << iota
	ModCtrl
	ModMeta
	ModShift
	ModScrollLock
	ModNumLock
	ModCapsLock
)

// Has reports whether all modifiers in m are set.
func (m Modifiers) Has(mods Modifiers) bool {
	return m&mods == mods
}

func (m Modifiers) String() string {
	if m == 0 {
		return "none"
	}
	names := []struct {
		bit  Modifiers
		name string
	}{
		{ModAlt, "alt"},
		{ModCtrl, "ctrl"},
		{ModMeta, "meta"},
		{ModShift, "shift"},
		{ModScrollLock, "scrolllock"},
		{ModNumLock, "numlock"},
		{ModCapsLock, "capslock"},
	}
	var parts []string
	for _, n := range names {
		if m&n.bit != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "+")
}

// MouseDown reports a pointer button press at a position in window-local
// physical pixels.
type MouseDown struct {
	Button MouseButton
	Pos    geom.Point
}

// MouseUp reports a pointer button release.
type MouseUp struct {
	Button MouseButton
	Pos    geom.Point
}

// MouseMove reports pointer motion. Entered is false when the pointer has
// left the window; Pos is then the last known position.
type MouseMove struct {
	Pos     geom.Point
	Entered bool
}

// MouseScroll reports wheel motion in lines. Positive Y scrolls up.
type MouseScroll struct {
	DeltaX float32
	DeltaY float32
	Pos    geom.Point
}

// KeyDown reports a key press. Text holds the produced text for printable
// keys and is empty otherwise.
type KeyDown struct {
	Key  Key
	Text string
}

// KeyUp reports a key release.
type KeyUp struct {
	Key Key
}

// KeyModifiers reports the new modifier bitset. Backends emit it only when
// the set actually changed.
type KeyModifiers struct {
	Modifiers Modifiers
}

// WindowFocus reports keyboard focus gain or loss.
type WindowFocus struct {
	Focused bool
}

// WindowScale reports a change of the process scale factor. It is emitted
// after the factor has been updated, so reading geom.ScaleFactor from the
// handler observes the new value.
type WindowScale struct {
	Scale float32
}

// WindowMove reports the window's new position: screen coordinates for a
// top-level window, parent-relative coordinates for an embedded one.
type WindowMove struct {
	Pos geom.Point
}

// WindowResize reports the window's new size. Backends deliver at most one
// per pump call, carrying the final size observed during that call.
type WindowResize struct {
	Size geom.Size
}

// WindowFrame is the frame-pacing tick. Pending ticks coalesce: a pump call
// delivers at most one regardless of how long the caller was away.
type WindowFrame struct{}

// WindowDamage reports a dirty region that needs repainting. Availability
// is backend-dependent; see the capability matrix.
type WindowDamage struct {
	Rect geom.Rect
}

// WindowClose reports that the user or window manager asked the window to
// close. The window stays alive until the caller closes it.
type WindowClose struct{}

func (MouseDown) isEvent()    {}
func (MouseUp) isEvent()      {}
func (MouseMove) isEvent()    {}
func (MouseScroll) isEvent()  {}
func (KeyDown) isEvent()      {}
func (KeyUp) isEvent()        {}
func (KeyModifiers) isEvent() {}
func (WindowFocus) isEvent()  {}
func (WindowScale) isEvent()  {}
func (WindowMove) isEvent()   {}
func (WindowResize) isEvent() {}
func (WindowFrame) isEvent()  {}
func (WindowDamage) isEvent() {}
func (WindowClose) isEvent()  {}
