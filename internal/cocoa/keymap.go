//go:build darwin

package cocoa

import "github.com/1broseidon/picoview/event"

// keyCodeToKey maps Carbon virtual key codes (kVK_*), which AppKit still
// reports in NSEvent.keyCode, to the layout-independent key set.
func keyCodeToKey(code uint16) event.Key {
	if k, ok := keyCodeTable[code]; ok {
		return k
	}
	return event.KeyUnknown
}

var keyCodeTable = map[uint16]event.Key{
	0x00: event.KeyA,
	0x01: event.KeyS,
	0x02: event.KeyD,
	0x03: event.KeyF,
	0x04: event.KeyH,
	0x05: event.KeyG,
	0x06: event.KeyZ,
	0x07: event.KeyX,
	0x08: event.KeyC,
	0x09: event.KeyV,
	0x0B: event.KeyB,
	0x0C: event.KeyQ,
	0x0D: event.KeyW,
	0x0E: event.KeyE,
	0x0F: event.KeyR,
	0x10: event.KeyY,
	0x11: event.KeyT,
	0x1F: event.KeyO,
	0x20: event.KeyU,
	0x22: event.KeyI,
	0x23: event.KeyP,
	0x25: event.KeyL,
	0x26: event.KeyJ,
	0x28: event.KeyK,
	0x2D: event.KeyN,
	0x2E: event.KeyM,

	0x12: event.Key1,
	0x13: event.Key2,
	0x14: event.Key3,
	0x15: event.Key4,
	0x16: event.Key6,
	0x17: event.Key5,
	0x19: event.Key9,
	0x1A: event.Key7,
	0x1C: event.Key8,
	0x1D: event.Key0,

	0x18: event.KeyEqual,
	0x1B: event.KeyMinus,
	0x1E: event.KeyBracketRight,
	0x21: event.KeyBracketLeft,
	0x27: event.KeyQuote,
	0x29: event.KeySemicolon,
	0x2A: event.KeyBackslash,
	0x2B: event.KeyComma,
	0x2C: event.KeySlash,
	0x2F: event.KeyPeriod,
	0x32: event.KeyBackquote,

	0x24: event.KeyEnter,
	0x30: event.KeyTab,
	0x31: event.KeySpace,
	0x33: event.KeyBackspace,
	0x35: event.KeyEscape,

	0x36: event.KeyMetaRight,
	0x37: event.KeyMetaLeft,
	0x38: event.KeyShiftLeft,
	0x39: event.KeyCapsLock,
	0x3A: event.KeyAltLeft,
	0x3B: event.KeyControlLeft,
	0x3C: event.KeyShiftRight,
	0x3D: event.KeyAltRight,
	0x3E: event.KeyControlRight,

	0x41: event.KeyNumpadDecimal,
	0x43: event.KeyNumpadMultiply,
	0x45: event.KeyNumpadAdd,
	0x47: event.KeyNumLock, // kVK_ANSI_KeypadClear
	0x4B: event.KeyNumpadDivide,
	0x4C: event.KeyNumpadEnter,
	0x4E: event.KeyNumpadSubtract,
	0x52: event.KeyNumpad0,
	0x53: event.KeyNumpad1,
	0x54: event.KeyNumpad2,
	0x55: event.KeyNumpad3,
	0x56: event.KeyNumpad4,
	0x57: event.KeyNumpad5,
	0x58: event.KeyNumpad6,
	0x59: event.KeyNumpad7,
	0x5B: event.KeyNumpad8,
	0x5C: event.KeyNumpad9,

	0x60: event.KeyF5,
	0x61: event.KeyF6,
	0x62: event.KeyF7,
	0x63: event.KeyF3,
	0x64: event.KeyF8,
	0x65: event.KeyF9,
	0x67: event.KeyF11,
	0x6D: event.KeyF10,
	0x6F: event.KeyF12,
	0x76: event.KeyF4,
	0x78: event.KeyF2,
	0x7A: event.KeyF1,

	0x72: event.KeyInsert, // kVK_Help on old keyboards
	0x73: event.KeyHome,
	0x74: event.KeyPageUp,
	0x75: event.KeyDelete,
	0x77: event.KeyEnd,
	0x79: event.KeyPageDown,
	0x7B: event.KeyArrowLeft,
	0x7C: event.KeyArrowRight,
	0x7D: event.KeyArrowDown,
	0x7E: event.KeyArrowUp,
}
