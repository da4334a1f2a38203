//go:build windows

package win32

import "github.com/1broseidon/picoview/event"

// vkToKey maps virtual-key codes to the layout-independent key set.
func vkToKey(vk uintptr) event.Key {
	switch {
	case vk >= 'A' && vk <= 'Z':
		return event.KeyA + event.Key(vk-'A')
	case vk >= '0' && vk <= '9':
		return event.Key0 + event.Key(vk-'0')
	case vk >= 0x70 && vk <= 0x7B: // VK_F1 .. VK_F12
		return event.KeyF1 + event.Key(vk-0x70)
	case vk >= 0x60 && vk <= 0x69: // VK_NUMPAD0 .. VK_NUMPAD9
		return event.KeyNumpad0 + event.Key(vk-0x60)
	}

	if k, ok := vkTable[vk]; ok {
		return k
	}
	return event.KeyUnknown
}

var vkTable = map[uintptr]event.Key{
	0x08: event.KeyBackspace,
	0x09: event.KeyTab,
	0x0D: event.KeyEnter,
	0x14: event.KeyCapsLock,
	0x1B: event.KeyEscape,
	0x20: event.KeySpace,
	0x21: event.KeyPageUp,
	0x22: event.KeyPageDown,
	0x23: event.KeyEnd,
	0x24: event.KeyHome,
	0x25: event.KeyArrowLeft,
	0x26: event.KeyArrowUp,
	0x27: event.KeyArrowRight,
	0x28: event.KeyArrowDown,
	0x2C: event.KeyPrintScreen,
	0x2D: event.KeyInsert,
	0x2E: event.KeyDelete,

	0x5B: event.KeyMetaLeft,
	0x5C: event.KeyMetaRight,
	0x5D: event.KeyContextMenu,

	0x6A: event.KeyNumpadMultiply,
	0x6B: event.KeyNumpadAdd,
	0x6D: event.KeyNumpadSubtract,
	0x6E: event.KeyNumpadDecimal,
	0x6F: event.KeyNumpadDivide,

	0x90: event.KeyNumLock,
	0x91: event.KeyScrollLock,

	0xA0: event.KeyShiftLeft,
	0xA1: event.KeyShiftRight,
	0xA2: event.KeyControlLeft,
	0xA3: event.KeyControlRight,
	0xA4: event.KeyAltLeft,
	0xA5: event.KeyAltRight,

	// VK_SHIFT/VK_CONTROL/VK_MENU arrive when the generic code is
	// delivered instead of the sided one.
	0x10: event.KeyShiftLeft,
	0x11: event.KeyControlLeft,
	0x12: event.KeyAltLeft,

	0xBA: event.KeySemicolon,
	0xBB: event.KeyEqual,
	0xBC: event.KeyComma,
	0xBD: event.KeyMinus,
	0xBE: event.KeyPeriod,
	0xBF: event.KeySlash,
	0xC0: event.KeyBackquote,
	0xDB: event.KeyBracketLeft,
	0xDC: event.KeyBackslash,
	0xDD: event.KeyBracketRight,
	0xDE: event.KeyQuote,
}
