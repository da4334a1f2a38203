//go:build linux

package x11

import (
	"unicode"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/keybind"

	"github.com/1broseidon/picoview/event"
)

// translateKey maps a hardware keycode to the layout-independent Key plus
// the text the press produces under the active layout. Text is empty for
// non-printable keys.
func (b *Backend) translateKey(code xproto.Keycode, state uint16) (event.Key, string) {
	keysym := keybind.KeysymGet(b.xu, code, 0)
	key := keysymToKey(keysym)

	text := keybind.LookupString(b.xu, state, code)
	if !printable(text) {
		text = ""
	}
	return key, text
}

// keycodeModifier returns the modifier bit a keycode itself toggles, so a
// modifier press is reflected in the bitset of its own KeyModifiers event.
func keycodeModifier(b *Backend, code xproto.Keycode) event.Modifiers {
	switch keysymToKey(keybind.KeysymGet(b.xu, code, 0)) {
	case event.KeyShiftLeft, event.KeyShiftRight:
		return event.ModShift
	case event.KeyControlLeft, event.KeyControlRight:
		return event.ModCtrl
	case event.KeyAltLeft, event.KeyAltRight:
		return event.ModAlt
	case event.KeyMetaLeft, event.KeyMetaRight:
		return event.ModMeta
	}
	return 0
}

func printable(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

// keysymToKey maps X keysyms (first column, unshifted) to Keys. Latin-1
// symbols use their codepoint; everything else comes from keysymdef.h.
func keysymToKey(sym xproto.Keysym) event.Key {
	switch {
	case sym >= 'a' && sym <= 'z':
		return event.KeyA + event.Key(sym-'a')
	case sym >= 'A' && sym <= 'Z':
		return event.KeyA + event.Key(sym-'A')
	case sym >= '0' && sym <= '9':
		return event.Key0 + event.Key(sym-'0')
	case sym >= 0xffbe && sym <= 0xffc9: // XK_F1 .. XK_F12
		return event.KeyF1 + event.Key(sym-0xffbe)
	case sym >= 0xffb0 && sym <= 0xffb9: // XK_KP_0 .. XK_KP_9
		return event.KeyNumpad0 + event.Key(sym-0xffb0)
	}

	if k, ok := keysymTable[sym]; ok {
		return k
	}
	return event.KeyUnknown
}

var keysymTable = map[xproto.Keysym]event.Key{
	0x0020: event.KeySpace,
	0x0027: event.KeyQuote,
	0x002c: event.KeyComma,
	0x002d: event.KeyMinus,
	0x002e: event.KeyPeriod,
	0x002f: event.KeySlash,
	0x003b: event.KeySemicolon,
	0x003d: event.KeyEqual,
	0x005b: event.KeyBracketLeft,
	0x005c: event.KeyBackslash,
	0x005d: event.KeyBracketRight,
	0x0060: event.KeyBackquote,

	0xff08: event.KeyBackspace,
	0xff09: event.KeyTab,
	0xff0d: event.KeyEnter,
	0xff1b: event.KeyEscape,
	0xff50: event.KeyHome,
	0xff51: event.KeyArrowLeft,
	0xff52: event.KeyArrowUp,
	0xff53: event.KeyArrowRight,
	0xff54: event.KeyArrowDown,
	0xff55: event.KeyPageUp,
	0xff56: event.KeyPageDown,
	0xff57: event.KeyEnd,
	0xff61: event.KeyPrintScreen,
	0xff63: event.KeyInsert,
	0xff67: event.KeyContextMenu,
	0xff7f: event.KeyNumLock,
	0xff14: event.KeyScrollLock,
	0xffff: event.KeyDelete,

	0xff8d: event.KeyNumpadEnter,
	0xffaa: event.KeyNumpadMultiply,
	0xffab: event.KeyNumpadAdd,
	0xffad: event.KeyNumpadSubtract,
	0xffae: event.KeyNumpadDecimal,
	0xffaf: event.KeyNumpadDivide,

	0xffe1: event.KeyShiftLeft,
	0xffe2: event.KeyShiftRight,
	0xffe3: event.KeyControlLeft,
	0xffe4: event.KeyControlRight,
	0xffe5: event.KeyCapsLock,
	0xffe9: event.KeyAltLeft,
	0xffea: event.KeyAltRight,
	0xffeb: event.KeyMetaLeft,
	0xffec: event.KeyMetaRight,
}
