package event

// Key is a layout-independent key identifier. Letter and digit keys refer to
// physical positions on a US layout; the text a press produces under the
// active layout arrives in KeyDown.Text.
type Key uint8

const (
	KeyUnknown Key = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyBackquote
	KeyBackslash
	KeyBracketLeft
	KeyBracketRight
	KeyComma
	KeyEqual
	KeyMinus
	KeyPeriod
	KeyQuote
	KeySemicolon
	KeySlash

	KeySpace
	KeyTab
	KeyEnter
	KeyBackspace
	KeyEscape
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight

	KeyShiftLeft
	KeyShiftRight
	KeyControlLeft
	KeyControlRight
	KeyAltLeft
	KeyAltRight
	KeyMetaLeft
	KeyMetaRight
	KeyCapsLock
	KeyNumLock
	KeyScrollLock
	KeyContextMenu
	KeyPrintScreen

	KeyNumpad0
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9
	KeyNumpadAdd
	KeyNumpadSubtract
	KeyNumpadMultiply
	KeyNumpadDivide
	KeyNumpadDecimal
	KeyNumpadEnter

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

var keyNames = map[Key]string{
	KeySpace: "space", KeyTab: "tab", KeyEnter: "enter",
	KeyBackspace: "backspace", KeyEscape: "escape", KeyDelete: "delete",
	KeyInsert: "insert", KeyHome: "home", KeyEnd: "end",
	KeyPageUp: "pageup", KeyPageDown: "pagedown",
	KeyArrowUp: "up", KeyArrowDown: "down",
	KeyArrowLeft: "left", KeyArrowRight: "right",
	KeyShiftLeft: "lshift", KeyShiftRight: "rshift",
	KeyControlLeft: "lctrl", KeyControlRight: "rctrl",
	KeyAltLeft: "lalt", KeyAltRight: "ralt",
	KeyMetaLeft: "lmeta", KeyMetaRight: "rmeta",
	KeyCapsLock: "capslock", KeyNumLock: "numlock",
	KeyScrollLock: "scrolllock", KeyContextMenu: "menu",
	KeyPrintScreen: "printscreen", KeyNumpadEnter: "kpenter",
}

func (k Key) String() string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('a' + (k - KeyA)))
	case k >= Key0 && k <= Key9:
		return string(rune('0' + (k - Key0)))
	case k >= KeyF1 && k <= KeyF9:
		return "f" + string(rune('1'+(k-KeyF1)))
	case k == KeyF10:
		return "f10"
	case k == KeyF11:
		return "f11"
	case k == KeyF12:
		return "f12"
	case k >= KeyNumpad0 && k <= KeyNumpad9:
		return "kp" + string(rune('0'+(k-KeyNumpad0)))
	}
	if n, ok := keyNames[k]; ok {
		return n
	}
	return "unknown"
}
