package event

import "testing"

func TestModifiersHas(t *testing.T) {
	m := ModCtrl | ModShift

	if !m.Has(ModCtrl) {
		t.Error("ctrl+shift should have ctrl")
	}
	if !m.Has(ModCtrl | ModShift) {
		t.Error("ctrl+shift should have ctrl+shift")
	}
	if m.Has(ModAlt) {
		t.Error("ctrl+shift should not have alt")
	}
	if m.Has(ModCtrl | ModAlt) {
		t.Error("Has requires all bits, not any")
	}
}

func TestModifiersString(t *testing.T) {
	tests := []struct {
		m    Modifiers
		want string
	}{
		{0, "none"},
		{ModShift, "shift"},
		{ModCtrl | ModShift, "ctrl+shift"},
		{ModAlt | ModMeta | ModCapsLock, "alt+meta+capslock"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("Modifiers(%b).String() = %q, want %q", tt.m, got, tt.want)
		}
	}
}

func TestMouseButtonString(t *testing.T) {
	tests := []struct {
		b    MouseButton
		want string
	}{
		{ButtonLeft, "left"},
		{ButtonRight, "right"},
		{ButtonMiddle, "middle"},
		{ButtonBack, "back"},
		{ButtonForward, "forward"},
		{MouseButton(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.b.String(); got != tt.want {
			t.Errorf("MouseButton(%d).String() = %q, want %q", tt.b, got, tt.want)
		}
	}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		k    Key
		want string
	}{
		{KeyA, "a"},
		{KeyZ, "z"},
		{Key0, "0"},
		{Key9, "9"},
		{KeyF1, "f1"},
		{KeyF9, "f9"},
		{KeyF10, "f10"},
		{KeyF12, "f12"},
		{KeyNumpad0, "kp0"},
		{KeyNumpad9, "kp9"},
		{KeyNumpadEnter, "kpenter"},
		{KeySpace, "space"},
		{KeyShiftLeft, "lshift"},
		{KeyMetaRight, "rmeta"},
		{KeyUnknown, "unknown"},
		{Key(255), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("Key(%d).String() = %q, want %q", tt.k, got, tt.want)
		}
	}
}

func TestCursorString(t *testing.T) {
	tests := []struct {
		c    Cursor
		want string
	}{
		{CursorDefault, "default"},
		{CursorHidden, "hidden"},
		{CursorText, "text"},
		{CursorResizeNWSE, "resize-nwse"},
		{CursorResizeRow, "resize-row"},
		{Cursor(200), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("Cursor(%d).String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}
