package picoview

import (
	"errors"
	"testing"

	"github.com/1broseidon/picoview/backend"
	"github.com/1broseidon/picoview/event"
	"github.com/1broseidon/picoview/geom"
)

// fakeWindow records calls so the lifecycle tests run headless.
type fakeWindow struct {
	pending  []event.Event
	destroys int
	visible  bool
	title    string
}

var _ backend.Window = (*fakeWindow)(nil)

func (f *fakeWindow) Pump() []event.Event {
	out := f.pending
	f.pending = nil
	return out
}

func (f *fakeWindow) SetTitle(title string) error   { f.title = title; return nil }
func (f *fakeWindow) SetSize(geom.Size) error       { return nil }
func (f *fakeWindow) SetPosition(geom.Point) error  { return nil }
func (f *fakeWindow) SetVisible(v bool) error       { f.visible = v; return nil }
func (f *fakeWindow) SetCursor(event.Cursor) error  { return nil }
func (f *fakeWindow) WarpCursor(geom.Point) error   { return nil }
func (f *fakeWindow) ClipboardText() (string, error) {
	return "", backend.ErrUnsupported
}
func (f *fakeWindow) SetClipboardText(string) error { return nil }
func (f *fakeWindow) GrabKeyboard(bool) error       { return nil }
func (f *fakeWindow) OpenURL(string) bool           { return true }
func (f *fakeWindow) GLSurface(backend.GLConfig) (backend.Surface, error) {
	return nil, backend.ErrGLUnavailable
}
func (f *fakeWindow) Handle() uintptr { return 0xBEEF }
func (f *fakeWindow) Destroy() error  { f.destroys++; return nil }

func newTestWindow() (*Window, *fakeWindow) {
	fw := &fakeWindow{}
	return newWindow(&Connection{}, fw), fw
}

func TestLifecycleStates(t *testing.T) {
	w, _ := newTestWindow()
	if w.State() != StateCreated {
		t.Fatalf("initial state = %v, want created", w.State())
	}

	// The first pump observes the mapped window.
	w.Pump()
	if w.State() != StateVisible {
		t.Errorf("state after first pump = %v, want visible", w.State())
	}

	if err := w.SetVisible(false); err != nil {
		t.Fatal(err)
	}
	if w.State() != StateHidden {
		t.Errorf("state after hide = %v, want hidden", w.State())
	}
	if err := w.SetVisible(true); err != nil {
		t.Fatal(err)
	}
	if w.State() != StateVisible {
		t.Errorf("state after re-show = %v, want visible", w.State())
	}
}

func TestCloseRequestEntersClosing(t *testing.T) {
	w, fw := newTestWindow()
	fw.pending = []event.Event{event.KeyDown{Key: event.KeyEscape}, event.WindowClose{}}

	events := w.Pump()
	if len(events) != 2 {
		t.Fatalf("pumped %d events, want 2", len(events))
	}
	if w.State() != StateClosing {
		t.Errorf("state after WindowClose = %v, want closing", w.State())
	}

	// Closing is not closed: the window still works until Close.
	if err := w.SetTitle("still here"); err != nil {
		t.Errorf("SetTitle while closing failed: %v", err)
	}
	if fw.destroys != 0 {
		t.Errorf("native window destroyed %d times before Close", fw.destroys)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	w, fw := newTestWindow()

	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if w.State() != StateClosed {
		t.Fatalf("state after Close = %v, want closed", w.State())
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close errored: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("third Close errored: %v", err)
	}
	if fw.destroys != 1 {
		t.Errorf("native release happened %d times, want exactly 1", fw.destroys)
	}
}

func TestClosedHandleFailsEverything(t *testing.T) {
	w, _ := newTestWindow()
	w.Close()

	checks := []struct {
		name string
		err  error
	}{
		{"SetTitle", w.SetTitle("x")},
		{"SetSize", w.SetSize(geom.Size{Width: 1, Height: 1})},
		{"SetPosition", w.SetPosition(geom.Point{})},
		{"SetVisible", w.SetVisible(true)},
		{"SetCursor", w.SetCursor(event.CursorHand)},
		{"WarpCursor", w.WarpCursor(geom.Point{})},
		{"SetClipboardText", w.SetClipboardText("x")},
		{"GrabKeyboard", w.GrabKeyboard(true)},
	}
	for _, c := range checks {
		if !errors.Is(c.err, ErrHandleClosed) {
			t.Errorf("%s on closed handle = %v, want ErrHandleClosed", c.name, c.err)
		}
	}

	if _, err := w.ClipboardText(); !errors.Is(err, ErrHandleClosed) {
		t.Errorf("ClipboardText on closed handle = %v, want ErrHandleClosed", err)
	}
	if _, err := w.GLSurface(backend.DefaultGLConfig()); !errors.Is(err, ErrHandleClosed) {
		t.Errorf("GLSurface on closed handle = %v, want ErrHandleClosed", err)
	}
	if events := w.Pump(); events != nil {
		t.Errorf("Pump on closed handle = %v, want nil", events)
	}
	if h := w.Handle(); h != 0 {
		t.Errorf("Handle on closed handle = %#x, want 0", h)
	}
	if w.OpenURL("https://example.com") {
		t.Error("OpenURL on closed handle should report false")
	}
	if w.State() != StateClosed {
		t.Errorf("state drifted to %v after failed operations", w.State())
	}
}

func TestPumpDelegates(t *testing.T) {
	w, fw := newTestWindow()
	fw.pending = []event.Event{
		event.WindowResize{Size: geom.Size{Width: 640, Height: 480}},
		event.WindowFrame{},
	}

	events := w.Pump()
	if len(events) != 2 {
		t.Fatalf("pumped %d events, want 2", len(events))
	}
	if rz, ok := events[0].(event.WindowResize); !ok || rz.Size.Width != 640 {
		t.Errorf("events[0] = %#v, want the resize", events[0])
	}

	// Nothing pending: an empty pump is nil, not an error.
	if events := w.Pump(); events != nil {
		t.Errorf("idle pump = %v, want nil", events)
	}
}

func TestStateStrings(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{StateCreated, "created"},
		{StateVisible, "visible"},
		{StateHidden, "hidden"},
		{StateClosing, "closing"},
		{StateClosed, "closed"},
		{State(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}
