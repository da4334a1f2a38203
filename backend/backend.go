// Package backend defines the contract every platform implementation
// satisfies, the descriptor used to create windows, the closed error
// taxonomy, and the per-platform capability matrix.
//
// Exactly one backend connection exists per process. All window and event
// operations on a connection and its windows belong to a single owning
// thread; calling them from two threads without external synchronization is
// a caller contract violation, not a recoverable error. The frame pacer is
// the one sanctioned exception and hands its ticks over through a
// thread-safe flag.
package backend

import (
	"github.com/1broseidon/picoview/event"
	"github.com/1broseidon/picoview/geom"
)

// Descriptor is the creation-time window configuration. Decorated and
// Resizable are applied atomically at creation; platforms that cannot
// toggle them later report FeatureDecorationToggle as unsupported.
type Descriptor struct {
	Title string
	Size  geom.Size

	// Position is the initial top-left corner. Nil requests the default
	// placement, which is centered on the active monitor for top-level
	// windows and (0,0) in parent coordinates for embedded ones.
	Position *geom.Point

	Decorated bool
	Resizable bool

	// Parent embeds the new window as a child of a foreign native window
	// (HWND, NSView pointer, or X11 window id). Zero means top-level.
	Parent uintptr

	// GL requests an OpenGL-capable surface at creation. Nil windows can
	// still call GLSurface later with an explicit config.
	GL *GLConfig
}

// GLConfig describes the requested OpenGL pixel format and context version.
type GLConfig struct {
	VersionMajor int
	VersionMinor int
	CoreProfile  bool

	DoubleBuffer bool
	RedBits      int
	GreenBits    int
	BlueBits     int
	AlphaBits    int
	DepthBits    int
	StencilBits  int
}

// DefaultGLConfig matches the compatibility-profile default of the
// descriptor: 24-bit color with alpha, 24-bit depth, 8-bit stencil,
// double buffered.
func DefaultGLConfig() GLConfig {
	return GLConfig{
		VersionMajor: 2,
		VersionMinor: 1,
		DoubleBuffer: true,
		RedBits:      8,
		GreenBits:    8,
		BlueBits:     8,
		AlphaBits:    8,
		DepthBits:    24,
		StencilBits:  8,
	}
}

// Backend is the per-process native connection (display connection, Win32
// module state, NSApplication). Implementations acquire it lazily and
// idempotently; a second connect returns the existing connection.
type Backend interface {
	// CreateWindow creates a native window for the descriptor. Failures
	// wrap ErrWindowCreate.
	CreateWindow(Descriptor) (Window, error)

	// RefreshRate reports the active display's refresh rate in Hz, or 0
	// if the platform cannot tell. Pacing falls back to 60 Hz then.
	RefreshRate() float64

	// Scale reports the platform scale factor (1.0 = 96 dpi).
	Scale() float32

	// Close tears the native connection down. All windows must be
	// destroyed first.
	Close() error
}

// Window is one native window owned by a Backend.
type Window interface {
	// Pump drains every native event currently queued for this window,
	// translated and ordered as produced, plus at most one pending frame
	// tick. It never blocks beyond the native dequeue cost and never
	// fails: untranslatable native events are dropped and logged.
	Pump() []event.Event

	SetTitle(string) error
	SetSize(geom.Size) error
	SetPosition(geom.Point) error
	SetVisible(bool) error

	SetCursor(event.Cursor) error
	WarpCursor(geom.Point) error
	ClipboardText() (string, error)
	SetClipboardText(string) error
	GrabKeyboard(bool) error

	// OpenURL opens a URL with the platform opener. Best effort.
	OpenURL(string) bool

	// GLSurface creates an OpenGL-capable surface for this window.
	// Failures to find a matching pixel format wrap ErrGLUnavailable.
	GLSurface(GLConfig) (Surface, error)

	// Handle returns the raw native handle for embedding by a host.
	Handle() uintptr

	// Destroy stops frame pacing, joins the pacing goroutine, and
	// releases the native window. Exactly once per window.
	Destroy() error
}

// Surface is the OpenGL handoff: enough for an external loader to make the
// context current and present. picoview itself issues no draw calls.
type Surface interface {
	MakeCurrent(bool) error
	SwapBuffers() error
	Handle() uintptr
}
