//go:build darwin

// Package cocoa is the macOS backend. The Objective-C shim in os_cocoa.m
// owns the AppKit objects; this side drives it through the pv_* calls and
// receives input back through the exported pv_on_* callbacks. Frame ticks
// come from a per-window CVDisplayLink on its own thread.
package cocoa

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa -framework QuartzCore -framework CoreVideo -framework OpenGL
#include <stdlib.h>
#include "os_cocoa.h"
*/
import "C"

import (
	"fmt"
	"sync"

	"github.com/1broseidon/picoview/backend"
	"github.com/1broseidon/picoview/geom"
	"github.com/1broseidon/picoview/internal/config"
	"github.com/1broseidon/picoview/internal/logging"
)

// Backend wraps the shared NSApplication. All windows belong to the thread
// that connected it.
type Backend struct {
	cfg *config.Config
	log *logging.Logger

	windows map[uintptr]*Window
	scale   float32
	closed  bool
}

var _ backend.Backend = (*Backend)(nil)

// registry resolves shim window ids back to Go windows. The display link
// callback reads it from its own thread, so access is locked.
var (
	registryMu sync.RWMutex
	registry   = make(map[uintptr]*Window)
)

func lookupWindow(id uintptr) *Window {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return registry[id]
}

// Connect initializes the shared NSApplication. Failure wraps
// ErrPlatformInit.
func Connect(cfg *config.Config, log *logging.Logger) (*Backend, error) {
	if !bool(C.pv_app_init()) {
		return nil, fmt.Errorf("%w: NSApplication initialization failed", backend.ErrPlatformInit)
	}

	b := &Backend{
		cfg:     cfg,
		log:     log,
		windows: make(map[uintptr]*Window),
	}
	b.scale = b.detectScale()
	geom.SetScale(b.scale)
	return b, nil
}

// Scale reports the detected (or overridden) display scale factor.
func (b *Backend) Scale() float32 {
	return b.scale
}

// RefreshRate reports the main display's refresh rate, or 0 when the
// display mode does not carry one (some external panels report 0).
func (b *Backend) RefreshRate() float64 {
	if b.cfg != nil && b.cfg.Pacing.RefreshHz > 0 {
		return b.cfg.Pacing.RefreshHz
	}
	return float64(C.pv_app_refresh_rate())
}

// Close destroys any live windows. The NSApplication itself is process
// global and stays up.
func (b *Backend) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	for _, w := range b.windows {
		w.Destroy()
	}
	return nil
}

// detectScale reads the main screen's backing scale factor. The config
// override wins.
func (b *Backend) detectScale() float32 {
	if b.cfg != nil && b.cfg.Scale.Override > 0 {
		return b.cfg.Scale.Override
	}
	return float32(C.pv_app_scale())
}
