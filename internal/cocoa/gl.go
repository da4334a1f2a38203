//go:build darwin

package cocoa

/*
#include "os_cocoa.h"
*/
import "C"

import (
	"fmt"

	"github.com/1broseidon/picoview/backend"
)

// Surface is an NSOpenGLContext attached to the window's view.
type Surface struct {
	w   *Window
	ctx uintptr
}

var _ backend.Surface = (*Surface)(nil)

// GLSurface creates an NSOpenGLContext matching the request. macOS offers
// exactly two profiles: 3.2 core and the legacy 2.1 compatibility profile;
// the requested version selects between them. No matching pixel format
// wraps ErrGLUnavailable.
func (w *Window) GLSurface(cfg backend.GLConfig) (backend.Surface, error) {
	if w.destroyed {
		return nil, backend.ErrHandleClosed
	}

	ctx := uintptr(C.pv_gl_create(C.uintptr_t(w.id),
		C.int(cfg.VersionMajor), C.int(cfg.VersionMinor), C.bool(cfg.CoreProfile),
		C.bool(cfg.DoubleBuffer),
		C.int(cfg.RedBits+cfg.GreenBits+cfg.BlueBits), C.int(cfg.AlphaBits),
		C.int(cfg.DepthBits), C.int(cfg.StencilBits)))
	if ctx == 0 {
		return nil, fmt.Errorf("%w: no pixel format for %d/%d/%d/%d rgba, %d depth, %d stencil",
			backend.ErrGLUnavailable, cfg.RedBits, cfg.GreenBits, cfg.BlueBits, cfg.AlphaBits,
			cfg.DepthBits, cfg.StencilBits)
	}
	return &Surface{w: w, ctx: ctx}, nil
}

func (s *Surface) MakeCurrent(current bool) error {
	if s.w.destroyed {
		return backend.ErrHandleClosed
	}
	C.pv_gl_make_current(C.uintptr_t(s.ctx), C.bool(current))
	return nil
}

func (s *Surface) SwapBuffers() error {
	if s.w.destroyed {
		return backend.ErrHandleClosed
	}
	C.pv_gl_swap_buffers(C.uintptr_t(s.ctx))
	return nil
}

// Handle returns the NSOpenGLContext pointer.
func (s *Surface) Handle() uintptr {
	return s.ctx
}
