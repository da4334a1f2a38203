//go:build linux

package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/glx"

	"github.com/1broseidon/picoview/backend"
)

// Surface is a GLX context bound to one window, created over the wire
// protocol. It is the rendering handoff only: an external loader makes it
// current and issues the draw calls.
type Surface struct {
	w   *Window
	ctx glx.Context

	// contextTag identifies the current binding on the server; SwapBuffers
	// needs the tag from the last MakeCurrent.
	contextTag glx.ContextTag
	current    bool
}

var _ backend.Surface = (*Surface)(nil)

// GLSurface creates a GLX context for the window using the screen's root
// visual. A server without GLX, or a root visual that cannot back the
// requested format, reports ErrGLUnavailable.
func (w *Window) GLSurface(cfg backend.GLConfig) (backend.Surface, error) {
	if w.destroyed {
		return nil, backend.ErrHandleClosed
	}
	conn := w.b.xu.Conn()

	if err := glx.Init(conn); err != nil {
		return nil, fmt.Errorf("%w: glx extension missing: %v", backend.ErrGLUnavailable, err)
	}

	if _, err := glx.QueryVersion(conn, 1, 4).Reply(); err != nil {
		return nil, fmt.Errorf("%w: glx version query failed: %v", backend.ErrGLUnavailable, err)
	}

	ctxID, err := conn.NewId()
	if err != nil {
		return nil, fmt.Errorf("%w: cannot allocate context id: %v", backend.ErrGLUnavailable, err)
	}

	screen := w.b.xu.Screen()
	err = glx.CreateContextChecked(
		conn, glx.Context(ctxID), screen.RootVisual,
		0, // screen number of the default root
		0, // no share list
		false,
	).Check()
	if err != nil {
		return nil, fmt.Errorf("%w: root visual rejected (requested %d/%d/%d/%d rgba): %v",
			backend.ErrGLUnavailable, cfg.RedBits, cfg.GreenBits, cfg.BlueBits, cfg.AlphaBits, err)
	}

	return &Surface{w: w, ctx: glx.Context(ctxID)}, nil
}

// MakeCurrent binds or unbinds the context for the calling thread.
func (s *Surface) MakeCurrent(current bool) error {
	if s.w.destroyed {
		return backend.ErrHandleClosed
	}
	conn := s.w.b.xu.Conn()

	if !current {
		if _, err := glx.MakeCurrent(conn, glx.Drawable(0), glx.Context(0), s.contextTag).Reply(); err != nil {
			return fmt.Errorf("failed to release glx context: %w", err)
		}
		s.current = false
		s.contextTag = 0
		return nil
	}

	reply, err := glx.MakeCurrent(conn, glx.Drawable(s.w.id), s.ctx, s.contextTag).Reply()
	if err != nil {
		return fmt.Errorf("failed to make glx context current: %w", err)
	}
	s.contextTag = reply.ContextTag
	s.current = true
	return nil
}

// SwapBuffers presents the back buffer.
func (s *Surface) SwapBuffers() error {
	if s.w.destroyed {
		return backend.ErrHandleClosed
	}
	if !s.current {
		return fmt.Errorf("surface is not current")
	}
	glx.SwapBuffers(s.w.b.xu.Conn(), s.contextTag, glx.Drawable(s.w.id))
	return nil
}

// Handle returns the GLX context id.
func (s *Surface) Handle() uintptr {
	return uintptr(s.ctx)
}
