//go:build windows

package win32

import (
	"fmt"
	"unsafe"

	"github.com/1broseidon/picoview/backend"
)

const (
	pfdDoublebuffer   = 0x00000001
	pfdDrawToWindow   = 0x00000004
	pfdSupportOpengl  = 0x00000020
	pfdTypeRgba       = 0
	pfdMainPlane      = 0
	pfdGenericFormat  = 0x00000040
	pfdGenericAcceled = 0x00001000
)

type pixelFormatDescriptor struct {
	Size            uint16
	Version         uint16
	Flags           uint32
	PixelType       byte
	ColorBits       byte
	RedBits         byte
	RedShift        byte
	GreenBits       byte
	GreenShift      byte
	BlueBits        byte
	BlueShift       byte
	AlphaBits       byte
	AlphaShift      byte
	AccumBits       byte
	AccumRedBits    byte
	AccumGreenBits  byte
	AccumBlueBits   byte
	AccumAlphaBits  byte
	DepthBits       byte
	StencilBits     byte
	AuxBuffers      byte
	LayerType       byte
	Reserved        byte
	LayerMask       uint32
	VisibleMask     uint32
	DamageMask      uint32
}

// Surface is a WGL context over the window's own device context (the
// class uses CS_OWNDC, so the DC is stable for the window's lifetime).
type Surface struct {
	w   *Window
	hdc uintptr
	ctx uintptr
}

var _ backend.Surface = (*Surface)(nil)

// GLSurface picks a pixel format matching the request and creates a WGL
// context. No acceptable format wraps ErrGLUnavailable.
func (w *Window) GLSurface(cfg backend.GLConfig) (backend.Surface, error) {
	if w.destroyed {
		return nil, backend.ErrHandleClosed
	}

	hdc, _, _ := procGetDC.Call(uintptr(w.hwnd))
	if hdc == 0 {
		return nil, fmt.Errorf("%w: GetDC failed", backend.ErrGLUnavailable)
	}

	pfd := pixelFormatDescriptor{
		Size:        uint16(unsafe.Sizeof(pixelFormatDescriptor{})),
		Version:     1,
		Flags:       pfdDrawToWindow | pfdSupportOpengl,
		PixelType:   pfdTypeRgba,
		ColorBits:   byte(cfg.RedBits + cfg.GreenBits + cfg.BlueBits),
		AlphaBits:   byte(cfg.AlphaBits),
		DepthBits:   byte(cfg.DepthBits),
		StencilBits: byte(cfg.StencilBits),
		LayerType:   pfdMainPlane,
	}
	if cfg.DoubleBuffer {
		pfd.Flags |= pfdDoublebuffer
	}

	format, _, _ := procChoosePixelFormat.Call(hdc, uintptr(unsafe.Pointer(&pfd)))
	if format == 0 {
		w.releaseDC(hdc)
		return nil, fmt.Errorf("%w: no pixel format for %d/%d/%d/%d rgba, %d depth, %d stencil",
			backend.ErrGLUnavailable, cfg.RedBits, cfg.GreenBits, cfg.BlueBits, cfg.AlphaBits,
			cfg.DepthBits, cfg.StencilBits)
	}
	if ok, _, callErr := procSetPixelFormat.Call(hdc, format, uintptr(unsafe.Pointer(&pfd))); ok == 0 {
		w.releaseDC(hdc)
		return nil, fmt.Errorf("%w: SetPixelFormat failed: %v", backend.ErrGLUnavailable, callErr)
	}

	ctx, _, callErr := procWglCreateContext.Call(hdc)
	if ctx == 0 {
		w.releaseDC(hdc)
		return nil, fmt.Errorf("%w: wglCreateContext failed: %v", backend.ErrGLUnavailable, callErr)
	}

	return &Surface{w: w, hdc: hdc, ctx: ctx}, nil
}

func (w *Window) releaseDC(hdc uintptr) {
	procReleaseDC.Call(uintptr(w.hwnd), hdc)
}

func (s *Surface) MakeCurrent(current bool) error {
	if s.w.destroyed {
		return backend.ErrHandleClosed
	}
	var hdc, ctx uintptr
	if current {
		hdc, ctx = s.hdc, s.ctx
	}
	if ok, _, err := procWglMakeCurrent.Call(hdc, ctx); ok == 0 {
		return fmt.Errorf("wglMakeCurrent failed: %v", err)
	}
	return nil
}

func (s *Surface) SwapBuffers() error {
	if s.w.destroyed {
		return backend.ErrHandleClosed
	}
	if ok, _, err := procSwapBuffers.Call(s.hdc); ok == 0 {
		return fmt.Errorf("SwapBuffers failed: %v", err)
	}
	return nil
}

// Handle returns the WGL context handle.
func (s *Surface) Handle() uintptr {
	return s.ctx
}
