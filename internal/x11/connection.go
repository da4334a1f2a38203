//go:build linux

// Package x11 is the Linux backend. It speaks the X protocol directly
// through BurntSushi/xgb and xgbutil; no Xlib, no cgo. Frame pacing on this
// backend is always the refresh-rate timer: the display server's present
// notifications are not exposed by the protocol bindings, and the timer is
// the sanctioned fallback for exactly that case.
package x11

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xprop"

	"github.com/1broseidon/picoview/backend"
	"github.com/1broseidon/picoview/geom"
	"github.com/1broseidon/picoview/internal/config"
	"github.com/1broseidon/picoview/internal/logging"
)

// Backend is the process-wide X11 connection. All windows share it; the
// owning thread pumps it.
type Backend struct {
	xu   *xgbutil.XUtil
	root xproto.Window

	cfg *config.Config
	log *logging.Logger

	windows map[xproto.Window]*Window

	wmProtocols    xproto.Atom
	wmDeleteWindow xproto.Atom

	randrOK bool
	scale   float32
	closed  bool
}

var _ backend.Backend = (*Backend)(nil)

// Connect establishes the X11 connection and initializes the extensions
// the backend relies on. Connection failure wraps ErrPlatformInit.
func Connect(cfg *config.Config, log *logging.Logger) (*Backend, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("%w: cannot open display: %v", backend.ErrPlatformInit, err)
	}

	// Keysym tables for key translation.
	keybind.Initialize(xu)

	b := &Backend{
		xu:      xu,
		root:    xu.RootWin(),
		cfg:     cfg,
		log:     log,
		windows: make(map[xproto.Window]*Window),
	}

	if b.wmProtocols, err = b.internAtom("WM_PROTOCOLS"); err != nil {
		xu.Conn().Close()
		return nil, fmt.Errorf("%w: %v", backend.ErrPlatformInit, err)
	}
	if b.wmDeleteWindow, err = b.internAtom("WM_DELETE_WINDOW"); err != nil {
		xu.Conn().Close()
		return nil, fmt.Errorf("%w: %v", backend.ErrPlatformInit, err)
	}

	if err := randr.Init(xu.Conn()); err != nil {
		log.Warnf("randr unavailable, refresh rate defaults to 60: %v", err)
	} else {
		b.randrOK = true
		// Display-change notifications keep pacing and scale current; a
		// failed subscription degrades to the connect-time values.
		err := randr.SelectInputChecked(xu.Conn(), b.root, randr.NotifyMaskScreenChange).Check()
		if err != nil {
			log.Warnf("randr screen-change subscription failed: %v", err)
		}
	}

	b.scale = b.detectScale()
	geom.SetScale(b.scale)

	return b, nil
}

// Scale reports the detected (or overridden) display scale factor.
func (b *Backend) Scale() float32 {
	return b.scale
}

// RefreshRate reports the refresh rate of the first active CRTC via RandR,
// or 0 when RandR cannot tell.
func (b *Backend) RefreshRate() float64 {
	if b.cfg != nil && b.cfg.Pacing.RefreshHz > 0 {
		return b.cfg.Pacing.RefreshHz
	}
	if !b.randrOK {
		return 0
	}

	resources, err := randr.GetScreenResources(b.xu.Conn(), b.root).Reply()
	if err != nil {
		return 0
	}

	modes := make(map[randr.Mode]randr.ModeInfo, len(resources.Modes))
	for _, m := range resources.Modes {
		modes[randr.Mode(m.Id)] = m
	}

	for _, crtc := range resources.Crtcs {
		info, err := randr.GetCrtcInfo(b.xu.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil || info.Width == 0 || info.Height == 0 {
			continue
		}
		mode, ok := modes[info.Mode]
		if !ok || mode.Htotal == 0 || mode.Vtotal == 0 {
			continue
		}
		return float64(mode.DotClock) / (float64(mode.Htotal) * float64(mode.Vtotal))
	}
	return 0
}

// Close tears down the display connection. Live windows are destroyed
// first so their pacers stop before the socket goes away.
func (b *Backend) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	for _, w := range b.windows {
		w.Destroy()
	}
	b.xu.Conn().Close()
	return nil
}

// primaryMonitor returns the bounds of the first active CRTC, used for the
// centered default placement. Falls back to the root screen geometry.
func (b *Backend) primaryMonitor() geom.Rect {
	screen := b.xu.Screen()
	fallback := geom.Rect{
		Size: geom.Size{Width: uint32(screen.WidthInPixels), Height: uint32(screen.HeightInPixels)},
	}
	if !b.randrOK {
		return fallback
	}

	resources, err := randr.GetScreenResources(b.xu.Conn(), b.root).Reply()
	if err != nil {
		return fallback
	}
	for _, crtc := range resources.Crtcs {
		info, err := randr.GetCrtcInfo(b.xu.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil || info.Width == 0 || info.Height == 0 {
			continue
		}
		return geom.Rect{
			Min:  geom.Point{X: float32(info.X), Y: float32(info.Y)},
			Size: geom.Size{Width: uint32(info.Width), Height: uint32(info.Height)},
		}
	}
	return fallback
}

// detectScale reads Xft.dpi from the root RESOURCE_MANAGER property.
// 96 dpi maps to 1.0; the config override wins.
func (b *Backend) detectScale() float32 {
	if b.cfg != nil && b.cfg.Scale.Override > 0 {
		return b.cfg.Scale.Override
	}

	reply, err := xprop.GetProperty(b.xu, b.root, "RESOURCE_MANAGER")
	if err != nil || reply == nil {
		return 1.0
	}
	for _, line := range strings.Split(string(reply.Value), "\n") {
		name, value, ok := strings.Cut(line, ":")
		if !ok || strings.TrimSpace(name) != "Xft.dpi" {
			continue
		}
		dpi, err := strconv.ParseFloat(strings.TrimSpace(value), 32)
		if err != nil || dpi <= 0 {
			return 1.0
		}
		return float32(dpi) / 96.0
	}
	return 1.0
}

func (b *Backend) internAtom(name string) (xproto.Atom, error) {
	reply, err := xproto.InternAtom(b.xu.Conn(), false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, fmt.Errorf("failed to intern atom %s: %w", name, err)
	}
	return reply.Atom, nil
}
