//go:build windows

package win32

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/1broseidon/picoview/backend"
	"github.com/1broseidon/picoview/geom"
	"github.com/1broseidon/picoview/internal/config"
	"github.com/1broseidon/picoview/internal/logging"
)

const className = "picoview-window"

// Backend holds the registered window class and the hwnd registry. One per
// process; all windows share it on the owning thread.
type Backend struct {
	cfg *config.Config
	log *logging.Logger

	instance  windows.Handle
	classAtom uint16
	wndProcCB uintptr

	windows map[windows.HWND]*Window

	scale  float32
	closed bool
}

var _ backend.Backend = (*Backend)(nil)

// Connect registers the window class. There is no display connection to
// open on Windows, so failure here means the process environment itself is
// broken.
func Connect(cfg *config.Config, log *logging.Logger) (*Backend, error) {
	instance, err := windows.GetModuleHandle(nil)
	if err != nil {
		return nil, fmt.Errorf("%w: GetModuleHandle failed: %v", backend.ErrPlatformInit, err)
	}

	b := &Backend{
		cfg:      cfg,
		log:      log,
		instance: instance,
		windows:  make(map[windows.HWND]*Window),
	}
	b.wndProcCB = windows.NewCallback(b.wndProc)

	clsName, err := windows.UTF16PtrFromString(className)
	if err != nil {
		return nil, fmt.Errorf("%w: bad class name: %v", backend.ErrPlatformInit, err)
	}
	wc := wndClassExW{
		Size:      uint32(unsafe.Sizeof(wndClassExW{})),
		Style:     0x0020, // CS_OWNDC, one device context per window for GL
		WndProc:   b.wndProcCB,
		Instance:  b.instance,
		ClassName: clsName,
	}
	atom, _, callErr := procRegisterClassExW.Call(uintptr(unsafe.Pointer(&wc)))
	if atom == 0 {
		return nil, fmt.Errorf("%w: RegisterClassEx failed: %v", backend.ErrPlatformInit, callErr)
	}
	b.classAtom = uint16(atom)

	b.scale = b.detectScale()
	geom.SetScale(b.scale)
	return b, nil
}

// Scale reports the system scale factor (96 dpi = 1.0); per-window DPI
// updates arrive later through WM_DPICHANGED.
func (b *Backend) Scale() float32 {
	return b.scale
}

func (b *Backend) detectScale() float32 {
	if b.cfg != nil && b.cfg.Scale.Override > 0 {
		return b.cfg.Scale.Override
	}
	dpi, _, _ := procGetDpiForSystem.Call()
	if dpi == 0 {
		return 1.0
	}
	return float32(dpi) / 96.0
}

// RefreshRate reports the primary display's refresh rate via
// EnumDisplaySettings, or 0 when the driver will not say.
func (b *Backend) RefreshRate() float64 {
	if b.cfg != nil && b.cfg.Pacing.RefreshHz > 0 {
		return b.cfg.Pacing.RefreshHz
	}
	var dm devModeW
	dm.Size = uint16(unsafe.Sizeof(dm))
	ok, _, _ := procEnumDisplaySettings.Call(0, enumCurrentSettings, uintptr(unsafe.Pointer(&dm)))
	if ok == 0 || dm.DisplayFrequency <= 1 {
		return 0
	}
	return float64(dm.DisplayFrequency)
}

// refreshRateFor reports the refresh rate of the monitor currently hosting
// hwnd, so pacing follows the window across displays.
func (b *Backend) refreshRateFor(hwnd windows.HWND) float64 {
	if b.cfg != nil && b.cfg.Pacing.RefreshHz > 0 {
		return b.cfg.Pacing.RefreshHz
	}
	monitor, _, _ := procMonitorFromWindow.Call(uintptr(hwnd), monitorDefaultToPrimary)
	if monitor == 0 {
		return b.RefreshRate()
	}

	var info monitorInfoExW
	info.Size = uint32(unsafe.Sizeof(info))
	if ok, _, _ := procGetMonitorInfoW.Call(monitor, uintptr(unsafe.Pointer(&info))); ok == 0 {
		return b.RefreshRate()
	}

	var dm devModeW
	dm.Size = uint16(unsafe.Sizeof(dm))
	ok, _, _ := procEnumDisplaySettings.Call(
		uintptr(unsafe.Pointer(&info.Device[0])),
		enumCurrentSettings,
		uintptr(unsafe.Pointer(&dm)),
	)
	if ok == 0 || dm.DisplayFrequency <= 1 {
		return 0
	}
	return float64(dm.DisplayFrequency)
}

// waitVBlank blocks on the DWM compositor flush. Returns false when
// composition is disabled or the flush fails, which sends pacing to the
// timer for that cycle.
func waitVBlank() bool {
	var enabled int32
	hr, _, _ := procDwmIsCompositionEnabled.Call(uintptr(unsafe.Pointer(&enabled)))
	if hr != 0 || enabled == 0 {
		return false
	}
	hr, _, _ = procDwmFlush.Call()
	return hr == 0
}

// Close destroys remaining windows. The class stays registered for the
// process lifetime.
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
