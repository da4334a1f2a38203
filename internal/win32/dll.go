//go:build windows

// Package win32 is the Windows backend. It calls user32/gdi32/dwmapi
// directly through lazy DLL bindings; no cgo. Frame pacing waits on the
// DWM compositor flush and falls back to the refresh-rate timer when
// composition is off or the flush fails (remote desktop sessions).
package win32

import "golang.org/x/sys/windows"

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	gdi32    = windows.NewLazySystemDLL("gdi32.dll")
	dwmapi   = windows.NewLazySystemDLL("dwmapi.dll")
	opengl32 = windows.NewLazySystemDLL("opengl32.dll")
	shell32  = windows.NewLazySystemDLL("shell32.dll")

	procRegisterClassExW    = user32.NewProc("RegisterClassExW")
	procCreateWindowExW     = user32.NewProc("CreateWindowExW")
	procDefWindowProcW      = user32.NewProc("DefWindowProcW")
	procDestroyWindow       = user32.NewProc("DestroyWindow")
	procPeekMessageW        = user32.NewProc("PeekMessageW")
	procTranslateMessage    = user32.NewProc("TranslateMessage")
	procDispatchMessageW    = user32.NewProc("DispatchMessageW")
	procSetWindowTextW      = user32.NewProc("SetWindowTextW")
	procSetWindowPos        = user32.NewProc("SetWindowPos")
	procShowWindow          = user32.NewProc("ShowWindow")
	procAdjustWindowRectEx  = user32.NewProc("AdjustWindowRectEx")
	procGetSystemMetrics    = user32.NewProc("GetSystemMetrics")
	procGetDpiForSystem     = user32.NewProc("GetDpiForSystem")
	procLoadCursorW         = user32.NewProc("LoadCursorW")
	procSetCursor           = user32.NewProc("SetCursor")
	procSetCursorPos        = user32.NewProc("SetCursorPos")
	procClientToScreen      = user32.NewProc("ClientToScreen")
	procScreenToClient      = user32.NewProc("ScreenToClient")
	procGetKeyState         = user32.NewProc("GetKeyState")
	procGetUpdateRect       = user32.NewProc("GetUpdateRect")
	procValidateRect        = user32.NewProc("ValidateRect")
	procMonitorFromWindow   = user32.NewProc("MonitorFromWindow")
	procGetMonitorInfoW     = user32.NewProc("GetMonitorInfoW")
	procEnumDisplaySettings = user32.NewProc("EnumDisplaySettingsW")
	procGetDC               = user32.NewProc("GetDC")
	procReleaseDC           = user32.NewProc("ReleaseDC")
	procTrackMouseEvent     = user32.NewProc("TrackMouseEvent")

	procChoosePixelFormat = gdi32.NewProc("ChoosePixelFormat")
	procSetPixelFormat    = gdi32.NewProc("SetPixelFormat")
	procSwapBuffers       = gdi32.NewProc("SwapBuffers")

	procDwmIsCompositionEnabled = dwmapi.NewProc("DwmIsCompositionEnabled")
	procDwmFlush                = dwmapi.NewProc("DwmFlush")

	procWglCreateContext = opengl32.NewProc("wglCreateContext")
	procWglMakeCurrent   = opengl32.NewProc("wglMakeCurrent")

	procShellExecuteW = shell32.NewProc("ShellExecuteW")
)

const (
	wsOverlapped  = 0x00000000
	wsCaption     = 0x00C00000
	wsSysmenu     = 0x00080000
	wsThickframe  = 0x00040000
	wsMinimizebox = 0x00020000
	wsMaximizebox = 0x00010000
	wsPopup       = 0x80000000
	wsChild       = 0x40000000
	wsVisible     = 0x10000000

	swHide = 0
	swShow = 5

	swpNomove     = 0x0002
	swpNosize     = 0x0001
	swpNozorder   = 0x0004
	swpNoactivate = 0x0010

	pmRemove = 0x0001

	smCxScreen = 0
	smCyScreen = 1

	monitorDefaultToPrimary = 1
	enumCurrentSettings     = 0xFFFFFFFF

	wmMove          = 0x0003
	wmSize          = 0x0005
	wmSetfocus      = 0x0007
	wmKillfocus     = 0x0008
	wmPaint         = 0x000F
	wmClose         = 0x0010
	wmSetcursor     = 0x0020
	wmKeydown       = 0x0100
	wmKeyup         = 0x0101
	wmChar          = 0x0102
	wmSyskeydown    = 0x0104
	wmSyskeyup      = 0x0105
	wmMousemove     = 0x0200
	wmLbuttondown   = 0x0201
	wmLbuttonup     = 0x0202
	wmRbuttondown   = 0x0204
	wmRbuttonup     = 0x0205
	wmMbuttondown   = 0x0207
	wmMbuttonup     = 0x0208
	wmMousewheel    = 0x020A
	wmXbuttondown   = 0x020B
	wmXbuttonup     = 0x020C
	wmMousehwheel   = 0x020E
	wmMouseleave    = 0x02A3
	wmDpichanged    = 0x02E0
	wmDisplaychange = 0x007E

	htClient = 1

	xbutton1 = 1
	xbutton2 = 2

	wheelDelta = 120

	tmeLeave = 0x00000002
)

type wndClassExW struct {
	Size       uint32
	Style      uint32
	WndProc    uintptr
	ClsExtra   int32
	WndExtra   int32
	Instance   windows.Handle
	Icon       windows.Handle
	Cursor     windows.Handle
	Background windows.Handle
	MenuName   *uint16
	ClassName  *uint16
	IconSm     windows.Handle
}

type msg struct {
	Hwnd    windows.HWND
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      point
}

type point struct {
	X int32
	Y int32
}

type trackMouseEventW struct {
	Size      uint32
	Flags     uint32
	HwndTrack windows.HWND
	HoverTime uint32
}

type rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

type monitorInfoExW struct {
	Size    uint32
	Monitor rect
	Work    rect
	Flags   uint32
	Device  [32]uint16
}

// devModeW is trimmed to the fields up to dmDisplayFrequency; the trailing
// members are padding as far as display queries are concerned.
type devModeW struct {
	DeviceName       [32]uint16
	SpecVersion      uint16
	DriverVersion    uint16
	Size             uint16
	DriverExtra      uint16
	Fields           uint32
	Position         point
	DisplayOrient    uint32
	DisplayFixedOut  uint32
	Color            int16
	Duplex           int16
	YResolution      int16
	TTOption         int16
	Collate          int16
	FormName         [32]uint16
	LogPixels        uint16
	BitsPerPel       uint32
	PelsWidth        uint32
	PelsHeight       uint32
	DisplayFlags     uint32
	DisplayFrequency uint32
	ICMMethod        uint32
	ICMIntent        uint32
	MediaType        uint32
	DitherType       uint32
	Reserved1        uint32
	Reserved2        uint32
	PanningWidth     uint32
	PanningHeight    uint32
}

func loword(v uintptr) uint16 { return uint16(v) }
func hiword(v uintptr) uint16 { return uint16(v >> 16) }

func signedX(lparam uintptr) int32 { return int32(int16(loword(lparam))) }
func signedY(lparam uintptr) int32 { return int32(int16(hiword(lparam))) }
