package event

// Cursor names a standard pointer icon. Backends map each kind to the
// nearest native cursor; kinds without a native equivalent fall back to
// CursorDefault.
type Cursor uint8

const (
	CursorDefault Cursor = iota
	CursorHidden

	CursorHand
	CursorHandGrabbing
	CursorHelp
	CursorText
	CursorCrosshair
	CursorMove
	CursorWorking
	CursorNotAllowed
	CursorZoomIn
	CursorZoomOut
	CursorAllScroll

	CursorResizeN
	CursorResizeS
	CursorResizeE
	CursorResizeW
	CursorResizeNE
	CursorResizeNW
	CursorResizeSE
	CursorResizeSW
	CursorResizeEW
	CursorResizeNS
	CursorResizeNWSE
	CursorResizeNESW
	CursorResizeCol
	CursorResizeRow
)

func (c Cursor) String() string {
	names := [...]string{
		"default", "hidden", "hand", "hand-grabbing", "help", "text",
		"crosshair", "move", "working", "not-allowed", "zoom-in", "zoom-out",
		"all-scroll", "resize-n", "resize-s", "resize-e", "resize-w",
		"resize-ne", "resize-nw", "resize-se", "resize-sw", "resize-ew",
		"resize-ns", "resize-nwse", "resize-nesw", "resize-col", "resize-row",
	}
	if int(c) < len(names) {
		return names[c]
	}
	return "unknown"
}
