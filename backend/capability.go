package backend

import "runtime"

// Feature names an optional capability whose availability differs between
// platforms.
type Feature uint8

const (
	// FeatureClipboard is plain UTF-8 text clipboard access.
	FeatureClipboard Feature = iota
	// FeatureCursorWarp moves the pointer programmatically.
	FeatureCursorWarp
	// FeatureKeyboardGrab routes all key input to the window.
	FeatureKeyboardGrab
	// FeatureDecorationToggle changes decorations after creation.
	FeatureDecorationToggle
	// FeatureCompositorPacing paces frames on a compositor/display-link
	// signal rather than a software timer.
	FeatureCompositorPacing
	// FeatureDamageEvents delivers WindowDamage dirty rectangles.
	FeatureDamageEvents
	// FeatureEmbedding hosts the window inside a foreign parent.
	FeatureEmbedding

	numFeatures
)

func (f Feature) String() string {
	names := [...]string{
		"clipboard", "cursor-warp", "keyboard-grab", "decoration-toggle",
		"compositor-pacing", "damage-events", "embedding",
	}
	if int(f) < len(names) {
		return names[f]
	}
	return "unknown"
}

// Support is one cell of the capability matrix.
type Support uint8

const (
	Unsupported Support = iota
	Supported
	// Partial means supported with a caveat; see the cell notes in the
	// package documentation.
	Partial
)

func (s Support) String() string {
	switch s {
	case Supported:
		return "supported"
	case Partial:
		return "partial"
	}
	return "unsupported"
}

// The matrix is static per platform; it documents intent and is also what
// backends consult before attempting an operation, so an unsupported cell
// always produces ErrUnsupported, never a different failure.
//
// Caveats behind the Partial cells:
//   - x11/cursor-warp: ignored by the compositor under XWayland.
//   - darwin/damage-events: dirty rectangles arrive only when AppKit asks
//     the view to draw; compositor-side damage never reaches the pump.
var matrix = map[string][numFeatures]Support{
	"linux": {
		FeatureClipboard:        Unsupported,
		FeatureCursorWarp:       Partial,
		FeatureKeyboardGrab:     Supported,
		FeatureDecorationToggle: Unsupported,
		FeatureCompositorPacing: Unsupported,
		FeatureDamageEvents:     Supported,
		FeatureEmbedding:        Supported,
	},
	"windows": {
		FeatureClipboard:        Supported,
		FeatureCursorWarp:       Supported,
		FeatureKeyboardGrab:     Unsupported,
		FeatureDecorationToggle: Unsupported,
		FeatureCompositorPacing: Supported,
		FeatureDamageEvents:     Supported,
		FeatureEmbedding:        Supported,
	},
	"darwin": {
		FeatureClipboard:        Supported,
		FeatureCursorWarp:       Supported,
		FeatureKeyboardGrab:     Unsupported,
		FeatureDecorationToggle: Unsupported,
		FeatureCompositorPacing: Supported,
		FeatureDamageEvents:     Partial,
		FeatureEmbedding:        Supported,
	},
}

// Platforms lists the platforms the matrix covers.
func Platforms() []string {
	return []string{"linux", "windows", "darwin"}
}

// Features lists every feature in the matrix, in declaration order.
func Features() []Feature {
	fs := make([]Feature, numFeatures)
	for i := range fs {
		fs[i] = Feature(i)
	}
	return fs
}

// Lookup returns the matrix cell for an explicit platform (a GOOS value).
// Unknown platforms report everything unsupported.
func Lookup(goos string, f Feature) Support {
	cells, ok := matrix[goos]
	if !ok || int(f) >= len(cells) {
		return Unsupported
	}
	return cells[f]
}

// Capabilities returns the matrix cell for the running platform.
func Capabilities(f Feature) Support {
	return Lookup(runtime.GOOS, f)
}
