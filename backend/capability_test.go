package backend

import (
	"runtime"
	"testing"
)

func TestMatrixCoversEveryCell(t *testing.T) {
	if len(Features()) != int(numFeatures) {
		t.Fatalf("Features() returned %d features, want %d", len(Features()), numFeatures)
	}
	for _, p := range Platforms() {
		cells, ok := matrix[p]
		if !ok {
			t.Errorf("platform %s missing from matrix", p)
			continue
		}
		if len(cells) != int(numFeatures) {
			t.Errorf("platform %s has %d cells, want %d", p, len(cells), numFeatures)
		}
	}
}

func TestLookupUnknownPlatform(t *testing.T) {
	for _, f := range Features() {
		if got := Lookup("plan9", f); got != Unsupported {
			t.Errorf("unknown platform reports %s as %s, want unsupported", f, got)
		}
	}
}

func TestKnownCells(t *testing.T) {
	tests := []struct {
		goos    string
		feature Feature
		want    Support
	}{
		{"linux", FeatureClipboard, Unsupported},
		{"linux", FeatureKeyboardGrab, Supported},
		{"linux", FeatureCursorWarp, Partial},
		{"linux", FeatureCompositorPacing, Unsupported},
		{"windows", FeatureClipboard, Supported},
		{"windows", FeatureKeyboardGrab, Unsupported},
		{"windows", FeatureCompositorPacing, Supported},
		{"darwin", FeatureClipboard, Supported},
		{"darwin", FeatureDamageEvents, Partial},
		{"darwin", FeatureKeyboardGrab, Unsupported},
	}
	for _, tt := range tests {
		if got := Lookup(tt.goos, tt.feature); got != tt.want {
			t.Errorf("Lookup(%s, %s) = %s, want %s", tt.goos, tt.feature, got, tt.want)
		}
	}

	// Decoration toggling is creation-time-only everywhere.
	for _, p := range Platforms() {
		if got := Lookup(p, FeatureDecorationToggle); got != Unsupported {
			t.Errorf("Lookup(%s, decoration-toggle) = %s, want unsupported", p, got)
		}
	}

	// Embedding is the point of the library; every platform carries it.
	for _, p := range Platforms() {
		if got := Lookup(p, FeatureEmbedding); got != Supported {
			t.Errorf("Lookup(%s, embedding) = %s, want supported", p, got)
		}
	}
}

func TestCapabilitiesUsesRunningPlatform(t *testing.T) {
	for _, f := range Features() {
		if got, want := Capabilities(f), Lookup(runtime.GOOS, f); got != want {
			t.Errorf("Capabilities(%s) = %s, want %s", f, got, want)
		}
	}
}

func TestStringers(t *testing.T) {
	if FeatureClipboard.String() != "clipboard" {
		t.Errorf("FeatureClipboard.String() = %q", FeatureClipboard.String())
	}
	if Feature(200).String() != "unknown" {
		t.Errorf("out-of-range feature String() = %q", Feature(200).String())
	}
	if Supported.String() != "supported" || Partial.String() != "partial" || Unsupported.String() != "unsupported" {
		t.Error("Support stringer mismatch")
	}
}
