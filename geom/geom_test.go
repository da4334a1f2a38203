package geom

import (
	"math"
	"testing"
)

func TestRectMax(t *testing.T) {
	r := Rect{Min: Point{X: 10, Y: 20}, Size: Size{Width: 100, Height: 50}}
	max := r.Max()
	if max.X != 110 || max.Y != 70 {
		t.Errorf("Max() = %+v, want (110, 70)", max)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{Min: Point{X: 0, Y: 0}, Size: Size{Width: 10, Height: 10}}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"inside", Point{X: 5, Y: 5}, true},
		{"top-left corner", Point{X: 0, Y: 0}, true},
		{"right edge exclusive", Point{X: 10, Y: 5}, false},
		{"bottom edge exclusive", Point{X: 5, Y: 10}, false},
		{"outside negative", Point{X: -1, Y: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%+v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRectEmpty(t *testing.T) {
	if !(Rect{}).Empty() {
		t.Error("zero rect should be empty")
	}
	if !(Rect{Size: Size{Width: 10}}).Empty() {
		t.Error("zero-height rect should be empty")
	}
	if (Rect{Size: Size{Width: 1, Height: 1}}).Empty() {
		t.Error("1x1 rect should not be empty")
	}
}

func TestRectUnion(t *testing.T) {
	a := Rect{Min: Point{X: 0, Y: 0}, Size: Size{Width: 10, Height: 10}}
	b := Rect{Min: Point{X: 20, Y: 5}, Size: Size{Width: 10, Height: 10}}

	u := a.Union(b)
	want := Rect{Min: Point{X: 0, Y: 0}, Size: Size{Width: 30, Height: 15}}
	if u != want {
		t.Errorf("Union = %+v, want %+v", u, want)
	}

	// Union with an empty rect is the identity, not a stretch to origin.
	if got := a.Union(Rect{}); got != a {
		t.Errorf("Union with empty = %+v, want %+v", got, a)
	}
	if got := (Rect{}).Union(b); got != b {
		t.Errorf("empty Union = %+v, want %+v", got, b)
	}
}

func TestScaleFactor(t *testing.T) {
	t.Cleanup(func() { SetScale(1.0) })

	if got := ScaleFactor(); got != 1.0 {
		t.Fatalf("default scale = %v, want 1.0", got)
	}

	if err := SetScale(1.5); err != nil {
		t.Fatalf("SetScale(1.5) failed: %v", err)
	}
	if got := ScaleFactor(); got != 1.5 {
		t.Errorf("scale after SetScale = %v, want 1.5", got)
	}
}

func TestSetScaleRejectsInvalid(t *testing.T) {
	t.Cleanup(func() { SetScale(1.0) })

	for _, s := range []float32{0, -1, float32(math.NaN()), float32(math.Inf(1))} {
		if err := SetScale(s); err == nil {
			t.Errorf("SetScale(%v) should fail", s)
		}
	}
	if got := ScaleFactor(); got != 1.0 {
		t.Errorf("rejected SetScale changed the factor to %v", got)
	}
}
