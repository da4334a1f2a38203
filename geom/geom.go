// Package geom holds the physical-pixel geometry types shared by every
// backend. All coordinates in picoview are physical device pixels with a
// top-left origin; callers that want logical units divide by the process
// scale factor themselves.
package geom

import (
	"fmt"
	"math"
	"sync/atomic"
)

// Point is a position in physical pixels.
type Point struct {
	X float32
	Y float32
}

// Size is an extent in physical pixels.
type Size struct {
	Width  uint32
	Height uint32
}

// Rect is a rectangular region in physical pixels.
type Rect struct {
	Min  Point
	Size Size
}

// Max returns the exclusive bottom-right corner of the rectangle.
func (r Rect) Max() Point {
	return Point{
		X: r.Min.X + float32(r.Size.Width),
		Y: r.Min.Y + float32(r.Size.Height),
	}
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive, following the X11 convention.
func (r Rect) Contains(p Point) bool {
	max := r.Max()
	return p.X >= r.Min.X && p.X < max.X && p.Y >= r.Min.Y && p.Y < max.Y
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Size.Width == 0 || r.Size.Height == 0
}

// Union returns the smallest rectangle covering both r and o.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	minX := min(r.Min.X, o.Min.X)
	minY := min(r.Min.Y, o.Min.Y)
	maxX := max(r.Max().X, o.Max().X)
	maxY := max(r.Max().Y, o.Max().Y)
	return Rect{
		Min:  Point{X: minX, Y: minY},
		Size: Size{Width: uint32(maxX - minX), Height: uint32(maxY - minY)},
	}
}

// scaleBits holds the process-wide scale factor as float32 bits. 96 dpi
// equals a factor of 1.0.
var scaleBits atomic.Uint32

func init() {
	scaleBits.Store(math.Float32bits(1.0))
}

// ScaleFactor returns the process-wide display scale factor. It is always
// positive.
func ScaleFactor() float32 {
	return math.Float32frombits(scaleBits.Load())
}

// SetScale updates the process-wide scale factor. Only backends call this,
// immediately before emitting the corresponding WindowScale event, so a
// caller never observes a silent change mid-batch.
func SetScale(s float32) error {
	if s <= 0 || math.IsNaN(float64(s)) || math.IsInf(float64(s), 0) {
		return fmt.Errorf("scale factor must be positive, got %v", s)
	}
	scaleBits.Store(math.Float32bits(s))
	return nil
}
