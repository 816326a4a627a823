package canvas

import (
	"image"

	"github.com/chewxy/math32"
)

// Point is a location in canvas coordinates.
type Point struct {
	X, Y float32
}

// Pt creates a Point.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Rect is an axis-aligned rectangle in canvas coordinates.
// A Rect with MaxX <= MinX or MaxY <= MinY is empty.
type Rect struct {
	MinX, MinY float32
	MaxX, MaxY float32
}

// NewRect creates a rectangle from position and size.
func NewRect(x, y, width, height float32) Rect {
	return Rect{
		MinX: x,
		MinY: y,
		MaxX: x + width,
		MaxY: y + height,
	}
}

// RectFromLTRB creates a rectangle from edge coordinates.
func RectFromLTRB(left, top, right, bottom float32) Rect {
	return Rect{MinX: left, MinY: top, MaxX: right, MaxY: bottom}
}

// Width returns the rectangle width.
func (r Rect) Width() float32 { return r.MaxX - r.MinX }

// Height returns the rectangle height.
func (r Rect) Height() float32 { return r.MaxY - r.MinY }

// IsEmpty reports whether the rectangle encloses no area.
func (r Rect) IsEmpty() bool {
	return r.MaxX <= r.MinX || r.MaxY <= r.MinY
}

// Intersect returns the intersection of two rectangles.
// The result is empty if they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	return Rect{
		MinX: math32.Max(r.MinX, other.MinX),
		MinY: math32.Max(r.MinY, other.MinY),
		MaxX: math32.Min(r.MaxX, other.MaxX),
		MaxY: math32.Min(r.MaxY, other.MaxY),
	}
}

// Scale returns the rectangle with all edges multiplied by s.
func (r Rect) Scale(s float32) Rect {
	return Rect{
		MinX: r.MinX * s,
		MinY: r.MinY * s,
		MaxX: r.MaxX * s,
		MaxY: r.MaxY * s,
	}
}

// Outer returns the smallest integer rectangle containing r.
func (r Rect) Outer() image.Rectangle {
	return image.Rect(
		int(math32.Floor(r.MinX)),
		int(math32.Floor(r.MinY)),
		int(math32.Ceil(r.MaxX)),
		int(math32.Ceil(r.MaxY)),
	)
}
