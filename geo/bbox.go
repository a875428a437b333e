package geo

import "math"

// BoundingBox is an axis-aligned rectangle enclosing a set of points.
type BoundingBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the bounding box's extent along x.
func (b BoundingBox) Width() float64 { return b.MaxX - b.MinX }

// Height returns the bounding box's extent along y.
func (b BoundingBox) Height() float64 { return b.MaxY - b.MinY }

// ComputeBoundingBox returns the axis-aligned bounding box of points. It
// panics-free returns a zero-value box for an empty input.
func ComputeBoundingBox(points []Point) BoundingBox {
	if len(points) == 0 {
		return BoundingBox{}
	}
	b := BoundingBox{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	for _, p := range points {
		b.MinX = math.Min(b.MinX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MaxY = math.Max(b.MaxY, p.Y)
	}
	return b
}
