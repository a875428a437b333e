package polygon

import "github.com/CourseplayPathEditor/course-generator/geo"

// Edge is a directed segment between two consecutive polygon vertices.
type Edge struct {
	From, To  geo.Point
	Angle     float64 // atan2(dy, dx), safe-branched near dx == 0
	Length    float64
	Dx, Dy    float64
}

// NewEdge builds the Edge from->to, computing angle and length.
func NewEdge(from, to geo.Point) Edge {
	dx, dy := to.X-from.X, to.Y-from.Y
	angle, length := geo.ToPolar(dx, dy)
	return Edge{From: from, To: to, Angle: angle, Length: length, Dx: dx, Dy: dy}
}

// Translate returns the edge translated by length along angle, preserving
// its direction and length.
func (e Edge) Translate(angle, length float64) Edge {
	from := geo.AddPolarVectorToPoint(e.From, angle, length)
	to := geo.AddPolarVectorToPoint(e.To, angle, length)
	return NewEdge(from, to)
}

// Tangent is the central-difference heading estimate at a vertex: the
// vector from the previous vertex to the next vertex.
type Tangent struct {
	Angle  float64
	Length float64
}
