// Package coursegen wires the geometry kernel, headland generator/linker,
// angle selector, center filler and block sequencer into the single
// entry point generateCourseForField describes (spec §6).
package coursegen

import (
	"github.com/CourseplayPathEditor/course-generator/center"
	"github.com/CourseplayPathEditor/course-generator/geo"
	"github.com/CourseplayPathEditor/course-generator/polygon"
)

// Field is the planner's aggregate: the input boundary plus every
// artifact a planning pass produces on it (spec §3 Data model).
type Field struct {
	Boundary *polygon.Polygon

	HeadlandTracks []*polygon.Polygon
	HeadlandPath   []polygon.Vertex

	Track            []*center.Track
	Blocks           []*center.Block
	ConnectingTracks [][]geo.Point

	Course []polygon.Vertex

	BestAngle   float64
	NTracks     int
	BoundingBox geo.BoundingBox
	IsClockwise bool
}

// NewField wraps a raw boundary ring into a Field ready for
// GenerateCourseForField. The boundary is analyzed immediately so
// IsClockwise/BoundingBox are available even if planning fails early.
func NewField(boundary []geo.Point) *Field {
	p := polygon.NewPolygon(boundary)
	polygon.CalculatePolygonData(p)
	return &Field{
		Boundary:    p,
		BoundingBox: p.BoundingBox,
		IsClockwise: p.IsClockwise,
	}
}
