package headland

import (
	"testing"

	"github.com/CourseplayPathEditor/course-generator/geo"
	"github.com/CourseplayPathEditor/course-generator/polygon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(side float64) *polygon.Polygon {
	p := polygon.NewPolygon([]geo.Point{
		{X: 0, Y: 0},
		{X: side, Y: 0},
		{X: side, Y: side},
		{X: 0, Y: side},
	})
	polygon.CalculatePolygonData(p)
	return p
}

func TestGenerateOffsetsInward(t *testing.T) {
	boundary := square(100)
	offset, diagRes := Generate(boundary, 10, 1.0, 3.0, false, nil, nil)
	require.False(t, diagRes.Degraded)
	polygon.CalculatePolygonData(offset)

	assert.InDelta(t, boundary.BoundingBox.Width()-20, offset.BoundingBox.Width(), 1.0)
	assert.InDelta(t, boundary.BoundingBox.Height()-20, offset.BoundingBox.Height(), 1.0)
	assert.Equal(t, boundary.IsClockwise, offset.IsClockwise)
}

func TestGenerateConcentricPassesStayInside(t *testing.T) {
	boundary := square(100)
	pass1, _ := Generate(boundary, 5, 1.0, 3.0, false, nil, nil)
	polygon.CalculatePolygonData(pass1)
	pass2, diagRes := Generate(pass1, 10, 1.0, 3.0, false, nil, nil)
	require.False(t, diagRes.Degraded)
	polygon.CalculatePolygonData(pass2)

	for i := 1; i <= pass2.Len(); i++ {
		v := pass2.At(i).Point
		assert.True(t, v.X > pass1.BoundingBox.MinX-geo.Tolerance)
		assert.True(t, v.X < pass1.BoundingBox.MaxX+geo.Tolerance)
		assert.True(t, v.Y > pass1.BoundingBox.MinY-geo.Tolerance)
		assert.True(t, v.Y < pass1.BoundingBox.MaxY+geo.Tolerance)
	}
}

func TestGenerateDegradesWhenTargetExceedsPolygon(t *testing.T) {
	// A target offset that would need a single giant step immediately
	// exceeds the polygon's half-extent; the grassfire step size is capped
	// by shortestEdgeLength/2 each iteration, so demanding an offset larger
	// than the polygon can sustain degenerates it well before 50 passes.
	boundary := square(10)
	_, diagRes := Generate(boundary, 1000, 0.5, 3.0, false, nil, nil)
	assert.True(t, diagRes.Degraded)
}
