package polygon

import (
	"testing"

	"github.com/CourseplayPathEditor/course-generator/geo"
	"github.com/stretchr/testify/assert"
)

func square(side float64) *Polygon {
	return NewPolygon([]geo.Point{
		{X: 0, Y: 0},
		{X: side, Y: 0},
		{X: side, Y: side},
		{X: 0, Y: side},
	})
}

func TestCalculatePolygonDataOrientation(t *testing.T) {
	ccw := square(100)
	CalculatePolygonData(ccw)
	assert.False(t, ccw.IsClockwise)

	cw := NewPolygon([]geo.Point{
		{X: 0, Y: 0},
		{X: 0, Y: 100},
		{X: 100, Y: 100},
		{X: 100, Y: 0},
	})
	CalculatePolygonData(cw)
	assert.True(t, cw.IsClockwise)
}

func TestCalculatePolygonDataBoundingBox(t *testing.T) {
	p := square(100)
	CalculatePolygonData(p)
	assert.Equal(t, geo.BoundingBox{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}, p.BoundingBox)
	assert.InDelta(t, 100, p.ShortestEdgeLength, geo.Tolerance)
}

func TestCalculatePolygonDataDirectionStats(t *testing.T) {
	p := square(100)
	CalculatePolygonData(p)
	assert.NotEmpty(t, p.DirectionStats)
	assert.Greater(t, p.BestDirection.Length, 0.0)
}
