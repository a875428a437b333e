package center

import (
	"math"
	"testing"

	"github.com/CourseplayPathEditor/course-generator/geo"
	"github.com/CourseplayPathEditor/course-generator/polygon"
	"github.com/stretchr/testify/assert"
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

func TestGenerateParallelTracksSquare(t *testing.T) {
	p := square(80)
	tracks := GenerateParallelTracks(p, 10)
	// y = 5, 15, ..., 75 -> 8 tracks
	assert.Len(t, tracks, 8)
	for _, tr := range tracks {
		assert.Len(t, tr.Intersections, 2)
		assert.LessOrEqual(t, tr.Intersections[0].Point.X, tr.Intersections[1].Point.X)
	}
}

func TestAddWaypointsToTracksSpacingAndTrim(t *testing.T) {
	tracks := []*Track{
		{Y: 5, Intersections: []Intersection{{Point: geo.Point{X: 0, Y: 5}}, {Point: geo.Point{X: 100, Y: 5}}}},
	}
	AddWaypointsToTracks(tracks, 10, 0, 5)
	tr := tracks[0]
	newFrom, newTo := 5.0, 95.0
	expectedCount := int(math.Ceil((newTo - newFrom) / 5))
	assert.GreaterOrEqual(t, len(tr.Waypoints), expectedCount)
	assert.LessOrEqual(t, len(tr.Waypoints), expectedCount+1)
	assert.InDelta(t, newFrom, tr.Waypoints[0].X, geo.Tolerance)
	assert.InDelta(t, newTo, tr.Waypoints[len(tr.Waypoints)-1].X, geo.Tolerance)
}

func TestAddWaypointsToTracksSkipsCollapsedSpan(t *testing.T) {
	tracks := []*Track{
		{Y: 5, Intersections: []Intersection{{Point: geo.Point{X: 0, Y: 5}}, {Point: geo.Point{X: 5, Y: 5}}}},
	}
	AddWaypointsToTracks(tracks, 10, 0, 5)
	assert.Empty(t, tracks[0].Waypoints)
}
