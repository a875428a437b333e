package center

import (
	"testing"

	"github.com/CourseplayPathEditor/course-generator/geo"
	"github.com/stretchr/testify/assert"
)

func intAt(x, y float64) Intersection {
	return Intersection{Point: geo.Point{X: x, Y: y}}
}

func TestSplitCenterIntoBlocksSingleRectangle(t *testing.T) {
	tracks := []*Track{
		{Y: 5, Intersections: []Intersection{intAt(0, 5), intAt(100, 5)}},
		{Y: 15, Intersections: []Intersection{intAt(0, 15), intAt(100, 15)}},
		{Y: 25, Intersections: []Intersection{intAt(0, 25), intAt(100, 25)}},
	}
	blocks := SplitCenterIntoBlocks(tracks)
	assert.Len(t, blocks, 1)
	assert.Len(t, blocks[0].Tracks, 3)
	assert.Equal(t, 0.0, blocks[0].BottomLeft.Point.X)
	assert.Equal(t, 100.0, blocks[0].TopRight.Point.X)
}

func TestSplitCenterIntoBlocksNonOverlappingSplits(t *testing.T) {
	tracks := []*Track{
		{Y: 5, Intersections: []Intersection{intAt(0, 5), intAt(10, 5)}},
		{Y: 15, Intersections: []Intersection{intAt(50, 15), intAt(60, 15)}},
	}
	blocks := SplitCenterIntoBlocks(tracks)
	assert.Len(t, blocks, 2)
}

func TestSplitCenterIntoBlocksEveryTrackHasTwoIntersections(t *testing.T) {
	tracks := []*Track{
		{Y: 5, Intersections: []Intersection{intAt(0, 5), intAt(20, 5), intAt(40, 5), intAt(60, 5)}},
		{Y: 15, Intersections: []Intersection{intAt(0, 15), intAt(60, 15)}},
	}
	blocks := SplitCenterIntoBlocks(tracks)
	for _, b := range blocks {
		for _, tr := range b.Tracks {
			assert.Len(t, tr.Intersections, 2)
			assert.LessOrEqual(t, tr.Intersections[0].Point.X, tr.Intersections[1].Point.X)
		}
	}
}

func TestOverlaps(t *testing.T) {
	a := &Track{Intersections: []Intersection{intAt(0, 0), intAt(10, 0)}}
	b := &Track{Intersections: []Intersection{intAt(5, 0), intAt(15, 0)}}
	c := &Track{Intersections: []Intersection{intAt(20, 0), intAt(30, 0)}}
	assert.True(t, Overlaps(a, b))
	assert.False(t, Overlaps(a, c))
}
