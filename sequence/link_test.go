package sequence

import (
	"testing"

	"github.com/CourseplayPathEditor/course-generator/center"
	"github.com/CourseplayPathEditor/course-generator/geo"
	"github.com/stretchr/testify/assert"
)

func trackWithWaypoints(y float64, xs ...float64) *center.Track {
	var wp []geo.Point
	for _, x := range xs {
		wp = append(wp, geo.Point{X: x, Y: y})
	}
	return &center.Track{Y: y, Waypoints: wp}
}

func TestLinkParallelTracksAlternatesDirection(t *testing.T) {
	tracks := []*center.Track{
		trackWithWaypoints(5, 0, 10, 20),
		trackWithWaypoints(15, 0, 10, 20),
	}
	verts := LinkParallelTracks(tracks, true, true, 0)
	assert.Len(t, verts, 6)

	// track 0 not reversed (reverseStart=1 since leftToRight)
	assert.Equal(t, 0.0, verts[0].X)
	assert.Equal(t, 20.0, verts[2].X)
	// track 1 reversed
	assert.Equal(t, 20.0, verts[3].X)
	assert.Equal(t, 0.0, verts[5].X)

	assert.True(t, verts[3].TurnEnd)
	assert.True(t, verts[2].TurnStart)
}

func TestLinkParallelTracksReversesBlockOrderWhenNotBottomToTop(t *testing.T) {
	tracks := []*center.Track{
		trackWithWaypoints(5, 0, 10),
		trackWithWaypoints(15, 100, 110),
	}
	verts := LinkParallelTracks(tracks, false, false, 0)
	// block order reversed: track at y=15 comes first
	assert.Equal(t, 15.0, verts[0].Y)
}
