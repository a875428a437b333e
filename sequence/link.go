package sequence

import (
	"github.com/CourseplayPathEditor/course-generator/center"
	"github.com/CourseplayPathEditor/course-generator/geo"
	"github.com/CourseplayPathEditor/course-generator/polygon"
)

// LinkParallelTracks orders a block's tracks for fieldwork and emits the
// concatenated, direction-tagged waypoint sequence (spec §4.9 last
// paragraph / §4.10).
//
//   - If !bottomToTop, the block's track order is reversed first.
//   - The skip-nSkip reorder (ReorderTracksForAlternateFieldwork) is then
//     applied on top of that order.
//   - Waypoints on every second track are reversed so the vehicle
//     alternates direction, starting with the second track if leftToRight,
//     otherwise the first.
//   - The first waypoint of every non-initial track is tagged TurnEnd; the
//     last waypoint of every non-final track is tagged TurnStart.
func LinkParallelTracks(blockTracks []*center.Track, bottomToTop, leftToRight bool, nSkip int) []polygon.Vertex {
	tracks := append([]*center.Track(nil), blockTracks...)
	if !bottomToTop {
		tracks = geo.Reverse(tracks)
	}

	order := ReorderTracksForAlternateFieldwork(len(tracks), nSkip)
	ordered := make([]*center.Track, len(order))
	for i, idx := range order {
		ordered[i] = tracks[idx-1]
	}

	reverseStart := 0
	if leftToRight {
		reverseStart = 1
	}

	var result []polygon.Vertex
	for i, tr := range ordered {
		pts := append([]geo.Point(nil), tr.Waypoints...)
		if i >= reverseStart && (i-reverseStart)%2 == 0 {
			pts = geo.Reverse(pts)
		}

		verts := make([]polygon.Vertex, len(pts))
		for j, p := range pts {
			verts[j] = polygon.Vertex{Point: p, Track: i}
		}
		if i > 0 && len(verts) > 0 {
			verts[0].TurnEnd = true
		}
		if i < len(ordered)-1 && len(verts) > 0 {
			verts[len(verts)-1].TurnStart = true
		}

		result = append(result, verts...)
	}
	return result
}
