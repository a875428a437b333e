// Package center fills the interior of the innermost headland with
// parallel scan lines, discretizes them into waypoints, and splits the
// interior into maximally-overlapping blocks.
package center

import (
	"math"
	"sort"

	"github.com/CourseplayPathEditor/course-generator/geo"
	"github.com/CourseplayPathEditor/course-generator/internal/invariant"
	"github.com/CourseplayPathEditor/course-generator/polygon"
)

// DefaultWaypointSpacing is the spacing (meters) used when discretizing a
// track into waypoints, unless a caller overrides it.
const DefaultWaypointSpacing = 5.0

// Intersection is a scan-line/polygon-edge crossing, annotated with the
// polygon edge index it came from so later stages can reference the
// boundary by plain integer rather than a back-pointer.
type Intersection struct {
	Point     geo.Point
	EdgeIndex int
}

// Track is a single horizontal scan line in the rotated working frame,
// together with its ordered intersections and (once discretized) its
// waypoints.
type Track struct {
	Y             float64
	From, To      float64 // full bounding-box x span the scan line was cast across
	Intersections []Intersection
	Waypoints     []geo.Point
}

// GenerateParallelTracks emits horizontal scan lines at
// y = minY + width/2 + k*width across poly's bounding box, each spanning
// the box's full x range, then finds and sorts their polygon-edge
// intersections.
func GenerateParallelTracks(poly *polygon.Polygon, width float64) []*Track {
	bb := poly.BoundingBox
	var tracks []*Track
	for y := bb.MinY + width/2; y < bb.MaxY; y += width {
		tracks = append(tracks, &Track{Y: y, From: bb.MinX, To: bb.MaxX})
	}
	findIntersections(poly, tracks)
	return tracks
}

// findIntersections walks the polygon edges once; for every edge/scan-line
// crossing it inserts the point into the scan line's intersection list,
// keeping the list sorted by ascending x.
func findIntersections(poly *polygon.Polygon, tracks []*Track) {
	n := poly.Len()
	for i := 1; i <= n; i++ {
		edge := poly.At(i).NextEdge
		if edge == nil {
			continue
		}
		for _, tr := range tracks {
			a1 := geo.Point{X: tr.From, Y: tr.Y}
			a2 := geo.Point{X: tr.To, Y: tr.Y}
			pt, ok := geo.GetIntersection(a1, a2, edge.From, edge.To)
			if !ok {
				continue
			}
			tr.Intersections = append(tr.Intersections, Intersection{Point: pt, EdgeIndex: i})
		}
	}
	for _, tr := range tracks {
		sort.Slice(tr.Intersections, func(a, b int) bool {
			return tr.Intersections[a].Point.X < tr.Intersections[b].Point.X
		})
		for i := 1; i < len(tr.Intersections); i++ {
			invariant.True(tr.Intersections[i-1].Point.X <= tr.Intersections[i].Point.X,
				"track y=%.3f intersections not sorted ascending by x", tr.Y)
		}
	}
}

// AddWaypointsToTracks discretizes every track with at least two
// intersections into waypoints spaced spacing meters apart, trimmed in by
// half the implement width on each side and adjusted by extendTracks.
// Tracks whose trimmed span collapses (newTo <= newFrom) are left without
// waypoints.
func AddWaypointsToTracks(tracks []*Track, width, extendTracks, spacing float64) {
	if spacing <= 0 {
		spacing = DefaultWaypointSpacing
	}
	for _, tr := range tracks {
		if len(tr.Intersections) < 2 {
			continue
		}
		x1, x2 := tr.Intersections[0].Point.X, tr.Intersections[1].Point.X
		newFrom := math.Min(x1, x2) + width/2 - extendTracks
		newTo := math.Max(x1, x2) - width/2 + extendTracks
		if newTo <= newFrom {
			continue
		}

		var waypoints []geo.Point
		for x := newFrom; x <= newTo; x += spacing {
			waypoints = append(waypoints, geo.Point{X: x, Y: tr.Y})
		}
		if len(waypoints) == 0 {
			waypoints = append(waypoints, geo.Point{X: newFrom, Y: tr.Y})
		}
		last := waypoints[len(waypoints)-1]
		if newTo-last.X > 0.25*spacing {
			waypoints = append(waypoints, geo.Point{X: newTo, Y: tr.Y})
		}
		tr.Waypoints = waypoints
	}
}
