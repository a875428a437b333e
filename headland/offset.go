// Package headland builds concentric inward-offset headland passes
// (Generate), cleans them up (ApplyLowPassFilter) and links them into a
// single spiral path (LinkHeadlandTracks).
package headland

import (
	"math"

	"github.com/CourseplayPathEditor/course-generator/diag"
	"github.com/CourseplayPathEditor/course-generator/geo"
	"github.com/CourseplayPathEditor/course-generator/polygon"
	"github.com/CourseplayPathEditor/course-generator/smooth"
)

// MaxOffsetDepth bounds the grassfire offset recursion (rewritten here as
// an iterative loop) to bound stack usage and runtime.
const MaxOffsetDepth = 50

// Diagnostics reports the non-fatal degradations the spec's error-handling
// design names for the offset generator.
type Diagnostics struct {
	Degraded        bool
	SaturatedOffset bool
	AchievedOffset  float64
}

// Generate offsets poly inward by targetOffset using the grassfire
// approximation of spec §4.3: each iteration advances by at most half the
// polygon's shortest edge, reconstructs vertices by intersecting
// translated edges, optionally smooths, and always runs the low-pass
// filter with angleThreshold=pi (suppressing angle-based removal, leaving
// only distance-based vertex merging active for this pass).
func Generate(poly *polygon.Polygon, targetOffset, minVertexDistance, angleThreshold float64, doSmooth bool, smoother smooth.Smoother, logger diag.Logger) (*polygon.Polygon, Diagnostics) {
	if logger == nil {
		logger = diag.NoopLogger{}
	}

	current := poly.Clone()
	polygon.CalculatePolygonData(current)
	currentOffset := 0.0

	for depth := 0; currentOffset < targetOffset-geo.Tolerance; depth++ {
		if depth >= MaxOffsetDepth {
			logger.Warning("headland offset recursion cap reached at %.3fm of target %.3fm", currentOffset, targetOffset)
			return current, Diagnostics{Degraded: true, SaturatedOffset: true, AchievedOffset: currentOffset}
		}
		if current.Len() < 3 {
			logger.Warning("polygon degenerated below 3 vertices during offset, returning last valid polygon")
			return current, Diagnostics{Degraded: true, AchievedOffset: currentOffset}
		}

		deltaOffset := math.Min(current.ShortestEdgeLength/2, targetOffset-currentOffset)
		next := offsetOnce(current, deltaOffset, minVertexDistance)

		if next.Len() < 3 {
			logger.Warning("offset pass degenerated the polygon below 3 vertices, returning previous pass")
			return current, Diagnostics{Degraded: true, AchievedOffset: currentOffset}
		}

		polygon.CalculatePolygonData(next)

		if doSmooth && smoother != nil {
			pts := closeRing(next.Points())
			pts = smoother.Smooth(pts, angleThreshold, 1)
			pts = openRing(pts)
			next = polygon.NewPolygon(pts)
			polygon.CalculatePolygonData(next)
		}

		filtered := ApplyLowPassFilter(next.Points(), math.Pi, minVertexDistance)
		next = polygon.NewPolygon(filtered)
		polygon.CalculatePolygonData(next)

		if next.Len() < 3 {
			logger.Warning("polygon degenerated below 3 vertices during offset, returning last valid polygon")
			return current, Diagnostics{Degraded: true, AchievedOffset: currentOffset}
		}

		current = next
		currentOffset += deltaOffset
	}

	return current, Diagnostics{AchievedOffset: currentOffset}
}

// offsetOnce performs one grassfire step: translate every edge inward by
// deltaOffset, then reconstruct each vertex from the intersection of its
// incoming and outgoing translated edges.
func offsetOnce(poly *polygon.Polygon, deltaOffset, minVertexDistance float64) *polygon.Polygon {
	n := poly.Len()
	inward := geo.Inward(poly.IsClockwise)

	translated := make([]polygon.Edge, n)
	for i := 1; i <= n; i++ {
		e := *poly.At(i).NextEdge
		translated[i-1] = e.Translate(e.Angle+inward, deltaOffset)
	}

	newPts := make([]geo.Point, 0, n)
	for i := 1; i <= n; i++ {
		prev := translated[geo.PolygonIndex(n, i-1)-1]
		cur := translated[i-1]

		if pt, ok := geo.GetLineIntersection(prev.From, prev.To, cur.From, cur.To); ok {
			newPts = append(newPts, pt)
			continue
		}

		gap := prev.To.Distance(cur.From)
		if gap < minVertexDistance {
			newPts = append(newPts, prev.To.Midpoint(cur.From))
		} else {
			newPts = append(newPts, prev.To, cur.From)
		}
	}

	return polygon.NewPolygon(newPts)
}

// closeRing appends the first vertex to the end so the smoother sees a
// genuinely closed curve (the headland generator always calls the
// smoother this way, per spec §6).
func closeRing(ring []geo.Point) []geo.Point {
	if len(ring) == 0 {
		return ring
	}
	out := make([]geo.Point, 0, len(ring)+1)
	out = append(out, ring...)
	out = append(out, ring[0])
	return out
}

// openRing strips the closing vertex appended by closeRing.
func openRing(ring []geo.Point) []geo.Point {
	if len(ring) < 2 {
		return ring
	}
	return ring[:len(ring)-1]
}
