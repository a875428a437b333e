package headland

import (
	"math"

	"github.com/CourseplayPathEditor/course-generator/geo"
)

// ApplyLowPassFilter walks the ring once, removing vertices that create an
// edge shorter than distanceThreshold or a turn sharper than
// angleThreshold: the offending vertex is merged into the midpoint of
// itself and its predecessor, and the cursor does not advance so the
// freshly merged vertex is re-examined against its own successor. The walk
// terminates once the cursor has passed the (shrinking) end of the ring,
// so a single call is idempotent once the ring has converged.
func ApplyLowPassFilter(ring []geo.Point, angleThreshold, distanceThreshold float64) []geo.Point {
	pts := append([]geo.Point(nil), ring...)

	cursor := 0
	for cursor < len(pts) {
		n := len(pts)
		if n < 3 {
			break
		}

		cpIdx := cursor
		npIdx := (cursor + 1) % n
		prevIdx := (cursor - 1 + n) % n

		cp, np, prevPt := pts[cpIdx], pts[npIdx], pts[prevIdx]

		edgeAngle, edgeLen := geo.ToPolar(np.X-cp.X, np.Y-cp.Y)
		prevAngle, _ := geo.ToPolar(cp.X-prevPt.X, cp.Y-prevPt.Y)

		tooClose := edgeLen < distanceThreshold
		tooSharp := math.Abs(geo.GetDeltaAngle(prevAngle, edgeAngle)) > angleThreshold

		if !tooClose && !tooSharp {
			cursor++
			continue
		}

		mid := cp.Midpoint(np)
		merged := make([]geo.Point, 0, n-1)
		for i, p := range pts {
			switch i {
			case cpIdx:
				continue
			case npIdx:
				p = mid
			}
			merged = append(merged, p)
		}
		pts = merged
		// cursor intentionally not advanced
	}

	return pts
}
