package headland

import (
	"math"

	"github.com/CourseplayPathEditor/course-generator/diag"
	"github.com/CourseplayPathEditor/course-generator/geo"
	"github.com/CourseplayPathEditor/course-generator/polygon"
	"github.com/CourseplayPathEditor/course-generator/smooth"
)

// maxLinkRayDistance bounds how far the transition ray between two
// concentric passes is allowed to search for an intersection.
const maxLinkRayDistance = 30.0

// candidateHeadingOffsetsDeg are tried, in order, when casting the ray from
// the end of one pass toward the start of the next: straight inward, then
// +60 degrees, then -60 degrees.
var candidateHeadingOffsetsDeg = []float64{0, 60, -60}

// LinkResult is the output of LinkHeadlandTracks.
type LinkResult struct {
	Path             []polygon.Vertex
	LinkedPassCount  int
	TruncatedAtPass  int // 0 if every pass linked
}

// LinkHeadlandTracks composes the concentric passes (outermost first) into
// one spiral path, per spec §4.5: walk pass i from its entry to its exit
// index (direction chosen to match desiredClockwise), then ray-cast from
// the exit toward pass i+1 to find the next entry point. A pass that
// cannot be reached (no ray-polygon hit on any of the three candidate
// headings) truncates the spiral there; later passes are omitted.
func LinkHeadlandTracks(passes []*polygon.Polygon, desiredClockwise bool, startLocation geo.Point, doSmooth bool, angleThreshold float64, smoother smooth.Smoother, logger diag.Logger) LinkResult {
	if logger == nil {
		logger = diag.NoopLogger{}
	}
	if len(passes) == 0 {
		return LinkResult{}
	}

	fromIndex := nearestVertexIndex(passes[0], startLocation)
	toIndex := geo.PolygonIndex(passes[0].Len(), fromIndex+1)

	var path []polygon.Vertex

	for i, pass := range passes {
		var walkFrom, walkTo, step int
		if pass.IsClockwise == desiredClockwise {
			walkFrom, walkTo, step = toIndex, fromIndex, 1
		} else {
			walkFrom, walkTo, step = fromIndex, toIndex, -1
		}

		visited := geo.PolygonIterator(pass.Points(), walkFrom, walkTo, step)
		pass.CircleStart, pass.CircleEnd, pass.CircleStep = walkFrom, walkTo, step

		for _, iv := range visited {
			v := *pass.At(iv.Index)
			v.PassNumber = i + 1
			path = append(path, v)
		}

		if i == len(passes)-1 {
			break
		}

		exit := path[len(path)-1].Point
		tangentAngle := pass.At(visited[len(visited)-1].Index).Tangent.Angle
		inward := geo.Inward(pass.IsClockwise)

		nextFrom, nextTo, ok := castTransitionRay(passes[i+1], exit, tangentAngle+inward)
		if !ok {
			logger.Warning("no ray intersection found linking headland pass %d to pass %d; truncating spiral", i+1, i+2)
			return LinkResult{Path: applySmoothing(path, doSmooth, angleThreshold, smoother), LinkedPassCount: i + 1, TruncatedAtPass: i + 2}
		}
		fromIndex, toIndex = nextFrom, nextTo
	}

	return LinkResult{Path: applySmoothing(path, doSmooth, angleThreshold, smoother), LinkedPassCount: len(passes)}
}

func applySmoothing(path []polygon.Vertex, doSmooth bool, angleThreshold float64, smoother smooth.Smoother) []polygon.Vertex {
	if !doSmooth || smoother == nil || len(path) < 3 {
		return path
	}
	pts := make([]geo.Point, len(path))
	for i, v := range path {
		pts[i] = v.Point
	}
	// Pad both ends with a duplicated sentinel so the open-curve smoother
	// does not distort the path's real endpoints, then strip the padding.
	padded := append([]geo.Point{pts[0]}, pts...)
	padded = append(padded, pts[len(pts)-1])
	smoothed := smoother.Smooth(padded, angleThreshold, 1)
	if len(smoothed) < 2 {
		return path
	}
	smoothed = smoothed[1 : len(smoothed)-1]

	out := make([]polygon.Vertex, 0, len(smoothed))
	for i, p := range smoothed {
		v := path[0]
		if i < len(path) {
			v = path[i]
		}
		v.Point = p
		out = append(out, v)
	}
	return out
}

func nearestVertexIndex(poly *polygon.Polygon, from geo.Point) int {
	best, bestDist := 1, math.Inf(1)
	for i := 1; i <= poly.Len(); i++ {
		d := poly.At(i).Point.Distance(from)
		if d < bestDist {
			bestDist, best = d, i
		}
	}
	return best
}

// castTransitionRay tries each candidate heading offset from origin,
// returning the entry/exit index pair of the first edge of target hit.
func castTransitionRay(target *polygon.Polygon, origin geo.Point, baseAngle float64) (fromIndex, toIndex int, ok bool) {
	for _, offsetDeg := range candidateHeadingOffsetsDeg {
		angle := baseAngle + offsetDeg*math.Pi/180
		far := geo.AddPolarVectorToPoint(origin, angle, maxLinkRayDistance)

		for i := 1; i <= target.Len(); i++ {
			edge := target.At(i).NextEdge
			if edge == nil {
				continue
			}
			if _, hit := geo.GetIntersection(origin, far, edge.From, edge.To); hit {
				from := i
				to := geo.PolygonIndex(target.Len(), i+1)
				return from, to, true
			}
		}
	}
	return 0, 0, false
}
