// Package smooth defines the curve-smoothing collaborator the spec treats
// as an external black box, plus a concrete Chaikin-style default so the
// planner is runnable without a real B-spline implementation.
package smooth

import "github.com/CourseplayPathEditor/course-generator/geo"

// Smoother smooths a polyline. Implementations treat points as an open
// polyline. The headland linker smooths its open spiral path with both
// ends padded by a duplicated sentinel vertex, stripped afterward; the
// headland generator smooths a closed ring by repeating its first vertex
// at the end and dropping that closing vertex afterward.
type Smoother interface {
	Smooth(points []geo.Point, angleThreshold float64, iterations int) []geo.Point
}

// Chaikin implements Smoother with Chaikin's corner-cutting algorithm: each
// iteration replaces every edge with two points at 1/4 and 3/4 along it,
// rounding off sharp vertices. The spec is explicit that a Chaikin-style
// smoother is an acceptable stand-in for a B-spline.
type Chaikin struct{}

// Smooth implements Smoother.
func (Chaikin) Smooth(points []geo.Point, angleThreshold float64, iterations int) []geo.Point {
	if len(points) < 3 || iterations <= 0 {
		return points
	}
	cur := points
	for it := 0; it < iterations; it++ {
		next := make([]geo.Point, 0, 2*(len(cur)-1)+2)
		next = append(next, cur[0])
		for i := 0; i < len(cur)-1; i++ {
			a, b := cur[i], cur[i+1]
			q := geo.Point{X: 0.75*a.X + 0.25*b.X, Y: 0.75*a.Y + 0.25*b.Y}
			r := geo.Point{X: 0.25*a.X + 0.75*b.X, Y: 0.25*a.Y + 0.75*b.Y}
			next = append(next, q, r)
		}
		next = append(next, cur[len(cur)-1])
		cur = next
	}
	return cur
}
