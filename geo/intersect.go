package geo

// GetIntersection returns the intersection point of segments A1-A2 and
// B1-B2, and true if they intersect with both parametric coordinates in
// [0, 1]. Colinear (zero-denominator) segments report no intersection.
func GetIntersection(a1, a2, b1, b2 Point) (Point, bool) {
	d := (a2.X-a1.X)*(b2.Y-b1.Y) - (a2.Y-a1.Y)*(b2.X-b1.X)
	if d == 0 {
		return Point{}, false
	}

	t := ((b1.X-a1.X)*(b2.Y-b1.Y) - (b1.Y-a1.Y)*(b2.X-b1.X)) / d
	u := ((b1.X-a1.X)*(a2.Y-a1.Y) - (b1.Y-a1.Y)*(a2.X-a1.X)) / d

	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, false
	}

	return Point{
		X: a1.X + t*(a2.X-a1.X),
		Y: a1.Y + t*(a2.Y-a1.Y),
	}, true
}

// GetLineIntersection is like GetIntersection but treats both inputs as
// infinite lines (no parametric clamping), used to reconstruct offset
// polygon vertices by intersecting two translated edges.
func GetLineIntersection(a1, a2, b1, b2 Point) (Point, bool) {
	d := (a2.X-a1.X)*(b2.Y-b1.Y) - (a2.Y-a1.Y)*(b2.X-b1.X)
	if d == 0 {
		return Point{}, false
	}
	t := ((b1.X-a1.X)*(b2.Y-b1.Y) - (b1.Y-a1.Y)*(b2.X-b1.X)) / d
	return Point{
		X: a1.X + t*(a2.X-a1.X),
		Y: a1.Y + t*(a2.Y-a1.Y),
	}, true
}
