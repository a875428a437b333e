package geo

import "math"

// ToPolar converts a vector (x, y) to an (angle, length) pair. angle is in
// (-pi, pi]. Near-vertical vectors (x almost zero, or |y/x| > 1000) take the
// safe +-pi/2 branch signed by y to avoid the atan2 singularity blowing up
// the downstream offset math.
func ToPolar(x, y float64) (angle, length float64) {
	length = math.Hypot(x, y)
	if math.Abs(x) < Tolerance || math.Abs(y/x) > 1000 {
		if y >= 0 {
			return math.Pi / 2, length
		}
		return -math.Pi / 2, length
	}
	return math.Atan2(y, x), length
}

// PointToPolar is a convenience wrapper around ToPolar for a vector
// expressed as a Point.
func PointToPolar(v Point) (angle, length float64) {
	return ToPolar(v.X, v.Y)
}

// AddPolarVectorToPoint returns p translated by length along angle.
func AddPolarVectorToPoint(p Point, angle, length float64) Point {
	s, c := math.Sincos(angle)
	return Point{
		X: p.X + c*length,
		Y: p.Y + s*length,
	}
}

// NormalizeAngle reduces a into the canonical (-pi, pi] range.
func NormalizeAngle(a float64) float64 {
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// GetDeltaAngle returns the signed shortest angular difference b-a, wrapped
// into (-pi, pi].
func GetDeltaAngle(a, b float64) float64 {
	a = NormalizeAngle(a)
	b = NormalizeAngle(b)
	d := b - a
	if math.Abs(d) > math.Pi {
		if d > 0 {
			b -= 2 * math.Pi
		} else {
			b += 2 * math.Pi
		}
		d = b - a
	}
	return d
}

// GetAverageAngle returns the circular mean of a and b, wrapped into
// (-pi, pi]. It shifts negative angles into [0, 2pi) whenever the raw
// difference exceeds pi before averaging, then reduces the result back.
func GetAverageAngle(a, b float64) float64 {
	aa, bb := a, b
	if math.Abs(aa-bb) > math.Pi {
		if aa < 0 {
			aa += 2 * math.Pi
		}
		if bb < 0 {
			bb += 2 * math.Pi
		}
	}
	return NormalizeAngle((aa + bb) / 2)
}

// Inward returns the rotation to apply to an edge's angle to point toward
// the polygon interior: -pi/2 for a clockwise ring, +pi/2 otherwise. Every
// inward/outward offset decision in the planner routes through this helper.
func Inward(isClockwise bool) float64 {
	if isClockwise {
		return -math.Pi / 2
	}
	return math.Pi / 2
}
