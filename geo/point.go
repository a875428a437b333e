// Package geo provides the 2D geometry primitives the rest of the planner
// is built on: points, polar conversions, segment intersection, circular
// polygon indexing and iteration.
//
// All calculations use 64-bit floating point. Equality comparisons use
// Tolerance.
package geo

import "math"

// Tolerance is the default floating-point comparison tolerance used
// throughout the planner.
const Tolerance = 1.0e-5

// Point is a location in the 2D field plane, in meters.
type Point struct {
	X, Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Midpoint returns the point halfway between p and q.
func (p Point) Midpoint(q Point) Point {
	return Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2}
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// AlmostEqual reports whether p and q are within Tolerance of each other.
func (p Point) AlmostEqual(q Point) bool {
	return p.Distance(q) < Tolerance
}

// Rotate returns p rotated by angle radians around the origin.
func (p Point) Rotate(angle float64) Point {
	s, c := math.Sincos(angle)
	return Point{
		X: p.X*c - p.Y*s,
		Y: p.X*s + p.Y*c,
	}
}

// RotateAround returns p rotated by angle radians around center.
func (p Point) RotateAround(center Point, angle float64) Point {
	return p.Sub(center).Rotate(angle).Add(center)
}
