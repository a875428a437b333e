package geo

// IndexedPoint pairs a 1-based polygon index with its vertex.
type IndexedPoint struct {
	Index int
	Point Point
}

// PolygonIterator returns the sequence of (index, vertex) pairs obtained by
// walking poly starting at index from, stepping by step (+1 or -1), and
// terminating only after the vertex at index to has been emitted. A full
// circle results when to == from. Indices are circular (see PolygonIndex).
func PolygonIterator(poly []Point, from, to, step int) []IndexedPoint {
	n := len(poly)
	if n == 0 || step == 0 {
		return nil
	}

	from = PolygonIndex(n, from)
	to = PolygonIndex(n, to)

	out := make([]IndexedPoint, 0, n)
	if from == to {
		// A full circle: visit every vertex exactly once starting at from,
		// without re-emitting the start vertex at the end.
		i := from
		for k := 0; k < n; k++ {
			out = append(out, IndexedPoint{Index: i, Point: poly[i-1]})
			i = PolygonIndex(n, i+step)
		}
		return out
	}

	i := from
	out = append(out, IndexedPoint{Index: i, Point: poly[i-1]})
	for i != to {
		i = PolygonIndex(n, i+step)
		out = append(out, IndexedPoint{Index: i, Point: poly[i-1]})
		// safety: never walk more than a full circle, even if `to` is
		// unreachable by `step`'s direction.
		if len(out) > n {
			break
		}
	}
	return out
}

// Reverse returns a new slice with the elements of s in reverse order. s is
// left untouched.
func Reverse[T any](s []T) []T {
	out := make([]T, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}
