package geo

import "github.com/CourseplayPathEditor/course-generator/internal/invariant"

// PolygonIndex maps any integer index onto the circular range [1, n]:
// 0 wraps to n (the last vertex), negative indices wrap from the end, and
// indices beyond n wrap from the start. Every neighborhood lookup in the
// planner routes through this helper instead of scattering modulo
// arithmetic across call sites.
func PolygonIndex(n, i int) int {
	if n <= 0 {
		return 0
	}
	i = ((i-1)%n + n) % n
	result := i + 1
	invariant.True(result >= 1 && result <= n, "PolygonIndex(%d, %d) = %d out of range", n, i, result)
	return result
}
