// Package sequence walks the inner headland and the blocks it encircles to
// produce the final track-by-track waypoint sequence, including the
// skip-N alternate-track reorder.
package sequence

import "github.com/CourseplayPathEditor/course-generator/internal/invariant"

// ReorderTracksForAlternateFieldwork returns the 1-based visiting order for
// n tracks under the skip-N pattern: a forward sweep visits every
// (skip+1)-th track starting from the current start index, then a
// backward sweep (starting one past the last forward index, stepping back
// by skip+1) picks up any not-yet-visited track in range; the whole
// forward/backward pair repeats from the first unvisited index until every
// track has been visited.
func ReorderTracksForAlternateFieldwork(n, skip int) []int {
	if n <= 0 {
		return nil
	}
	step := skip + 1
	visited := make([]bool, n+1) // 1-indexed; index 0 unused
	order := make([]int, 0, n)

	start := 1
	for len(order) < n {
		last := start
		for cur := start; cur >= 1 && cur <= n && !visited[cur]; cur += step {
			visited[cur] = true
			order = append(order, cur)
			last = cur
		}

		for cur := last + 1; cur >= 1; cur -= step {
			if cur <= n && !visited[cur] {
				visited[cur] = true
				order = append(order, cur)
			}
		}

		if len(order) >= n {
			break
		}

		start = -1
		for i := 1; i <= n; i++ {
			if !visited[i] {
				start = i
				break
			}
		}
		if start == -1 {
			break
		}
	}

	invariant.True(len(order) == n, "reorderTracksForAlternateFieldwork: visited %d of %d tracks", len(order), n)
	return order
}
