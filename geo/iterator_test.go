package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func indices(pts []IndexedPoint) []int {
	out := make([]int, len(pts))
	for i, p := range pts {
		out[i] = p.Index
	}
	return out
}

func TestPolygonIteratorForwardFullCircle(t *testing.T) {
	poly := []Point{{X: 1}, {X: 2}, {X: 3}, {X: 4}}
	got := PolygonIterator(poly, 1, 4, 1)
	assert.Equal(t, []int{1, 2, 3, 4}, indices(got))
}

func TestPolygonIteratorWrapBackward(t *testing.T) {
	poly := []Point{{X: 1}, {X: 2}, {X: 3}, {X: 4}}
	got := PolygonIterator(poly, 2, 3, -1)
	assert.Equal(t, []int{2, 1, 4, 3}, indices(got))
}

func TestPolygonIteratorFullCircleFromI(t *testing.T) {
	poly := []Point{{X: 1}, {X: 2}, {X: 3}, {X: 4}, {X: 5}}
	for i := 1; i <= len(poly); i++ {
		got := PolygonIterator(poly, i, i, 1)
		assert.Len(t, got, len(poly))
		seen := map[int]bool{}
		for _, ip := range got {
			seen[ip.Index] = true
		}
		assert.Len(t, seen, len(poly))
	}
}

func TestReverseInvolution(t *testing.T) {
	s := []int{1, 2, 3, 4, 5}
	assert.Equal(t, s, Reverse(Reverse(s)))
}
