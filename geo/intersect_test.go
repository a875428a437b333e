package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetIntersectionCrossing(t *testing.T) {
	p, ok := GetIntersection(Point{0, 0}, Point{10, 10}, Point{0, 10}, Point{10, 0})
	assert.True(t, ok)
	assert.InDelta(t, 5, p.X, Tolerance)
	assert.InDelta(t, 5, p.Y, Tolerance)
}

func TestGetIntersectionParallelNone(t *testing.T) {
	_, ok := GetIntersection(Point{0, 0}, Point{10, 0}, Point{0, 1}, Point{10, 1})
	assert.False(t, ok)
}

func TestGetIntersectionOutsideSegment(t *testing.T) {
	_, ok := GetIntersection(Point{0, 0}, Point{1, 1}, Point{5, 0}, Point{5, 10})
	assert.False(t, ok)
}

func TestGetIntersectionColinearNone(t *testing.T) {
	_, ok := GetIntersection(Point{0, 0}, Point{10, 0}, Point{2, 0}, Point{8, 0})
	assert.False(t, ok)
}
