package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeBoundingBox(t *testing.T) {
	pts := []Point{{0, 0}, {100, 0}, {100, 100}, {0, 100}}
	b := ComputeBoundingBox(pts)
	assert.Equal(t, 0.0, b.MinX)
	assert.Equal(t, 0.0, b.MinY)
	assert.Equal(t, 100.0, b.MaxX)
	assert.Equal(t, 100.0, b.MaxY)
	assert.Equal(t, 100.0, b.Width())
	assert.Equal(t, 100.0, b.Height())
}

func TestComputeBoundingBoxEmpty(t *testing.T) {
	assert.Equal(t, BoundingBox{}, ComputeBoundingBox(nil))
}
