package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolygonIndexWrap(t *testing.T) {
	const n = 4
	assert.Equal(t, n, PolygonIndex(n, 0))
	assert.Equal(t, n-1, PolygonIndex(n, -1))
	assert.Equal(t, n-2, PolygonIndex(n, -2))
	assert.Equal(t, 1, PolygonIndex(n, n+1))
	assert.Equal(t, 2, PolygonIndex(n, n+2))
	for i := 1; i <= n; i++ {
		assert.Equal(t, i, PolygonIndex(n, i))
	}
}
