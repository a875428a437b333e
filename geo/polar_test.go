package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPolarAxes(t *testing.T) {
	a, l := ToPolar(0, 5)
	assert.InDelta(t, math.Pi/2, a, Tolerance)
	assert.InDelta(t, 5, l, Tolerance)

	a, _ = ToPolar(0, -5)
	assert.InDelta(t, -math.Pi/2, a, Tolerance)

	a, _ = ToPolar(-1, 0)
	assert.InDelta(t, math.Pi, a, Tolerance)

	a, _ = ToPolar(1, 0)
	assert.InDelta(t, 0, a, Tolerance)
}

func TestToPolarLength(t *testing.T) {
	tests := []struct {
		x, y, wantLen, wantDeg float64
	}{
		{3, 4, 5, 53.13010235},
		{-3, 4, 5, 126.86989764},
		{1, 1, math.Sqrt2, 45},
		{-1, -1, math.Sqrt2, -135},
	}
	for _, tt := range tests {
		a, l := ToPolar(tt.x, tt.y)
		assert.InDelta(t, tt.wantLen, l, 1e-6)
		assert.InDelta(t, tt.wantDeg, a*180/math.Pi, 1e-4)
	}
}

func TestGetAverageAngleWrap(t *testing.T) {
	got := GetAverageAngle(-178*math.Pi/180, 176*math.Pi/180)
	assert.InDelta(t, 179*math.Pi/180, got, Tolerance)
}

func TestGetAverageAngleIdempotent(t *testing.T) {
	a := 0.73
	assert.InDelta(t, a, GetAverageAngle(a, a), Tolerance)
}

func TestGetDeltaAngleAntisymmetric(t *testing.T) {
	a, b := 0.2, 2.9
	d1 := GetDeltaAngle(a, b)
	d2 := GetDeltaAngle(b, a)
	assert.InDelta(t, 0, d1+d2, 1e-4)
}

func TestInward(t *testing.T) {
	assert.InDelta(t, -math.Pi/2, Inward(true), Tolerance)
	assert.InDelta(t, math.Pi/2, Inward(false), Tolerance)
}
