package ebiten

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinimapOrigin(t *testing.T) {
	x, y := minimapOrigin(1600, 16)
	assert.Equal(t, float32(1600-16*minimapScale-minimapMargin), x)
	assert.Equal(t, float32(minimapMargin), y)
}

func TestArrowPointsAlongAngle(t *testing.T) {
	pts := arrow(100, 50, 0, 8)
	assert.InDelta(t, 108, pts[0][0], 1e-4)
	assert.InDelta(t, 50, pts[0][1], 1e-4)

	// the tail corners mirror each other across the heading
	assert.InDelta(t, pts[1][0], pts[2][0], 1e-4)
	assert.InDelta(t, 50-pts[1][1], pts[2][1]-50, 1e-4)

	pts = arrow(0, 0, math.Pi/2, 8)
	assert.InDelta(t, 0, pts[0][0], 1e-4)
	assert.InDelta(t, 8, pts[0][1], 1e-4)
}
