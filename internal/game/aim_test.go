package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFireDirection(t *testing.T) {
	minUp := MinUpwardComponent
	flatX := math.Sqrt(1 - minUp*minUp)

	tests := []struct {
		name   string
		dx, dy float64
		wantX  float64
		wantY  float64
	}{
		{"zero offset defaults straight up", 0, 0, 0, -1},
		{"straight up", 0, -10, 0, -1},
		{"steep up right keeps direction", 1, -10, 1 / math.Sqrt(101), -10 / math.Sqrt(101)},
		{"downward right flattens horizontal", 5, 10, 1, 0},
		{"downward left flattens horizontal", -5, 10, -1, 0},
		{"straight down turns straight up", 0, 10, 0, -1},
		{"level right rebiased upward", 10, 0, flatX, -minUp},
		{"level left rebiased upward", -10, 0, -flatX, -minUp},
		{"shallow up right rebiased", 10, -1, flatX, -minUp},
		{"shallow up left rebiased", -10, -1, -flatX, -minUp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotX, gotY := FireDirection(tt.dx, tt.dy)
			assert.InDelta(t, tt.wantX, gotX, 1e-9)
			assert.InDelta(t, tt.wantY, gotY, 1e-9)
			assert.InDelta(t, 1.0, math.Hypot(gotX, gotY), 1e-9, "direction must stay unit length")
		})
	}
}

func TestFireDirectionUpwardFloor(t *testing.T) {
	// Sweep upward angles: the vertical component magnitude never
	// drops below the floor once clamped.
	for dx := -20.0; dx <= 20.0; dx += 0.5 {
		_, dirY := FireDirection(dx, -0.1)
		assert.LessOrEqual(t, dirY, -MinUpwardComponent+1e-9)
	}
}

func TestAimGunX(t *testing.T) {
	const width = 800.0
	center := width / 2

	tests := []struct {
		name     string
		pointerX float64
		want     float64
	}{
		{"pointer at center", center, center},
		{"small offset dampened", 500, center + 100*AimDamping},
		{"offset clamped to quarter width", width, center + 200*AimDamping},
		{"far left clamped", -500, center - 200*AimDamping},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, AimGunX(tt.pointerX, width), 1e-9)
		})
	}
}
