package game

import "math"

// FireDirection converts a raw target offset from the barrel into a
// unit firing direction. Y grows downward, so upward directions have a
// negative Y component. The clamps, in order:
//
//   - a zero-length offset defaults to straight up
//   - a strictly downward offset is flattened to purely horizontal
//     (or straight up when there is no horizontal component)
//   - any remaining direction too close to horizontal is re-biased so
//     the upward component's magnitude is at least MinUpwardComponent,
//     keeping unit length and the horizontal sign
func FireDirection(dx, dy float64) (float64, float64) {
	length := math.Hypot(dx, dy)
	if length == 0 {
		return 0, -1
	}
	dx /= length
	dy /= length

	if dy > 0 {
		if dx > 0 {
			return 1, 0
		}
		if dx < 0 {
			return -1, 0
		}
		return 0, -1
	}

	if -dy < MinUpwardComponent {
		sign := 1.0
		if dx < 0 {
			sign = -1
		}
		dy = -MinUpwardComponent
		dx = sign * math.Sqrt(1-MinUpwardComponent*MinUpwardComponent)
	}
	return dx, dy
}

// AimGunX maps a pointer position to the gun's horizontal position.
// The offset from center is clamped to a quarter of the field width,
// then dampened so the gun never tracks the pointer 1:1.
func AimGunX(pointerX, fieldWidth float64) float64 {
	center := fieldWidth / 2
	maxOffset := fieldWidth / 4
	offset := pointerX - center
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < -maxOffset {
		offset = -maxOffset
	}
	return center + offset*AimDamping
}
