package gamemath

import "math"

// WrapCentered wraps x into [-size/2, size/2). Values already in range are
// returned unchanged, so wrapping is idempotent.
func WrapCentered(x, size float64) float64 {
	if size <= 0 {
		return x
	}
	half := size / 2
	if x >= -half && x < half {
		return x
	}
	// Euclidean remainder so that negative overflow wraps to the positive edge.
	r := math.Mod(x+half, size)
	if r < 0 {
		r += size
	}
	// math.Mod can return size itself for tiny negative inputs after the correction.
	if r >= size {
		r = 0
	}
	return r - half
}
