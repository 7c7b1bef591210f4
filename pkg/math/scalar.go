package math

import "golang.org/x/exp/constraints"

// Clamp limits x to the closed range [lo, hi].
func Clamp[T constraints.Integer | constraints.Float](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Lerp returns a + t*(b-a).
func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// Smoothstep applies the cubic ease t²(3-2t). t is expected in [0, 1].
func Smoothstep(t float32) float32 {
	return t * t * (3 - 2*t)
}
