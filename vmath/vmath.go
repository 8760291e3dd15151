// Package vmath holds the small float geometry layer over gonum's r2 vectors
// used by steering, path queries and rendering.
package vmath

import "math"

const (
	TwoPi = 2 * math.Pi

	// Epsilon is the tolerance used for geometric degeneracy checks
	Epsilon = 1e-9
)

// Clamp restricts x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// WrapIndex maps any integer index onto [0, n)
func WrapIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// FiniteOr returns f when finite, otherwise fallback
func FiniteOr(f, fallback float64) float64 {
	if isFinite(f) {
		return f
	}
	return fallback
}

// SqrtScale maps domain [d0, d1] onto range [r0, r1] with exponent 0.5
// Values outside the domain are clamped; a degenerate domain maps to r0
func SqrtScale(v, d0, d1, r0, r1 float64) float64 {
	if d1 <= d0 {
		return r0
	}
	v = Clamp(v, d0, d1)
	s0 := math.Sqrt(d0)
	s1 := math.Sqrt(d1)
	t := (math.Sqrt(v) - s0) / (s1 - s0)
	return r0 + (r1-r0)*t
}
