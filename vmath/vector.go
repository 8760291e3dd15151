package vmath

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vec is the planar vector shared by every simulation package
type Vec = r2.Vec

// V builds a Vec from components
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Magnitude returns Euclidean length
func Magnitude(v Vec) float64 {
	return r2.Norm(v)
}

// MagnitudeSq returns squared length without sqrt
func MagnitudeSq(v Vec) float64 {
	return r2.Norm2(v)
}

// Distance returns Euclidean distance between two points
func Distance(a, b Vec) float64 {
	return r2.Norm(r2.Sub(a, b))
}

// Normalize returns unit vector, zero-safe
// r2.Unit divides by zero for the zero vector, this returns zero instead
func Normalize(v Vec) Vec {
	mag := r2.Norm(v)
	if mag == 0 || !isFinite(mag) {
		return Vec{}
	}
	return r2.Scale(1/mag, v)
}

// WithMagnitude returns v rescaled to length mag, zero stays zero
func WithMagnitude(v Vec, mag float64) Vec {
	return r2.Scale(mag, Normalize(v))
}

// ClampMagnitude limits vector to maxMag while preserving direction
// Returns unchanged vector if magnitude <= maxMag
func ClampMagnitude(v Vec, maxMag float64) Vec {
	magSq := r2.Norm2(v)
	if magSq <= maxMag*maxMag || magSq == 0 {
		return v
	}
	return r2.Scale(maxMag/math.Sqrt(magSq), v)
}

// Perpendicular returns vector rotated 90° counter-clockwise
func Perpendicular(v Vec) Vec {
	return Vec{X: -v.Y, Y: v.X}
}

// Polar returns the point at angle (radians) and radius around center
func Polar(center Vec, radius, angle float64) Vec {
	return Vec{
		X: center.X + math.Cos(angle)*radius,
		Y: center.Y + math.Sin(angle)*radius,
	}
}

// Lerp interpolates between a and b, t in [0,1]
func Lerp(a, b Vec, t float64) Vec {
	return r2.Add(a, r2.Scale(t, r2.Sub(b, a)))
}

// IsFinite reports whether both components are neither NaN nor Inf
func IsFinite(v Vec) bool {
	return isFinite(v.X) && isFinite(v.Y)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
