package vmath

import "math"

// Magnitude returns the Euclidean length of (x, y)
func Magnitude(x, y float32) float32 {
	return float32(math.Sqrt(float64(x*x + y*y)))
}

// Normalize2D returns the unit vector of (x, y), zero-safe
func Normalize2D(x, y float32) (nx, ny float32) {
	mag := Magnitude(x, y)
	if mag == 0 {
		return 0, 0
	}
	return x / mag, y / mag
}

// Signum returns 1 or -1 following the sign bit, so -0 yields -1
func Signum(f float32) float32 {
	return float32(math.Copysign(1, float64(f)))
}

// Min returns the smaller of a and b
func Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// Abs returns |f|
func Abs(f float32) float32 {
	return float32(math.Abs(float64(f)))
}
