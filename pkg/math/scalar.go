package math

import "math"

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * math.Pi / 180
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// Sin returns the sine of x (radians).
func Sin(x float32) float32 { return float32(math.Sin(float64(x))) }

// Cos returns the cosine of x (radians).
func Cos(x float32) float32 { return float32(math.Cos(float64(x))) }
