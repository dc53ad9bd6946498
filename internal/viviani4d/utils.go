package viviani4d

import (
	"math"
)

// Real is the floating point type used by all float geometry.
type Real = float64

func isFinite(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func clamp(x, lo, hi Real) Real {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// linspace returns n values evenly spaced over [a, b], both ends included.
func linspace(a, b Real, n int) []Real {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []Real{a}
	}
	out := make([]Real, n)
	step := (b - a) / Real(n-1)
	for i := range out {
		out[i] = a + Real(i)*step
	}
	out[n-1] = b
	return out
}
