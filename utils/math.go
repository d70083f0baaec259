// Package utils contains small numeric helpers shared across the planning packages.
package utils

import (
	"gonum.org/v1/gonum/floats/scalar"
)

// Square returns n*n.
func Square(n float64) float64 {
	return n * n
}

// Sign returns 1 for positive values, -1 for negative values, and 0 otherwise.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Float64AlmostEqual compares two float64s and returns if the difference between them is less than epsilon.
func Float64AlmostEqual(a, b, epsilon float64) bool {
	return scalar.EqualWithinAbs(a, b, epsilon)
}
