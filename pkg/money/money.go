// Package money provides the fixed-precision arithmetic rules shared by the
// ledger and the settlement pipeline. All persisted monetary values carry
// 8 decimal places; comparisons absorb binary-fraction rounding through a
// fixed tolerance that is far smaller than one satoshi-equivalent unit.
package money

import "math"

// Precision is the number of decimal places every persisted amount carries.
const Precision = 8

// Tolerance absorbs float64 rounding noise in balance comparisons. It must
// stay well below 10^-Precision so it can never hide a real shortfall.
const Tolerance = 1e-10

const scale = 1e8

// Round rounds v to 8 decimal places, half away from zero.
func Round(v float64) float64 {
	return math.Round(v*scale) / scale
}

// GTE reports whether a >= b within Tolerance.
func GTE(a, b float64) bool {
	return a >= b-Tolerance
}

// Equal reports whether a and b agree within Tolerance.
func Equal(a, b float64) bool {
	return math.Abs(a-b) <= Tolerance
}
