// Package pricing builds the ordered surcharge breakdown for a resolved
// catalog row and applies the two-tier rounding policy.
package pricing

import "math"

// RoundUpToHundred rounds a positive amount up to the next hundred.
// Non-positive and non-finite inputs round to 0. This is applied
// exactly once, to the grand total.
func RoundUpToHundred(n float64) float64 {
	if n <= 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return math.Ceil(n/100) * 100
}

// roundPercent rounds a percentage surcharge to the nearest whole
// currency unit at computation time; the rounded value is what enters
// the breakdown and the total.
func roundPercent(base, percent float64) float64 {
	return math.Round(base * percent / 100)
}
