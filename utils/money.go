package utils

import "math"

// Round2 rounds to 2 decimal places. Internally all money stays unrounded so
// rounding error never compounds; this is for display values only.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
