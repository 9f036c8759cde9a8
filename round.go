package countvec

import "math"

// RoundHalfAwayFromZero rounds x to the nearest integer, moving ties at .5
// to the larger magnitude: 2.5 -> 3, -2.5 -> -3, 0.5 -> 1, -0.5 -> -1.
//
// Non-negative values are computed as floor(x+0.5) and negative values as
// ceil(x-0.5), which is the rule the int packers apply.
func RoundHalfAwayFromZero(x float64) float64 {
	if x >= 0 {
		return math.Floor(x + 0.5)
	}
	return math.Ceil(x - 0.5)
}
