package mathutil

import "math"

// Round rounds value to the given number of decimal places, half away from
// zero.
func Round(value float64, decimals int) float64 {
	shift := math.Pow(10, float64(decimals))
	return math.Round(value*shift) / shift
}

// SafeDiv divides num by den, returning zero for a zero denominator.
func SafeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
