package utils

import "math"

// RoundCents rounds a monetary amount to two decimal places, half away
// from zero at the cent boundary.
func RoundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
