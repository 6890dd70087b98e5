package pace

import (
	"fmt"
	"math"
)

// Pace returns seconds per kilometer. NaN if distance is not positive.
func Pace(distanceMeters, seconds float64) float64 {
	if !(distanceMeters > 0) {
		return math.NaN()
	}
	return seconds / (distanceMeters / 1000)
}

// Valid reports whether p is a usable pace value
func Valid(p float64) bool {
	return !math.IsNaN(p) && !math.IsInf(p, 0) && p > 0
}

// Format renders a pace as m:ss, both parts truncated.
func Format(secondsPerKm float64) string {
	if math.IsNaN(secondsPerKm) || math.IsInf(secondsPerKm, 0) || secondsPerKm < 0 {
		return ""
	}
	minutes := int(math.Floor(secondsPerKm / 60))
	seconds := int(math.Floor(math.Mod(secondsPerKm, 60)))
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

func FormatPerKm(secondsPerKm float64) string {
	if s := Format(secondsPerKm); s != "" {
		return s + "/km"
	}
	return ""
}
