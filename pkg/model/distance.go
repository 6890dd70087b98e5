package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// StandardDistances lists the distances offered for record entry (meters)
var StandardDistances = []float64{
	100, 200, 400, 800, 1000, 1500, 5000, 10000, 21097.5, 42195,
}

//nolint:gochecknoglobals // lookup table
var DistanceLabels = map[float64]string{
	100:     "100m",
	200:     "200m",
	400:     "400m",
	800:     "800m",
	1000:    "1000m",
	1500:    "1500m",
	5000:    "5000m",
	10000:   "10000m",
	21097.5: "Half",
	42195:   "Full",
}

// DisplayDistance returns the short label for a distance, "<distance>m" if unknown.
func DisplayDistance(d float64) string {
	if label, ok := DistanceLabels[d]; ok {
		return label
	}
	return DistanceKey(d) + "m"
}

// LogDistanceLabel converts a log10 distance back to a label.
// The distance is rounded to 0.1m before the lookup, unknown ones to whole meters.
func LogDistanceLabel(logDistance float64) string {
	d := math.Pow(10, logDistance)
	if label, ok := DistanceLabels[math.Round(d*10)/10]; ok {
		return label
	}
	return strconv.FormatFloat(math.Round(d), 'f', 0, 64) + "m"
}

// ParseDistance accepts a label ("Half", "5000m") or meters ("21097.5")
func ParseDistance(s string) (float64, error) {
	s = strings.TrimSpace(s)
	for d, label := range DistanceLabels {
		if strings.EqualFold(label, s) {
			return d, nil
		}
	}
	d, err := strconv.ParseFloat(strings.TrimSuffix(strings.ToLower(s), "m"), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid distance %q", s)
	}
	if !(d > 0) || math.IsInf(d, 0) {
		return 0, fmt.Errorf("invalid distance %q", s)
	}
	return d, nil
}
