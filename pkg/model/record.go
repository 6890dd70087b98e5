package model

import (
	"fmt"
	"strconv"
)

type Category string

const (
	CategoryMale   Category = "male"
	CategoryFemale Category = "female"
	CategoryMine   Category = "mine"
	CategoryRival  Category = "rival"
)

var Categories = []Category{CategoryMale, CategoryFemale, CategoryMine, CategoryRival}

// IsReference reports whether c holds world record data
func (c Category) IsReference() bool {
	return c == CategoryMale || c == CategoryFemale
}

func (c Category) IsUser() bool {
	return c == CategoryMine || c == CategoryRival
}

func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

type (
	// RawRecord is a single performance as entered or published.
	// Distance is in meters, Time uses the h:mm:ss.ff notation.
	RawRecord struct {
		Distance float64 `json:"distance" yaml:"distance"`
		Name     string  `json:"name" yaml:"name"`
		Year     int     `json:"year" yaml:"year"`
		Time     string  `json:"time" yaml:"time"`
	}

	// PlotPoint is a RawRecord enriched with the values needed for plotting.
	// Pace is seconds per km, LogDistance is log10(Distance).
	PlotPoint struct {
		RawRecord
		TimeSeconds     float64  `json:"timeSeconds"`
		Pace            float64  `json:"pace"`
		LogDistance     float64  `json:"logDistance"`
		DisplayDistance string   `json:"displayDistance"`
		Category        Category `json:"category"`
	}

	// UserRecordSet maps a distance key (meters, decimal notation) to a time string.
	UserRecordSet map[string]string
)

// DistanceKey returns the key used in a UserRecordSet for distance d
func DistanceKey(d float64) string {
	return strconv.FormatFloat(d, 'f', -1, 64)
}
