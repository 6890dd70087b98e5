package series

import (
	"slices"

	"github.com/samber/lo"

	"github.com/mpapenbr/paceviz/pkg/model"
)

// color tokens used by the default series
const (
	ColorMale   = "#2563eb"
	ColorFemale = "#db2777"
	ColorMine   = "#16a34a"
	ColorRival  = "#ea580c"
)

//nolint:gochecknoglobals // lookup table
var (
	DefaultColors = map[model.Category]string{
		model.CategoryMale:   ColorMale,
		model.CategoryFemale: ColorFemale,
		model.CategoryMine:   ColorMine,
		model.CategoryRival:  ColorRival,
	}
	DefaultLabels = map[model.Category]string{
		model.CategoryMale:   "Men WRs",
		model.CategoryFemale: "Women WRs",
		model.CategoryMine:   "My PBs",
		model.CategoryRival:  "Rival PBs",
	}
)

type (
	Input struct {
		Label   string
		Color   string
		Points  []model.PlotPoint
		Visible bool
	}

	Series struct {
		ID      string            `json:"id"`
		Color   string            `json:"color"`
		Points  []model.PlotPoint `json:"points"`
		FitLine []model.PlotPoint `json:"fitLine,omitempty"`
	}
)

// NewInput creates an input using the default label and color of a category
func NewInput(cat model.Category, points []model.PlotPoint, visible bool) Input {
	return Input{
		Label:   DefaultLabels[cat],
		Color:   DefaultColors[cat],
		Points:  points,
		Visible: visible,
	}
}

// Compose keeps the order of the inputs and skips invisible or empty ones.
func Compose(inputs ...Input) []Series {
	return lo.FilterMap(inputs, func(in Input, _ int) (Series, bool) {
		if !in.Visible || len(in.Points) == 0 {
			return Series{}, false
		}
		s := Series{
			ID:     in.Label,
			Color:  in.Color,
			Points: slices.Clone(in.Points),
		}
		if len(in.Points) > 1 {
			s.FitLine = FitLine(in.Points)
		}
		return s, true
	})
}

// FitLine returns a copy of the points ordered by ascending log distance
func FitLine(points []model.PlotPoint) []model.PlotPoint {
	if len(points) == 0 {
		return []model.PlotPoint{}
	}
	ret := slices.Clone(points)
	slices.SortStableFunc(ret, func(a, b model.PlotPoint) int {
		switch {
		case a.LogDistance < b.LogDistance:
			return -1
		case a.LogDistance > b.LogDistance:
			return 1
		}
		return 0
	})
	return ret
}

func (s Series) HasFitLine() bool {
	return len(s.Points) > 1
}

// AllPoints flattens the points of all series
func AllPoints(s []Series) []model.PlotPoint {
	return lo.FlatMap(s, func(item Series, _ int) []model.PlotPoint {
		return item.Points
	})
}
