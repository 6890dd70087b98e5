// Package axis computes axis ticks and domains for the pace chart.
//
// The y-axis shows pace in seconds per km. Lower values are faster, so the
// ticks produced here are meant for a reversed scale: the renderer has to
// place the smallest tick at the top.
package axis

import (
	"math"
	"sort"

	"github.com/samber/lo"

	"github.com/mpapenbr/paceviz/pkg/model"
	"github.com/mpapenbr/paceviz/pkg/pace"
)

const (
	YStep     = 30.0 // seconds
	XPadding  = 0.1  // log10 units on both sides
	MaxYTicks = 50   // larger ranges use a multiple of YStep
	defaultLo = 90.0
	defaultHi = 300.0
)

type Tick struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// DefaultYTicks is used when there are no points to display
func DefaultYTicks() []float64 {
	return stepped(defaultLo, defaultHi)
}

// YTicks returns every multiple of YStep from the floored minimum pace to the
// ceiled maximum pace, inclusive. If that would exceed MaxYTicks the step is
// widened to the smallest multiple of YStep that fits.
func YTicks(points []model.PlotPoint) []float64 {
	minPace, maxPace, ok := paceRange(points)
	if !ok {
		return DefaultYTicks()
	}
	return stepped(
		math.Floor(minPace/YStep)*YStep,
		math.Ceil(maxPace/YStep)*YStep)
}

// YDomain returns the first and last tick
func YDomain(points []model.PlotPoint) (lower, upper float64) {
	ticks := YTicks(points)
	return ticks[0], ticks[len(ticks)-1]
}

// YTickLabels renders ticks as m:ss
func YTickLabels(ticks []float64) []Tick {
	return lo.Map(ticks, func(v float64, _ int) Tick {
		return Tick{Value: v, Label: pace.Format(v)}
	})
}

// XTicks returns one tick per distinct log distance, ascending.
func XTicks(points []model.PlotPoint) []Tick {
	values := lo.Uniq(lo.Map(points, func(p model.PlotPoint, _ int) float64 {
		return p.LogDistance
	}))
	sort.Float64s(values)
	return lo.Map(values, func(v float64, _ int) Tick {
		return Tick{Value: v, Label: model.LogDistanceLabel(v)}
	})
}

// XDomain pads the log distance range by XPadding. ok is false for no points.
func XDomain(points []model.PlotPoint) (lower, upper float64, ok bool) {
	if len(points) == 0 {
		return 0, 0, false
	}
	lower, upper = math.Inf(1), math.Inf(-1)
	for _, p := range points {
		lower = math.Min(lower, p.LogDistance)
		upper = math.Max(upper, p.LogDistance)
	}
	return lower - XPadding, upper + XPadding, true
}

func paceRange(points []model.PlotPoint) (minPace, maxPace float64, ok bool) {
	minPace, maxPace = math.Inf(1), math.Inf(-1)
	for _, p := range points {
		if !pace.Valid(p.Pace) {
			continue
		}
		minPace = math.Min(minPace, p.Pace)
		maxPace = math.Max(maxPace, p.Pace)
		ok = true
	}
	return minPace, maxPace, ok
}

func stepped(from, to float64) []float64 {
	step := YStep
	if intervals := math.Round((to - from) / YStep); intervals > MaxYTicks-1 {
		step *= math.Ceil(intervals / (MaxYTicks - 1))
	}
	n := int(math.Ceil((to-from)/step-1e-9)) + 1
	ret := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		ret = append(ret, from+float64(i)*step)
	}
	return ret
}
