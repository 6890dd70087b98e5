// Package transform turns raw records into plot points.
//
// Records with an unparsable time or a non-positive distance are dropped
// silently. They are logged at debug level only.
package transform

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/mpapenbr/paceviz/log"
	"github.com/mpapenbr/paceviz/pkg/model"
	"github.com/mpapenbr/paceviz/pkg/pace"
	"github.com/mpapenbr/paceviz/pkg/racetime"
)

// Reference converts world record tables into plot points, keeping the input order.
// The speed factor inflates the times by 100/factor for male and female records only.
func Reference(
	records []model.RawRecord,
	category model.Category,
	opts ...Option,
) []model.PlotPoint {
	cfg := newConfig(opts...)
	factor := 1.0
	if category.IsReference() {
		factor = DefaultSpeedFactor / cfg.SpeedFactor
	}
	l := log.Default().Named("transform")
	return lo.FilterMap(records, func(r model.RawRecord, _ int) (model.PlotPoint, bool) {
		secs, err := racetime.ParseSeconds(r.Time)
		if err != nil {
			l.Debug("skipping record", log.String("name", r.Name), log.ErrorField(err))
			return model.PlotPoint{}, false
		}
		return newPoint(r, secs*factor, category)
	})
}

// UserSet converts a user record set into plot points ordered by descending distance.
// Entries with a blank time are treated as absent.
func UserSet(
	set model.UserRecordSet,
	displayName string,
	opts ...Option,
) []model.PlotPoint {
	cfg := newConfig(opts...)
	year := cfg.Now().Year()
	l := log.Default().Named("transform")

	keys := lo.Keys(set)
	sort.Strings(keys)
	ret := make([]model.PlotPoint, 0, len(set))
	for _, key := range keys {
		t := set[key]
		if strings.TrimSpace(t) == "" {
			continue
		}
		d, err := strconv.ParseFloat(strings.TrimSpace(key), 64)
		if err != nil {
			l.Debug("skipping distance", log.String("key", key), log.ErrorField(err))
			continue
		}
		secs, err := racetime.ParseSeconds(t)
		if err != nil {
			l.Debug("skipping record", log.String("key", key), log.ErrorField(err))
			continue
		}
		r := model.RawRecord{Distance: d, Name: displayName, Year: year, Time: t}
		if p, ok := newPoint(r, secs, cfg.Category); ok {
			ret = append(ret, p)
		}
	}
	sort.SliceStable(ret, func(i, j int) bool {
		return ret[i].Distance > ret[j].Distance
	})
	return ret
}

func newPoint(r model.RawRecord, secs float64, category model.Category) (model.PlotPoint, bool) {
	if !(r.Distance > 0) || math.IsInf(r.Distance, 0) {
		return model.PlotPoint{}, false
	}
	p := pace.Pace(r.Distance, secs)
	if !pace.Valid(p) {
		return model.PlotPoint{}, false
	}
	return model.PlotPoint{
		RawRecord:       r,
		TimeSeconds:     secs,
		Pace:            p,
		LogDistance:     math.Log10(r.Distance),
		DisplayDistance: model.DisplayDistance(r.Distance),
		Category:        category,
	}, true
}
