package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mpapenbr/paceviz/log"
	"github.com/mpapenbr/paceviz/pkg/axis"
	"github.com/mpapenbr/paceviz/pkg/compare"
	"github.com/mpapenbr/paceviz/pkg/model"
	"github.com/mpapenbr/paceviz/pkg/series"
	"github.com/mpapenbr/paceviz/pkg/transform"
)

var (
	ErrInvalidSpeedFactor = errors.New("speed factor must be in (0,100]")
	ErrPointNotFound      = errors.New("point not found")
)

const (
	DefaultMineName  = "Me"
	DefaultRivalName = "Rival"
)

type (
	ChartService struct {
		tables model.RecordTables
		now    func() time.Time
		engine *compare.Engine
	}
	ChartServiceOption func(*ChartService)
)

func WithTables(t model.RecordTables) ChartServiceOption {
	return func(s *ChartService) {
		s.tables = t
	}
}

func WithClock(now func() time.Time) ChartServiceOption {
	return func(s *ChartService) {
		s.now = now
	}
}

func NewChartService(opts ...ChartServiceOption) *ChartService {
	s := &ChartService{
		tables: model.WorldRecords,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.engine = compare.NewEngine(compare.WithTables(s.tables))
	return s
}

// Build transforms all record sources and assembles the visible series together
// with the axis data computed from the visible points only.
func (s *ChartService) Build(ctx context.Context, req *ChartRequest) (*ChartData, error) {
	l := log.GetFromContext(ctx).Named("service")
	factor := req.SpeedFactor
	if factor == 0 {
		factor = transform.DefaultSpeedFactor
	}
	if !transform.ValidSpeedFactor(factor) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpeedFactor, req.SpeedFactor)
	}

	male := transform.Reference(s.tables.Male, model.CategoryMale,
		transform.WithSpeedFactor(factor))
	female := transform.Reference(s.tables.Female, model.CategoryFemale,
		transform.WithSpeedFactor(factor))
	mine := transform.UserSet(req.Mine, nameOrDefault(req.MineName, DefaultMineName),
		transform.WithCategory(model.CategoryMine), transform.WithClock(s.now))
	rival := transform.UserSet(req.Rival, nameOrDefault(req.RivalName, DefaultRivalName),
		transform.WithCategory(model.CategoryRival), transform.WithClock(s.now))

	composed := series.Compose(
		series.NewInput(model.CategoryMale, male, req.ShowMale),
		series.NewInput(model.CategoryFemale, female, req.ShowFemale),
		series.NewInput(model.CategoryMine, mine, req.ShowMine),
		series.NewInput(model.CategoryRival, rival, req.ShowRival),
	)
	visible := series.AllPoints(composed)

	// hidden series do not contribute ticks, the axes follow what is drawn
	ret := &ChartData{
		Series:   composed,
		YTicks:   axis.YTickLabels(axis.YTicks(visible)),
		Reversed: true,
		XTicks:   axis.XTicks(visible),
	}
	ret.YMin, ret.YMax = axis.YDomain(visible)
	if lower, upper, ok := axis.XDomain(visible); ok {
		ret.XMin, ret.XMax = lower, upper
	}
	l.Debug("chart data built",
		log.Int("series", len(composed)),
		log.Int("points", len(visible)),
		log.Float64("speedFactor", factor),
		log.Float64("yMin", ret.YMin),
		log.Float64("yMax", ret.YMax))
	return ret, nil
}

// Inspect returns the detail data of the visible point at distance within category
func (s *ChartService) Inspect(
	ctx context.Context,
	data *ChartData,
	distance float64,
	cat model.Category,
) (*compare.Inspection, error) {
	p, ok := compare.Select(series.AllPoints(data.Series), distance, cat)
	if !ok {
		log.GetFromContext(ctx).Named("service").Debug("no point selected",
			log.Float64("distance", distance),
			log.String("category", string(cat)))
		return nil, fmt.Errorf("%w: %s at %sm", ErrPointNotFound, cat, model.DistanceKey(distance))
	}
	ret := s.engine.Inspect(p)
	return &ret, nil
}

func nameOrDefault(name, def string) string {
	if name == "" {
		return def
	}
	return name
}
