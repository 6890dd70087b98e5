// Package compare relates user performances to the world records.
package compare

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mpapenbr/paceviz/log"
	"github.com/mpapenbr/paceviz/pkg/model"
	"github.com/mpapenbr/paceviz/pkg/pace"
	"github.com/mpapenbr/paceviz/pkg/racetime"
)

var ErrInvalidPace = errors.New("invalid pace")

var hundred = decimal.NewFromInt(100)

type (
	Comparison struct {
		Against       model.Category  `json:"against"`
		Record        model.RawRecord `json:"record"`
		ReferencePace float64         `json:"referencePace"`
		Percent       decimal.Decimal `json:"-"`
		PercentText   string          `json:"percent"`
	}

	// Inspection is the detail payload of a single selected point
	Inspection struct {
		Point       model.PlotPoint `json:"point"`
		Title       string          `json:"title"`
		Time        string          `json:"time"`
		RecordTime  string          `json:"recordTime,omitempty"` // unslowed time of a reference point
		Pace        string          `json:"pace"`
		Comparisons []Comparison    `json:"comparisons,omitempty"`
	}

	Engine struct {
		tables model.RecordTables
		l      *log.Logger
	}
	Option func(*Engine)
)

func WithTables(t model.RecordTables) Option {
	return func(e *Engine) {
		e.tables = t
	}
}

func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		e.l = l
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		tables: model.WorldRecords,
		l:      log.Default().Named("compare"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// PercentOfRecord returns referencePace/targetPace as a percentage rounded
// to one decimal place. Values above 100 mean the target is faster.
func PercentOfRecord(targetPace, referencePace float64) (decimal.Decimal, error) {
	if !pace.Valid(targetPace) || !pace.Valid(referencePace) {
		return decimal.Zero, fmt.Errorf("%w: target=%v reference=%v",
			ErrInvalidPace, targetPace, referencePace)
	}
	ratio := decimal.NewFromFloat(referencePace).Div(decimal.NewFromFloat(targetPace))
	return ratio.Mul(hundred).Round(1), nil
}

// Compare computes the percentages against the male and female records at
// exactly the distance of p. Missing records are omitted.
// Only user points are compared.
func (e *Engine) Compare(p model.PlotPoint) []Comparison {
	if !p.Category.IsUser() {
		return nil
	}
	ret := make([]Comparison, 0, 2)
	for _, cat := range []model.Category{model.CategoryMale, model.CategoryFemale} {
		rec, ok := e.tables.Find(cat, p.Distance)
		if !ok {
			continue
		}
		refPace := pace.Pace(rec.Distance, racetime.ParseTime(rec.Time))
		pct, err := PercentOfRecord(p.Pace, refPace)
		if err != nil {
			e.l.Debug("no comparison",
				log.String("against", string(cat)),
				log.Float64("distance", p.Distance),
				log.ErrorField(err))
			continue
		}
		ret = append(ret, Comparison{
			Against:       cat,
			Record:        rec,
			ReferencePace: refPace,
			Percent:       pct,
			PercentText:   pct.StringFixed(1),
		})
	}
	return ret
}

// Inspect assembles the detail data shown for a selected point
func (e *Engine) Inspect(p model.PlotPoint) Inspection {
	ret := Inspection{
		Point: p,
		Title: title(p),
		Time:  racetime.FormatTime(p.TimeSeconds),
		Pace:  pace.FormatPerKm(p.Pace),
	}
	if p.Category.IsUser() {
		ret.Comparisons = e.Compare(p)
	}
	if p.Category.IsReference() {
		if rt := racetime.FormatTime(racetime.ParseTime(p.Time)); rt != ret.Time {
			ret.RecordTime = rt
		}
	}
	return ret
}

// Select finds the point with exactly the given distance and category
func Select(points []model.PlotPoint, distance float64, cat model.Category) (model.PlotPoint, bool) {
	for _, p := range points {
		if p.Distance == distance && p.Category == cat {
			return p, true
		}
	}
	return model.PlotPoint{}, false
}

func title(p model.PlotPoint) string {
	switch p.Category {
	case model.CategoryMine:
		return p.DisplayDistance + " - My PB"
	case model.CategoryRival:
		return p.DisplayDistance + " - Rival PB"
	case model.CategoryMale, model.CategoryFemale:
		return p.DisplayDistance
	}
	return p.DisplayDistance
}
