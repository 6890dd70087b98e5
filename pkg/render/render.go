// Package render draws chart data with go-chart.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/mpapenbr/paceviz/pkg/axis"
	"github.com/mpapenbr/paceviz/pkg/series"
	"github.com/mpapenbr/paceviz/pkg/service"
)

type Format string

const (
	FormatPNG  Format = "png"
	FormatSVG  Format = "svg"
	FormatJSON Format = "json"
)

var ErrNothingToRender = errors.New("no data to display")

type Options struct {
	Format Format
	Width  int
	Height int
	Title  string
}

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatPNG, FormatSVG, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("unsupported format %q", s)
}

// Render writes data in the requested format to w
func Render(w io.Writer, data *service.ChartData, opts Options) error {
	switch opts.Format {
	case FormatJSON:
		return WriteJSON(w, data)
	case FormatSVG:
		return draw(w, data, opts, chart.SVG)
	case FormatPNG, "":
		return draw(w, data, opts, chart.PNG)
	}
	return fmt.Errorf("unsupported format %q", opts.Format)
}

func WriteJSON(w io.Writer, data *service.ChartData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func draw(w io.Writer, data *service.ChartData, opts Options, rp chart.RendererProvider) error {
	if data.Empty() {
		return ErrNothingToRender
	}
	ch := Chart(data, opts)
	return ch.Render(rp, w)
}

// Chart builds the go-chart definition. Pace is drawn on a descending
// y-axis so faster paces appear on top.
func Chart(data *service.ChartData, opts Options) chart.Chart {
	yMin, yMax := data.YMin, data.YMax
	if yMax <= yMin {
		yMax = yMin + axis.YStep
	}
	ch := chart.Chart{
		Title:  opts.Title,
		Width:  opts.Width,
		Height: opts.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: chart.XAxis{
			Name:  "Distance",
			Range: &chart.ContinuousRange{Min: data.XMin, Max: data.XMax},
			Ticks: toTicks(data.XTicks),
		},
		YAxis: chart.YAxis{
			Name:  "Pace (min/km)",
			Range: &chart.ContinuousRange{Min: yMin, Max: yMax, Descending: data.Reversed},
			Ticks: toTicks(data.YTicks),
		},
	}
	for _, s := range data.Series {
		ch.Series = append(ch.Series, toSeries(s))
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch
}

// toSeries draws the markers and, with 2+ points, the fit line through them.
func toSeries(s series.Series) chart.ContinuousSeries {
	col := Color(s.Color)
	points := s.Points
	style := chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    4,
		DotColor:    col,
	}
	if s.HasFitLine() {
		points = s.FitLine
		style.StrokeWidth = 1.5
		style.StrokeColor = col.WithAlpha(160)
	}
	ret := chart.ContinuousSeries{
		Name:    s.ID,
		Style:   style,
		XValues: make([]float64, 0, len(points)),
		YValues: make([]float64, 0, len(points)),
	}
	for _, p := range points {
		ret.XValues = append(ret.XValues, p.LogDistance)
		ret.YValues = append(ret.YValues, p.Pace)
	}
	return ret
}

// Color converts a #rrggbb color token
func Color(token string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(token, "#"))
}

func toTicks(ticks []axis.Tick) []chart.Tick {
	ret := make([]chart.Tick, 0, len(ticks))
	for _, t := range ticks {
		ret = append(ret, chart.Tick{Value: t.Value, Label: t.Label})
	}
	return ret
}
