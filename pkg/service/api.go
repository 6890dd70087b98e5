package service

import (
	"github.com/mpapenbr/paceviz/pkg/axis"
	"github.com/mpapenbr/paceviz/pkg/model"
	"github.com/mpapenbr/paceviz/pkg/series"
)

type ChartRequest struct {
	ShowMale    bool                `json:"showMale"`
	ShowFemale  bool                `json:"showFemale"`
	ShowMine    bool                `json:"showMine"`
	ShowRival   bool                `json:"showRival"`
	SpeedFactor float64             `json:"speedFactor"` // 0 means 100
	Mine        model.UserRecordSet `json:"mine"`
	MineName    string              `json:"mineName"`
	Rival       model.UserRecordSet `json:"rival"`
	RivalName   string              `json:"rivalName"`
}

// ChartData is the chart ready payload handed to a renderer.
// The y-axis is meant to be drawn reversed (faster paces on top).
type ChartData struct {
	Series   []series.Series `json:"series"`
	YTicks   []axis.Tick     `json:"yTicks"`
	YMin     float64         `json:"yMin"`
	YMax     float64         `json:"yMax"`
	Reversed bool            `json:"reversed"`
	XTicks   []axis.Tick     `json:"xTicks"`
	XMin     float64         `json:"xMin"`
	XMax     float64         `json:"xMax"`
}

// Empty reports whether no series is visible
func (d *ChartData) Empty() bool {
	return len(d.Series) == 0
}
