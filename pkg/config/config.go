package config

import (
	"fmt"

	"github.com/mpapenbr/paceviz/pkg/transform"
)

// this holds the resolved configuration values from CLI
//
//nolint:lll // readablity
var (
	RecordsFile  string  // path to the yaml file holding the user records
	LogLevel     string  // sets the log level (zap log level values)
	LogFormat    string  // text vs json
	SpeedFactor  float64 // percentage applied to world record times
	ShowMale     bool    // show men's world records
	ShowFemale   bool    // show women's world records
	ShowMine     bool    // show own records
	ShowRival    bool    // show rival records
	OutputFile   string  // where to write the chart, "-" for stdout
	OutputFormat string  // png, svg or json
	Width        int     // chart width in pixels
	Height       int     // chart height in pixels
	NoColor      bool    // disable colored terminal output
)

// ValidateSpeedFactor checks the configured speed factor
func ValidateSpeedFactor() error {
	if !transform.ValidSpeedFactor(SpeedFactor) {
		return fmt.Errorf("invalid speed-factor %v: must be in (0,100]", SpeedFactor)
	}
	return nil
}
