package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSpeedFactor(t *testing.T) {
	defer func(v float64) { SpeedFactor = v }(SpeedFactor)
	for _, v := range []float64{100, 50, 0.5} {
		SpeedFactor = v
		assert.NoError(t, ValidateSpeedFactor(), "value %v", v)
	}
	for _, v := range []float64{0, -1, 100.5} {
		SpeedFactor = v
		assert.Error(t, ValidateSpeedFactor(), "value %v", v)
	}
}
