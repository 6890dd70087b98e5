package transform

import (
	"time"

	"github.com/mpapenbr/paceviz/pkg/model"
)

const DefaultSpeedFactor = 100.0

type (
	Config struct {
		SpeedFactor float64
		Category    model.Category
		Now         func() time.Time
	}
	Option func(*Config)
)

// WithSpeedFactor sets the percentage applied to reference records.
// Values outside (0,100] are ignored.
func WithSpeedFactor(f float64) Option {
	return func(c *Config) {
		c.SpeedFactor = f
	}
}

// WithCategory tags user records, either model.CategoryMine or model.CategoryRival
func WithCategory(cat model.Category) Option {
	return func(c *Config) {
		c.Category = cat
	}
}

// WithClock provides the time source for the year of user records
func WithClock(now func() time.Time) Option {
	return func(c *Config) {
		c.Now = now
	}
}

func newConfig(opts ...Option) *Config {
	c := &Config{
		SpeedFactor: DefaultSpeedFactor,
		Category:    model.CategoryMine,
		Now:         time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if !ValidSpeedFactor(c.SpeedFactor) {
		c.SpeedFactor = DefaultSpeedFactor
	}
	if !c.Category.IsUser() {
		c.Category = model.CategoryMine
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return c
}

func ValidSpeedFactor(f float64) bool {
	return f > 0 && f <= 100
}
