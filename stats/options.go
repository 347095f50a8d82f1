package stats

import (
	"slices"

	"github.com/arloliu/varistat/internal/options"
)

// SpecLimits groups the optional specification limits of a characteristic.
type SpecLimits struct {
	USL    *float64 `yaml:"usl" json:"usl"`
	LSL    *float64 `yaml:"lsl" json:"lsl"`
	Target *float64 `yaml:"target" json:"target"`
}

// Config holds the inputs of Calculate besides the sample itself.
type Config struct {
	Limits SpecLimits
	Grades []GradeBand
}

// Option configures Calculate.
type Option = options.Option[*Config]

// WithUSL sets the upper specification limit.
func WithUSL(usl float64) Option {
	return options.NoError(func(c *Config) {
		c.Limits.USL = &usl
	})
}

// WithLSL sets the lower specification limit.
func WithLSL(lsl float64) Option {
	return options.NoError(func(c *Config) {
		c.Limits.LSL = &lsl
	})
}

// WithTarget sets the nominal target. It is carried into the result for
// display and does not affect any index.
func WithTarget(target float64) Option {
	return options.NoError(func(c *Config) {
		c.Limits.Target = &target
	})
}

// WithSpecLimits replaces all three limits at once; nil fields clear the limit.
func WithSpecLimits(limits SpecLimits) Option {
	return options.NoError(func(c *Config) {
		c.Limits = cloneLimits(limits)
	})
}

// WithGrades sets the ordered grade bands. The slice is copied.
func WithGrades(bands ...GradeBand) Option {
	return options.NoError(func(c *Config) {
		c.Grades = slices.Clone(bands)
	})
}

func cloneLimits(l SpecLimits) SpecLimits {
	return SpecLimits{
		USL:    clonePtr(l.USL),
		LSL:    clonePtr(l.LSL),
		Target: clonePtr(l.Target),
	}
}

func clonePtr(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p

	return &v
}
