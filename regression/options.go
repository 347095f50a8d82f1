package regression

import (
	"math"

	"github.com/arloliu/varistat/internal/options"
)

const (
	// DefaultAlpha is the significance level for IsSignificant.
	DefaultAlpha = 0.05
	// DefaultVIFThreshold is the VIF above which collinearity counts as severe.
	DefaultVIFThreshold = 10.0
	// DefaultPValueTolerance is the p-value difference treated as a tie.
	DefaultPValueTolerance = 1e-9
)

// Config holds the tuning parameters shared by Fit, Reducer and Reduce.
type Config struct {
	// Alpha is the significance level: a coefficient is significant when p < Alpha.
	Alpha float64
	// VIFThreshold is the exclusive lower bound of severe multicollinearity.
	VIFThreshold float64
	// PValueTolerance is the largest p-value difference still treated as a tie.
	PValueTolerance float64
}

var defaultConfig = Config{
	Alpha:           DefaultAlpha,
	VIFThreshold:    DefaultVIFThreshold,
	PValueTolerance: DefaultPValueTolerance,
}

// Option configures Fit, NewReducer and Reduce.
type Option = options.Option[*Config]

// WithAlpha sets the significance level. It must lie in (0, 1).
func WithAlpha(alpha float64) Option {
	return options.New(func(c *Config) error {
		if !(alpha > 0 && alpha < 1) {
			return options.Invalid("alpha", "must be in (0, 1), got %g", alpha)
		}
		c.Alpha = alpha

		return nil
	})
}

// WithVIFThreshold sets the severe multicollinearity threshold. VIF is never
// below 1, so the threshold must be at least 1.
func WithVIFThreshold(threshold float64) Option {
	return options.New(func(c *Config) error {
		if !(threshold >= 1) || math.IsInf(threshold, 0) {
			return options.Invalid("VIF threshold", "must be a finite value >= 1, got %g", threshold)
		}
		c.VIFThreshold = threshold

		return nil
	})
}

// WithPValueTolerance sets how close two p-values must be to count as tied.
func WithPValueTolerance(tol float64) Option {
	return options.New(func(c *Config) error {
		if !(tol >= 0) || tol >= 1 {
			return options.Invalid("p-value tolerance", "must be in [0, 1), got %g", tol)
		}
		c.PValueTolerance = tol

		return nil
	})
}

func buildConfig(opts []Option) (Config, error) {
	return options.Build(defaultConfig, opts...)
}
