package nelson

import "github.com/arloliu/varistat/internal/options"

// DefaultRunLength is the minimum run length Nelson Rule 2 flags.
const DefaultRunLength = 9

// Option configures a Detector.
type Option = options.Option[*Detector]

// WithRunLength sets the minimum number of consecutive same-side points that
// forms a violation. It must be at least 2.
func WithRunLength(n int) Option {
	return options.New(func(d *Detector) error {
		if n < 2 {
			return options.Invalid("run length", "must be at least 2, got %d", n)
		}
		d.runLength = n

		return nil
	})
}
