package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/arloliu/varistat/errs"
	"github.com/arloliu/varistat/internal/options"
)

// NotAvailable is printed in place of undefined values.
const NotAvailable = "N/A"

// Format selects the table output format.
type Format uint8

const (
	// FormatText renders a boxed plain-text table.
	FormatText Format = iota
	// FormatMarkdown renders a GitHub-flavoured Markdown table.
	FormatMarkdown
	// FormatCSV renders comma-separated values.
	FormatCSV
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatMarkdown:
		return "markdown"
	case FormatCSV:
		return "csv"
	default:
		return "unknown"
	}
}

// ParseFormat returns the Format for a name, ignoring case.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "", "text", "table":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "csv":
		return FormatCSV, nil
	default:
		return 0, fmt.Errorf("%w: report format %q", errs.ErrInvalidOption, name)
	}
}

// DefaultPrecision is the number of decimals used for floating-point cells.
const DefaultPrecision = 4

// Config holds renderer settings.
type Config struct {
	Format    Format
	Precision int
}

// Option configures a Renderer.
type Option = options.Option[*Config]

// WithFormat sets the output format.
func WithFormat(f Format) Option {
	return options.New(func(c *Config) error {
		if f > FormatCSV {
			return options.Invalid("format", "unknown format %d", f)
		}
		c.Format = f

		return nil
	})
}

// WithPrecision sets the number of decimals, between 0 and 12.
func WithPrecision(digits int) Option {
	return options.New(func(c *Config) error {
		if digits < 0 || digits > 12 {
			return options.Invalid("precision", "must be in [0, 12], got %d", digits)
		}
		c.Precision = digits

		return nil
	})
}

// FormatFloat renders v with the given number of decimals, or NotAvailable
// when v is NaN or infinite.
func FormatFloat(v float64, precision int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NotAvailable
	}

	return strconv.FormatFloat(v, 'f', precision, 64)
}

// FormatOptional renders *v like FormatFloat, or NotAvailable when v is nil.
func FormatOptional(v *float64, precision int) string {
	if v == nil {
		return NotAvailable
	}

	return FormatFloat(*v, precision)
}

// FormatPValue renders a p-value, switching to "< 0.0001" style below the
// display precision.
func FormatPValue(p float64, precision int) string {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return NotAvailable
	}
	floor := math.Pow10(-precision)
	if p < floor {
		return "< " + strconv.FormatFloat(floor, 'f', precision, 64)
	}

	return strconv.FormatFloat(p, 'f', precision, 64)
}
