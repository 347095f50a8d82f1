package stats

import (
	"slices"

	"github.com/arloliu/varistat/internal/options"
)

// Result is the full summary of one sample.
//
// A Result is a snapshot: Calculate never retains or mutates it afterwards.
type Result struct {
	Descriptive

	// USL, LSL and Target echo the specification limits that were supplied.
	USL    *float64
	LSL    *float64
	Target *float64

	// Cp and Cpk are nil when the limits they need are absent.
	Cp  *float64
	Cpk *float64

	// OutOfSpecPercentage is 0 when no limit was supplied.
	OutOfSpecPercentage float64

	// GradeCounts is nil when no grade bands were configured.
	GradeCounts []GradeCount
}

// Calculate computes descriptive statistics, capability indices and grade
// counts for values.
//
// Parameters:
//   - values: The sample, in observation order
//   - opts: Specification limits and grade bands
//
// Returns:
//   - Result: The summary
//   - error: errs.ErrEmptySample for an empty sample
//
// Example:
//
//	res, err := stats.Calculate([]float64{10.2, 9.8, 10.1, 9.9},
//	    stats.WithSpecLimits(stats.SpecLimits{USL: &usl, LSL: &lsl}))
func Calculate(values []float64, opts ...Option) (Result, error) {
	cfg, err := options.Build(Config{}, opts...)
	if err != nil {
		return Result{}, err
	}

	return calculate(values, cfg)
}

func calculate(values []float64, cfg Config) (Result, error) {
	desc, err := Describe(values)
	if err != nil {
		return Result{}, err
	}

	capab := ComputeCapability(values, desc, cfg.Limits.USL, cfg.Limits.LSL)

	return Result{
		Descriptive:         desc,
		USL:                 cfg.Limits.USL,
		LSL:                 cfg.Limits.LSL,
		Target:              cfg.Limits.Target,
		Cp:                  capab.Cp,
		Cpk:                 capab.Cpk,
		OutOfSpecPercentage: capab.OutOfSpecPercentage,
		GradeCounts:         ClassifyGrades(values, cfg.Grades),
	}, nil
}

// Clone returns a deep copy of r, so the copy's optional fields and grade
// counts can be modified without affecting r.
func (r Result) Clone() Result {
	out := r
	out.USL = clonePtr(r.USL)
	out.LSL = clonePtr(r.LSL)
	out.Target = clonePtr(r.Target)
	out.Cp = clonePtr(r.Cp)
	out.Cpk = clonePtr(r.Cpk)
	out.GradeCounts = slices.Clone(r.GradeCounts)

	return out
}
