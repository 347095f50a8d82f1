package stats

import (
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/varistat/errs"
	"github.com/arloliu/varistat/internal/pool"
)

// SigmaMultiplier is the distance, in standard deviations, from the mean to each control limit.
const SigmaMultiplier = 3.0

// Descriptive holds the location and spread of a sample.
type Descriptive struct {
	// N is the number of observations.
	N int
	// Mean is the arithmetic mean.
	Mean float64
	// StdDev is the sample standard deviation (n-1 denominator), 0 when N < 2.
	StdDev float64
	// UCL is the upper control limit, Mean + 3·StdDev.
	UCL float64
	// LCL is the lower control limit, Mean - 3·StdDev.
	LCL float64
	// Min is the smallest observation.
	Min float64
	// Max is the largest observation.
	Max float64
	// Median is the middle observation, or the mean of the two middle ones.
	Median float64
}

// Describe computes the descriptive statistics of values.
//
// Parameters:
//   - values: Observations; order does not matter
//
// Returns:
//   - Descriptive: Statistics of the sample
//   - error: errs.ErrEmptySample when values is empty
func Describe(values []float64) (Descriptive, error) {
	n := len(values)
	if n == 0 {
		return Descriptive{}, errs.ErrEmptySample
	}

	var mean, sd float64
	if n < 2 {
		mean = values[0]
	} else {
		mean, sd = stat.MeanStdDev(values, nil)
	}

	sorted, cleanup := pool.GetFloat64Slice(n)
	defer cleanup()
	copy(sorted, values)
	slices.Sort(sorted)

	median := sorted[n/2]
	if n%2 == 0 {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	return Descriptive{
		N:      n,
		Mean:   mean,
		StdDev: sd,
		UCL:    mean + SigmaMultiplier*sd,
		LCL:    mean - SigmaMultiplier*sd,
		Min:    sorted[0],
		Max:    sorted[n-1],
		Median: median,
	}, nil
}
