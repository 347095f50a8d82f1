package nelson

import "github.com/arloliu/varistat/internal/options"

// runState is the side of the reference mean the current run lies on.
type runState uint8

const (
	noRun runState = iota
	runAbove
	runBelow
)

func (s runState) String() string {
	switch s {
	case runAbove:
		return "above"
	case runBelow:
		return "below"
	default:
		return "none"
	}
}

func classify(v, mean float64) runState {
	switch {
	case v > mean:
		return runAbove
	case v < mean:
		return runBelow
	default:
		return noRun
	}
}

// Detector applies run rules with a configurable minimum run length.
//
// A Detector holds no state between calls and is safe for concurrent use.
type Detector struct {
	runLength int
}

var defaultDetector = Detector{runLength: DefaultRunLength}

// NewDetector creates a detector. Without options it flags runs of DefaultRunLength.
//
// Returns:
//   - *Detector: The configured detector
//   - error: errs.ErrInvalidOption for an invalid run length
func NewDetector(opts ...Option) (*Detector, error) {
	d, err := options.Build(defaultDetector, opts...)
	if err != nil {
		return nil, err
	}

	return &d, nil
}

// RunLength returns the minimum flagged run length.
func (d *Detector) RunLength() int {
	return d.runLength
}

// Rule2 returns the indices of every run of at least RunLength consecutive
// values strictly on the same side of mean.
//
// The scan is a single left-to-right pass. A change of side closes the current
// run and opens a new one; a value equal to mean closes the run and starts
// none. A closed run is flagged in full when it is long enough.
//
// Parameters:
//   - values: The ordered sample
//   - mean: Reference mean
//
// Returns:
//   - ViolationSet: Flagged indices; empty when no run qualifies
func (d *Detector) Rule2(values []float64, mean float64) ViolationSet {
	var flagged []int

	state := noRun
	start := 0

	closeRun := func(end int) {
		if state != noRun && end-start >= d.runLength {
			for i := start; i < end; i++ {
				flagged = append(flagged, i)
			}
		}
	}

	for i, v := range values {
		next := classify(v, mean)
		if next == state && next != noRun {
			continue
		}

		closeRun(i)
		state = next
		start = i
	}
	closeRun(len(values))

	return newViolationSet(flagged)
}

// Rule2 applies Nelson Rule 2 with the default run length of nine.
func Rule2(values []float64, mean float64) ViolationSet {
	return defaultDetector.Rule2(values, mean)
}

// Rule1 returns the indices of values strictly above ucl or strictly below lcl.
func Rule1(values []float64, ucl, lcl float64) ViolationSet {
	var flagged []int
	for i, v := range values {
		if v > ucl || v < lcl {
			flagged = append(flagged, i)
		}
	}

	return newViolationSet(flagged)
}
