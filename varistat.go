// Package varistat is a statistics engine for process data: control-chart
// limits, process capability, grade classification, ANOVA effect size,
// Nelson run detection and regression term reduction.
//
// Every calculation is a pure function over in-memory input. Nothing is
// cached or shared between calls unless the caller opts in with stats.Memo.
//
// # Core Features
//
//   - Descriptive statistics with 3-sigma control limits
//   - Cp and Cpk against optional specification limits
//   - Ordered grade bands with a catch-all top band
//   - One-way ANOVA eta-squared for a categorical factor
//   - Nelson Rule 2: runs of nine points on one side of a reference mean
//   - Regression fitting with a term-removal policy driven by VIF and p-values
//   - Compact, checksummed sample archives (None, Zstd, S2, LZ4)
//
// # Basic Usage
//
//	usl, lsl := 12.0, 8.0
//	res, err := varistat.CalculateStats(weights, &usl, &lsl, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("mean=%.3f UCL=%.3f LCL=%.3f\n", res.Mean, res.UCL, res.LCL)
//
//	flagged := varistat.NelsonRule2Violations(weights, res.Mean)
//	fmt.Println("points in long runs:", flagged.Indices())
//
// # Package Structure
//
// This package provides convenient top-level wrappers for the most common
// calls. For options such as custom run lengths, VIF thresholds or memoized
// statistics, use the stats, anova, nelson and regression packages directly.
package varistat

import (
	"github.com/arloliu/varistat/anova"
	"github.com/arloliu/varistat/dataset"
	"github.com/arloliu/varistat/format"
	"github.com/arloliu/varistat/internal/hash"
	"github.com/arloliu/varistat/nelson"
	"github.com/arloliu/varistat/regression"
	"github.com/arloliu/varistat/stats"
)

// CalculateStats computes descriptive statistics, capability indices and grade
// counts for a sample.
//
// Parameters:
//   - sample: Observations in order
//   - usl: Upper specification limit, or nil
//   - lsl: Lower specification limit, or nil
//   - grades: Ordered grade bands, or nil
//
// Returns:
//   - stats.Result: The summary; Cp needs both limits, Cpk at least one
//   - error: errs.ErrEmptySample for an empty sample
func CalculateStats(sample []float64, usl, lsl *float64, grades []stats.GradeBand) (stats.Result, error) {
	opts := make([]stats.Option, 0, 3)
	opts = append(opts, stats.WithSpecLimits(stats.SpecLimits{USL: usl, LSL: lsl}))
	if len(grades) > 0 {
		opts = append(opts, stats.WithGrades(grades...))
	}

	return stats.Calculate(sample, opts...)
}

// EtaSquared returns the share of outcome variance explained by factor.
//
// Returns 0 when the outcome has no variance.
func EtaSquared(rows dataset.Rows, factor, outcome string) (float64, error) {
	return anova.EtaSquared(rows, factor, outcome)
}

// NelsonRule2Violations returns the indices of every run of nine or more
// consecutive values strictly on one side of mean.
func NelsonRule2Violations(sample []float64, mean float64) nelson.ViolationSet {
	return nelson.Rule2(sample, mean)
}

// SuggestTermRemoval returns the next term to drop from a fitted model, or nil
// when every term is significant and no VIF exceeds 10.
func SuggestTermRemoval(coefs []regression.CoefficientResult) *regression.Suggestion {
	return regression.SuggestTermRemoval(coefs)
}

// PackSample encodes a sample into a zstd-compressed, checksummed archive.
func PackSample(sample []float64) ([]byte, error) {
	return dataset.EncodeSample(sample, format.CompressionZstd)
}

// UnpackSample decodes an archive produced by PackSample or dataset.EncodeSample.
func UnpackSample(data []byte) ([]float64, error) {
	return dataset.DecodeSample(data)
}

// SampleID returns the xxHash64 fingerprint of a sample's values.
//
// Equal samples always share an ID, so the ID can key caches and archive
// file names.
func SampleID(sample []float64) uint64 {
	return hash.NewFingerprint().Floats(sample).Sum()
}
