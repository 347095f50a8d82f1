// Package stats computes the control-chart and capability summary of a sample.
//
// The summary combines three calculations over one ordered sample:
//
//   - Descriptive statistics: mean, Bessel-corrected standard deviation and the
//     3-sigma control limits UCL = mean + 3σ, LCL = mean - 3σ
//   - Process capability: Cp and Cpk against optional specification limits, plus
//     the percentage of observations outside them
//   - Grade classification: counts per ordered grade band
//
// # Basic Usage
//
//	res, err := stats.Calculate(weights,
//	    stats.WithUSL(12.0),
//	    stats.WithLSL(8.0),
//	)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("mean=%.3f σ=%.3f UCL=%.3f LCL=%.3f\n", res.Mean, res.StdDev, res.UCL, res.LCL)
//	if res.Cpk != nil {
//	    fmt.Printf("Cpk=%.2f\n", *res.Cpk)
//	}
//
// # Capability Definitions
//
//	Cp  = (USL - LSL) / 6σ                       (both limits required)
//	Cpu = (USL - mean) / 3σ
//	Cpl = (mean - LSL) / 3σ
//	Cpk = min(Cpu, Cpl), or whichever one-sided index has its limit supplied
//
// # Degenerate Input
//
// An empty sample is rejected with errs.ErrEmptySample. A sample with zero
// variance is not an error: σ is 0 and the capability indices follow IEEE 754
// division, yielding ±Inf or NaN. Display code decides how to render those.
//
// # Grade Bands
//
// Bands are evaluated in the order supplied. A value belongs to the first band
// whose Max it does not exceed; values above every Max are counted in the last
// band. Bands are not re-sorted.
//
// # Thread Safety
//
// Calculate and its helpers are pure functions. Memo is safe for concurrent use.
package stats
