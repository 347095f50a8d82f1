package stats

import "math"

// Capability holds the process capability indices of a sample.
//
// Each index is nil when the specification limits it needs were not supplied.
type Capability struct {
	// Cp is the potential capability, (USL - LSL) / 6σ.
	Cp *float64
	// Cpk is the actual capability, the smaller one-sided index.
	Cpk *float64
	// OutOfSpecPercentage is the share of observations above USL or below LSL, in percent.
	OutOfSpecPercentage float64
}

// ComputeCapability derives Cp and Cpk from the descriptive statistics of a
// sample and counts its out-of-spec observations.
//
// Cp requires both limits. Cpk is min(Cpu, Cpl) when both are present and the
// available one-sided index otherwise. A zero standard deviation is not special
// cased: the indices become ±Inf or NaN per IEEE 754 division.
//
// Parameters:
//   - values: The observations the statistics were computed from
//   - desc: Descriptive statistics of values
//   - usl: Upper specification limit, or nil
//   - lsl: Lower specification limit, or nil
//
// Returns:
//   - Capability: Indices and out-of-spec percentage
func ComputeCapability(values []float64, desc Descriptive, usl, lsl *float64) Capability {
	var capab Capability

	var cpu, cpl *float64
	if usl != nil {
		v := (*usl - desc.Mean) / (SigmaMultiplier * desc.StdDev)
		cpu = &v
	}
	if lsl != nil {
		v := (desc.Mean - *lsl) / (SigmaMultiplier * desc.StdDev)
		cpl = &v
	}

	if usl != nil && lsl != nil {
		cp := (*usl - *lsl) / (2 * SigmaMultiplier * desc.StdDev)
		capab.Cp = &cp
	}

	switch {
	case cpu != nil && cpl != nil:
		cpk := math.Min(*cpu, *cpl)
		capab.Cpk = &cpk
	case cpu != nil:
		capab.Cpk = cpu
	case cpl != nil:
		capab.Cpk = cpl
	}

	capab.OutOfSpecPercentage = OutOfSpecPercentage(values, usl, lsl)

	return capab
}

// OutOfSpecPercentage returns the percentage of values strictly above usl or
// strictly below lsl. Absent limits never match. An empty sample yields 0.
func OutOfSpecPercentage(values []float64, usl, lsl *float64) float64 {
	if len(values) == 0 || (usl == nil && lsl == nil) {
		return 0
	}

	out := 0
	for _, v := range values {
		if (usl != nil && v > *usl) || (lsl != nil && v < *lsl) {
			out++
		}
	}

	return float64(out) / float64(len(values)) * 100
}
