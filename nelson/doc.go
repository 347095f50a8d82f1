// Package nelson detects out-of-control patterns in an ordered sample using
// Nelson's control-chart rules.
//
// Rule 2 flags runs of nine or more consecutive points strictly on the same
// side of a reference mean. The reference mean is supplied by the caller, so
// a process baseline or rolling mean can be used instead of the mean of the
// scanned slice. A point exactly equal to the mean belongs to neither side and
// ends any active run; so does NaN, which compares false both ways.
//
// Every index of a qualifying run is reported, not only the first nine, and
// disjoint runs in one sample are all reported.
//
// Rule 1 flags single points beyond the 3-sigma control limits.
//
// Example:
//
//	desc, _ := stats.Describe(weights)
//	v := nelson.Rule2(weights, desc.Mean)
//	for _, i := range v.Indices() {
//	    fmt.Printf("point %d is part of a run\n", i)
//	}
package nelson
