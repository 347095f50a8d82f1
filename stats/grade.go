package stats

// GradeBand is one ordered classification band.
//
// A value belongs to the band when it is less than or equal to Max and no
// earlier band has claimed it.
type GradeBand struct {
	Max   float64 `yaml:"max" json:"max"`
	Label string  `yaml:"label" json:"label"`
	Color string  `yaml:"color" json:"color"`
}

// GradeCount is the number of observations classified into a band.
type GradeCount struct {
	Label      string
	Color      string
	Count      int
	Percentage float64
}

// ClassifyGrades counts how many values fall into each band.
//
// Bands are evaluated in the given order and are not re-sorted. Values above
// every band's Max are assigned to the last band. The result has one entry per
// band in band order; it is nil when bands is empty.
//
// Parameters:
//   - values: Observations to classify
//   - bands: Ordered grade bands
//
// Returns:
//   - []GradeCount: Count and percentage per band
func ClassifyGrades(values []float64, bands []GradeBand) []GradeCount {
	if len(bands) == 0 {
		return nil
	}

	counts := make([]GradeCount, len(bands))
	for i, b := range bands {
		counts[i] = GradeCount{Label: b.Label, Color: b.Color}
	}

	last := len(bands) - 1
	for _, v := range values {
		idx := last
		for i := range bands {
			if v <= bands[i].Max {
				idx = i
				break
			}
		}
		counts[idx].Count++
	}

	if n := len(values); n > 0 {
		for i := range counts {
			counts[i].Percentage = float64(counts[i].Count) / float64(n) * 100
		}
	}

	return counts
}
