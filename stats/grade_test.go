package stats

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyGrades(t *testing.T) {
	bands := []GradeBand{
		{Max: 10, Label: "A", Color: "green"},
		{Max: 20, Label: "B", Color: "yellow"},
		{Max: 30, Label: "C", Color: "red"},
	}

	got := ClassifyGrades([]float64{5, 10, 15, 25, 35}, bands)
	require.Equal(t, []GradeCount{
		{Label: "A", Color: "green", Count: 2, Percentage: 40},
		{Label: "B", Color: "yellow", Count: 1, Percentage: 20},
		{Label: "C", Color: "red", Count: 2, Percentage: 40},
	}, got)
}

func TestClassifyGrades_CountsSumToSampleSize(t *testing.T) {
	bands := []GradeBand{{Max: 0, Label: "low"}, {Max: 1, Label: "high"}}
	values := []float64{-3, -0.5, 0, 0.2, 0.9, 1, 1.1, 42}

	got := ClassifyGrades(values, bands)

	total := 0
	pct := 0.0
	for _, g := range got {
		total += g.Count
		pct += g.Percentage
	}
	require.Equal(t, len(values), total)
	require.InDelta(t, 100, pct, 1e-9)
}

func TestClassifyGrades_BandOrderIsKept(t *testing.T) {
	bands := []GradeBand{{Max: 20, Label: "wide"}, {Max: 10, Label: "narrow"}}

	got := ClassifyGrades([]float64{5, 15}, bands)
	require.Equal(t, 2, got[0].Count)
	require.Zero(t, got[1].Count)
}

func TestClassifyGrades_Degenerate(t *testing.T) {
	require.Nil(t, ClassifyGrades([]float64{1, 2}, nil))

	got := ClassifyGrades(nil, []GradeBand{{Max: 1, Label: "only"}})
	require.Equal(t, []GradeCount{{Label: "only"}}, got)
}
