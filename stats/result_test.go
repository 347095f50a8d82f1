package stats

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/varistat/errs"
)

var weights = []float64{10.2, 9.8, 10.1, 9.9, 10.0, 10.3, 9.7, 10.4, 10.0, 9.6}

func TestCalculate_NoOptions(t *testing.T) {
	res, err := Calculate(weights)
	require.NoError(t, err)

	require.Equal(t, len(weights), res.N)
	require.InDelta(t, 10.0, res.Mean, 1e-12)
	require.Nil(t, res.USL)
	require.Nil(t, res.LSL)
	require.Nil(t, res.Target)
	require.Nil(t, res.Cp)
	require.Nil(t, res.Cpk)
	require.Zero(t, res.OutOfSpecPercentage)
	require.Nil(t, res.GradeCounts)
}

func TestCalculate_AllOptions(t *testing.T) {
	res, err := Calculate(weights,
		WithUSL(10.35),
		WithLSL(9.5),
		WithTarget(10),
		WithGrades(
			GradeBand{Max: 9.9, Label: "light"},
			GradeBand{Max: 10.1, Label: "nominal"},
			GradeBand{Max: 11, Label: "heavy"},
		),
	)
	require.NoError(t, err)

	require.InDelta(t, 10.35, *res.USL, 0)
	require.InDelta(t, 9.5, *res.LSL, 0)
	require.InDelta(t, 10, *res.Target, 0)

	require.InDelta(t, (10.35-9.5)/(6*res.StdDev), *res.Cp, 1e-12)
	require.InDelta(t, (10.35-res.Mean)/(3*res.StdDev), *res.Cpk, 1e-12)
	require.InDelta(t, 10, res.OutOfSpecPercentage, 1e-12)

	require.Len(t, res.GradeCounts, 3)
	require.Equal(t, 4, res.GradeCounts[0].Count)
	require.Equal(t, 3, res.GradeCounts[1].Count)
	require.Equal(t, 3, res.GradeCounts[2].Count)
}

func TestCalculate_SpecLimitsOption(t *testing.T) {
	usl := 11.0
	res, err := Calculate(weights, WithLSL(1), WithSpecLimits(SpecLimits{USL: &usl}))
	require.NoError(t, err)

	require.Nil(t, res.LSL, "WithSpecLimits replaces earlier limits")
	require.NotNil(t, res.USL)

	usl = 99
	require.InDelta(t, 11.0, *res.USL, 0, "limits are copied")
}

func TestCalculate_Empty(t *testing.T) {
	_, err := Calculate(nil, WithUSL(1))
	require.ErrorIs(t, err, errs.ErrEmptySample)
}

func TestCalculate_Deterministic(t *testing.T) {
	opts := []Option{WithUSL(10.5), WithLSL(9.5), WithGrades(GradeBand{Max: 10, Label: "ok"})}

	first, err := Calculate(weights, opts...)
	require.NoError(t, err)
	second, err := Calculate(weights, opts...)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestResult_Clone(t *testing.T) {
	res, err := Calculate(weights, WithUSL(10.5), WithLSL(9.5), WithGrades(GradeBand{Max: 10, Label: "ok"}))
	require.NoError(t, err)

	cp := res.Clone()
	*cp.Cp = -1
	cp.GradeCounts[0].Count = -1

	require.NotEqual(t, -1.0, *res.Cp)
	require.NotEqual(t, -1, res.GradeCounts[0].Count)
}
