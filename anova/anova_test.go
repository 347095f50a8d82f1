package anova

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/varistat/dataset"
	"github.com/arloliu/varistat/errs"
)

type obs struct {
	factor  dataset.Value
	outcome dataset.Value
}

func makeRows(t *testing.T, factorKind dataset.Kind, data []obs) dataset.Rows {
	t.Helper()

	rows := make([]dataset.Row, len(data))
	for i, o := range data {
		rows[i] = dataset.Row{"Machine": o.factor, "Weight": o.outcome}
	}

	r, err := dataset.NewRows(
		[]string{"Machine", "Weight"},
		map[string]dataset.Kind{"Machine": factorKind, "Weight": dataset.KindNumber},
		rows,
	)
	require.NoError(t, err)

	return r
}

func groupedObs(levels map[string][]float64) []obs {
	var out []obs
	for level, values := range levels {
		for _, v := range values {
			out = append(out, obs{dataset.Category(level), dataset.Number(v)})
		}
	}

	return out
}

func TestEtaSquared(t *testing.T) {
	tests := []struct {
		name   string
		groups map[string][]float64
		want   float64
	}{
		{
			name:   "factor explains everything",
			groups: map[string][]float64{"A": {10, 10, 10, 10, 10}, "B": {15, 15, 15, 15, 15}},
			want:   1,
		},
		{
			name:   "hand computed",
			groups: map[string][]float64{"A": {1, 2, 3}, "B": {4, 5, 6}},
			want:   13.5 / 17.5,
		},
		{
			name:   "identical group means",
			groups: map[string][]float64{"A": {1, 3}, "B": {0, 4}, "C": {2, 2}},
			want:   0,
		},
		{
			name:   "no variance at all",
			groups: map[string][]float64{"A": {7, 7}, "B": {7, 7, 7}},
			want:   0,
		},
		{
			name:   "single group",
			groups: map[string][]float64{"A": {1, 2, 3, 4}},
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := makeRows(t, dataset.KindCategory, groupedObs(tt.groups))

			got, err := EtaSquared(rows, "Machine", "Weight")
			require.NoError(t, err)
			require.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestEtaSquared_NearOne(t *testing.T) {
	rows := makeRows(t, dataset.KindCategory, groupedObs(map[string][]float64{
		"A": {9.9, 10.0, 10.1, 10.0, 10.0},
		"B": {14.9, 15.0, 15.1, 15.0, 15.0},
	}))

	got, err := EtaSquared(rows, "Machine", "Weight")
	require.NoError(t, err)
	require.Greater(t, got, 0.99)
	require.LessOrEqual(t, got, 1.0)
}

func TestEtaSquared_SkipsMissing(t *testing.T) {
	data := groupedObs(map[string][]float64{"A": {1, 2, 3}, "B": {4, 5, 6}})
	data = append(data,
		obs{dataset.Missing(), dataset.Number(1000)},
		obs{dataset.Category("C"), dataset.Missing()},
	)
	rows := makeRows(t, dataset.KindCategory, data)

	got, err := EtaSquared(rows, "Machine", "Weight")
	require.NoError(t, err)
	require.InDelta(t, 13.5/17.5, got, 1e-12)
}

func TestEtaSquared_NumericFactor(t *testing.T) {
	rows := makeRows(t, dataset.KindNumber, []obs{
		{dataset.Number(1), dataset.Number(1)},
		{dataset.Number(1), dataset.Number(2)},
		{dataset.Number(1), dataset.Number(3)},
		{dataset.Number(2), dataset.Number(4)},
		{dataset.Number(2), dataset.Number(5)},
		{dataset.Number(2), dataset.Number(6)},
	})

	got, err := EtaSquared(rows, "Machine", "Weight")
	require.NoError(t, err)
	require.InDelta(t, 13.5/17.5, got, 1e-12)
}

func TestEtaSquared_Errors(t *testing.T) {
	rows := makeRows(t, dataset.KindCategory, groupedObs(map[string][]float64{"A": {1}}))

	_, err := EtaSquared(rows, "Operator", "Weight")
	require.ErrorIs(t, err, errs.ErrUnknownColumn)

	_, err = EtaSquared(rows, "Machine", "Height")
	require.ErrorIs(t, err, errs.ErrUnknownColumn)

	_, err = EtaSquared(rows, "Weight", "Machine")
	require.ErrorIs(t, err, errs.ErrNotNumeric)

	empty := makeRows(t, dataset.KindCategory, nil)
	_, err = EtaSquared(empty, "Machine", "Weight")
	require.ErrorIs(t, err, errs.ErrEmptySample)
}

func TestOneWay(t *testing.T) {
	rows := makeRows(t, dataset.KindCategory, groupedObs(map[string][]float64{"B": {4, 5, 6}, "A": {1, 2, 3}}))

	tbl, err := OneWay(rows, "Machine", "Weight")
	require.NoError(t, err)

	require.Equal(t, "Machine", tbl.Factor)
	require.Equal(t, "Weight", tbl.Outcome)
	require.Equal(t, []Group{
		{Level: "A", N: 3, Mean: 2, StdDev: 1},
		{Level: "B", N: 3, Mean: 5, StdDev: 1},
	}, tbl.Groups)

	require.InDelta(t, 13.5, tbl.SSBetween, 1e-12)
	require.InDelta(t, 4, tbl.SSWithin, 1e-12)
	require.InDelta(t, 17.5, tbl.SSTotal, 1e-12)
	require.Equal(t, 1, tbl.DFBetween)
	require.Equal(t, 4, tbl.DFWithin)
	require.Equal(t, 5, tbl.DFTotal)
	require.InDelta(t, 13.5, tbl.MSBetween, 1e-12)
	require.InDelta(t, 1, tbl.MSWithin, 1e-12)
	require.InDelta(t, 13.5, tbl.F, 1e-9)
	// F(1,4) = 13.5 corresponds to |t| = 3.674 with 4 df.
	require.Greater(t, tbl.PValue, 0.02)
	require.Less(t, tbl.PValue, 0.025)
	require.InDelta(t, 13.5/17.5, tbl.EtaSquared, 1e-12)
}

func TestOneWay_Degenerate(t *testing.T) {
	t.Run("perfect separation", func(t *testing.T) {
		rows := makeRows(t, dataset.KindCategory, groupedObs(map[string][]float64{"A": {10, 10}, "B": {15, 15}}))

		tbl, err := OneWay(rows, "Machine", "Weight")
		require.NoError(t, err)
		require.True(t, math.IsInf(tbl.F, 1))
		require.Zero(t, tbl.PValue)
		require.InDelta(t, 1, tbl.EtaSquared, 1e-12)
	})

	t.Run("single group", func(t *testing.T) {
		rows := makeRows(t, dataset.KindCategory, groupedObs(map[string][]float64{"A": {1, 2, 3}}))

		tbl, err := OneWay(rows, "Machine", "Weight")
		require.NoError(t, err)
		require.Zero(t, tbl.DFBetween)
		require.True(t, math.IsNaN(tbl.F))
		require.True(t, math.IsNaN(tbl.PValue))
	})

	t.Run("one observation per group", func(t *testing.T) {
		rows := makeRows(t, dataset.KindCategory, groupedObs(map[string][]float64{"A": {1}, "B": {2}}))

		tbl, err := OneWay(rows, "Machine", "Weight")
		require.NoError(t, err)
		require.Zero(t, tbl.DFWithin)
		require.True(t, math.IsNaN(tbl.MSWithin))
		require.True(t, math.IsNaN(tbl.F))
		require.InDelta(t, 1, tbl.EtaSquared, 1e-12)
	})

	t.Run("constant outcome that does not sum exactly", func(t *testing.T) {
		rows := makeRows(t, dataset.KindCategory, groupedObs(map[string][]float64{
			"A": {0.3, 0.3, 0.3},
			"B": {0.3, 0.3, 0.3, 0.3},
		}))

		eta, err := EtaSquared(rows, "Machine", "Weight")
		require.NoError(t, err)
		require.Zero(t, eta)

		tbl, err := OneWay(rows, "Machine", "Weight")
		require.NoError(t, err)
		require.Zero(t, tbl.SSTotal)
		require.Zero(t, tbl.EtaSquared)
		require.True(t, math.IsNaN(tbl.F))
	})

	t.Run("no variance", func(t *testing.T) {
		rows := makeRows(t, dataset.KindCategory, groupedObs(map[string][]float64{"A": {3, 3}, "B": {3, 3}}))

		tbl, err := OneWay(rows, "Machine", "Weight")
		require.NoError(t, err)
		require.True(t, math.IsNaN(tbl.F))
		require.Zero(t, tbl.EtaSquared)
	})
}
