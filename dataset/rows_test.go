package dataset

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/varistat/errs"
)

func sampleRows(t *testing.T) Rows {
	t.Helper()

	rows, err := FromRecords(
		[]string{"Machine", "Weight", "Shift"},
		[][]string{
			{"B", "10.2", "day"},
			{"A", "9.8", "night"},
			{"A", "", "day"},
			{"C", "10.5"},
			{"B", " 10.0 ", ""},
		},
	)
	require.NoError(t, err)

	return rows
}

func TestFromRecords_Kinds(t *testing.T) {
	rows := sampleRows(t)

	require.Equal(t, 5, rows.Len())
	require.Equal(t, []string{"Machine", "Weight", "Shift"}, rows.Columns())

	k, ok := rows.KindOf("Weight")
	require.True(t, ok)
	require.Equal(t, KindNumber, k)

	k, ok = rows.KindOf("Machine")
	require.True(t, ok)
	require.Equal(t, KindCategory, k)

	_, ok = rows.KindOf("Nope")
	require.False(t, ok)

	require.True(t, rows.At(2, "Weight").IsMissing())
	require.True(t, rows.At(3, "Shift").IsMissing())
}

func TestFromRecords_NumericLabelsStayCategoricalWhenMixed(t *testing.T) {
	rows, err := FromRecords([]string{"Lot"}, [][]string{{"101"}, {"102b"}})
	require.NoError(t, err)

	k, _ := rows.KindOf("Lot")
	require.Equal(t, KindCategory, k)
	require.Equal(t, "101", rows.At(0, "Lot").String())
}

func TestFromRecords_Errors(t *testing.T) {
	_, err := FromRecords([]string{"A", "A"}, nil)
	require.ErrorIs(t, err, errs.ErrDuplicateColumn)

	_, err = FromRecords([]string{"A"}, [][]string{{"1", "2"}})
	require.ErrorIs(t, err, errs.ErrLengthMismatch)
}

func TestRows_Numeric(t *testing.T) {
	rows := sampleRows(t)

	weights, err := rows.Numeric("Weight")
	require.NoError(t, err)
	require.Equal(t, []float64{10.2, 9.8, 10.5, 10.0}, weights)

	_, err = rows.Numeric("Machine")
	require.ErrorIs(t, err, errs.ErrNotNumeric)

	_, err = rows.Numeric("Missing")
	require.ErrorIs(t, err, errs.ErrUnknownColumn)
}

func TestRows_Levels(t *testing.T) {
	rows := sampleRows(t)

	levels, err := rows.Levels("Machine")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, levels)

	_, err = rows.Levels("Weight")
	require.ErrorIs(t, err, errs.ErrNotCategorical)
}

func TestRows_Complete(t *testing.T) {
	rows := sampleRows(t)

	idx, err := rows.Complete("Weight", "Shift")
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, idx)

	_, err = rows.Complete("Nope")
	require.ErrorIs(t, err, errs.ErrUnknownColumn)
}

func TestNewRows_Validation(t *testing.T) {
	kinds := map[string]Kind{"Machine": KindCategory, "Weight": KindNumber}
	cols := []string{"Machine", "Weight"}

	_, err := NewRows(cols, kinds, []Row{{"Weight": Category("heavy")}})
	require.ErrorIs(t, err, errs.ErrNotNumeric)

	_, err = NewRows(cols, kinds, []Row{{"Machine": Number(1)}})
	require.ErrorIs(t, err, errs.ErrNotCategorical)

	_, err = NewRows(cols, kinds, []Row{{"Operator": Category("x")}})
	require.ErrorIs(t, err, errs.ErrUnknownColumn)

	_, err = NewRows([]string{"Weight", "Extra"}, kinds, nil)
	require.Error(t, err)

	rows, err := NewRows(cols, kinds, []Row{{"Machine": Category("A"), "Weight": Number(1)}, {}})
	require.NoError(t, err)
	require.Equal(t, 2, rows.Len())
}

func TestNewRows_OwnsRowMaps(t *testing.T) {
	input := []Row{
		{"Machine": Category("A"), "Weight": Number(9.8)},
		{"Machine": Category("B"), "Weight": Number(10.2)},
	}

	rows, err := NewRows(
		[]string{"Machine", "Weight"},
		map[string]Kind{"Machine": KindCategory, "Weight": KindNumber},
		input,
	)
	require.NoError(t, err)

	input[0]["Weight"] = Category("heavy")
	input[1] = Row{}

	got, err := rows.Numeric("Weight")
	require.NoError(t, err)
	require.Equal(t, []float64{9.8, 10.2}, got)
	require.Equal(t, "B", rows.At(1, "Machine").String())
}
