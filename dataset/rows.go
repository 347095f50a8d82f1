package dataset

import (
	"fmt"
	"maps"
	"slices"

	"github.com/arloliu/varistat/errs"
)

// Row maps column names to cell values.
type Row map[string]Value

// Rows is an ordered set of observations sharing one schema.
type Rows struct {
	columns []string
	kinds   map[string]Kind
	rows    []Row
}

// NewRows builds Rows from a declared schema and pre-typed rows.
//
// Every cell must be missing or match its column's declared kind; cells for
// undeclared columns are rejected. This is the validation boundary: code that
// receives Rows can trust the column kinds.
//
// Parameters:
//   - columns: Column names in display order
//   - kinds: Declared kind (KindNumber or KindCategory) per column
//   - rows: Observations
//
// Returns:
//   - Rows: Validated rows
//   - error: ErrDuplicateColumn, ErrUnknownColumn, ErrNotNumeric or ErrNotCategorical
func NewRows(columns []string, kinds map[string]Kind, rows []Row) (Rows, error) {
	seen := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		if _, dup := seen[c]; dup {
			return Rows{}, fmt.Errorf("%w: %q", errs.ErrDuplicateColumn, c)
		}
		seen[c] = struct{}{}
		if k := kinds[c]; k != KindNumber && k != KindCategory {
			return Rows{}, fmt.Errorf("column %q: undeclared kind %s", c, k)
		}
	}

	owned := make([]Row, len(rows))
	for i, r := range rows {
		owned[i] = maps.Clone(r)
		for name, v := range r {
			if _, declared := seen[name]; !declared {
				return Rows{}, fmt.Errorf("row %d: %w: %q", i, errs.ErrUnknownColumn, name)
			}
			want := kinds[name]
			if v.IsMissing() || v.Kind() == want {
				continue
			}
			if want == KindNumber {
				return Rows{}, fmt.Errorf("row %d: %w: %q", i, errs.ErrNotNumeric, name)
			}

			return Rows{}, fmt.Errorf("row %d: %w: %q", i, errs.ErrNotCategorical, name)
		}
	}

	kindsCopy := make(map[string]Kind, len(kinds))
	for _, c := range columns {
		kindsCopy[c] = kinds[c]
	}

	return Rows{
		columns: slices.Clone(columns),
		kinds:   kindsCopy,
		rows:    owned,
	}, nil
}

// Len returns the number of rows.
func (r Rows) Len() int {
	return len(r.rows)
}

// Columns returns the column names in display order.
func (r Rows) Columns() []string {
	return slices.Clone(r.columns)
}

// KindOf returns the kind of a column and whether it exists.
func (r Rows) KindOf(column string) (Kind, bool) {
	k, ok := r.kinds[column]
	return k, ok
}

// At returns the cell at row i for column. Unknown columns yield a missing value.
func (r Rows) At(i int, column string) Value {
	return r.rows[i][column]
}

// Numeric returns the non-missing values of a numeric column, in row order.
func (r Rows) Numeric(column string) ([]float64, error) {
	if err := r.expect(column, KindNumber); err != nil {
		return nil, err
	}

	out := make([]float64, 0, len(r.rows))
	for _, row := range r.rows {
		if v, ok := row[column].Float(); ok {
			out = append(out, v)
		}
	}

	return out, nil
}

// Levels returns the distinct labels of a categorical column, sorted ascending.
func (r Rows) Levels(column string) ([]string, error) {
	if err := r.expect(column, KindCategory); err != nil {
		return nil, err
	}

	set := make(map[string]struct{})
	for _, row := range r.rows {
		if l, ok := row[column].Label(); ok {
			set[l] = struct{}{}
		}
	}

	levels := make([]string, 0, len(set))
	for l := range set {
		levels = append(levels, l)
	}
	slices.Sort(levels)

	return levels, nil
}

// Complete returns the indices of rows where every listed column is present.
func (r Rows) Complete(columns ...string) ([]int, error) {
	for _, c := range columns {
		if _, ok := r.kinds[c]; !ok {
			return nil, fmt.Errorf("%w: %q", errs.ErrUnknownColumn, c)
		}
	}

	idx := make([]int, 0, len(r.rows))
	for i, row := range r.rows {
		ok := true
		for _, c := range columns {
			if row[c].IsMissing() {
				ok = false
				break
			}
		}
		if ok {
			idx = append(idx, i)
		}
	}

	return idx, nil
}

func (r Rows) expect(column string, kind Kind) error {
	k, ok := r.kinds[column]
	if !ok {
		return fmt.Errorf("%w: %q", errs.ErrUnknownColumn, column)
	}
	if k == kind {
		return nil
	}
	if kind == KindNumber {
		return fmt.Errorf("%w: %q", errs.ErrNotNumeric, column)
	}

	return fmt.Errorf("%w: %q", errs.ErrNotCategorical, column)
}
