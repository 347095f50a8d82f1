package regression

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/varistat/dataset"
	"github.com/arloliu/varistat/errs"
)

// designColumn is one predictor column of the design matrix.
type designColumn struct {
	name   string
	term   Term
	values []float64
}

// design is the encoded regression problem over the complete rows.
type design struct {
	outcome string
	terms   []Term
	y       []float64
	cols    []designColumn
}

// encoded is one numeric encoding of a source column.
type encoded struct {
	suffix string
	values []float64
}

// buildDesign validates terms against rows and encodes them.
//
// Only rows where the outcome and every referenced column are present are
// used. Categorical columns are dummy-coded against their first level in
// sorted order; interactions multiply every combination of their
// constituents' encodings.
func buildDesign(rows dataset.Rows, outcome string, terms []Term) (*design, error) {
	if len(terms) == 0 {
		return nil, errs.ErrNoTerms
	}

	kind, ok := rows.KindOf(outcome)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownColumn, outcome)
	}
	if kind != dataset.KindNumber {
		return nil, fmt.Errorf("%w: outcome %q", errs.ErrNotNumeric, outcome)
	}

	names := make(map[string]struct{}, len(terms))
	columns := []string{outcome}
	for _, t := range terms {
		if err := t.validate(); err != nil {
			return nil, err
		}
		if _, dup := names[t.Name()]; dup {
			return nil, fmt.Errorf("%w: duplicate term %q", errs.ErrInvalidOption, t.Name())
		}
		names[t.Name()] = struct{}{}

		for _, c := range t.Columns {
			if c == outcome {
				return nil, fmt.Errorf("%w: term %q uses the outcome %q", errs.ErrInvalidOption, t.Name(), c)
			}
			k, ok := rows.KindOf(c)
			if !ok {
				return nil, fmt.Errorf("%w: %q", errs.ErrUnknownColumn, c)
			}
			switch {
			case t.Type == TermContinuous && k != dataset.KindNumber:
				return nil, fmt.Errorf("%w: continuous term %q", errs.ErrNotNumeric, c)
			case t.Type == TermCategorical && k != dataset.KindCategory:
				return nil, fmt.Errorf("%w: categorical term %q", errs.ErrNotCategorical, c)
			}
			if !slices.Contains(columns, c) {
				columns = append(columns, c)
			}
		}
	}

	idx, err := rows.Complete(columns...)
	if err != nil {
		return nil, err
	}

	d := &design{
		outcome: outcome,
		terms:   slices.Clone(terms),
		y:       make([]float64, len(idx)),
	}
	for i, r := range idx {
		d.y[i], _ = rows.At(r, outcome).Float()
	}

	cache := make(map[string][]encoded)
	encode := func(column string) ([]encoded, error) {
		if enc, ok := cache[column]; ok {
			return enc, nil
		}
		enc, err := encodeColumn(rows, idx, column)
		if err != nil {
			return nil, err
		}
		cache[column] = enc

		return enc, nil
	}

	for _, t := range terms {
		product := []encoded{{values: ones(len(idx))}}
		for _, c := range t.Columns {
			enc, err := encode(c)
			if err != nil {
				return nil, err
			}
			product = cross(product, enc, c)
		}

		for _, p := range product {
			d.cols = append(d.cols, designColumn{name: p.suffix, term: t, values: p.values})
		}
	}

	n, p := len(d.y), len(d.cols)
	if n <= p+1 {
		return nil, fmt.Errorf("%w: %d complete rows for %d predictor columns", errs.ErrInsufficientData, n, p)
	}
	if stat.Variance(d.y, nil) == 0 {
		return nil, fmt.Errorf("%w: outcome %q has no variance", errs.ErrInsufficientData, outcome)
	}

	return d, nil
}

func encodeColumn(rows dataset.Rows, idx []int, column string) ([]encoded, error) {
	kind, _ := rows.KindOf(column)

	if kind == dataset.KindNumber {
		values := make([]float64, len(idx))
		for i, r := range idx {
			values[i], _ = rows.At(r, column).Float()
		}

		return []encoded{{values: values}}, nil
	}

	labels := make([]string, len(idx))
	for i, r := range idx {
		labels[i], _ = rows.At(r, column).Label()
	}
	levels := slices.Clone(labels)
	slices.Sort(levels)
	levels = slices.Compact(levels)
	if len(levels) < 2 {
		return nil, fmt.Errorf("%w: categorical column %q has fewer than two levels", errs.ErrInsufficientData, column)
	}

	out := make([]encoded, 0, len(levels)-1)
	for _, level := range levels[1:] {
		values := make([]float64, len(idx))
		for i, l := range labels {
			if l == level {
				values[i] = 1
			}
		}
		out = append(out, encoded{suffix: "[" + level + "]", values: values})
	}

	return out, nil
}

// cross multiplies every accumulated column with every encoding of column,
// extending the names as "A[x]:B".
func cross(acc []encoded, enc []encoded, column string) []encoded {
	out := make([]encoded, 0, len(acc)*len(enc))
	for _, a := range acc {
		for _, e := range enc {
			name := column + e.suffix
			if a.suffix != "" {
				name = a.suffix + ":" + name
			}
			values := make([]float64, len(a.values))
			for i := range values {
				values[i] = a.values[i] * e.values[i]
			}
			out = append(out, encoded{suffix: name, values: values})
		}
	}

	return out
}

func ones(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1
	}

	return v
}

// matrix returns the n×(p+1) design matrix with a leading intercept column,
// skipping column skip when it is non-negative.
func (d *design) matrix(skip int) *mat.Dense {
	n := len(d.y)
	p := len(d.cols)
	if skip >= 0 {
		p--
	}

	x := mat.NewDense(n, p+1, nil)
	for i := range n {
		x.Set(i, 0, 1)
	}

	j := 1
	for c, col := range d.cols {
		if c == skip {
			continue
		}
		x.SetCol(j, col.values)
		j++
	}

	return x
}
