package anova

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/arloliu/varistat/dataset"
	"github.com/arloliu/varistat/errs"
)

// Group summarizes the outcome for one factor level.
type Group struct {
	Level  string
	N      int
	Mean   float64
	StdDev float64
}

// Table is a one-way ANOVA table.
type Table struct {
	Factor  string
	Outcome string
	// Groups are sorted by level.
	Groups []Group

	SSBetween float64
	SSWithin  float64
	SSTotal   float64

	DFBetween int
	DFWithin  int
	DFTotal   int

	MSBetween float64
	MSWithin  float64

	// F and PValue are NaN when the test is undefined (a single group, no
	// residual degrees of freedom, or no variance at all).
	F      float64
	PValue float64

	EtaSquared float64
}

// EtaSquared computes the share of the outcome's variance explained by factor.
//
// Parameters:
//   - rows: Observations
//   - factor: Grouping column, categorical or numeric
//   - outcome: Numeric response column
//
// Returns:
//   - float64: η² in [0, 1]; 0 when the outcome has no variance
//   - error: Unknown or mistyped columns, or errs.ErrEmptySample when no row has both values
func EtaSquared(rows dataset.Rows, factor, outcome string) (float64, error) {
	g, err := collect(rows, factor, outcome)
	if err != nil {
		return 0, err
	}

	ssBetween, ssTotal := g.sumsOfSquares()

	return ratio(ssBetween, ssTotal), nil
}

// OneWay computes the one-way ANOVA table of outcome grouped by factor.
//
// The p-value is the upper tail of the F distribution with
// (groups-1, n-groups) degrees of freedom.
func OneWay(rows dataset.Rows, factor, outcome string) (*Table, error) {
	g, err := collect(rows, factor, outcome)
	if err != nil {
		return nil, err
	}

	ssBetween, ssTotal := g.sumsOfSquares()
	ssWithin := math.Max(ssTotal-ssBetween, 0)

	t := &Table{
		Factor:     factor,
		Outcome:    outcome,
		Groups:     make([]Group, 0, len(g.levels)),
		SSBetween:  ssBetween,
		SSWithin:   ssWithin,
		SSTotal:    ssTotal,
		DFBetween:  len(g.levels) - 1,
		DFWithin:   g.n - len(g.levels),
		DFTotal:    g.n - 1,
		EtaSquared: ratio(ssBetween, ssTotal),
		MSBetween:  math.NaN(),
		MSWithin:   math.NaN(),
		F:          math.NaN(),
		PValue:     math.NaN(),
	}

	for _, level := range g.levels {
		values := g.byLevel[level]
		grp := Group{Level: level, N: len(values)}
		if len(values) < 2 {
			grp.Mean = values[0]
		} else {
			grp.Mean, grp.StdDev = stat.MeanStdDev(values, nil)
		}
		t.Groups = append(t.Groups, grp)
	}

	if t.DFBetween > 0 {
		t.MSBetween = ssBetween / float64(t.DFBetween)
	}
	if t.DFWithin > 0 {
		t.MSWithin = ssWithin / float64(t.DFWithin)
	}

	if t.DFBetween > 0 && t.DFWithin > 0 {
		switch {
		case t.MSWithin > 0:
			t.F = t.MSBetween / t.MSWithin
			t.PValue = distuv.F{D1: float64(t.DFBetween), D2: float64(t.DFWithin)}.Survival(t.F)
		case t.MSBetween > 0:
			// Perfect separation: every group is constant but the groups differ.
			t.F = math.Inf(1)
			t.PValue = 0
		}
	}

	return t, nil
}

type grouped struct {
	levels  []string
	byLevel map[string][]float64
	all     []float64
	n       int
}

func collect(rows dataset.Rows, factor, outcome string) (*grouped, error) {
	if _, ok := rows.KindOf(factor); !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownColumn, factor)
	}
	kind, ok := rows.KindOf(outcome)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownColumn, outcome)
	}
	if kind != dataset.KindNumber {
		return nil, fmt.Errorf("%w: %q", errs.ErrNotNumeric, outcome)
	}

	idx, err := rows.Complete(factor, outcome)
	if err != nil {
		return nil, err
	}
	if len(idx) == 0 {
		return nil, fmt.Errorf("%w: no rows with both %q and %q", errs.ErrEmptySample, factor, outcome)
	}

	g := &grouped{
		byLevel: make(map[string][]float64),
		all:     make([]float64, 0, len(idx)),
		n:       len(idx),
	}
	for _, i := range idx {
		level := rows.At(i, factor).String()
		y, _ := rows.At(i, outcome).Float()

		if _, seen := g.byLevel[level]; !seen {
			g.levels = append(g.levels, level)
		}
		g.byLevel[level] = append(g.byLevel[level], y)
		g.all = append(g.all, y)
	}
	slices.Sort(g.levels)

	return g, nil
}

func (g *grouped) sumsOfSquares() (ssBetween, ssTotal float64) {
	grand := mean(g.all)

	for _, y := range g.all {
		d := y - grand
		ssTotal += d * d
	}

	for _, level := range g.levels {
		values := g.byLevel[level]
		d := mean(values) - grand
		ssBetween += float64(len(values)) * d * d
	}

	return ssBetween, ssTotal
}

// mean is stat.Mean plus one correction step over the residuals, so a
// constant sample yields its value exactly and ssTotal is exactly 0.
func mean(values []float64) float64 {
	m := stat.Mean(values, nil)

	var r float64
	for _, v := range values {
		r += v - m
	}

	return m + r/float64(len(values))
}

func ratio(ssBetween, ssTotal float64) float64 {
	if ssTotal == 0 {
		return 0
	}

	return ssBetween / ssTotal
}
