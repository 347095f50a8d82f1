package regression

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/arloliu/varistat/dataset"
	"github.com/arloliu/varistat/errs"
)

// InterceptName is the Term of the intercept coefficient.
const InterceptName = "(Intercept)"

// Fit estimates an ordinary least squares model of outcome on terms.
//
// The model always includes an intercept. Rows where the outcome or any
// referenced column is missing are dropped. Categorical terms are dummy-coded
// against their first level in sorted order, and interaction terms multiply
// their constituents' encoded columns.
//
// Parameters:
//   - rows: Observations
//   - outcome: Numeric response column
//   - terms: Model terms; names must be unique
//   - opts: WithAlpha sets the significance level
//
// Returns:
//   - *Model: Coefficients with standard errors, p-values and VIFs, plus goodness of fit
//   - error: Schema errors, errs.ErrNoTerms, errs.ErrInsufficientData or errs.ErrSingularDesign
//
// Example:
//
//	m, err := regression.Fit(rows, "Weight", []regression.Term{
//	    regression.Continuous("Temp"),
//	    regression.Categorical("Machine"),
//	})
//	if err != nil {
//	    return err
//	}
//	if s := regression.SuggestTermRemoval(m.Coefficients); s != nil {
//	    fmt.Println(s.Explanation)
//	}
func Fit(rows dataset.Rows, outcome string, terms []Term, opts ...Option) (*Model, error) {
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}

	return fit(rows, outcome, terms, cfg)
}

func fit(rows dataset.Rows, outcome string, terms []Term, cfg Config) (*Model, error) {
	d, err := buildDesign(rows, outcome, terms)
	if err != nil {
		return nil, err
	}

	return fitDesign(d, cfg)
}

func fitDesign(d *design, cfg Config) (*Model, error) {
	n, p := len(d.y), len(d.cols)
	df := n - p - 1

	x := d.matrix(-1)
	beta, inv, err := solveOLS(x, d.y)
	if err != nil {
		return nil, err
	}

	var fitted mat.VecDense
	fitted.MulVec(x, beta)
	predicted := fitted.RawVector().Data

	meanY := stat.Mean(d.y, nil)
	sse, sst := 0.0, 0.0
	for i, y := range d.y {
		r := y - predicted[i]
		sse += r * r
		sst += (y - meanY) * (y - meanY)
	}
	sigma2 := sse / float64(df)
	r2 := calculateRSquared(d.y, predicted)

	m := &Model{
		Outcome:          d.outcome,
		Terms:            d.terms,
		N:                n,
		DF:               df,
		RSquared:         r2,
		AdjustedRSquared: 1 - (1-r2)*float64(n-1)/float64(df),
		ResidualStdError: math.Sqrt(sigma2),
		RMSE:             math.Sqrt(sse / float64(n)),
		Coefficients:     make([]CoefficientResult, p),
	}

	tdist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}
	sdY := stat.StdDev(d.y, nil)
	vifs := d.vifs()

	coefficient := func(j int) CoefficientResult {
		b := beta.AtVec(j)
		se := math.Sqrt(sigma2 * inv.At(j, j))
		t := b / se
		pv := 2 * tdist.Survival(math.Abs(t))

		return CoefficientResult{
			Coefficient:   b,
			StdError:      se,
			TStatistic:    t,
			PValue:        pv,
			IsSignificant: pv < cfg.Alpha,
		}
	}

	m.Intercept = coefficient(0)
	m.Intercept.Term = InterceptName

	for j, col := range d.cols {
		c := coefficient(j + 1)
		c.Term = col.name
		c.TermInfo = col.term
		c.Standardized = c.Coefficient * stat.StdDev(col.values, nil) / sdY
		if vifs != nil {
			v := vifs[j]
			c.VIF = &v
		}
		m.Coefficients[j] = c
	}

	if sse == 0 {
		m.FStatistic = math.Inf(1)
		m.FPValue = 0
	} else {
		m.FStatistic = ((sst - sse) / float64(p)) / sigma2
		m.FPValue = distuv.F{D1: float64(p), D2: float64(df)}.Survival(m.FStatistic)
	}

	m.Formula = formula(m)

	return m, nil
}

// solveOLS returns β = (XᵀX)⁻¹Xᵀy together with (XᵀX)⁻¹.
func solveOLS(x *mat.Dense, y []float64) (*mat.VecDense, *mat.Dense, error) {
	var xtx mat.Dense
	xtx.Mul(x.T(), x)

	var inv mat.Dense
	if err := inv.Inverse(&xtx); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", errs.ErrSingularDesign, err)
	}

	var xty mat.VecDense
	xty.MulVec(x.T(), mat.NewVecDense(len(y), y))

	var beta mat.VecDense
	beta.MulVec(&inv, &xty)

	return &beta, &inv, nil
}

// vifs returns the variance inflation factor of every predictor column, or nil
// when there are fewer than two. VIF_j = 1 / (1 - R²_j), where R²_j comes from
// regressing column j on the remaining columns.
func (d *design) vifs() []float64 {
	if len(d.cols) < 2 {
		return nil
	}

	out := make([]float64, len(d.cols))
	for j, col := range d.cols {
		x := d.matrix(j)
		beta, _, err := solveOLS(x, col.values)
		if err != nil {
			out[j] = math.Inf(1)
			continue
		}

		var fitted mat.VecDense
		fitted.MulVec(x, beta)
		r2 := calculateRSquared(col.values, fitted.RawVector().Data)
		if r2 >= 1 {
			out[j] = math.Inf(1)
			continue
		}
		out[j] = 1 / (1 - r2)
	}

	return out
}

// calculateRSquared returns the coefficient of determination, 0 when observed
// has no variance.
func calculateRSquared(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	mean := stat.Mean(observed, nil)
	ssTot := 0.0
	ssRes := 0.0
	for i := range observed {
		ssTot += (observed[i] - mean) * (observed[i] - mean)
		ssRes += (observed[i] - predicted[i]) * (observed[i] - predicted[i])
	}

	if ssTot == 0 {
		return 0
	}

	return 1.0 - (ssRes / ssTot)
}
