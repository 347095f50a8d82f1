package regression

import (
	"fmt"
	"strings"
)

// Model is a fitted linear regression model.
//
// A Model contains everything needed to judge and reduce the fit: per-column
// coefficients with their inference statistics, the terms they came from and
// goodness-of-fit metrics.
//
// Fields:
//   - Outcome: The response column
//   - Terms: The model terms, in the order supplied
//   - Intercept: The intercept coefficient
//   - Coefficients: One result per design column, in term order
//   - RSquared: Coefficient of determination (0-1, higher is better)
//   - AdjustedRSquared: RSquared penalized for the number of predictors
//   - ResidualStdError: Square root of SSE / DF
//   - RMSE: Root mean square error of the fitted values
//   - FStatistic, FPValue: Overall F test against the intercept-only model
//   - N: Complete rows used
//   - DF: Residual degrees of freedom, N - predictors - 1
//   - Formula: Human-readable fitted equation
type Model struct {
	Outcome          string
	Terms            []Term
	Intercept        CoefficientResult
	Coefficients     []CoefficientResult
	RSquared         float64
	AdjustedRSquared float64
	ResidualStdError float64
	RMSE             float64
	FStatistic       float64
	FPValue          float64
	N                int
	DF               int
	Formula          string
}

// String returns a string representation of the model.
//
// Returns:
//   - string: Formatted model summary
func (m *Model) String() string {
	return fmt.Sprintf("Model{Outcome: %s, Terms: %d, R²: %.4f, Adj R²: %.4f, N: %d, Formula: %s}",
		m.Outcome, len(m.Terms), m.RSquared, m.AdjustedRSquared, m.N, m.Formula)
}

// TermNames returns the names of the model terms.
func (m *Model) TermNames() []string {
	names := make([]string, len(m.Terms))
	for i, t := range m.Terms {
		names[i] = t.Name()
	}

	return names
}

// Coefficient returns the result for a design column by name.
func (m *Model) Coefficient(name string) (CoefficientResult, bool) {
	if name == InterceptName {
		return m.Intercept, true
	}
	for _, c := range m.Coefficients {
		if c.Term == name {
			return c, true
		}
	}

	return CoefficientResult{}, false
}

func formula(m *Model) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s = %.4g", m.Outcome, m.Intercept.Coefficient)
	for _, c := range m.Coefficients {
		sign := "+"
		v := c.Coefficient
		if v < 0 {
			sign = "-"
			v = -v
		}
		fmt.Fprintf(&sb, " %s %.4g*%s", sign, v, c.Term)
	}

	return sb.String()
}
