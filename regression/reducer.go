package regression

import (
	"fmt"
	"math"
)

// Reducer picks the next term to drop from a fitted model.
//
// The policy, first match wins:
//
//  1. Severe multicollinearity: the term with the highest VIF above
//     VIFThreshold, regardless of its significance.
//  2. Weakest significance: among non-significant terms, the one with the
//     highest p-value. A NaN p-value ranks above every number.
//  3. Interaction tiebreak: when an interaction term's p-value is within
//     PValueTolerance of the weakest, the interaction is removed first.
//  4. Otherwise no suggestion.
//
// A Reducer holds no state between calls and is safe for concurrent use.
type Reducer struct {
	cfg Config
}

var defaultReducer = Reducer{cfg: defaultConfig}

// NewReducer creates a reducer. Without options it uses DefaultVIFThreshold
// and DefaultPValueTolerance.
func NewReducer(opts ...Option) (*Reducer, error) {
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}

	return &Reducer{cfg: cfg}, nil
}

// Suggest returns the single best removal candidate, or nil when the model is
// adequately reduced or coefs is empty.
//
// Parameters:
//   - coefs: Coefficient results of a fitted model, excluding the intercept
//
// Returns:
//   - *Suggestion: The term to remove, or nil
func (r *Reducer) Suggest(coefs []CoefficientResult) *Suggestion {
	if s := r.highestVIF(coefs); s != nil {
		return s
	}

	return r.weakest(coefs)
}

// SuggestTermRemoval applies the default Reducer to coefs.
func SuggestTermRemoval(coefs []CoefficientResult) *Suggestion {
	return defaultReducer.Suggest(coefs)
}

func (r *Reducer) highestVIF(coefs []CoefficientResult) *Suggestion {
	best := -1
	for i, c := range coefs {
		if c.VIF == nil || !(*c.VIF > r.cfg.VIFThreshold) {
			continue
		}
		if best < 0 || *c.VIF > *coefs[best].VIF {
			best = i
		}
	}
	if best < 0 {
		return nil
	}

	c := coefs[best]
	vif := *c.VIF

	return &Suggestion{
		Term:     c.Term,
		TermInfo: c.TermInfo,
		Reason:   ReasonHighVIF,
		PValue:   c.PValue,
		VIF:      &vif,
		Explanation: fmt.Sprintf(
			"%s has a VIF of %.2f, above the severe multicollinearity threshold of %g; "+
				"collinearity distorts the estimates of every correlated term",
			displayName(c), vif, r.cfg.VIFThreshold),
	}
}

func (r *Reducer) weakest(coefs []CoefficientResult) *Suggestion {
	best := -1
	for i, c := range coefs {
		if c.IsSignificant {
			continue
		}
		if best < 0 || pRank(c.PValue) > pRank(coefs[best].PValue) {
			best = i
		}
	}
	if best < 0 {
		return nil
	}

	tiebreak := false
	if coefs[best].TermInfo.Type != TermInteraction {
		inter := -1
		for i, c := range coefs {
			if c.IsSignificant || c.TermInfo.Type != TermInteraction || !r.tied(c.PValue, coefs[best].PValue) {
				continue
			}
			if inter < 0 || pRank(c.PValue) > pRank(coefs[inter].PValue) {
				inter = i
			}
		}
		if inter >= 0 {
			best = inter
			tiebreak = true
		}
	}

	c := coefs[best]
	explanation := fmt.Sprintf("%s is not significant (p = %.4f) and is the weakest %s in the model",
		displayName(c), c.PValue, c.TermInfo.describe())
	if tiebreak {
		explanation += "; at equal p-values an interaction term is removed before main effects"
	}

	return &Suggestion{
		Term:        c.Term,
		TermInfo:    c.TermInfo,
		Reason:      ReasonNotSignificant,
		PValue:      c.PValue,
		Explanation: explanation,
	}
}

func (r *Reducer) tied(a, b float64) bool {
	ra, rb := pRank(a), pRank(b)
	if ra == rb {
		return true
	}

	return math.Abs(ra-rb) <= r.cfg.PValueTolerance
}

// pRank orders p-values for removal; NaN means no evidence at all.
func pRank(p float64) float64 {
	if math.IsNaN(p) {
		return math.Inf(1)
	}

	return p
}

func displayName(c CoefficientResult) string {
	if name := c.TermInfo.Name(); name != "" {
		return name
	}

	return c.Term
}
