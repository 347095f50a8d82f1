package regression

import (
	"slices"

	"github.com/arloliu/varistat/dataset"
)

// Step is one applied removal of a backward elimination.
type Step struct {
	// Removed is the suggestion that was applied.
	Removed Suggestion
	// Model is the fit the suggestion was made on.
	Model *Model
}

// Reduction is the outcome of Reduce.
type Reduction struct {
	// Final is the model left after the last removal.
	Final *Model
	// Steps lists the removals in the order they were applied.
	Steps []Step
	// Pending is a suggestion on the final model that was not applied because
	// it would remove the last remaining term, nil otherwise.
	Pending *Suggestion
}

// Removed returns the names of the removed terms in removal order.
func (r *Reduction) Removed() []string {
	names := make([]string, len(r.Steps))
	for i, s := range r.Steps {
		names[i] = s.Removed.TermInfo.Name()
	}

	return names
}

// Reduce performs backward elimination: it fits the model, asks the Reducer
// for a removal, drops the suggested term and refits until no suggestion
// remains. The last remaining term is never removed.
//
// Parameters:
//   - rows: Observations
//   - outcome: Numeric response column
//   - terms: Initial model terms
//   - opts: Significance level, VIF threshold and p-value tolerance
//
// Returns:
//   - *Reduction: Final model and the applied removals
//   - error: Any error from fitting an intermediate model
func Reduce(rows dataset.Rows, outcome string, terms []Term, opts ...Option) (*Reduction, error) {
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}

	reducer := Reducer{cfg: cfg}
	current := slices.Clone(terms)
	red := &Reduction{}

	for {
		m, err := fit(rows, outcome, current, cfg)
		if err != nil {
			return nil, err
		}

		s := reducer.Suggest(m.Coefficients)
		if s == nil || len(current) == 1 {
			red.Final = m
			red.Pending = s

			return red, nil
		}

		name := s.TermInfo.Name()
		next := slices.DeleteFunc(slices.Clone(current), func(t Term) bool { return t.Name() == name })
		if len(next) == len(current) {
			red.Final = m
			red.Pending = s

			return red, nil
		}

		red.Steps = append(red.Steps, Step{Removed: *s, Model: m})
		current = next
	}
}
