package regression

// Reason explains why a term is suggested for removal.
type Reason string

const (
	// ReasonHighVIF marks a term whose variance inflation factor exceeds the severity threshold.
	ReasonHighVIF Reason = "high_vif"
	// ReasonNotSignificant marks the term with the weakest evidence of an effect.
	ReasonNotSignificant Reason = "not_significant"
)

// CoefficientResult is the fitted output for one design column.
//
// A continuous term yields one result. A categorical term yields one result per
// non-reference level and an interaction one per product column; all of them
// share the same TermInfo.
type CoefficientResult struct {
	// Term identifies the design column, e.g. "Temp" or "Machine[B]".
	Term          string
	Coefficient   float64
	StdError      float64
	TStatistic    float64
	PValue        float64
	IsSignificant bool
	// Standardized is the coefficient in standard-deviation units of the column and outcome.
	Standardized float64
	// VIF is nil when the model has fewer than two predictor columns.
	VIF *float64
	// TermInfo is the model term the column belongs to.
	TermInfo Term
}

// Suggestion recommends removing one term from a model.
type Suggestion struct {
	// Term is the design column that triggered the suggestion.
	Term string
	// TermInfo is the model term to remove.
	TermInfo Term
	Reason   Reason
	PValue   float64
	// VIF is set for ReasonHighVIF suggestions.
	VIF         *float64
	Explanation string
}
