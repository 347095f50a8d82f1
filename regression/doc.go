// Package regression fits multi-term linear models and suggests which term to
// remove next.
//
// # Key Features
//
//   - **Term Types**: continuous, categorical (dummy-coded) and interaction terms
//   - **Inference**: standard errors, t statistics, two-sided p-values and
//     variance inflation factors per design column
//   - **Reduction Policy**: a single removal suggestion per call, favouring
//     severe multicollinearity over weak significance
//   - **Backward Elimination**: Reduce applies suggestions until the model is
//     adequately reduced
//
// # Usage Patterns
//
// ## Fitting a Model
//
//	m, err := regression.Fit(rows, "Weight", []regression.Term{
//	    regression.Continuous("Temp"),
//	    regression.Categorical("Machine"),
//	    regression.Interaction("Temp", "Machine"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(m.Formula)
//
// ## Asking for a Removal
//
//	if s := regression.SuggestTermRemoval(m.Coefficients); s != nil {
//	    fmt.Printf("remove %s: %s\n", s.TermInfo.Name(), s.Explanation)
//	}
//
// ## Reducing Automatically
//
//	red, err := regression.Reduce(rows, "Weight", terms, regression.WithAlpha(0.01))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("removed:", red.Removed())
//
// # Removal Policy
//
// The policy is evaluated in priority order and the first match wins:
//
//  1. Any term with VIF > 10 (configurable): the one with the highest VIF,
//     reason high_vif, regardless of its own significance
//  2. Among non-significant terms: the one with the highest p-value, reason
//     not_significant
//  3. When an interaction term ties the weakest p-value within 1e-9
//     (configurable), the interaction is removed first
//  4. Otherwise there is no suggestion
//
// Suggestions are made per design column but always name the owning Term, so
// removing a categorical term drops all of its dummy columns together.
//
// # Numerical Method
//
// Coefficients solve the normal equations β = (XᵀX)⁻¹Xᵀy with gonum/mat. A
// design whose XᵀX cannot be inverted, such as two identical predictors, is
// rejected with errs.ErrSingularDesign. p-values use Student's t distribution
// with N - predictors - 1 degrees of freedom.
package regression
