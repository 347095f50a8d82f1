// Package anova measures how much of an outcome's variation a categorical
// factor explains.
//
// EtaSquared returns the one-way ANOVA effect size
//
//	η² = SS_between / SS_total
//
// where SS_total is the sum of squared deviations from the grand mean and
// SS_between weights each group's squared deviation from the grand mean by
// the group size. Values near 1 mean the factor accounts for nearly all of
// the variation; values near 0 mean it has no explanatory power. A sample
// without variance yields 0.
//
// OneWay returns the full ANOVA table, including the F statistic and its
// p-value, for display next to the effect size.
//
// Rows where either the factor or the outcome is missing are skipped. The
// factor may be a categorical or a numeric column; numeric levels are compared
// by their display form.
package anova
