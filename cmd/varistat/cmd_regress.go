package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/varistat/regression"
	"github.com/arloliu/varistat/report"
)

func newRegressCmd(a *app) *cobra.Command {
	var (
		outcome string
		reduce  bool
	)

	cmd := &cobra.Command{
		Use:   "regress",
		Short: "Fit a regression model and suggest or apply term removals",
		Long: "Fits the terms listed under regression.terms in the configuration file.\n" +
			"With --reduce, terms are removed one at a time until none is suggested.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := a.inputFile()
			if err != nil {
				return err
			}

			outcome := pick(outcome, a.cfg.Outcome)
			if outcome == "" {
				return a.error(fmt.Errorf("--outcome is required"))
			}
			terms := a.cfg.Regression.Terms
			if len(terms) == 0 {
				return a.error(fmt.Errorf("no regression terms: list them under regression.terms in --config"))
			}

			rows, err := readRows(path)
			if err != nil {
				return a.error(err)
			}

			opts := a.cfg.regressionOptions()
			out := cmd.OutOrStdout()

			if reduce || a.cfg.Regression.Reduce {
				red, err := regression.Reduce(rows, outcome, terms, opts...)
				if err != nil {
					return a.error(err)
				}
				for _, s := range red.Steps {
					a.log.Info("term removed", "term", s.Removed.TermInfo.Name(), "reason", s.Removed.Reason, "p", s.Removed.PValue)
				}

				fmt.Fprintln(out, a.renderer.Reduction(red))
				fmt.Fprintln(out, a.renderer.Coefficients(red.Final))
				if red.Pending != nil {
					fmt.Fprintln(out, report.SuggestionLine(red.Pending))
				}

				return nil
			}

			m, err := regression.Fit(rows, outcome, terms, opts...)
			if err != nil {
				return a.error(err)
			}
			reducer, err := regression.NewReducer(opts...)
			if err != nil {
				return a.error(err)
			}

			a.log.Info("model fitted", "outcome", outcome, "terms", len(terms), "n", m.N, "r2", m.RSquared)

			fmt.Fprintln(out, a.renderer.Coefficients(m))
			fmt.Fprintln(out, report.SuggestionLine(reducer.Suggest(m.Coefficients)))

			return nil
		},
	}

	cmd.Flags().StringVar(&outcome, "outcome", "", "numeric outcome column")
	cmd.Flags().BoolVar(&reduce, "reduce", false, "apply suggestions until the model is reduced")

	return cmd
}
