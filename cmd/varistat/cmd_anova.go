package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/varistat/anova"
)

func newAnovaCmd(a *app) *cobra.Command {
	var factor, outcome string

	cmd := &cobra.Command{
		Use:   "anova",
		Short: "One-way ANOVA and eta-squared of an outcome by a factor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := a.inputFile()
			if err != nil {
				return err
			}

			factor, outcome := pick(factor, a.cfg.Factor), pick(outcome, a.cfg.Outcome)
			if factor == "" || outcome == "" {
				return a.error(fmt.Errorf("--factor and --outcome are required"))
			}

			rows, err := readRows(path)
			if err != nil {
				return a.error(err)
			}

			tbl, err := anova.OneWay(rows, factor, outcome)
			if err != nil {
				return a.error(err)
			}

			a.log.Info("anova computed", "factor", factor, "outcome", outcome,
				"groups", len(tbl.Groups), "eta_squared", tbl.EtaSquared)

			fmt.Fprintln(cmd.OutOrStdout(), a.renderer.Anova(tbl))

			return nil
		},
	}

	cmd.Flags().StringVar(&factor, "factor", "", "grouping column")
	cmd.Flags().StringVar(&outcome, "outcome", "", "numeric outcome column")

	return cmd
}
