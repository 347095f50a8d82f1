package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/varistat/stats"
)

func newStatsCmd(a *app) *cobra.Command {
	var (
		column           string
		usl, lsl, target float64
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Descriptive statistics, control limits, capability and grades",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := a.inputFile()
			if err != nil {
				return err
			}

			sample, err := readSample(path, pick(column, a.cfg.Column))
			if err != nil {
				return a.error(err)
			}

			limits := a.cfg.Limits
			if cmd.Flags().Changed("usl") {
				limits.USL = &usl
			}
			if cmd.Flags().Changed("lsl") {
				limits.LSL = &lsl
			}
			if cmd.Flags().Changed("target") {
				limits.Target = &target
			}

			res, err := stats.Calculate(sample,
				stats.WithSpecLimits(limits),
				stats.WithGrades(a.cfg.Grades...),
			)
			if err != nil {
				return a.error(err)
			}

			a.log.Info("statistics computed", "n", res.N, "mean", res.Mean, "stddev", res.StdDev)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, a.renderer.Stats(res))
			if g := a.renderer.Grades(res); g != "" {
				fmt.Fprintln(out, g)
			}

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&column, "column", "c", "", "numeric column to analyse")
	f.Float64Var(&usl, "usl", 0, "upper specification limit")
	f.Float64Var(&lsl, "lsl", 0, "lower specification limit")
	f.Float64Var(&target, "target", 0, "target value")

	return cmd
}
