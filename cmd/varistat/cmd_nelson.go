package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/varistat/nelson"
	"github.com/arloliu/varistat/stats"
)

func newNelsonCmd(a *app) *cobra.Command {
	var (
		column    string
		mean      float64
		runLength int
	)

	cmd := &cobra.Command{
		Use:   "nelson",
		Short: "Flag points beyond the control limits (rule 1) and long one-sided runs (rule 2)",
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

			desc, err := stats.Describe(sample)
			if err != nil {
				return a.error(err)
			}

			ref := desc.Mean
			switch {
			case cmd.Flags().Changed("mean"):
				ref = mean
			case a.cfg.Nelson.Mean != nil:
				ref = *a.cfg.Nelson.Mean
			}

			var opts []nelson.Option
			switch {
			case cmd.Flags().Changed("run-length"):
				opts = append(opts, nelson.WithRunLength(runLength))
			case a.cfg.Nelson.RunLength != 0:
				opts = append(opts, nelson.WithRunLength(a.cfg.Nelson.RunLength))
			}
			det, err := nelson.NewDetector(opts...)
			if err != nil {
				return a.error(err)
			}

			rule1 := nelson.Rule1(sample, desc.UCL, desc.LCL)
			rule2 := det.Rule2(sample, ref)

			a.log.Info("rules evaluated", "n", len(sample), "reference_mean", ref,
				"run_length", det.RunLength(), "rule1", rule1.Len(), "rule2", rule2.Len())

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, a.renderer.Violations("Rule 1: beyond 3σ", sample, rule1))
			fmt.Fprintln(out, a.renderer.Violations(
				fmt.Sprintf("Rule 2: %d+ on one side of %g", det.RunLength(), ref), sample, rule2))

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&column, "column", "c", "", "numeric column to analyse")
	f.Float64Var(&mean, "mean", 0, "reference mean (default: sample mean)")
	f.IntVar(&runLength, "run-length", nelson.DefaultRunLength, "minimum run length for rule 2")

	return cmd
}
