package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/varistat/dataset"
	"github.com/arloliu/varistat/format"
)

func newPackCmd(a *app) *cobra.Command {
	var column, out, compression string

	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Store a numeric column as a compressed, checksummed .vsa archive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := a.inputFile()
			if err != nil {
				return err
			}
			if out == "" {
				return a.error(fmt.Errorf("--out is required"))
			}

			ct, err := format.ParseCompression(compression)
			if err != nil {
				return a.error(err)
			}

			sample, err := readSample(path, pick(column, a.cfg.Column))
			if err != nil {
				return a.error(err)
			}

			data, st, err := dataset.EncodeSampleWithStats(sample, ct)
			if err != nil {
				return a.error(err)
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return a.error(err)
			}

			a.log.Info("sample packed", "out", out, "n", len(sample), "compression", st.Algorithm,
				"raw_bytes", st.OriginalSize, "payload_bytes", st.CompressedSize, "ratio", st.Ratio())
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: %d values, %d bytes (payload %.1f%% smaller than raw)\n",
				out, len(sample), len(data), st.SpaceSavings())

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&column, "column", "c", "", "numeric column to pack")
	f.StringVarP(&out, "out", "o", "", "output archive path")
	f.StringVar(&compression, "compression", "zstd", "none, zstd, s2 or lz4")

	return cmd
}
