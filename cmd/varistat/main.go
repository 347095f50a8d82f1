// Command varistat computes control-chart statistics, capability, ANOVA effect
// sizes, Nelson run violations and regression reductions from CSV files.
//
// Usage:
//
//	varistat stats   --file data.csv --column Weight --usl 12 --lsl 8
//	varistat nelson  --file data.csv --column Weight [--mean 10]
//	varistat anova   --file data.csv --factor Machine --outcome Weight
//	varistat regress --file data.csv --config analysis.yaml [--reduce]
//	varistat pack    --file data.csv --column Weight --out weight.vsa --compression zstd
//
// Settings are read from the YAML file named by --config or VARISTAT_CONFIG;
// flags override it. A .env file in the working directory is loaded first.
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		return 1
	}

	return 0
}
