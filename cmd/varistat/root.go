package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/varistat/report"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	configPath string
	logLevel   string
	format     string
	precision  int
	file       string

	cfg      *Config
	log      *slog.Logger
	renderer *report.Renderer
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "varistat",
		Short:         "Process statistics from the command line",
		Long:          "varistat computes control limits, capability indices, ANOVA effect sizes,\nNelson run violations and regression term reductions from CSV data.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML analysis configuration (default $"+envConfig+")")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (default $"+envLogLevel+" or info)")
	pf.StringVar(&a.format, "format", "", "output format: text, markdown, csv")
	pf.IntVar(&a.precision, "precision", report.DefaultPrecision, "decimals in numeric output")
	pf.StringVarP(&a.file, "file", "f", "", "input CSV file (or .vsa archive for stats, nelson)")

	root.AddCommand(
		newStatsCmd(a),
		newNelsonCmd(a),
		newAnovaCmd(a),
		newRegressCmd(a),
		newPackCmd(a),
	)

	return root
}

func (a *app) init(cmd *cobra.Command) error {
	errOut := cmd.ErrOrStderr()

	if err := loadEnv(); err != nil {
		return a.fail(errOut, err)
	}

	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return a.fail(errOut, err)
	}
	a.cfg = cfg

	levelName := a.logLevel
	if levelName == "" {
		levelName = os.Getenv(envLogLevel)
	}
	if levelName == "" {
		levelName = cfg.LogLevel
	}
	level, err := parseLevel(levelName)
	if err != nil {
		return a.fail(errOut, err)
	}
	a.log = newLogger(errOut, level)

	formatName := a.format
	if formatName == "" {
		formatName = cfg.Report.Format
	}
	f, err := report.ParseFormat(formatName)
	if err != nil {
		return a.error(err)
	}

	precision := a.precision
	if !cmd.Flags().Changed("precision") && cfg.Report.Precision != nil {
		precision = *cfg.Report.Precision
	}
	a.renderer, err = report.NewRenderer(report.WithFormat(f), report.WithPrecision(precision))
	if err != nil {
		return a.error(err)
	}

	if a.file == "" {
		a.file = cfg.File
	}

	a.log.Debug("configuration loaded", "config", a.configPath, "file", a.file, "format", f)

	return nil
}

// inputFile returns the configured input path or an error when none is set.
func (a *app) inputFile() (string, error) {
	if a.file == "" {
		return "", a.error(fmt.Errorf("no input: pass --file or set file in the config"))
	}

	return a.file, nil
}

// pick returns the flag value when set, else the configured fallback.
func pick(flagValue, configured string) string {
	if flagValue != "" {
		return flagValue
	}

	return configured
}

// error logs err and returns it, so command handlers can `return a.error(err)`.
func (a *app) error(err error) error {
	a.log.Error("command failed", "error", err)
	return err
}

// fail reports errors that happen before the logger exists.
func (a *app) fail(w io.Writer, err error) error {
	newLogger(w, slog.LevelInfo).Error("startup failed", "error", err)
	return err
}
