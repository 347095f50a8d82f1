package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/varistat/regression"
	"github.com/arloliu/varistat/stats"
)

const (
	envConfig   = "VARISTAT_CONFIG"
	envLogLevel = "VARISTAT_LOG_LEVEL"
)

// Config is the YAML analysis configuration. Every field is optional.
type Config struct {
	File    string `yaml:"file"`
	Column  string `yaml:"column"`
	Factor  string `yaml:"factor"`
	Outcome string `yaml:"outcome"`

	Limits stats.SpecLimits  `yaml:"limits"`
	Grades []stats.GradeBand `yaml:"grades"`

	Nelson struct {
		RunLength int      `yaml:"run_length"`
		Mean      *float64 `yaml:"mean"`
	} `yaml:"nelson"`

	Regression struct {
		Terms           []regression.Term `yaml:"terms"`
		Alpha           float64           `yaml:"alpha"`
		VIFThreshold    float64           `yaml:"vif_threshold"`
		PValueTolerance *float64          `yaml:"p_value_tolerance"`
		Reduce          bool              `yaml:"reduce"`
	} `yaml:"regression"`

	Report struct {
		Format    string `yaml:"format"`
		Precision *int   `yaml:"precision"`
	} `yaml:"report"`

	LogLevel string `yaml:"log_level"`
}

// loadEnv loads .env from the working directory when present.
func loadEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	return nil
}

// loadConfig reads the YAML configuration at path, falling back to
// VARISTAT_CONFIG. An empty path yields the zero configuration.
func loadConfig(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(envConfig)
	}

	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// regressionOptions converts the configured tuning values into options.
func (c *Config) regressionOptions() []regression.Option {
	var opts []regression.Option
	if c.Regression.Alpha != 0 {
		opts = append(opts, regression.WithAlpha(c.Regression.Alpha))
	}
	if c.Regression.VIFThreshold != 0 {
		opts = append(opts, regression.WithVIFThreshold(c.Regression.VIFThreshold))
	}
	if c.Regression.PValueTolerance != nil {
		opts = append(opts, regression.WithPValueTolerance(*c.Regression.PValueTolerance))
	}

	return opts
}
