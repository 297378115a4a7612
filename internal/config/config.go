// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package config holds the benchmark harness configuration. Repetition
// count, parallelism, and worker count are explicit values threaded into
// the harness entry point; there is no process-wide mutable configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the benchmark driver configuration.
type Config struct {
	Repeats  int         `yaml:"repeats"`
	Parallel bool        `yaml:"parallel"`
	Jobs     int         `yaml:"jobs"`
	Search   Search      `yaml:"search"`
	Integral Integration `yaml:"integration"`
	Output   Output      `yaml:"output"`
}

// Search configures the search benchmark matrix.
type Search struct {
	Engines  []string `yaml:"engines"`
	Encoding string   `yaml:"encoding"` // "pairwise" (default) or "cached"
	Mode     string   `yaml:"mode"`     // "one" or "all"
	Sizes    []int    `yaml:"sizes"`
}

// Integration configures the integration benchmark matrix.
type Integration struct {
	Engines    []string `yaml:"engines"`
	Integrand  string   `yaml:"integrand"` // "id", "square", "logistic"
	Iterations int      `yaml:"iterations"`
	Precisions []int    `yaml:"precisions"`
}

// Output names the destination CSV files.
type Output struct {
	SearchFile   string `yaml:"search_file"`
	IntegralFile string `yaml:"integration_file"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Repeats:  1,
		Parallel: false,
		Jobs:     1,
		Search: Search{
			Engines:  []string{"naive", "fun", "pruned", "effects", "bespoke"},
			Encoding: "pairwise",
			Mode:     "one",
			Sizes:    []int{4, 5, 6, 7, 8},
		},
		Integral: Integration{
			Engines:    []string{"naive", "fun", "modulus", "effects"},
			Integrand:  "id",
			Iterations: 1,
			Precisions: []int{5, 10, 15},
		},
		Output: Output{
			SearchFile:   "search.csv",
			IntegralFile: "integration.csv",
		},
	}
}

// Load reads a YAML configuration file, applying defaults for absent
// fields.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Repeats < 1 {
		return fmt.Errorf("config: repeats must be at least 1, got %d", c.Repeats)
	}
	if c.Parallel && c.Jobs < 1 {
		return fmt.Errorf("config: jobs must be at least 1 when parallel, got %d", c.Jobs)
	}
	switch c.Search.Encoding {
	case "", "pairwise", "cached":
	default:
		return fmt.Errorf("config: unknown queens encoding %q", c.Search.Encoding)
	}
	switch c.Search.Mode {
	case "", "one", "all":
	default:
		return fmt.Errorf("config: unknown search mode %q", c.Search.Mode)
	}
	return nil
}
