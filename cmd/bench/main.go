// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command bench enumerates (algorithm, input, repetition) combinations for
// both engine families, dispatches them sequentially or across a fixed
// worker pool, and serializes wall-clock timings to CSV files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"code.hybscloud.com/multishot/bench"
	"code.hybscloud.com/multishot/internal/config"
	"code.hybscloud.com/multishot/internal/logger"
)

func main() {
	var (
		configPath string
		jobs       int
		parallel   bool
		repeats    int
		verbose    bool
	)
	cmd := &cobra.Command{
		Use:           "bench",
		Short:         "Benchmark the search and integration strategies",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				var err error
				cfg, err = config.Load(configPath)
				if err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("jobs") {
				cfg.Jobs = jobs
			}
			if cmd.Flags().Changed("parallel") {
				cfg.Parallel = parallel
			}
			if cmd.Flags().Changed("repeats") {
				cfg.Repeats = repeats
			}
			log, err := logger.New(verbose)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
			return run(cfg, log)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "YAML configuration file")
	cmd.Flags().IntVar(&jobs, "jobs", 1, "worker pool size")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "run tasks on a worker pool")
	cmd.Flags().IntVar(&repeats, "repeats", 1, "repetitions per task")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	if err := cmd.Execute(); err != nil {
		fmt.Println(err)
		fmt.Println(cmd.UsageString())
		os.Exit(1)
	}
}

func run(cfg config.Config, log *zap.Logger) error {
	runner := bench.Runner{Parallel: cfg.Parallel, Jobs: cfg.Jobs, Log: log}

	searchTasks, err := bench.SearchPlan(cfg)
	if err != nil {
		return err
	}
	log.Info("running search tasks",
		zap.Int("tasks", len(searchTasks)),
		zap.Bool("parallel", cfg.Parallel),
		zap.Int("jobs", cfg.Jobs),
	)
	if err := write(cfg.Output.SearchFile, runner.Run(searchTasks)); err != nil {
		return err
	}

	integrateTasks, err := bench.IntegratePlan(cfg)
	if err != nil {
		return err
	}
	log.Info("running integration tasks", zap.Int("tasks", len(integrateTasks)))
	if err := write(cfg.Output.IntegralFile, runner.Run(integrateTasks)); err != nil {
		return err
	}
	log.Info("benchmark complete",
		zap.String("search_file", cfg.Output.SearchFile),
		zap.String("integration_file", cfg.Output.IntegralFile),
	)
	return nil
}

func write(path string, rows []bench.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := bench.WriteCSV(f, rows); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
