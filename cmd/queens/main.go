// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command queens runs one search engine on one n-queens instance.
//
//	queens [--cached] <engine> <one|all> <n>
//
// Engine is one of naive, fun, pruned, effects, bespoke. Malformed
// arguments print the usage line and exit with status 1. A board with no
// solution prints "None": absence is a normal outcome, not an error.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"code.hybscloud.com/multishot/bench"
	"code.hybscloud.com/multishot/search"
)

func main() {
	var cached bool
	cmd := &cobra.Command{
		Use:           "queens <engine> <one|all> <n>",
		Short:         "Run one search strategy on an n-queens instance",
		Args:          cobra.ExactArgs(3),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, ok := search.ByName(args[0])
			if !ok {
				return fmt.Errorf("unknown engine %q", args[0])
			}
			mode := bench.Mode(args[1])
			if mode != bench.ModeOne && mode != bench.ModeAll {
				return fmt.Errorf("unknown mode %q", args[1])
			}
			n, err := strconv.Atoi(args[2])
			if err != nil || n < 1 {
				return fmt.Errorf("board size must be a positive integer, got %q", args[2])
			}
			problem := search.Queens(n)
			if cached {
				problem = search.QueensCached(n)
			}
			task := bench.SearchTask{Engine: engine, Problem: problem, Mode: mode}
			row := task.Run()
			fmt.Println(row[len(row)-1])
			return nil
		},
	}
	cmd.Flags().BoolVar(&cached, "cached", false, "use the gather-once predicate encoding")
	if err := cmd.Execute(); err != nil {
		fmt.Println(err)
		fmt.Println(cmd.UsageString())
		os.Exit(1)
	}
}
