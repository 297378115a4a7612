// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command integrate runs one integration engine on one integrand.
//
//	integrate <engine> <integrand> <precision> [iterations]
//
// Engine is one of naive, fun, modulus, effects; integrand is id, square,
// or logistic (iterations > 1 iterates the logistic map). The result is
// printed in the dyadic textual form "(<mantissa>, <exponent>)". Malformed
// arguments print the usage line and exit with status 1.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"code.hybscloud.com/multishot/bench"
	"code.hybscloud.com/multishot/integrate"
)

func main() {
	cmd := &cobra.Command{
		Use:           "integrate <engine> <integrand> <precision> [iterations]",
		Short:         "Run one integration strategy at a given precision",
		Args:          cobra.RangeArgs(3, 4),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, ok := integrate.ByName(args[0])
			if !ok {
				return fmt.Errorf("unknown engine %q", args[0])
			}
			precision, err := strconv.Atoi(args[2])
			if err != nil || precision < 1 {
				return fmt.Errorf("precision must be a positive integer, got %q", args[2])
			}
			iterations := 1
			if len(args) == 4 {
				iterations, err = strconv.Atoi(args[3])
				if err != nil || iterations < 1 {
					return fmt.Errorf("iterations must be a positive integer, got %q", args[3])
				}
			}
			f, err := bench.IntegrandByName(args[1], iterations)
			if err != nil {
				return err
			}
			fmt.Println(engine.Integrate(precision, f))
			return nil
		},
	}
	if err := cmd.Execute(); err != nil {
		fmt.Println(err)
		fmt.Println(cmd.UsageString())
		os.Exit(1)
	}
}
