// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bench

import (
	"fmt"

	"code.hybscloud.com/multishot/integrate"
	"code.hybscloud.com/multishot/internal/config"
	"code.hybscloud.com/multishot/search"
)

// SearchPlan expands the configured search matrix into one task per
// (engine, size, repetition), in configuration order.
func SearchPlan(cfg config.Config) ([]Task, error) {
	mode := Mode(cfg.Search.Mode)
	if mode != ModeAll {
		mode = ModeOne
	}
	var tasks []Task
	for _, name := range cfg.Search.Engines {
		engine, ok := search.ByName(name)
		if !ok {
			return nil, fmt.Errorf("bench: unknown search engine %q", name)
		}
		for _, n := range cfg.Search.Sizes {
			problem := search.Queens(n)
			if cfg.Search.Encoding == "cached" {
				problem = search.QueensCached(n)
			}
			for rep := 0; rep < cfg.Repeats; rep++ {
				tasks = append(tasks, SearchTask{
					Engine:  engine,
					Problem: problem,
					Mode:    mode,
					Repeat:  rep,
				})
			}
		}
	}
	return tasks, nil
}

// IntegratePlan expands the configured integration matrix into one task per
// (engine, precision, repetition).
func IntegratePlan(cfg config.Config) ([]Task, error) {
	f, err := IntegrandByName(cfg.Integral.Integrand, cfg.Integral.Iterations)
	if err != nil {
		return nil, err
	}
	var tasks []Task
	for _, name := range cfg.Integral.Engines {
		engine, ok := integrate.ByName(name)
		if !ok {
			return nil, fmt.Errorf("bench: unknown integration engine %q", name)
		}
		for _, k := range cfg.Integral.Precisions {
			for rep := 0; rep < cfg.Repeats; rep++ {
				tasks = append(tasks, IntegrateTask{
					Engine:     engine,
					Integrand:  f,
					Precision:  k,
					Iterations: cfg.Integral.Iterations,
				})
			}
		}
	}
	return tasks, nil
}

// IntegrandByName resolves an integrand token. Iterations apply only to the
// logistic map.
func IntegrandByName(name string, iterations int) (integrate.Integrand, error) {
	switch name {
	case "id", "identity":
		return integrate.Identity, nil
	case "square":
		return integrate.Square, nil
	case "logistic":
		if iterations > 1 {
			return integrate.LogisticIter(iterations), nil
		}
		return integrate.Logistic, nil
	default:
		return integrate.Integrand{}, fmt.Errorf("bench: unknown integrand %q", name)
	}
}
