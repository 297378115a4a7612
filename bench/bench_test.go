// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bench_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/multishot/bench"
	"code.hybscloud.com/multishot/integrate"
	"code.hybscloud.com/multishot/internal/config"
	"code.hybscloud.com/multishot/search"
)

func TestSearchTaskRowOne(t *testing.T) {
	task := bench.SearchTask{
		Engine:  search.Bespoke{},
		Problem: search.Queens(4),
		Mode:    bench.ModeOne,
		Repeat:  3,
	}
	row := task.Run()
	require.Len(t, row, 6)
	assert.Equal(t, "bespoke", row[0])
	assert.Equal(t, "one", row[1])
	assert.Equal(t, "3", row[2])
	assert.Equal(t, "4", row[3])
	assert.Equal(t, "Some [1; 3; 0; 2]", row[5])
}

func TestSearchTaskRowNone(t *testing.T) {
	task := bench.SearchTask{
		Engine:  search.Effects{},
		Problem: search.Queens(3),
		Mode:    bench.ModeOne,
	}
	assert.Equal(t, "None", task.Run()[5])
}

func TestSearchTaskRowAll(t *testing.T) {
	task := bench.SearchTask{
		Engine:  search.Pruned{},
		Problem: search.Queens(5),
		Mode:    bench.ModeAll,
	}
	row := task.Run()
	assert.Equal(t, "all", row[1])
	assert.Equal(t, "10", row[5])
}

func TestIntegrateTaskRow(t *testing.T) {
	task := bench.IntegrateTask{
		Engine:     integrate.Effects{},
		Integrand:  integrate.Identity,
		Precision:  5,
		Iterations: 1,
	}
	row := task.Run()
	require.Len(t, row, 5)
	assert.Equal(t, "effects", row[0])
	assert.Equal(t, "5", row[1])
	assert.Equal(t, "1", row[2])
	assert.Equal(t, "(1, -1)", row[4])
}

func TestRunnerParallelMatchesSequential(t *testing.T) {
	cfg := config.Default()
	cfg.Search.Sizes = []int{4, 5, 6}
	cfg.Repeats = 2
	tasks, err := bench.SearchPlan(cfg)
	require.NoError(t, err)

	seq := bench.Runner{}.Run(tasks)
	par := bench.Runner{Parallel: true, Jobs: 4}.Run(tasks)
	require.Len(t, par, len(seq))
	for i := range seq {
		// Column 4 is wall clock and differs run to run.
		assert.Equal(t, seq[i][:4], par[i][:4], "row %d", i)
		assert.Equal(t, seq[i][5], par[i][5], "row %d", i)
	}
}

func TestSearchPlanShape(t *testing.T) {
	cfg := config.Default()
	cfg.Search.Engines = []string{"fun", "effects"}
	cfg.Search.Sizes = []int{4, 5}
	cfg.Repeats = 3
	tasks, err := bench.SearchPlan(cfg)
	require.NoError(t, err)
	assert.Len(t, tasks, 2*2*3)

	first, ok := tasks[0].(bench.SearchTask)
	require.True(t, ok)
	assert.Equal(t, "fun", first.Engine.Name())
	assert.Equal(t, 0, first.Repeat)
}

func TestSearchPlanCachedEncoding(t *testing.T) {
	cfg := config.Default()
	cfg.Search.Encoding = "cached"
	cfg.Search.Sizes = []int{4}
	tasks, err := bench.SearchPlan(cfg)
	require.NoError(t, err)
	task := tasks[0].(bench.SearchTask)
	assert.Equal(t, search.QueensCached(4).Name, task.Problem.Name)
}

func TestSearchPlanUnknownEngine(t *testing.T) {
	cfg := config.Default()
	cfg.Search.Engines = []string{"oracle"}
	_, err := bench.SearchPlan(cfg)
	assert.ErrorContains(t, err, "oracle")
}

func TestIntegratePlanShape(t *testing.T) {
	cfg := config.Default()
	cfg.Integral.Engines = []string{"modulus"}
	cfg.Integral.Precisions = []int{5, 10}
	cfg.Repeats = 2
	tasks, err := bench.IntegratePlan(cfg)
	require.NoError(t, err)
	require.Len(t, tasks, 4)
	task := tasks[0].(bench.IntegrateTask)
	assert.Equal(t, "modulus", task.Engine.Name())
	assert.Equal(t, 5, task.Precision)
}

func TestIntegrandByName(t *testing.T) {
	f, err := bench.IntegrandByName("square", 1)
	require.NoError(t, err)
	assert.Equal(t, "square", f.Name)

	f, err = bench.IntegrandByName("logistic", 3)
	require.NoError(t, err)
	assert.Equal(t, "logistic^3", f.Name)

	_, err = bench.IntegrandByName("sin", 1)
	assert.Error(t, err)
}

func TestWriteCSV(t *testing.T) {
	rows := []bench.Row{
		{"effects", "one", "0", "8", "0.015625", "Some [0; 4; 7; 5; 2; 6; 1; 3]"},
		{"naive", "all", "0", "6", "1.000000", "4"},
	}
	var buf bytes.Buffer
	require.NoError(t, bench.WriteCSV(&buf, rows))
	want := "effects,one,0,8,0.015625,Some [0; 4; 7; 5; 2; 6; 1; 3]\n" +
		"naive,all,0,6,1.000000,4\n"
	assert.Equal(t, want, buf.String())
}
