// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bench drives the search and integration engines across configured
// inputs and repetitions and records wall-clock timings. It is deliberately
// dumb scaffolding around the engines: the engines' purity carries all
// correctness, the harness only measures.
package bench

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"code.hybscloud.com/multishot/integrate"
	"code.hybscloud.com/multishot/search"
)

// Mode selects which search operation a task exercises.
type Mode string

// The two search modes.
const (
	ModeOne Mode = "one"
	ModeAll Mode = "all"
)

// Row is one comma-separated output record.
//
// Search rows:      searcher,mode,repeat,input_size,elapsed_seconds,result
// Integration rows: integrator,precision,iterations,elapsed_seconds,result
type Row []string

// Task is one unit of benchmark work. Run executes the task once and
// returns its output row; tasks are independent and may run in any order.
type Task interface {
	Run() Row
}

// SearchTask measures one search engine run.
type SearchTask struct {
	Engine  search.Engine
	Problem search.Problem
	Mode    Mode
	Repeat  int
}

// Run implements Task.
func (t SearchTask) Run() Row {
	start := time.Now()
	var result string
	switch t.Mode {
	case ModeAll:
		result = strconv.Itoa(len(t.Engine.FindAll(t.Problem)))
	default:
		w, ok := t.Engine.FindOne(t.Problem)
		result = formatWitness(w, ok)
	}
	elapsed := time.Since(start).Seconds()
	return Row{
		t.Engine.Name(),
		string(t.Mode),
		strconv.Itoa(t.Repeat),
		strconv.Itoa(len(t.Problem.Sizes)),
		formatSeconds(elapsed),
		result,
	}
}

// IntegrateTask measures one integration engine run.
type IntegrateTask struct {
	Engine     integrate.Integrator
	Integrand  integrate.Integrand
	Precision  int
	Iterations int
}

// Run implements Task.
func (t IntegrateTask) Run() Row {
	start := time.Now()
	result := t.Engine.Integrate(t.Precision, t.Integrand)
	elapsed := time.Since(start).Seconds()
	return Row{
		t.Engine.Name(),
		strconv.Itoa(t.Precision),
		strconv.Itoa(t.Iterations),
		formatSeconds(elapsed),
		result.String(),
	}
}

// formatWitness renders a FindOne result: absence is "None", a witness is
// "Some [i0; i1; ...]".
func formatWitness(w []int, ok bool) string {
	if !ok {
		return "None"
	}
	parts := make([]string, len(w))
	for i, v := range w {
		parts[i] = strconv.Itoa(v)
	}
	return "Some [" + strings.Join(parts, "; ") + "]"
}

func formatSeconds(s float64) string {
	return fmt.Sprintf("%f", s)
}
