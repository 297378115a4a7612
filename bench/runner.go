// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bench

import (
	"encoding/csv"
	"io"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Runner executes a batch of tasks. With Parallel set, a fixed-size pool of
// Jobs workers pulls task indices and writes each result into the slot
// reserved for that task, so no synchronization beyond pool teardown is
// needed and row order is independent of scheduling. Engine purity
// guarantees reordering cannot affect results, only measured wall clock.
type Runner struct {
	Parallel bool
	Jobs     int
	Log      *zap.Logger
}

// Run executes every task and returns the rows in task order.
func (r Runner) Run(tasks []Task) []Row {
	log := r.Log
	if log == nil {
		log = zap.NewNop()
	}
	rows := make([]Row, len(tasks))
	if !r.Parallel || r.Jobs <= 1 {
		for i, t := range tasks {
			rows[i] = t.Run()
			log.Info("task finished", zap.Int("index", i), zap.Strings("row", rows[i]))
		}
		return rows
	}
	var g errgroup.Group
	g.SetLimit(r.Jobs)
	for i, t := range tasks {
		g.Go(func() error {
			rows[i] = t.Run()
			log.Info("task finished", zap.Int("index", i), zap.Strings("row", rows[i]))
			return nil
		})
	}
	// Tasks never return errors; an unexpected panic aborts the run, which
	// is the intended failure behavior.
	_ = g.Wait()
	return rows
}

// WriteCSV serializes rows in the benchmark output format.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
