// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package search

import "code.hybscloud.com/multishot/cps"

// Effects is the multi-shot continuation strategy. The predicate is run
// once; at the point it first queries an unassigned position, [cps.Shift]
// captures the entire remainder of the predicate's evaluation, and the
// captured continuation is resumed once per domain value of that position.
// Every step the predicate performed before the suspension is shared by all
// resumptions — the branches duplicate no work done before they diverge,
// unlike [Fun], which re-runs the predicate through its memo table at every
// branch.
//
// It structurally mirrors Fun's branching recursion; only the sharing
// mechanism differs, which is what makes the runtime comparison meaningful.
type Effects struct{}

// Name implements Engine.
func (Effects) Name() string { return "effects" }

// FindOne implements Engine.
func (Effects) FindOne(p Problem) ([]int, bool) {
	var witness []int
	effSearch(p, func(cand []int) bool {
		witness = snapshot(cand)
		return true
	})
	return witness, witness != nil
}

// FindAll implements Engine.
func (Effects) FindAll(p Problem) [][]int {
	out := [][]int{}
	effSearch(p, func(cand []int) bool {
		out = append(out, snapshot(cand))
		return false
	})
	return out
}

// effSearch runs the predicate a single time under the branching
// interpretation. Resumption is strictly depth first and in ascending
// domain order, so witnesses appear lexicographically; the stop flag cuts
// remaining resumptions short once a visit asks to halt.
func effSearch(p Problem, visit func([]int) bool) {
	n := len(p.Sizes)
	st := &effState{
		value:    make([]int, n),
		assigned: make([]bool, n),
		visit:    visit,
	}
	m := p.Pred(func(pos int) cps.Eff[int] {
		if st.assigned[pos] {
			return cps.Pure(st.value[pos])
		}
		return cps.Shift[cps.Resumed, int](func(resume func(int) cps.Resumed) cps.Resumed {
			st.assigned[pos] = true
			for v := 0; v < p.Sizes[pos] && !st.stop; v++ {
				st.value[pos] = v
				resume(v)
			}
			st.assigned[pos] = false
			return nil
		})
	})
	cps.RunWith(m, func(accepted bool) cps.Resumed {
		if accepted && !st.stop {
			st.complete(p, 0)
		}
		return nil
	})
}

// effState is the working assignment threaded through resumptions. The
// search is strictly depth first, so one mutable assignment with undo on
// branch exit is sound even though continuations are resumed multiple
// times.
type effState struct {
	value    []int
	assigned []bool
	stop     bool
	visit    func([]int) bool
}

// complete enumerates the positions the predicate never inspected before
// accepting, then emits the witness.
func (st *effState) complete(p Problem, pos int) {
	for ; pos < len(p.Sizes); pos++ {
		if !st.assigned[pos] {
			st.assigned[pos] = true
			for v := 0; v < p.Sizes[pos] && !st.stop; v++ {
				st.value[pos] = v
				st.complete(p, pos+1)
			}
			st.assigned[pos] = false
			return
		}
	}
	if st.visit(st.value) {
		st.stop = true
	}
}
