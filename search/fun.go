// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package search

import "code.hybscloud.com/multishot/cps"

// Fun is the memoized functional strategy: a continuation-passing
// critical-point search. Each node runs the predicate against the current
// partial assignment, answering already assigned positions from the memo
// table for free. The first query of an unassigned position is the node's
// critical point: the rest of the evaluation is discarded and the search
// case-splits additively over that position's domain, re-running the
// predicate once per branch. Shared evaluation prefixes are re-traversed at
// every branch — served by the memo table rather than recomputed — which is
// the overhead the Effects strategy eliminates.
type Fun struct{}

// Name implements Engine.
func (Fun) Name() string { return "fun" }

// FindOne implements Engine.
func (Fun) FindOne(p Problem) ([]int, bool) {
	var witness []int
	funSearch(p, newPartial(len(p.Sizes)), func(cand []int) bool {
		witness = snapshot(cand)
		return true
	})
	return witness, witness != nil
}

// FindAll implements Engine.
func (Fun) FindAll(p Problem) [][]int {
	out := [][]int{}
	funSearch(p, newPartial(len(p.Sizes)), func(cand []int) bool {
		out = append(out, snapshot(cand))
		return false
	})
	return out
}

// partial is the memo table of a critical-point search node: the positions
// assigned so far on the path from the root.
type partial struct {
	value    []int
	assigned []bool
}

func newPartial(n int) *partial {
	return &partial{value: make([]int, n), assigned: make([]bool, n)}
}

// outcome is the result of one predicate run against a partial assignment.
type outcome struct {
	decided  bool
	accepted bool
	critical int
}

// probe runs the predicate against the partial assignment. Queries of
// assigned positions are answered from the memo table; the first query of
// an unassigned position abandons the remaining evaluation and reports that
// position as the critical point.
func probe(p Problem, pa *partial) outcome {
	m := p.Pred(func(pos int) cps.Eff[int] {
		if pa.assigned[pos] {
			return cps.Pure(pa.value[pos])
		}
		return cps.Shift[cps.Resumed, int](func(_ func(int) cps.Resumed) cps.Resumed {
			// Discard the captured continuation: the predicate's value is
			// not determined by the current partial assignment.
			return outcome{critical: pos}
		})
	})
	r := cps.RunWith(m, func(b bool) cps.Resumed {
		return outcome{decided: true, accepted: b}
	})
	return r.(outcome)
}

// funSearch decomposes the space below the partial assignment. visit
// receives each witness and reports whether the search should stop.
func funSearch(p Problem, pa *partial, visit func([]int) bool) bool {
	switch o := probe(p, pa); {
	case o.decided && !o.accepted:
		return false
	case o.decided:
		return completeUnassigned(p, pa, 0, visit)
	default:
		for v := 0; v < p.Sizes[o.critical]; v++ {
			pa.value[o.critical] = v
			pa.assigned[o.critical] = true
			if funSearch(p, pa, visit) {
				pa.assigned[o.critical] = false
				return true
			}
		}
		pa.assigned[o.critical] = false
		return false
	}
}

// completeUnassigned enumerates every extension of the positions the
// predicate never inspected; the predicate's verdict covers them all.
func completeUnassigned(p Problem, pa *partial, pos int, visit func([]int) bool) bool {
	for ; pos < len(p.Sizes); pos++ {
		if !pa.assigned[pos] {
			for v := 0; v < p.Sizes[pos]; v++ {
				pa.value[pos] = v
				pa.assigned[pos] = true
				if completeUnassigned(p, pa, pos+1, visit) {
					pa.assigned[pos] = false
					return true
				}
				pa.assigned[pos] = false
			}
			return false
		}
	}
	return visit(pa.value)
}
