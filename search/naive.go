// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package search

// Naive is exhaustive generate-and-test: it enumerates every total
// assignment in lexicographic order and evaluates the predicate on each
// one, re-querying the candidate afresh for every comparison the predicate
// makes. Nothing learned about one candidate carries over to the next.
type Naive struct{}

// Name implements Engine.
func (Naive) Name() string { return "naive" }

// FindOne implements Engine.
func (Naive) FindOne(p Problem) ([]int, bool) {
	var witness []int
	naiveEnum(p, make([]int, len(p.Sizes)), 0, func(cand []int) bool {
		witness = snapshot(cand)
		return true
	})
	return witness, witness != nil
}

// FindAll implements Engine.
func (Naive) FindAll(p Problem) [][]int {
	out := [][]int{}
	naiveEnum(p, make([]int, len(p.Sizes)), 0, func(cand []int) bool {
		out = append(out, snapshot(cand))
		return false
	})
	return out
}

// naiveEnum walks the full assignment space depth first. visit receives
// each witness and reports whether enumeration should stop.
func naiveEnum(p Problem, assign []int, pos int, visit func([]int) bool) bool {
	if pos == len(p.Sizes) {
		if p.Test(assign) {
			return visit(assign)
		}
		return false
	}
	for v := 0; v < p.Sizes[pos]; v++ {
		assign[pos] = v
		if naiveEnum(p, assign, pos+1, visit) {
			return true
		}
	}
	return false
}
