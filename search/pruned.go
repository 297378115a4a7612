// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package search

// Pruned is classic incremental backtracking: every extension of the
// partial assignment is checked for feasibility immediately, and the branch
// is abandoned on the first conflict — no full candidate is built before a
// failure is detected. The domain-specific Safe test is what the generic
// strategies deliberately do without.
type Pruned struct{}

// Name implements Engine.
func (Pruned) Name() string { return "pruned" }

// FindOne implements Engine.
func (Pruned) FindOne(p Problem) ([]int, bool) {
	var witness []int
	prunedEnum(p, make([]int, len(p.Sizes)), 0, func(cand []int) bool {
		witness = snapshot(cand)
		return true
	})
	return witness, witness != nil
}

// FindAll implements Engine.
func (Pruned) FindAll(p Problem) [][]int {
	out := [][]int{}
	prunedEnum(p, make([]int, len(p.Sizes)), 0, func(cand []int) bool {
		out = append(out, snapshot(cand))
		return false
	})
	return out
}

func prunedEnum(p Problem, assign []int, pos int, visit func([]int) bool) bool {
	if pos == len(p.Sizes) {
		if p.Safe == nil && !p.Test(assign) {
			return false
		}
		return visit(assign)
	}
	at := func(i int) int { return assign[i] }
	for v := 0; v < p.Sizes[pos]; v++ {
		assign[pos] = v
		if p.Safe != nil && !p.Safe(at, pos) {
			continue
		}
		if prunedEnum(p, assign, pos+1, visit) {
			return true
		}
	}
	return false
}
