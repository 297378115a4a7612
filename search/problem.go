// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package search solves finite combinatorial search problems four
// operationally distinct but semantically equivalent ways, plus a bespoke
// baseline. A problem is an ordered sequence of per-position domain sizes
// together with a decidable predicate over total candidate assignments; a
// witness is any assignment satisfying the predicate.
//
// The predicate is written in continuation-passing style over [cps.Eff] and
// requests position values through an [Asker]. That single representation
// serves every engine: direct engines interpret the asker as an immediate
// lookup, the functional engine interprets an unassigned query as a
// critical point and abandons the rest of the evaluation, and the
// effect-handler engine interprets it as a suspension whose captured
// continuation is resumed once per domain value — the multi-shot mechanism
// under study.
//
// All engines enumerate witnesses in the same canonical lexicographic
// order, so FindAll results are directly comparable and FindOne agrees on
// the first witness (or on absence, which is a normal outcome rather than
// an error).
package search

import "code.hybscloud.com/multishot/cps"

// Candidate gives the value assigned at a position.
type Candidate func(pos int) int

// Asker requests the value at a position from within a CPS predicate.
// Engines interpose here; a predicate must not assume anything about how a
// request is answered beyond receiving a value in the position's domain.
type Asker func(pos int) cps.Eff[int]

// Problem is a finite sequence search instance.
//
// Pred must be deterministic and total for total assignments, and must
// tolerate redundant re-evaluation: the naive engine re-runs it afresh for
// every candidate. Engines agree on witness order only when Pred's first
// query of each position occurs in ascending position order, which both
// n-queens encodings satisfy.
//
// Safe, when non-nil, decides feasibility of the prefix [0..last] of a
// partial assignment and must be exact for the problem: a total assignment
// is a witness iff every prefix is safe. The pruned engine backtracks on
// the first unsafe extension. When Safe is nil the pruned engine degrades
// to testing Pred at the leaves.
type Problem struct {
	Name  string
	Sizes []int
	Pred  func(ask Asker) cps.Eff[bool]
	Safe  func(at Candidate, last int) bool
}

// Test evaluates the predicate on a total assignment by answering every
// query immediately.
func (p Problem) Test(cand []int) bool {
	m := p.Pred(func(pos int) cps.Eff[int] {
		return cps.Pure(cand[pos])
	})
	return cps.RunWith(m, func(b bool) cps.Resumed { return b }).(bool)
}

// Engine is a search strategy. FindOne returns a witness and true, or
// (nil, false) when no witness exists. FindAll returns every witness in
// lexicographic order.
type Engine interface {
	Name() string
	FindOne(p Problem) ([]int, bool)
	FindAll(p Problem) [][]int
}

// Engines returns the four generic engines and the bespoke baseline in
// canonical order.
func Engines() []Engine {
	return []Engine{Naive{}, Fun{}, Pruned{}, Effects{}, Bespoke{}}
}

// Generic returns only the four generic engines.
func Generic() []Engine {
	return []Engine{Naive{}, Fun{}, Pruned{}, Effects{}}
}

// ByName looks up an engine by its name token.
func ByName(name string) (Engine, bool) {
	for _, e := range Engines() {
		if e.Name() == name {
			return e, true
		}
	}
	return nil, false
}

// snapshot copies an assignment so collected witnesses do not alias the
// engine's working state.
func snapshot(assign []int) []int {
	out := make([]int, len(assign))
	copy(out, assign)
	return out
}
