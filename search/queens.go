// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package search

import "code.hybscloud.com/multishot/cps"

// The n-queens problem: position r is row r, its value the column of that
// row's queen. A candidate is a witness when no two queens share a column
// or a diagonal.
//
// Two encodings of the same predicate are kept as distinct problems on
// purpose. Queens re-queries the candidate for every pairwise comparison,
// so the number of queries a strategy must answer (or cache, or replay)
// grows quadratically; QueensCached gathers each position exactly once
// before checking pairs, moving that caching below the engines. The two
// encodings are logically identical but load the strategies differently,
// which is itself a measured point of comparison.

// Queens returns the pairwise re-querying encoding of n-queens.
func Queens(n int) Problem {
	return Problem{
		Name:  "queens",
		Sizes: uniform(n, n),
		Pred:  queensPairwise(n),
		Safe:  queensSafe,
	}
}

// QueensCached returns the encoding that gathers every position once
// before checking pairs.
func QueensCached(n int) Problem {
	return Problem{
		Name:  "queens-cached",
		Sizes: uniform(n, n),
		Pred:  queensGather(n),
		Safe:  queensSafe,
	}
}

func uniform(n, size int) []int {
	sizes := make([]int, n)
	for i := range sizes {
		sizes[i] = size
	}
	return sizes
}

// attacks reports whether queens in columns c1 and c2, dist rows apart,
// attack each other.
func attacks(c1, c2, dist int) bool {
	d := c1 - c2
	if d < 0 {
		d = -d
	}
	return d == 0 || d == dist
}

// queensSafe decides feasibility of the prefix ending at row last: the new
// queen must not attack any earlier one.
func queensSafe(at Candidate, last int) bool {
	for r := 0; r < last; r++ {
		if attacks(at(r), at(last), last-r) {
			return false
		}
	}
	return true
}

// queensPairwise checks every row pair, asking for both rows anew each
// time. First queries occur in ascending row order, which fixes the
// engines' common enumeration order.
func queensPairwise(n int) func(Asker) cps.Eff[bool] {
	return func(ask Asker) cps.Eff[bool] {
		var pair func(r1, r2 int) cps.Eff[bool]
		pair = func(r1, r2 int) cps.Eff[bool] {
			if r1 >= n-1 {
				return cps.Pure(true)
			}
			return cps.Bind(ask(r1), func(c1 int) cps.Eff[bool] {
				return cps.Bind(ask(r2), func(c2 int) cps.Eff[bool] {
					if attacks(c1, c2, r2-r1) {
						return cps.Pure(false)
					}
					if r2 == n-1 {
						return pair(r1+1, r1+2)
					}
					return pair(r1, r2+1)
				})
			})
		}
		return pair(0, 1)
	}
}

// queensGather asks every row exactly once, then checks all pairs against
// the gathered columns.
func queensGather(n int) func(Asker) cps.Eff[bool] {
	return func(ask Asker) cps.Eff[bool] {
		var gather func(r int, cols []int) cps.Eff[bool]
		gather = func(r int, cols []int) cps.Eff[bool] {
			if r == n {
				return cps.Pure(allPairsClear(cols))
			}
			return cps.Bind(ask(r), func(c int) cps.Eff[bool] {
				// Copy on extension: the gathered prefix is shared by every
				// resumption of the enclosing continuation.
				next := make([]int, r+1)
				copy(next, cols)
				next[r] = c
				return gather(r+1, next)
			})
		}
		return gather(0, nil)
	}
}

func allPairsClear(cols []int) bool {
	for r1 := 0; r1 < len(cols); r1++ {
		for r2 := r1 + 1; r2 < len(cols); r2++ {
			if attacks(cols[r1], cols[r2], r2-r1) {
				return false
			}
		}
	}
	return true
}
