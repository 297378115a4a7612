// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/multishot/search"
)

// solutionCounts is the n-queens solution count for n = 1..6.
var solutionCounts = map[int]int{1: 1, 2: 0, 3: 0, 4: 2, 5: 10, 6: 4}

func problems(n int) []search.Problem {
	return []search.Problem{search.Queens(n), search.QueensCached(n)}
}

func TestQueensCounts(t *testing.T) {
	for n, want := range solutionCounts {
		for _, p := range problems(n) {
			for _, e := range search.Engines() {
				got := e.FindAll(p)
				assert.Len(t, got, want, "engine %s, encoding %s, n=%d", e.Name(), p.Name, n)
			}
		}
	}
}

func TestFindOneAgreement(t *testing.T) {
	for n := 1; n <= 6; n++ {
		for _, p := range problems(n) {
			ref, refOK := search.Naive{}.FindOne(p)
			for _, e := range search.Engines() {
				w, ok := e.FindOne(p)
				require.Equal(t, refOK, ok, "engine %s, encoding %s, n=%d", e.Name(), p.Name, n)
				if ok {
					assert.Equal(t, ref, w, "engine %s, encoding %s, n=%d", e.Name(), p.Name, n)
				}
			}
		}
	}
}

func TestFindAllAgreement(t *testing.T) {
	for n := 1; n <= 6; n++ {
		for _, p := range problems(n) {
			ref := search.Naive{}.FindAll(p)
			for _, e := range search.Engines() {
				assert.Equal(t, ref, e.FindAll(p),
					"engine %s, encoding %s, n=%d", e.Name(), p.Name, n)
			}
		}
	}
}

func TestEncodingsAgree(t *testing.T) {
	for n := 1; n <= 6; n++ {
		for _, e := range search.Generic() {
			assert.Equal(t, e.FindAll(search.Queens(n)), e.FindAll(search.QueensCached(n)),
				"engine %s, n=%d", e.Name(), n)
		}
	}
}

func TestNoWitnessIsNotAnError(t *testing.T) {
	for _, p := range problems(3) {
		for _, e := range search.Engines() {
			w, ok := e.FindOne(p)
			assert.False(t, ok, "engine %s, encoding %s", e.Name(), p.Name)
			assert.Nil(t, w, "engine %s, encoding %s", e.Name(), p.Name)
			assert.Empty(t, e.FindAll(p), "engine %s, encoding %s", e.Name(), p.Name)
		}
	}
}

func TestLexicographicOrder(t *testing.T) {
	for _, p := range problems(5) {
		for _, e := range search.Engines() {
			all := e.FindAll(p)
			require.NotEmpty(t, all)
			for i := 1; i < len(all); i++ {
				assert.True(t, lexLess(all[i-1], all[i]),
					"engine %s, encoding %s: %v !< %v", e.Name(), p.Name, all[i-1], all[i])
			}
		}
	}
}

func TestFirstWitnessIsFirstOfAll(t *testing.T) {
	for _, p := range problems(6) {
		for _, e := range search.Engines() {
			all := e.FindAll(p)
			one, ok := e.FindOne(p)
			require.True(t, ok)
			assert.Equal(t, all[0], one, "engine %s, encoding %s", e.Name(), p.Name)
		}
	}
}

func TestKnownSolutionN4(t *testing.T) {
	want := [][]int{{1, 3, 0, 2}, {2, 0, 3, 1}}
	for _, p := range problems(4) {
		for _, e := range search.Engines() {
			assert.Equal(t, want, e.FindAll(p), "engine %s, encoding %s", e.Name(), p.Name)
		}
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"naive", "fun", "pruned", "effects", "bespoke"} {
		e, ok := search.ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, e.Name())
	}
	_, ok := search.ByName("quantum")
	assert.False(t, ok)
}

func TestProblemTest(t *testing.T) {
	for _, p := range problems(4) {
		assert.True(t, p.Test([]int{1, 3, 0, 2}), p.Name)
		assert.False(t, p.Test([]int{0, 1, 2, 3}), p.Name)
	}
}

func lexLess(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func BenchmarkFindAll(b *testing.B) {
	const n = 7
	for _, e := range search.Engines() {
		b.Run(e.Name(), func(b *testing.B) {
			p := search.Queens(n)
			for b.Loop() {
				_ = e.FindAll(p)
			}
		})
	}
}

func BenchmarkFindOne(b *testing.B) {
	const n = 8
	for _, e := range search.Engines() {
		if e.Name() == "naive" {
			// Full enumeration of 8^8 candidates per iteration drowns the
			// comparison; the naive engine is benchmarked at FindAll n=7.
			continue
		}
		b.Run(e.Name(), func(b *testing.B) {
			p := search.Queens(n)
			for b.Loop() {
				_, _ = e.FindOne(p)
			}
		})
	}
}
