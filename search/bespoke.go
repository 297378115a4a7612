// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package search

// Bespoke is the hand-optimized n-queens baseline: explicit index-based
// backtracking over one mutable array, no generic problem machinery at all.
// It serves purely as the performance ceiling the generic strategies are
// measured against. It reads only the board size from the problem and
// assumes n-queens semantics; it is not a general engine.
type Bespoke struct{}

// Name implements Engine.
func (Bespoke) Name() string { return "bespoke" }

// FindOne implements Engine.
func (Bespoke) FindOne(p Problem) ([]int, bool) {
	n := len(p.Sizes)
	board := make([]int, n)
	if bespokeOne(board, 0) {
		return board, true
	}
	return nil, false
}

// FindAll implements Engine.
func (Bespoke) FindAll(p Problem) [][]int {
	n := len(p.Sizes)
	out := [][]int{}
	bespokeAll(make([]int, n), 0, &out)
	return out
}

func bespokeClear(board []int, row int) bool {
	for r := 0; r < row; r++ {
		if attacks(board[r], board[row], row-r) {
			return false
		}
	}
	return true
}

// bespokeOne short-circuits on the first success, leaving the completed
// board in place.
func bespokeOne(board []int, row int) bool {
	if row == len(board) {
		return true
	}
	for c := 0; c < len(board); c++ {
		board[row] = c
		if bespokeClear(board, row) && bespokeOne(board, row+1) {
			return true
		}
	}
	return false
}

func bespokeAll(board []int, row int, out *[][]int) {
	if row == len(board) {
		*out = append(*out, snapshot(board))
		return
	}
	for c := 0; c < len(board); c++ {
		board[row] = c
		if bespokeClear(board, row) {
			bespokeAll(board, row+1, out)
		}
	}
}
