// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package digit

import "code.hybscloud.com/multishot/dyadic"

// FromDyadic synthesizes the signed-digit stream of a dyadic d ∈ [-1, 1).
// Each step bisects the current interval: a negative residue emits -1 and
// continues with 2d+1, a non-negative residue emits +1 and continues with
// 2d-1, so ties at zero resolve toward the +1 branch. Because d is dyadic
// the residue reaches exactly -1 after finitely many steps and the stream
// ends in an infinite trailing run of -1 digits; a single real therefore
// never straddles two synthesized representations.
func FromDyadic(d dyadic.Dyadic) Stream {
	return func() (Digit, Stream) {
		if d.Sign() < 0 {
			return Neg, FromDyadic(dyadic.Add(dyadic.Rescale(d, 1), dyadic.One).Simp())
		}
		return Pos, FromDyadic(dyadic.Sub(dyadic.Rescale(d, 1), dyadic.One).Simp())
	}
}

// ToDyadic approximates s by its first k digits. The result lies within
// 2^-k of the value denoted by s, since the discarded tail contributes at
// most Σ_{i>k} 2^-i = 2^-k.
func ToDyadic(s Stream, k int) dyadic.Dyadic {
	return Value(Truncate(s, k))
}

// Value returns the exact dyadic Σ dᵢ·2^(-i) denoted by a finite digit
// prefix.
func Value(ds []Digit) dyadic.Dyadic {
	acc := dyadic.Zero
	for i, d := range ds {
		if d == Zero {
			continue
		}
		acc = dyadic.Add(acc, dyadic.FromInt64(int64(d), -(i + 1)))
	}
	return acc.Simp()
}
