// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package integrate computes definite integrals of exact-real functions
// given as signed-digit stream transformers, four times over: the four
// engines are mathematically equivalent — for the same precision and
// integrand they return bit-identical [dyadic.Dyadic] values — and differ
// only in how much previously obtained information they recompute.
//
//   - [Naive] re-evaluates the integrand from scratch at every bisection
//     node.
//   - [Fun] has the same divide-and-conquer shape but serves repeated input
//     pulls from a per-stream cache.
//   - [Modulus] sweeps [0,1] left to right, learning from the
//     modulus-tracking wrapper exactly how wide a step it may take.
//   - [Effects] suspends the integrand at every input pull and resumes the
//     identical captured continuation once per digit branch, sharing all
//     work performed before the suspension; this is the strategy exhibiting
//     asymptotic speedup.
//
// The integral is taken over [0,1] after rescaling: for a transformer F on
// [-1,1], the engines integrate f(x) = (F(2x-1)+1)/2, so the identity
// transformer integrates to exactly one half.
package integrate

import (
	"code.hybscloud.com/multishot/digit"
	"code.hybscloud.com/multishot/dyadic"
)

// Integrator approximates ∫₀¹ f to within 2^-k of the true value.
// The returned Dyadic is canonicalized with Simp before reporting, so
// engines arriving at the value along different routes compare equal.
type Integrator interface {
	Name() string
	Integrate(k int, f Integrand) dyadic.Dyadic
}

// Engines returns the four integration engines in canonical order.
func Engines() []Integrator {
	return []Integrator{Naive{}, Fun{}, Modulus{}, Effects{}}
}

// ByName looks up an integration engine by its name token.
func ByName(name string) (Integrator, bool) {
	for _, e := range Engines() {
		if e.Name() == name {
			return e, true
		}
	}
	return nil, false
}

// finish converts the mean of F over the stream space [-1,1] into the
// integral of the rescaled f over [0,1] and canonicalizes the result.
func finish(mean dyadic.Dyadic) dyadic.Dyadic {
	return dyadic.Rescale(dyadic.Add(mean, dyadic.One), -1).Simp()
}

// extend returns prefix with d appended, never sharing the backing array
// with the input: sibling branches extend the same prefix independently.
func extend(prefix []digit.Digit, d digit.Digit) []digit.Digit {
	out := make([]digit.Digit, len(prefix)+1)
	copy(out, prefix)
	out[len(prefix)] = d
	return out
}
