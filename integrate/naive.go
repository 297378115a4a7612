// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package integrate

import (
	"code.hybscloud.com/multishot/digit"
	"code.hybscloud.com/multishot/dyadic"
)

// Naive is recursive bisection with no sharing at all. At every node it
// applies a fresh transducer to the digit prefix extended with an infinite
// run of -1 digits; everything the integrand learned about the prefix at the
// parent node is recomputed at both children.
type Naive struct{}

// Name implements Integrator.
func (Naive) Name() string { return "naive" }

// Integrate implements Integrator.
func (Naive) Integrate(k int, f Integrand) dyadic.Dyadic {
	return finish(naiveMean(k, f, nil))
}

// naiveMean returns the mean value of the integrand over the sub-interval
// identified by prefix, to k output digits. A node is a leaf exactly when
// the evaluation consumes no digit beyond the prefix: the k-digit output is
// then determined on the whole sub-interval, tail digits unread. Equal
// values at the two extreme tail extensions are not sufficient — a
// non-injective integrand takes equal values at distinct inputs — so leaf
// detection observes consumption, not output agreement.
func naiveMean(k int, f Integrand, prefix []digit.Digit) dyadic.Dyadic {
	var trace digit.Trace
	in := trace.Wrap(digit.Append(prefix, digit.Constant(digit.Neg)))
	v := digit.ToDyadic(digit.Apply(f.New(), in), k)
	if trace.Modulus() <= len(prefix) {
		return v
	}
	left := naiveMean(k, f, extend(prefix, digit.Neg))
	right := naiveMean(k, f, extend(prefix, digit.Pos))
	return dyadic.Average(left, right).Simp()
}
