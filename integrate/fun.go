// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package integrate

import (
	"code.hybscloud.com/multishot/digit"
	"code.hybscloud.com/multishot/dyadic"
)

// Fun is the memoized functional strategy: the same divide-and-conquer
// recursion as [Naive], but every stream handed to the integrand is wrapped
// in a per-cell caching layer, so a pull the integrand repeats is served
// from cache instead of recomputed. Shared prefixes are still re-traversed
// at every node — as cache lookups rather than fresh computation — which is
// exactly the overhead the Effects strategy removes.
type Fun struct{}

// Name implements Integrator.
func (Fun) Name() string { return "fun" }

// Integrate implements Integrator.
func (Fun) Integrate(k int, f Integrand) dyadic.Dyadic {
	return finish(funMean(k, f, nil))
}

// funMean mirrors naiveMean, including its consumption-based leaf rule: a
// node is a leaf only when the evaluation never pulls past the prefix.
func funMean(k int, f Integrand, prefix []digit.Digit) dyadic.Dyadic {
	var trace digit.Trace
	in := trace.Wrap(digit.Memoize(digit.Append(prefix, digit.Constant(digit.Neg))))
	v := digit.ToDyadic(digit.Apply(f.New(), in), k)
	if trace.Modulus() <= len(prefix) {
		return v
	}
	left := funMean(k, f, extend(prefix, digit.Neg))
	right := funMean(k, f, extend(prefix, digit.Pos))
	// Additive decomposition: the two halves contribute with weight 1/2.
	return dyadic.Rescale(dyadic.Add(left, right), -1).Simp()
}
