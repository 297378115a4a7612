// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package integrate

import (
	"code.hybscloud.com/multishot/digit"
	"code.hybscloud.com/multishot/dyadic"
)

// Modulus is the pruned sweep strategy: no bisection search at all.
// It walks the domain left to right; at each step it evaluates the
// integrand once at the current left endpoint through the modulus-tracking
// wrapper, and the number m of digits the integrand actually consumed
// bounds the width 2^(1-m) of the maximal sub-interval on which the output
// is constant to the requested precision. That sub-interval's contribution
// is value × width, and the sweep jumps directly to its right endpoint.
type Modulus struct{}

// Name implements Integrator.
func (Modulus) Name() string { return "modulus" }

// Integrate implements Integrator.
func (Modulus) Integrate(k int, f Integrand) dyadic.Dyadic {
	// acc accumulates the mean over the stream space: each step adds
	// value × width / 2 = value × 2^-m.
	acc := dyadic.Zero
	t := dyadic.MinusOne
	for dyadic.Less(t, dyadic.One) {
		var trace digit.Trace
		in := trace.Wrap(digit.FromDyadic(t))
		out := digit.ToDyadic(digit.Apply(f.New(), in), k)
		m := trace.Modulus()
		acc = dyadic.Add(acc, dyadic.Rescale(out, -m)).Simp()
		t = dyadic.Add(t, dyadic.FromInt64(1, 1-m)).Simp()
	}
	return finish(acc)
}
