// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package integrate

import (
	"code.hybscloud.com/multishot/cps"
	"code.hybscloud.com/multishot/digit"
	"code.hybscloud.com/multishot/dyadic"
)

// Effects is the multi-shot continuation strategy. The integrand's
// evaluation runs in continuation-passing style; at the point it requests
// the next input digit, [cps.Shift] captures the entire remainder of the
// evaluation, and the captured continuation is resumed twice — once with
// digit -1, once with digit +1 — the two sub-results combined by the exact
// bisection average. All work performed before the suspension point is
// shared by both resumptions, so no shared prefix is ever recomputed or
// even re-looked-up; this is the strategy under study for asymptotic
// speedup over the bisection strategies.
type Effects struct{}

// Name implements Integrator.
func (Effects) Name() string { return "effects" }

// Integrate implements Integrator.
func (Effects) Integrate(k int, f Integrand) dyadic.Dyadic {
	mean := cps.Run(effEval(f.New(), dyadic.Zero, 0, k))
	return finish(mean)
}

// effEval drains determined output digits from the transducer state,
// accumulating their exact value, and suspends when the next output digit
// needs another input digit. The answer type of the continuation is the
// mean over the current sub-interval.
func effEval(t digit.Transducer, acc dyadic.Dyadic, emitted, k int) cps.Cont[dyadic.Dyadic, dyadic.Dyadic] {
	for emitted < k {
		d, next, ok := t.Emit()
		if !ok {
			return cps.Bind(nextDigit(), func(in digit.Digit) cps.Cont[dyadic.Dyadic, dyadic.Dyadic] {
				return effEval(t.Step(in), acc, emitted, k)
			})
		}
		t = next
		emitted++
		if d != digit.Zero {
			acc = dyadic.Add(acc, dyadic.FromInt64(int64(d), -emitted)).Simp()
		}
	}
	return cps.Return[dyadic.Dyadic](acc.Simp())
}

// nextDigit suspends the evaluation at an input pull. The -1 branch is
// fully evaluated before the +1 branch begins; the order is fixed so all
// strategies agree bit for bit.
func nextDigit() cps.Cont[dyadic.Dyadic, digit.Digit] {
	return cps.Shift[dyadic.Dyadic, digit.Digit](func(resume func(digit.Digit) dyadic.Dyadic) dyadic.Dyadic {
		left := resume(digit.Neg)
		right := resume(digit.Pos)
		return dyadic.Average(left, right).Simp()
	})
}
