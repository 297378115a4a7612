// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package integrate

import (
	"strconv"

	"code.hybscloud.com/multishot/digit"
	"code.hybscloud.com/multishot/dyadic"
)

// Integrand is a continuous function [-1,1] → [-1,1] in stream-transformer
// form. New constructs a fresh transducer instance per evaluation so that
// engines which re-evaluate from scratch genuinely redo the work; engines
// that share work hold on to stepped transducer states instead.
type Integrand struct {
	Name string
	New  func() digit.Transducer
}

// Identity is the identity function x ↦ x.
var Identity = Integrand{Name: "id", New: digit.Identity}

// Square is the squaring function x ↦ x², implemented as an
// interval-tracking transducer over the exact image of the consumed input
// interval.
var Square = Integrand{
	Name: "square",
	New:  func() digit.Transducer { return digit.Interval(squareImage) },
}

// Logistic is the logistic map x ↦ 1 - 2x², the chaotic stress-test
// integrand.
var Logistic = Integrand{
	Name: "logistic",
	New:  func() digit.Transducer { return digit.Interval(logisticImage) },
}

// LogisticIter iterates the logistic map n times by transducer composition.
// Chaotic dynamics make the modulus of continuity grow with n, stressing
// every strategy's recomputation behavior.
func LogisticIter(n int) Integrand {
	return Integrand{
		Name: "logistic^" + strconv.Itoa(n),
		New: func() digit.Transducer {
			t := digit.Interval(logisticImage)
			for i := 1; i < n; i++ {
				t = digit.Compose(t, digit.Interval(logisticImage))
			}
			return t
		},
	}
}

// squareImage maps [lo, hi] to the exact interval of x² over it.
func squareImage(lo, hi dyadic.Dyadic) (dyadic.Dyadic, dyadic.Dyadic) {
	l2 := dyadic.Mul(lo, lo).Simp()
	h2 := dyadic.Mul(hi, hi).Simp()
	if lo.Sign() <= 0 && hi.Sign() >= 0 {
		if dyadic.Leq(l2, h2) {
			return dyadic.Zero, h2
		}
		return dyadic.Zero, l2
	}
	if dyadic.Leq(l2, h2) {
		return l2, h2
	}
	return h2, l2
}

// logisticImage maps [lo, hi] to the exact interval of 1 - 2x² over it.
func logisticImage(lo, hi dyadic.Dyadic) (dyadic.Dyadic, dyadic.Dyadic) {
	slo, shi := squareImage(lo, hi)
	// 1 - 2s is decreasing in s, so the bounds swap.
	return dyadic.Sub(dyadic.One, dyadic.Rescale(shi, 1)).Simp(),
		dyadic.Sub(dyadic.One, dyadic.Rescale(slo, 1)).Simp()
}
