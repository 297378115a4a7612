// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package dyadic implements exact rational arithmetic over numbers of the
// form mantissa × 2^exponent. Dyadic values are the numeric substrate of the
// signed-digit stream representation and of every search/integration engine:
// all operations are exact, so strategies that compute the same value along
// different operational routes compare equal bit for bit after [Dyadic.Simp].
package dyadic

import (
	"fmt"
	"math/big"
)

// Dyadic is an exact rational with a power-of-two denominator,
// denoting Mant × 2^Exp. Values are immutable: every operation
// returns a fresh value and never aliases the mantissa of an operand.
type Dyadic struct {
	mant *big.Int
	exp  int
}

// Zero is the canonical representation of zero: (0, 0).
// Simp reduces every representation of zero to this value.
var Zero = Dyadic{mant: big.NewInt(0), exp: 0}

// One is the dyadic 1 = (1, 0).
var One = Dyadic{mant: big.NewInt(1), exp: 0}

// MinusOne is the dyadic -1 = (-1, 0).
var MinusOne = Dyadic{mant: big.NewInt(-1), exp: 0}

// Half is the dyadic 1/2 = (1, -1).
var Half = Dyadic{mant: big.NewInt(1), exp: -1}

// New constructs the dyadic mant × 2^exp.
func New(mant *big.Int, exp int) Dyadic {
	return Dyadic{mant: new(big.Int).Set(mant), exp: exp}
}

// FromInt64 constructs the dyadic m × 2^exp from a machine integer mantissa.
func FromInt64(m int64, exp int) Dyadic {
	return Dyadic{mant: big.NewInt(m), exp: exp}
}

// Mant returns a copy of the mantissa.
func (d Dyadic) Mant() *big.Int { return new(big.Int).Set(d.mant) }

// Exp returns the exponent.
func (d Dyadic) Exp() int { return d.exp }

// Sign returns -1, 0, or +1 according to the sign of d.
func (d Dyadic) Sign() int { return d.mant.Sign() }

// String renders d in the textual form "(<mantissa>, <exponent>)" used by
// the benchmark output rows.
func (d Dyadic) String() string {
	return fmt.Sprintf("(%s, %d)", d.mant.String(), d.exp)
}

// pow2Bound is the number of precomputed powers of two. Exponent
// realignments in the engine hot loops stay far below this bound.
const pow2Bound = 80

var pow2Cache [pow2Bound + 1]*big.Int

func init() {
	for i := 0; i <= pow2Bound; i++ {
		pow2Cache[i] = new(big.Int).Lsh(big.NewInt(1), uint(i))
	}
}

// pow2 returns 2^n as a shared immutable big.Int. Callers must not mutate
// the result.
func pow2(n int) *big.Int {
	if n <= pow2Bound {
		return pow2Cache[n]
	}
	return new(big.Int).Lsh(big.NewInt(1), uint(n))
}

// align brings a and b onto a common exponent (the smaller of the two) and
// returns the realigned mantissas together with that exponent.
// The returned mantissas are fresh unless no shift was needed, so callers
// may pass them to mutating big.Int operations only after copying.
func align(a, b Dyadic) (ma, mb *big.Int, exp int) {
	switch {
	case a.exp == b.exp:
		return a.mant, b.mant, a.exp
	case a.exp > b.exp:
		ma = new(big.Int).Mul(a.mant, pow2(a.exp-b.exp))
		return ma, b.mant, b.exp
	default:
		mb = new(big.Int).Mul(b.mant, pow2(b.exp-a.exp))
		return a.mant, mb, a.exp
	}
}

// Add returns a+b exactly.
func Add(a, b Dyadic) Dyadic {
	ma, mb, exp := align(a, b)
	return Dyadic{mant: new(big.Int).Add(ma, mb), exp: exp}
}

// Neg returns -d.
func Neg(d Dyadic) Dyadic {
	return Dyadic{mant: new(big.Int).Neg(d.mant), exp: d.exp}
}

// Sub returns a-b exactly.
func Sub(a, b Dyadic) Dyadic {
	ma, mb, exp := align(a, b)
	return Dyadic{mant: new(big.Int).Sub(ma, mb), exp: exp}
}

// Mul returns a×b exactly.
func Mul(a, b Dyadic) Dyadic {
	return Dyadic{mant: new(big.Int).Mul(a.mant, b.mant), exp: a.exp + b.exp}
}

// Leq reports a ≤ b under exact comparison.
func Leq(a, b Dyadic) bool {
	ma, mb, _ := align(a, b)
	return ma.Cmp(mb) <= 0
}

// Less reports a < b under exact comparison.
func Less(a, b Dyadic) bool {
	ma, mb, _ := align(a, b)
	return ma.Cmp(mb) < 0
}

// Equal reports exact equality of the denoted values, regardless of
// representation.
func Equal(a, b Dyadic) bool {
	ma, mb, _ := align(a, b)
	return ma.Cmp(mb) == 0
}

// Rescale returns d × 2^delta without loss.
func Rescale(d Dyadic, delta int) Dyadic {
	return Dyadic{mant: new(big.Int).Set(d.mant), exp: d.exp + delta}
}

// Average returns the exact midpoint (a+b)/2.
func Average(a, b Dyadic) Dyadic {
	ma, mb, exp := align(a, b)
	return Dyadic{mant: new(big.Int).Add(ma, mb), exp: exp - 1}
}

// LeftAverage returns the 3:1 weighted point (3a+b)/4.
func LeftAverage(a, b Dyadic) Dyadic {
	ma, mb, exp := align(a, b)
	m := new(big.Int).Lsh(ma, 1)
	m.Add(m, ma)
	m.Add(m, mb)
	return Dyadic{mant: m, exp: exp - 2}
}

// RightAverage returns the 1:3 weighted point (a+3b)/4.
func RightAverage(a, b Dyadic) Dyadic {
	return LeftAverage(b, a)
}

// Simp canonicalizes the representation of d. Any representation of zero
// becomes the canonical (0, 0); otherwise common factors of four are
// stripped from the mantissa two exponent steps at a time, then a remaining
// factor of two one step, so repeated arithmetic does not grow mantissas
// when the value is exactly representable at lower precision.
func (d Dyadic) Simp() Dyadic {
	if d.mant.Sign() == 0 {
		return Zero
	}
	m := new(big.Int).Set(d.mant)
	exp := d.exp
	for m.Bit(0) == 0 && m.Bit(1) == 0 {
		m.Rsh(m, 2)
		exp += 2
	}
	if m.Bit(0) == 0 {
		m.Rsh(m, 1)
		exp++
	}
	return Dyadic{mant: m, exp: exp}
}
