// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dyadic_test

import (
	"math/rand/v2"
	"testing"

	"code.hybscloud.com/multishot/dyadic"
)

func randDyadic(rng *rand.Rand) dyadic.Dyadic {
	mant := int64(rng.IntN(2001) - 1000)
	exp := rng.IntN(21) - 10
	return dyadic.FromInt64(mant, exp)
}

func TestString(t *testing.T) {
	d := dyadic.FromInt64(-3, 2)
	if got := d.String(); got != "(-3, 2)" {
		t.Fatalf("got %q, want %q", got, "(-3, 2)")
	}
}

func TestSimpZero(t *testing.T) {
	for _, exp := range []int{-7, 0, 3, 40} {
		z := dyadic.FromInt64(0, exp).Simp()
		if !dyadic.Equal(z, dyadic.Zero) {
			t.Fatalf("Simp of zero at exp %d is not zero", exp)
		}
		if z.String() != "(0, 0)" {
			t.Fatalf("Simp of zero at exp %d is not canonical: %s", exp, z)
		}
	}
}

func TestSimpStripsFactors(t *testing.T) {
	// 12 × 2^-5 = 3 × 2^-3
	d := dyadic.FromInt64(12, -5).Simp()
	if d.String() != "(3, -3)" {
		t.Fatalf("got %s, want (3, -3)", d)
	}
	// -8 × 2^1 = -1 × 2^4
	d = dyadic.FromInt64(-8, 1).Simp()
	if d.String() != "(-1, 4)" {
		t.Fatalf("got %s, want (-1, 4)", d)
	}
}

func TestSimpIdempotent(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range 1000 {
		d := randDyadic(rng).Simp()
		again := d.Simp()
		if d.String() != again.String() {
			t.Fatalf("Simp not idempotent: %s vs %s", d, again)
		}
	}
}

func TestSimpPreservesValue(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range 1000 {
		d := randDyadic(rng)
		if !dyadic.Equal(d, d.Simp()) {
			t.Fatalf("Simp changed value of %s", d)
		}
	}
}

func TestAddCommutative(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range 1000 {
		a, b := randDyadic(rng), randDyadic(rng)
		if !dyadic.Equal(dyadic.Add(a, b), dyadic.Add(b, a)) {
			t.Fatalf("a+b != b+a for %s, %s", a, b)
		}
	}
}

func TestAddAssociative(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range 1000 {
		a, b, c := randDyadic(rng), randDyadic(rng), randDyadic(rng)
		left := dyadic.Add(dyadic.Add(a, b), c)
		right := dyadic.Add(a, dyadic.Add(b, c))
		if !dyadic.Equal(left, right) {
			t.Fatalf("(a+b)+c != a+(b+c) for %s, %s, %s", a, b, c)
		}
	}
}

func TestNegInverse(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range 1000 {
		a := randDyadic(rng)
		if !dyadic.Equal(dyadic.Add(a, dyadic.Neg(a)), dyadic.Zero) {
			t.Fatalf("a + (-a) != 0 for %s", a)
		}
	}
}

func TestMulDistributes(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range 1000 {
		a, b, c := randDyadic(rng), randDyadic(rng), randDyadic(rng)
		left := dyadic.Mul(a, dyadic.Add(b, c))
		right := dyadic.Add(dyadic.Mul(a, b), dyadic.Mul(a, c))
		if !dyadic.Equal(left, right) {
			t.Fatalf("a(b+c) != ab+ac for %s, %s, %s", a, b, c)
		}
	}
}

func TestSubViaNeg(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range 1000 {
		a, b := randDyadic(rng), randDyadic(rng)
		if !dyadic.Equal(dyadic.Sub(a, b), dyadic.Add(a, dyadic.Neg(b))) {
			t.Fatalf("a-b != a+(-b) for %s, %s", a, b)
		}
	}
}

func TestRescaleExact(t *testing.T) {
	d := dyadic.FromInt64(5, -2)
	up := dyadic.Rescale(d, 3)
	if !dyadic.Equal(up, dyadic.FromInt64(40, -3)) {
		t.Fatalf("rescale by 3 wrong: %s", up)
	}
	if !dyadic.Equal(dyadic.Rescale(up, -3), d) {
		t.Fatalf("rescale is not exact")
	}
}

func TestOrdering(t *testing.T) {
	a := dyadic.FromInt64(1, -2) // 1/4
	b := dyadic.FromInt64(3, -3) // 3/8
	if !dyadic.Less(a, b) || dyadic.Less(b, a) {
		t.Fatalf("ordering wrong for %s, %s", a, b)
	}
	if !dyadic.Leq(a, a) {
		t.Fatalf("Leq not reflexive")
	}
	if dyadic.Equal(a, b) {
		t.Fatalf("unequal values compare equal")
	}
	if !dyadic.Equal(dyadic.FromInt64(2, -2), dyadic.Half) {
		t.Fatalf("equality must ignore representation")
	}
}

func TestAverages(t *testing.T) {
	a, b := dyadic.Zero, dyadic.One
	if !dyadic.Equal(dyadic.Average(a, b), dyadic.Half) {
		t.Fatalf("midpoint of 0 and 1 is not 1/2")
	}
	if !dyadic.Equal(dyadic.LeftAverage(a, b), dyadic.FromInt64(1, -2)) {
		t.Fatalf("3:1 average of 0 and 1 is not 1/4")
	}
	if !dyadic.Equal(dyadic.RightAverage(a, b), dyadic.FromInt64(3, -2)) {
		t.Fatalf("1:3 average of 0 and 1 is not 3/4")
	}
}

func TestAverageIdempotentUnderSimp(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range 1000 {
		a := randDyadic(rng).Simp()
		got := dyadic.Average(a, a).Simp()
		if got.String() != a.String() {
			t.Fatalf("Average(a, a) not canonical a: %s vs %s", got, a)
		}
	}
}

func BenchmarkAddAligned(b *testing.B) {
	x := dyadic.FromInt64(12345, -20)
	y := dyadic.FromInt64(-6789, -20)
	for b.Loop() {
		_ = dyadic.Add(x, y)
	}
}

func BenchmarkAddRealigned(b *testing.B) {
	x := dyadic.FromInt64(12345, -40)
	y := dyadic.FromInt64(-6789, 7)
	for b.Loop() {
		_ = dyadic.Add(x, y)
	}
}

func BenchmarkSimp(b *testing.B) {
	d := dyadic.FromInt64(3<<20, -30)
	for b.Loop() {
		_ = d.Simp()
	}
}
