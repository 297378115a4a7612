// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package digit

import "code.hybscloud.com/multishot/dyadic"

// Image maps an input interval [lo, hi] ⊆ [-1, 1] to the exact interval of
// values the represented function takes on it. Images of nested intervals
// must be nested; endpoints are exact dyadics.
type Image func(lo, hi dyadic.Dyadic) (dyadic.Dyadic, dyadic.Dyadic)

// interval is a transducer for a continuous function given by its interval
// image. It tracks the interval of inputs compatible with the consumed
// digits and the interval of outputs compatible with the emitted digits,
// emitting a digit whenever the image fits entirely inside one of the three
// candidate digit windows and deferring to the next input digit otherwise.
//
// Invariant: image(input interval) ⊆ [out - 2^-emitted, out + 2^-emitted].
type interval struct {
	img Image

	// consumed input: value in ± radius, radius = 2^-depth
	in    dyadic.Dyadic
	depth int
	// emitted output: value after `emitted` digits
	out     dyadic.Dyadic
	emitted int
}

// Interval returns the transducer for the function with the given interval
// image.
func Interval(img Image) Transducer {
	return interval{img: img, in: dyadic.Zero, out: dyadic.Zero}
}

func (t interval) bounds() (dyadic.Dyadic, dyadic.Dyadic) {
	r := dyadic.FromInt64(1, -t.depth)
	return t.img(dyadic.Sub(t.in, r).Simp(), dyadic.Add(t.in, r).Simp())
}

func (t interval) Emit() (Digit, Transducer, bool) {
	lo, hi := t.bounds()
	// Candidate windows at the next output level, scanned in digit order so
	// every engine resolves window overlap identically.
	for _, o := range [...]Digit{Neg, Zero, Pos} {
		c := t.out
		if o != Zero {
			c = dyadic.Add(c, dyadic.FromInt64(int64(o), -(t.emitted + 1))).Simp()
		}
		r := dyadic.FromInt64(1, -(t.emitted + 1))
		if dyadic.Leq(dyadic.Sub(c, r), lo) && dyadic.Leq(hi, dyadic.Add(c, r)) {
			next := t
			next.out = c
			next.emitted++
			return o, next, true
		}
	}
	return 0, t, false
}

func (t interval) Step(d Digit) Transducer {
	next := t
	next.depth++
	if d != Zero {
		next.in = dyadic.Add(t.in, dyadic.FromInt64(int64(d), -next.depth)).Simp()
	}
	return next
}
