// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package digit

// Transducer is a defunctionalized stream-to-stream function, following
// Reynolds (1972): instead of a closure pulling from an input stream, the
// remaining computation is reified as an immutable machine state. Feeding
// the same state two different digits replays the rest of the computation
// from that point with either future, sharing all steps performed before
// it — a transducer value is a multi-shot continuation in data form.
//
// Protocol: Emit yields the next output digit if it is already determined
// by the input consumed so far; otherwise the consumer supplies one more
// input digit via Step. Implementations are immutable: Step and Emit return
// successor states and never mutate the receiver, so one state may be
// advanced along several futures independently.
type Transducer interface {
	// Emit returns the next output digit and the successor state, or
	// ok=false when the digit is not yet determined by the consumed input.
	Emit() (d Digit, next Transducer, ok bool)
	// Step consumes one input digit and returns the successor state.
	Step(d Digit) Transducer
}

// Apply connects a transducer to an input stream, yielding its output
// stream. Input digits are pulled only when the next output digit demands
// them, so instrumentation wrappers on the input observe exactly the
// consumed prefix.
func Apply(t Transducer, s Stream) Stream {
	return func() (Digit, Stream) {
		for {
			if d, next, ok := t.Emit(); ok {
				return d, Apply(next, s)
			}
			var d Digit
			d, s = s()
			t = t.Step(d)
		}
	}
}

// identity copies input digits to the output unchanged. The pending buffer
// is treated as immutable; successors re-slice or copy, never overwrite.
type identity struct {
	pending []Digit
}

// Identity returns the identity transducer.
func Identity() Transducer { return identity{} }

func (t identity) Emit() (Digit, Transducer, bool) {
	if len(t.pending) == 0 {
		return 0, t, false
	}
	return t.pending[0], identity{pending: t.pending[1:]}, true
}

func (t identity) Step(d Digit) Transducer {
	pending := make([]Digit, len(t.pending), len(t.pending)+1)
	copy(pending, t.pending)
	return identity{pending: append(pending, d)}
}

// negate flips the sign of every output digit of the inner transducer.
type negate struct {
	inner Transducer
}

// Negate returns the transducer computing x ↦ -f(x) for the given f.
func Negate(inner Transducer) Transducer { return negate{inner: inner} }

func (t negate) Emit() (Digit, Transducer, bool) {
	d, next, ok := t.inner.Emit()
	if !ok {
		return 0, t, false
	}
	return -d, negate{inner: next}, true
}

func (t negate) Step(d Digit) Transducer { return negate{inner: t.inner.Step(d)} }

// compose feeds the output of first into second.
type compose struct {
	first, second Transducer
}

// Compose returns the transducer computing x ↦ g(f(x)).
func Compose(f, g Transducer) Transducer { return compose{first: f, second: g} }

func (t compose) Emit() (Digit, Transducer, bool) {
	first, second := t.first, t.second
	for {
		if d, next, ok := second.Emit(); ok {
			return d, compose{first: first, second: next}, true
		}
		d, next, ok := first.Emit()
		if !ok {
			return 0, compose{first: first, second: second}, false
		}
		first, second = next, second.Step(d)
	}
}

func (t compose) Step(d Digit) Transducer {
	return compose{first: t.first.Step(d), second: t.second}
}
