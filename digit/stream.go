// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package digit implements the signed-digit stream representation of real
// numbers in [-1, 1]. A stream is a conceptually infinite sequence of digits
// dᵢ ∈ {-1, 0, 1} denoting Σ dᵢ·2^(-i) for i = 1, 2, …
//
// Streams are pull-based and lazy: forcing a stream performs exactly one
// step of the producer and yields the head digit together with the rest of
// the stream. The package also provides the two instrumentation wrappers
// the integration strategies are parameterized over — [Memoize], which
// caches forced cells so repeated pulls are free, and [Trace], which records
// every pulled digit so a consumer's modulus of continuity can be observed —
// and the defunctionalized [Transducer] representation of stream-to-stream
// functions.
package digit

// Digit is a signed binary digit: -1, 0, or +1.
type Digit int8

// The three digit values.
const (
	Neg  Digit = -1
	Zero Digit = 0
	Pos  Digit = 1
)

// Stream is a lazy signed-digit stream. Forcing the stream yields the head
// digit and the tail stream, performing no more than one step of the
// underlying producer.
type Stream func() (Digit, Stream)

// Constant returns the infinite stream d, d, d, …
func Constant(d Digit) Stream {
	var s Stream
	s = func() (Digit, Stream) { return d, s }
	return s
}

// Append prepends a finite digit prefix to a stream.
func Append(prefix []Digit, rest Stream) Stream {
	if len(prefix) == 0 {
		return rest
	}
	return func() (Digit, Stream) {
		return prefix[0], Append(prefix[1:], rest)
	}
}

// Truncate materializes exactly k digits of s. Well-formed streams are
// infinite by construction, so the requested count is always available.
func Truncate(s Stream, k int) []Digit {
	ds := make([]Digit, k)
	for i := 0; i < k; i++ {
		ds[i], s = s()
	}
	return ds
}

// Memoize wraps s so that each cell is forced at most once; repeated pulls
// of an already forced position are served from the cached cell. The
// memoized stream and all of its tails share the same underlying producer.
func Memoize(s Stream) Stream {
	var forced bool
	var d Digit
	var rest Stream
	return func() (Digit, Stream) {
		if !forced {
			var tail Stream
			d, tail = s()
			rest = Memoize(tail)
			forced = true
		}
		return d, rest
	}
}

// Trace records the digits pulled through streams wrapped by [Trace.Wrap].
// The recorded sequence is exactly the prefix of the input a consumer
// inspected, so its length is the consumer's modulus of continuity at that
// input.
type Trace struct {
	digits []Digit
}

// Wrap returns a stream that forwards pulls to s while recording each
// pulled digit in t.
func (t *Trace) Wrap(s Stream) Stream {
	return func() (Digit, Stream) {
		d, rest := s()
		t.digits = append(t.digits, d)
		return d, t.Wrap(rest)
	}
}

// Digits returns the digits recorded so far, in pull order.
func (t *Trace) Digits() []Digit { return t.digits }

// Modulus returns the number of digits pulled so far.
func (t *Trace) Modulus() int { return len(t.digits) }
