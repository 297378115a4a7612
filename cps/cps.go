// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cps provides the continuation-passing substrate for the
// multi-shot search and integration strategies.
//
// The core type [Cont] represents a computation that accepts a continuation
// and produces a final result. This encoding makes suspension points
// first-class: a computation written over Cont can be stopped at the point
// it requests an input value, and the captured continuation — the entire
// rest of the computation — is an ordinary function value. Invoking that
// function more than once replays the remainder of the computation from the
// capture point with different injected values, while every step performed
// before the capture is shared between the invocations. This multi-shot
// property is exactly what the effect-handler search and integration
// engines exploit.
//
// # Core Operations
//
//   - [Return], [Pure]: lift a pure value into a continuation
//   - [Bind]: sequence two continuations
//   - [Map]: apply a function to the result
//   - [Then]: sequence, discarding the first result
//   - [Suspend]: create a continuation from a CPS function
//   - [Run], [RunWith]: execute a continuation
//
// # Delimited Control
//
// [Shift] and [Reset] follow Danvy & Filinski's formulation (1990). Shift
// captures the current continuation up to the nearest Reset; the captured
// continuation may be invoked zero, one, or many times. Zero invocations
// discard the rest of the computation (used for critical-point detection),
// one invocation is ordinary evaluation, and repeated invocation is the
// multi-shot replay mechanism under study.
//
// # Type Erasure
//
// Computations whose answer type varies per interpretation use [Resumed]
// (an alias of any) as the answer type, mirroring the type-erasure boundary
// convention of effect dispatch: concrete types are recovered by assertion
// where the answer leaves the CPS world. [Eff] abbreviates Cont[Resumed, A].
package cps

// Cont represents a continuation-passing computation.
// Cont[R, A] computes a value of type A, with final result type R.
//
// The function receives a continuation k of type func(A) R, which represents
// "the rest of the computation". Applying k to a value of type A produces
// the final result of type R.
type Cont[R, A any] func(k func(A) R) R

// Resumed is the answer type for computations interpreted by more than one
// engine. Values flowing out of such computations are recovered by type
// assertion at the interpretation boundary.
type Resumed = any

// Eff is a computation with an erased answer type.
// Predicates shared across search engines use Cont[Resumed, A] so that each
// engine can choose its own aggregate result representation.
type Eff[A any] = Cont[Resumed, A]

// Return lifts a pure value into the continuation monad.
// The resulting computation immediately passes the value to its continuation.
func Return[R, A any](a A) Cont[R, A] {
	return func(k func(A) R) R {
		return k(a)
	}
}

// Pure lifts a value into an erased-answer computation.
// Pure(a) is Return[Resumed](a) with full type inference on A.
func Pure[A any](a A) Eff[A] {
	return Return[Resumed](a)
}

// Suspend creates a continuation from a CPS function.
// This is the primitive constructor for continuations that need direct
// access to the continuation.
func Suspend[R, A any](f func(func(A) R) R) Cont[R, A] {
	return Cont[R, A](f)
}

// Bind sequences two continuations (monadic bind).
// It runs m, then passes the result to f to get a new continuation.
func Bind[R, A, B any](m Cont[R, A], f func(A) Cont[R, B]) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(a A) R {
			return f(a)(k)
		})
	}
}

// Map applies a pure function to the result of a continuation.
//
// Allocation note: Map is equivalent to Bind(m, compose(Return, f)) but
// avoids the intermediate Return closure, making it the preferred choice
// when the transformation is pure.
func Map[R, A, B any](m Cont[R, A], f func(A) B) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(a A) R {
			return k(f(a))
		})
	}
}

// Then sequences two continuations, discarding the first result.
// This is more efficient than Bind when the second computation
// does not depend on the first result.
func Then[R, A, B any](m Cont[R, A], n Cont[R, B]) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(_ A) R {
			return n(k)
		})
	}
}

// identity is the identity continuation for Run.
// Named generic function produces a static function value per type
// instantiation, avoiding the heap allocation that anonymous closures incur.
func identity[A any](a A) A { return a }

// Run executes a continuation with the identity continuation.
// The result type must match the value type (R = A).
func Run[A any](m Cont[A, A]) A {
	return m(identity[A])
}

// RunWith executes a continuation with a custom final continuation.
func RunWith[R, A any](m Cont[R, A], k func(A) R) R {
	return m(k)
}

// Shift captures the current continuation up to the nearest Reset.
// The function f receives the captured continuation k, which can be
// invoked zero or more times. Every step of computation performed before
// the Shift is shared across all invocations of k; this is the multi-shot
// sharing mechanism the effect-handler engines rely on.
//
// Example:
//
//	Reset(Bind(Shift(func(k func(int) int) int {
//	    return k(-1) + k(1)  // resume the same computation twice
//	}), func(d int) Cont[int, int] {
//	    return Return[int](d * d)
//	}))
//	// Result: 2 (both branches share everything before the Shift)
func Shift[R, A any](f func(k func(A) R) R) Cont[R, A] {
	return Cont[R, A](f)
}

// Reset establishes a delimiter for Shift.
// Continuations captured by Shift stop at the nearest enclosing Reset.
func Reset[R, A any](m Cont[A, A]) Cont[R, A] {
	return Return[R, A](Run(m))
}
