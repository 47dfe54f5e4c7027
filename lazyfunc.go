// Package lazyfunc provides lazy infinite sequences, classical combinators,
// and non-mutating array utilities as small, independent generic functions.
//
// Every function in this package is pure and self-contained: no shared
// state, no I/O, no goroutines. Sequences are plain iter.Seq values, so
// they compose with range-over-func, iter.Pull, and the slices package.
//
// # Quick Start
//
//	naturals := lazyfunc.Generate(func(i int) int { return i })
//
//	// Skip the first five, keep the next three.
//	tail := lazyfunc.Drop[int](5)(naturals)
//	fmt.Println(lazyfunc.Collect(3, tail)) // [5 6 7]
//
//	// Sequences restart: ranging again begins at index 0.
//	fmt.Println(lazyfunc.Collect(3, naturals)) // [0 1 2]
//
// # Currying
//
// Transformers and most array utilities take their arguments one at a
// time, so a partially applied step is a reusable value:
//
//	skipHeader := lazyfunc.Drop[string](1)
//	body1 := skipHeader(file1Lines)
//	body2 := skipHeader(file2Lines)
package lazyfunc

import "iter"

// ============================================================================
// Lazy Sequences
// ============================================================================

// Generate returns the infinite sequence fn(0), fn(1), fn(2), ...
//
// The sequence is restartable: each range over it counts independently
// from index 0, even if an earlier traversal was abandoned mid-stream.
// Consumers must stop ranging themselves; the sequence never ends.
//
// Generate panics if fn is nil. The check happens at construction, not at
// first use, so a bad call site fails where it is written.
//
// Example:
//
//	squares := lazyfunc.Generate(func(i int) int { return i * i })
//	for n := range squares {
//	    if n > 50 {
//	        break
//	    }
//	    fmt.Println(n)
//	}
func Generate[V any](fn func(int) V) iter.Seq[V] {
	if fn == nil {
		panic("lazyfunc: Generate called with nil generator function")
	}
	return func(yield func(V) bool) {
		for i := 0; ; i++ {
			if !yield(fn(i)) {
				return
			}
		}
	}
}

// Drop returns a transformer that skips the first n elements of a
// sequence and passes the rest through unchanged, in order. A source
// with fewer than n elements transforms to an empty sequence. Negative
// n is treated as 0.
//
// The skip count is per traversal: every range over the result discards
// a fresh prefix of n elements. Nothing is buffered.
func Drop[V any](n int) func(iter.Seq[V]) iter.Seq[V] {
	return func(src iter.Seq[V]) iter.Seq[V] {
		return func(yield func(V) bool) {
			skipped := 0
			for v := range src {
				if skipped < n {
					skipped++
					continue
				}
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Prepend returns a transformer that yields each of the given sequences
// in order, then the source. Elements pass through unchanged and each
// sequence is traversed at most once per result traversal. With no
// arguments the transformer behaves identically to the source.
func Prepend[V any](others ...iter.Seq[V]) func(iter.Seq[V]) iter.Seq[V] {
	return func(src iter.Seq[V]) iter.Seq[V] {
		return func(yield func(V) bool) {
			for _, seq := range others {
				for v := range seq {
					if !yield(v) {
						return
					}
				}
			}
			for v := range src {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Take returns a transformer that yields at most the first n elements of
// a sequence, making infinite sequences safe to collect. Negative n is
// treated as 0.
func Take[V any](n int) func(iter.Seq[V]) iter.Seq[V] {
	return func(src iter.Seq[V]) iter.Seq[V] {
		return func(yield func(V) bool) {
			if n <= 0 {
				return
			}
			taken := 0
			for v := range src {
				if !yield(v) {
					return
				}
				taken++
				if taken >= n {
					return
				}
			}
		}
	}
}

// Collect gathers at most n elements from seq into a fresh slice. It
// stops early if seq ends first, so the result may be shorter than n.
// Safe on infinite sequences.
func Collect[V any](n int, seq iter.Seq[V]) []V {
	if n <= 0 {
		return nil
	}
	out := make([]V, 0, n)
	for v := range seq {
		out = append(out, v)
		if len(out) == n {
			break
		}
	}
	return out
}

// ============================================================================
// Combinators
// ============================================================================

// Apply is the A combinator: Apply(f)(x) == f(x).
//
// On its own this is the identity on functions; its value is as a staged
// call site when a pipeline expects every step in curried form.
func Apply[A, B any](f func(A) B) func(A) B {
	return f
}

// Compose is the B combinator, right-to-left function composition:
// Compose(f)(g)(x) == f(g(x)).
func Compose[A, B, C any](f func(B) C) func(func(A) B) func(A) C {
	return func(g func(A) B) func(A) C {
		return func(x A) C {
			return f(g(x))
		}
	}
}

// Flip is the C combinator: swaps the first two arguments of a curried
// binary function, so Flip(f)(b)(a) == f(a)(b).
func Flip[A, B, C any](f func(A) func(B) C) func(B) func(A) C {
	return func(b B) func(A) C {
		return func(a A) C {
			return f(a)(b)
		}
	}
}

// Constant is the K combinator: Constant(a) returns a function that
// ignores its argument and always returns a.
func Constant[A, B any](a A) func(B) A {
	return func(B) A {
		return a
	}
}

// Vireo is the V combinator, the pairing combinator: it holds two values
// and hands them to a function, Vireo(a)(b)(f) == f(a)(b).
func Vireo[A, B, C any](a A) func(B) func(func(A) func(B) C) C {
	return func(b B) func(func(A) func(B) C) C {
		return func(f func(A) func(B) C) C {
			return f(a)(b)
		}
	}
}

// ApplyTo is the T combinator, value-first application:
// ApplyTo(x)(f) == f(x). Useful for threading one value through a list
// of functions.
func ApplyTo[A, B any](x A) func(func(A) B) B {
	return func(f func(A) B) B {
		return f(x)
	}
}

// ============================================================================
// Array Utilities
// ============================================================================

// Concat returns a transformer that appends its argument to a: the
// result is a fresh slice holding a's elements then b's. Neither input
// is modified; an empty input on either side yields a copy of the other.
func Concat[V any](a []V) func([]V) []V {
	return func(b []V) []V {
		out := make([]V, 0, len(a)+len(b))
		out = append(out, a...)
		return append(out, b...)
	}
}

// FindLast returns a finder for the last element satisfying p. The
// boolean reports whether a match exists; when it is false the value is
// the zero value of V. Absence is signaled by the boolean, never by a
// panic or error.
func FindLast[V any](p func(V) bool) func([]V) (V, bool) {
	return func(s []V) (V, bool) {
		for i := len(s) - 1; i >= 0; i-- {
			if p(s[i]) {
				return s[i], true
			}
		}
		var zero V
		return zero, false
	}
}

// Flatten concatenates one level of nesting into a fresh slice,
// preserving order. Deeper nesting inside the elements is left intact.
func Flatten[V any](nested [][]V) []V {
	size := 0
	for _, inner := range nested {
		size += len(inner)
	}
	out := make([]V, 0, size)
	for _, inner := range nested {
		out = append(out, inner...)
	}
	return out
}

// Includes reports whether a slice contains an element equal to x under
// the == operator.
func Includes[V comparable](x V) func([]V) bool {
	return func(s []V) bool {
		for _, v := range s {
			if v == x {
				return true
			}
		}
		return false
	}
}

// IndexOf returns the first index at which an element equals x under the
// == operator, or -1 when no element matches. Callers must check for the
// -1 sentinel.
func IndexOf[V comparable](x V) func([]V) int {
	return func(s []V) int {
		for i, v := range s {
			if v == x {
				return i
			}
		}
		return -1
	}
}

// Push returns an appender over s: each call produces a fresh slice with
// the element added at the end, leaving s untouched.
func Push[V any](s []V) func(V) []V {
	return func(x V) []V {
		out := make([]V, 0, len(s)+1)
		out = append(out, s...)
		return append(out, x)
	}
}

// ReduceRight folds a slice from the last element toward the first:
// ReduceRight(fn)(init)([a, b, c]) == fn(fn(fn(init, c), b), a).
// An empty slice folds to init.
func ReduceRight[V, R any](fn func(R, V) R) func(R) func([]V) R {
	return func(init R) func([]V) R {
		return func(s []V) R {
			acc := init
			for i := len(s) - 1; i >= 0; i-- {
				acc = fn(acc, s[i])
			}
			return acc
		}
	}
}

// Reverse returns a fresh slice with s's elements in opposite order. The
// input is never written through.
func Reverse[V any](s []V) []V {
	out := make([]V, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}

// Some reports whether any element satisfies p. An empty slice yields
// false for every predicate.
func Some[V any](p func(V) bool) func([]V) bool {
	return func(s []V) bool {
		for _, v := range s {
			if p(v) {
				return true
			}
		}
		return false
	}
}

// Noop ignores its argument and does nothing. It satisfies call sites
// that require a consumer when no effect is wanted.
func Noop[V any](V) {}
