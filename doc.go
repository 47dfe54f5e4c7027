/*
Package lazyfunc provides lazy infinite sequences, classical combinators,
and non-mutating array utilities as small, independent generic functions.

# Overview

Lazyfunc is a catalog, not a framework. Each function is a complete,
stateless contract on its own: the sequence producers and transformers
build on the standard iter.Seq type, the combinators are the classical
A, B, C, K, V and T combinators in curried form, and the array utilities
are copy-on-write helpers over plain slices. Deleting any one function
would not affect any other.

# Lazy Sequences

A sequence is an iter.Seq[V]: possibly infinite, restartable, pulled one
element at a time. Generate builds one from an index rule; Drop and
Prepend wrap one in a new sequence without touching the original; Take
and Collect turn a prefix into something finite.

	naturals := lazyfunc.Generate(func(i int) int { return i })
	evens := lazyfunc.Generate(func(i int) int { return 2 * i })

	seq := lazyfunc.Prepend(lazyfunc.Take[int](3)(evens))(
		lazyfunc.Drop[int](10)(naturals),
	)
	fmt.Println(lazyfunc.Collect(6, seq)) // [0 2 4 10 11 12]

Restartability is the load-bearing guarantee: ranging over the same
sequence value twice produces two identical, independent streams. No
cursor is shared, so an abandoned traversal costs nothing and needs no
cleanup.

# Combinators

The combinators express application, composition and argument plumbing
with no free state:

	inc := func(n int) int { return n + 1 }
	dbl := func(n int) int { return n * 2 }

	lazyfunc.Compose[int](dbl)(inc)(5)             // dbl(inc(5)) == 12
	lazyfunc.Constant[string, int]("fallback")(99) // "fallback"
	lazyfunc.ApplyTo[int, int](5)(inc)             // 6

# Array Utilities

The slice helpers never write through their inputs; results are always
fresh slices. Lookup helpers signal absence in-band: IndexOf returns -1
and FindLast returns a comma-ok pair. Equality for Includes and IndexOf
is the == operator, nothing deeper.

	last, ok := lazyfunc.FindLast(isEven)([]int{1, 2, 3, 4, 5}) // 4, true
	lazyfunc.IndexOf(53)([]int{1, 2, 3})                        // -1

# Currying

Contracts that take configuration plus data take them one argument at a
time, configuration first. A half-applied function is an ordinary value,
so a configured step can be built once and reused:

	dropHeader := lazyfunc.Drop[string](1)
	hasError := lazyfunc.Some(func(l string) bool {
		return strings.HasPrefix(l, "ERROR")
	})

# Errors

There are no error returns. The one validated precondition is Generate's
generator function, which must be non-nil; violating it panics at the
construction call site. Everything else is total over its documented
domain.

# Package Import

	import "github.com/Pure-Company/lazyfunc"
*/
package lazyfunc
