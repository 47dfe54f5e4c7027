package lazyfunc_test

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Pure-Company/lazyfunc"
)

// ============================================================================
// Example 1: Infinite sequences with restart
// ============================================================================

func ExampleGenerate() {
	squares := lazyfunc.Generate(func(i int) int { return i * i })

	fmt.Println(lazyfunc.Collect(5, squares))

	// Ranging again restarts from index 0.
	fmt.Println(lazyfunc.Collect(3, squares))
	// Output:
	// [0 1 4 9 16]
	// [0 1 4]
}

// ============================================================================
// Example 2: Transformer pipeline
// ============================================================================

func ExampleDrop() {
	naturals := lazyfunc.Generate(func(i int) int { return i })

	skipTen := lazyfunc.Drop[int](10)
	fmt.Println(lazyfunc.Collect(4, skipTen(naturals)))
	// Output: [10 11 12 13]
}

func ExamplePrepend() {
	header := slices.Values([]string{"# report", ""})
	body := slices.Values([]string{"line 1", "line 2"})

	withHeader := lazyfunc.Prepend(header)(body)
	for line := range withHeader {
		fmt.Println(line)
	}
	// Output:
	// # report
	//
	// line 1
	// line 2
}

// ============================================================================
// Example 3: Combinators as pipeline glue
// ============================================================================

func ExampleCompose() {
	trim := strings.TrimSpace
	upper := strings.ToUpper

	shout := lazyfunc.Compose[string](upper)(trim)
	fmt.Println(shout("  hello  "))
	// Output: HELLO
}

func ExampleFlip() {
	prefix := func(p string) func(string) string {
		return func(s string) string { return p + s }
	}

	// Flip turns "bind prefix first" into "bind subject first".
	greet := lazyfunc.Flip(prefix)("world")
	fmt.Println(greet("hello, "))
	fmt.Println(greet("goodbye, "))
	// Output:
	// hello, world
	// goodbye, world
}

func ExampleApplyTo() {
	steps := []func(int) int{
		func(n int) int { return n + 1 },
		func(n int) int { return n * 10 },
	}

	at := lazyfunc.ApplyTo[int, int](4)
	for _, f := range steps {
		fmt.Println(at(f))
	}
	// Output:
	// 5
	// 40
}

// ============================================================================
// Example 4: Array utilities
// ============================================================================

func ExampleFindLast() {
	isEven := func(n int) bool { return n%2 == 0 }

	if v, ok := lazyfunc.FindLast(isEven)([]int{1, 2, 3, 4, 5}); ok {
		fmt.Println("last even:", v)
	}

	if _, ok := lazyfunc.FindLast(isEven)([]int{1, 3, 5}); !ok {
		fmt.Println("no even element")
	}
	// Output:
	// last even: 4
	// no even element
}

func ExampleReduceRight() {
	concat := func(acc, v string) string { return acc + v }

	fold := lazyfunc.ReduceRight(concat)("")
	fmt.Println(fold([]string{"a", "b", "c"}))
	// Output: cba
}

func ExampleReverse() {
	s := []int{1, 2, 3}
	fmt.Println(lazyfunc.Reverse(s))
	fmt.Println(s)
	// Output:
	// [3 2 1]
	// [1 2 3]
}
