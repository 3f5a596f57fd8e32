// Package generics covers type parameters: generic functions, constraints,
// generic data structures and the limits of Go's design.
package generics

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Run prints every lesson of the tutorial.
func Run() {
	fmt.Println("泛型演示")
	fmt.Println("--------")

	section("泛型函数：Map / Filter / Reduce")
	demoFunctions()

	section("约束：any、comparable、constraints.Ordered、~T 与联合")
	demoConstraints()

	section("泛型数据结构：Stack[T]、Pair[K, V]")
	demoDataStructs()

	section("Result[T] 与零值")
	demoResult()

	section("限制：方法不能有自己的类型参数")
	demoLimitations()

	fmt.Println("\n泛型演示完成！")
}

func section(title string) {
	fmt.Printf("\n━━━ %s ━━━\n", title)
}

// Map transforms every element of s using f.
func Map[T, U any](s []T, f func(T) U) []U {
	out := make([]U, len(s))
	for i, v := range s {
		out[i] = f(v)
	}
	return out
}

// Filter keeps the elements for which keep returns true.
func Filter[T any](s []T, keep func(T) bool) []T {
	var out []T
	for _, v := range s {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// Reduce folds s left to right starting at init.
func Reduce[T, A any](s []T, init A, f func(A, T) A) A {
	acc := init
	for _, v := range s {
		acc = f(acc, v)
	}
	return acc
}

func demoFunctions() {
	nums := []int{1, 2, 3, 4, 5, 6}
	squares := Map(nums, func(n int) int { return n * n })
	evens := Filter(nums, func(n int) bool { return n%2 == 0 })
	sum := Reduce(nums, 0, func(acc, n int) int { return acc + n })
	labels := Map(nums[:3], func(n int) string { return fmt.Sprintf("#%d", n) })

	fmt.Println("  squares =", squares)
	fmt.Println("  evens   =", evens)
	fmt.Println("  sum     =", sum)
	fmt.Println("  labels  =", strings.Join(labels, ","))
}

// Largest works for any ordered type.
func Largest[T constraints.Ordered](xs []T) (T, bool) {
	var zero T
	if len(xs) == 0 {
		return zero, false
	}
	best := xs[0]
	for _, x := range xs[1:] {
		if x > best {
			best = x
		}
	}
	return best, true
}

// Number is a union constraint; ~ admits named types with these underlying types.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum adds any numeric slice.
func Sum[T Number](xs []T) T {
	var total T
	for _, x := range xs {
		total += x
	}
	return total
}

// IndexOf needs only ==.
func IndexOf[T comparable](xs []T, target T) int {
	for i, x := range xs {
		if x == target {
			return i
		}
	}
	return -1
}

// Meters is a named type admitted by ~float64.
type Meters float64

// Describer is a method constraint.
type Describer interface {
	Describe() string
}

type book struct{ title string }

func (b book) Describe() string { return "《" + b.title + "》" }

// DescribeAll accepts any slice whose element type has Describe.
func DescribeAll[T Describer](xs []T) []string {
	return Map(xs, func(x T) string { return x.Describe() })
}

func demoConstraints() {
	if v, ok := Largest([]int{34, 50, 25, 100, 65}); ok {
		fmt.Println("  Largest(int) =", v)
	}
	if v, ok := Largest([]string{"pear", "apple", "zucchini"}); ok {
		fmt.Println("  Largest(string) =", v)
	}
	if _, ok := Largest([]float64{}); !ok {
		fmt.Println("  Largest(空切片) → ok=false")
	}

	fmt.Println("  Sum([]int) =", Sum([]int{1, 2, 3}))
	fmt.Printf("  Sum([]Meters) = %.1f (~float64 允许命名类型)\n", Sum([]Meters{1.5, 2.5}))
	fmt.Println("  IndexOf(\"go\") =", IndexOf([]string{"rust", "go", "zig"}, "go"))
	fmt.Println("  DescribeAll:", DescribeAll([]book{{"Go 程序设计语言"}, {"代码整洁之道"}}))
}

// Stack is a LIFO of T.
type Stack[T any] struct {
	items []T
}

func (s *Stack[T]) Push(v T) { s.items = append(s.items, v) }

// Pop removes the top element; ok is false when the stack is empty.
func (s *Stack[T]) Pop() (v T, ok bool) {
	if len(s.items) == 0 {
		return v, false
	}
	v = s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return v, true
}

func (s *Stack[T]) Len() int { return len(s.items) }

// Pair holds two values of possibly different types.
type Pair[K comparable, V any] struct {
	Key K
	Val V
}

func (p Pair[K, V]) String() string { return fmt.Sprintf("(%v: %v)", p.Key, p.Val) }

// Swap returns the pair with its halves exchanged. V must be comparable too,
// so this is a function, not a method.
func Swap[K, V comparable](p Pair[K, V]) Pair[V, K] {
	return Pair[V, K]{Key: p.Val, Val: p.Key}
}

func demoDataStructs() {
	var s Stack[string]
	for _, w := range []string{"a", "b", "c"} {
		s.Push(w)
	}
	fmt.Print("  Stack 弹出顺序:")
	for {
		v, ok := s.Pop()
		if !ok {
			break
		}
		fmt.Print(" ", v)
	}
	fmt.Println()

	p := Pair[string, int]{"年龄", 30}
	fmt.Println("  Pair:", p, "Swap:", Swap(p))
}

// Result carries either a value or an error.
type Result[T any] struct {
	Val T
	Err error
}

// Try wraps a (value, error) call.
func Try[T any](v T, err error) Result[T] { return Result[T]{v, err} }

// OrElse returns the value or fallback on error.
func (r Result[T]) OrElse(fallback T) T {
	if r.Err != nil {
		return fallback
	}
	return r.Val
}

// Zero returns T's zero value.
func Zero[T any]() T {
	var z T
	return z
}

var errParse = errors.New("parse failure")

func parse(s string) (int, error) {
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
		return 0, errParse
	}
	return n, nil
}

func demoResult() {
	for _, in := range []string{"12", "x"} {
		n, err := parse(in)
		fmt.Printf("  Try(parse(%q)).OrElse(-1) = %d\n", in, Try(n, err).OrElse(-1))
	}
	fmt.Printf("  Zero[int]()=%d Zero[string]()=%q Zero[*int]()=%v\n", Zero[int](), Zero[string](), Zero[*int]())
}

// Converting a Stack[T] to Stack[U] needs a top-level function because
// methods cannot introduce type parameters.
func MapStack[T, U any](s *Stack[T], f func(T) U) *Stack[U] {
	return &Stack[U]{items: Map(s.items, f)}
}

func demoLimitations() {
	var s Stack[int]
	s.Push(1)
	s.Push(2)
	strs := MapStack(&s, func(n int) string { return strings.Repeat("*", n) })
	fmt.Println("  MapStack 转换后长度:", strs.Len())
	top, _ := strs.Pop()
	fmt.Println("  顶部元素:", top)
	fmt.Println("  其它限制：无特化、无默认类型参数、对类型参数做类型分支需先转换为 any")
}
