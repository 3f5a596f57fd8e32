// Package iterators covers range-over-func iteration: iter.Seq and
// iter.Seq2, custom sequences, lazy adapters and pull iterators.
package iterators

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
)

// Run prints every lesson of the tutorial.
func Run() {
	fmt.Println("迭代器演示")
	fmt.Println("----------")

	section("range 的各种形式")
	demoRange()

	section("iter.Seq 与 iter.Seq2")
	demoSeq()

	section("自定义迭代器：Fibonacci、Countdown")
	demoCustom()

	section("惰性适配器：Map / Filter / Take / Enumerate")
	demoAdapters()

	section("消费者：Collect、Sum、Find")
	demoConsumers()

	section("拉取式迭代器：iter.Pull")
	demoPull()

	section("示例：日志分析")
	demoLogAnalysis()

	fmt.Println("\n迭代器演示完成！")
}

func section(title string) {
	fmt.Printf("\n━━━ %s ━━━\n", title)
}

func demoRange() {
	for i, v := range []string{"a", "b"} {
		fmt.Printf("  slice: %d=%s\n", i, v)
	}
	m := map[string]int{"x": 1, "y": 2}
	for _, k := range slices.Sorted(maps.Keys(m)) {
		fmt.Printf("  map(排序后): %s=%d\n", k, m[k])
	}
	ch := make(chan int, 3)
	ch <- 1
	ch <- 2
	ch <- 3
	close(ch)
	var got []int
	for v := range ch {
		got = append(got, v)
	}
	fmt.Println("  channel:", got)
}

func demoSeq() {
	// slices.Values is an iter.Seq; slices.All is an iter.Seq2.
	for v := range slices.Values([]int{10, 20}) {
		fmt.Println("  Values →", v)
	}
	for i, v := range slices.All([]string{"x", "y"}) {
		fmt.Println("  All →", i, v)
	}
	for i, v := range slices.Backward([]int{1, 2, 3}) {
		fmt.Println("  Backward →", i, v)
	}
}

// Fibonacci yields the sequence forever; the consumer decides when to stop.
func Fibonacci() iter.Seq[int] {
	return func(yield func(int) bool) {
		a, b := 0, 1
		for {
			if !yield(a) {
				return
			}
			a, b = b, a+b
		}
	}
}

// Countdown yields n, n-1, …, 1.
func Countdown(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := n; i > 0; i-- {
			if !yield(i) {
				return
			}
		}
	}
}

func demoCustom() {
	var fib []int
	for v := range Fibonacci() {
		if v > 100 {
			break
		}
		fib = append(fib, v)
	}
	fmt.Println("  Fibonacci ≤ 100:", fib)
	fmt.Println("  Countdown(5):", slices.Collect(Countdown(5)))
}

// Map lazily applies f.
func Map[T, U any](seq iter.Seq[T], f func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range seq {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// Filter lazily keeps elements matching keep.
func Filter[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

// Take stops after n elements.
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		count := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			count++
			if count == n {
				return
			}
		}
	}
}

// Enumerate pairs each element with its index.
func Enumerate[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for v := range seq {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}

func demoAdapters() {
	evaluated := 0
	squares := Map(Fibonacci(), func(n int) int { evaluated++; return n * n })
	odd := Filter(squares, func(n int) bool { return n%2 == 1 })
	first := slices.Collect(Take(odd, 5))
	fmt.Println("  前 5 个奇数平方的 Fibonacci:", first)
	fmt.Println("  惰性求值：只计算了", evaluated, "个元素")

	for i, w := range Enumerate(slices.Values([]string{"零", "一", "二"})) {
		fmt.Printf("  Enumerate: %d → %s\n", i, w)
	}
}

// Sum consumes a numeric sequence.
func Sum(seq iter.Seq[int]) int {
	total := 0
	for v := range seq {
		total += v
	}
	return total
}

// Find returns the first element matching pred.
func Find[T any](seq iter.Seq[T], pred func(T) bool) (T, bool) {
	for v := range seq {
		if pred(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func demoConsumers() {
	fmt.Println("  Sum(Countdown(10)) =", Sum(Countdown(10)))
	if v, ok := Find(Fibonacci(), func(n int) bool { return n > 1000 }); ok {
		fmt.Println("  第一个大于 1000 的 Fibonacci:", v)
	}
	words := slices.Collect(Map(slices.Values([]string{"go", "iter"}), strings.ToUpper))
	fmt.Println("  Collect(Map(ToUpper)):", words)
}

// Zip pairs two sequences until either ends, using pull iterators.
func Zip[A, B any](as iter.Seq[A], bs iter.Seq[B]) iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		nextA, stopA := iter.Pull(as)
		defer stopA()
		nextB, stopB := iter.Pull(bs)
		defer stopB()
		for {
			a, ok1 := nextA()
			b, ok2 := nextB()
			if !ok1 || !ok2 || !yield(a, b) {
				return
			}
		}
	}
}

func demoPull() {
	next, stop := iter.Pull(Countdown(3))
	defer stop()
	for {
		v, ok := next()
		if !ok {
			break
		}
		fmt.Println("  next() →", v)
	}

	for n, f := range Zip(Countdown(3), Fibonacci()) {
		fmt.Printf("  Zip: %d ↔ %d\n", n, f)
	}
}

// Lines splits text lazily into lines.
func Lines(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.SplitSeq(text, "\n") {
			if !yield(line) {
				return
			}
		}
	}
}

func demoLogAnalysis() {
	logs := "INFO start\nERROR disk full\nINFO tick\nWARN slow\nERROR timeout\nINFO stop"
	errs := Filter(Lines(logs), func(l string) bool { return strings.HasPrefix(l, "ERROR") })
	msgs := Map(errs, func(l string) string { return strings.TrimPrefix(l, "ERROR ") })
	for i, m := range Enumerate(msgs) {
		fmt.Printf("  错误 #%d: %s\n", i+1, m)
	}

	levels := map[string]int{}
	for l := range Lines(logs) {
		level, _, _ := strings.Cut(l, " ")
		levels[level]++
	}
	for _, k := range slices.Sorted(maps.Keys(levels)) {
		fmt.Printf("  %s: %d\n", k, levels[k])
	}
}
