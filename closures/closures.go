// Package closures covers function literals: capturing, per-iteration loop
// variables, functions as parameters and results, and composition.
package closures

import (
	"fmt"
	"sort"
	"strings"
)

// Run prints every lesson of the tutorial.
func Run() {
	fmt.Println("闭包演示")
	fmt.Println("--------")

	section("基础：函数字面量与捕获")
	demoBasics()

	section("按引用捕获与循环变量")
	demoCapture()

	section("函数作为参数与返回值")
	demoHigherOrder()

	section("有状态闭包：计数器、生成器、记忆化")
	demoStateful()

	section("组合：中间件链")
	demoMiddleware()

	section("示例：事件总线")
	demoEventBus()

	fmt.Println("\n闭包演示完成！")
}

func section(title string) {
	fmt.Printf("\n━━━ %s ━━━\n", title)
}

func demoBasics() {
	add := func(a, b int) int { return a + b }
	fmt.Println("  add(2, 3) =", add(2, 3))

	factor := 10
	scale := func(x int) int { return x * factor } // captures factor
	fmt.Println("  scale(4) =", scale(4))

	// Immediately invoked.
	msg := func(name string) string { return "hi " + name }("gopher")
	fmt.Println("  立即调用:", msg)
}

func demoCapture() {
	// Closures capture variables, not values.
	x := 1
	inc := func() { x++ }
	inc()
	inc()
	fmt.Println("  调用两次 inc 后 x =", x)

	// Since Go 1.22 each iteration has its own loop variable.
	var funcs []func() int
	for i := range 3 {
		funcs = append(funcs, func() int { return i * i })
	}
	var got []int
	for _, f := range funcs {
		got = append(got, f())
	}
	fmt.Println("  每次迭代独立的 i:", got)

	// Copy explicitly to snapshot a variable that changes later.
	y := 5
	snapshot := y
	show := func() int { return snapshot }
	y = 50
	fmt.Println("  快照值:", show(), "当前 y:", y)
}

// apply calls f on each element, like an Fn parameter.
func apply(xs []int, f func(int) int) []int {
	out := make([]int, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}

// adder returns a closure over n.
func adder(n int) func(int) int {
	return func(x int) int { return x + n }
}

// compose returns g∘f.
func compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C { return g(f(a)) }
}

func demoHigherOrder() {
	xs := []int{1, 2, 3}
	fmt.Println("  apply(double):", apply(xs, func(x int) int { return x * 2 }))
	fmt.Println("  apply(adder(10)):", apply(xs, adder(10)))

	lenThenDouble := compose(func(s string) int { return len(s) }, func(n int) int { return n * 2 })
	fmt.Println("  compose(len, double)(\"gopher\") =", lenThenDouble("gopher"))

	people := []struct {
		Name string
		Age  int
	}{{"小张", 30}, {"小李", 25}, {"小王", 35}}
	sort.Slice(people, func(i, j int) bool { return people[i].Age < people[j].Age })
	fmt.Println("  sort.Slice 按年龄:", people)
}

func counter() (next func() int, reset func()) {
	n := 0
	next = func() int { n++; return n }
	reset = func() { n = 0 }
	return next, reset
}

func fibGen() func() int {
	a, b := 0, 1
	return func() int {
		r := a
		a, b = b, a+b
		return r
	}
}

// memoize caches f's results; calls counts underlying invocations.
func memoize(f func(int) int) (cached func(int) int, calls *int) {
	cache := map[int]int{}
	n := 0
	return func(x int) int {
		if v, ok := cache[x]; ok {
			return v
		}
		n++
		v := f(x)
		cache[x] = v
		return v
	}, &n
}

func demoStateful() {
	next, reset := counter()
	next()
	next()
	fmt.Println("  counter:", next())
	reset()
	fmt.Println("  reset 后:", next())

	fib := fibGen()
	var seq []int
	for range 10 {
		seq = append(seq, fib())
	}
	fmt.Println("  fibonacci 生成器:", seq)

	square, calls := memoize(func(x int) int { return x * x })
	for _, x := range []int{4, 4, 5, 4, 5} {
		square(x)
	}
	fmt.Println("  memoize: 5 次调用，实际计算", *calls, "次")
}

// Handler and Middleware form a chain where each layer wraps the next.
type Handler func(req string) string

type Middleware func(Handler) Handler

func chain(h Handler, mws ...Middleware) Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

func tag(name string) Middleware {
	return func(next Handler) Handler {
		return func(req string) string {
			return name + "(" + next(req) + ")"
		}
	}
}

func upper(next Handler) Handler {
	return func(req string) string { return next(strings.ToUpper(req)) }
}

func demoMiddleware() {
	h := chain(func(req string) string { return "handle:" + req }, tag("log"), tag("auth"), upper)
	fmt.Println("  ", h("get /users"))
}

// Bus dispatches events to subscribed callbacks in subscription order.
type Bus struct {
	subs map[string][]func(payload string)
}

func NewBus() *Bus { return &Bus{subs: map[string][]func(string){}} }

// Subscribe returns a function that removes the subscription.
func (b *Bus) Subscribe(topic string, fn func(string)) (unsubscribe func()) {
	b.subs[topic] = append(b.subs[topic], fn)
	idx := len(b.subs[topic]) - 1
	return func() { b.subs[topic][idx] = nil }
}

func (b *Bus) Publish(topic, payload string) int {
	delivered := 0
	for _, fn := range b.subs[topic] {
		if fn != nil {
			fn(payload)
			delivered++
		}
	}
	return delivered
}

func demoEventBus() {
	bus := NewBus()
	var log []string
	unsub := bus.Subscribe("order", func(p string) { log = append(log, "邮件:"+p) })
	bus.Subscribe("order", func(p string) { log = append(log, "短信:"+p) })

	fmt.Println("  发布给", bus.Publish("order", "#1001"), "个订阅者")
	unsub()
	fmt.Println("  取消一个后发布给", bus.Publish("order", "#1002"), "个订阅者")
	fmt.Println("  记录:", log)
}
