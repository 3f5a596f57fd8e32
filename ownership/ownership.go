// Package ownership shows how values move through a program without an
// ownership checker: value semantics, shared backing storage, pointers as
// borrows, escape to the heap and scoped release with defer.
package ownership

import (
	"fmt"
	"slices"
	"strings"
	"unsafe"
)

// Run prints every lesson of the tutorial.
func Run() {
	fmt.Println("所有权系统演示")
	fmt.Println("--------------")

	section("值语义：赋值与传参即复制")
	demoValueSemantics()

	section("共享底层数组：切片别名")
	demoSliceAliasing()

	section("指针即借用：可变借用与只读视图")
	demoBorrowing()

	section("逃逸分析：返回局部变量的地址")
	demoEscape()

	section("作用域结束时释放：defer")
	demoScopedRelease()

	section("字符串不可变与切片视图")
	demoStrings()

	fmt.Println("\n所有权系统演示完成！")
}

func section(title string) {
	fmt.Printf("\n━━━ %s ━━━\n", title)
}

type point struct{ X, Y int }

func moveRight(p point) point {
	p.X++ // modifies the callee's copy only
	return p
}

func demoValueSemantics() {
	a := point{1, 2}
	b := a // full copy; a and b are independent
	b.X = 100
	fmt.Printf("  a=%v b=%v (结构体赋值是复制)\n", a, b)

	c := moveRight(a)
	fmt.Printf("  moveRight(a) 返回 %v，a 仍为 %v\n", c, a)

	arr := [3]int{1, 2, 3}
	arr2 := arr // arrays are values too
	arr2[0] = 99
	fmt.Println("  数组复制:", arr, arr2)

	// Maps, slices, channels and funcs are small headers that point at
	// shared data; copying the header shares that data.
	m := map[string]int{"k": 1}
	alias := m
	alias["k"] = 2
	fmt.Println("  map 复制头部后共享数据: m[k] =", m["k"])
}

func demoSliceAliasing() {
	orig := []int{1, 2, 3, 4, 5}
	view := orig[1:3] // shares orig's backing array
	view[0] = 20
	fmt.Println("  orig =", orig, "view =", view)

	// append within capacity writes into the shared array.
	view = append(view, 40)
	fmt.Println("  append 未超容量，orig 被改写:", orig, "view =", view)

	// A full slice expression caps capacity so append must copy.
	safe := orig[1:3:3]
	safe = append(safe, 400)
	fmt.Println("  三下标切片限制容量，orig 不变:", orig, "safe =", safe)

	// Make ownership explicit with a clone.
	owned := slices.Clone(orig)
	owned[0] = -1
	fmt.Println("  slices.Clone 后互不影响:", orig[0], owned[0])

	dst := make([]int, 2)
	n := copy(dst, orig)
	fmt.Println("  copy 复制了", n, "个元素:", dst)
}

// appendGreeting mutates through the pointer, the analogue of a mutable borrow.
func appendGreeting(sb *strings.Builder, name string) {
	sb.WriteString("你好, ")
	sb.WriteString(name)
}

// length only reads; taking the value is the analogue of a shared borrow.
func length(s string) int { return len(s) }

func demoBorrowing() {
	var sb strings.Builder
	appendGreeting(&sb, "Gopher")
	fmt.Println("  通过指针修改:", sb.String())

	s := "hello"
	fmt.Println("  只读使用 len =", length(s), "之后 s 仍可用:", s)

	p := point{3, 4}
	pp := &p
	pp.Y = 40 // auto-dereference
	fmt.Println("  通过 &p 修改后 p =", p)
}

//go:noinline
func newCounter() *int {
	n := 0 // escapes: its address outlives the call
	return &n
}

func demoEscape() {
	c := newCounter()
	*c += 5
	fmt.Println("  局部变量逃逸到堆上，*c =", *c)
	fmt.Println("  （go build -gcflags=-m 可查看逃逸分析结果）")
	fmt.Println("  不存在悬垂指针：只要还有引用，GC 就不会回收")
}

type resource struct {
	name string
	log  *[]string
}

func acquire(name string, log *[]string) *resource {
	*log = append(*log, "acquire "+name)
	return &resource{name: name, log: log}
}

func (r *resource) Close() {
	*r.log = append(*r.log, "release "+r.name)
}

// useResources releases in reverse acquisition order, like drops at the end
// of a scope.
func useResources() []string {
	var events []string
	func() {
		a := acquire("a", &events)
		defer a.Close()
		b := acquire("b", &events)
		defer b.Close()
		events = append(events, "use a+b")
	}()
	return events
}

func demoScopedRelease() {
	for _, e := range useResources() {
		fmt.Println("  ", e)
	}
}

func demoStrings() {
	s := "hello, 世界"
	sub := s[7:] // byte offsets; shares the same immutable bytes
	fmt.Printf("  s=%q s[7:]=%q\n", s, sub)
	fmt.Println("  子串与原串共享内存:", unsafe.StringData(s[7:]) == unsafe.StringData(sub))

	b := []byte(s) // conversion copies
	b[0] = 'H'
	fmt.Printf("  []byte 复制后修改: %q，原串 %q\n", string(b), s)
}
