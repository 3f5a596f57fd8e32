// Package smartpointers maps owning, shared and weak pointer patterns onto
// Go: plain pointers for boxing, embedding for deref, defer and
// runtime.AddCleanup for drop, explicit reference counts, runtime-checked
// borrows, weak.Pointer and atomic.Pointer.
package smartpointers

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"
	"weak"
)

// Run prints every lesson of the tutorial.
func Run() {
	fmt.Println("智能指针演示")
	fmt.Println("------------")

	section("指针与递归类型（Box）")
	demoBox()

	section("嵌入与方法提升（Deref）")
	demoDeref()

	section("资源释放（Drop）：defer 与 runtime.AddCleanup")
	demoDrop()

	section("引用计数共享所有权（Rc）")
	demoRc()

	section("运行时借用检查（RefCell）")
	demoRefCell()

	section("弱引用：weak.Pointer 与父子树")
	demoWeak()

	section("原子指针替换（Arc + 原子交换）")
	demoAtomicPointer()

	fmt.Println("\n智能指针演示完成！")
}

func section(title string) {
	fmt.Printf("\n━━━ %s ━━━\n", title)
}

// List is a cons list; the pointer gives the recursive type a finite size.
type List struct {
	Head int
	Tail *List
}

// Cons prepends v to l.
func Cons(v int, l *List) *List { return &List{Head: v, Tail: l} }

func (l *List) String() string {
	var parts []string
	for n := l; n != nil; n = n.Tail {
		parts = append(parts, fmt.Sprint(n.Head))
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// Sum walks the list.
func (l *List) Sum() int {
	if l == nil {
		return 0
	}
	return l.Head + l.Tail.Sum()
}

func demoBox() {
	p := new(int)
	*p = 5
	fmt.Println("  new(int) 分配并解引用:", *p)
	l := Cons(1, Cons(2, Cons(3, nil)))
	fmt.Println("  递归链表:", l, "和 =", l.Sum())
	var empty *List
	fmt.Println("  nil 接收者也能调用方法:", empty.Sum())
}

// Box wraps a value behind a pointer; Get is the explicit deref.
type Box[T any] struct{ v *T }

func NewBox[T any](v T) Box[T] { return Box[T]{v: &v} }
func (b Box[T]) Get() T        { return *b.v }
func (b Box[T]) Set(v T)       { *b.v = v }

type logger struct{ prefix string }

func (l logger) Log(msg string) string { return l.prefix + msg }

// service gains Log through the embedded logger.
type service struct {
	*logger
	name string
}

func demoDeref() {
	b := NewBox("hello")
	c := b
	c.Set("shared")
	fmt.Println("  复制 Box 共享同一指针:", b.Get())

	s := service{logger: &logger{prefix: "[svc] "}, name: "api"}
	fmt.Println("  方法提升:", s.Log("started "+s.name))
	s.prefix = "[api] "
	fmt.Println("  字段也被提升:", s.Log("ready"))
}

type tracked struct {
	name   string
	events *[]string
}

func (t *tracked) Close() {
	*t.events = append(*t.events, "drop "+t.name)
}

// scoped shows LIFO release order with defer.
func scoped() []string {
	var events []string
	func() {
		a := &tracked{"a", &events}
		defer a.Close()
		b := &tracked{"b", &events}
		defer b.Close()
		events = append(events, "use a,b")
	}()
	return events
}

type blob struct{ data [1 << 16]byte }

// cleanupFired allocates a blob whose cleanup signals done once it is
// garbage collected.
func cleanupFired(wait time.Duration) bool {
	done := make(chan string, 1)
	func() {
		b := &blob{}
		b.data[0] = 1
		runtime.AddCleanup(b, func(name string) { done <- name }, "blob")
	}()
	deadline := time.After(wait)
	for {
		runtime.GC()
		select {
		case <-done:
			return true
		case <-deadline:
			return false
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func demoDrop() {
	for _, e := range scoped() {
		fmt.Println("  ", e)
	}
	if cleanupFired(time.Second) {
		fmt.Println("  对象不可达后 AddCleanup 注册的清理函数已运行")
	} else {
		fmt.Println("  清理函数尚未运行：GC 时机不确定，不能替代 Close")
	}
}

// Rc is an explicitly reference-counted handle. The release function runs
// when the last handle is dropped.
type Rc[T any] struct {
	state *rcState[T]
}

type rcState[T any] struct {
	value   T
	count   atomic.Int32
	release func(T)
}

// NewRc returns the first handle to v.
func NewRc[T any](v T, release func(T)) Rc[T] {
	s := &rcState[T]{value: v, release: release}
	s.count.Store(1)
	return Rc[T]{state: s}
}

func (r Rc[T]) Clone() Rc[T] {
	r.state.count.Add(1)
	return r
}

func (r Rc[T]) Get() T     { return r.state.value }
func (r Rc[T]) Count() int { return int(r.state.count.Load()) }

// Drop releases this handle.
func (r Rc[T]) Drop() {
	if r.state.count.Add(-1) == 0 && r.state.release != nil {
		r.state.release(r.state.value)
	}
}

func demoRc() {
	released := false
	a := NewRc("配置数据", func(string) { released = true })
	b := a.Clone()
	c := a.Clone()
	fmt.Println("  克隆两次后引用计数:", a.Count())
	c.Drop()
	fmt.Println("  释放一个后:", a.Count())
	b.Drop()
	a.Drop()
	fmt.Println("  全部释放后资源已回收:", released)
}

// ErrBorrowed reports a borrow that conflicts with an outstanding one.
var ErrBorrowed = errors.New("already borrowed")

// RefCell enforces "many readers or one writer" when borrows are taken, not
// when the program is compiled.
type RefCell[T any] struct {
	mu      sync.Mutex
	value   T
	readers int
	writing bool
}

func NewRefCell[T any](v T) *RefCell[T] { return &RefCell[T]{value: v} }

// Borrow returns the value and a release func.
func (c *RefCell[T]) Borrow() (T, func(), error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.writing {
		var zero T
		return zero, nil, fmt.Errorf("borrow: %w mutably", ErrBorrowed)
	}
	c.readers++
	return c.value, func() {
		c.mu.Lock()
		c.readers--
		c.mu.Unlock()
	}, nil
}

// BorrowMut returns a pointer valid until release is called.
func (c *RefCell[T]) BorrowMut() (*T, func(), error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.writing || c.readers > 0 {
		return nil, nil, fmt.Errorf("borrow mut: %w", ErrBorrowed)
	}
	c.writing = true
	return &c.value, func() {
		c.mu.Lock()
		c.writing = false
		c.mu.Unlock()
	}, nil
}

func demoRefCell() {
	cell := NewRefCell([]string{"a"})

	p, release, _ := cell.BorrowMut()
	*p = append(*p, "b")
	if _, _, err := cell.Borrow(); err != nil {
		fmt.Println("  写借用期间读取:", err)
	}
	release()

	v, done, _ := cell.Borrow()
	v2, done2, _ := cell.Borrow()
	fmt.Println("  两个读借用同时存在:", v, v2)
	if _, _, err := cell.BorrowMut(); err != nil {
		fmt.Println("  读借用期间写入:", err)
	}
	done()
	done2()
	if _, rel, err := cell.BorrowMut(); err == nil {
		fmt.Println("  释放后可再次写借用")
		rel()
	}
}

// Node links children strongly and the parent weakly so the tree can be
// collected from the root.
type Node struct {
	Name     string
	parent   weak.Pointer[Node]
	children []*Node
}

func (n *Node) Add(child *Node) {
	child.parent = weak.Make(n)
	n.children = append(n.children, child)
}

// Parent returns nil for a root or a parent that has been collected.
func (n *Node) Parent() *Node { return n.parent.Value() }

// Path walks parent links up to the root.
func (n *Node) Path() string {
	names := []string{n.Name}
	for p := n.Parent(); p != nil; p = p.Parent() {
		names = append([]string{p.Name}, names...)
	}
	return strings.Join(names, "/")
}

func demoWeak() {
	root := &Node{Name: "root"}
	branch := &Node{Name: "branch"}
	leaf := &Node{Name: "leaf"}
	root.Add(branch)
	branch.Add(leaf)
	fmt.Println("  叶子路径:", leaf.Path())
	fmt.Println("  根的父节点为 nil:", root.Parent() == nil)

	w := weak.Make(leaf)
	fmt.Println("  目标存活时 Value() 返回原指针:", w.Value() == leaf)
	fmt.Println("  弱指针不阻止回收；目标被回收后 Value() 返回 nil")
	runtime.KeepAlive(root)
}

type settings struct {
	Version int
	Mode    string
}

// store publishes immutable snapshots that readers load without locking.
type store struct{ cur atomic.Pointer[settings] }

func (s *store) Load() *settings     { return s.cur.Load() }
func (s *store) Publish(v *settings) { s.cur.Store(v) }

func (s *store) Update(f func(settings) settings) {
	for {
		old := s.cur.Load()
		next := f(*old)
		if s.cur.CompareAndSwap(old, &next) {
			return
		}
	}
}

func demoAtomicPointer() {
	var s store
	s.Publish(&settings{Version: 1, Mode: "safe"})
	snapshot := s.Load()

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Update(func(c settings) settings { c.Version++; return c })
		}()
	}
	wg.Wait()
	fmt.Println("  旧快照不受影响:", snapshot.Version, snapshot.Mode)
	fmt.Println("  10 次 CAS 更新后:", s.Load().Version)
}
