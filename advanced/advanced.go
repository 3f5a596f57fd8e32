// Package advanced covers the low-level and less common corners: unsafe
// memory layout, bit reinterpretation, package-level state, lazy
// initialisation, build-time configuration and advanced type features.
package advanced

import (
	"fmt"
	"math"
	"runtime"
	"sync"
	"sync/atomic"
	"unsafe"
)

// Run prints every lesson of the tutorial.
func Run() {
	fmt.Println("高级特性演示")
	fmt.Println("------------")

	section("unsafe：大小、对齐与偏移")
	demoLayout()

	section("unsafe.Pointer 与位重解释（union 的替代）")
	demoReinterpret()

	section("包级可变状态：原子变量代替 static mut")
	demoGlobals()

	section("延迟初始化：sync.OnceValue")
	demoOnce()

	section("构建配置：runtime.GOOS 与构建约束")
	demoBuildConfig()

	section("类型进阶：类型别名、定义类型、函数类型")
	demoTypes()

	section("常量：无类型常量与编译期计算")
	demoConstants()

	fmt.Println("\n高级特性演示完成！")
}

func section(title string) {
	fmt.Printf("\n━━━ %s ━━━\n", title)
}

// padded wastes space because of field order.
type padded struct {
	a bool
	b int64
	c bool
}

// packed holds the same fields ordered by size.
type packed struct {
	b int64
	a bool
	c bool
}

func demoLayout() {
	fmt.Printf("  Sizeof: int64=%d bool=%d string=%d slice=%d\n",
		unsafe.Sizeof(int64(0)), unsafe.Sizeof(false), unsafe.Sizeof(""), unsafe.Sizeof([]int{}))
	fmt.Printf("  padded{bool,int64,bool} = %d 字节\n", unsafe.Sizeof(padded{}))
	fmt.Printf("  packed{int64,bool,bool} = %d 字节\n", unsafe.Sizeof(packed{}))
	fmt.Printf("  Offsetof(padded.b) = %d, Alignof(int64) = %d\n",
		unsafe.Offsetof(padded{}.b), unsafe.Alignof(int64(0)))
}

// Float32Bits reads the IEEE-754 bits of f through a pointer conversion,
// the same trick math.Float32bits performs.
func Float32Bits(f float32) uint32 {
	return *(*uint32)(unsafe.Pointer(&f))
}

func demoReinterpret() {
	f := float32(1.0)
	fmt.Printf("  float32(1.0) 的位 = 0x%08x (unsafe) 0x%08x (math)\n", Float32Bits(f), math.Float32bits(f))
	fmt.Printf("  math.Float64frombits(0x4000000000000000) = %g\n", math.Float64frombits(0x4000000000000000))

	arr := [4]int32{10, 20, 30, 40}
	p := unsafe.Pointer(&arr[0])
	third := *(*int32)(unsafe.Add(p, 2*unsafe.Sizeof(arr[0])))
	fmt.Println("  指针运算 unsafe.Add 取第三个元素:", third)

	s := unsafe.Slice(&arr[0], 2)
	fmt.Println("  unsafe.Slice 前两个元素:", s)
}

var requests atomic.Int64

var (
	registryMu sync.Mutex
	registry   = map[string]int{}
)

func handle(route string) {
	requests.Add(1)
	registryMu.Lock()
	registry[route]++
	registryMu.Unlock()
}

func demoGlobals() {
	var wg sync.WaitGroup
	for _, r := range []string{"/a", "/b", "/a", "/a"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			handle(r)
		}()
	}
	wg.Wait()
	registryMu.Lock()
	a, b := registry["/a"], registry["/b"]
	registryMu.Unlock()
	fmt.Printf("  总请求 %d，/a=%d /b=%d\n", requests.Load(), a, b)
}

var loads atomic.Int32

// settings is computed on first use and cached for every later call.
var settings = sync.OnceValue(func() map[string]string {
	loads.Add(1)
	return map[string]string{"env": "production", "region": "cn-east"}
})

func demoOnce() {
	var wg sync.WaitGroup
	for range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = settings()["env"]
		}()
	}
	wg.Wait()
	fmt.Println("  5 个 goroutine 并发访问，初始化执行次数:", loads.Load())
	fmt.Println("  env =", settings()["env"])
}

func demoBuildConfig() {
	fmt.Println("  runtime.GOOS 可在运行时判断平台，例如 linux/darwin/windows")
	fmt.Println("  当前是否为 64 位指针:", unsafe.Sizeof(uintptr(0)) == 8)
	fmt.Println("  编译期选择用文件头的构建约束: //go:build linux && amd64")
	fmt.Println("  或文件名后缀: foo_linux.go、foo_windows.go")
	if runtime.GOOS == "windows" {
		fmt.Println("  路径分隔符为反斜杠")
	} else {
		fmt.Println("  路径分隔符为正斜杠")
	}
}

// Kilometers is a defined type: distinct from float64 and can have methods.
type Kilometers float64

func (k Kilometers) Miles() float64 { return float64(k) * 0.621371 }

// Bytes is an alias: identical to []byte, interchangeable everywhere.
type Bytes = []byte

// Op is a function type with its own method.
type Op func(int, int) int

func (o Op) Twice(a, b int) int { return o(o(a, b), b) }

// Never-returning helpers are marked by convention and by panic.
func unreachable(msg string) int {
	panic("unreachable: " + msg)
}

func pick(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	case n == 0:
		return 0
	}
	return unreachable("exhausted comparisons")
}

func demoTypes() {
	d := Kilometers(42.195)
	fmt.Printf("  马拉松 %.3f km = %.2f 英里\n", float64(d), d.Miles())

	var b Bytes = []byte("alias")
	var raw []byte = b
	fmt.Println("  类型别名可直接互换:", string(raw))

	add := Op(func(a, b int) int { return a + b })
	fmt.Println("  函数类型的方法 add.Twice(1, 10) =", add.Twice(1, 10))
	fmt.Println("  pick(-5) =", pick(-5))
}

const (
	huge  = 1 << 100 // untyped constants have arbitrary precision
	small = huge >> 98
)

// Compile-time check: this stops building if the constant overflows uint32.
const _ = uint32(math.MaxInt32)

func demoConstants() {
	fmt.Println("  1<<100 >> 98 =", small)
	fmt.Println("  常量表达式在编译期求值: len([10]int{}) =", len([10]int{}))
	const typed int8 = 100
	fmt.Println("  有类型常量 int8 =", typed)
}
