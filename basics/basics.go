// Package basics covers the building blocks of the language: variables,
// constants, basic types, functions and control flow.
package basics

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Run prints every lesson of the tutorial.
func Run() {
	fmt.Println("基础语法演示")
	fmt.Println("------------")

	section("变量与可变性")
	demoVariables()

	section("数据类型与类型转换")
	demoTypes()

	section("函数：多返回值、命名返回值、可变参数")
	demoFunctions()

	section("控制流：if / for / switch / 标签")
	demoControlFlow()

	section("提前返回：comma-ok 与 guard 子句")
	demoEarlyReturn()

	fmt.Println("\n基础语法演示完成！")
}

func section(title string) {
	fmt.Printf("\n━━━ %s ━━━\n", title)
}

// Weekday constants use iota: each line increments the counter.
const (
	Sunday = iota
	Monday
	Tuesday
)

// Size constants use iota inside an expression.
const (
	_  = iota
	KB = 1 << (10 * iota)
	MB
	GB
)

func demoVariables() {
	// Every variable is mutable; there is no `mut` keyword.
	var x int = 5
	fmt.Println("  x =", x)
	x = 6
	fmt.Println("  x 重新赋值后 =", x)

	// Short declaration infers the type.
	y := 3.5
	fmt.Printf("  y = %v (%T)\n", y, y)

	// Shadowing in an inner scope creates a new variable.
	z := 10
	{
		z := z * 2
		fmt.Println("  内层作用域 z =", z)
	}
	fmt.Println("  外层作用域 z =", z)

	// Zero values: every type has one.
	var (
		i int
		s string
		b bool
		p *int
	)
	fmt.Printf("  零值: int=%d string=%q bool=%t pointer=%v\n", i, s, b, p)

	// Constants are untyped until used.
	const Pi = 3.14159
	fmt.Println("  const Pi =", Pi)
	fmt.Println("  iota: Sunday/Monday/Tuesday =", Sunday, Monday, Tuesday)
	fmt.Println("  iota 表达式: KB/MB/GB =", KB, MB, GB)
}

func demoTypes() {
	var (
		i8  int8    = math.MaxInt8
		u8  uint8   = math.MaxUint8
		f32 float32 = 1.0 / 3
		r   rune    = '中'
		by  byte    = 'A'
	)
	fmt.Printf("  int8 max=%d  uint8 max=%d\n", i8, u8)
	fmt.Printf("  float32 1/3=%.6f\n", f32)
	fmt.Printf("  rune '中' = %d (%c)  byte 'A' = %d\n", r, r, by)

	// Overflow wraps silently for fixed-size integers.
	i8++
	fmt.Println("  int8 溢出回绕:", i8)

	// Conversions are always explicit.
	n := 42
	f := float64(n) / 5
	fmt.Printf("  float64(42)/5 = %.1f\n", f)
	fl := 3.99
	fmt.Println("  int(3.99) 截断 =", int(fl))

	// Strings ↔ numbers go through strconv.
	s := strconv.Itoa(n)
	back, err := strconv.Atoi("123")
	fmt.Printf("  Itoa(42)=%q  Atoi(\"123\")=%d err=%v\n", s, back, err)
	_, err = strconv.Atoi("abc")
	fmt.Println("  Atoi(\"abc\") 错误:", err)

	// Arrays have a fixed length that is part of their type.
	arr := [3]int{1, 2, 3}
	matrix := [2][2]int{{1, 2}, {3, 4}}
	fmt.Println("  数组:", arr, "长度:", len(arr), "二维:", matrix)
}

func add(a, b int) int { return a + b }

// divmod returns two values, the idiomatic substitute for a tuple.
func divmod(a, b int) (int, int) { return a / b, a % b }

// stats uses named results; a bare return sends them back.
func stats(nums ...int) (sum int, mean float64) {
	for _, n := range nums {
		sum += n
	}
	if len(nums) > 0 {
		mean = float64(sum) / float64(len(nums))
	}
	return
}

func demoFunctions() {
	fmt.Println("  add(2, 3) =", add(2, 3))

	q, r := divmod(17, 5)
	fmt.Printf("  divmod(17, 5) = (%d, %d)\n", q, r)

	sum, mean := stats(1, 2, 3, 4)
	fmt.Printf("  stats(1,2,3,4) → sum=%d mean=%.2f\n", sum, mean)

	nums := []int{10, 20, 30}
	sum, _ = stats(nums...) // spread a slice into a variadic parameter
	fmt.Println("  stats(nums...) sum =", sum)

	// Functions are values.
	op := add
	fmt.Println("  op := add; op(7, 8) =", op(7, 8))
}

func demoControlFlow() {
	// if may start with a short statement scoped to the branches.
	if n := 7; n%2 == 0 {
		fmt.Println("  7 是偶数")
	} else {
		fmt.Println("  7 是奇数")
	}

	// for is the only loop: counted, condition-only, and range.
	var sb strings.Builder
	for i := 0; i < 5; i++ {
		fmt.Fprintf(&sb, "%d ", i)
	}
	fmt.Println("  for 计数:", strings.TrimSpace(sb.String()))

	count := 3
	for count > 0 {
		count--
	}
	fmt.Println("  for 条件循环结束 count =", count)

	for i, ch := range "Go语言" {
		fmt.Printf("  range 字符串: byte偏移=%d 字符=%c\n", i, ch)
	}

	// range over an int (Go 1.22+).
	total := 0
	for i := range 5 {
		total += i
	}
	fmt.Println("  range 5 求和 =", total)

	// switch does not fall through by default.
	for _, grade := range []int{95, 82, 40} {
		switch {
		case grade >= 90:
			fmt.Println("  成绩", grade, "→ 优秀")
		case grade >= 60:
			fmt.Println("  成绩", grade, "→ 及格")
		default:
			fmt.Println("  成绩", grade, "→ 不及格")
		}
	}

	// Labels break out of nested loops; a loop can also yield a value
	// through a variable assigned before break.
	found := -1
outer:
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			if i*j == 6 {
				found = i*10 + j
				break outer
			}
		}
	}
	fmt.Println("  标签 break outer，找到 i*j==6 的位置编码 =", found)
}

var errEmpty = errors.New("empty input")

// firstWord returns early when the input has nothing to offer, the guard
// shape Go uses where other languages have let-else.
func firstWord(s string) (string, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return "", errEmpty
	}
	return fields[0], nil
}

func demoEarlyReturn() {
	ages := map[string]int{"alice": 30}

	if age, ok := ages["alice"]; ok {
		fmt.Println("  alice 的年龄:", age)
	}
	if _, ok := ages["bob"]; !ok {
		fmt.Println("  bob 不存在 (comma-ok 为 false)")
	}

	for _, in := range []string{"hello world", "   "} {
		w, err := firstWord(in)
		if err != nil {
			fmt.Printf("  firstWord(%q) 提前返回: %v\n", in, err)
			continue
		}
		fmt.Printf("  firstWord(%q) = %q\n", in, w)
	}
}
