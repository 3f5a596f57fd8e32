// Package enums expresses enumerations two ways: iota constants for plain
// tags and sealed interfaces for variants that carry data.
package enums

import (
	"errors"
	"fmt"
	"strconv"
)

// Run prints every lesson of the tutorial.
func Run() {
	fmt.Println("枚举演示")
	fmt.Println("--------")

	section("iota 常量枚举与 String()")
	demoIota()

	section("携带数据的变体：密封接口")
	demoSumTypes()

	section("Option：(T, bool) 与指针")
	demoOption()

	section("Result：(T, error)")
	demoResult()

	section("枚举上的方法：状态机")
	demoMethods()

	section("示例：交通灯")
	demoTrafficLight()

	fmt.Println("\n枚举演示完成！")
}

func section(title string) {
	fmt.Printf("\n━━━ %s ━━━\n", title)
}

// IPKind is a plain tag enum.
type IPKind int

const (
	V4 IPKind = iota
	V6
)

func (k IPKind) String() string {
	switch k {
	case V4:
		return "IPv4"
	case V6:
		return "IPv6"
	default:
		return "IPKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Permission is a bit-flag enum.
type Permission uint8

const (
	Read Permission = 1 << iota
	Write
	Exec
)

func (p Permission) Has(flag Permission) bool { return p&flag != 0 }

func demoIota() {
	fmt.Println("  V4 =", V4, "V6 =", V6, "未知 =", IPKind(9))

	perm := Read | Exec
	fmt.Printf("  权限 %03b: 读=%t 写=%t 执行=%t\n", perm, perm.Has(Read), perm.Has(Write), perm.Has(Exec))
}

// Message is a sealed sum type: only types in this package can implement it
// because isMessage is unexported.
type Message interface {
	isMessage()
}

type (
	Quit        struct{}
	Move        struct{ X, Y int }
	WriteText   struct{ Text string }
	ChangeColor struct{ R, G, B uint8 }
)

func (Quit) isMessage()        {}
func (Move) isMessage()        {}
func (WriteText) isMessage()   {}
func (ChangeColor) isMessage() {}

// describe switches over every variant. The default branch catches variants
// added later without a matching case.
func describe(m Message) string {
	switch v := m.(type) {
	case Quit:
		return "退出"
	case Move:
		return fmt.Sprintf("移动到 (%d, %d)", v.X, v.Y)
	case WriteText:
		return fmt.Sprintf("写入文本 %q", v.Text)
	case ChangeColor:
		return fmt.Sprintf("改变颜色为 #%02x%02x%02x", v.R, v.G, v.B)
	default:
		return fmt.Sprintf("未知消息 %T", v)
	}
}

func demoSumTypes() {
	msgs := []Message{
		Quit{},
		Move{X: 10, Y: -3},
		WriteText{Text: "hello"},
		ChangeColor{R: 255, G: 128, B: 0},
	}
	for _, m := range msgs {
		fmt.Println("  ", describe(m))
	}
}

func findIndex(xs []string, target string) (int, bool) {
	for i, x := range xs {
		if x == target {
			return i, true
		}
	}
	return 0, false
}

// middleName uses a nil pointer for "none".
func middleName(full map[string]string, who string) *string {
	if m, ok := full[who]; ok {
		return &m
	}
	return nil
}

func demoOption() {
	fruits := []string{"apple", "banana", "cherry"}
	for _, f := range []string{"banana", "durian"} {
		if i, ok := findIndex(fruits, f); ok {
			fmt.Printf("  Some(%d): %s\n", i, f)
		} else {
			fmt.Printf("  None: %s 不存在\n", f)
		}
	}

	names := map[string]string{"alice": "M."}
	for _, who := range []string{"alice", "bob"} {
		if m := middleName(names, who); m != nil {
			fmt.Printf("  %s 的中间名: %s\n", who, *m)
		} else {
			fmt.Printf("  %s 没有中间名 (nil)\n", who)
		}
	}
}

var ErrDivideByZero = errors.New("divide by zero")

func safeDivide(a, b int) (int, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	return a / b, nil
}

func demoResult() {
	for _, pair := range [][2]int{{10, 2}, {1, 0}} {
		q, err := safeDivide(pair[0], pair[1])
		if err != nil {
			fmt.Printf("  Err: %d/%d → %v\n", pair[0], pair[1], err)
			continue
		}
		fmt.Printf("  Ok: %d/%d = %d\n", pair[0], pair[1], q)
	}
}

// OrderState is a tag enum with transition methods.
type OrderState int

const (
	Pending OrderState = iota
	Paid
	Shipped
	Delivered
	Cancelled
)

var orderStateNames = [...]string{"待支付", "已支付", "已发货", "已送达", "已取消"}

func (s OrderState) String() string {
	if int(s) < len(orderStateNames) {
		return orderStateNames[s]
	}
	return "未知状态"
}

// Next returns the following state and false when there is none.
func (s OrderState) Next() (OrderState, bool) {
	switch s {
	case Pending:
		return Paid, true
	case Paid:
		return Shipped, true
	case Shipped:
		return Delivered, true
	default:
		return s, false
	}
}

func (s OrderState) CanCancel() bool { return s == Pending || s == Paid }

func demoMethods() {
	s := Pending
	for {
		fmt.Printf("  当前: %s (可取消=%t)\n", s, s.CanCancel())
		next, ok := s.Next()
		if !ok {
			break
		}
		s = next
	}
	fmt.Println("  终态:", s, "| Cancelled:", Cancelled)
}

// Light is a traffic light phase.
type Light int

const (
	Red Light = iota
	Green
	Yellow
)

func (l Light) String() string { return [...]string{"红灯", "绿灯", "黄灯"}[l] }

// Duration returns how long the phase lasts, in seconds.
func (l Light) Duration() int {
	switch l {
	case Red:
		return 60
	case Green:
		return 45
	default:
		return 3
	}
}

func (l Light) Next() Light { return (l + 1) % 3 }

func demoTrafficLight() {
	l := Red
	for range 4 {
		fmt.Printf("  %s 持续 %d 秒\n", l, l.Duration())
		l = l.Next()
	}
}
