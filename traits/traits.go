// Package traits covers interfaces: implicit satisfaction, default behaviour
// through embedding, constraints, dynamic dispatch, interface hierarchies and
// newtypes.
package traits

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Run prints every lesson of the tutorial.
func Run() {
	fmt.Println("特征系统演示")
	fmt.Println("------------")

	section("接口定义与隐式实现")
	demoInterfaces()

	section("默认实现：嵌入一个基础类型")
	demoDefaults()

	section("接口作为泛型约束")
	demoConstraints()

	section("动态分发：接口值与类型断言")
	demoDynamicDispatch()

	section("运算符风格的方法：Add、Equal、Less")
	demoOperators()

	section("方法歧义：嵌入冲突与显式选择")
	demoAmbiguity()

	section("接口组合：父接口层次")
	demoHierarchy()

	section("newtype 模式：为外部类型添加行为")
	demoNewtype()

	section("示例：图形系统")
	demoGraphics()

	fmt.Println("\n特征系统演示完成！")
}

func section(title string) {
	fmt.Printf("\n━━━ %s ━━━\n", title)
}

// Summary is implemented by any type with these methods; no declaration is
// needed on the implementing side.
type Summary interface {
	Summarize() string
}

type Article struct {
	Title, Author string
}

func (a Article) Summarize() string { return a.Title + "，作者 " + a.Author }

type Tweet struct {
	User, Text string
}

func (t Tweet) Summarize() string { return "@" + t.User + ": " + t.Text }

func notify(s Summary) string { return "快讯! " + s.Summarize() }

// Compile-time check that the types satisfy the interface.
var (
	_ Summary = Article{}
	_ Summary = Tweet{}
)

func demoInterfaces() {
	fmt.Println("  ", notify(Article{"Go 1.24 发布", "Go 团队"}))
	fmt.Println("  ", notify(Tweet{"gopher", "泛型真好用"}))
}

// Greeter provides Greet on top of Name.
type Greeter interface {
	Name() string
	Greet() string
}

// baseGreeter supplies the default Greet; embedders may override it.
type baseGreeter struct{ name string }

func (b baseGreeter) Name() string  { return b.name }
func (b baseGreeter) Greet() string { return "你好，我是 " + b.name }

type english struct{ baseGreeter }

func (e english) Greet() string { return "Hello, I'm " + e.name }

type chinese struct{ baseGreeter }

func demoDefaults() {
	for _, g := range []Greeter{english{baseGreeter{"Tom"}}, chinese{baseGreeter{"小明"}}} {
		fmt.Printf("  %s → %s\n", g.Name(), g.Greet())
	}
}

// Shape is used both as a constraint and as a dynamic type below.
type Shape interface {
	Area() float64
	Name() string
}

type Circle struct{ R float64 }
type Rect struct{ W, H float64 }

func (c Circle) Area() float64 { return math.Pi * c.R * c.R }
func (c Circle) Name() string  { return "圆" }
func (r Rect) Area() float64   { return r.W * r.H }
func (r Rect) Name() string    { return "矩形" }

// Biggest is statically dispatched: T is fixed per instantiation.
func Biggest[T Shape](shapes []T) T {
	var best T
	for i, s := range shapes {
		if i == 0 || s.Area() > best.Area() {
			best = s
		}
	}
	return best
}

func demoConstraints() {
	c := Biggest([]Circle{{1}, {3}, {2}})
	fmt.Printf("  Biggest[Circle] 半径 = %.0f\n", c.R)
	r := Biggest([]Rect{{1, 2}, {3, 1}})
	fmt.Printf("  Biggest[Rect] = %+v\n", r)
}

func demoDynamicDispatch() {
	shapes := []Shape{Circle{1}, Rect{2, 3}, Circle{0.5}}
	total := 0.0
	for _, s := range shapes {
		total += s.Area()
		fmt.Printf("  %s 面积 %.2f\n", s.Name(), s.Area())
	}
	fmt.Printf("  总面积 %.2f\n", total)

	// Recover the concrete type when needed.
	if c, ok := shapes[0].(Circle); ok {
		fmt.Println("  断言为 Circle，半径", c.R)
	}
	if _, ok := shapes[1].(Circle); !ok {
		fmt.Println("  shapes[1] 不是 Circle")
	}
}

// Vec2 uses methods where other languages overload operators.
type Vec2 struct{ X, Y float64 }

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }
func (v Vec2) Equal(o Vec2) bool    { return v == o }
func (v Vec2) Len() float64         { return math.Hypot(v.X, v.Y) }
func (v Vec2) String() string       { return fmt.Sprintf("(%g, %g)", v.X, v.Y) }
func (v Vec2) Less(o Vec2) bool     { return v.Len() < o.Len() }
func (v Vec2) Dot(o Vec2) float64   { return v.X*o.X + v.Y*o.Y }
func (v Vec2) Neg() Vec2            { return Vec2{-v.X, -v.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return v.Add(o.Neg()) }

// byLength implements sort.Interface.
type byLength []Vec2

func (b byLength) Len() int           { return len(b) }
func (b byLength) Less(i, j int) bool { return b[i].Less(b[j]) }
func (b byLength) Swap(i, j int)      { b[i], b[j] = b[j], b[i] }

func demoOperators() {
	a, b := Vec2{1, 2}, Vec2{3, 4}
	fmt.Println("  a.Add(b) =", a.Add(b))
	fmt.Println("  b.Sub(a) =", b.Sub(a))
	fmt.Println("  a.Scale(3) =", a.Scale(3))
	fmt.Println("  a.Dot(b) =", a.Dot(b))
	fmt.Println("  a.Equal(Vec2{1,2}) =", a.Equal(Vec2{1, 2}))

	vs := byLength{{3, 4}, {1, 0}, {0, 2}}
	sort.Sort(vs)
	fmt.Println("  按长度排序 (sort.Interface):", vs)
}

type Pilot struct{}

func (Pilot) Fly() string { return "机长广播：准备起飞" }

type Wizard struct{}

func (Wizard) Fly() string { return "飞起来了！" }

// Human embeds both; the promoted Fly is ambiguous and must be chosen.
type Human struct {
	Pilot
	Wizard
}

func (Human) Fly() string { return "*挥动双臂*" }

func demoAmbiguity() {
	h := Human{}
	fmt.Println("  h.Fly()        =", h.Fly())
	fmt.Println("  h.Pilot.Fly()  =", h.Pilot.Fly())
	fmt.Println("  h.Wizard.Fly() =", h.Wizard.Fly())
	fmt.Println("  Pilot.Fly(h.Pilot) =", Pilot.Fly(h.Pilot), "(方法表达式)")
}

// Outline requires fmt.Stringer, like a supertrait.
type Outline interface {
	fmt.Stringer
	Outline() string
}

type Label struct{ Text string }

func (l Label) String() string { return l.Text }

func (l Label) Outline() string {
	s := l.String()
	border := strings.Repeat("*", len([]rune(s))+4)
	return border + "\n  * " + s + " *\n  " + border
}

func demoHierarchy() {
	var o Outline = Label{"hello"}
	fmt.Println("  " + o.Outline())
	var s fmt.Stringer = o // an Outline is always a Stringer
	fmt.Println("  作为 fmt.Stringer:", s.String())
}

// Wrapper adds a String method to []string without touching the slice type.
type Wrapper []string

func (w Wrapper) String() string { return "[" + strings.Join(w, ", ") + "]" }

// UserID and OrderID cannot be mixed up even though both are int64.
type (
	UserID  int64
	OrderID int64
)

func fetchOrder(u UserID, o OrderID) string { return fmt.Sprintf("用户 %d 的订单 %d", u, o) }

func demoNewtype() {
	fmt.Println("  Wrapper:", Wrapper{"hello", "world"})
	fmt.Println("  ", fetchOrder(UserID(7), OrderID(1001)))
	fmt.Println("  fetchOrder(OrderID(1), UserID(2)) 无法通过编译")
}

// Drawable is the graphics system's core abstraction.
type Drawable interface {
	Shape
	Draw() string
}

type Triangle struct{ Base, Height float64 }

func (t Triangle) Area() float64 { return t.Base * t.Height / 2 }
func (t Triangle) Name() string  { return "三角形" }
func (t Triangle) Draw() string  { return fmt.Sprintf("△ 底=%g 高=%g", t.Base, t.Height) }

// Canvas draws in insertion order.
type Canvas struct{ items []Drawable }

func (c *Canvas) Add(d Drawable) { c.items = append(c.items, d) }

func (c *Canvas) Render() []string {
	out := make([]string, 0, len(c.items))
	for _, d := range c.items {
		out = append(out, fmt.Sprintf("%s (面积 %.2f)", d.Draw(), d.Area()))
	}
	return out
}

type drawCircle struct{ Circle }

func (d drawCircle) Draw() string { return fmt.Sprintf("○ 半径=%g", d.R) }

type drawRect struct{ Rect }

func (d drawRect) Draw() string { return fmt.Sprintf("▭ %gx%g", d.W, d.H) }

func demoGraphics() {
	var c Canvas
	c.Add(drawCircle{Circle{2}})
	c.Add(drawRect{Rect{3, 4}})
	c.Add(Triangle{6, 2})
	for _, line := range c.Render() {
		fmt.Println("  ", line)
	}
}
