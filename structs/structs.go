// Package structs walks through struct declaration, methods, constructors,
// embedding, tags and generic structs.
package structs

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/vmihailenco/msgpack/v5"
)

// Run prints every lesson of the tutorial.
func Run() {
	fmt.Println("结构体演示")
	fmt.Println("----------")

	section("定义与字面量")
	demoBasics()

	section("方法：值接收者与指针接收者")
	demoMethods()

	section("构造函数与零值可用")
	demoConstructors()

	section("嵌入：字段与方法提升")
	demoEmbedding()

	section("结构体标签：JSON 与 MessagePack")
	demoTags()

	section("可比较性与匿名结构体")
	demoComparison()

	section("泛型结构体")
	demoGeneric()

	fmt.Println("\n结构体演示完成！")
}

func section(title string) {
	fmt.Printf("\n━━━ %s ━━━\n", title)
}

// User is a plain record type.
type User struct {
	Username string
	Email    string
	Active   bool
	Logins   uint64
}

// Color is the analogue of a tuple struct: positional fields of one type.
type Color [3]uint8

func demoBasics() {
	u := User{Username: "alice", Email: "alice@example.com", Active: true}
	fmt.Printf("  %+v\n", u)

	// Struct update: copy then override.
	u2 := u
	u2.Email = "alice@work.example"
	fmt.Println("  u2.Email =", u2.Email, "u.Email =", u.Email)

	black := Color{0, 0, 0}
	fmt.Println("  Color 类元组:", black, "红色分量:", black[0])

	// A unit-like struct has no fields and takes no memory.
	type marker struct{}
	fmt.Printf("  空结构体: %+v\n", marker{})
}

// Rectangle has value-receiver queries and pointer-receiver mutators.
type Rectangle struct {
	Width, Height float64
}

func (r Rectangle) Area() float64 { return r.Width * r.Height }

func (r Rectangle) CanHold(other Rectangle) bool {
	return r.Width > other.Width && r.Height > other.Height
}

// Scale mutates the receiver, so it needs a pointer.
func (r *Rectangle) Scale(f float64) {
	r.Width *= f
	r.Height *= f
}

// Square is the associated-function analogue: a plain constructor.
func Square(size float64) Rectangle { return Rectangle{size, size} }

func demoMethods() {
	r := Rectangle{30, 50}
	fmt.Printf("  面积 = %.0f\n", r.Area())
	fmt.Println("  能容纳 10x40:", r.CanHold(Rectangle{10, 40}))
	fmt.Println("  能容纳 60x45:", r.CanHold(Rectangle{60, 45}))

	r.Scale(2) // Go takes &r automatically
	fmt.Printf("  Scale(2) 后: %+v\n", r)

	sq := Square(3)
	fmt.Printf("  Square(3): %+v 面积=%.0f\n", sq, sq.Area())
}

// Account validates its input in the constructor.
type Account struct {
	owner   string
	balance int64
}

// NewAccount returns an error when the owner is missing.
func NewAccount(owner string, opening int64) (*Account, error) {
	if owner == "" {
		return nil, fmt.Errorf("new account: owner is required")
	}
	if opening < 0 {
		return nil, fmt.Errorf("new account %s: negative opening balance %d", owner, opening)
	}
	return &Account{owner: owner, balance: opening}, nil
}

func (a *Account) Deposit(n int64) { a.balance += n }
func (a *Account) Balance() int64  { return a.balance }

// Counter is usable in its zero value.
type Counter struct{ n int }

func (c *Counter) Inc() int { c.n++; return c.n }

func demoConstructors() {
	acc, err := NewAccount("bob", 100)
	if err == nil {
		acc.Deposit(50)
		fmt.Println("  bob 余额:", acc.Balance())
	}
	if _, err := NewAccount("", 10); err != nil {
		fmt.Println("  构造失败:", err)
	}

	var c Counter
	c.Inc()
	fmt.Println("  零值 Counter 直接可用，Inc() =", c.Inc())
}

// Animal is embedded into Dog; its fields and methods are promoted.
type Animal struct {
	Name string
}

func (a Animal) Describe() string { return "我是 " + a.Name }

type Dog struct {
	Animal
	Breed string
}

// Describe shadows the promoted method.
func (d Dog) Describe() string {
	return d.Animal.Describe() + "，品种 " + d.Breed
}

func demoEmbedding() {
	d := Dog{Animal: Animal{Name: "旺财"}, Breed: "柴犬"}
	fmt.Println("  提升字段 d.Name =", d.Name)
	fmt.Println("  d.Describe():", d.Describe())
	fmt.Println("  d.Animal.Describe():", d.Animal.Describe())
}

// Product carries both encoding's tags.
type Product struct {
	ID    int      `json:"id" msgpack:"id"`
	Name  string   `json:"name" msgpack:"name"`
	Price float64  `json:"price" msgpack:"price"`
	Tags  []string `json:"tags,omitempty" msgpack:"tags,omitempty"`
	cost  float64  // unexported fields are never encoded
}

func encodeProduct(p Product) (jsonBytes, packed []byte, err error) {
	jsonBytes, err = json.Marshal(p)
	if err != nil {
		return nil, nil, fmt.Errorf("json: %w", err)
	}
	packed, err = msgpack.Marshal(p)
	if err != nil {
		return nil, nil, fmt.Errorf("msgpack: %w", err)
	}
	return jsonBytes, packed, nil
}

func demoTags() {
	p := Product{ID: 7, Name: "键盘", Price: 199.5, cost: 80}
	js, mp, err := encodeProduct(p)
	if err != nil {
		fmt.Println("  编码失败:", err)
		return
	}
	fmt.Println("  JSON:", string(js))
	fmt.Printf("  MessagePack: %d 字节（JSON %d 字节）\n", len(mp), len(js))

	var back Product
	if err := msgpack.Unmarshal(mp, &back); err != nil {
		fmt.Println("  解码失败:", err)
		return
	}
	fmt.Printf("  解码结果: %+v\n", back)
}

func demoComparison() {
	a := Rectangle{1, 2}
	b := Rectangle{1, 2}
	fmt.Println("  所有字段可比较时结构体可用 == :", a == b)

	// Comparable structs work as map keys.
	seen := map[Rectangle]bool{a: true}
	fmt.Println("  作为 map 键:", seen[b])

	anon := struct {
		Lat, Lng float64
	}{31.23, 121.47}
	fmt.Printf("  匿名结构体: %+v\n", anon)
}

// Point is generic over its coordinate type.
type Point[T int | float64] struct {
	X, Y T
}

// Distance converts to float64 to stay generic over both coordinate kinds.
func (p Point[T]) Distance(o Point[T]) float64 {
	dx := float64(p.X - o.X)
	dy := float64(p.Y - o.Y)
	return math.Hypot(dx, dy)
}

// Mixup combines fields from points of different types.
func Mixup[T, U int | float64](a Point[T], b Point[U]) struct {
	X T
	Y U
} {
	return struct {
		X T
		Y U
	}{a.X, b.Y}
}

func demoGeneric() {
	pi := Point[int]{0, 0}
	fmt.Printf("  Point[int] 距离 = %.1f\n", pi.Distance(Point[int]{3, 4}))

	pf := Point[float64]{1.5, 2.5}
	fmt.Printf("  Point[float64] 距离 = %.3f\n", pf.Distance(Point[float64]{0, 0}))

	fmt.Printf("  Mixup: %+v\n", Mixup(pi, pf))
}
