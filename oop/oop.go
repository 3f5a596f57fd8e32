// Package oop shows object-oriented design in Go: encapsulation through
// unexported fields, composition instead of inheritance, interface
// polymorphism and the state, strategy and builder patterns.
package oop

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Run prints every lesson of the tutorial.
func Run() {
	fmt.Println("面向对象特性演示")
	fmt.Println("----------------")

	section("封装：未导出字段与方法")
	demoEncapsulation()

	section("组合代替继承")
	demoComposition()

	section("多态：接口与动态分发")
	demoPolymorphism()

	section("状态模式：博客文章工作流")
	demoState()

	section("策略模式：可替换的算法")
	demoStrategy()

	section("构建者模式与函数式选项")
	demoBuilder()

	fmt.Println("\n面向对象特性演示完成！")
}

func section(title string) {
	fmt.Printf("\n━━━ %s ━━━\n", title)
}

// AveragedCollection keeps its average in sync with its items; callers
// cannot touch either directly.
type AveragedCollection struct {
	items   []int
	average float64
}

func (c *AveragedCollection) Add(v int) {
	c.items = append(c.items, v)
	c.update()
}

// Remove pops the last item.
func (c *AveragedCollection) Remove() (int, bool) {
	if len(c.items) == 0 {
		return 0, false
	}
	v := c.items[len(c.items)-1]
	c.items = c.items[:len(c.items)-1]
	c.update()
	return v, true
}

func (c *AveragedCollection) Average() float64 { return c.average }

func (c *AveragedCollection) update() {
	if len(c.items) == 0 {
		c.average = 0
		return
	}
	sum := 0
	for _, v := range c.items {
		sum += v
	}
	c.average = float64(sum) / float64(len(c.items))
}

func demoEncapsulation() {
	var c AveragedCollection
	for _, v := range []int{10, 20, 60} {
		c.Add(v)
	}
	fmt.Printf("  平均值: %.2f\n", c.Average())
	c.Remove()
	fmt.Printf("  移除最后一项后: %.2f\n", c.Average())
}

// Entity gives anything that embeds it a stable ID derived from its name.
type Entity struct {
	ID uuid.UUID
}

var entityNS = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://example.com/entities"))

func newEntity(kind, name string) Entity {
	return Entity{ID: uuid.NewSHA1(entityNS, []byte(kind+"/"+name))}
}

// ShortID is the first block of the ID.
func (e Entity) ShortID() string { return e.ID.String()[:8] }

type Timestamps struct {
	Version int
}

func (t *Timestamps) Touch() { t.Version++ }

// Employee is composed from Entity and Timestamps; both sets of methods are
// promoted.
type Employee struct {
	Entity
	Timestamps
	Name  string
	Title string
}

func NewEmployee(name, title string) *Employee {
	return &Employee{Entity: newEntity("employee", name), Name: name, Title: title}
}

func (e *Employee) Promote(title string) {
	e.Title = title
	e.Touch()
}

func demoComposition() {
	e := NewEmployee("李雷", "工程师")
	e.Promote("高级工程师")
	fmt.Println("  员工:", e.Name, e.Title, "版本", e.Version)
	fmt.Println("  确定性 ID (UUIDv5):", e.ShortID(), "版本号", e.ID.Version())
	again := NewEmployee("李雷", "实习生")
	fmt.Println("  同名得到同一 ID:", again.ID == e.ID)
}

// Shape is implemented by every drawable component.
type Shape interface {
	Area() float64
	Name() string
}

type Circle struct{ R float64 }
type Rect struct{ W, H float64 }
type Triangle struct{ B, H float64 }

func (c Circle) Area() float64   { return 3.14159 * c.R * c.R }
func (c Circle) Name() string    { return "圆" }
func (r Rect) Area() float64     { return r.W * r.H }
func (r Rect) Name() string      { return "矩形" }
func (t Triangle) Area() float64 { return t.B * t.H / 2 }
func (t Triangle) Name() string  { return "三角形" }

// TotalArea sums any mix of shapes.
func TotalArea(shapes ...Shape) float64 {
	total := 0.0
	for _, s := range shapes {
		total += s.Area()
	}
	return total
}

func demoPolymorphism() {
	shapes := []Shape{Circle{1}, Rect{2, 3}, Triangle{4, 5}}
	for _, s := range shapes {
		fmt.Printf("  %s 面积 %.2f\n", s.Name(), s.Area())
	}
	fmt.Printf("  总面积 %.2f\n", TotalArea(shapes...))
	if r, ok := shapes[1].(Rect); ok {
		fmt.Println("  类型断言取回具体类型, 宽 =", r.W)
	}
}

// ErrInvalidTransition is returned when a post action does not apply to its
// current state.
var ErrInvalidTransition = errors.New("invalid transition")

type state interface {
	name() string
	requestReview(*Post) (state, error)
	approve(*Post) (state, error)
	reject(*Post) (state, error)
	content(*Post) string
}

type draft struct{}
type pendingReview struct{}
type published struct{}

func (draft) name() string                       { return "草稿" }
func (draft) requestReview(*Post) (state, error) { return pendingReview{}, nil }
func (draft) approve(*Post) (state, error)       { return nil, ErrInvalidTransition }
func (draft) reject(*Post) (state, error)        { return nil, ErrInvalidTransition }
func (draft) content(*Post) string               { return "" }

func (pendingReview) name() string                       { return "待审核" }
func (pendingReview) requestReview(*Post) (state, error) { return nil, ErrInvalidTransition }
func (pendingReview) content(*Post) string               { return "" }

// approve needs two approvals before publishing.
func (pendingReview) approve(p *Post) (state, error) {
	p.approvals++
	if p.approvals < 2 {
		return pendingReview{}, nil
	}
	return published{}, nil
}

func (pendingReview) reject(p *Post) (state, error) {
	p.approvals = 0
	return draft{}, nil
}

func (published) name() string                       { return "已发布" }
func (published) requestReview(*Post) (state, error) { return nil, ErrInvalidTransition }
func (published) approve(*Post) (state, error)       { return nil, ErrInvalidTransition }
func (published) reject(*Post) (state, error)        { return nil, ErrInvalidTransition }
func (published) content(p *Post) string             { return p.text }

// Post only exposes its text once published.
type Post struct {
	state     state
	text      string
	approvals int
}

func NewPost() *Post { return &Post{state: draft{}} }

// AddText appends to the body; only drafts are editable.
func (p *Post) AddText(s string) error {
	if _, ok := p.state.(draft); !ok {
		return fmt.Errorf("add text in %s: %w", p.state.name(), ErrInvalidTransition)
	}
	p.text += s
	return nil
}

func (p *Post) Content() string { return p.state.content(p) }
func (p *Post) State() string   { return p.state.name() }

func (p *Post) transition(action string, f func(*Post) (state, error)) error {
	next, err := f(p)
	if err != nil {
		return fmt.Errorf("%s in %s: %w", action, p.state.name(), err)
	}
	p.state = next
	return nil
}

func (p *Post) RequestReview() error { return p.transition("request review", p.state.requestReview) }
func (p *Post) Approve() error       { return p.transition("approve", p.state.approve) }
func (p *Post) Reject() error        { return p.transition("reject", p.state.reject) }

func demoState() {
	p := NewPost()
	_ = p.AddText("今天学习了 Go 的接口")
	fmt.Printf("  [%s] 内容: %q\n", p.State(), p.Content())
	_ = p.RequestReview()
	_ = p.Reject()
	fmt.Println("  驳回后回到:", p.State())
	_ = p.RequestReview()
	_ = p.Approve()
	fmt.Println("  一次批准后仍为:", p.State())
	_ = p.Approve()
	fmt.Printf("  [%s] 内容: %q\n", p.State(), p.Content())
	if err := p.AddText("!"); err != nil {
		fmt.Println("  ", err)
	}
}

// Discount is a pricing strategy.
type Discount interface {
	Apply(cents int) int
}

type noDiscount struct{}
type percentOff int
type fixedOff int

// DiscountFunc adapts a plain function.
type DiscountFunc func(int) int

func (noDiscount) Apply(c int) int     { return c }
func (p percentOff) Apply(c int) int   { return c * (100 - int(p)) / 100 }
func (f fixedOff) Apply(c int) int     { return max(c-int(f), 0) }
func (f DiscountFunc) Apply(c int) int { return f(c) }

// Checkout totals items under a swappable strategy.
type Checkout struct {
	Strategy Discount
	items    []int
}

func (c *Checkout) Add(cents int) { c.items = append(c.items, cents) }

func (c *Checkout) Total() int {
	sum := 0
	for _, v := range c.items {
		sum += v
	}
	if c.Strategy == nil {
		return sum
	}
	return c.Strategy.Apply(sum)
}

func demoStrategy() {
	c := &Checkout{}
	c.Add(5000)
	c.Add(3000)
	strategies := []struct {
		label string
		d     Discount
	}{
		{"原价", noDiscount{}},
		{"八折", percentOff(20)},
		{"立减 100 元", fixedOff(10000)},
		{"满 50 减 10", DiscountFunc(func(c int) int {
			if c >= 5000 {
				return c - 1000
			}
			return c
		})},
	}
	for _, s := range strategies {
		c.Strategy = s.d
		fmt.Printf("  %s: %.2f 元\n", s.label, float64(c.Total())/100)
	}
}

// Request is assembled by RequestBuilder.
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    string
}

// RequestBuilder accumulates the first error and reports it from Build.
type RequestBuilder struct {
	req Request
	err error
}

func NewRequest(url string) *RequestBuilder {
	b := &RequestBuilder{req: Request{Method: "GET", URL: url, Headers: map[string]string{}}}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		b.err = fmt.Errorf("url %q: unsupported scheme", url)
	}
	return b
}

func (b *RequestBuilder) Method(m string) *RequestBuilder {
	b.req.Method = strings.ToUpper(m)
	return b
}

func (b *RequestBuilder) Header(k, v string) *RequestBuilder {
	if k == "" && b.err == nil {
		b.err = errors.New("empty header name")
	}
	b.req.Headers[k] = v
	return b
}

func (b *RequestBuilder) Body(s string) *RequestBuilder {
	b.req.Body = s
	return b
}

func (b *RequestBuilder) Build() (Request, error) {
	if b.err != nil {
		return Request{}, b.err
	}
	if b.req.Body != "" && b.req.Method == "GET" {
		return Request{}, errors.New("GET request cannot carry a body")
	}
	return b.req, nil
}

// Server is configured with functional options.
type Server struct {
	Addr    string
	Workers int
	TLS     bool
}

type Option func(*Server)

func WithWorkers(n int) Option { return func(s *Server) { s.Workers = n } }
func WithTLS() Option          { return func(s *Server) { s.TLS = true } }

func NewServer(addr string, opts ...Option) *Server {
	s := &Server{Addr: addr, Workers: 1}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func demoBuilder() {
	req, err := NewRequest("https://api.example.com/users").
		Method("post").
		Header("Content-Type", "application/json").
		Body(`{"name":"韩梅梅"}`).
		Build()
	fmt.Println("  构建结果:", req.Method, req.URL, req.Headers["Content-Type"], err)

	_, err = NewRequest("ftp://x").Build()
	fmt.Println("  错误在 Build 时统一返回:", err)

	s := NewServer(":8443", WithWorkers(8), WithTLS())
	fmt.Printf("  函数式选项: %+v\n", *s)
}
