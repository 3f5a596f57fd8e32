// Package matching covers the forms of pattern matching available in Go:
// expression and type switches, destructuring by multiple assignment,
// guards, and regular expression captures.
package matching

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Run prints every lesson of the tutorial.
func Run() {
	fmt.Println("模式匹配演示")
	fmt.Println("------------")

	section("switch 表达式：多值 case 与范围")
	demoSwitch()

	section("解构：多重赋值与忽略")
	demoDestructuring()

	section("守卫：switch true 与条件组合")
	demoGuards()

	section("类型分支与绑定")
	demoTypeSwitch()

	section("正则捕获组")
	demoRegexp()

	section("示例：表达式求值器")
	demoEvaluator()

	fmt.Println("\n模式匹配演示完成！")
}

func section(title string) {
	fmt.Printf("\n━━━ %s ━━━\n", title)
}

func classify(n int) string {
	switch n {
	case 0:
		return "零"
	case 1, 3, 5, 7, 9:
		return "个位奇数"
	case 2, 4, 6, 8:
		return "个位偶数"
	}
	switch {
	case n < 0:
		return "负数"
	case n < 100:
		return "两位数"
	default:
		return "大数"
	}
}

func demoSwitch() {
	for _, n := range []int{0, 3, 8, 42, -5, 1000} {
		fmt.Printf("  %d → %s\n", n, classify(n))
	}

	// fallthrough continues into the next case body unconditionally.
	var steps []string
	switch level := 2; level {
	case 2:
		steps = append(steps, "二级")
		fallthrough
	case 1:
		steps = append(steps, "一级")
	}
	fmt.Println("  fallthrough 执行顺序:", strings.Join(steps, " → "))
}

type point struct{ X, Y int }

func (p point) coords() (int, int) { return p.X, p.Y }

// locate matches on the shape of a point after destructuring it.
func locate(p point) string {
	switch x, y := p.coords(); {
	case x == 0 && y == 0:
		return "原点"
	case y == 0:
		return fmt.Sprintf("在 x 轴上, x=%d", x)
	case x == 0:
		return fmt.Sprintf("在 y 轴上, y=%d", y)
	default:
		return fmt.Sprintf("在 (%d, %d)", x, y)
	}
}

func demoDestructuring() {
	for _, p := range []point{{0, 0}, {3, 0}, {0, -2}, {1, 1}} {
		fmt.Println("  ", locate(p))
	}

	// Swap without a temporary.
	a, b := 1, 2
	a, b = b, a
	fmt.Println("  交换后 a, b =", a, b)

	// Ignore parts with the blank identifier.
	triple := [3]string{"first", "middle", "last"}
	first, _, last := triple[0], triple[1], triple[2]
	fmt.Println("  忽略中间值:", first, last)

	// Head and rest of a slice.
	nums := []int{1, 2, 3, 4}
	head, rest := nums[0], nums[1:]
	fmt.Println("  head =", head, "rest =", rest)
}

func bucket(age int, member bool) string {
	switch {
	case age < 0:
		return "无效年龄"
	case age < 18 && member:
		return "青少年会员"
	case age < 18:
		return "青少年"
	case age >= 65:
		return "长者"
	case member:
		return "成人会员"
	default:
		return "成人"
	}
}

func demoGuards() {
	cases := []struct {
		age    int
		member bool
	}{{-1, false}, {12, true}, {15, false}, {70, true}, {30, true}, {30, false}}
	for _, c := range cases {
		fmt.Printf("  age=%d member=%t → %s\n", c.age, c.member, bucket(c.age, c.member))
	}
}

func kind(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case int, int64:
		return fmt.Sprintf("整数 %v", x)
	case string:
		if x == "" {
			return "空字符串"
		}
		return fmt.Sprintf("字符串 %q (长度 %d)", x, len(x))
	case []int:
		return fmt.Sprintf("整数切片, 长度 %d", len(x))
	case error:
		return "错误: " + x.Error()
	case fmt.Stringer:
		return "Stringer: " + x.String()
	default:
		return fmt.Sprintf("其他类型 %T", x)
	}
}

type celsius float64

func (c celsius) String() string { return strconv.FormatFloat(float64(c), 'f', 1, 64) + "°C" }

func demoTypeSwitch() {
	values := []any{nil, 42, int64(7), "", "gopher", []int{1, 2}, errors.New("磁盘已满"), celsius(36.6), 3.14}
	for _, v := range values {
		fmt.Println("  ", kind(v))
	}
}

var logLine = regexp.MustCompile(`^(?P<level>[A-Z]+) \[(?P<module>[a-z]+)\] (?P<msg>.+)$`)

// parseLog binds the named capture groups of a log line.
func parseLog(line string) (level, module, msg string, ok bool) {
	m := logLine.FindStringSubmatch(line)
	if m == nil {
		return "", "", "", false
	}
	return m[logLine.SubexpIndex("level")], m[logLine.SubexpIndex("module")], m[logLine.SubexpIndex("msg")], true
}

func demoRegexp() {
	for _, line := range []string{
		"ERROR [db] connection refused",
		"INFO [http] listening on :8080",
		"not a log line",
	} {
		if level, module, msg, ok := parseLog(line); ok {
			fmt.Printf("  level=%s module=%s msg=%q\n", level, module, msg)
		} else {
			fmt.Printf("  无法匹配: %q\n", line)
		}
	}
}

// Expr is a tiny arithmetic AST.
type Expr interface{ isExpr() }

type (
	Num struct{ V float64 }
	Bin struct {
		Op   byte
		L, R Expr
	}
	Neg struct{ E Expr }
)

func (Num) isExpr() {}
func (Bin) isExpr() {}
func (Neg) isExpr() {}

var ErrDivByZero = errors.New("division by zero")

// Eval walks the tree, matching on node type and operator.
func Eval(e Expr) (float64, error) {
	switch n := e.(type) {
	case Num:
		return n.V, nil
	case Neg:
		v, err := Eval(n.E)
		return -v, err
	case Bin:
		l, err := Eval(n.L)
		if err != nil {
			return 0, err
		}
		r, err := Eval(n.R)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case '+':
			return l + r, nil
		case '-':
			return l - r, nil
		case '*':
			return l * r, nil
		case '/':
			if r == 0 {
				return 0, ErrDivByZero
			}
			return l / r, nil
		}
		return 0, fmt.Errorf("unknown operator %q", n.Op)
	default:
		return 0, fmt.Errorf("unknown node %T", e)
	}
}

func demoEvaluator() {
	exprs := map[string]Expr{
		"(1 + 2) * 4": Bin{'*', Bin{'+', Num{1}, Num{2}}, Num{4}},
		"-(10 / 4)":   Neg{Bin{'/', Num{10}, Num{4}}},
		"1 / (2 - 2)": Bin{'/', Num{1}, Bin{'-', Num{2}, Num{2}}},
		"2 % 3":       Bin{'%', Num{2}, Num{3}},
	}
	for _, src := range []string{"(1 + 2) * 4", "-(10 / 4)", "1 / (2 - 2)", "2 % 3"} {
		v, err := Eval(exprs[src])
		if err != nil {
			fmt.Printf("  %s → 错误: %v\n", src, err)
			continue
		}
		fmt.Printf("  %s = %g\n", src, v)
	}
}
