// Package errorhandling covers unrecoverable failures with panic/recover and
// recoverable ones with error values: sentinels, custom types, wrapping,
// joining, and stack-carrying errors from github.com/pkg/errors.
package errorhandling

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Run prints every lesson of the tutorial.
func Run() {
	fmt.Println("错误处理演示")
	fmt.Println("------------")

	section("panic 与 recover：不可恢复错误")
	demoPanic()

	section("error 值与提前返回")
	demoErrorValues()

	section("哨兵错误与 errors.Is")
	demoSentinel()

	section("自定义错误类型与 errors.As")
	demoCustomType()

	section("包装 %w、errors.Join")
	demoWrapping()

	section("github.com/pkg/errors：堆栈与 Cause")
	demoPkgErrors()

	section("示例：配置解析")
	demoConfigParsing()

	fmt.Println("\n错误处理演示完成！")
}

func section(title string) {
	fmt.Printf("\n━━━ %s ━━━\n", title)
}

// safeIndex converts an out-of-range panic into an error at the boundary.
func safeIndex(xs []int, i int) (v int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recovered: %v", r)
		}
	}()
	return xs[i], nil
}

func demoPanic() {
	xs := []int{1, 2, 3}
	if v, err := safeIndex(xs, 1); err == nil {
		fmt.Println("  xs[1] =", v)
	}
	if _, err := safeIndex(xs, 10); err != nil {
		fmt.Println("  越界被 recover 捕获:", err)
	}
	fmt.Println("  规则：库代码返回 error；panic 只用于程序员错误或无法继续的状态")
}

func parseAge(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parse age %q: %w", s, err)
	}
	if n < 0 || n > 150 {
		return 0, fmt.Errorf("parse age %q: out of range", s)
	}
	return n, nil
}

func demoErrorValues() {
	for _, in := range []string{"42", " 7 ", "abc", "200"} {
		age, err := parseAge(in)
		if err != nil {
			fmt.Println("  错误:", err)
			continue
		}
		fmt.Println("  年龄:", age)
	}
}

var (
	ErrNotFound   = errors.New("not found")
	ErrPermission = errors.New("permission denied")
)

func lookup(id int) (string, error) {
	switch id {
	case 1:
		return "alice", nil
	case 2:
		return "", ErrPermission
	default:
		return "", fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
}

func demoSentinel() {
	for _, id := range []int{1, 2, 99} {
		name, err := lookup(id)
		switch {
		case err == nil:
			fmt.Printf("  id=%d → %s\n", id, name)
		case errors.Is(err, ErrNotFound):
			fmt.Printf("  id=%d → 未找到 (%v)\n", id, err)
		case errors.Is(err, ErrPermission):
			fmt.Printf("  id=%d → 无权限\n", id)
		}
	}
}

// ValidationError names the field that failed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

func validateEmail(email string) error {
	if !strings.Contains(email, "@") {
		return &ValidationError{Field: "email", Reason: "missing @"}
	}
	return nil
}

func demoCustomType() {
	err := fmt.Errorf("register: %w", validateEmail("bob.example.com"))

	var ve *ValidationError
	if errors.As(err, &ve) {
		fmt.Printf("  errors.As 取出字段: Field=%s Reason=%s\n", ve.Field, ve.Reason)
	}
	fmt.Println("  完整信息:", err)
}

func demoWrapping() {
	base := ErrNotFound
	l1 := fmt.Errorf("repo: %w", base)
	l2 := fmt.Errorf("service: %w", l1)
	fmt.Println("  链:", l2)
	for e := error(l2); e != nil; e = errors.Unwrap(e) {
		fmt.Println("    unwrap →", e)
	}

	joined := errors.Join(
		&ValidationError{Field: "name", Reason: "empty"},
		&ValidationError{Field: "age", Reason: "negative"},
	)
	fmt.Println("  errors.Join:")
	for _, line := range strings.Split(joined.Error(), "\n") {
		fmt.Println("    ", line)
	}
	var ve *ValidationError
	fmt.Println("  errors.As 找到第一个:", errors.As(joined, &ve), ve.Field)
}

func readConfig(path string) error {
	return pkgerrors.Wrap(pkgerrors.New("file is empty"), "read config "+path)
}

func demoPkgErrors() {
	err := readConfig("app.toml")
	fmt.Println("  Error():", err)
	fmt.Println("  Cause():", pkgerrors.Cause(err))

	// %+v prints the recorded stack; show only the first frame's function.
	trace := fmt.Sprintf("%+v", err)
	for _, line := range strings.Split(trace, "\n") {
		if strings.Contains(line, "errorhandling.readConfig") {
			fmt.Println("  堆栈包含帧:", line[strings.LastIndex(line, "/")+1:])
			break
		}
	}

	// pkg/errors values interoperate with the standard library.
	wrapped := pkgerrors.WithMessage(ErrPermission, "open secrets")
	fmt.Println("  errors.Is 对 pkg/errors 包装同样有效:", errors.Is(wrapped, ErrPermission))
}

// Config is the result of parsing key=value lines.
type Config struct {
	Host    string
	Port    int
	Workers int
}

// ParseConfig collects every problem instead of stopping at the first.
func ParseConfig(src string) (Config, error) {
	cfg := Config{Host: "localhost", Port: 80, Workers: 1}
	var errs []error
	for i, raw := range strings.Split(src, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			errs = append(errs, fmt.Errorf("line %d: expected key=value", i+1))
			continue
		}
		key, val = strings.TrimSpace(key), strings.TrimSpace(val)
		switch key {
		case "host":
			cfg.Host = val
		case "port", "workers":
			n, err := strconv.Atoi(val)
			if err != nil {
				errs = append(errs, fmt.Errorf("line %d: %s: %w", i+1, key, err))
				continue
			}
			if key == "port" {
				cfg.Port = n
			} else {
				cfg.Workers = n
			}
		default:
			errs = append(errs, fmt.Errorf("line %d: unknown key %q", i+1, key))
		}
	}
	return cfg, errors.Join(errs...)
}

func demoConfigParsing() {
	good := "host = example.com\nport = 8080\n# comment\nworkers = 4"
	cfg, err := ParseConfig(good)
	fmt.Printf("  解析成功: %+v err=%v\n", cfg, err)

	bad := "host = x\nport = eighty\nverbose\ncolor = red"
	_, err = ParseConfig(bad)
	fmt.Println("  解析失败，汇总错误:")
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Println("    ", line)
	}
	var numErr *strconv.NumError
	fmt.Println("  其中包含 strconv.NumError:", errors.As(err, &numErr))
}
