// Package macros shows how Go covers the ground other languages give to
// macros: code generation with text/template and go/format behind a
// go:generate directive, reflection driven by struct tags in place of derive,
// and variadic helpers in place of repetition patterns.
package macros

import (
	"bytes"
	"fmt"
	"go/format"
	"reflect"
	"strings"
	"text/template"
)

// Run prints every lesson of the tutorial.
func Run() {
	fmt.Println("宏系统演示")
	fmt.Println("----------")

	section("go:generate：构建前生成代码")
	demoGoGenerate()

	section("text/template 生成代码 + go/format 格式化")
	demoCodegen()

	section("可变参数：重复模式的替代")
	demoVariadic()

	section("反射 + 结构体标签：derive 的替代")
	demoDerive()

	section("示例：生成枚举的 String 方法")
	demoEnumGen()

	fmt.Println("\n宏系统演示完成！")
}

func section(title string) {
	fmt.Printf("\n━━━ %s ━━━\n", title)
}

func demoGoGenerate() {
	fmt.Println("  在源文件中写入指令，运行 go generate ./... 时执行:")
	fmt.Println("    //go:generate stringer -type=Color")
	fmt.Println("  生成的文件以 \"// Code generated ... DO NOT EDIT.\" 开头并提交到仓库")
	fmt.Println("  与宏不同：生成发生在编译之前，生成结果是普通 Go 代码")
}

var getterTmpl = template.Must(template.New("getters").Parse(`package {{.Package}}
{{range .Fields}}
// {{.Method}} returns the {{.Name}} field.
func (x *{{$.Type}}) {{.Method}}() {{.Type}} { return x.{{.Name}} }
{{end}}`))

type field struct {
	Name, Type string
}

func (f field) Method() string { return strings.ToUpper(f.Name[:1]) + f.Name[1:] }

// GenerateGetters renders getter methods for typ and gofmt's the result.
func GenerateGetters(pkg, typ string, fields []field) (string, error) {
	var buf bytes.Buffer
	err := getterTmpl.Execute(&buf, struct {
		Package, Type string
		Fields        []field
	}{pkg, typ, fields})
	if err != nil {
		return "", fmt.Errorf("render getters: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return "", fmt.Errorf("format getters: %w", err)
	}
	return string(src), nil
}

func demoCodegen() {
	src, err := GenerateGetters("model", "user", []field{{"name", "string"}, {"age", "int"}})
	if err != nil {
		fmt.Println("  生成失败:", err)
		return
	}
	for _, line := range strings.Split(strings.TrimSpace(src), "\n") {
		fmt.Println("    " + line)
	}

	if _, err := format.Source([]byte("package x\nfunc {")); err != nil {
		fmt.Println("  go/format 会拒绝语法错误的生成结果")
	}
}

// maxOf plays the role of a max!(a, b, c, ...) macro.
func maxOf(first int, rest ...int) int {
	m := first
	for _, v := range rest {
		if v > m {
			m = v
		}
	}
	return m
}

// hashMap builds a map from alternating key/value arguments, like a
// hashmap!{k => v} macro.
func hashMap(kv ...string) (map[string]string, error) {
	if len(kv)%2 != 0 {
		return nil, fmt.Errorf("hashMap: odd number of arguments (%d)", len(kv))
	}
	m := make(map[string]string, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		m[kv[i]] = kv[i+1]
	}
	return m, nil
}

func demoVariadic() {
	fmt.Println("  maxOf(3, 9, 4) =", maxOf(3, 9, 4))
	fmt.Println("  maxOf(7) =", maxOf(7))
	m, _ := hashMap("lang", "Go", "year", "2009")
	fmt.Println("  hashMap:", m["lang"], m["year"])
	if _, err := hashMap("dangling"); err != nil {
		fmt.Println("  ", err)
	}
}

// Describe renders any struct using `show` tags. A tag of "-" hides a field;
// unexported fields are skipped.
func Describe(v any) string {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return fmt.Sprintf("%v", v)
	}
	rt := rv.Type()
	parts := make([]string, 0, rt.NumField())
	for i := range rt.NumField() {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("show"); ok {
			if tag == "-" {
				continue
			}
			name = tag
		}
		parts = append(parts, fmt.Sprintf("%s=%v", name, rv.Field(i).Interface()))
	}
	return rt.Name() + "{" + strings.Join(parts, ", ") + "}"
}

type Server struct {
	Host     string `show:"主机"`
	Port     int    `show:"端口"`
	Password string `show:"-"`
	TLS      bool
	retries  int
}

func demoDerive() {
	s := Server{Host: "example.com", Port: 443, Password: "secret", TLS: true, retries: 3}
	fmt.Println("  Describe:", Describe(s))
	fmt.Println("  指针同样适用:", Describe(&s))
	fmt.Println("  非结构体:", Describe(42))
}

var stringerTmpl = template.Must(template.New("stringer").Funcs(template.FuncMap{
	"quote": func(s string) string { return fmt.Sprintf("%q", s) },
}).Parse(`// Code generated by enumgen. DO NOT EDIT.

package {{.Package}}

func (v {{.Type}}) String() string {
	switch v {
{{- range .Values}}
	case {{.}}:
		return {{quote .}}
{{- end}}
	}
	return "{{.Type}}(?)"
}
`))

// GenerateStringer renders a String method for an enum type.
func GenerateStringer(pkg, typ string, values []string) (string, error) {
	var buf bytes.Buffer
	if err := stringerTmpl.Execute(&buf, map[string]any{"Package": pkg, "Type": typ, "Values": values}); err != nil {
		return "", fmt.Errorf("render stringer: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return "", fmt.Errorf("format stringer: %w", err)
	}
	return string(src), nil
}

func demoEnumGen() {
	src, err := GenerateStringer("paint", "Color", []string{"Red", "Green", "Blue"})
	if err != nil {
		fmt.Println("  生成失败:", err)
		return
	}
	for _, line := range strings.Split(strings.TrimSpace(src), "\n") {
		fmt.Println("    " + line)
	}
}
