// Package ffi demonstrates calling foreign code: cgo for C compiled into the
// binary, purego for C libraries opened at run time, and the unsafe
// conversions needed to move strings and buffers across the boundary.
package ffi

import (
	"bytes"
	"errors"
	"fmt"
	"unsafe"
)

// Run prints every lesson of the tutorial.
func Run() {
	fmt.Println("FFI 演示")
	fmt.Println("--------")

	section("cgo：调用编译进程序的 C 函数")
	demoCgo()

	section("purego：运行时 dlopen C 库")
	demoDynamic()

	section("C 字符串：以 NUL 结尾的字节")
	demoCStrings()

	section("内存布局：与 C 结构体对齐")
	demoLayout()

	section("从 C 调用 Go：//export 与 c-shared")
	demoExport()

	fmt.Println("\nFFI 演示完成！")
}

func section(title string) {
	fmt.Printf("\n━━━ %s ━━━\n", title)
}

func demoCgo() {
	if cgoEnabled {
		fmt.Println("  已启用 cgo，以下结果来自 C 代码")
	} else {
		fmt.Println("  未启用 cgo (CGO_ENABLED=0)，以下结果来自 Go 后备实现")
	}
	fmt.Println("  add(2, 40) =", cAdd(2, 40))
	fmt.Println("  strlen(\"你好, C\") =", cStrlen("你好, C"), "字节")
}

func demoDynamic() {
	libc, err := OpenLibc()
	if err != nil {
		fmt.Println("  无法加载 C 库:", err)
		return
	}
	defer libc.Close()
	fmt.Println("  strlen(\"purego\") =", libc.Strlen("purego"))
	fmt.Println("  abs(-17) =", libc.Abs(-17))
}

// ErrNotTerminated reports a buffer without a NUL byte.
var ErrNotTerminated = errors.New("missing NUL terminator")

// CString returns s as a NUL-terminated byte slice. Interior NULs are
// rejected since C would silently truncate at them.
func CString(s string) ([]byte, error) {
	if i := bytes.IndexByte([]byte(s), 0); i >= 0 {
		return nil, fmt.Errorf("interior NUL at byte %d", i)
	}
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b, nil
}

// GoString reads a C string out of buf, stopping at the first NUL.
func GoString(buf []byte) (string, error) {
	i := bytes.IndexByte(buf, 0)
	if i < 0 {
		return "", ErrNotTerminated
	}
	return string(buf[:i]), nil
}

func demoCStrings() {
	b, _ := CString("hello")
	fmt.Printf("  CString(\"hello\") = % x\n", b)
	s, _ := GoString([]byte{'h', 'i', 0, 'x', 'y'})
	fmt.Printf("  GoString 遇到 NUL 停止: %q\n", s)
	if _, err := CString("a\x00b"); err != nil {
		fmt.Println("  内部含 NUL 会被拒绝:", err)
	}
	if _, err := GoString([]byte("abc")); err != nil {
		fmt.Println("  缺少终止符:", err)
	}

	raw := []byte("零拷贝视图")
	view := unsafe.String(unsafe.SliceData(raw), len(raw))
	fmt.Println("  unsafe.String 零拷贝转换:", view)
}

// header mirrors
//
//	struct header { uint32_t magic; uint16_t version; uint16_t flags; uint64_t size; };
type header struct {
	Magic   uint32
	Version uint16
	Flags   uint16
	Size    uint64
}

// decodeHeader reinterprets a native-endian byte buffer as a header, the
// way a C caller would hand one over.
func decodeHeader(buf []byte) (header, error) {
	if len(buf) < int(unsafe.Sizeof(header{})) {
		return header{}, fmt.Errorf("need %d bytes, got %d", unsafe.Sizeof(header{}), len(buf))
	}
	var h header
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&h)), unsafe.Sizeof(h)), buf)
	return h, nil
}

func demoLayout() {
	fmt.Printf("  sizeof(header) = %d, offsetof(size) = %d\n",
		unsafe.Sizeof(header{}), unsafe.Offsetof(header{}.Size))
	h := header{Magic: 0xCAFEBABE, Version: 2, Size: 4096}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(&h)), unsafe.Sizeof(h))
	back, err := decodeHeader(buf)
	if err != nil {
		fmt.Println("  解码失败:", err)
		return
	}
	fmt.Printf("  往返: magic=0x%X version=%d size=%d\n", back.Magic, back.Version, back.Size)
}

func demoExport() {
	fmt.Println("  在 Go 函数上方写 //export Add，并 import \"C\"")
	fmt.Println("  go build -buildmode=c-shared -o libadd.so 生成动态库与头文件")
	fmt.Println("  传给 C 的 Go 指针不能指向包含 Go 指针的内存，且 C 不得长期持有")
}
