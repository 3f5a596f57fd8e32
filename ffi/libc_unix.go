//go:build (linux || darwin) && !android

package ffi

import (
	"fmt"
	"runtime"

	"github.com/ebitengine/purego"
)

// Libc holds C library functions bound at run time.
type Libc struct {
	handle uintptr

	Strlen func(s string) int
	Abs    func(n int32) int32
}

func libcPath() string {
	if runtime.GOOS == "darwin" {
		return "/usr/lib/libSystem.B.dylib"
	}
	return "libc.so.6"
}

// OpenLibc loads the platform C library and binds the functions in Libc.
func OpenLibc() (*Libc, error) {
	path := libcPath()
	h, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("dlopen %s: %w", path, err)
	}
	l := &Libc{handle: h}
	binds := []struct {
		name string
		fn   any
	}{
		{"strlen", &l.Strlen},
		{"abs", &l.Abs},
	}
	for _, b := range binds {
		// RegisterLibFunc panics on a missing symbol; look it up first.
		if _, err := purego.Dlsym(h, b.name); err != nil {
			_ = purego.Dlclose(h)
			return nil, fmt.Errorf("dlsym %s: %w", b.name, err)
		}
		purego.RegisterLibFunc(b.fn, h, b.name)
	}
	return l, nil
}

// Close releases the library handle. The bound functions must not be
// called afterwards.
func (l *Libc) Close() error {
	return purego.Dlclose(l.handle)
}
