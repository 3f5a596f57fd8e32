//go:build !((linux || darwin) && !android)

package ffi

import (
	"errors"
	"runtime"
)

// Libc holds C library functions bound at run time.
type Libc struct {
	Strlen func(s string) int
	Abs    func(n int32) int32
}

// OpenLibc always fails on platforms without a supported dynamic loader.
func OpenLibc() (*Libc, error) {
	return nil, errors.New("dynamic loading is not supported on " + runtime.GOOS)
}

func (l *Libc) Close() error { return nil }
