//go:build cgo

package ffi

/*
#include <stdlib.h>
#include <string.h>

static int add(int a, int b) { return a + b; }
*/
import "C"

import "unsafe"

const cgoEnabled = true

func cAdd(a, b int) int {
	return int(C.add(C.int(a), C.int(b)))
}

func cStrlen(s string) int {
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))
	return int(C.strlen(cs))
}
