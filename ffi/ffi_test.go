package ffi

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCBindings(t *testing.T) {
	assert.Equal(t, 42, cAdd(2, 40))
	assert.Equal(t, 9, cStrlen("你好, C"))
	assert.Equal(t, 0, cStrlen(""))
}

func TestOpenLibc(t *testing.T) {
	libc, err := OpenLibc()
	if err != nil {
		t.Skipf("C library unavailable: %v", err)
	}
	defer func() { require.NoError(t, libc.Close()) }()

	assert.Equal(t, 6, libc.Strlen("purego"))
	assert.Equal(t, int32(17), libc.Abs(-17))
}

func TestCStringRoundTrip(t *testing.T) {
	b, err := CString("hello")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello\x00"), b)

	s, err := GoString(b)
	require.NoError(t, err)
	assert.Equal(t, "hello", s)
}

func TestCStringErrors(t *testing.T) {
	_, err := CString("a\x00b")
	assert.ErrorContains(t, err, "interior NUL at byte 1")

	_, err = GoString([]byte("abc"))
	assert.ErrorIs(t, err, ErrNotTerminated)
}

func TestDecodeHeader(t *testing.T) {
	h := header{Magic: 0xCAFEBABE, Version: 2, Flags: 1, Size: 4096}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(&h)), unsafe.Sizeof(h))

	got, err := decodeHeader(buf)
	require.NoError(t, err)
	assert.Equal(t, h, got)
	assert.Equal(t, uintptr(16), unsafe.Sizeof(header{}))

	_, err = decodeHeader(buf[:4])
	assert.ErrorContains(t, err, "need 16 bytes, got 4")
}
