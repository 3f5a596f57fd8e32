//go:build !cgo

package ffi

const cgoEnabled = false

func cAdd(a, b int) int { return a + b }

func cStrlen(s string) int { return len(s) }
