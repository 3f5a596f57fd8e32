package guide

import (
	"github.com/morsuning/rust-code-guide-sub000/advanced"
	"github.com/morsuning/rust-code-guide-sub000/async"
	"github.com/morsuning/rust-code-guide-sub000/basics"
	"github.com/morsuning/rust-code-guide-sub000/closures"
	"github.com/morsuning/rust-code-guide-sub000/collections"
	"github.com/morsuning/rust-code-guide-sub000/concurrency"
	"github.com/morsuning/rust-code-guide-sub000/enums"
	"github.com/morsuning/rust-code-guide-sub000/errorhandling"
	"github.com/morsuning/rust-code-guide-sub000/ffi"
	"github.com/morsuning/rust-code-guide-sub000/generics"
	"github.com/morsuning/rust-code-guide-sub000/iterators"
	"github.com/morsuning/rust-code-guide-sub000/macros"
	"github.com/morsuning/rust-code-guide-sub000/matching"
	"github.com/morsuning/rust-code-guide-sub000/oop"
	"github.com/morsuning/rust-code-guide-sub000/ownership"
	"github.com/morsuning/rust-code-guide-sub000/smartpointers"
	"github.com/morsuning/rust-code-guide-sub000/structs"
	"github.com/morsuning/rust-code-guide-sub000/traits"
)

// registry is the fixed run order. Keep ordinals contiguous.
var registry = [...]Tutorial{
	{Ordinal: 1, Title: "基础语法", Run: basics.Run},
	{Ordinal: 2, Title: "所有权系统", Run: ownership.Run},
	{Ordinal: 3, Title: "结构体", Run: structs.Run},
	{Ordinal: 4, Title: "枚举", Run: enums.Run},
	{Ordinal: 5, Title: "模式匹配", Run: matching.Run},
	{Ordinal: 6, Title: "错误处理", Run: errorhandling.Run},
	{Ordinal: 7, Title: "泛型", Run: generics.Run},
	{Ordinal: 8, Title: "特征", Run: traits.Run},
	{Ordinal: 9, Title: "集合", Run: collections.Run},
	{Ordinal: 10, Title: "闭包", Run: closures.Run},
	{Ordinal: 11, Title: "迭代器", Run: iterators.Run},
	{Ordinal: 12, Title: "并发", Run: concurrency.Run},
	{Ordinal: 13, Title: "宏", Run: macros.Run},
	{Ordinal: 14, Title: "高级特性", Run: advanced.Run},
	{Ordinal: 15, Title: "FFI", Run: ffi.Run},
	{Ordinal: 16, Title: "智能指针", Run: smartpointers.Run},
	{Ordinal: 17, Title: "异步", Run: async.Run},
	{Ordinal: 18, Title: "面向对象特性", Run: oop.Run},
}

// Tutorials returns the registry in run order. The slice is a copy.
func Tutorials() []Tutorial {
	out := make([]Tutorial, len(registry))
	copy(out, registry[:])
	return out
}
