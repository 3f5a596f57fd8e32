package collections

import (
	"strings"
	"testing"
)

// Run:
//
//	go test ./collections -bench=. -benchmem

var sinkCounts map[string]int

func BenchmarkWordCount(b *testing.B) {
	text := strings.Repeat("the quick brown fox jumps over the lazy dog. ", 200)
	b.ResetTimer()
	for range b.N {
		sinkCounts = wordCount(text)
	}
}

func BenchmarkSortChinese(b *testing.B) {
	words := []string{"张三", "李四", "王五", "赵六", "阿强", "钱七", "孙八"}
	b.ReportAllocs()
	for range b.N {
		_ = sortChinese(words)
	}
}
