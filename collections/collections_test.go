package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordCount(t *testing.T) {
	got := wordCount("Go go, GO! rust.")
	assert.Equal(t, map[string]int{"go": 3, "rust": 1}, got)
}

func TestPopAllIsAscending(t *testing.T) {
	in := []int{5, 2, 8, 1}
	assert.Equal(t, []int{1, 2, 5, 8}, popAll(in))
	assert.Equal(t, []int{5, 2, 8, 1}, in, "input must not be reordered")
}

func TestSortChinesePinyin(t *testing.T) {
	got := sortChinese([]string{"张三", "李四", "王五", "阿强", "赵六"})
	assert.Equal(t, []string{"阿强", "李四", "王五", "张三", "赵六"}, got)
}

func TestClassAverages(t *testing.T) {
	avg := classAverages([]student{
		{"a", "x", 90}, {"b", "x", 80}, {"c", "y", 70},
	})
	assert.InDelta(t, 85.0, avg["x"], 1e-9)
	assert.InDelta(t, 70.0, avg["y"], 1e-9)
}
