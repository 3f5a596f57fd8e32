package generics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ── Functions ────────────────────────────────────────────────────────────────

func TestMapFilterReduce(t *testing.T) {
	nums := []int{1, 2, 3, 4}
	assert.Equal(t, []int{2, 4, 6, 8}, Map(nums, func(n int) int { return n * 2 }))
	assert.Equal(t, []int{1, 3}, Filter(nums, func(n int) bool { return n%2 == 1 }))
	assert.Equal(t, "1234", Reduce(nums, "", func(acc string, n int) string {
		return acc + string(rune('0'+n))
	}))
	assert.Nil(t, Filter(nums, func(int) bool { return false }))
}

func TestLargest(t *testing.T) {
	v, ok := Largest([]float64{1.5, -2, 9.25})
	assert.True(t, ok)
	assert.Equal(t, 9.25, v)

	_, ok = Largest[string](nil)
	assert.False(t, ok)
}

func TestSumNamedType(t *testing.T) {
	assert.Equal(t, Meters(4), Sum([]Meters{1.5, 2.5}))
	assert.Equal(t, uint8(6), Sum([]uint8{1, 2, 3}))
}

// ── Data structures ──────────────────────────────────────────────────────────

func TestStack(t *testing.T) {
	var s Stack[int]
	_, ok := s.Pop()
	assert.False(t, ok)

	s.Push(1)
	s.Push(2)
	v, ok := s.Pop()
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, s.Len())

	strs := MapStack(&s, func(n int) string { return "n" })
	top, _ := strs.Pop()
	assert.Equal(t, "n", top)
}

func TestSwapAndResult(t *testing.T) {
	assert.Equal(t, Pair[int, string]{1, "a"}, Swap(Pair[string, int]{"a", 1}))
	assert.Equal(t, "(a: 1)", Pair[string, int]{"a", 1}.String())

	assert.Equal(t, 5, Try(5, nil).OrElse(0))
	assert.Equal(t, 0, Try(5, errParse).OrElse(0))
	assert.Equal(t, -1, IndexOf([]string{"x"}, "y"))
}
