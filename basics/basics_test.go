package basics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats(t *testing.T) {
	sum, mean := stats(1, 2, 3, 4)
	assert.Equal(t, 10, sum)
	assert.InDelta(t, 2.5, mean, 1e-9)

	sum, mean = stats()
	assert.Zero(t, sum)
	assert.Zero(t, mean)
}

func TestDivmod(t *testing.T) {
	q, r := divmod(17, 5)
	assert.Equal(t, 3, q)
	assert.Equal(t, 2, r)
}

func TestFirstWord(t *testing.T) {
	w, err := firstWord("  hello world ")
	require.NoError(t, err)
	assert.Equal(t, "hello", w)

	_, err = firstWord(" \t ")
	assert.ErrorIs(t, err, errEmpty)
}

func TestSizeConstants(t *testing.T) {
	assert.Equal(t, 1024, KB)
	assert.Equal(t, 1024*1024, MB)
	assert.Equal(t, 1024*1024*1024, GB)
}
