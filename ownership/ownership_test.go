package ownership

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveRightCopies(t *testing.T) {
	a := point{1, 2}
	b := moveRight(a)
	assert.Equal(t, point{1, 2}, a)
	assert.Equal(t, point{2, 2}, b)
}

func TestUseResourcesReleasesInReverse(t *testing.T) {
	assert.Equal(t, []string{
		"acquire a",
		"acquire b",
		"use a+b",
		"release b",
		"release a",
	}, useResources())
}

func TestNewCounterIsDistinct(t *testing.T) {
	a, b := newCounter(), newCounter()
	*a = 1
	assert.Zero(t, *b)
}
