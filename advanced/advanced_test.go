package advanced

import (
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestFieldOrderChangesSize(t *testing.T) {
	assert.Greater(t, unsafe.Sizeof(padded{}), unsafe.Sizeof(packed{}))
	assert.Equal(t, uintptr(0), unsafe.Offsetof(packed{}.b))
}

func TestFloat32Bits(t *testing.T) {
	for _, f := range []float32{0, 1, -2.5, math.MaxFloat32} {
		assert.Equal(t, math.Float32bits(f), Float32Bits(f))
	}
}

func TestSettingsInitialisedOnce(t *testing.T) {
	for range 3 {
		assert.Equal(t, "production", settings()["env"])
	}
	assert.Equal(t, int32(1), loads.Load())
}

func TestTypeFeatures(t *testing.T) {
	assert.InDelta(t, 0.621371, Kilometers(1).Miles(), 1e-9)

	mul := Op(func(a, b int) int { return a * b })
	assert.Equal(t, 12, mul.Twice(3, 2))

	assert.Equal(t, 1, pick(9))
	assert.Equal(t, -1, pick(-9))
	assert.Equal(t, 0, pick(0))
}

func TestConstants(t *testing.T) {
	assert.Equal(t, 4, small)
}
