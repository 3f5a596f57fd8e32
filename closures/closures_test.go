package closures

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoize(t *testing.T) {
	square, calls := memoize(func(x int) int { return x * x })
	assert.Equal(t, 16, square(4))
	assert.Equal(t, 16, square(4))
	assert.Equal(t, 9, square(3))
	assert.Equal(t, 2, *calls)
}

func TestCounterReset(t *testing.T) {
	next, reset := counter()
	next()
	assert.Equal(t, 2, next())
	reset()
	assert.Equal(t, 1, next())
}

func TestChainOrder(t *testing.T) {
	h := chain(func(req string) string { return req }, tag("a"), tag("b"), upper)
	assert.Equal(t, "a(b(X))", h("x"))
}

func TestBusUnsubscribe(t *testing.T) {
	bus := NewBus()
	var got []string
	unsub := bus.Subscribe("t", func(p string) { got = append(got, "1"+p) })
	bus.Subscribe("t", func(p string) { got = append(got, "2"+p) })

	assert.Equal(t, 2, bus.Publish("t", "x"))
	unsub()
	assert.Equal(t, 1, bus.Publish("t", "y"))
	assert.Equal(t, 0, bus.Publish("other", "z"))
	assert.Equal(t, []string{"1x", "2x", "2y"}, got)
}

func TestCompose(t *testing.T) {
	f := compose(adder(1), func(n int) string { return string(rune('a' + n)) })
	assert.Equal(t, "c", f(1))
}
