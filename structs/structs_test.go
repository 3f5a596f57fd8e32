package structs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestNewAccount(t *testing.T) {
	acc, err := NewAccount("bob", 10)
	require.NoError(t, err)
	acc.Deposit(5)
	assert.Equal(t, int64(15), acc.Balance())

	_, err = NewAccount("", 1)
	assert.Error(t, err)
	_, err = NewAccount("eve", -1)
	assert.ErrorContains(t, err, "negative opening balance")
}

func TestRectangleScale(t *testing.T) {
	r := Rectangle{2, 3}
	r.Scale(2)
	assert.Equal(t, Rectangle{4, 6}, r)
	assert.True(t, r.CanHold(Rectangle{3, 5}))
	assert.False(t, r.CanHold(Rectangle{4, 1}))
}

func TestEncodeProductDropsUnexported(t *testing.T) {
	p := Product{ID: 1, Name: "pen", Price: 2.5, cost: 1}
	js, mp, err := encodeProduct(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"pen","price":2.5}`, string(js))

	var back Product
	require.NoError(t, msgpack.Unmarshal(mp, &back))
	assert.Equal(t, Product{ID: 1, Name: "pen", Price: 2.5}, back)
}

func TestPointDistance(t *testing.T) {
	assert.InDelta(t, 5.0, Point[int]{0, 0}.Distance(Point[int]{3, 4}), 1e-9)
	m := Mixup(Point[int]{1, 2}, Point[float64]{3.5, 4.5})
	assert.Equal(t, 1, m.X)
	assert.InDelta(t, 4.5, m.Y, 1e-9)
}
