package smartpointers

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	l := Cons(1, Cons(2, Cons(3, nil)))
	assert.Equal(t, "(1 2 3)", l.String())
	assert.Equal(t, 6, l.Sum())
}

func TestBoxSharesPointer(t *testing.T) {
	b := NewBox(1)
	c := b
	c.Set(2)
	assert.Equal(t, 2, b.Get())
}

func TestDeferOrder(t *testing.T) {
	assert.Equal(t, []string{"use a,b", "drop b", "drop a"}, scoped())
}

func TestRcReleasesOnLastDrop(t *testing.T) {
	var released []string
	a := NewRc("x", func(v string) { released = append(released, v) })
	b := a.Clone()
	assert.Equal(t, 2, b.Count())

	a.Drop()
	assert.Empty(t, released)
	b.Drop()
	assert.Equal(t, []string{"x"}, released)
}

func TestRefCell(t *testing.T) {
	cell := NewRefCell(1)

	p, release, err := cell.BorrowMut()
	require.NoError(t, err)
	*p = 2
	_, _, err = cell.Borrow()
	assert.ErrorIs(t, err, ErrBorrowed)
	_, _, err = cell.BorrowMut()
	assert.ErrorIs(t, err, ErrBorrowed)
	release()

	v, done, err := cell.Borrow()
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	_, _, err = cell.BorrowMut()
	assert.ErrorIs(t, err, ErrBorrowed)
	done()

	_, release, err = cell.BorrowMut()
	require.NoError(t, err)
	release()
}

func TestWeakParentLinks(t *testing.T) {
	root := &Node{Name: "root"}
	child := &Node{Name: "child"}
	grandchild := &Node{Name: "leaf"}
	root.Add(child)
	child.Add(grandchild)

	assert.Equal(t, "root/child/leaf", grandchild.Path())
	assert.Same(t, root, child.Parent())
	assert.Nil(t, root.Parent())
	runtime.KeepAlive(root)
}

func TestAtomicPointerUpdates(t *testing.T) {
	var s store
	s.Publish(&settings{Version: 1})
	old := s.Load()
	s.Update(func(c settings) settings { c.Mode = "fast"; return c })

	assert.Equal(t, "", old.Mode)
	assert.Equal(t, "fast", s.Load().Mode)
}
