package queue

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benz9527/xcontainers/lib/infra"
)

func TestStack(t *testing.T) {
	s := NewStack[int](1, 2)
	require.Equal(t, int64(2), s.Size())
	s.Push(3)
	s.EmplaceFront(4, 5)

	top, err := s.Top()
	require.NoError(t, err)
	require.Equal(t, 5, top)

	popped := make([]int, 0, 5)
	for !s.Empty() {
		v, err := s.Pop()
		require.NoError(t, err)
		popped = append(popped, v)
	}
	require.Equal(t, []int{5, 4, 3, 2, 1}, popped)

	_, err = s.Pop()
	require.ErrorIs(t, err, infra.ErrInvalidOperation)
	_, err = s.Top()
	require.ErrorIs(t, err, infra.ErrInvalidOperation)
}

func TestStack_Swap(t *testing.T) {
	a := NewStack[string]("a")
	b := NewStack[string]("b", "c")
	a.Swap(b)
	require.Equal(t, int64(2), a.Size())
	require.Equal(t, int64(1), b.Size())
	top, err := a.Top()
	require.NoError(t, err)
	require.Equal(t, "c", top)
	top, err = b.Top()
	require.NoError(t, err)
	require.Equal(t, "a", top)
}
