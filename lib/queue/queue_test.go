package queue

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benz9527/xcontainers/lib/infra"
)

func TestQueue(t *testing.T) {
	q := NewQueue[int](1, 2)
	q.Push(3)
	q.EmplaceBack(4, 5)
	require.Equal(t, int64(5), q.Size())

	front, err := q.Front()
	require.NoError(t, err)
	require.Equal(t, 1, front)
	back, err := q.Back()
	require.NoError(t, err)
	require.Equal(t, 5, back)

	popped := make([]int, 0, 5)
	for !q.Empty() {
		v, err := q.Pop()
		require.NoError(t, err)
		popped = append(popped, v)
	}
	require.Equal(t, []int{1, 2, 3, 4, 5}, popped)

	_, err = q.Pop()
	require.ErrorIs(t, err, infra.ErrInvalidOperation)
	_, err = q.Front()
	require.ErrorIs(t, err, infra.ErrOutOfRange)
	_, err = q.Back()
	require.ErrorIs(t, err, infra.ErrOutOfRange)
}

func TestQueue_Swap(t *testing.T) {
	a := NewQueue[int](1)
	b := NewQueue[int](2, 3)
	a.Swap(b)
	require.Equal(t, int64(2), a.Size())
	front, err := a.Front()
	require.NoError(t, err)
	require.Equal(t, 2, front)
	front, err = b.Front()
	require.NoError(t, err)
	require.Equal(t, 1, front)

	a.Push(4)
	back, err := a.Back()
	require.NoError(t, err)
	require.Equal(t, 4, back)
	require.Equal(t, int64(1), b.Size())
}
