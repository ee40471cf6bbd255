package list

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benz9527/xcontainers/lib/infra"
)

func TestArray(t *testing.T) {
	arr, err := NewArray[int](3, 1, 2, 3)
	require.NoError(t, err)
	require.Equal(t, int64(3), arr.Size())
	require.Equal(t, int64(3), arr.MaxSize())
	require.False(t, arr.Empty())

	v, err := arr.At(2)
	require.NoError(t, err)
	require.Equal(t, 3, v)
	_, err = arr.At(3)
	require.ErrorIs(t, err, infra.ErrOutOfRange)
	require.ErrorIs(t, arr.Set(-1, 0), infra.ErrOutOfRange)

	require.NoError(t, arr.Set(0, 10))
	front, err := arr.Front()
	require.NoError(t, err)
	require.Equal(t, 10, front)
	back, err := arr.Back()
	require.NoError(t, err)
	require.Equal(t, 3, back)

	arr.Fill(7)
	require.Equal(t, []int{7, 7, 7}, arr.Data())
}

func TestArray_New(t *testing.T) {
	_, err := NewArray[int](2, 1, 2, 3)
	require.ErrorIs(t, err, infra.ErrLengthError)
	_, err = NewArray[int](-1)
	require.ErrorIs(t, err, infra.ErrLengthError)

	arr, err := NewArray[string](2)
	require.NoError(t, err)
	require.Equal(t, []string{"", ""}, arr.Data())

	empty, err := NewArray[int](0)
	require.NoError(t, err)
	require.True(t, empty.Empty())
	_, err = empty.Front()
	require.ErrorIs(t, err, infra.ErrOutOfRange)
	_, err = empty.Back()
	require.ErrorIs(t, err, infra.ErrOutOfRange)
}

func TestArray_Swap(t *testing.T) {
	a, err := NewArray[int](2, 1, 2)
	require.NoError(t, err)
	b, err := NewArray[int](2, 3, 4)
	require.NoError(t, err)
	c, err := NewArray[int](1, 5)
	require.NoError(t, err)

	require.NoError(t, a.Swap(b))
	require.Equal(t, []int{3, 4}, a.Data())
	require.Equal(t, []int{1, 2}, b.Data())
	require.ErrorIs(t, a.Swap(c), infra.ErrLengthError)
	require.ErrorIs(t, a.Swap(nil), infra.ErrLengthError)
}
