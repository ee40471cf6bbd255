package list

import (
	"github.com/benz9527/xcontainers/lib/infra"
)

var _ Array[int] = (*array[int])(nil) // Type check assertion

type array[T any] struct {
	data []T
}

// NewArray creates an array of size zero values, or of exactly the given
// items.
func NewArray[T any](size int64, items ...T) (Array[T], error) {
	if size < 0 {
		return nil, infra.LengthError("array size %d", size)
	}
	if len(items) > 0 && int64(len(items)) != size {
		return nil, infra.LengthError("array size %d, items %d", size, len(items))
	}
	arr := &array[T]{
		data: make([]T, size),
	}
	copy(arr.data, items)
	return arr, nil
}

func (arr *array[T]) At(pos int64) (T, error) {
	if pos < 0 || pos >= int64(len(arr.data)) {
		var zero T
		return zero, infra.OutOfRange("array at pos %d, size %d", pos, len(arr.data))
	}
	return arr.data[pos], nil
}

func (arr *array[T]) Set(pos int64, val T) error {
	if pos < 0 || pos >= int64(len(arr.data)) {
		return infra.OutOfRange("array set pos %d, size %d", pos, len(arr.data))
	}
	arr.data[pos] = val
	return nil
}

func (arr *array[T]) Front() (T, error) {
	if len(arr.data) == 0 {
		var zero T
		return zero, infra.OutOfRange("array front on zero size array")
	}
	return arr.data[0], nil
}

func (arr *array[T]) Back() (T, error) {
	if len(arr.data) == 0 {
		var zero T
		return zero, infra.OutOfRange("array back on zero size array")
	}
	return arr.data[len(arr.data)-1], nil
}

func (arr *array[T]) Data() []T {
	return arr.data
}

func (arr *array[T]) Empty() bool {
	return len(arr.data) == 0
}

func (arr *array[T]) Size() int64 {
	return int64(len(arr.data))
}

func (arr *array[T]) MaxSize() int64 {
	return int64(len(arr.data))
}

// Swap exchanges the elements, not the storage.
func (arr *array[T]) Swap(other Array[T]) error {
	if other == nil || other.Size() != arr.Size() {
		return infra.LengthError("array swap size %d with different size", arr.Size())
	}
	dst := other.Data()
	for i := range arr.data {
		arr.data[i], dst[i] = dst[i], arr.data[i]
	}
	return nil
}

func (arr *array[T]) Fill(val T) {
	for i := range arr.data {
		arr.data[i] = val
	}
}
