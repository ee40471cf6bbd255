package list

import (
	"math"
	"unsafe"

	"github.com/samber/lo"

	"github.com/benz9527/xcontainers/lib/infra"
)

var _ Vector[int] = (*vector[int])(nil) // Type check assertion

type vector[T any] struct {
	// len(buf) is the size and cap(buf) is the capacity.
	buf []T
}

func NewVector[T any](items ...T) Vector[T] {
	v := &vector[T]{}
	if len(items) > 0 {
		v.buf = make([]T, len(items))
		copy(v.buf, items)
	}
	return v
}

// NewVectorSize creates n zero values.
func NewVectorSize[T any](n int64) (Vector[T], error) {
	v := &vector[T]{}
	if n < 0 || n > v.MaxSize() {
		return nil, infra.LengthError("vector size %d", n)
	}
	v.buf = make([]T, n)
	return v, nil
}

func (v *vector[T]) checkPos(pos int64, op string) error {
	if pos < 0 || pos >= int64(len(v.buf)) {
		return infra.OutOfRange("vector %s pos %d, size %d", op, pos, len(v.buf))
	}
	return nil
}

func (v *vector[T]) At(pos int64) (T, error) {
	if err := v.checkPos(pos, "at"); err != nil {
		var zero T
		return zero, err
	}
	return v.buf[pos], nil
}

func (v *vector[T]) Set(pos int64, val T) error {
	if err := v.checkPos(pos, "set"); err != nil {
		return err
	}
	v.buf[pos] = val
	return nil
}

func (v *vector[T]) Front() (T, error) {
	if len(v.buf) == 0 {
		var zero T
		return zero, infra.OutOfRange("vector front on empty vector")
	}
	return v.buf[0], nil
}

func (v *vector[T]) Back() (T, error) {
	if len(v.buf) == 0 {
		var zero T
		return zero, infra.OutOfRange("vector back on empty vector")
	}
	return v.buf[len(v.buf)-1], nil
}

func (v *vector[T]) Data() []T {
	return v.buf
}

func (v *vector[T]) Empty() bool {
	return len(v.buf) == 0
}

func (v *vector[T]) Size() int64 {
	return int64(len(v.buf))
}

func (v *vector[T]) MaxSize() int64 {
	var zero T
	size := int64(unsafe.Sizeof(zero))
	if size == 0 {
		size = 1
	}
	return math.MaxInt64 / size / 2
}

func (v *vector[T]) realloc(newCap int64) {
	buf := make([]T, len(v.buf), newCap)
	copy(buf, v.buf)
	v.buf = buf
}

func (v *vector[T]) Reserve(newCap int64) error {
	if newCap <= int64(cap(v.buf)) {
		return nil
	}
	if newCap > v.MaxSize() {
		return infra.LengthError("vector reserve %d, max size %d", newCap, v.MaxSize())
	}
	v.realloc(newCap)
	return nil
}

func (v *vector[T]) Capacity() int64 {
	return int64(cap(v.buf))
}

func (v *vector[T]) ShrinkToFit() {
	if len(v.buf) == cap(v.buf) {
		return
	}
	v.realloc(int64(len(v.buf)))
}

// Clear keeps the capacity.
func (v *vector[T]) Clear() {
	clear(v.buf)
	v.buf = v.buf[:0]
}

func (v *vector[T]) grow() {
	if len(v.buf) < cap(v.buf) {
		return
	}
	newCap := int64(len(v.buf)) * 2
	if newCap == 0 {
		newCap = 1
	}
	v.realloc(newCap)
}

func (v *vector[T]) Insert(pos int64, val T) error {
	if pos < 0 || pos > int64(len(v.buf)) {
		return infra.OutOfRange("vector insert pos %d, size %d", pos, len(v.buf))
	}
	v.grow()
	v.buf = v.buf[:len(v.buf)+1]
	copy(v.buf[pos+1:], v.buf[pos:])
	v.buf[pos] = val
	return nil
}

func (v *vector[T]) Erase(pos int64) error {
	if err := v.checkPos(pos, "erase"); err != nil {
		return err
	}
	copy(v.buf[pos:], v.buf[pos+1:])
	var zero T
	v.buf[len(v.buf)-1] = zero
	v.buf = v.buf[:len(v.buf)-1]
	return nil
}

func (v *vector[T]) PushBack(val T) {
	v.grow()
	v.buf = append(v.buf, val)
}

func (v *vector[T]) PopBack() error {
	if len(v.buf) == 0 {
		return infra.InvalidOperation("vector pop back on empty vector")
	}
	var zero T
	v.buf[len(v.buf)-1] = zero
	v.buf = v.buf[:len(v.buf)-1]
	return nil
}

func (v *vector[T]) Swap(other Vector[T]) {
	o, ok := other.(*vector[T])
	if !ok || o == nil || o == v {
		return
	}
	v.buf, o.buf = o.buf, v.buf
}

func (v *vector[T]) Emplace(pos int64, items ...T) error {
	if pos < 0 || pos > int64(len(v.buf)) {
		return infra.OutOfRange("vector emplace pos %d, size %d", pos, len(v.buf))
	}
	if err := v.Reserve(int64(len(v.buf) + len(items))); err != nil {
		return err
	}
	lo.ForEach(items, func(item T, i int) {
		_ = v.Insert(pos+int64(i), item)
	})
	return nil
}

func (v *vector[T]) EmplaceBack(items ...T) {
	for _, item := range items {
		v.PushBack(item)
	}
}

func (v *vector[T]) Clone() Vector[T] {
	dup := &vector[T]{
		buf: make([]T, len(v.buf), cap(v.buf)),
	}
	copy(dup.buf, v.buf)
	return dup
}

func (v *vector[T]) Foreach(fn func(idx int64, val T) bool) {
	for i, val := range v.buf {
		if !fn(int64(i), val) {
			return
		}
	}
}
