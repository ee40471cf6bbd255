package queue

import (
	"github.com/benz9527/xcontainers/lib/infra"
	"github.com/benz9527/xcontainers/lib/list"
)

var _ Stack[int] = (*vectorStack[int])(nil) // Type check assertion

type vectorStack[T any] struct {
	container list.Vector[T]
}

func NewStack[T any](items ...T) Stack[T] {
	return &vectorStack[T]{
		container: list.NewVector[T](items...),
	}
}

func (s *vectorStack[T]) Push(val T) {
	s.container.PushBack(val)
}

func (s *vectorStack[T]) Pop() (T, error) {
	top, err := s.Top()
	if err != nil {
		return top, err
	}
	return top, s.container.PopBack()
}

func (s *vectorStack[T]) Top() (T, error) {
	if s.container.Empty() {
		var zero T
		return zero, infra.InvalidOperation("stack top on empty stack")
	}
	return s.container.Back()
}

func (s *vectorStack[T]) Size() int64 {
	return s.container.Size()
}

func (s *vectorStack[T]) Empty() bool {
	return s.container.Empty()
}

func (s *vectorStack[T]) Swap(other Stack[T]) {
	o, ok := other.(*vectorStack[T])
	if !ok || o == nil || o == s {
		return
	}
	s.container.Swap(o.container)
}

func (s *vectorStack[T]) EmplaceFront(items ...T) {
	s.container.EmplaceBack(items...)
}
