package queue

import (
	"github.com/benz9527/xcontainers/lib/infra"
	"github.com/benz9527/xcontainers/lib/list"
)

var _ Queue[int] = (*listQueue[int])(nil) // Type check assertion

type listQueue[T any] struct {
	container list.LinkedList[T]
}

func NewQueue[T any](items ...T) Queue[T] {
	return &listQueue[T]{
		container: list.NewLinkedList[T](items...),
	}
}

func (q *listQueue[T]) Push(val T) {
	q.container.PushBack(val)
}

func (q *listQueue[T]) Pop() (T, error) {
	if q.container.Len() == 0 {
		var zero T
		return zero, infra.InvalidOperation("queue pop on empty queue")
	}
	return q.container.PopFront()
}

func (q *listQueue[T]) Front() (T, error) {
	e := q.container.Front()
	if e == nil {
		var zero T
		return zero, infra.OutOfRange("queue front on empty queue")
	}
	return e.Value, nil
}

func (q *listQueue[T]) Back() (T, error) {
	e := q.container.Back()
	if e == nil {
		var zero T
		return zero, infra.OutOfRange("queue back on empty queue")
	}
	return e.Value, nil
}

func (q *listQueue[T]) Size() int64 {
	return q.container.Len()
}

func (q *listQueue[T]) Empty() bool {
	return q.container.Len() == 0
}

func (q *listQueue[T]) Swap(other Queue[T]) {
	o, ok := other.(*listQueue[T])
	if !ok || o == nil || o == q {
		return
	}
	q.container.Swap(o.container)
}

func (q *listQueue[T]) EmplaceBack(items ...T) {
	q.container.AppendValue(items...)
}
