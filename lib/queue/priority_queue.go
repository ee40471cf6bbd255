// Reference:
// https://github.com/nsqio/nsq/blob/master/internal/pqueue/pqueue.go

package queue

import (
	"container/heap"

	"github.com/benz9527/xcontainers/lib/infra"
	"github.com/benz9527/xcontainers/lib/list"
)

var _ PriorityQueue[int] = (*vectorPQ[int])(nil) // Type check assertion

// heapVector implements heap.Interface over a vector.
type heapVector[T any] struct {
	vec  list.Vector[T]
	less infra.Less[T]
}

func (h *heapVector[T]) Len() int { return int(h.vec.Size()) }
func (h *heapVector[T]) Less(i, j int) bool {
	data := h.vec.Data()
	return h.less(data[i], data[j])
}
func (h *heapVector[T]) Swap(i, j int) {
	data := h.vec.Data()
	data[i], data[j] = data[j], data[i]
}

func (h *heapVector[T]) Push(i interface{}) {
	item, ok := i.(T)
	if !ok {
		return
	}
	h.vec.PushBack(item)
}

func (h *heapVector[T]) Pop() interface{} {
	item, err := h.vec.Back()
	if err != nil {
		return nil
	}
	_ = h.vec.PopBack()
	return item
}

type vectorPQ[T any] struct {
	heap *heapVector[T]
}

// NewPriorityQueue pops the minimum first.
func NewPriorityQueue[T infra.OrderedKey](items ...T) PriorityQueue[T] {
	return NewPriorityQueueFunc[T](infra.OrderedLess[T], items...)
}

// NewPriorityQueueFunc pops first the element that no other element is less
// than. Pass a reversed less for a max-heap.
func NewPriorityQueueFunc[T any](less infra.Less[T], items ...T) PriorityQueue[T] {
	if less == nil {
		panic("[queue] nil less function")
	}
	pq := &vectorPQ[T]{
		heap: &heapVector[T]{
			vec:  list.NewVector[T](items...),
			less: less,
		},
	}
	heap.Init(pq.heap)
	return pq
}

func (pq *vectorPQ[T]) Push(val T) {
	heap.Push(pq.heap, val)
}

func (pq *vectorPQ[T]) Pop() (T, error) {
	if pq.heap.vec.Empty() {
		var zero T
		return zero, infra.InvalidOperation("priority queue pop on empty queue")
	}
	top, _ := heap.Pop(pq.heap).(T)
	return top, nil
}

func (pq *vectorPQ[T]) Top() (T, error) {
	if pq.heap.vec.Empty() {
		var zero T
		return zero, infra.InvalidOperation("priority queue top on empty queue")
	}
	return pq.heap.vec.Front()
}

func (pq *vectorPQ[T]) Size() int64 {
	return pq.heap.vec.Size()
}

func (pq *vectorPQ[T]) Empty() bool {
	return pq.heap.vec.Empty()
}
