package list

import (
	"github.com/benz9527/xcontainers/lib/infra"
)

var _ LinkedList[struct{}] = (*doublyLinkedList[struct{}])(nil) // Type check assertion

// The root is a sentinel element, the list is circular through it.
//
//	root.next => front (root if empty)
//	root.prev => back (root if empty)
type doublyLinkedList[T any] struct {
	root *NodeElement[T]
	len  int64
}

func NewLinkedList[T any](values ...T) LinkedList[T] {
	l := new(doublyLinkedList[T]).init()
	l.AppendValue(values...)
	return l
}

func (l *doublyLinkedList[T]) init() *doublyLinkedList[T] {
	l.root = &NodeElement[T]{
		listRef: l,
	}
	l.root.next = l.root
	l.root.prev = l.root
	l.len = 0
	return l
}

func (l *doublyLinkedList[T]) Len() int64 {
	return l.len
}

func (l *doublyLinkedList[T]) contains(targetE *NodeElement[T]) bool {
	return targetE != nil && targetE != l.root && targetE.listRef == l &&
		targetE.prev != nil && targetE.next != nil
}

// insert links newE after at.
func (l *doublyLinkedList[T]) insert(newE, at *NodeElement[T]) *NodeElement[T] {
	newE.listRef = l
	newE.prev = at
	newE.next = at.next
	at.next.prev = newE
	at.next = newE
	l.len++
	return newE
}

func (l *doublyLinkedList[T]) unlink(targetE *NodeElement[T]) *NodeElement[T] {
	targetE.prev.next = targetE.next
	targetE.next.prev = targetE.prev
	// avoid memory leaks
	targetE.listRef = nil
	targetE.next = nil
	targetE.prev = nil
	l.len--
	return targetE
}

func (l *doublyLinkedList[T]) AppendValue(values ...T) []*NodeElement[T] {
	if len(values) <= 0 {
		return nil
	}

	newElements := make([]*NodeElement[T], 0, len(values))
	for _, v := range values {
		newElements = append(newElements, l.insert(newNodeElement(v, l), l.root.prev))
	}
	return newElements
}

func (l *doublyLinkedList[T]) InsertAfter(v T, dstE *NodeElement[T]) *NodeElement[T] {
	if !l.contains(dstE) {
		return nil
	}
	return l.insert(newNodeElement(v, l), dstE)
}

func (l *doublyLinkedList[T]) InsertBefore(v T, dstE *NodeElement[T]) *NodeElement[T] {
	if !l.contains(dstE) {
		return nil
	}
	return l.insert(newNodeElement(v, l), dstE.prev)
}

func (l *doublyLinkedList[T]) Remove(targetE *NodeElement[T]) *NodeElement[T] {
	if l.len == 0 || !l.contains(targetE) {
		return nil
	}
	return l.unlink(targetE)
}

// Foreach, allows remove linked list elements while iterating.
func (l *doublyLinkedList[T]) Foreach(fn func(idx int64, e *NodeElement[T]) bool) {
	if fn == nil {
		return
	}

	var (
		iterator       = l.root.next
		idx      int64 = 0
	)
	for iterator != l.root {
		n := iterator.next
		if !fn(idx, iterator) {
			return
		}
		iterator = n
		idx++
	}
}

// ReverseForeach, allows remove linked list elements while iterating.
func (l *doublyLinkedList[T]) ReverseForeach(fn func(idx int64, e *NodeElement[T]) bool) {
	if fn == nil {
		return
	}

	var (
		iterator       = l.root.prev
		idx      int64 = 0
	)
	for iterator != l.root {
		p := iterator.prev
		if !fn(idx, iterator) {
			return
		}
		iterator = p
		idx++
	}
}

func (l *doublyLinkedList[T]) FindFirst(matchFn func(e *NodeElement[T]) bool) (*NodeElement[T], bool) {
	if matchFn == nil {
		return nil, false
	}
	for iterator := l.root.next; iterator != l.root; iterator = iterator.next {
		if matchFn(iterator) {
			return iterator, true
		}
	}
	return nil, false
}

func (l *doublyLinkedList[T]) Front() *NodeElement[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.next
}

func (l *doublyLinkedList[T]) Back() *NodeElement[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.prev
}

func (l *doublyLinkedList[T]) PushFront(v T) *NodeElement[T] {
	return l.insert(newNodeElement(v, l), l.root)
}

func (l *doublyLinkedList[T]) PushBack(v T) *NodeElement[T] {
	return l.insert(newNodeElement(v, l), l.root.prev)
}

func (l *doublyLinkedList[T]) PopFront() (T, error) {
	if l.len == 0 {
		var zero T
		return zero, infra.InvalidOperation("linked list pop front on empty list")
	}
	return l.unlink(l.root.next).Value, nil
}

func (l *doublyLinkedList[T]) PopBack() (T, error) {
	if l.len == 0 {
		var zero T
		return zero, infra.InvalidOperation("linked list pop back on empty list")
	}
	return l.unlink(l.root.prev).Value, nil
}

// Clear detaches every element, so the stale elements can not be used to
// modify the list.
func (l *doublyLinkedList[T]) Clear() {
	for iterator := l.root.next; iterator != l.root; {
		n := iterator.next
		iterator.listRef = nil
		iterator.next = nil
		iterator.prev = nil
		iterator = n
	}
	l.root.next = l.root
	l.root.prev = l.root
	l.len = 0
}

// Swap exchanges the roots, the elements are re-owned by their new list.
func (l *doublyLinkedList[T]) Swap(other LinkedList[T]) {
	o, ok := other.(*doublyLinkedList[T])
	if !ok || o == nil || o == l {
		return
	}
	l.root, o.root = o.root, l.root
	l.len, o.len = o.len, l.len
	for _, dl := range []*doublyLinkedList[T]{l, o} {
		dl.root.listRef = dl
		for iterator := dl.root.next; iterator != dl.root; iterator = iterator.next {
			iterator.listRef = dl
		}
	}
}

func (l *doublyLinkedList[T]) Clone() LinkedList[T] {
	dup := new(doublyLinkedList[T]).init()
	for iterator := l.root.next; iterator != l.root; iterator = iterator.next {
		dup.PushBack(iterator.Value)
	}
	return dup
}
