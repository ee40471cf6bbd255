package kv

import "github.com/benz9527/xcontainers/lib/tree"

type MapIterator[K any, V any] struct {
	it tree.Iterator[Pair[K, V]]
}

func (it MapIterator[K, V]) Key() K {
	return it.it.Key().Key
}

func (it MapIterator[K, V]) Value() V {
	return it.it.Key().Value
}

// SetValue is a no-op for End.
func (it MapIterator[K, V]) SetValue(val V) {
	if ref := it.it.Ref(); ref != nil {
		ref.Value = val
	}
}

func (it MapIterator[K, V]) Next() MapIterator[K, V] {
	return MapIterator[K, V]{it: it.it.Next()}
}

func (it MapIterator[K, V]) Prev() MapIterator[K, V] {
	return MapIterator[K, V]{it: it.it.Prev()}
}

func (it MapIterator[K, V]) IsEnd() bool {
	return it.it.IsEnd()
}

func (it MapIterator[K, V]) Equal(other MapIterator[K, V]) bool {
	return it.it.Equal(other.it)
}
