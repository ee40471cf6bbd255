package kv

import (
	"github.com/samber/lo"

	"github.com/benz9527/xcontainers/lib/infra"
	"github.com/benz9527/xcontainers/lib/tree"
)

var _ OrderedMap[int, struct{}] = (*orderedMap[int, struct{}])(nil) // Type check assertion

type orderedMap[K any, V any] struct {
	tree tree.OrderedTree[Pair[K, V]]
}

func NewOrderedMap[K infra.OrderedKey, V any](pairs ...Pair[K, V]) OrderedMap[K, V] {
	m := NewOrderedMapFunc[K, V](infra.OrderedLess[K])
	m.Emplace(pairs...)
	return m
}

// NewOrderedMapFunc orders the keys by less. The tree options apply to
// the entries.
func NewOrderedMapFunc[K any, V any](less infra.Less[K], opts ...tree.OrderedTreeOpt[Pair[K, V]]) OrderedMap[K, V] {
	if less == nil {
		panic("[kv] nil less function")
	}
	return &orderedMap[K, V]{
		tree: tree.NewOrderedTreeFunc[Pair[K, V]](func(i, j Pair[K, V]) bool {
			return less(i.Key, j.Key)
		}, opts...),
	}
}

func (m *orderedMap[K, V]) pairs() tree.OrderedTree[Pair[K, V]] {
	return m.tree
}

func (m *orderedMap[K, V]) Begin() MapIterator[K, V] {
	return MapIterator[K, V]{it: m.tree.Begin()}
}

func (m *orderedMap[K, V]) End() MapIterator[K, V] {
	return MapIterator[K, V]{it: m.tree.End()}
}

func (m *orderedMap[K, V]) Empty() bool {
	return m.tree.Empty()
}

func (m *orderedMap[K, V]) Size() int64 {
	return m.tree.Len()
}

func (m *orderedMap[K, V]) MaxSize() int64 {
	return m.tree.MaxSize()
}

func (m *orderedMap[K, V]) Clear() {
	m.tree.Clear()
}

func (m *orderedMap[K, V]) At(key K) (V, error) {
	it := m.tree.Find(Pair[K, V]{Key: key})
	if it.IsEnd() {
		var zero V
		return zero, infra.OutOfRange("map at key %v", key)
	}
	return it.Key().Value, nil
}

func (m *orderedMap[K, V]) Index(key K) *V {
	it, _ := m.tree.InsertUnique(Pair[K, V]{Key: key})
	return &it.Ref().Value
}

func (m *orderedMap[K, V]) Insert(key K, val V) (MapIterator[K, V], bool) {
	return m.InsertPair(Pair[K, V]{Key: key, Value: val})
}

func (m *orderedMap[K, V]) InsertPair(pair Pair[K, V]) (MapIterator[K, V], bool) {
	it, ok := m.tree.InsertUnique(pair)
	return MapIterator[K, V]{it: it}, ok
}

func (m *orderedMap[K, V]) InsertOrAssign(key K, val V) (MapIterator[K, V], bool) {
	it, ok := m.tree.InsertUnique(Pair[K, V]{Key: key, Value: val})
	if !ok {
		it.Ref().Value = val
	}
	return MapIterator[K, V]{it: it}, ok
}

func (m *orderedMap[K, V]) Erase(it MapIterator[K, V]) {
	m.tree.Erase(it.it)
}

func (m *orderedMap[K, V]) EraseKey(key K) bool {
	return m.tree.EraseKey(Pair[K, V]{Key: key}) > 0
}

func (m *orderedMap[K, V]) Swap(other OrderedMap[K, V]) {
	if other == nil {
		return
	}
	m.tree.Swap(other.pairs())
}

func (m *orderedMap[K, V]) Merge(other OrderedMap[K, V]) {
	if other == nil {
		return
	}
	m.tree.MergeUnique(other.pairs())
}

func (m *orderedMap[K, V]) Find(key K) MapIterator[K, V] {
	return MapIterator[K, V]{it: m.tree.Find(Pair[K, V]{Key: key})}
}

func (m *orderedMap[K, V]) Contains(key K) bool {
	return m.tree.Contains(Pair[K, V]{Key: key})
}

func (m *orderedMap[K, V]) LowerBound(key K) MapIterator[K, V] {
	return MapIterator[K, V]{it: m.tree.LowerBound(Pair[K, V]{Key: key})}
}

func (m *orderedMap[K, V]) UpperBound(key K) MapIterator[K, V] {
	return MapIterator[K, V]{it: m.tree.UpperBound(Pair[K, V]{Key: key})}
}

func (m *orderedMap[K, V]) Emplace(pairs ...Pair[K, V]) []bool {
	return lo.Map(m.tree.EmplaceUnique(pairs...), func(res tree.InsertResult[Pair[K, V]], _ int) bool {
		return res.Inserted
	})
}

func (m *orderedMap[K, V]) Clone() OrderedMap[K, V] {
	return &orderedMap[K, V]{
		tree: m.tree.Clone(),
	}
}

func (m *orderedMap[K, V]) Foreach(action func(idx int64, key K, val V) bool) {
	m.tree.Foreach(func(idx int64, pair Pair[K, V]) bool {
		return action(idx, pair.Key, pair.Value)
	})
}

func (m *orderedMap[K, V]) entries() []Pair[K, V] {
	entries := make([]Pair[K, V], 0, m.tree.Len())
	m.tree.Foreach(func(_ int64, pair Pair[K, V]) bool {
		entries = append(entries, pair)
		return true
	})
	return entries
}

func (m *orderedMap[K, V]) Keys() []K {
	return lo.Map(m.entries(), func(pair Pair[K, V], _ int) K {
		return pair.Key
	})
}

func (m *orderedMap[K, V]) Values() []V {
	return lo.Map(m.entries(), func(pair Pair[K, V], _ int) V {
		return pair.Value
	})
}
