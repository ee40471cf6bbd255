package set

import (
	"github.com/samber/lo"

	"github.com/benz9527/xcontainers/lib/infra"
	"github.com/benz9527/xcontainers/lib/tree"
)

var _ MultiSet[int] = (*orderedMultiSet[int])(nil) // Type check assertion

type orderedMultiSet[K any] struct {
	tree tree.OrderedTree[K]
}

func NewMultiSet[K infra.OrderedKey](items ...K) MultiSet[K] {
	s := &orderedMultiSet[K]{
		tree: tree.NewOrderedTree[K](),
	}
	lo.ForEach(items, func(item K, _ int) {
		s.tree.Insert(item)
	})
	return s
}

func NewMultiSetFunc[K any](less infra.Less[K], opts ...tree.OrderedTreeOpt[K]) MultiSet[K] {
	return &orderedMultiSet[K]{
		tree: tree.NewOrderedTreeFunc[K](less, opts...),
	}
}

func (s *orderedMultiSet[K]) orderedTree() tree.OrderedTree[K] {
	return s.tree
}

func (s *orderedMultiSet[K]) Begin() tree.Iterator[K] {
	return s.tree.Begin()
}

func (s *orderedMultiSet[K]) End() tree.Iterator[K] {
	return s.tree.End()
}

func (s *orderedMultiSet[K]) Empty() bool {
	return s.tree.Len() == 0
}

func (s *orderedMultiSet[K]) Size() int64 {
	return s.tree.Len()
}

func (s *orderedMultiSet[K]) MaxSize() int64 {
	return s.tree.MaxSize()
}

func (s *orderedMultiSet[K]) Clear() {
	s.tree.Clear()
}

func (s *orderedMultiSet[K]) Insert(key K) tree.Iterator[K] {
	return s.tree.Insert(key)
}

func (s *orderedMultiSet[K]) Erase(it tree.Iterator[K]) {
	s.tree.Erase(it)
}

func (s *orderedMultiSet[K]) EraseKey(key K) int64 {
	return s.tree.EraseKey(key)
}

func (s *orderedMultiSet[K]) Swap(other MultiSet[K]) {
	if other == nil {
		return
	}
	s.tree.Swap(other.orderedTree())
}

func (s *orderedMultiSet[K]) Merge(other MultiSet[K]) {
	if other == nil {
		return
	}
	s.tree.Merge(other.orderedTree())
}

func (s *orderedMultiSet[K]) Find(key K) tree.Iterator[K] {
	return s.tree.Find(key)
}

func (s *orderedMultiSet[K]) Contains(key K) bool {
	return s.tree.Contains(key)
}

func (s *orderedMultiSet[K]) Count(key K) int64 {
	return s.tree.Count(key)
}

func (s *orderedMultiSet[K]) LowerBound(key K) tree.Iterator[K] {
	return s.tree.LowerBound(key)
}

func (s *orderedMultiSet[K]) UpperBound(key K) tree.Iterator[K] {
	return s.tree.UpperBound(key)
}

func (s *orderedMultiSet[K]) EqualRange(key K) (tree.Iterator[K], tree.Iterator[K]) {
	return s.tree.EqualRange(key)
}

func (s *orderedMultiSet[K]) Emplace(keys ...K) []tree.InsertResult[K] {
	return s.tree.Emplace(keys...)
}

func (s *orderedMultiSet[K]) Clone() MultiSet[K] {
	return &orderedMultiSet[K]{
		tree: s.tree.Clone(),
	}
}

func (s *orderedMultiSet[K]) Foreach(action func(idx int64, key K) bool) {
	s.tree.Foreach(action)
}

func (s *orderedMultiSet[K]) Keys() []K {
	return treeKeys(s.tree)
}
