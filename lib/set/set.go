package set

import (
	"github.com/samber/lo"

	"github.com/benz9527/xcontainers/lib/infra"
	"github.com/benz9527/xcontainers/lib/tree"
)

var _ Set[int] = (*orderedSet[int])(nil) // Type check assertion

type orderedSet[K any] struct {
	tree tree.OrderedTree[K]
}

func NewSet[K infra.OrderedKey](items ...K) Set[K] {
	s := &orderedSet[K]{
		tree: tree.NewOrderedTree[K](),
	}
	lo.ForEach(items, func(item K, _ int) {
		s.tree.InsertUnique(item)
	})
	return s
}

func NewSetFunc[K any](less infra.Less[K], opts ...tree.OrderedTreeOpt[K]) Set[K] {
	return &orderedSet[K]{
		tree: tree.NewOrderedTreeFunc[K](less, opts...),
	}
}

func (s *orderedSet[K]) orderedTree() tree.OrderedTree[K] {
	return s.tree
}

func (s *orderedSet[K]) Begin() tree.Iterator[K] {
	return s.tree.Begin()
}

func (s *orderedSet[K]) End() tree.Iterator[K] {
	return s.tree.End()
}

func (s *orderedSet[K]) Empty() bool {
	return s.tree.Empty()
}

func (s *orderedSet[K]) Size() int64 {
	return s.tree.Len()
}

func (s *orderedSet[K]) MaxSize() int64 {
	return s.tree.MaxSize()
}

func (s *orderedSet[K]) Clear() {
	s.tree.Clear()
}

func (s *orderedSet[K]) Insert(key K) (tree.Iterator[K], bool) {
	return s.tree.InsertUnique(key)
}

func (s *orderedSet[K]) Erase(it tree.Iterator[K]) {
	s.tree.Erase(it)
}

func (s *orderedSet[K]) Swap(other Set[K]) {
	if other == nil {
		return
	}
	s.tree.Swap(other.orderedTree())
}

func (s *orderedSet[K]) Merge(other Set[K]) {
	if other == nil {
		return
	}
	s.tree.MergeUnique(other.orderedTree())
}

func (s *orderedSet[K]) Find(key K) tree.Iterator[K] {
	return s.tree.Find(key)
}

func (s *orderedSet[K]) Contains(key K) bool {
	return s.tree.Contains(key)
}

func (s *orderedSet[K]) LowerBound(key K) tree.Iterator[K] {
	return s.tree.LowerBound(key)
}

func (s *orderedSet[K]) UpperBound(key K) tree.Iterator[K] {
	return s.tree.UpperBound(key)
}

func (s *orderedSet[K]) Emplace(keys ...K) []tree.InsertResult[K] {
	return s.tree.EmplaceUnique(keys...)
}

func (s *orderedSet[K]) Clone() Set[K] {
	return &orderedSet[K]{
		tree: s.tree.Clone(),
	}
}

func (s *orderedSet[K]) Foreach(action func(idx int64, key K) bool) {
	s.tree.Foreach(action)
}

func (s *orderedSet[K]) Keys() []K {
	return treeKeys(s.tree)
}
