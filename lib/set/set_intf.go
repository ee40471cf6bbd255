package set

import "github.com/benz9527/xcontainers/lib/tree"

// Set keeps unique keys in the order of its less function.
// It is not thread safe.
type Set[K any] interface {
	Begin() tree.Iterator[K]
	End() tree.Iterator[K]
	Empty() bool
	Size() int64
	MaxSize() int64
	Clear()
	// Insert returns the inserted element, or the existing equivalent
	// element and false.
	Insert(key K) (tree.Iterator[K], bool)
	Erase(it tree.Iterator[K])
	Swap(other Set[K])
	// Merge moves the keys absent from the set out of other.
	Merge(other Set[K])
	Find(key K) tree.Iterator[K]
	Contains(key K) bool
	LowerBound(key K) tree.Iterator[K]
	UpperBound(key K) tree.Iterator[K]
	Emplace(keys ...K) []tree.InsertResult[K]
	Clone() Set[K]
	Foreach(action func(idx int64, key K) bool)
	Keys() []K
	orderedTree() tree.OrderedTree[K]
}

// MultiSet keeps equivalent keys in insertion order.
// It is not thread safe.
type MultiSet[K any] interface {
	Begin() tree.Iterator[K]
	End() tree.Iterator[K]
	Empty() bool
	Size() int64
	MaxSize() int64
	Clear()
	Insert(key K) tree.Iterator[K]
	Erase(it tree.Iterator[K])
	// EraseKey removes all the equivalent keys.
	EraseKey(key K) int64
	Swap(other MultiSet[K])
	// Merge moves all keys out of other.
	Merge(other MultiSet[K])
	Find(key K) tree.Iterator[K]
	Contains(key K) bool
	Count(key K) int64
	LowerBound(key K) tree.Iterator[K]
	UpperBound(key K) tree.Iterator[K]
	EqualRange(key K) (tree.Iterator[K], tree.Iterator[K])
	Emplace(keys ...K) []tree.InsertResult[K]
	Clone() MultiSet[K]
	Foreach(action func(idx int64, key K) bool)
	Keys() []K
	orderedTree() tree.OrderedTree[K]
}

func treeKeys[K any](t tree.OrderedTree[K]) []K {
	keys := make([]K, 0, t.Len())
	t.Foreach(func(_ int64, key K) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}
