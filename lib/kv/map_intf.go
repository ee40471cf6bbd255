package kv

import (
	"io"

	"github.com/benz9527/xcontainers/lib/tree"
)

// Pair is a map entry, ordered by Key only.
type Pair[K any, V any] struct {
	Key   K
	Value V
}

// OrderedMap keeps unique keys in the order of its less function.
// It is not thread safe.
type OrderedMap[K any, V any] interface {
	Begin() MapIterator[K, V]
	End() MapIterator[K, V]
	Empty() bool
	Size() int64
	MaxSize() int64
	Clear()
	// At returns the value of key or ErrOutOfRange.
	At(key K) (V, error)
	// Index returns the reference to the value of key. The zero value is
	// inserted for an absent key.
	Index(key K) *V
	// Insert keeps the existing value of an equivalent key.
	Insert(key K, val V) (MapIterator[K, V], bool)
	InsertPair(pair Pair[K, V]) (MapIterator[K, V], bool)
	// InsertOrAssign overwrites the existing value of an equivalent key.
	InsertOrAssign(key K, val V) (MapIterator[K, V], bool)
	Erase(it MapIterator[K, V])
	EraseKey(key K) bool
	Swap(other OrderedMap[K, V])
	// Merge moves the entries whose keys are absent from the map out of other.
	Merge(other OrderedMap[K, V])
	Find(key K) MapIterator[K, V]
	Contains(key K) bool
	LowerBound(key K) MapIterator[K, V]
	UpperBound(key K) MapIterator[K, V]
	Emplace(pairs ...Pair[K, V]) []bool
	Clone() OrderedMap[K, V]
	Foreach(action func(idx int64, key K, val V) bool)
	Keys() []K
	Values() []V
	pairs() tree.OrderedTree[Pair[K, V]]
}

type SafeStoreKeyFilterFunc[K any] func(key K) bool

func defaultAllKeysFilter[K any](key K) bool {
	return true
}

type Closable interface {
	io.Closer
}

// ThreadSafeOrderedMap is an ordered map guarded by a RWMutex.
// Listing returns keys and values in key order.
type ThreadSafeOrderedMap[K any, V any] interface {
	Purge() error
	AddOrUpdate(key K, obj V)
	Replace(pairs ...Pair[K, V])
	Delete(key K) (V, error)
	Get(key K) (item V, exists bool)
	Len() int64
	ListKeys(filters ...SafeStoreKeyFilterFunc[K]) []K
	ListValues(keys ...K) (items []V)
}
