package kv

import (
	"io"
	"reflect"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/benz9527/xcontainers/lib/infra"
	"github.com/benz9527/xcontainers/lib/tree"
)

var _ ThreadSafeOrderedMap[string, int] = (*threadSafeMap[string, int])(nil) // Type check assertion

type threadSafeMap[K any, V any] struct {
	lock           sync.RWMutex
	items          OrderedMap[K, V]
	less           infra.Less[K]
	opts           []tree.OrderedTreeOpt[Pair[K, V]]
	isClosableItem bool
	logger         *zap.Logger
}

func (t *threadSafeMap[K, V]) newItems() OrderedMap[K, V] {
	return NewOrderedMapFunc[K, V](t.less, t.opts...)
}

func (t *threadSafeMap[K, V]) AddOrUpdate(key K, obj V) {
	t.lock.Lock()
	defer t.lock.Unlock()
	t.items.InsertOrAssign(key, obj)
}

func (t *threadSafeMap[K, V]) Replace(pairs ...Pair[K, V]) {
	items := t.newItems()
	for _, pair := range pairs {
		items.InsertOrAssign(pair.Key, pair.Value)
	}

	t.lock.Lock()
	defer t.lock.Unlock()
	t.items = items
}

func (t *threadSafeMap[K, V]) Delete(key K) (V, error) {
	t.lock.Lock()
	defer t.lock.Unlock()
	it := t.items.Find(key)
	if it.IsEnd() {
		var zero V
		return zero, infra.OutOfRange("thread safe map delete key %v", key)
	}
	val := it.Value()
	t.items.Erase(it)
	return val, nil
}

func (t *threadSafeMap[K, V]) Get(key K) (item V, exists bool) {
	t.lock.RLock()
	defer t.lock.RUnlock()
	it := t.items.Find(key)
	if it.IsEnd() {
		return item, false
	}
	return it.Value(), true
}

func (t *threadSafeMap[K, V]) Len() int64 {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.items.Size()
}

func (t *threadSafeMap[K, V]) ListKeys(filters ...SafeStoreKeyFilterFunc[K]) []K {
	realFilters := make([]SafeStoreKeyFilterFunc[K], 0, len(filters))
	for _, filter := range filters {
		if filter != nil {
			realFilters = append(realFilters, filter)
		}
	}
	if len(realFilters) == 0 {
		realFilters = append(realFilters, defaultAllKeysFilter[K])
	}

	t.lock.RLock()
	defer t.lock.RUnlock()

	keys := make([]K, 0, t.items.Size())
	t.items.Foreach(func(_ int64, key K, _ V) bool {
		for _, filter := range realFilters {
			if filter(key) {
				keys = append(keys, key)
				break
			}
		}
		return true
	})
	return keys
}

// ListValues returns all values in key order, or the values of the
// present keys in the given order.
func (t *threadSafeMap[K, V]) ListValues(keys ...K) (items []V) {
	t.lock.RLock()
	defer t.lock.RUnlock()

	if len(keys) == 0 {
		return t.items.Values()
	}
	values := make([]V, 0, len(keys))
	for _, key := range keys {
		if it := t.items.Find(key); !it.IsEnd() {
			values = append(values, it.Value())
		}
	}
	return values
}

// Purge closes the io.Closer values and empties the map.
func (t *threadSafeMap[K, V]) Purge() error {
	t.lock.Lock()
	defer t.lock.Unlock()

	var merr error
	if t.isClosableItem {
		t.items.Foreach(func(_ int64, key K, item V) bool {
			closer, ok := any(item).(io.Closer)
			if !ok {
				return true
			}
			if v := reflect.ValueOf(item); v.Kind() == reflect.Pointer && v.IsNil() {
				return true
			}
			if err := closer.Close(); err != nil {
				t.logger.Error("purge close item",
					zap.Any("key", key),
					zap.Error(err),
				)
				merr = multierr.Append(merr, err)
			}
			return true
		})
	}

	t.items.Clear()
	return merr
}

type ThreadSafeMapOption[K any, V any] func(*threadSafeMap[K, V])

// WithThreadSafeMapCloseableItemCheck makes Purge check every value for
// io.Closer, even if V itself does not implement it.
func WithThreadSafeMapCloseableItemCheck[K any, V any]() ThreadSafeMapOption[K, V] {
	return func(m *threadSafeMap[K, V]) {
		m.isClosableItem = true
	}
}

func WithThreadSafeMapLogger[K any, V any](logger *zap.Logger) ThreadSafeMapOption[K, V] {
	return func(m *threadSafeMap[K, V]) {
		if logger != nil {
			m.logger = logger.Named("kv")
		}
	}
}

func WithThreadSafeMapTreeOptions[K any, V any](opts ...tree.OrderedTreeOpt[Pair[K, V]]) ThreadSafeMapOption[K, V] {
	return func(m *threadSafeMap[K, V]) {
		m.opts = append(m.opts, opts...)
	}
}

func NewThreadSafeOrderedMap[K infra.OrderedKey, V any](opts ...ThreadSafeMapOption[K, V]) ThreadSafeOrderedMap[K, V] {
	return NewThreadSafeOrderedMapFunc[K, V](infra.OrderedLess[K], opts...)
}

func NewThreadSafeOrderedMapFunc[K any, V any](less infra.Less[K], opts ...ThreadSafeMapOption[K, V]) ThreadSafeOrderedMap[K, V] {
	m := &threadSafeMap[K, V]{
		less:           less,
		isClosableItem: reflect.TypeOf((*V)(nil)).Elem().Implements(reflect.TypeOf((*io.Closer)(nil)).Elem()),
		logger:         zap.NewNop(),
	}
	for _, o := range opts {
		if o != nil {
			o(m)
		}
	}
	m.items = m.newItems()
	return m
}
