package kv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benz9527/xcontainers/lib/infra"
	"github.com/benz9527/xcontainers/lib/tree"
)

func TestOrderedMap_AtAndIndex(t *testing.T) {
	m := NewOrderedMap[string, int](
		Pair[string, int]{"b", 2},
		Pair[string, int]{"a", 1},
		Pair[string, int]{"c", 3},
	)
	require.Equal(t, int64(3), m.Size())

	v, err := m.At("a")
	require.NoError(t, err)
	require.Equal(t, 1, v)

	_, err = m.At("z")
	require.ErrorIs(t, err, infra.ErrOutOfRange)
	require.Equal(t, "map at key z: out of range", err.Error())
	require.False(t, m.Contains("z"))

	*m.Index("b") = 20
	v, err = m.At("b")
	require.NoError(t, err)
	require.Equal(t, 20, v)

	// Index inserts the zero value of an absent key.
	require.Equal(t, 0, *m.Index("d"))
	require.True(t, m.Contains("d"))
	require.Equal(t, []string{"a", "b", "c", "d"}, m.Keys())
	require.Equal(t, []int{1, 20, 3, 0}, m.Values())
}

func TestOrderedMap_Insert(t *testing.T) {
	m := NewOrderedMap[int, string]()
	it, ok := m.Insert(1, "one")
	require.True(t, ok)
	require.Equal(t, 1, it.Key())
	require.Equal(t, "one", it.Value())

	it, ok = m.Insert(1, "uno")
	require.False(t, ok)
	require.Equal(t, "one", it.Value())

	it, ok = m.InsertOrAssign(1, "uno")
	require.False(t, ok)
	require.Equal(t, "uno", it.Value())

	_, ok = m.InsertOrAssign(2, "two")
	require.True(t, ok)
	_, ok = m.InsertPair(Pair[int, string]{Key: 3, Value: "three"})
	require.True(t, ok)

	require.Equal(t, []bool{false, true}, m.Emplace(
		Pair[int, string]{Key: 3, Value: "tres"},
		Pair[int, string]{Key: 4, Value: "four"},
	))
	require.Equal(t, []string{"uno", "two", "three", "four"}, m.Values())
}

func TestOrderedMap_Iterator(t *testing.T) {
	m := NewOrderedMap[int, string](
		Pair[int, string]{1, "a"},
		Pair[int, string]{2, "b"},
		Pair[int, string]{3, "c"},
	)
	for it := m.Begin(); !it.IsEnd(); it = it.Next() {
		it.SetValue(strings.ToUpper(it.Value()))
	}
	require.Equal(t, []string{"A", "B", "C"}, m.Values())

	require.True(t, m.End().Next().Equal(m.Begin()))
	require.Equal(t, 3, m.End().Prev().Key())
	require.Equal(t, 2, m.LowerBound(2).Key())
	require.Equal(t, 3, m.UpperBound(2).Key())
	require.True(t, m.UpperBound(3).IsEnd())
	// no-op
	m.End().SetValue("x")

	m.Erase(m.Find(2))
	require.Equal(t, []int{1, 3}, m.Keys())
	require.True(t, m.EraseKey(3))
	require.False(t, m.EraseKey(3))
	require.Equal(t, []int{1}, m.Keys())

	m.Clear()
	require.True(t, m.Empty())
	require.Greater(t, m.MaxSize(), int64(0))
}

func TestOrderedMap_MergeSwapClone(t *testing.T) {
	a := NewOrderedMap[int, string](Pair[int, string]{1, "a1"}, Pair[int, string]{2, "a2"})
	b := NewOrderedMap[int, string](Pair[int, string]{2, "b2"}, Pair[int, string]{3, "b3"})
	a.Merge(b)
	require.Equal(t, []string{"a1", "a2", "b3"}, a.Values())
	require.Equal(t, []string{"b2"}, b.Values())

	a.Swap(b)
	require.Equal(t, []int{2}, a.Keys())
	require.Equal(t, []int{1, 2, 3}, b.Keys())

	c := b.Clone()
	*c.Index(1) = "c1"
	v, err := b.At(1)
	require.NoError(t, err)
	require.Equal(t, "a1", v)

	visited := make([]int, 0, 2)
	c.Foreach(func(idx int64, key int, val string) bool {
		visited = append(visited, key)
		return idx < 1
	})
	require.Equal(t, []int{1, 2}, visited)
}

func TestOrderedMap_Func(t *testing.T) {
	m := NewOrderedMapFunc[string, int](func(i, j string) bool {
		return len(i) < len(j)
	}, tree.WithOrderedTreeDesc[Pair[string, int]]())
	m.Insert("aa", 2)
	m.Insert("a", 1)
	m.Insert("bb", 3)
	m.Insert("aaa", 3)
	require.Equal(t, []string{"aaa", "aa", "a"}, m.Keys())
	v, err := m.At("zz")
	require.NoError(t, err)
	require.Equal(t, 2, v)
}
