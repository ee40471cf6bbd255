package list

import (
	"container/list"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benz9527/xcontainers/lib/infra"
)

func listValues[T any](l LinkedList[T]) []T {
	values := make([]T, 0, l.Len())
	l.Foreach(func(idx int64, e *NodeElement[T]) bool {
		values = append(values, e.Value)
		return true
	})
	return values
}

func TestLinkedList_AppendValueThenRemove(t *testing.T) {
	dlist := NewLinkedList[int]()
	dlist2 := list.New()
	checkItems := func() {
		require.Equal(t, int64(dlist2.Len()), dlist.Len())
		dlistItr := dlist.Front()
		dlist2Itr := dlist2.Front()
		for dlist2Itr != nil {
			require.Equal(t, dlist2Itr.Value, dlistItr.Value)
			dlist2Itr = dlist2Itr.Next()
			dlistItr = dlistItr.Next()
		}
		require.Nil(t, dlistItr)
	}

	elements := dlist.AppendValue(1, 2, 3, 4, 5)
	require.Equal(t, len(elements), 5)
	dlist.Foreach(func(idx int64, e *NodeElement[int]) bool {
		require.Equal(t, elements[idx], e)
		addr1, addr2 := fmt.Sprintf("%p", elements[idx]), fmt.Sprintf("%p", e)
		require.Equal(t, addr1, addr2)
		return true
	})

	dlist2.PushBack(1)
	dlist2.PushBack(2)
	_3n := dlist2.PushBack(3)
	dlist2.PushBack(4)
	dlist2.PushBack(5)
	checkItems()

	t.Log("test linked list remove middle")
	require.Equal(t, elements[2], dlist.Remove(elements[2]))
	dlist2.Remove(_3n)
	checkItems()

	t.Log("test linked list remove head")
	dlist.Remove(dlist.Front())
	dlist2.Remove(dlist2.Front())
	checkItems()

	t.Log("test linked list remove tail")
	dlist.Remove(dlist.Back())
	dlist2.Remove(dlist2.Back())
	checkItems()

	t.Log("test linked list remove nil and removed")
	require.Nil(t, dlist.Remove(nil))
	require.Nil(t, dlist.Remove(elements[2]))
	checkItems()

	require.Equal(t, []int{2, 4}, listValues(dlist))
	for _, i := range []int{0, 2, 4} {
		require.Nil(t, elements[i].prev)
		require.Nil(t, elements[i].next)
		require.Nil(t, elements[i].listRef)
	}
}

func TestLinkedList_PushBackAndFront(t *testing.T) {
	dlist := NewLinkedList[int]()
	element := dlist.PushBack(1)
	require.Equal(t, int64(1), dlist.Len())
	require.Equal(t, 1, element.Value)
	require.False(t, element.HasNext())
	require.False(t, element.HasPrev())

	dlist.PushBack(2)
	dlist.PushFront(0)
	require.Equal(t, int64(3), dlist.Len())
	require.Equal(t, []int{0, 1, 2}, listValues(dlist))
	require.Equal(t, 0, dlist.Front().Value)
	require.Equal(t, 2, dlist.Back().Value)
	require.True(t, element.HasNext())
	require.True(t, element.HasPrev())

	reverseExpected := []int{2, 1, 0}
	dlist.ReverseForeach(func(idx int64, e *NodeElement[int]) bool {
		require.Equal(t, reverseExpected[idx], e.Value)
		return true
	})
}

func TestLinkedList_InsertBeforeAndAfter(t *testing.T) {
	dlist := NewLinkedList[int]()
	elements := dlist.AppendValue(1)
	_2n := dlist.InsertBefore(2, elements[0])
	_3n := dlist.InsertBefore(3, _2n)
	dlist.InsertAfter(4, _3n)
	dlist.InsertAfter(5, elements[0])
	assert.Equal(t, int64(5), dlist.Len())

	dlist2 := list.New()
	_1n_2 := dlist2.PushBack(1)
	_2n_2 := dlist2.InsertBefore(2, _1n_2)
	_3n_2 := dlist2.InsertBefore(3, _2n_2)
	dlist2.InsertAfter(4, _3n_2)
	dlist2.InsertAfter(5, _1n_2)

	expected := make([]int, 0, dlist2.Len())
	for e := dlist2.Front(); e != nil; e = e.Next() {
		expected = append(expected, e.Value.(int))
	}
	require.Equal(t, expected, listValues(dlist))

	other := NewLinkedList[int](9)
	require.Nil(t, dlist.InsertAfter(6, other.Front()))
	require.Nil(t, dlist.InsertBefore(6, nil))
	require.Equal(t, int64(5), dlist.Len())
}

func TestLinkedList_Pop(t *testing.T) {
	dlist := NewLinkedList[string]("a", "b", "c")
	v, err := dlist.PopFront()
	require.NoError(t, err)
	require.Equal(t, "a", v)
	v, err = dlist.PopBack()
	require.NoError(t, err)
	require.Equal(t, "c", v)
	v, err = dlist.PopBack()
	require.NoError(t, err)
	require.Equal(t, "b", v)

	_, err = dlist.PopFront()
	require.ErrorIs(t, err, infra.ErrInvalidOperation)
	_, err = dlist.PopBack()
	require.ErrorIs(t, err, infra.ErrInvalidOperation)
	require.Nil(t, dlist.Front())
	require.Nil(t, dlist.Back())
}

func TestLinkedList_ForeachRemove(t *testing.T) {
	dlist := NewLinkedList[int](1, 2, 3, 4, 5, 6)
	dlist.Foreach(func(idx int64, e *NodeElement[int]) bool {
		if e.Value%2 == 0 {
			dlist.Remove(e)
		}
		return true
	})
	require.Equal(t, []int{1, 3, 5}, listValues(dlist))

	visited := 0
	dlist.ReverseForeach(func(idx int64, e *NodeElement[int]) bool {
		visited++
		return idx < 1
	})
	require.Equal(t, 2, visited)

	e, ok := dlist.FindFirst(func(e *NodeElement[int]) bool {
		return e.Value > 1
	})
	require.True(t, ok)
	require.Equal(t, 3, e.Value)
	_, ok = dlist.FindFirst(func(e *NodeElement[int]) bool {
		return e.Value > 10
	})
	require.False(t, ok)
}

func TestLinkedList_SwapCloneClear(t *testing.T) {
	a := NewLinkedList[int](1, 2, 3)
	b := NewLinkedList[int](4)
	aFront := a.Front()

	a.Swap(b)
	require.Equal(t, []int{4}, listValues(a))
	require.Equal(t, []int{1, 2, 3}, listValues(b))
	// Elements moved with the contents.
	require.NotNil(t, b.InsertAfter(0, aFront))
	require.Nil(t, a.InsertAfter(0, aFront))
	require.Equal(t, []int{1, 0, 2, 3}, listValues(b))

	c := b.Clone()
	c.PushBack(7)
	require.Equal(t, int64(4), b.Len())
	require.Equal(t, []int{1, 0, 2, 3, 7}, listValues(c))

	c.Clear()
	require.Equal(t, int64(0), c.Len())
	require.Nil(t, c.Front())
	c.PushBack(8)
	require.Equal(t, []int{8}, listValues(c))
}

func BenchmarkDoublyLinkedList_PushBack(b *testing.B) {
	dlist := NewLinkedList[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dlist.PushBack(i)
	}
	b.ReportAllocs()
}

func BenchmarkSDKLinkedList_PushBack(b *testing.B) {
	dlist := list.New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dlist.PushBack(i)
	}
	b.ReportAllocs()
}
