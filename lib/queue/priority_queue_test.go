package queue

import (
	randv2 "math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benz9527/xcontainers/lib/infra"
)

type employee struct {
	name   string
	age    int
	salary int64
}

func TestPriorityQueue_MinValueAsHighPriority(t *testing.T) {
	pq := NewPriorityQueueFunc[*employee](func(i, j *employee) bool {
		return i.age < j.age
	})
	pq.Push(&employee{age: 10, name: "p0"})
	pq.Push(&employee{age: 101, name: "p1"})
	pq.Push(&employee{age: 10, name: "p2"})
	pq.Push(&employee{age: 200, name: "p3"})
	pq.Push(&employee{age: 3, name: "p4"})
	pq.Push(&employee{age: 1, name: "p5"})
	pq.Push(&employee{age: 5, name: "p6"})
	require.Equal(t, int64(7), pq.Size())

	top, err := pq.Top()
	require.NoError(t, err)
	require.Equal(t, "p5", top.name)

	expectedAges := []int{1, 3, 5, 10, 10, 101, 200}
	for i, age := range expectedAges {
		item, err := pq.Pop()
		require.NoError(t, err)
		assert.Equal(t, age, item.age, "age", i)
	}
	require.True(t, pq.Empty())
	_, err = pq.Pop()
	require.ErrorIs(t, err, infra.ErrInvalidOperation)
	_, err = pq.Top()
	require.ErrorIs(t, err, infra.ErrInvalidOperation)
}

func TestPriorityQueue_MaxValueAsHighPriority(t *testing.T) {
	pq := NewPriorityQueueFunc[int64](infra.Reverse[int64](infra.OrderedLess[int64]), 3, 1, 2)
	pq.Push(10)
	expected := []int64{10, 3, 2, 1}
	for _, v := range expected {
		item, err := pq.Pop()
		require.NoError(t, err)
		require.Equal(t, v, item)
	}
}

func TestPriorityQueue_Random(t *testing.T) {
	items := make([]int, 0, 1000)
	for i := 0; i < 1000; i++ {
		items = append(items, randv2.IntN(500))
	}
	pq := NewPriorityQueue[int](items[:500]...)
	for _, item := range items[500:] {
		pq.Push(item)
	}
	sort.Ints(items)
	for _, expected := range items {
		v, err := pq.Pop()
		require.NoError(t, err)
		require.Equal(t, expected, v)
	}
}
