package queue

// Stack is a LIFO adapter. It is not thread safe.
type Stack[T any] interface {
	Push(val T)
	Pop() (T, error)
	Top() (T, error)
	Size() int64
	Empty() bool
	Swap(other Stack[T])
	// EmplaceFront pushes the items in order, the last one is the top.
	EmplaceFront(items ...T)
}

// Queue is a FIFO adapter. It is not thread safe.
type Queue[T any] interface {
	Push(val T)
	Pop() (T, error)
	Front() (T, error)
	Back() (T, error)
	Size() int64
	Empty() bool
	Swap(other Queue[T])
	EmplaceBack(items ...T)
}

// PriorityQueue pops the element that no other element is less than first.
// It is not thread safe.
type PriorityQueue[T any] interface {
	Push(val T)
	Pop() (T, error)
	Top() (T, error)
	Size() int64
	Empty() bool
}
