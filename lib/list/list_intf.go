package list

// Vector is a dynamic array. Its capacity doubles on growth, or becomes 1
// from empty. It is not thread safe.
type Vector[T any] interface {
	At(pos int64) (T, error)
	Set(pos int64, val T) error
	Front() (T, error)
	Back() (T, error)
	// Data returns the backing slice of the elements, not a copy.
	Data() []T
	Empty() bool
	Size() int64
	MaxSize() int64
	// Reserve grows the capacity to at least newCap, it never shrinks.
	Reserve(newCap int64) error
	Capacity() int64
	ShrinkToFit()
	Clear()
	// Insert puts val before pos. pos may be the size.
	Insert(pos int64, val T) error
	Erase(pos int64) error
	PushBack(val T)
	PopBack() error
	Swap(other Vector[T])
	// Emplace inserts the items before pos, in order.
	Emplace(pos int64, items ...T) error
	EmplaceBack(items ...T)
	Clone() Vector[T]
	Foreach(fn func(idx int64, val T) bool)
}

// Array is a fixed size array. The size is decided at construction.
type Array[T any] interface {
	At(pos int64) (T, error)
	Set(pos int64, val T) error
	Front() (T, error)
	Back() (T, error)
	Data() []T
	Empty() bool
	Size() int64
	MaxSize() int64
	// Swap exchanges the elements with an array of the same size.
	Swap(other Array[T]) error
	Fill(val T)
}

// Note that the singly linked list could be implemented by using the doubly
// linked list, so only the doubly linked list is provided.

// LinkedList is the doubly linked list interface. It is not thread safe.
type LinkedList[T any] interface {
	Len() int64
	// AppendValue appends the values to the list l and returns the new elements.
	AppendValue(values ...T) []*NodeElement[T]
	// InsertAfter inserts a value v as a new element immediately after element dstE and returns new element.
	// If dstE is not an element of l, the value v will not be inserted.
	InsertAfter(v T, dstE *NodeElement[T]) *NodeElement[T]
	// InsertBefore inserts a value v as a new element immediately before element dstE and returns new element.
	// If dstE is not an element of l, the value v will not be inserted.
	InsertBefore(v T, dstE *NodeElement[T]) *NodeElement[T]
	// Remove removes targetE from l if targetE is an element of list l and returns targetE or nil.
	Remove(targetE *NodeElement[T]) *NodeElement[T]
	// Foreach traverses the list l until fn returns false.
	// The visited element may be removed by fn.
	Foreach(fn func(idx int64, e *NodeElement[T]) bool)
	// ReverseForeach iterates the list in reverse order until fn returns false.
	ReverseForeach(fn func(idx int64, e *NodeElement[T]) bool)
	// FindFirst finds the first element that satisfies the matchFn.
	FindFirst(matchFn func(e *NodeElement[T]) bool) (*NodeElement[T], bool)
	// Front returns the first element of doubly linked list l or nil if the list is empty.
	Front() *NodeElement[T]
	// Back returns the last element of doubly linked list l or nil if the list is empty.
	Back() *NodeElement[T]
	// PushFront inserts a new element e with value v at the front of list l and returns e.
	PushFront(v T) *NodeElement[T]
	// PushBack inserts a new element e with value v at the back of list l and returns e.
	PushBack(v T) *NodeElement[T]
	PopFront() (T, error)
	PopBack() (T, error)
	Clear()
	Swap(other LinkedList[T])
	Clone() LinkedList[T]
}
