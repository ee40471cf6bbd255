package tree

// go install golang.org/x/tools/cmd/stringer@latest

//go:generate stringer -type=RBColor
type RBColor uint8

const (
	Black RBColor = iota
	Red
)

// InsertResult is the outcome of one key inserted by Emplace or EmplaceUnique.
type InsertResult[K any] struct {
	Iter     Iterator[K]
	Inserted bool
}

// OrderedTree is a red-black tree whose head (sentinel) node is the end of
// the sequence, caches the minimum and the maximum and anchors the root.
// It is not thread safe.
type OrderedTree[K any] interface {
	Len() int64
	Empty() bool
	// MaxSize is the theoretical upper bound of elements, never reachable.
	MaxSize() int64
	// Clear releases every node, the tree stays usable.
	Clear()

	// Begin returns the minimum, or End for an empty tree.
	Begin() Iterator[K]
	// End returns the head node, it is never dereferenceable.
	End() Iterator[K]
	// RBegin returns the maximum, or End for an empty tree.
	RBegin() Iterator[K]
	// Foreach visits keys in order until action returns false.
	Foreach(action func(idx int64, key K) bool)

	// Insert always inserts the key. Equivalent keys land at the upper
	// bound of their equal range, so duplicates keep insertion order.
	Insert(key K) Iterator[K]
	// InsertUnique inserts the key only if no equivalent key exists.
	// Otherwise, it returns the existing element and false.
	InsertUnique(key K) (Iterator[K], bool)
	Emplace(keys ...K) []InsertResult[K]
	EmplaceUnique(keys ...K) []InsertResult[K]

	// Find returns an element equivalent to key or End.
	Find(key K) Iterator[K]
	Contains(key K) bool
	// LowerBound returns the first element not less than key.
	LowerBound(key K) Iterator[K]
	// UpperBound returns the first element greater than key.
	UpperBound(key K) Iterator[K]
	// EqualRange returns [LowerBound(key), UpperBound(key)).
	EqualRange(key K) (Iterator[K], Iterator[K])
	Count(key K) int64

	// Erase removes the element at it. Erasing End is a no-op.
	// The iterator must belong to this tree and must not be erased already.
	Erase(it Iterator[K])
	// EraseKey removes every element equivalent to key.
	EraseKey(key K) int64

	// Merge moves every element of other into the tree, other ends empty.
	Merge(other OrderedTree[K])
	// MergeUnique moves the elements of other without an equivalent key in
	// the tree. The colliding elements stay in other.
	MergeUnique(other OrderedTree[K])
	// Swap exchanges the contents in O(1). Only End iterators are swapped
	// along with the head nodes, all other iterators stay valid.
	Swap(other OrderedTree[K])

	// Clone deep copies the nodes, colors included.
	Clone() OrderedTree[K]
	// CopyFrom replaces the contents by a deep copy of other.
	CopyFrom(other OrderedTree[K])
	// MoveFrom takes over the nodes of other and leaves other empty.
	MoveFrom(other OrderedTree[K])

	// CheckTree reports whether all red-black invariants hold.
	CheckTree() bool
	// Validate returns every violated invariant.
	Validate() error
}
