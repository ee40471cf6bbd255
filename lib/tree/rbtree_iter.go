package tree

// Iterator is a thin wrapper of a tree node. Iterators are comparable
// values, two iterators are equal if they point to the same node.
//
// Erasing an element invalidates only the iterators pointing to it.
// The key stays in its node during rebalancing, so all the other
// iterators stay valid.
type Iterator[K any] struct {
	node *rbNode[K]
}

// Key returns the stored key. It is the zero value for End.
func (it Iterator[K]) Key() K {
	if it.node == nil {
		var zero K
		return zero
	}
	return it.node.key
}

// Ref returns a mutable reference to the stored key.
// Changing the key ordering breaks the tree.
func (it Iterator[K]) Ref() *K {
	if it.node == nil || it.node.isHead() {
		return nil
	}
	return &it.node.key
}

// Next moves to the successor. Next of End is Begin.
func (it Iterator[K]) Next() Iterator[K] {
	if it.node == nil {
		return it
	}
	return Iterator[K]{node: it.node.succ()}
}

// Prev moves to the predecessor. Prev of Begin is End
// and Prev of End is the maximum.
func (it Iterator[K]) Prev() Iterator[K] {
	if it.node == nil {
		return it
	}
	return Iterator[K]{node: it.node.pred()}
}

func (it Iterator[K]) IsEnd() bool {
	return it.node == nil || it.node.isHead()
}

func (it Iterator[K]) Equal(other Iterator[K]) bool {
	return it.node == other.node
}
