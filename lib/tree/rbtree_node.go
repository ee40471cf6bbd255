package tree

type rbNode[K any] struct {
	parent *rbNode[K]
	left   *rbNode[K]
	right  *rbNode[K]
	key    K
	color  RBColor
}

// The head node is allocated with the tree and never holds a key.
//
//	head.parent => root (nil if empty)
//	head.left   => minimum (head if empty)
//	head.right  => maximum (head if empty)
//
// It is always red while the root is always black, so the head is the only
// red node whose parent (the root) points back to it.
func newHeadNode[K any]() *rbNode[K] {
	head := &rbNode[K]{color: Red}
	head.left, head.right = head, head
	return head
}

func (node *rbNode[K]) isHead() bool {
	return node.color == Red && (node.parent == nil || node.parent.parent == node)
}

func (node *rbNode[K]) isRed() bool {
	return node != nil && node.color == Red
}

// NIL leaves are black.
func (node *rbNode[K]) isBlack() bool {
	return node == nil || node.color == Black
}

func (node *rbNode[K]) fixLink() {
	if node.left != nil {
		node.left.parent = node
	}
	if node.right != nil {
		node.right.parent = node
	}
}

func (node *rbNode[K]) reset() {
	node.parent = nil
	node.left = nil
	node.right = nil
	node.color = Red
}

func (node *rbNode[K]) minimum() *rbNode[K] {
	aux := node
	for ; aux != nil && aux.left != nil; aux = aux.left {
	}
	return aux
}

func (node *rbNode[K]) maximum() *rbNode[K] {
	aux := node
	for ; aux != nil && aux.right != nil; aux = aux.right {
	}
	return aux
}

// The succ node of the current node is its next node in sorted order.
// The succ of the maximum is the head and the succ of the head is the
// minimum, so the traversal is circular.
func (node *rbNode[K]) succ() *rbNode[K] {
	x := node
	if x.isHead() {
		return x.left
	}
	if x.right != nil {
		return x.right.minimum()
	}

	p := x.parent
	// Backtrack to father node that is the x's succ.
	for x == p.right {
		x, p = p, p.parent
	}
	// Climbing from the maximum ends at the head with p as the root.
	// Only then x.right (the cached maximum) can not be p's parent.
	if x.right != p {
		x = p
	}
	return x
}

// The pred node of the current node is its previous node in sorted order.
// The pred of the minimum is the head and the pred of the head is the maximum.
func (node *rbNode[K]) pred() *rbNode[K] {
	x := node
	if x.isHead() {
		return x.right
	}
	if x.left != nil {
		return x.left.maximum()
	}

	p := x.parent
	// Backtrack to father node that is the x's pred.
	for x == p.left {
		x, p = p, p.parent
	}
	if x.left != p {
		x = p
	}
	return x
}
