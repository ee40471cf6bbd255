package tree

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var (
	errRedViolation     = errors.New("rbtree red violation")
	errBlackViolation   = errors.New("rbtree black violation")
	errHeadViolation    = errors.New("rbtree head violation")
	errRootViolation    = errors.New("rbtree root violation")
	errLinkViolation    = errors.New("rbtree parent link violation")
	errOrderViolation   = errors.New("rbtree order violation")
	errExtremeViolation = errors.New("rbtree extreme violation")
	errCountViolation   = errors.New("rbtree count violation")
)

// rbtree rule validation utilities.

// References:
// https://github1s.com/minghu6/rust-minghu6/blob/master/coll_st/src/bst/rb.rs

// blackHeight counts the black nodes from node down to any nil leaf, the
// node itself excluded. The nil leaf is 0.
// Returns -1 if the left and right subtrees disagree.
func blackHeight[K any](node *rbNode[K]) int {
	if node == nil {
		return 0
	}
	lh, rh := blackHeight(node.left), blackHeight(node.right)
	if lh == -1 || rh == -1 {
		return -1
	}
	if node.left != nil && node.left.color == Black {
		lh++
	}
	if node.right != nil && node.right.color == Black {
		rh++
	}
	if lh != rh {
		return -1
	}
	return lh
}

// Inorder traversal to find a red node with a red child.
func redViolation[K any](root *rbNode[K]) bool {
	stack := make([]*rbNode[K], 0, 64)
	defer func() {
		clear(stack)
	}()

	aux := root
	for ; aux != nil; aux = aux.left {
		stack = append(stack, aux)
	}
	for size := len(stack); size > 0; size = len(stack) {
		aux = stack[size-1]
		stack = stack[:size-1]
		if aux.isRed() && (aux.left.isRed() || aux.right.isRed()) {
			return true
		}
		for aux = aux.right; aux != nil; aux = aux.left {
			stack = append(stack, aux)
		}
	}
	return false
}

func asRBTree[K any](tree OrderedTree[K]) *rbTree[K] {
	t, ok := tree.(*rbTree[K])
	if !ok || t == nil {
		return nil
	}
	return t
}

// BlackHeight returns the black height of the root, or -1 if any
// subtree violates the equal black depth rule.
func BlackHeight[K any](tree OrderedTree[K]) int {
	t := asRBTree(tree)
	if t == nil {
		return -1
	}
	return blackHeight(t.root())
}

func RedViolationValidate[K any](tree OrderedTree[K]) error {
	t := asRBTree(tree)
	if t == nil {
		return nil
	}
	if redViolation(t.root()) {
		return errRedViolation
	}
	return nil
}

/*
<X> is a RED node.
[X] is a BLACK node (or NIL).

	        [13]
			/  \
		 <8>    [15]
		 / \    /  \
	  [6] [11] [14] [17]
	  /              /
	<1>            [16]

2-3-4 tree like:

	       <8> --- [13] --- <15>
		  /  \             /    \
		 /    \           /      \
	  <1>-[6][11]      [14] <16>-[17]

Each leaf node to root node black depth are equal.
*/
func BlackViolationValidate[K any](tree OrderedTree[K]) error {
	t := asRBTree(tree)
	if t == nil {
		return nil
	}
	if blackHeight(t.root()) == -1 {
		return errBlackViolation
	}
	return nil
}

func (tree *rbTree[K]) CheckTree() bool {
	if tree.head == nil || tree.head.color != Red {
		return false
	}
	root := tree.root()
	if root == nil {
		return true
	}
	if root.color != Black {
		return false
	}
	return !redViolation(root) && blackHeight(root) != -1
}

// Validate walks the whole tree, it is much slower than CheckTree.
func (tree *rbTree[K]) Validate() error {
	var merr error
	if tree.head == nil || tree.head.color != Red {
		return errHeadViolation
	}

	root := tree.root()
	if root == nil {
		if tree.head.left != tree.head || tree.head.right != tree.head {
			merr = multierr.Append(merr, errors.Wrap(errExtremeViolation, "empty tree"))
		}
		if tree.count != 0 {
			merr = multierr.Append(merr, errors.Wrapf(errCountViolation, "empty tree with count %d", tree.count))
		}
		return tree.reportViolations(merr)
	}

	if root.color != Black {
		merr = multierr.Append(merr, errRootViolation)
	}
	if root.parent != tree.head {
		merr = multierr.Append(merr, errors.Wrap(errLinkViolation, "root"))
	}
	if redViolation(root) {
		merr = multierr.Append(merr, errRedViolation)
	}
	if blackHeight(root) == -1 {
		merr = multierr.Append(merr, errBlackViolation)
	}
	if tree.head.left != root.minimum() {
		merr = multierr.Append(merr, errors.Wrap(errExtremeViolation, "minimum"))
	}
	if tree.head.right != root.maximum() {
		merr = multierr.Append(merr, errors.Wrap(errExtremeViolation, "maximum"))
	}

	// Preorder, checks links and counts nodes.
	nodes := int64(0)
	linkBroken, orderBroken := false, false
	stack := make([]*rbNode[K], 0, 64)
	defer func() {
		clear(stack)
	}()
	stack = append(stack, root)
	for size := len(stack); size > 0; size = len(stack) {
		aux := stack[size-1]
		stack = stack[:size-1]
		nodes++
		if l := aux.left; l != nil {
			linkBroken = linkBroken || l.parent != aux
			orderBroken = orderBroken || tree.less(aux.key, l.key)
			stack = append(stack, l)
		}
		if r := aux.right; r != nil {
			linkBroken = linkBroken || r.parent != aux
			orderBroken = orderBroken || tree.less(r.key, aux.key)
			stack = append(stack, r)
		}
	}
	if linkBroken {
		merr = multierr.Append(merr, errLinkViolation)
	}
	if orderBroken {
		merr = multierr.Append(merr, errOrderViolation)
	}
	if nodes != tree.count {
		merr = multierr.Append(merr, errors.Wrapf(errCountViolation, "count %d, nodes %d", tree.count, nodes))
	}
	return tree.reportViolations(merr)
}

func (tree *rbTree[K]) reportViolations(merr error) error {
	if merr != nil {
		tree.logger.Warn("invalid rbtree",
			zap.Int64("size", tree.count),
			zap.Error(merr),
		)
	}
	return merr
}
