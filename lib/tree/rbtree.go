package tree

import (
	"math"
	"unsafe"

	"go.uber.org/zap"

	"github.com/benz9527/xcontainers/lib/infra"
)

var _ OrderedTree[int] = (*rbTree[int])(nil) // Type check assertion

type rbTree[K any] struct {
	head           *rbNode[K]
	count          int64
	less           infra.Less[K]
	isRmBorrowPred bool
	logger         *zap.Logger
}

func (tree *rbTree[K]) root() *rbNode[K] {
	return tree.head.parent
}

func (tree *rbTree[K]) resetHead() {
	tree.head.parent = nil
	tree.head.left = tree.head
	tree.head.right = tree.head
}

func (tree *rbTree[K]) Len() int64 {
	return tree.count
}

func (tree *rbTree[K]) Empty() bool {
	return tree.count == 0
}

// MaxSize is half of the address space, minus the tree itself and its
// head node, divided by the node size.
func (tree *rbTree[K]) MaxSize() int64 {
	nodeSize := int64(unsafe.Sizeof(rbNode[K]{}))
	treeSize := int64(unsafe.Sizeof(rbTree[K]{}))
	return (math.MaxInt64/2 - treeSize - nodeSize) / nodeSize
}

func (tree *rbTree[K]) Begin() Iterator[K] {
	return Iterator[K]{node: tree.head.left}
}

func (tree *rbTree[K]) End() Iterator[K] {
	return Iterator[K]{node: tree.head}
}

func (tree *rbTree[K]) RBegin() Iterator[K] {
	return Iterator[K]{node: tree.head.right}
}

func (tree *rbTree[K]) Foreach(action func(idx int64, key K) bool) {
	idx := int64(0)
	for aux := tree.head.left; aux != tree.head; aux = aux.succ() {
		if !action(idx, aux.key) {
			return
		}
		idx++
	}
}

// References:
// https://elixir.bootlin.com/linux/latest/source/lib/rbtree.c
// rbtree properties:
// https://en.wikipedia.org/wiki/Red%E2%80%93black_tree#Properties
// p1. Every node is either red or black.
// p2. All NIL nodes are considered black.
// p3. A red node does not have a red child. (red-violation)
// p4. Every path from a given node to any of its descendant
//   NIL nodes goes through the same number of black nodes. (black-violation)
// p5. The root is black.
// p6. The head is red, it is never the root.
// (Conclusion) If a node X has exactly one child, it must be a red child,
//   because if it were black, its NIL descendants would sit at a different
//   black depth than X's NIL child, violating p4.

/*
		 |                         |
		 X                         S
		/ \     leftRotate(X)     / \
	   L   S    ============>    X   Sd
		  / \                   / \
		Sc   Sd                L   Sc
*/
func (tree *rbTree[K]) leftRotate(x *rbNode[K]) {
	if x == nil || x.right == nil {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] left rotate node x is nil or x.right is nil")
	}

	y := x.right
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	y.parent = x.parent
	// The root check must go first, the head may cache the root as its left or right.
	switch {
	case x == tree.root():
		tree.head.parent = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

/*
			 |                         |
			 X                         S
			/ \     rightRotate(S)    / \
	       L   S    <============    X   R
			  / \                   / \
			Sc   Sd               Sc   Sd
*/
func (tree *rbTree[K]) rightRotate(x *rbNode[K]) {
	if x == nil || x.left == nil {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] right rotate node x is nil or x.left is nil")
	}

	y := x.left
	x.left = y.right
	if y.right != nil {
		y.right.parent = x
	}
	y.parent = x.parent
	switch {
	case x == tree.root():
		tree.head.parent = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}
	y.right = x
	x.parent = y
}

func (tree *rbTree[K]) Insert(key K) Iterator[K] {
	it, _ := tree.insert(&rbNode[K]{key: key}, false)
	return it
}

func (tree *rbTree[K]) InsertUnique(key K) (Iterator[K], bool) {
	return tree.insert(&rbNode[K]{key: key}, true)
}

func (tree *rbTree[K]) Emplace(keys ...K) []InsertResult[K] {
	res := make([]InsertResult[K], 0, len(keys))
	for _, key := range keys {
		res = append(res, InsertResult[K]{Iter: tree.Insert(key), Inserted: true})
	}
	return res
}

func (tree *rbTree[K]) EmplaceUnique(keys ...K) []InsertResult[K] {
	res := make([]InsertResult[K], 0, len(keys))
	for _, key := range keys {
		it, ok := tree.InsertUnique(key)
		res = append(res, InsertResult[K]{Iter: it, Inserted: ok})
	}
	return res
}

// i1: Empty rbtree, the new node becomes the root and is painted black.
// i2: Equivalent key found and unique only, report the existing node.
// i3: Attach a red leaf. Equivalent keys go right, after all the existing
// equivalent keys.
func (tree *rbTree[K]) insert(z *rbNode[K], uniqueOnly bool) (Iterator[K], bool) {
	var (
		y      *rbNode[K]
		toLeft bool
	)
	for x := tree.root(); x != nil; {
		y = x
		if toLeft = tree.less(z.key, x.key); toLeft {
			x = x.left
		} else if /* i2 */ uniqueOnly && !tree.less(x.key, z.key) {
			return Iterator[K]{node: x}, false
		} else {
			x = x.right
		}
	}

	z.left, z.right, z.color = nil, nil, Red
	if /* i1 */ y == nil {
		z.color = Black
		z.parent = tree.head
		tree.head.parent = z
	} else /* i3 */ {
		z.parent = y
		if toLeft {
			y.left = z
		} else {
			y.right = z
		}
	}
	tree.count++

	// A new minimum is always attached as the left child of the old one.
	if tree.head.left == tree.head || tree.head.left.left != nil {
		tree.head.left = z
	}
	if tree.head.right == tree.head || tree.head.right.right != nil {
		tree.head.right = z
	}

	tree.insertRebalance(z)
	return Iterator[K]{node: z}, true
}

/*
New node X is red by default.

<X> is a RED node.
[X] is a BLACK node (or NIL).
{X} is either a RED node or a BLACK node.

Only a red parent P is a red-violation. P can not be the root, so the
grandpa G exists and it is black.

im1: The uncle U is red.
Repaint P and U into black, G into red. G may be a red-violation now,
continue to fix G.

	    [G]             <G>
	    / \             / \
	  <P> <U>  ====>  [P] [U]
	  /               /
	<X>             <X>

im2: The uncle U is black and X is the inner child (opposite direction to P).
Rotate P to the X's direction. P becomes the outer child, enter im3 to fix.

	  [G]                 [G]
	  / \    rotate(P)    / \
	<P> [U]  ========>  <X> [U]
	  \                 /
	  <X>             <P>

im3: The uncle U is black and X is the outer child (same direction as P).
Rotate G to the U's direction and repaint. Balanced.

	    [G]                 <P>               [P]
	    / \    rotate(G)    / \    repaint    / \
	  <P> [U]  ========>  <X> [G]  ======>  <X> <G>
	  /                         \                 \
	<X>                         [U]               [U]
*/
func (tree *rbTree[K]) insertRebalance(x *rbNode[K]) {
	for x != tree.root() && x.parent.isRed() {
		p := x.parent
		gp := p.parent
		if p == gp.left {
			if u := gp.right; /* im1 */ u.isRed() {
				p.color, u.color, gp.color = Black, Black, Red
				x = gp
				continue
			}
			if /* im2 */ x == p.right {
				tree.leftRotate(p)
				x, p = p, x
			}
			/* im3 */
			tree.rightRotate(gp)
		} else {
			if u := gp.left; /* im1 */ u.isRed() {
				p.color, u.color, gp.color = Black, Black, Red
				x = gp
				continue
			}
			if /* im2 */ x == p.left {
				tree.rightRotate(p)
				x, p = p, x
			}
			/* im3 */
			tree.leftRotate(gp)
		}
		p.color, gp.color = Black, Red
		break
	}
	tree.root().color = Black
}

// Erase
func (tree *rbTree[K]) Erase(it Iterator[K]) {
	_ = tree.extract(it.node)
}

func (tree *rbTree[K]) EraseKey(key K) int64 {
	removed := int64(0)
	lower, upper := tree.EqualRange(key)
	for it := lower; it != upper; removed++ {
		next := it.Next()
		tree.Erase(it)
		it = next
	}
	return removed
}

/*
r1: Z has left and right node.
Swap Z with its succ (or pred) S, the whole position (links and color)
instead of the key. The key stays in its node, so the iterators to S
remain valid. Now Z has one child at most.

	  |                    |
	  Z                    S
	 / \                  / \
	L  ..   swap(Z, S)   L  ..
		|   =========>       |
		P                    P
	   / \                  / \
	  S  ..                Z  ..

r2: Z is black and has exactly one child C. C must be a red leaf
(see conclusion). Swap Z and C, Z becomes a red leaf.

r3: (1) Z is a red leaf node, detach directly.

r3: (2) Z is a black leaf node. Detaching it is a black-violation,
rebalance before detaching.
*/
func (tree *rbTree[K]) extract(z *rbNode[K]) *rbNode[K] {
	if z == nil || z.isHead() {
		return nil
	}

	if /* r1 */ z.left != nil && z.right != nil {
		var y *rbNode[K]
		if tree.isRmBorrowPred {
			y = z.left.maximum()
		} else {
			y = z.right.minimum()
		}
		tree.swapNodes(z, y)
	}

	if /* r2 */ z.isBlack() && (z.left == nil) != (z.right == nil) {
		c := z.left
		if c == nil {
			c = z.right
		}
		tree.swapNodes(z, c)
	}

	if /* r3 (2) */ z.isBlack() && z.left == nil && z.right == nil {
		tree.removeRebalance(z)
	}

	if z == tree.root() {
		tree.resetHead()
	} else {
		if z == z.parent.left {
			z.parent.left = nil
		} else {
			z.parent.right = nil
		}
		if tree.head.left == z {
			tree.head.left = tree.root().minimum()
		}
		if tree.head.right == z {
			tree.head.right = tree.root().maximum()
		}
	}

	tree.count--
	z.reset()
	return z
}

// swapNodes exchanges the positions of x and its descendant y.
// y may be a direct child of x, then the first assignment makes x point to
// itself for a moment and the fixLink calls repair it.
func (tree *rbTree[K]) swapNodes(x, y *rbNode[K]) {
	if y == y.parent.left {
		y.parent.left = x
	} else {
		y.parent.right = x
	}
	switch {
	case x == tree.root():
		tree.head.parent = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}

	x.parent, y.parent = y.parent, x.parent
	x.left, y.left = y.left, x.left
	x.right, y.right = y.right, x.right
	x.color, y.color = y.color, x.color

	x.fixLink()
	y.fixLink()
}

/*
<X> is a RED node.
[X] is a BLACK node (or NIL).
{X} is either a RED node or a BLACK node.

X is the black leaf to be removed (or the node carrying the double black).
Sc is the sibling's child on the X's side (near nephew).
Sd is the sibling's child on the opposite side (far nephew).

rm1: The sibling S is red, so P, Sc and Sd are black.
Swap the colors of S and P, rotate P to the X's direction.
X gets a black sibling, continue with rm2, rm3, rm4 or rm5.

	  [P]                   <S>               [S]
	  / \    l-rotate(P)    / \    repaint    / \
	[X] <S>  ==========>  [P] [Sd]  =====>  <P> [Sd]
	    / \               / \               / \
	 [Sc] [Sd]          [X] [Sc]          [X] [Sc]

rm2: S, Sc and Sd are black but P is red.
Repaint S into red and P into black. Balanced.

	  <P>             [P]
	  / \             / \
	[X] [S]  ====>  [X] <S>
	    / \             / \
	 [Sc] [Sd]       [Sc] [Sd]

rm3: P, S, Sc and Sd are black.
Repaint S into red, P's paths are one black short now, continue to fix P.

rm4: S is black, Sc is red and Sd is black.
Swap the colors of S and Sc, rotate S to the opposite direction of X.
Sc becomes the new sibling with a red far child, enter rm5.

	  {P}                   {P}
	  / \    r-rotate(S)    / \
	[X] [S]  ==========>  [X] [Sc]
	    / \                      \
	  <Sc> [Sd]                  <S>
	                               \
	                               [Sd]

rm5: S is black and Sd is red.
S takes P's color, P and Sd are painted black, rotate P to the X's direction.
Balanced.

	  {P}                   {S}
	  / \    l-rotate(P)    / \
	[X] [S]  ==========>  [P] [Sd]
	    / \               / \
	 {Sc} <Sd>          [X] {Sc}
*/
func (tree *rbTree[K]) removeRebalance(x *rbNode[K]) {
	p := x.parent
	for x != tree.root() && x.isBlack() {
		if x == p.left {
			s := p.right
			if /* rm1 */ s.isRed() {
				s.color, p.color = p.color, s.color
				tree.leftRotate(p)
				s = p.right
			}
			if s.left.isBlack() && s.right.isBlack() {
				s.color = Red
				if /* rm2 */ p.isRed() {
					p.color = Black
					return
				}
				/* rm3 */
				x, p = p, p.parent
				continue
			}
			if /* rm4 */ s.right.isBlack() {
				s.color, s.left.color = s.left.color, s.color
				tree.rightRotate(s)
				s = p.right
			}
			/* rm5 */
			s.right.color = Black
			s.color = p.color
			p.color = Black
			tree.leftRotate(p)
			return
		}

		s := p.left
		if /* rm1 */ s.isRed() {
			s.color, p.color = p.color, s.color
			tree.rightRotate(p)
			s = p.left
		}
		if s.left.isBlack() && s.right.isBlack() {
			s.color = Red
			if /* rm2 */ p.isRed() {
				p.color = Black
				return
			}
			/* rm3 */
			x, p = p, p.parent
			continue
		}
		if /* rm4 */ s.left.isBlack() {
			s.color, s.right.color = s.right.color, s.color
			tree.leftRotate(s)
			s = p.left
		}
		/* rm5 */
		s.left.color = Black
		s.color = p.color
		p.color = Black
		tree.rightRotate(p)
		return
	}
}

func (tree *rbTree[K]) LowerBound(key K) Iterator[K] {
	res := tree.head
	for aux := tree.root(); aux != nil; {
		if !tree.less(aux.key, key) {
			res, aux = aux, aux.left
		} else {
			aux = aux.right
		}
	}
	return Iterator[K]{node: res}
}

func (tree *rbTree[K]) UpperBound(key K) Iterator[K] {
	res := tree.head
	for aux := tree.root(); aux != nil; {
		if tree.less(key, aux.key) {
			res, aux = aux, aux.left
		} else {
			aux = aux.right
		}
	}
	return Iterator[K]{node: res}
}

// Find relies on the equivalence instead of ==.
func (tree *rbTree[K]) Find(key K) Iterator[K] {
	it := tree.LowerBound(key)
	if it.node == tree.head || tree.less(key, it.node.key) {
		return tree.End()
	}
	return it
}

func (tree *rbTree[K]) Contains(key K) bool {
	return tree.Find(key).node != tree.head
}

func (tree *rbTree[K]) EqualRange(key K) (Iterator[K], Iterator[K]) {
	return tree.LowerBound(key), tree.UpperBound(key)
}

func (tree *rbTree[K]) Count(key K) int64 {
	count := int64(0)
	lower, upper := tree.EqualRange(key)
	for it := lower; it != upper; it = it.Next() {
		count++
	}
	return count
}

// drain detaches all nodes in sorted order without rebalancing, the tree
// ends empty. The detached nodes are going to be relinked anyway.
func (tree *rbTree[K]) drain() []*rbNode[K] {
	nodes := make([]*rbNode[K], 0, tree.count)
	for aux := tree.head.left; aux != tree.head; aux = aux.succ() {
		nodes = append(nodes, aux)
	}
	tree.resetHead()
	tree.count = 0
	return nodes
}

func (tree *rbTree[K]) Merge(other OrderedTree[K]) {
	src, ok := other.(*rbTree[K])
	if !ok || src == nil || src == tree {
		// avoid type mismatch and self merge
		return
	}

	nodes := src.drain()
	for _, node := range nodes {
		node.reset()
		tree.insert(node, false)
	}
	tree.logger.Debug("merge",
		zap.Int("moved", len(nodes)),
		zap.Int64("size", tree.count),
	)
}

func (tree *rbTree[K]) MergeUnique(other OrderedTree[K]) {
	src, ok := other.(*rbTree[K])
	if !ok || src == nil || src == tree {
		return
	}

	moved := int64(0)
	for it := src.Begin(); !it.IsEnd(); {
		if tree.Contains(it.node.key) {
			it = it.Next()
			continue
		}
		node := it.node
		it = it.Next()
		// src stays a valid rbtree, so extract it with rebalancing.
		// The succ node may be swapped into node's position, but it keeps
		// its key and the iterator is still valid.
		tree.insert(src.extract(node), false)
		moved++
	}
	tree.logger.Debug("merge unique",
		zap.Int64("moved", moved),
		zap.Int64("kept", src.count),
		zap.Int64("size", tree.count),
	)
}

func (tree *rbTree[K]) Swap(other OrderedTree[K]) {
	o, ok := other.(*rbTree[K])
	if !ok || o == nil || o == tree {
		return
	}
	tree.head, o.head = o.head, tree.head
	tree.count, o.count = o.count, tree.count
	tree.less, o.less = o.less, tree.less
	tree.isRmBorrowPred, o.isRmBorrowPred = o.isRmBorrowPred, tree.isRmBorrowPred
}

// copyNodes copies the subtree iteratively, colors included, so the copy
// is a valid rbtree without rebalancing.
func copyNodes[K any](root *rbNode[K]) *rbNode[K] {
	if root == nil {
		return nil
	}
	type pair struct {
		src, dst *rbNode[K]
	}

	dup := &rbNode[K]{key: root.key, color: root.color}
	stack := make([]pair, 0, 64)
	defer func() {
		clear(stack)
	}()
	stack = append(stack, pair{src: root, dst: dup})
	for size := len(stack); size > 0; size = len(stack) {
		aux := stack[size-1]
		stack = stack[:size-1]
		if l := aux.src.left; l != nil {
			aux.dst.left = &rbNode[K]{parent: aux.dst, key: l.key, color: l.color}
			stack = append(stack, pair{src: l, dst: aux.dst.left})
		}
		if r := aux.src.right; r != nil {
			aux.dst.right = &rbNode[K]{parent: aux.dst, key: r.key, color: r.color}
			stack = append(stack, pair{src: r, dst: aux.dst.right})
		}
	}
	return dup
}

func (tree *rbTree[K]) Clone() OrderedTree[K] {
	return tree.clone()
}

func (tree *rbTree[K]) clone() *rbTree[K] {
	dup := &rbTree[K]{
		head:           newHeadNode[K](),
		less:           tree.less,
		isRmBorrowPred: tree.isRmBorrowPred,
		logger:         tree.logger,
	}
	if root := copyNodes(tree.root()); root != nil {
		root.parent = dup.head
		dup.head.parent = root
		dup.head.left = root.minimum()
		dup.head.right = root.maximum()
		dup.count = tree.count
	}
	return dup
}

// CopyFrom builds the copy first and swaps it in, the tree is untouched
// until the copy is complete.
func (tree *rbTree[K]) CopyFrom(other OrderedTree[K]) {
	src, ok := other.(*rbTree[K])
	if !ok || src == nil || src == tree {
		return
	}
	dup := src.clone()
	tree.Swap(dup)
	dup.Clear()
}

func (tree *rbTree[K]) MoveFrom(other OrderedTree[K]) {
	src, ok := other.(*rbTree[K])
	if !ok || src == nil || src == tree {
		return
	}
	tree.Clear()
	tree.Swap(src)
}

// Clear unlinks every node by an inorder traversal with explicit stack.
func (tree *rbTree[K]) Clear() {
	aux := tree.root()
	released := tree.count
	tree.resetHead()
	tree.count = 0
	if aux == nil {
		return
	}

	stack := make([]*rbNode[K], 0, 64)
	defer func() {
		clear(stack)
	}()

	for ; aux != nil; aux = aux.left {
		stack = append(stack, aux)
	}
	for size := len(stack); size > 0; size = len(stack) {
		aux = stack[size-1]
		stack = stack[:size-1]
		r := aux.right
		aux.reset()
		for aux = r; aux != nil; aux = aux.left {
			stack = append(stack, aux)
		}
	}
	tree.logger.Debug("clear", zap.Int64("released", released))
}

type OrderedTreeOpt[K any] func(*rbTree[K])

// WithOrderedTreeDesc reverses the comparator.
func WithOrderedTreeDesc[K any]() OrderedTreeOpt[K] {
	return func(tree *rbTree[K]) {
		tree.less = infra.Reverse(tree.less)
	}
}

// WithOrderedTreeRemoveBorrowPred removes a node with two children by
// borrowing its pred position instead of its succ position.
func WithOrderedTreeRemoveBorrowPred[K any]() OrderedTreeOpt[K] {
	return func(tree *rbTree[K]) {
		tree.isRmBorrowPred = true
	}
}

func WithOrderedTreeLogger[K any](logger *zap.Logger) OrderedTreeOpt[K] {
	return func(tree *rbTree[K]) {
		if logger != nil {
			tree.logger = logger.Named("rbtree")
		}
	}
}

func NewOrderedTree[K infra.OrderedKey](opts ...OrderedTreeOpt[K]) OrderedTree[K] {
	return NewOrderedTreeFunc[K](infra.OrderedLess[K], opts...)
}

func NewOrderedTreeFunc[K any](less infra.Less[K], opts ...OrderedTreeOpt[K]) OrderedTree[K] {
	if less == nil {
		panic("[rbtree] nil less function")
	}
	tree := &rbTree[K]{
		head:   newHeadNode[K](),
		less:   less,
		logger: zap.NewNop(),
	}

	for _, o := range opts {
		if o != nil {
			o(tree)
		}
	}
	return tree
}
