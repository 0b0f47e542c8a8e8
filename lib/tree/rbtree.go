package tree

import (
	"iter"

	"go.uber.org/zap"

	"github.com/benz9527/xcoll/lib/infra"
	"github.com/benz9527/xcoll/lib/xlog"
)

var _ RBTree[int] = (*rbTree[int])(nil) // Type check assertion

type rbNode[E any] struct {
	left  *rbNode[E]
	right *rbNode[E]
	data  E
	color RBColor
}

func (node *rbNode[E]) Data() E {
	return node.data
}

func (node *rbNode[E]) Color() RBColor {
	return node.color
}

func (node *rbNode[E]) Left() RBNode[E] {
	if node == nil || node.left == nil {
		return nil
	}
	return node.left
}

func (node *rbNode[E]) Right() RBNode[E] {
	if node == nil || node.right == nil {
		return nil
	}
	return node.right
}

// All NIL nodes are considered black.
func (node *rbNode[E]) isRed() bool {
	return node != nil && node.color == Red
}

func (node *rbNode[E]) child(dir RBDirection) *rbNode[E] {
	if dir == Right {
		return node.right
	}
	return node.left
}

func (node *rbNode[E]) setChild(dir RBDirection, child *rbNode[E]) {
	if dir == Right {
		node.right = child
		return
	}
	node.left = child
}

func (dir RBDirection) opposite() RBDirection {
	return -dir
}

func directionOf(right bool) RBDirection {
	if right {
		return Right
	}
	return Left
}

/*
X moves down to dir (right here), its opposite child S is the new subtree root.
X is painted red and S black.

	     |                        |
	     X                        S
	    / \    rotate(X, R)      / \
	   S   R   ===========>    Sl   X
	  / \                          / \
	Sl   Sr                      Sr   R
*/
func singleRotate[E any](x *rbNode[E], dir RBDirection) *rbNode[E] {
	s := x.child(dir.opposite())
	x.setChild(dir.opposite(), s.child(dir))
	s.setChild(dir, x)
	x.color = Red
	s.color = Black
	return s
}

/*
The inner grandchild C is lifted twice, first above S then above X.

	     |                           |                          |
	     X                           X                          C
	    / \    rotate(S, L)         / \    rotate(X, R)        / \
	   S   R   ===========>        C   R   ===========>       S   X
	  / \                         / \                        / \ / \
	Sl   C                       S   Cr                    Sl Cl Cr R
	    / \                     / \
	  Cl   Cr                 Sl   Cl
*/
func doubleRotate[E any](x *rbNode[E], dir RBDirection) *rbNode[E] {
	x.setChild(dir.opposite(), singleRotate(x.child(dir.opposite()), dir.opposite()))
	return singleRotate(x, dir)
}

type rbTree[E any] struct {
	root           *rbNode[E]
	compare        infra.Comparator[E]
	logger         xlog.XLogger
	count          int64
	isDesc         bool
	isRmBorrowSucc bool
}

func (tree *rbTree[E]) Len() int64 {
	return tree.count
}

func (tree *rbTree[E]) Root() RBNode[E] {
	if tree.root == nil {
		return nil
	}
	return tree.root
}

func (tree *rbTree[E]) Comparator() infra.Comparator[E] {
	return tree.compare
}

// References:
// https://web.archive.org/web/2014/http://eternallyconfuzzled.com/tuts/datastructures/jsw_tut_rbtree.aspx
// rbtree properties:
// https://en.wikipedia.org/wiki/Red%E2%80%93black_tree#Properties
// p1. Every node is either red or black.
// p2. All NIL nodes are considered black.
// p3. A red node does not have a red child. (red-violation)
// p4. Every path from a given node to any of its descendant
//   NIL nodes goes through the same number of black nodes. (black-violation)
// p5. The root is black.
//
// Both insert and remove are top-down: the rebalancing is done on the way
// down in a single pass, there is neither parent link nor bottom-up fix-up.
// A fake head above the root lets the rotations at the top be handled
// the same as everywhere else.

/*
i1: Empty rbtree, the new node becomes the black root.

i2: Color flip. Current node X is black with two red children, which
is a 4-node in the 2-3-4 tree. Split it before descending further.

	    [X]                <X>
	    / \    flip(X)     / \
	  <L> <R>  ======>   [L] [R]

i3: The flip (or the new red leaf) produces a red-violation between X
and its parent P. The grandparent G is black, rotate G from the
great-grandparent, single rotation for the outer grandchild and double
rotation for the inner grandchild.

	      [G]                   [P]
	      / \    rotate(G)      / \
	    <P> [U]  ========>    <X> <G>
	    /                           \
	  <X>                           [U]

i4: An equal element is found, stop without inserting.
*/
func (tree *rbTree[E]) Insert(e E) bool {
	if /* i1 */ tree.root == nil {
		tree.root = &rbNode[E]{
			data:  e,
			color: Black,
		}
		tree.count++
		return true
	}

	var (
		head      = &rbNode[E]{} // fake root
		ggp       = head         // great-grandparent
		gp, p     *rbNode[E]     // grandparent, parent
		x         = tree.root
		dir, last = Left, Left
		inserted  = false
	)
	head.right = tree.root

	for {
		if x == nil {
			x = &rbNode[E]{
				data:  e,
				color: Red,
			}
			p.setChild(dir, x)
			inserted = true
			tree.count++
		} else if /* i2 */ x.left.isRed() && x.right.isRed() {
			x.color = Red
			x.left.color = Black
			x.right.color = Black
		}

		if /* i3 */ x.isRed() && p.isRed() {
			dir2 := directionOf(ggp.right == gp)
			if x == p.child(last) {
				ggp.setChild(dir2, singleRotate(gp, last.opposite()))
			} else {
				ggp.setChild(dir2, doubleRotate(gp, last.opposite()))
			}
		}

		res := tree.compare(e, x.data)
		if /* i4 */ res == 0 {
			break
		}

		last, dir = dir, directionOf(res > 0)
		if gp != nil {
			ggp = gp
		}
		gp, p, x = p, x, x.child(dir)
	}

	tree.root = head.right
	tree.root.color = Black
	return inserted
}

/*
The search goes down with a red node pushed along the path, so that the
node finally unlinked is red or has a red child. When the element is
found, it keeps being the target of the search, the descent continues to
its pred (or succ) whose data replaces the found one, then the pred (succ)
node is spliced out.

<X> is a RED node.
[X] is a BLACK node (or NIL).

rm1: X and its next child on the path are black, but the other child C is
red. Rotate X toward the path, the red C becomes X's parent and X red.

	      [X]                      [C]
	      / \     rotate(X, R)     / \
	    <C> [N]   ===========>   ..  <X>
	                                   \
	                                   [N]

rm2: X, both X's children and the sibling S's children are black.
Color flip, merge P, X and S into a 4-node.

	      <P>              [P]
	      / \              / \
	    [X] [S]  ====>   <X> <S>
	        / \              / \
	     [Sc] [Sd]        [Sc] [Sd]

rm3: X and both X's children are black, one of S's children is red.
Rotate P from the grandparent, double rotation if the red child is the
inner one, then repaint the new subtree root red with black children.

	      <P>                      <Sd>                 <S>
	      / \    rotate(P)         / \                  / \
	    [X] [S]  ========>  or   [P] [S]     or       [P] [Sd]
	        / \                  /     \              /
	     <Sc> {Sd}             <X>     {Sd}         <X>
*/
func (tree *rbTree[E]) Remove(e E) bool {
	if tree.root == nil {
		return false
	}

	var (
		head      = &rbNode[E]{} // fake root
		x         = head
		p, gp     *rbNode[E]
		found     *rbNode[E]
		dir, last = Right, Right
	)
	head.right = tree.root

	for x.child(dir) != nil {
		last = dir
		gp, p, x = p, x, x.child(dir)

		res := tree.compare(e, x.data)
		if res == 0 {
			found = x
		}
		if tree.isRmBorrowSucc {
			dir = directionOf(res >= 0)
		} else {
			dir = directionOf(res > 0)
		}

		// Push the red node down.
		if x.isRed() || x.child(dir).isRed() {
			continue
		}
		if /* rm1 */ x.child(dir.opposite()).isRed() {
			s := singleRotate(x, dir)
			p.setChild(last, s)
			p = s
			continue
		}
		s := p.child(last.opposite())
		if s == nil {
			continue
		}
		if /* rm2 */ !s.left.isRed() && !s.right.isRed() {
			p.color = Black
			s.color = Red
			x.color = Red
			continue
		}
		/* rm3 */
		dir2 := directionOf(gp.right == p)
		if s.child(last).isRed() {
			gp.setChild(dir2, doubleRotate(p, last))
		} else if s.child(last.opposite()).isRed() {
			gp.setChild(dir2, singleRotate(p, last))
		}
		// Ensure correct coloring.
		sub := gp.child(dir2)
		sub.color = Red
		x.color = Red
		sub.left.color = Black
		sub.right.color = Black
	}

	if found != nil {
		found.data = x.data
		p.setChild(directionOf(p.right == x), x.child(directionOf(x.left == nil)))
		x.left, x.right = nil, nil
		tree.count--
	}

	tree.root = head.right
	if tree.root != nil {
		tree.root.color = Black
	}
	return found != nil
}

func (tree *rbTree[E]) RemoveMin() (E, bool) {
	e, ok := tree.Min()
	if !ok {
		return e, false
	}
	return e, tree.Remove(e)
}

func (tree *rbTree[E]) search(e E) *rbNode[E] {
	for aux := tree.root; aux != nil; {
		res := tree.compare(e, aux.data)
		if res == 0 {
			return aux
		}
		aux = aux.child(directionOf(res > 0))
	}
	return nil
}

func (tree *rbTree[E]) Find(e E) (res E, ok bool) {
	if node := tree.search(e); node != nil {
		return node.data, true
	}
	return res, false
}

func (tree *rbTree[E]) FindIter(e E) (RBIterator[E], bool) {
	it := tree.iterator()
	for aux := tree.root; aux != nil; {
		res := tree.compare(e, aux.data)
		if res == 0 {
			it.cursor = aux
			return it, true
		}
		it.ancestors = append(it.ancestors, aux)
		aux = aux.child(directionOf(res > 0))
	}
	return nil, false
}

func (tree *rbTree[E]) Min() (res E, ok bool) {
	if tree.root == nil {
		return res, false
	}
	aux := tree.root
	for ; aux.left != nil; aux = aux.left {
	}
	return aux.data, true
}

func (tree *rbTree[E]) Max() (res E, ok bool) {
	if tree.root == nil {
		return res, false
	}
	aux := tree.root
	for ; aux.right != nil; aux = aux.right {
	}
	return aux.data, true
}

func (tree *rbTree[E]) LowerBound(e E) RBIterator[E] {
	it := tree.iterator()
	for aux := tree.root; aux != nil; {
		res := tree.compare(e, aux.data)
		if res == 0 {
			it.cursor = aux
			return it
		}
		it.ancestors = append(it.ancestors, aux)
		aux = aux.child(directionOf(res > 0))
	}

	// Backtrack to the nearest ancestor greater than e.
	for i := len(it.ancestors) - 1; i >= 0; i-- {
		if aux := it.ancestors[i]; tree.compare(e, aux.data) < 0 {
			it.cursor = aux
			it.ancestors = it.ancestors[:i]
			return it
		}
	}
	clear(it.ancestors)
	it.ancestors = it.ancestors[:0]
	return it
}

func (tree *rbTree[E]) UpperBound(e E) RBIterator[E] {
	it := tree.LowerBound(e)
	for data, ok := it.Data(); ok && tree.compare(data, e) == 0; data, ok = it.Data() {
		it.Next()
	}
	return it
}

func (tree *rbTree[E]) Iterator() RBIterator[E] {
	return tree.iterator()
}

func (tree *rbTree[E]) Each(fn func(e E) bool) {
	it := tree.iterator()
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		if !fn(e) {
			return
		}
	}
}

func (tree *rbTree[E]) Reach(fn func(e E) bool) {
	it := tree.iterator()
	for e, ok := it.Prev(); ok; e, ok = it.Prev() {
		if !fn(e) {
			return
		}
	}
}

func (tree *rbTree[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		tree.Each(yield)
	}
}

func (tree *rbTree[E]) Backward() iter.Seq[E] {
	return func(yield func(E) bool) {
		tree.Reach(yield)
	}
}

// Clear releases the whole tree at once, the nodes are collected by GC.
// Iterators obtained before are invalid.
func (tree *rbTree[E]) Clear() {
	tree.root = nil
	tree.count = 0
}

type RBTreeOpt[E any] func(*rbTree[E])

// WithRBTreeDesc reverses the comparator, the minimum becomes the greatest element.
func WithRBTreeDesc[E any]() RBTreeOpt[E] {
	return func(tree *rbTree[E]) {
		tree.isDesc = true
	}
}

// WithRBTreeRemoveBorrowSucc makes Remove take the successor of the removed
// element as the replacement instead of the predecessor.
func WithRBTreeRemoveBorrowSucc[E any]() RBTreeOpt[E] {
	return func(tree *rbTree[E]) {
		tree.isRmBorrowSucc = true
	}
}

func WithRBTreeLogger[E any](logger xlog.XLogger) RBTreeOpt[E] {
	return func(tree *rbTree[E]) {
		if logger != nil {
			tree.logger = logger
		}
	}
}

// NewRBTree panics if cmp is nil.
func NewRBTree[E any](cmp infra.Comparator[E], opts ...RBTreeOpt[E]) RBTree[E] {
	tree := &rbTree[E]{
		compare:        cmp,
		logger:         xlog.NewNopXLogger(),
		count:          0,
		isDesc:         false,
		isRmBorrowSucc: false,
	}

	for _, o := range opts {
		if o != nil {
			o(tree)
		}
	}

	if tree.compare == nil {
		err := infra.WrapErrorStackWithMessage(infra.ErrNilComparator, "[rbtree] new tree")
		tree.logger.ErrorStack(err, "[rbtree] unable to order elements",
			zap.Bool("desc", tree.isDesc),
		)
		panic(err)
	}
	if tree.isDesc {
		tree.compare = infra.ReverseComparator(tree.compare)
	}
	return tree
}

func NewOrderedRBTree[K infra.OrderedKey](opts ...RBTreeOpt[K]) RBTree[K] {
	return NewRBTree[K](infra.OrderedKeyCompare[K], opts...)
}
