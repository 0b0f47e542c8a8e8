package tree

var _ RBIterator[int] = (*rbIterator[int])(nil) // Type check assertion

// The nodes have no parent link, so the iterator keeps the path from the
// root down to (but excluding) the cursor.
// A nil cursor is the null position, both before the first and after the
// last element. Next from the null position starts at the minimum and
// Prev at the maximum.
type rbIterator[E any] struct {
	tree      *rbTree[E]
	ancestors []*rbNode[E]
	cursor    *rbNode[E]
}

func (tree *rbTree[E]) iterator() *rbIterator[E] {
	return &rbIterator[E]{
		tree:      tree,
		ancestors: make([]*rbNode[E], 0, 32),
	}
}

func (it *rbIterator[E]) Data() (res E, ok bool) {
	if it.cursor == nil {
		return res, false
	}
	return it.cursor.data, true
}

func (it *rbIterator[E]) push(node *rbNode[E]) {
	it.ancestors = append(it.ancestors, node)
}

func (it *rbIterator[E]) pop() *rbNode[E] {
	if len(it.ancestors) <= 0 {
		return nil
	}
	node := it.ancestors[len(it.ancestors)-1]
	it.ancestors[len(it.ancestors)-1] = nil
	it.ancestors = it.ancestors[:len(it.ancestors)-1]
	return node
}

// descend moves the cursor to the extreme node of the subtree in dir.
func (it *rbIterator[E]) descend(node *rbNode[E], dir RBDirection) {
	for ; node.child(dir) != nil; node = node.child(dir) {
		it.push(node)
	}
	it.cursor = node
}

func (it *rbIterator[E]) step(dir RBDirection) (res E, ok bool) {
	if it.cursor == nil {
		if it.tree.root == nil {
			return res, false
		}
		it.descend(it.tree.root, dir.opposite())
		return it.cursor.data, true
	}

	if sub := it.cursor.child(dir); sub != nil {
		it.push(it.cursor)
		it.descend(sub, dir.opposite())
		return it.cursor.data, true
	}

	// Climb up while coming from the dir side.
	child := it.cursor
	for {
		parent := it.pop()
		if parent == nil {
			it.cursor = nil
			return res, false
		}
		if parent.child(dir) != child {
			it.cursor = parent
			return parent.data, true
		}
		child = parent
	}
}

func (it *rbIterator[E]) Next() (E, bool) {
	return it.step(Right)
}

func (it *rbIterator[E]) Prev() (E, bool) {
	return it.step(Left)
}
