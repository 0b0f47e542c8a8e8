package tree

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/benz9527/xcoll/lib/infra"
)

var (
	ErrRBTreeRedViolation   = errors.New("rbtree red violation")
	ErrRBTreeBlackViolation = errors.New("rbtree black violation")
	ErrRBTreeOrderViolation = errors.New("rbtree order violation")
)

func isBlack[E any](node RBNode[E]) bool {
	return node == nil || node.Color() == Black
}

func isRed[E any](node RBNode[E]) bool {
	return node != nil && node.Color() == Red
}

// rbtree rule validation utilities.

// References:
// https://github1s.com/minghu6/rust-minghu6/blob/master/coll_st/src/bst/rb.rs

// Inorder traversal to validate the rbtree properties.
// Without parent link, a red node is checked against its children only,
// which covers every parent-child pair as well.
func RedViolationValidate[E any](tree RBTree[E]) error {
	size := tree.Len()
	var aux = tree.Root()
	if size < 0 || aux == nil {
		return nil
	}
	if isRed[E](aux) {
		return fmt.Errorf("%w: red root", ErrRBTreeRedViolation)
	}

	stack := make([]RBNode[E], 0, size>>1)
	defer func() {
		clear(stack)
	}()

	for ; aux != nil; aux = aux.Left() {
		stack = append(stack, aux)
	}

	for size = int64(len(stack)); size > 0; size = int64(len(stack)) {
		if aux = stack[size-1]; isRed[E](aux) {
			if isRed[E](aux.Left()) || isRed[E](aux.Right()) {
				return fmt.Errorf("%w: red node %v has a red child", ErrRBTreeRedViolation, aux.Data())
			}
		}

		stack = stack[:size-1]
		if aux.Right() != nil {
			for aux = aux.Right(); aux != nil; aux = aux.Left() {
				stack = append(stack, aux)
			}
		}
	}
	return nil
}

type rbDepthNode[E any] struct {
	node       RBNode[E]
	blackDepth int
}

// BFS traversal to load the black depth of all nodes with a NIL child.
func bfsLeaves[E any](tree RBTree[E]) []rbDepthNode[E] {
	size := tree.Len()
	var aux = tree.Root()
	if size < 0 || aux == nil {
		return nil
	}

	leaves := make([]rbDepthNode[E], 0, size>>1+1)
	queue := make([]rbDepthNode[E], 0, size>>1+1)
	defer func() {
		clear(queue)
	}()
	queue = append(queue, rbDepthNode[E]{node: aux, blackDepth: 1})

	for len(queue) > 0 {
		cur := queue[0]
		l, r := cur.node.Left(), cur.node.Right()
		if /* nil leaves, keep one */ l == nil || r == nil {
			leaves = append(leaves, cur)
		}
		for _, child := range []RBNode[E]{l, r} {
			if child == nil {
				continue
			}
			depth := cur.blackDepth
			if isBlack[E](child) {
				depth++
			}
			queue = append(queue, rbDepthNode[E]{node: child, blackDepth: depth})
		}
		queue = queue[1:]
	}
	return leaves
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
func BlackViolationValidate[E any](tree RBTree[E]) error {
	leaves := bfsLeaves[E](tree)
	if leaves == nil {
		return nil
	}

	blackDepth := leaves[0].blackDepth
	for i := 1; i < len(leaves); i++ {
		if leaves[i].blackDepth != blackDepth {
			return fmt.Errorf("%w: node %v black depth %d, expected %d",
				ErrRBTreeBlackViolation, leaves[i].node.Data(), leaves[i].blackDepth, blackDepth)
		}
	}
	return nil
}

// OrderViolationValidate checks the inorder sequence is strictly ascending
// by cmp and its length equals tree.Len().
func OrderViolationValidate[E any](tree RBTree[E], cmp infra.Comparator[E]) error {
	if cmp == nil {
		return infra.WrapErrorStackWithMessage(infra.ErrNilComparator, "[rbtree] order validate")
	}

	var (
		count int64
		prev  E
		err   error
	)
	tree.Each(func(e E) bool {
		if count > 0 && cmp(prev, e) >= 0 {
			err = fmt.Errorf("%w: %v is not less than %v", ErrRBTreeOrderViolation, prev, e)
			return false
		}
		prev = e
		count++
		return true
	})
	if err != nil {
		return err
	}
	if count != tree.Len() {
		return fmt.Errorf("%w: visited %d elements, len %d", ErrRBTreeOrderViolation, count, tree.Len())
	}
	return nil
}

func Validate[E any](tree RBTree[E], cmp infra.Comparator[E]) error {
	return multierr.Combine(
		RedViolationValidate[E](tree),
		BlackViolationValidate[E](tree),
		OrderViolationValidate[E](tree, cmp),
	)
}
