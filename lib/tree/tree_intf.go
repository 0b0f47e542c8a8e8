package tree

import (
	"iter"

	"github.com/benz9527/xcoll/lib/infra"
)

// go install golang.org/x/tools/cmd/stringer@latest

//go:generate stringer -type=RBColor
type RBColor uint8

const (
	Black RBColor = iota
	Red
)

//go:generate stringer -type=RBDirection
type RBDirection int8

const (
	Left RBDirection = -1 + iota
	Root
	Right
)

// RBNode is the read-only view of a tree node.
// There is no parent link, ancestry is tracked by the traversal itself.
type RBNode[E any] interface {
	Data() E
	Color() RBColor
	Left() RBNode[E]
	Right() RBNode[E]
}

// RBIterator is a resumable cursor over the tree.
// A new iterator stays in the null position, Next moves it to the minimum
// and Prev moves it to the maximum.
// The tree must not be modified while an iterator is in use.
type RBIterator[E any] interface {
	// Data returns the element under the cursor without moving it.
	Data() (E, bool)
	Next() (E, bool)
	Prev() (E, bool)
}

type RBTree[E any] interface {
	Len() int64
	Root() RBNode[E]
	Comparator() infra.Comparator[E]
	// Insert returns false if an equal element exists, the tree is unchanged.
	Insert(e E) bool
	// Remove returns false if the element is not found.
	Remove(e E) bool
	RemoveMin() (E, bool)
	Find(e E) (E, bool)
	FindIter(e E) (RBIterator[E], bool)
	Min() (E, bool)
	Max() (E, bool)
	// LowerBound positions the iterator at the first element >= e.
	LowerBound(e E) RBIterator[E]
	// UpperBound positions the iterator at the first element > e.
	UpperBound(e E) RBIterator[E]
	Iterator() RBIterator[E]
	// Each calls fn in order until it returns false.
	Each(fn func(e E) bool)
	// Reach calls fn in reverse order until it returns false.
	Reach(fn func(e E) bool)
	All() iter.Seq[E]
	Backward() iter.Seq[E]
	Clear()
}
