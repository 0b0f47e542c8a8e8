package list

import (
	"errors"
	"fmt"
	"strings"

	"github.com/benz9527/xcoll/lib/infra"
)

var _ LinkedList[struct{}] = (*doublyLinkedList[struct{}])(nil) // Type check assertion

var (
	ErrEmptyList       = errors.New("empty list")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// The root is a sentinel, the list is circular through it.
//
//	  +--------------------------------------+
//	  v                                      |
//	[root] <-> [e0] <-> [e1] <-> ... <-> [eN-1]
//	  |                                      ^
//	  +--------------------------------------+
type doublyLinkedList[T any] struct {
	root *NodeElement[T]
	len  int64
}

func NewLinkedList[T any]() LinkedList[T] {
	return new(doublyLinkedList[T]).init()
}

func (l *doublyLinkedList[T]) init() *doublyLinkedList[T] {
	l.root = &NodeElement[T]{
		listRef: l,
	}
	l.root.next = l.root
	l.root.prev = l.root
	l.len = 0
	return l
}

func (l *doublyLinkedList[T]) Len() int64 {
	return l.len
}

func (l *doublyLinkedList[T]) contains(e *NodeElement[T]) bool {
	return e != nil && e != l.root && e.listRef == l && e.prev != nil && e.next != nil
}

// link puts e just after at.
func (l *doublyLinkedList[T]) link(e, at *NodeElement[T]) *NodeElement[T] {
	e.listRef = l
	e.prev = at
	e.next = at.next
	e.prev.next = e
	e.next.prev = e
	l.len++
	return e
}

func (l *doublyLinkedList[T]) unlink(e *NodeElement[T]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	l.len--
}

func (l *doublyLinkedList[T]) move(src, at *NodeElement[T]) bool {
	if src == at {
		return false
	}
	src.prev.next = src.next
	src.next.prev = src.prev

	src.prev = at
	src.next = at.next
	src.prev.next = src
	src.next.prev = src
	return true
}

func (l *doublyLinkedList[T]) AppendValue(values ...T) []*NodeElement[T] {
	if len(values) <= 0 {
		return nil
	}

	newElements := make([]*NodeElement[T], 0, len(values))
	for _, v := range values {
		newElements = append(newElements, l.link(newNodeElement(v, l), l.root.prev))
	}
	return newElements
}

func (l *doublyLinkedList[T]) InsertAfter(v T, dstE *NodeElement[T]) *NodeElement[T] {
	if !l.contains(dstE) {
		return nil
	}
	return l.link(newNodeElement(v, l), dstE)
}

func (l *doublyLinkedList[T]) InsertBefore(v T, dstE *NodeElement[T]) *NodeElement[T] {
	if !l.contains(dstE) {
		return nil
	}
	return l.link(newNodeElement(v, l), dstE.prev)
}

func (l *doublyLinkedList[T]) Remove(targetE *NodeElement[T]) *NodeElement[T] {
	if l.len == 0 || !l.contains(targetE) {
		return nil
	}
	l.unlink(targetE)

	// avoid memory leaks
	targetE.listRef = nil
	targetE.next = nil
	targetE.prev = nil
	return targetE
}

// Foreach, allows remove linked list elements while iterating.
func (l *doublyLinkedList[T]) Foreach(fn func(idx int64, e *NodeElement[T]) error) error {
	if fn == nil || l.len == 0 {
		return infra.WrapErrorStackWithMessage(ErrEmptyList, "[doubly-linked-list] foreach")
	}

	var (
		iterator       = l.root.next
		idx      int64 = 0
	)
	for iterator != l.root {
		n := iterator.next
		if err := fn(idx, iterator); err != nil {
			return err
		}
		iterator = n
		idx++
	}
	return nil
}

// ReverseForeach, allows remove linked list elements while iterating.
func (l *doublyLinkedList[T]) ReverseForeach(fn func(idx int64, e *NodeElement[T])) {
	if fn == nil || l.len == 0 {
		return
	}

	var (
		iterator       = l.root.prev
		idx      int64 = 0
	)
	for iterator != l.root {
		p := iterator.prev
		fn(idx, iterator)
		iterator = p
		idx++
	}
}

func (l *doublyLinkedList[T]) FindFirst(matchFn func(e *NodeElement[T]) bool) (*NodeElement[T], bool) {
	if matchFn == nil || l.len == 0 {
		return nil, false
	}

	for iterator := l.root.next; iterator != l.root; iterator = iterator.next {
		if matchFn(iterator) {
			return iterator, true
		}
	}
	return nil, false
}

func (l *doublyLinkedList[T]) Set(idx int64, v T) error {
	if idx < 0 || idx >= l.len {
		return infra.WrapErrorStackWithMessage(ErrIndexOutOfRange,
			fmt.Sprintf("[doubly-linked-list] set index %d, len %d", idx, l.len))
	}

	iterator := l.root.next
	for i := int64(0); i < idx; i++ {
		iterator = iterator.next
	}
	iterator.Value = v
	return nil
}

func (l *doublyLinkedList[T]) ToSlice() []T {
	res := make([]T, 0, l.len)
	for iterator := l.root.next; iterator != l.root; iterator = iterator.next {
		res = append(res, iterator.Value)
	}
	return res
}

// String renders the values from front to back, such as {1->2->3}.
func (l *doublyLinkedList[T]) String() string {
	var builder strings.Builder
	builder.WriteByte('{')
	for iterator := l.root.next; iterator != l.root; iterator = iterator.next {
		if iterator != l.root.next {
			builder.WriteString("->")
		}
		_, _ = fmt.Fprint(&builder, iterator.Value)
	}
	builder.WriteByte('}')
	return builder.String()
}

func (l *doublyLinkedList[T]) Front() *NodeElement[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.next
}

func (l *doublyLinkedList[T]) Back() *NodeElement[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.prev
}

func (l *doublyLinkedList[T]) PushFront(v T) *NodeElement[T] {
	return l.link(newNodeElement(v, l), l.root)
}

func (l *doublyLinkedList[T]) PushBack(v T) *NodeElement[T] {
	return l.link(newNodeElement(v, l), l.root.prev)
}

func (l *doublyLinkedList[T]) MoveToFront(targetE *NodeElement[T]) bool {
	if !l.contains(targetE) || l.root.next == targetE {
		return false
	}
	return l.move(targetE, l.root)
}

func (l *doublyLinkedList[T]) MoveToBack(targetE *NodeElement[T]) bool {
	if !l.contains(targetE) || l.root.prev == targetE {
		return false
	}
	return l.move(targetE, l.root.prev)
}

// MoveBefore.
// Ordinarily, it is move srcE just prev to dstE.
func (l *doublyLinkedList[T]) MoveBefore(srcE, dstE *NodeElement[T]) bool {
	if srcE == dstE || !l.contains(srcE) || !l.contains(dstE) {
		return false
	}
	return l.move(srcE, dstE.prev)
}

func (l *doublyLinkedList[T]) MoveAfter(srcE, dstE *NodeElement[T]) bool {
	if srcE == dstE || !l.contains(srcE) || !l.contains(dstE) {
		return false
	}
	return l.move(srcE, dstE)
}
