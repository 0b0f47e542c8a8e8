package queue

import (
	"github.com/benz9527/xcoll/lib/list"
)

var _ Deque[int] = (*linkedDeque[int])(nil) // Type check assertion

type linkedDeque[E any] struct {
	list list.LinkedList[E]
}

func NewDeque[E any]() Deque[E] {
	return &linkedDeque[E]{
		list: list.NewLinkedList[E](),
	}
}

func (dq *linkedDeque[E]) Len() int64 {
	return dq.list.Len()
}

func (dq *linkedDeque[E]) AddFirst(e E) {
	dq.list.PushFront(e)
}

func (dq *linkedDeque[E]) AddLast(e E) {
	dq.list.PushBack(e)
}

func (dq *linkedDeque[E]) remove(target *list.NodeElement[E]) (e E, ok bool) {
	if target == nil {
		return e, false
	}
	return dq.list.Remove(target).Value, true
}

func (dq *linkedDeque[E]) RemoveFirst() (E, bool) {
	return dq.remove(dq.list.Front())
}

func (dq *linkedDeque[E]) RemoveLast() (E, bool) {
	return dq.remove(dq.list.Back())
}

func (dq *linkedDeque[E]) PeekFirst() (e E, ok bool) {
	if front := dq.list.Front(); front != nil {
		return front.Value, true
	}
	return e, false
}

func (dq *linkedDeque[E]) PeekLast() (e E, ok bool) {
	if back := dq.list.Back(); back != nil {
		return back.Value, true
	}
	return e, false
}

func (dq *linkedDeque[E]) ToSlice() []E {
	return dq.list.ToSlice()
}

// String renders from the first to the last, such as {1->2->3}.
func (dq *linkedDeque[E]) String() string {
	return dq.list.String()
}
