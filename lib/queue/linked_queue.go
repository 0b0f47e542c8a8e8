package queue

import "iter"

var _ Queue[int] = (*linkedQueue[int])(nil) // Type check assertion

type queueNode[E any] struct {
	next  *queueNode[E]
	value E
}

// linkedQueue is a singly linked FIFO, enqueue at the tail and
// dequeue from the head.
type linkedQueue[E any] struct {
	head *queueNode[E]
	tail *queueNode[E]
	len  int64
}

func NewQueue[E any]() Queue[E] {
	return &linkedQueue[E]{}
}

func (q *linkedQueue[E]) Len() int64 {
	return q.len
}

func (q *linkedQueue[E]) Enqueue(e E) {
	node := &queueNode[E]{value: e}
	if q.head == nil {
		q.head, q.tail = node, node
	} else {
		q.tail.next = node
		q.tail = node
	}
	q.len++
}

func (q *linkedQueue[E]) Dequeue() (e E, ok bool) {
	if q.head == nil {
		return e, false
	}
	node := q.head
	q.head = node.next
	if q.head == nil {
		q.tail = nil
	}
	node.next = nil
	q.len--
	return node.value, true
}

func (q *linkedQueue[E]) Peek() (e E, ok bool) {
	if q.head == nil {
		return e, false
	}
	return q.head.value, true
}

func (q *linkedQueue[E]) PeekTail() (e E, ok bool) {
	if q.tail == nil {
		return e, false
	}
	return q.tail.value, true
}

func (q *linkedQueue[E]) Clear() {
	q.head, q.tail = nil, nil
	q.len = 0
}

func (q *linkedQueue[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for node := q.head; node != nil; node = node.next {
			if !yield(node.value) {
				return
			}
		}
	}
}

func (q *linkedQueue[E]) ToSlice() []E {
	res := make([]E, 0, q.len)
	for e := range q.All() {
		res = append(res, e)
	}
	return res
}
