// Reference:
// https://github.com/nsqio/nsq/blob/master/internal/pqueue/pqueue.go

package queue

import (
	"fmt"
	"iter"
)

// Note that the queues are not thread safe.
// An empty queue reports the absence by the bool result instead of an error.

// PriorityQueue pops the smallest element by the comparator first.
type PriorityQueue[E any] interface {
	Len() int64
	Push(e E)
	Pop() (E, bool)
	Peek() (E, bool)
	// ToSlice returns a copy of the elements in heap order.
	ToSlice() []E
}

// Deque is the double-ended queue.
type Deque[E any] interface {
	fmt.Stringer
	Len() int64
	AddFirst(e E)
	AddLast(e E)
	RemoveFirst() (E, bool)
	RemoveLast() (E, bool)
	PeekFirst() (E, bool)
	PeekLast() (E, bool)
	ToSlice() []E
}

// Queue is the FIFO queue.
type Queue[E any] interface {
	Len() int64
	Enqueue(e E)
	Dequeue() (E, bool)
	// Peek returns the head, the next one to be dequeued.
	Peek() (E, bool)
	// PeekTail returns the most recently enqueued one.
	PeekTail() (E, bool)
	Clear()
	All() iter.Seq[E]
	ToSlice() []E
}
