package queue

import (
	"container/heap"

	"go.uber.org/zap"

	"github.com/benz9527/xcoll/lib/infra"
	"github.com/benz9527/xcoll/lib/xlog"
)

var _ heap.Interface = (*arrayPQ[int])(nil) // Type check assertion

type arrayPQ[E any] struct {
	arr     []E
	compare infra.Comparator[E]
}

func (pq *arrayPQ[E]) Len() int { return len(pq.arr) }
func (pq *arrayPQ[E]) Less(i, j int) bool {
	return pq.compare(pq.arr[i], pq.arr[j]) < 0
}
func (pq *arrayPQ[E]) Swap(i, j int) {
	pq.arr[i], pq.arr[j] = pq.arr[j], pq.arr[i]
}

func (pq *arrayPQ[E]) Pop() interface{} {
	prev := pq.arr
	n := len(prev)
	if n <= 0 {
		return nil
	}

	item := prev[n-1]
	prev[n-1] = *new(E) // release the reference
	pq.arr = prev[:n-1]
	return item
}

func (pq *arrayPQ[E]) Push(i interface{}) {
	item, ok := i.(E)
	if !ok {
		return
	}
	pq.arr = append(pq.arr, item)
}

var _ PriorityQueue[int] = (*ArrayPriorityQueue[int])(nil) // Type check assertion

type ArrayPriorityQueue[E any] struct {
	queue    *arrayPQ[E]
	logger   xlog.XLogger
	capacity int
	elements []E
}

func (pq *ArrayPriorityQueue[E]) Len() int64 {
	return int64(len(pq.queue.arr))
}

func (pq *ArrayPriorityQueue[E]) Pop() (e E, ok bool) {
	if len(pq.queue.arr) == 0 {
		return e, false
	}
	return heap.Pop(pq.queue).(E), true
}

func (pq *ArrayPriorityQueue[E]) Push(e E) {
	heap.Push(pq.queue, e)
}

func (pq *ArrayPriorityQueue[E]) Peek() (e E, ok bool) {
	if len(pq.queue.arr) == 0 {
		return e, false
	}
	return pq.queue.arr[0], true
}

func (pq *ArrayPriorityQueue[E]) ToSlice() []E {
	res := make([]E, len(pq.queue.arr))
	copy(res, pq.queue.arr)
	return res
}

type ArrayPriorityQueueOption[E any] func(*ArrayPriorityQueue[E])

// NewArrayPriorityQueue panics if cmp is nil.
func NewArrayPriorityQueue[E any](cmp infra.Comparator[E], opts ...ArrayPriorityQueueOption[E]) PriorityQueue[E] {
	pq := &ArrayPriorityQueue[E]{
		queue: &arrayPQ[E]{
			compare: cmp,
		},
		logger: xlog.NewNopXLogger(),
	}
	for _, o := range opts {
		if o != nil {
			o(pq)
		}
	}

	if pq.queue.compare == nil {
		err := infra.WrapErrorStackWithMessage(infra.ErrNilComparator, "[priority-queue] new queue")
		pq.logger.ErrorStack(err, "[priority-queue] unable to order elements",
			zap.Int("capacity", pq.capacity),
		)
		panic(err)
	}

	if pq.capacity <= 0 {
		pq.capacity = 64
	}
	if pq.capacity < len(pq.elements) {
		pq.capacity = len(pq.elements)
	}
	pq.queue.arr = make([]E, 0, pq.capacity)
	if len(pq.elements) > 0 {
		pq.queue.arr = append(pq.queue.arr, pq.elements...)
		pq.elements = nil
		heap.Init(pq.queue)
	}
	return pq
}

func NewOrderedPriorityQueue[K infra.OrderedKey](opts ...ArrayPriorityQueueOption[K]) PriorityQueue[K] {
	return NewArrayPriorityQueue[K](infra.OrderedKeyCompare[K], opts...)
}

func WithArrayPriorityQueueCapacity[E any](capacity int) ArrayPriorityQueueOption[E] {
	return func(pq *ArrayPriorityQueue[E]) {
		if capacity <= 0 {
			capacity = 64
		}
		pq.capacity = capacity
	}
}

// WithArrayPriorityQueueElements builds the heap from elements in O(n).
// The slice is copied.
func WithArrayPriorityQueueElements[E any](elements ...E) ArrayPriorityQueueOption[E] {
	return func(pq *ArrayPriorityQueue[E]) {
		pq.elements = elements
	}
}

func WithArrayPriorityQueueLogger[E any](logger xlog.XLogger) ArrayPriorityQueueOption[E] {
	return func(pq *ArrayPriorityQueue[E]) {
		if logger != nil {
			pq.logger = logger
		}
	}
}
