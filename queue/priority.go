package queue

import (
	"container/heap"
	"sync"
)

// Class identifies a priority band. Lower values are serviced first.
type Class int

const (
	// High is serviced before Middle and Low.
	High Class = 0
	// Middle is serviced before Low, after High.
	Middle Class = 1
	// Low is serviced last.
	Low Class = 2
)

// priorityItem wraps a queued value with its class and insertion
// sequence so items within the same class stay in strict FIFO order.
type priorityItem struct {
	value any
	class Class
	seq   uint64
}

// priorityHeap is a container/heap.Interface ordered by (class, seq).
type priorityHeap []*priorityItem

func (h priorityHeap) Len() int { return len(h) }

func (h priorityHeap) Less(i, j int) bool {
	if h[i].class != h[j].class {
		return h[i].class < h[j].class
	}
	return h[i].seq < h[j].seq
}

func (h priorityHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *priorityHeap) Push(x any) {
	*h = append(*h, x.(*priorityItem))
}

func (h *priorityHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// Priority is a bounded, multi-producer multi-consumer queue with three
// priority classes (High, Middle, Low). Within a class, items are
// dequeued in strict insertion order.
type Priority struct {
	mu       sync.Mutex
	cond     *sync.Cond
	heap     priorityHeap
	capacity int
	closed   bool
	nextSeq  uint64
}

// NewPriority creates a Priority queue with the given capacity. A
// non-positive capacity falls back to DefaultCapacity.
func NewPriority(capacity int) *Priority {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	q := &Priority{capacity: capacity}
	q.cond = sync.NewCond(&q.mu)
	heap.Init(&q.heap)
	return q
}

// EnqueuePriority appends item under the given class. It never blocks:
// if the queue is at capacity it returns ErrFull immediately.
func (q *Priority) EnqueuePriority(item any, class Class) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrClosed
	}
	if len(q.heap) >= q.capacity {
		return ErrFull
	}
	q.nextSeq++
	heap.Push(&q.heap, &priorityItem{value: item, class: class, seq: q.nextSeq})
	q.cond.Signal()
	return nil
}

// Enqueue appends item at Middle priority, satisfying the same
// enqueue shape as FIFO for callers that don't care about class.
func (q *Priority) Enqueue(item any) error {
	return q.EnqueuePriority(item, Middle)
}

// Dequeue blocks until an item is available, the queue is shut down and
// empty, or extraWake reports true. extraWake is re-evaluated on every
// wakeup and may be nil. The highest-class, earliest-enqueued item is
// returned first.
func (q *Priority) Dequeue(extraWake func() bool) (any, Signal) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.heap) == 0 && !q.closed && !callWake(extraWake) {
		q.cond.Wait()
	}

	if len(q.heap) > 0 {
		item := heap.Pop(&q.heap).(*priorityItem)
		return item.value, SignalItem
	}
	if q.closed {
		return nil, SignalShutdown
	}
	return nil, SignalPoke
}

// Poke wakes one blocked consumer without adding an item.
func (q *Priority) Poke() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.cond.Signal()
}

// Shutdown marks the queue closed and wakes every blocked consumer.
// Idempotent.
func (q *Priority) Shutdown() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	q.cond.Broadcast()
}

// Size returns a consistent snapshot of the current backlog.
func (q *Priority) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.heap)
}

// Capacity returns the configured maximum size.
func (q *Priority) Capacity() int {
	return q.capacity
}
