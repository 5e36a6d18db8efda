// Package eventqueue implements the delayed-delivery priority queue: a
// minimum-binary-heap keyed by delivery game-time, the Go analogue of the
// Python original's heapq-backed _ScheudledEvent wrapper.
package eventqueue

import (
	"container/heap"

	"simcore/internal/worldevent"
)

// ScheduledEvent pairs an event with its delivery game-time.
type ScheduledEvent struct {
	DeliveryTime float64
	Event        worldevent.WorldEvent
}

// innerHeap implements container/heap.Interface, ordered by DeliveryTime.
// Tie-breaking among equal delivery times is whatever container/heap's sift
// produces — not specified to be FIFO, and callers must not assume it is.
type innerHeap []ScheduledEvent

func (h innerHeap) Len() int            { return len(h) }
func (h innerHeap) Less(i, j int) bool  { return h[i].DeliveryTime < h[j].DeliveryTime }
func (h innerHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *innerHeap) Push(x interface{}) { *h = append(*h, x.(ScheduledEvent)) }
func (h *innerHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Queue is the event queue owned exclusively by the world manager.
type Queue struct {
	h innerHeap
}

// New returns an empty Queue.
func New() *Queue {
	q := &Queue{h: make(innerHeap, 0)}
	heap.Init(&q.h)
	return q
}

// Push schedules e for delivery at deliveryTime.
func (q *Queue) Push(deliveryTime float64, e worldevent.WorldEvent) {
	heap.Push(&q.h, ScheduledEvent{DeliveryTime: deliveryTime, Event: e})
}

// PopDue repeatedly pops while the smallest delivery time is <= now, returning
// the popped events in ascending delivery-time order.
func (q *Queue) PopDue(now float64) []ScheduledEvent {
	var due []ScheduledEvent
	for q.h.Len() > 0 && q.h[0].DeliveryTime <= now {
		item := heap.Pop(&q.h).(ScheduledEvent)
		due = append(due, item)
	}
	return due
}

// PeekNextTime returns the smallest delivery time and true, or false if the
// queue is empty.
func (q *Queue) PeekNextTime() (float64, bool) {
	if q.h.Len() == 0 {
		return 0, false
	}
	return q.h[0].DeliveryTime, true
}

// Len returns the number of pending scheduled events.
func (q *Queue) Len() int {
	return q.h.Len()
}

// Empty reports whether the queue holds no pending events.
func (q *Queue) Empty() bool {
	return q.h.Len() == 0
}
