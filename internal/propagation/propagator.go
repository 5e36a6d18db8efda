// Package propagation implements the cascade that fans a single submitted
// event into a sequence of delayed, attenuated deliveries across locality
// scales, mirroring the Python original's EventPropagator exactly.
package propagation

import (
	"simcore/internal/eventqueue"
	"simcore/internal/worldevent"
)

// Propagator schedules an incoming event and its cascade onto a Queue.
type Propagator struct {
	queue *eventqueue.Queue
}

// New builds a Propagator writing onto queue.
func New(queue *eventqueue.Queue) *Propagator {
	return &Propagator{queue: queue}
}

// Submit schedules e at its own timestamp, then cascades: for each strictly
// broader scale, it looks up the scale-pair rule, constructs a propagated
// copy, and continues cascading from that copy (not the original) until the
// next intensity would fall below the threshold or GLOBAL is reached. Returns
// the total count of scheduled deliveries, including the original.
func (p *Propagator) Submit(e worldevent.WorldEvent) int {
	p.queue.Push(e.Timestamp, e)
	count := 1

	cur := e
	for cur.CanPropagate() {
		next, ok := worldevent.NextPropagation(cur)
		if !ok {
			break
		}
		p.queue.Push(next.Timestamp, next)
		count++
		cur = next
	}

	return count
}

// PendingCount returns the number of deliveries still queued.
func (p *Propagator) PendingCount() int {
	return p.queue.Len()
}
