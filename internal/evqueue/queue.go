// Package evqueue buffers translated events between a backend's native
// dispatch and the caller's pump. It preserves arrival order and applies
// the documented coalescing rules so a pump call never delivers a storm of
// intermediate states.
package evqueue

import "github.com/1broseidon/picoview/event"

// Queue is an ordered pending-event buffer. It is not safe for concurrent
// use; backends push and drain it on the owning thread only (frame ticks
// cross threads as an atomic flag before they reach the queue).
type Queue struct {
	events []event.Event

	resizeAt int // index of the queued WindowResize, -1 if none
	moveAt   int // index of the queued WindowMove, -1 if none
	frame    bool
}

// New returns an empty queue.
func New() *Queue {
	return &Queue{resizeAt: -1, moveAt: -1}
}

// Len reports the number of pending events.
func (q *Queue) Len() int {
	return len(q.events)
}

// Push appends an event, coalescing where documented:
//
//   - consecutive MouseMove collapse to the latest position
//   - WindowResize collapses to one event per drain, keeping the first
//     arrival position but the final size
//   - WindowMove collapses the same way
//   - at most one WindowFrame is queued per drain
func (q *Queue) Push(ev event.Event) {
	switch ev := ev.(type) {
	case event.MouseMove:
		if n := len(q.events); n > 0 {
			if _, ok := q.events[n-1].(event.MouseMove); ok {
				q.events[n-1] = ev
				return
			}
		}
	case event.WindowResize:
		if q.resizeAt >= 0 {
			q.events[q.resizeAt] = ev
			return
		}
		q.resizeAt = len(q.events)
	case event.WindowMove:
		if q.moveAt >= 0 {
			q.events[q.moveAt] = ev
			return
		}
		q.moveAt = len(q.events)
	case event.WindowFrame:
		if q.frame {
			return
		}
		q.frame = true
	}
	q.events = append(q.events, ev)
}

// Drain returns all pending events in arrival order and resets the queue.
// It returns nil when nothing is pending.
func (q *Queue) Drain() []event.Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	q.resizeAt = -1
	q.moveAt = -1
	q.frame = false
	return out
}
