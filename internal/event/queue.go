// internal/event/queue.go
package event

import "iter"

// Queue buffers events between ticks. The simulation is single-threaded, so the
// queue is not safe for concurrent use.
type Queue struct {
	pending []Event
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an event.
func (q *Queue) Push(e Event) {
	q.pending = append(q.pending, e)
}

// Emit is shorthand for Push(Event{Type: t, Data: data}).
func (q *Queue) Emit(t EventType, data interface{}) {
	q.Push(Event{Type: t, Data: data})
}

// Len returns the number of undrained events.
func (q *Queue) Len() int {
	return len(q.pending)
}

// Drain returns a sequence over the pending events. The queue is emptied when
// iteration starts; events pushed during iteration are left for the next drain.
func (q *Queue) Drain() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		batch := q.pending
		q.pending = nil
		for _, e := range batch {
			if !yield(e) {
				return
			}
		}
	}
}

// Clear drops pending events.
func (q *Queue) Clear() {
	q.pending = nil
}

// Forward drains the queue into the dispatcher.
func (q *Queue) Forward(d *Dispatcher) int {
	n := 0
	for e := range q.Drain() {
		d.Dispatch(e)
		n++
	}
	return n
}
