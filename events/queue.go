package events

import "github.com/lixenwraith/ferris-fighter/constants"

// EventQueue is a fixed ring of pending events owned by the frame goroutine
// Systems push during a frame; the router drains it once at the end
// When full, the oldest unread event is dropped
type EventQueue struct {
	ring  [constants.EventQueueSize]GameEvent
	start int // Index of the oldest unread event
	n     int // Unread count
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, overwriting the oldest one on overflow
func (q *EventQueue) Push(event GameEvent) {
	end := (q.start + q.n) & constants.EventBufferMask
	q.ring[end] = event
	if q.n == constants.EventQueueSize {
		q.start = (q.start + 1) & constants.EventBufferMask
		return
	}
	q.n++
}

// Consume returns pending events oldest first and empties the queue
// Returns nil when nothing is pending
func (q *EventQueue) Consume() []GameEvent {
	if q.n == 0 {
		return nil
	}
	out := make([]GameEvent, q.n)
	for i := range out {
		idx := (q.start + i) & constants.EventBufferMask
		out[i] = q.ring[idx]
		q.ring[idx] = GameEvent{}
	}
	q.start, q.n = 0, 0
	return out
}

// Len returns the number of unread events
func (q *EventQueue) Len() int {
	return q.n
}
