package events

// Handler receives routed events with the dispatch context
// Audio, the score recorder and test collectors implement it
type Handler[T any] interface {
	HandleEvent(ctx T, event GameEvent)
	EventTypes() []EventType
}

// HandlerFunc adapts a function to a Handler for the listed types
type HandlerFunc[T any] struct {
	Types []EventType
	Fn    func(ctx T, event GameEvent)
}

func (h HandlerFunc[T]) HandleEvent(ctx T, event GameEvent) { h.Fn(ctx, event) }

func (h HandlerFunc[T]) EventTypes() []EventType { return h.Types }

// Router fans queued events out to subscribers at the end of a frame
// Subscribers of one type run in registration order
type Router[T any] struct {
	queue       *EventQueue
	subscribers [eventTypeCount][]Handler[T]
}

// NewRouter creates a router draining queue
func NewRouter[T any](queue *EventQueue) *Router[T] {
	return &Router[T]{queue: queue}
}

// Register subscribes handler to every type it declares; out-of-range types are ignored
func (r *Router[T]) Register(handler Handler[T]) {
	for _, t := range handler.EventTypes() {
		if t < 0 || t >= eventTypeCount {
			continue
		}
		r.subscribers[t] = append(r.subscribers[t], handler)
	}
}

// DispatchAll drains the queue and delivers each event in push order
// Events pushed by handlers wait for the next call
// Returns the number of events drained
func (r *Router[T]) DispatchAll(ctx T) int {
	pending := r.queue.Consume()
	for _, ev := range pending {
		r.dispatch(ctx, ev)
	}
	return len(pending)
}

func (r *Router[T]) dispatch(ctx T, ev GameEvent) {
	if ev.Type < 0 || ev.Type >= eventTypeCount {
		return
	}
	for _, h := range r.subscribers[ev.Type] {
		h.HandleEvent(ctx, ev)
	}
}

// HandlerCount returns how many handlers receive type t
func (r *Router[T]) HandlerCount(t EventType) int {
	if t < 0 || t >= eventTypeCount {
		return 0
	}
	return len(r.subscribers[t])
}
