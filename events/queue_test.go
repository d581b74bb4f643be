package events

import (
	"testing"

	"github.com/lixenwraith/ferris-fighter/constants"
)

func TestEventQueue_FIFO(t *testing.T) {
	q := NewEventQueue()
	if got := q.Consume(); got != nil {
		t.Fatalf("empty queue returned %v", got)
	}

	for i := 0; i < 5; i++ {
		q.Push(GameEvent{Type: EventHit, Frame: int64(i)})
	}
	if q.Len() != 5 {
		t.Errorf("Len = %d, want 5", q.Len())
	}

	got := q.Consume()
	if len(got) != 5 {
		t.Fatalf("consumed %d events, want 5", len(got))
	}
	for i, ev := range got {
		if ev.Frame != int64(i) {
			t.Errorf("event %d has frame %d", i, ev.Frame)
		}
	}
	if q.Len() != 0 {
		t.Errorf("Len after consume = %d, want 0", q.Len())
	}
}

func TestEventQueue_OverflowDropsOldest(t *testing.T) {
	q := NewEventQueue()
	total := constants.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventShotFired, Frame: int64(i)})
	}

	got := q.Consume()
	if len(got) != constants.EventQueueSize {
		t.Fatalf("consumed %d events, want %d", len(got), constants.EventQueueSize)
	}
	if got[0].Frame != 10 {
		t.Errorf("oldest surviving frame = %d, want 10", got[0].Frame)
	}
	if got[len(got)-1].Frame != int64(total-1) {
		t.Errorf("newest frame = %d, want %d", got[len(got)-1].Frame, total-1)
	}
}

func TestEventQueue_WrapsAcrossConsumes(t *testing.T) {
	q := NewEventQueue()
	next := int64(0)
	for round := 0; round < 5; round++ {
		batch := constants.EventQueueSize/2 + round
		for i := 0; i < batch; i++ {
			q.Push(GameEvent{Type: EventHit, Frame: next})
			next++
		}
		got := q.Consume()
		if len(got) != batch {
			t.Fatalf("round %d consumed %d, want %d", round, len(got), batch)
		}
		first := next - int64(batch)
		for i, ev := range got {
			if ev.Frame != first+int64(i) {
				t.Fatalf("round %d event %d frame %d, want %d", round, i, ev.Frame, first+int64(i))
			}
		}
	}
	if q.Len() != 0 || q.Consume() != nil {
		t.Error("queue not empty after final consume")
	}
}

func TestRouter_UnknownTypeIgnored(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter[*int](q)
	calls := 0
	r.Register(HandlerFunc[*int]{
		Types: []EventType{EventHit, eventTypeCount},
		Fn:    func(_ *int, _ GameEvent) { calls++ },
	})

	q.Push(GameEvent{Type: eventTypeCount})
	q.Push(GameEvent{Type: EventHit})
	if n := r.DispatchAll(nil); n != 2 {
		t.Errorf("DispatchAll consumed %d, want 2", n)
	}
	if calls != 1 {
		t.Errorf("handler called %d times, want 1", calls)
	}
	if r.HandlerCount(eventTypeCount) != 0 {
		t.Error("out-of-range type has handlers")
	}
}

type recordingHandler struct {
	name  string
	types []EventType
	log   *[]string
}

func (h *recordingHandler) HandleEvent(_ *int, ev GameEvent) {
	*h.log = append(*h.log, h.name+":"+ev.Type.String())
}

func (h *recordingHandler) EventTypes() []EventType { return h.types }

func TestRouter_DispatchOrder(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter[*int](q)

	var log []string
	r.Register(&recordingHandler{name: "a", types: []EventType{EventHit, EventMatchEnded}, log: &log})
	r.Register(&recordingHandler{name: "b", types: []EventType{EventHit}, log: &log})

	calls := 0
	r.Register(HandlerFunc[*int]{
		Types: []EventType{EventMatchEnded},
		Fn:    func(_ *int, _ GameEvent) { calls++ },
	})

	q.Push(GameEvent{Type: EventHit})
	q.Push(GameEvent{Type: EventShotFired})
	q.Push(GameEvent{Type: EventMatchEnded})

	if n := r.DispatchAll(nil); n != 3 {
		t.Errorf("DispatchAll consumed %d, want 3", n)
	}

	want := []string{"a:Hit", "b:Hit", "a:MatchEnded"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log[%d] = %q, want %q", i, log[i], want[i])
		}
	}
	if calls != 1 {
		t.Errorf("func handler called %d times, want 1", calls)
	}
	if r.HandlerCount(EventHit) != 2 || r.HandlerCount(EventShotFired) != 0 {
		t.Error("HandlerCount mismatch")
	}
}

func TestEventTypeNames(t *testing.T) {
	for et := EventType(0); et < eventTypeCount; et++ {
		name := et.String()
		if name == "" || name == "Unknown" {
			t.Errorf("event %d has no name", et)
		}
		back, ok := GetEventType(name)
		if !ok || back != et {
			t.Errorf("GetEventType(%q) = %v, %v", name, back, ok)
		}
	}
	if EventType(-1).String() != "Unknown" {
		t.Error("negative type should be Unknown")
	}
}
