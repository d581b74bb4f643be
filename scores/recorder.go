package scores

import (
	"log"
	"sync"

	"github.com/lixenwraith/ferris-fighter/engine"
	"github.com/lixenwraith/ferris-fighter/events"
)

// Recorder adds every finished match to the table and persists it
type Recorder struct {
	mu    sync.RWMutex
	store Store
	table *Table
}

// NewRecorder loads the current table from store
func NewRecorder(store Store) (*Recorder, error) {
	t, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &Recorder{store: store, table: t}, nil
}

// EventTypes returns the events the recorder consumes
func (r *Recorder) EventTypes() []events.EventType {
	return []events.EventType{events.EventMatchEnded}
}

// HandleEvent records a finished match; persistence failures are logged
func (r *Recorder) HandleEvent(_ *engine.GameContext, ev events.GameEvent) {
	p, ok := ev.Payload.(*events.MatchEndedPayload)
	if !ok {
		return
	}
	rank, err := r.Record(Record{Score: p.Score, Name: p.Name, Time: FormatElapsed(p.Elapsed)})
	if err != nil {
		log.Printf("save scores: %v", err)
		return
	}
	log.Printf("score recorded: name=%q score=%d rank=%d", p.Name, p.Score, rank)
}

// Record adds one result and saves the table
func (r *Recorder) Record(rec Record) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rank := r.table.Add(rec)
	return rank, r.store.Save(r.table)
}

// Table returns a copy of the current table
func (r *Recorder) Table() Table {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Table{Records: append([]Record(nil), r.table.Records...)}
}
