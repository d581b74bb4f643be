package engine

import (
	"sort"
	"time"

	"github.com/lixenwraith/ferris-fighter/components"
	"github.com/lixenwraith/ferris-fighter/core"
)

// System is one step of the frame pipeline
type System interface {
	Update(ctx *GameContext, dt time.Duration)
	Priority() int // Lower values run first
}

// World holds the single ordered entity collection and the system pipeline
// Entities keep insertion order; removal preserves the order of survivors
type World struct {
	entities []*components.Entity
	index    map[core.EntityID]*components.Entity
	nextID   core.EntityID
	systems  []System
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		entities: make([]*components.Entity, 0, 128),
		index:    make(map[core.EntityID]*components.Entity, 128),
	}
}

// Add appends an entity and assigns its handle
func (w *World) Add(e *components.Entity) core.EntityID {
	w.nextID++
	e.ID = w.nextID
	w.entities = append(w.entities, e)
	w.index[e.ID] = e
	return e.ID
}

// Get looks up an entity by handle
func (w *World) Get(id core.EntityID) (*components.Entity, bool) {
	e, ok := w.index[id]
	return e, ok
}

// Len returns the number of entities
func (w *World) Len() int {
	return len(w.entities)
}

// At returns the entity in slot i
func (w *World) At(i int) *components.Entity {
	return w.entities[i]
}

// Entities returns the backing slice in collection order
// Callers must not append to or reorder it
func (w *World) Entities() []*components.Entity {
	return w.entities
}

// CountKind returns the number of entities of kind k
func (w *World) CountKind(k core.Kind) int {
	n := 0
	for _, e := range w.entities {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// RemoveIf deletes every entity matching pred, preserving order
// Returns the number removed
func (w *World) RemoveIf(pred func(e *components.Entity) bool) int {
	kept := w.entities[:0]
	removed := 0
	for _, e := range w.entities {
		if pred(e) {
			delete(w.index, e.ID)
			removed++
			continue
		}
		kept = append(kept, e)
	}
	// Clear the tail so removed entities can be collected
	for i := len(kept); i < len(w.entities); i++ {
		w.entities[i] = nil
	}
	w.entities = kept
	return removed
}

// Clear removes all entities; handles keep increasing across clears
func (w *World) Clear() {
	for i := range w.entities {
		w.entities[i] = nil
	}
	w.entities = w.entities[:0]
	clear(w.index)
}

// AddSystem registers a system, keeping the pipeline sorted by priority
// Systems with equal priority keep registration order
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns the pipeline in execution order
func (w *World) Systems() []System {
	return w.systems
}
