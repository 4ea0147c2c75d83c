package ecs

import "github.com/milk9111/spritesim/ecs/component"

// World owns entities, their components, the scene clock and the system
// order. Everything a frame needs is reached through it.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	systems  Scheduler
	events   EventQueue
	clock    Clock
	spatial  *SpatialIndex
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		stores:  make(map[component.ComponentID]*SparseSet),
		spatial: NewSpatialIndex(),
	}
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if s, ok := w.stores[id]; ok {
		return s
	}
	if !create {
		return nil
	}
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	s := &SparseSet{}
	w.stores[id] = s
	return s
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its slot. It returns
// false when e was not alive.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	w.spatial.Remove(e)
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Entities returns all living entities in slot order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.entities()
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return IsAlive(w, e)
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil {
		return
	}
	w.systems.Add(s)
}

// Systems returns the systems in update order.
func (w *World) Systems() []System {
	if w == nil {
		return nil
	}
	return w.systems.Systems()
}

// Update advances the clock by deltaMs and runs every system once.
func (w *World) Update(deltaMs float64) {
	if w == nil {
		return
	}
	w.clock.Advance(deltaMs)
	w.systems.Update(w)
	w.events.flush()
}

// Clock returns the scene clock.
func (w *World) Clock() Clock {
	if w == nil {
		return Clock{}
	}
	return w.clock
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Spatial returns the ground-plane index of placed entities.
func (w *World) Spatial() *SpatialIndex {
	if w == nil {
		return nil
	}
	return w.spatial
}
