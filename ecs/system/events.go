package system

import (
	"log"

	"github.com/milk9111/spritesim/ecs"
)

// EventStats counts world events since the scene started.
type EventStats struct {
	Spawned  int
	Killed   int
	Attacks  int
	Deaths   int
	Reloaded int
}

// EventSystem drains the world event queue. It must run last so it sees
// every event pushed during the frame.
type EventSystem struct {
	Debug bool
	Stats EventStats
}

func NewEventSystem(debug bool) *EventSystem {
	return &EventSystem{Debug: debug}
}

func (s *EventSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	for _, evt := range w.Events().Drain() {
		switch evt.Type {
		case ecs.EventSoldierSpawned:
			s.Stats.Spawned++
		case ecs.EventSoldierKilled:
			s.Stats.Killed++
		case ecs.EventAttackStarted:
			s.Stats.Attacks++
		case ecs.EventDeathFinished:
			s.Stats.Deaths++
		case ecs.EventPrefabReloaded:
			s.Stats.Reloaded++
		}
		if s.Debug {
			log.Printf("event: %s entity=%s t=%.0f", evt.Type, evt.Entity, w.Clock().Now)
		}
	}
}
