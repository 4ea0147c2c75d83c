package ecs

// EventType names a world event.
type EventType string

const (
	EventSoldierSpawned EventType = "soldier_spawned"
	EventSoldierKilled  EventType = "soldier_killed"
	EventAttackStarted  EventType = "attack_started"
	EventDeathFinished  EventType = "death_finished"
	EventPrefabReloaded EventType = "prefab_reloaded"
)

// Event is a world event payload.
type Event struct {
	Type   EventType
	Entity Entity
	Data   any
}

// EventQueue is a simple FIFO queue. Events not drained during a frame are
// dropped when the frame ends.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
