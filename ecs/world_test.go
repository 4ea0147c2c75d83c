package ecs

import (
	"testing"

	"github.com/milk9111/spritesim/ecs/component"
)

type position struct{ X, Z float64 }

type health struct{ HP int }

var (
	positionComponent = component.NewComponent[position]("test_position")
	healthComponent   = component.NewComponent[health]("test_health")
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return false the second time")
				}
			}
		})
	}
}

func TestWorldStaleHandle(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	if err := Add(w, e, healthComponent.Kind(), &health{HP: 3}); err != nil {
		t.Fatalf("add: %v", err)
	}
	DestroyEntity(w, e)

	reused := CreateEntity(w)
	if reused == e {
		t.Fatalf("recycled entity kept its generation")
	}
	if IsAlive(w, e) {
		t.Fatalf("stale handle reported alive")
	}
	if _, ok := Get(w, reused, healthComponent.Kind()); ok {
		t.Fatalf("recycled entity inherited a component")
	}
	if err := Add(w, e, healthComponent.Kind(), &health{}); err == nil {
		t.Fatalf("add on stale handle should fail")
	}
}

func TestWorldComponents(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)

	if err := Add(w, e, healthComponent.Kind(), nil); err == nil {
		t.Fatalf("nil component should be rejected")
	}
	if err := Add(w, e, positionComponent.Kind(), &position{X: 1, Z: 2}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if !Has(w, e, positionComponent.Kind()) || Has(w, e, healthComponent.Kind()) {
		t.Fatalf("Has mismatch")
	}
	p, ok := Get(w, e, positionComponent.Kind())
	if !ok || p.X != 1 || p.Z != 2 {
		t.Fatalf("get %+v %v", p, ok)
	}
	p.X = 5
	if p2, _ := Get(w, e, positionComponent.Kind()); p2.X != 5 {
		t.Fatalf("Get should return the stored pointer")
	}
	if !Remove(w, e, positionComponent.Kind()) || Has(w, e, positionComponent.Kind()) {
		t.Fatalf("remove failed")
	}
	if Remove(w, e, positionComponent.Kind()) {
		t.Fatalf("second remove should report false")
	}
}

func TestForEach2(t *testing.T) {
	w := NewWorld()
	both := map[Entity]bool{}
	for i := 0; i < 6; i++ {
		e := CreateEntity(w)
		_ = Add(w, e, positionComponent.Kind(), &position{X: float64(i)})
		if i%2 == 0 {
			_ = Add(w, e, healthComponent.Kind(), &health{HP: i})
			both[e] = true
		}
	}

	got := map[Entity]bool{}
	ForEach2(w, positionComponent.Kind(), healthComponent.Kind(), func(e Entity, p *position, h *health) {
		if int(p.X) != h.HP {
			t.Fatalf("entity %s: position %v health %d", e, p.X, h.HP)
		}
		got[e] = true
	})
	if len(got) != len(both) {
		t.Fatalf("visited %d entities, want %d", len(got), len(both))
	}
	for e := range both {
		if !got[e] {
			t.Fatalf("entity %s not visited", e)
		}
	}

	if Count(w, positionComponent.Kind()) != 6 || Count(w, healthComponent.Kind()) != 3 {
		t.Fatalf("counts %d %d", Count(w, positionComponent.Kind()), Count(w, healthComponent.Kind()))
	}
}

func TestForEachDestroyDuringIteration(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 4; i++ {
		e := CreateEntity(w)
		_ = Add(w, e, healthComponent.Kind(), &health{HP: i})
	}
	visited := 0
	ForEach(w, healthComponent.Kind(), func(e Entity, h *health) {
		visited++
		DestroyEntity(w, e)
	})
	if visited != 4 || Count(w, healthComponent.Kind()) != 0 || len(Entities(w)) != 0 {
		t.Fatalf("visited %d, remaining %d", visited, Count(w, healthComponent.Kind()))
	}
}

type recordingSystem struct {
	name  string
	order *[]string
	now   []float64
}

func (s *recordingSystem) Update(w *World) {
	*s.order = append(*s.order, s.name)
	s.now = append(s.now, w.Clock().Now)
}

func TestWorldUpdateOrderAndClock(t *testing.T) {
	w := NewWorld()
	var order []string
	a := &recordingSystem{name: "a", order: &order}
	b := &recordingSystem{name: "b", order: &order}
	w.AddSystem(a)
	w.AddSystem(b)

	w.Update(10)
	w.Update(15)

	if len(order) != 4 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("order %v", order)
	}
	if a.now[0] != 10 || a.now[1] != 25 {
		t.Fatalf("clock %v", a.now)
	}
	if c := w.Clock(); c.Delta != 15 || c.Frame != 2 {
		t.Fatalf("clock %+v", c)
	}
}

type drainSystem struct {
	got []Event
}

func (s *drainSystem) Update(w *World) {
	s.got = append(s.got, w.Events().Drain()...)
}

func TestWorldEventsFlushed(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	d := &drainSystem{}
	w.AddSystem(d)

	w.Events().Push(Event{Type: EventSoldierSpawned, Entity: e})
	w.Update(16)
	if len(d.got) != 1 || d.got[0].Entity != e {
		t.Fatalf("drained %+v", d.got)
	}

	w.AddSystem(pushSystem{})
	w.Update(16)
	if w.Events().Len() != 0 {
		t.Fatalf("events left after update: %d", w.Events().Len())
	}
}

type pushSystem struct{}

func (pushSystem) Update(w *World) {
	w.Events().Push(Event{Type: EventAttackStarted})
}
