package system

import (
	"sort"

	"github.com/milk9111/spritesim/ecs"
	"github.com/milk9111/spritesim/ecs/component"
)

// SoldierSystem runs every soldier lifecycle and lays finished deaths on the
// ground. When MaxCorpses is positive the oldest corpses beyond it are
// removed from the world.
type SoldierSystem struct {
	MaxCorpses int
}

func NewSoldierSystem(maxCorpses int) *SoldierSystem {
	return &SoldierSystem{MaxCorpses: maxCorpses}
}

func (s *SoldierSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	clock := w.Clock()

	ecs.ForEach2(w, component.SoldierComponent.Kind(), component.AnimationComponent.Kind(), func(e ecs.Entity, soldier *component.Soldier, anim *component.Animation) {
		lc := soldier.Lifecycle
		wasDone := lc.DeathDone()
		lc.Update(anim.Animator, clock.Now, clock.Delta)
		if !lc.Dead() {
			return
		}

		w.Spatial().Remove(e)
		if wasDone || !lc.DeathDone() {
			return
		}
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			t.Y = soldier.LyingY
		}
		if bb, ok := ecs.Get(w, e, component.BillboardComponent.Kind()); ok {
			bb.Lying = true
		}
		_ = ecs.Add(w, e, component.CorpseTagComponent.Kind(), &component.CorpseTag{Since: clock.Now})
	})

	s.trimCorpses(w)
}

func (s *SoldierSystem) trimCorpses(w *ecs.World) {
	if s.MaxCorpses <= 0 {
		return
	}
	type corpse struct {
		e     ecs.Entity
		since float64
	}
	var corpses []corpse
	ecs.ForEach(w, component.CorpseTagComponent.Kind(), func(e ecs.Entity, tag *component.CorpseTag) {
		corpses = append(corpses, corpse{e: e, since: tag.Since})
	})
	if len(corpses) <= s.MaxCorpses {
		return
	}
	sort.SliceStable(corpses, func(i, j int) bool { return corpses[i].since < corpses[j].since })
	for _, c := range corpses[:len(corpses)-s.MaxCorpses] {
		ecs.DestroyEntity(w, c.e)
	}
}
