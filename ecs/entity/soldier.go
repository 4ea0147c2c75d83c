package entity

import (
	"fmt"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spritesim/ecs"
	"github.com/milk9111/spritesim/ecs/component"
	"github.com/milk9111/spritesim/prefabs"
	"github.com/milk9111/spritesim/sprite"
)

const lyingHeight = 0.01

// SoldierOptions describes one soldier to place in a world.
type SoldierOptions struct {
	Prefab string
	Spec   *prefabs.SoldierSpec
	Sheet  *ebiten.Image
	X, Z   float64
	Rand   *rand.Rand
	// Players creates audio players; nil leaves the soldier silent.
	Players PlayerLoader
}

// NewSoldier creates a living soldier at (X, Z) walking its default
// sequence.
func NewSoldier(w *ecs.World, opts SoldierOptions) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("soldier: world is nil")
	}
	spec := opts.Spec
	if spec == nil {
		return 0, fmt.Errorf("soldier: %q: nil spec", opts.Prefab)
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	e := ecs.CreateEntity(w)
	fail := func(what string, err error) (ecs.Entity, error) {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("soldier: add %s: %w", what, err)
	}

	audioComp := buildAudioComponent(spec.Sounds, opts.Players)
	cue := &audioCue{audio: audioComp, rng: rng}

	anim := sprite.NewAnimator(spec.SheetConfig(), cue)
	lifecycle := sprite.NewLifecycle(spec.LifecycleConfig(), rng)
	// sequence names can change on hot reload
	anim.Events.Subscribe(func(a *sprite.Animator, evt sprite.AnimationEvent) {
		switch {
		case evt.Type == sprite.AnimationEventSequenceStarted && evt.Sequence == a.Config().AttackName():
			w.Events().Push(ecs.Event{Type: ecs.EventAttackStarted, Entity: e})
		case evt.Type == sprite.AnimationEventFinished && evt.Sequence == lifecycle.Config().DeathSequence:
			w.Events().Push(ecs.Event{Type: ecs.EventDeathFinished, Entity: e})
		}
	})

	standY := spec.Scale / 2
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: opts.X, Y: standY, Z: opts.Z}); err != nil {
		return fail("transform", err)
	}

	bb := &component.Billboard{Sheet: opts.Sheet, Height: spec.Scale}
	bb.OffsetU, bb.OffsetV = anim.Offset()
	if opts.Sheet != nil {
		b := opts.Sheet.Bounds()
		bb.Source = anim.FrameRect(b.Dx(), b.Dy())
	}
	if err := ecs.Add(w, e, component.BillboardComponent.Kind(), bb); err != nil {
		return fail("billboard", err)
	}

	if err := ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{Animator: anim, Prefab: opts.Prefab}); err != nil {
		return fail("animation", err)
	}

	footprint := spec.Footprint
	if footprint <= 0 {
		footprint = spec.Scale / 4
	}
	if err := ecs.Add(w, e, component.SoldierComponent.Kind(), &component.Soldier{
		Lifecycle: lifecycle,
		Cue:       cue,
		Prefab:    opts.Prefab,
		Radius:    footprint,
		StandY:    standY,
		LyingY:    lyingHeight,
	}); err != nil {
		return fail("soldier", err)
	}

	if err := ecs.Add(w, e, component.AudioComponent.Kind(), audioComp); err != nil {
		return fail("audio", err)
	}

	w.Spatial().Insert(e, opts.X, opts.Z, footprint)
	w.Events().Push(ecs.Event{Type: ecs.EventSoldierSpawned, Entity: e})
	return e, nil
}

// KillSoldier starts the death of a soldier. It returns false when e is not
// a living soldier.
func KillSoldier(w *ecs.World, e ecs.Entity) bool {
	s, ok := ecs.Get(w, e, component.SoldierComponent.Kind())
	if !ok || s.Lifecycle.Dead() {
		return false
	}
	anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind())
	if !ok {
		return false
	}
	s.Lifecycle.Die(anim.Animator, s.Cue)
	w.Spatial().Remove(e)
	w.Events().Push(ecs.Event{Type: ecs.EventSoldierKilled, Entity: e})
	return true
}
