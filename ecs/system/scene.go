package system

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spritesim/ecs"
	"github.com/milk9111/spritesim/ecs/component"
	"github.com/milk9111/spritesim/ecs/entity"
	"github.com/milk9111/spritesim/ecs/render"
	"github.com/milk9111/spritesim/prefabs"
)

const (
	spawnAttempts = 16
	pickDistance  = 1.5
)

// SceneOptions configures NewScene.
type SceneOptions struct {
	Spec          *prefabs.SceneSpec
	SoldierPrefab string
	Soldier       *prefabs.SoldierSpec
	Sheet         *ebiten.Image
	Rand          *rand.Rand
	Players       entity.PlayerLoader
	Input         InputSource
	// Volume is the master volume, 0 to 1.
	Volume float64
	// Watch, when set, feeds changed prefab and script paths to the scene.
	Watch func() []string
	Debug bool
}

// Scene owns a world of soldiers seen through one orbit camera.
type Scene struct {
	World *ecs.World
	Spec  *prefabs.SceneSpec

	soldierPrefab string
	soldier       *prefabs.SoldierSpec
	sheet         *ebiten.Image
	rng           *rand.Rand
	players       entity.PlayerLoader

	camera   ecs.Entity
	scenario *ScenarioSystem
	events   *EventSystem
}

// NewScene builds the world, its systems in update order, the camera and the
// initial soldiers.
func NewScene(opts SceneOptions) (*Scene, error) {
	if opts.Spec == nil {
		return nil, fmt.Errorf("scene: nil scene spec")
	}
	if opts.Soldier == nil {
		return nil, fmt.Errorf("scene: nil soldier spec")
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	s := &Scene{
		World:         ecs.NewWorld(),
		Spec:          opts.Spec,
		soldierPrefab: opts.SoldierPrefab,
		soldier:       opts.Soldier,
		sheet:         opts.Sheet,
		rng:           rng,
		players:       opts.Players,
	}

	scenario, err := NewScenarioSystem(s, opts.Spec.Script)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	s.scenario = scenario
	s.events = NewEventSystem(opts.Debug)

	bg := opts.Spec.Ground.Background
	grid := opts.Spec.Ground.Grid
	renderer := NewRenderSystem(nil, nil, opts.Spec.Ground.Size)
	if bg != nil && bg.Color != nil {
		renderer.Background = bg.Color
	}
	if grid != nil && grid.Color != nil {
		renderer.Grid = grid.Color
	}

	s.World.AddSystem(NewReloadSystem(opts.Watch, s, scenario))
	s.World.AddSystem(NewInputSystem(opts.Input))
	s.World.AddSystem(scenario)
	s.World.AddSystem(NewCameraSystem())
	s.World.AddSystem(&commandSystem{scene: s})
	s.World.AddSystem(NewSoldierSystem(opts.Spec.MaxCorpses))
	s.World.AddSystem(NewAnimationSystem())
	s.World.AddSystem(NewAudioSystem(opts.Volume))
	s.World.AddSystem(renderer)
	s.World.AddSystem(s.events)

	cam, err := entity.NewCamera(s.World, opts.Spec.Camera)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	s.camera = cam

	for i := 0; i < opts.Spec.Count; i++ {
		if _, err := s.AddRandomSoldier(); err != nil {
			return nil, fmt.Errorf("scene: %w", err)
		}
	}
	return s, nil
}

// Update advances the scene by deltaMs.
func (s *Scene) Update(deltaMs float64) {
	s.World.Update(deltaMs)
}

func (s *Scene) Draw(screen *ebiten.Image) {
	s.World.Draw(screen)
}

// SoldierPrefab returns the prefab name soldiers are built from.
func (s *Scene) SoldierPrefab() string {
	return s.soldierPrefab
}

// Camera returns the camera entity.
func (s *Scene) Camera() ecs.Entity {
	return s.camera
}

// CameraAngle returns the orbit angle of the camera in radians.
func (s *Scene) CameraAngle() float64 {
	if cam, ok := ecs.Get(s.World, s.camera, component.CameraComponent.Kind()); ok && cam.Orbit != nil {
		return cam.Orbit.Angle
	}
	return 0
}

// SetCameraAngle turns the camera to angle radians.
func (s *Scene) SetCameraAngle(angle float64) {
	if cam, ok := ecs.Get(s.World, s.camera, component.CameraComponent.Kind()); ok && cam.Orbit != nil {
		cam.Orbit.Angle = angle
	}
}

// Stats returns the event counters.
func (s *Scene) Stats() EventStats {
	return s.events.Stats
}

// AddRandomSoldier places a soldier at a random free spot inside the spawn
// area. When no free spot is found the last candidate is used.
func (s *Scene) AddRandomSoldier() (ecs.Entity, error) {
	radius := s.soldier.Footprint
	if radius <= 0 {
		radius = s.soldier.Scale / 4
	}
	spread := s.Spec.SpawnSpread
	var x, z float64
	for i := 0; i < spawnAttempts; i++ {
		x = (s.rng.Float64() - 0.5) * spread
		z = (s.rng.Float64()-0.5)*spread + s.Spec.SpawnOffsetZ
		if !s.World.Spatial().Overlaps(x, z, radius) {
			break
		}
	}
	return entity.NewSoldier(s.World, entity.SoldierOptions{
		Prefab:  s.soldierPrefab,
		Spec:    s.soldier,
		Sheet:   s.sheet,
		X:       x,
		Z:       z,
		Rand:    s.rng,
		Players: s.players,
	})
}

// Living returns the soldiers that have not been killed.
func (s *Scene) Living() []ecs.Entity {
	var out []ecs.Entity
	ecs.ForEach(s.World, component.SoldierComponent.Kind(), func(e ecs.Entity, soldier *component.Soldier) {
		if !soldier.Lifecycle.Dead() {
			out = append(out, e)
		}
	})
	return out
}

// LivingCount returns how many soldiers are not dead.
func (s *Scene) LivingCount() int {
	return len(s.Living())
}

// Count returns how many soldiers, living or dead, are in the world.
func (s *Scene) Count() int {
	return ecs.Count(s.World, component.SoldierComponent.Kind())
}

// KillRandomSoldier kills one living soldier picked at random. It returns
// false when none is alive.
func (s *Scene) KillRandomSoldier() bool {
	living := s.Living()
	if len(living) == 0 {
		log.Printf("scene: no living soldiers to kill")
		return false
	}
	return entity.KillSoldier(s.World, living[s.rng.IntN(len(living))])
}

// KillNearest kills the living soldier whose footprint is nearest to the
// ground point (x, z), if one is within reach.
func (s *Scene) KillNearest(x, z float64) bool {
	e, ok := s.World.Spatial().Nearest(x, z, pickDistance)
	if !ok {
		return false
	}
	return entity.KillSoldier(s.World, e)
}

// ApplySoldierSpec swaps the configuration of every soldier built from the
// scene's prefab and returns how many were updated. Animators keep their
// sequence when it still exists, with the index clamped.
func (s *Scene) ApplySoldierSpec(spec *prefabs.SoldierSpec) int {
	if spec == nil {
		return 0
	}
	s.soldier = spec
	if s.sheet != nil {
		s.reloadSheet(spec)
	}
	sheet := spec.SheetConfig()
	lifecycle := spec.LifecycleConfig()

	n := 0
	ecs.ForEach2(s.World, component.SoldierComponent.Kind(), component.AnimationComponent.Kind(), func(e ecs.Entity, soldier *component.Soldier, anim *component.Animation) {
		if soldier.Prefab != s.soldierPrefab {
			return
		}
		anim.Animator.SetConfig(sheet)
		soldier.Lifecycle.SetConfig(lifecycle, anim.Animator)
		n++
		s.World.Events().Push(ecs.Event{Type: ecs.EventPrefabReloaded, Entity: e, Data: s.soldierPrefab})
	})
	return n
}

// reloadSheet re-keys the sheet image of the scene's prefab and hands it to
// every billboard built from it. On failure the old image stays.
func (s *Scene) reloadSheet(spec *prefabs.SoldierSpec) {
	render.ForgetImage(s.soldierPrefab)
	img, err := render.LoadSheet(s.soldierPrefab, spec)
	if err != nil {
		log.Printf("scene: %v", err)
		render.RegisterImage(s.soldierPrefab, s.sheet)
		return
	}
	s.sheet = img
	ecs.ForEach2(s.World, component.AnimationComponent.Kind(), component.BillboardComponent.Kind(), func(_ ecs.Entity, anim *component.Animation, bb *component.Billboard) {
		if anim.Prefab == s.soldierPrefab {
			bb.Sheet = img
		}
	})
}

// commandSystem turns the frame's input into scene commands.
type commandSystem struct {
	scene *Scene
}

func (c *commandSystem) Update(w *ecs.World) {
	_, in, ok := ecs.First(w, component.InputComponent.Kind())
	if !ok {
		return
	}
	if in.AddSoldier {
		if _, err := c.scene.AddRandomSoldier(); err != nil {
			log.Printf("scene: add soldier: %v", err)
		}
	}
	if in.KillSoldier {
		c.scene.KillRandomSoldier()
	}
	if in.Clicked {
		pr, _, ok := cameraProjector(w)
		if !ok {
			return
		}
		if x, z, ok := pr.GroundPoint(in.ClickX, in.ClickY); ok {
			c.scene.KillNearest(x, z)
		}
	}
}
