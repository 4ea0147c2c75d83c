package entity

import (
	"fmt"

	"github.com/milk9111/spritesim/ecs"
	"github.com/milk9111/spritesim/ecs/component"
	"github.com/milk9111/spritesim/prefabs"
)

// NewCamera creates the scene camera together with the input state it
// reads.
func NewCamera(w *ecs.World, spec prefabs.CameraSpec) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("camera: world is nil")
	}
	e := ecs.CreateEntity(w)

	fov := spec.FOV
	if fov <= 0 {
		fov = 60
	}
	near := spec.Near
	if near <= 0 {
		near = 0.1
	}
	far := spec.Far
	if far <= near {
		far = 100
	}

	if err := ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}
	if err := ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{
		Orbit:      spec.OrbitCamera(),
		FOV:        fov,
		Near:       near,
		Far:        far,
		FogDensity: spec.FogDensity,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("camera: add input: %w", err)
	}
	return e, nil
}
