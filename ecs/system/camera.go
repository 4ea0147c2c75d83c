package system

import (
	"github.com/milk9111/spritesim/common"
	"github.com/milk9111/spritesim/ecs"
	"github.com/milk9111/spritesim/ecs/component"
	"github.com/milk9111/spritesim/ecs/render"
)

type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (c *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	delta := w.Clock().Delta
	ecs.ForEach2(w, component.CameraComponent.Kind(), component.InputComponent.Kind(), func(_ ecs.Entity, cam *component.Camera, in *component.Input) {
		cam.Orbit.Update(in.Left, in.Right, delta)
	})
}

// cameraProjector builds the projector of the first camera in w for a
// screen of the base resolution.
func cameraProjector(w *ecs.World) (*render.Projector, *component.Camera, bool) {
	_, cam, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok || cam.Orbit == nil {
		return nil, nil, false
	}
	pr := render.NewProjector(cam.Orbit.Position(), cam.Orbit.Target(), cam.FOV, cam.Near, cam.Far, common.BaseWidth, common.BaseHeight)
	return pr, cam, true
}
