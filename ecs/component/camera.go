package component

import "github.com/milk9111/spritesim/common"

// Camera is the scene's orbiting perspective camera.
type Camera struct {
	Orbit *common.OrbitCamera
	// FOV is the vertical field of view in degrees.
	FOV  float64
	Near float64
	Far  float64
	// FogDensity fades billboards exponentially with distance.
	FogDensity float64
}

var CameraComponent = NewComponent[Camera]("camera")
