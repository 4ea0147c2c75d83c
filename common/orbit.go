package common

import "math"

const yawSpeedEpsilon = 0.00001

// OrbitCamera circles the scene origin at a fixed radius and height. Yaw
// speed is in radians per millisecond.
type OrbitCamera struct {
	Angle        float64
	Radius       float64
	Height       float64
	YawSpeed     float64
	MaxYawSpeed  float64
	Acceleration float64
	Friction     float64
	TargetY      float64
}

// NewOrbitCamera returns a camera with the scene's default constants.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Radius:       12,
		Height:       5,
		MaxYawSpeed:  0.005,
		Acceleration: 0.000005,
		Friction:     0.95,
		TargetY:      1,
	}
}

// Update applies one frame of input. left wins when both keys are held.
func (c *OrbitCamera) Update(left, right bool, deltaMs float64) {
	if c == nil {
		return
	}
	switch {
	case left:
		c.YawSpeed += c.Acceleration * deltaMs
	case right:
		c.YawSpeed -= c.Acceleration * deltaMs
	}

	c.YawSpeed = math.Min(math.Max(c.YawSpeed, -c.MaxYawSpeed), c.MaxYawSpeed)

	if !left && !right {
		c.YawSpeed *= c.Friction
		if math.Abs(c.YawSpeed) < yawSpeedEpsilon {
			c.YawSpeed = 0
		}
	}

	c.Angle += c.YawSpeed * deltaMs
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() Vec3 {
	return Vec3{X: math.Sin(c.Angle) * c.Radius, Y: c.Height, Z: math.Cos(c.Angle) * c.Radius}
}

// Target returns the point the camera looks at.
func (c *OrbitCamera) Target() Vec3 {
	return Vec3{Y: c.TargetY}
}
