package render

import (
	"math"

	"github.com/milk9111/spritesim/common"
)

// Projector maps world points to screen pixels for a pinhole camera looking
// from Eye at Target with +Y up.
type Projector struct {
	Eye    common.Vec3
	Near   float64
	Far    float64
	Width  float64
	Height float64

	right   common.Vec3
	up      common.Vec3
	forward common.Vec3
	focal   float64
}

// NewProjector builds a projector. fovDeg is the vertical field of view.
func NewProjector(eye, target common.Vec3, fovDeg, near, far, width, height float64) *Projector {
	if fovDeg <= 0 || fovDeg >= 180 {
		fovDeg = 60
	}
	if near <= 0 {
		near = 0.1
	}
	if far <= near {
		far = near + 100
	}
	forward := target.Sub(eye).Normalize()
	right := forward.Cross(common.Vec3{Y: 1}).Normalize()
	if right == (common.Vec3{}) {
		// looking straight up or down
		right = common.Vec3{X: 1}
	}
	up := right.Cross(forward)
	return &Projector{
		Eye:     eye,
		Near:    near,
		Far:     far,
		Width:   width,
		Height:  height,
		right:   right,
		up:      up,
		forward: forward,
		focal:   (height / 2) / math.Tan(fovDeg*math.Pi/360),
	}
}

// Project returns the screen position of p and its depth along the view
// direction. ok is false for points outside the near/far range.
func (pr *Projector) Project(p common.Vec3) (sx, sy, depth float64, ok bool) {
	d := p.Sub(pr.Eye)
	depth = d.Dot(pr.forward)
	if depth < pr.Near || depth > pr.Far {
		return 0, 0, depth, false
	}
	x := d.Dot(pr.right)
	y := d.Dot(pr.up)
	sx = pr.Width/2 + x*pr.focal/depth
	sy = pr.Height/2 - y*pr.focal/depth
	return sx, sy, depth, true
}

// PixelsPerUnit returns how many pixels one world unit spans at depth.
func (pr *Projector) PixelsPerUnit(depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	return pr.focal / depth
}

// GroundPoint casts a ray through the screen pixel (sx, sy) and returns
// where it meets the ground plane Y = 0.
func (pr *Projector) GroundPoint(sx, sy float64) (x, z float64, ok bool) {
	dx := (sx - pr.Width/2) / pr.focal
	dy := -(sy - pr.Height/2) / pr.focal
	dir := pr.forward.Add(pr.right.Scale(dx)).Add(pr.up.Scale(dy)).Normalize()
	if dir.Y >= 0 {
		return 0, 0, false
	}
	t := -pr.Eye.Y / dir.Y
	hit := pr.Eye.Add(dir.Scale(t))
	return hit.X, hit.Z, true
}

// Fog returns the visibility (1 = clear) of a point at depth for an
// exponential-squared fog of the given density.
func Fog(density, depth float64) float64 {
	if density <= 0 {
		return 1
	}
	f := density * depth
	return common.Clamp(math.Exp(-f*f), 0, 1)
}
