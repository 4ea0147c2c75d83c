package render

import (
	"math"
	"testing"

	"github.com/milk9111/spritesim/common"
)

func testProjector() *Projector {
	return NewProjector(common.Vec3{Y: 5, Z: 12}, common.Vec3{Y: 1}, 60, 0.1, 100, 1280, 720)
}

func TestProjectTarget(t *testing.T) {
	pr := testProjector()
	sx, sy, depth, ok := pr.Project(common.Vec3{Y: 1})
	if !ok {
		t.Fatalf("target not visible")
	}
	if math.Abs(sx-640) > 1e-9 || math.Abs(sy-360) > 1e-9 {
		t.Fatalf("target at (%v, %v), want screen centre", sx, sy)
	}
	if want := math.Hypot(4, 12); math.Abs(depth-want) > 1e-9 {
		t.Fatalf("depth %v, want %v", depth, want)
	}
}

func TestProjectClipping(t *testing.T) {
	pr := testProjector()
	cases := []struct {
		name string
		p    common.Vec3
		ok   bool
	}{
		{"in_front", common.Vec3{X: 2, Z: -3}, true},
		{"behind_camera", common.Vec3{Y: 5, Z: 20}, false},
		{"beyond_far", common.Vec3{Z: -200}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, _, _, ok := pr.Project(c.p); ok != c.ok {
				t.Fatalf("ok=%v, want %v", ok, c.ok)
			}
		})
	}
}

func TestProjectOrientation(t *testing.T) {
	pr := testProjector()
	lx, _, _, _ := pr.Project(common.Vec3{X: -1, Y: 1})
	rx, _, _, _ := pr.Project(common.Vec3{X: 1, Y: 1})
	if lx >= rx {
		t.Fatalf("-X at %v should be left of +X at %v", lx, rx)
	}
	_, ty, _, _ := pr.Project(common.Vec3{Y: 2})
	_, by, _, _ := pr.Project(common.Vec3{Y: 0})
	if ty >= by {
		t.Fatalf("higher point should be higher on screen")
	}
}

func TestGroundPointRoundTrip(t *testing.T) {
	pr := testProjector()
	for _, p := range []common.Vec3{{X: 0, Z: 0}, {X: 3, Z: -4}, {X: -2.5, Z: 6}} {
		sx, sy, _, ok := pr.Project(p)
		if !ok {
			t.Fatalf("%+v not visible", p)
		}
		x, z, ok := pr.GroundPoint(sx, sy)
		if !ok {
			t.Fatalf("no ground hit for %+v", p)
		}
		if math.Abs(x-p.X) > 1e-6 || math.Abs(z-p.Z) > 1e-6 {
			t.Fatalf("round trip %+v -> (%v, %v)", p, x, z)
		}
	}
	if _, _, ok := pr.GroundPoint(640, 0); ok {
		t.Fatalf("ray above the horizon hit the ground")
	}
}

func TestFog(t *testing.T) {
	if Fog(0, 50) != 1 {
		t.Fatalf("no fog should be clear")
	}
	near := Fog(0.04, 5)
	far := Fog(0.04, 40)
	if !(near > far) || near > 1 || far < 0 {
		t.Fatalf("fog near %v far %v", near, far)
	}
}
