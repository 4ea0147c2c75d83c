package common

import (
	"math"
	"testing"
)

func TestOrbitCameraAcceleration(t *testing.T) {
	cases := []struct {
		name        string
		left, right bool
		wantSign    float64
	}{
		{"left", true, false, 1},
		{"right", false, true, -1},
		{"both_left_wins", true, true, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cam := NewOrbitCamera()
			cam.Update(c.left, c.right, 16)
			want := c.wantSign * cam.Acceleration * 16
			if math.Abs(cam.YawSpeed-want) > 1e-12 {
				t.Fatalf("yaw speed %v, want %v", cam.YawSpeed, want)
			}
			if math.Abs(cam.Angle-want*16) > 1e-12 {
				t.Fatalf("angle %v, want %v", cam.Angle, want*16)
			}
		})
	}
}

func TestOrbitCameraClamp(t *testing.T) {
	cam := NewOrbitCamera()
	for i := 0; i < 1000; i++ {
		cam.Update(true, false, 16)
		if cam.YawSpeed > cam.MaxYawSpeed {
			t.Fatalf("yaw speed %v above max", cam.YawSpeed)
		}
	}
	if cam.YawSpeed != cam.MaxYawSpeed {
		t.Fatalf("yaw speed %v, want max %v", cam.YawSpeed, cam.MaxYawSpeed)
	}
	for i := 0; i < 2000; i++ {
		cam.Update(false, true, 16)
	}
	if cam.YawSpeed != -cam.MaxYawSpeed {
		t.Fatalf("yaw speed %v, want -max", cam.YawSpeed)
	}
}

func TestOrbitCameraFrictionStops(t *testing.T) {
	cam := NewOrbitCamera()
	cam.YawSpeed = cam.MaxYawSpeed
	for i := 0; i < 500; i++ {
		cam.Update(false, false, 16)
	}
	if cam.YawSpeed != 0 {
		t.Fatalf("yaw speed %v, want exactly 0", cam.YawSpeed)
	}
	angle := cam.Angle
	cam.Update(false, false, 16)
	if cam.Angle != angle {
		t.Fatalf("camera drifted while stopped")
	}
}

func TestOrbitCameraPosition(t *testing.T) {
	cam := NewOrbitCamera()
	p := cam.Position()
	if p != (Vec3{X: 0, Y: 5, Z: 12}) {
		t.Fatalf("position %+v", p)
	}
	cam.Angle = math.Pi / 2
	p = cam.Position()
	if math.Abs(p.X-12) > 1e-9 || math.Abs(p.Z) > 1e-9 {
		t.Fatalf("position at 90 degrees %+v", p)
	}
	if d := math.Hypot(p.X, p.Z); math.Abs(d-cam.Radius) > 1e-9 {
		t.Fatalf("distance from axis %v", d)
	}
	if cam.Target() != (Vec3{Y: 1}) {
		t.Fatalf("target %+v", cam.Target())
	}
}
