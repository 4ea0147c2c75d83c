package system

import (
	"testing"

	"github.com/milk9111/spritesim/common"
	"github.com/milk9111/spritesim/ecs"
	"github.com/milk9111/spritesim/ecs/component"
)

func TestAttenuation(t *testing.T) {
	cases := []struct {
		name      string
		ref, dist float64
		want      float64
	}{
		{"disabled", 0, 100, 1},
		{"inside_ref", 5, 3, 1},
		{"at_ref", 5, 5, 1},
		{"twice_ref", 5, 10, 0.5},
		{"far", 5, 50, 0.1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Attenuation(c.ref, c.dist); got != c.want {
				t.Fatalf("Attenuation(%v, %v) = %v, want %v", c.ref, c.dist, got, c.want)
			}
		})
	}
}

func TestAudioSystemPlayStop(t *testing.T) {
	w := ecs.NewWorld()
	cam := ecs.CreateEntity(w)
	orbit := common.NewOrbitCamera()
	orbit.Height = 0
	orbit.Radius = 10
	_ = ecs.Add(w, cam, component.CameraComponent.Kind(), &component.Camera{Orbit: orbit})

	loop := &fakePlayer{}
	death := &fakePlayer{}
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{})
	a := &component.Audio{
		Names:       []string{"attack", "death", "missing"},
		Players:     []component.AudioPlayer{loop, death, nil},
		Volume:      []float64{0.5, 1, 1},
		Play:        make([]bool, 3),
		Stop:        make([]bool, 3),
		RefDistance: 5,
	}
	_ = ecs.Add(w, e, component.AudioComponent.Kind(), a)

	sys := NewAudioSystem(1)
	a.RequestPlay(0)
	a.RequestPlay(2)
	sys.Update(w)

	if !loop.playing || loop.plays != 1 || loop.rewinds != 1 {
		t.Fatalf("attack player %+v", loop)
	}
	if loop.volume != 0.25 {
		t.Fatalf("attenuated volume %v, want 0.25", loop.volume)
	}
	if a.Play[0] || a.Play[2] {
		t.Fatalf("play requests not consumed")
	}

	a.RequestPlay(0)
	sys.Update(w)
	if loop.plays != 1 {
		t.Fatalf("playing sound restarted")
	}

	orbit.Radius = 5
	sys.Update(w)
	if loop.volume != 0.5 {
		t.Fatalf("volume not updated while playing: %v", loop.volume)
	}

	a.RequestStop(0)
	a.RequestPlay(1)
	sys.Update(w)
	if loop.playing {
		t.Fatalf("attack sound not stopped")
	}
	if !death.playing || a.Stop[0] {
		t.Fatalf("death %+v stop %v", death, a.Stop)
	}
}

func TestAudioSystemMasterVolume(t *testing.T) {
	w := ecs.NewWorld()
	p := &fakePlayer{}
	e := ecs.CreateEntity(w)
	a := &component.Audio{
		Names:   []string{"death"},
		Players: []component.AudioPlayer{p},
		Volume:  []float64{0.8},
		Play:    make([]bool, 1),
		Stop:    make([]bool, 1),
	}
	_ = ecs.Add(w, e, component.AudioComponent.Kind(), a)

	a.RequestPlay(0)
	NewAudioSystem(0.5).Update(w)
	if p.volume != 0.4 {
		t.Fatalf("volume %v, want 0.4", p.volume)
	}
	if s := NewAudioSystem(7); s.MasterVolume != 1 {
		t.Fatalf("master volume not clamped: %v", s.MasterVolume)
	}
}
