package system

import (
	"log"

	"github.com/milk9111/spritesim/common"
	"github.com/milk9111/spritesim/ecs"
	"github.com/milk9111/spritesim/ecs/component"
)

// AudioSystem starts and stops sound players on request and scales their
// volume by distance from the camera.
type AudioSystem struct {
	// MasterVolume scales every sound, 0 to 1.
	MasterVolume float64
}

func NewAudioSystem(masterVolume float64) *AudioSystem {
	return &AudioSystem{MasterVolume: common.Clamp(masterVolume, 0, 1)}
}

func (a *AudioSystem) Update(w *ecs.World) {
	var listener common.Vec3
	hasListener := false
	if _, cam, ok := ecs.First(w, component.CameraComponent.Kind()); ok && cam.Orbit != nil {
		listener = cam.Orbit.Position()
		hasListener = true
	}

	ecs.ForEach(w, component.AudioComponent.Kind(), func(e ecs.Entity, audioComp *component.Audio) {
		gain := a.MasterVolume
		if hasListener {
			if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
				dist := common.Vec3{X: t.X, Y: t.Y, Z: t.Z}.Sub(listener).Len()
				gain *= Attenuation(audioComp.RefDistance, dist)
			}
		}

		count := len(audioComp.Play)
		if len(audioComp.Players) < count {
			count = len(audioComp.Players)
		}
		if len(audioComp.Volume) < count {
			count = len(audioComp.Volume)
		}

		for i := 0; i < count; i++ {
			player := audioComp.Players[i]
			if player == nil {
				audioComp.Play[i] = false
				continue
			}
			volume := audioComp.Volume[i] * gain

			if audioComp.Play[i] && !player.IsPlaying() {
				player.SetVolume(volume)
				if err := player.Rewind(); err != nil {
					log.Printf("audio: entity=%s rewind %q: %v", e, audioComp.Names[i], err)
				}
				player.Play()
			} else if player.IsPlaying() {
				player.SetVolume(volume)
			}

			audioComp.Play[i] = false
		}

		for i := 0; i < count; i++ {
			if !audioComp.Stop[i] {
				continue
			}

			player := audioComp.Players[i]
			if player != nil && player.IsPlaying() {
				player.Pause()
			}

			audioComp.Stop[i] = false
		}
	})
}

// Attenuation is the inverse-distance gain for a source dist units from the
// listener: 1 inside refDistance, refDistance/dist beyond it.
func Attenuation(refDistance, dist float64) float64 {
	if refDistance <= 0 || dist <= refDistance {
		return 1
	}
	return refDistance / dist
}
