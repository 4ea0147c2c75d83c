package entity

import (
	"log"

	"github.com/milk9111/spritesim/assets"
	"github.com/milk9111/spritesim/ecs/component"
	"github.com/milk9111/spritesim/prefabs"
)

// PlayerLoader creates an audio player for an asset path.
type PlayerLoader func(path string, loop bool) (component.AudioPlayer, error)

// DefaultPlayerLoader loads WAV assets through the shared audio context.
func DefaultPlayerLoader(path string, loop bool) (component.AudioPlayer, error) {
	p, err := assets.NewPlayer(path, loop)
	if err != nil {
		return nil, err
	}
	return p, nil
}

const attackSlot = 0

// buildAudioComponent lays out slot 0 as the looping attack sound and the
// remaining slots as the death pool. Clips that fail to load keep their slot
// with a nil player so indices stay stable.
func buildAudioComponent(sounds prefabs.SoundsSpec, load PlayerLoader) *component.Audio {
	clips := append([]prefabs.AudioSpec{sounds.Attack}, sounds.Death...)
	n := len(clips)

	a := &component.Audio{
		Names:       make([]string, 0, n),
		Players:     make([]component.AudioPlayer, 0, n),
		Volume:      make([]float64, 0, n),
		Play:        make([]bool, n),
		Stop:        make([]bool, n),
		RefDistance: sounds.RefDistance,
	}

	for i, clip := range clips {
		var player component.AudioPlayer
		if clip.File != "" && load != nil {
			p, err := load(clip.File, i == attackSlot)
			if err != nil {
				log.Printf("entity: audio clip %d (%q): %v", i, clip.Name, err)
			} else {
				player = p
			}
		}
		volume := clip.Volume
		if volume <= 0 {
			volume = 1
		}
		a.Names = append(a.Names, clip.Name)
		a.Players = append(a.Players, player)
		a.Volume = append(a.Volume, volume)
	}

	return a
}
