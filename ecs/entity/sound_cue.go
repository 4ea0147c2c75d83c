package entity

import (
	"math/rand/v2"

	"github.com/milk9111/spritesim/ecs/component"
)

// audioCue turns sound cues into play/stop requests on an Audio component.
type audioCue struct {
	audio *component.Audio
	rng   *rand.Rand
}

func (c *audioCue) PlayAttackSound(play bool) {
	if play {
		c.audio.RequestPlay(attackSlot)
		return
	}
	c.audio.RequestStop(attackSlot)
}

// PlayDeathSound requests one loaded clip from the death pool.
func (c *audioCue) PlayDeathSound() {
	var loaded []int
	for i := attackSlot + 1; i < len(c.audio.Players); i++ {
		if c.audio.Players[i] != nil {
			loaded = append(loaded, i)
		}
	}
	if len(loaded) == 0 {
		return
	}
	c.audio.RequestPlay(loaded[c.rng.IntN(len(loaded))])
}
