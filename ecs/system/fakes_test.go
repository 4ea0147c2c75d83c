package system

import (
	"github.com/milk9111/spritesim/ecs"
	"github.com/milk9111/spritesim/ecs/component"
)

type fakePlayer struct {
	playing bool
	plays   int
	rewinds int
	volume  float64
}

func (p *fakePlayer) IsPlaying() bool { return p.playing }

func (p *fakePlayer) Play() {
	p.playing = true
	p.plays++
}

func (p *fakePlayer) Pause() { p.playing = false }

func (p *fakePlayer) Rewind() error {
	p.rewinds++
	return nil
}

func (p *fakePlayer) SetVolume(v float64) { p.volume = v }

// scriptedInput hands out one queued frame of input per poll.
type scriptedInput struct {
	queue []component.Input
}

func (s *scriptedInput) Poll(in *component.Input) {
	if len(s.queue) == 0 {
		return
	}
	*in = s.queue[0]
	s.queue = s.queue[1:]
}

type fakeHost struct {
	alive  int
	spawns int
	kills  int
}

func (h *fakeHost) AddRandomSoldier() (ecs.Entity, error) {
	h.spawns++
	h.alive++
	return 0, nil
}

func (h *fakeHost) KillRandomSoldier() bool {
	if h.alive == 0 {
		return false
	}
	h.kills++
	h.alive--
	return true
}

func (h *fakeHost) LivingCount() int { return h.alive }
