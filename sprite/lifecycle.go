package sprite

import "math/rand/v2"

// LifecycleConfig holds the attack/death constants of a soldier type.
type LifecycleConfig struct {
	WalkSequence   string
	AttackSequence string
	DeathSequence  string

	InitialTimerMaxMs float64
	IntervalMinMs     float64
	IntervalJitterMs  float64

	BurstMin int
	BurstMax int

	// RerollInterval picks a fresh attack interval after every burst.
	RerollInterval bool
}

// DefaultLifecycleConfig returns the constants used by the warehouse soldier.
func DefaultLifecycleConfig() LifecycleConfig {
	return LifecycleConfig{
		WalkSequence:      "walk-front",
		AttackSequence:    "attack",
		DeathSequence:     "death",
		InitialTimerMaxMs: 5000,
		IntervalMinMs:     5000,
		IntervalJitterMs:  3000,
		BurstMin:          1,
		BurstMax:          4,
	}
}

// Lifecycle drives the attack and death behaviour of a single soldier on
// top of its animator.
type Lifecycle struct {
	cfg LifecycleConfig
	rng *rand.Rand

	dead      bool
	deathDone bool
	attacking bool
	timer     float64
	interval  float64
	remaining int
}

// NewLifecycle creates a living soldier lifecycle with a randomized initial
// attack timer and interval.
func NewLifecycle(cfg LifecycleConfig, rng *rand.Rand) *Lifecycle {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if cfg.BurstMin < 1 {
		cfg.BurstMin = 1
	}
	if cfg.BurstMax < cfg.BurstMin {
		cfg.BurstMax = cfg.BurstMin
	}
	l := &Lifecycle{cfg: cfg, rng: rng}
	l.timer = rng.Float64() * cfg.InitialTimerMaxMs
	l.interval = l.rollInterval()
	return l
}

// Update advances the soldier by one frame. timeMs is the absolute scene time
// handed to the animator, deltaMs the time since the previous frame.
func (l *Lifecycle) Update(anim *Animator, timeMs, deltaMs float64) {
	if l == nil || anim == nil {
		return
	}

	if l.dead {
		if !anim.Finished() {
			anim.Update(timeMs)
		}
		if anim.Finished() {
			l.deathDone = true
		}
		return
	}

	anim.Update(timeMs)

	if l.attacking {
		if !anim.Finished() {
			return
		}
		if l.remaining > 0 {
			l.remaining--
			anim.SetSequence(l.cfg.AttackSequence, false)
			return
		}
		l.attacking = false
		anim.SetSequence(l.cfg.WalkSequence, true)
		if l.cfg.RerollInterval {
			l.interval = l.rollInterval()
		}
		return
	}

	l.timer += deltaMs
	if l.timer > l.interval {
		shots := l.cfg.BurstMin + l.rng.IntN(l.cfg.BurstMax-l.cfg.BurstMin+1)
		l.remaining = shots - 1
		l.attacking = true
		anim.SetSequence(l.cfg.AttackSequence, false)
		l.timer = 0
	}
}

// Die switches the soldier to its death sequence. Calling it on a dead
// soldier does nothing.
func (l *Lifecycle) Die(anim *Animator, cue SoundCue) {
	if l == nil || l.dead {
		return
	}
	if cue == nil {
		cue = NopSoundCue{}
	}
	l.dead = true
	l.attacking = false
	l.remaining = 0
	if anim != nil {
		anim.SetSequence(l.cfg.DeathSequence, false)
	}
	cue.PlayAttackSound(false)
	cue.PlayDeathSound()
}

func (l *Lifecycle) rollInterval() float64 {
	return l.cfg.IntervalMinMs + l.rng.Float64()*l.cfg.IntervalJitterMs
}

// Config returns the lifecycle constants.
func (l *Lifecycle) Config() LifecycleConfig { return l.cfg }

// SetConfig swaps the lifecycle constants, keeping the current timers. The
// remaining burst is clamped to the new maximum. anim must already carry the
// matching sheet config: an attack whose sequence is gone ends and returns
// to walking, and a dead soldier stays on the last frame of its death.
func (l *Lifecycle) SetConfig(cfg LifecycleConfig, anim *Animator) {
	if l == nil {
		return
	}
	if cfg.BurstMin < 1 {
		cfg.BurstMin = 1
	}
	if cfg.BurstMax < cfg.BurstMin {
		cfg.BurstMax = cfg.BurstMin
	}
	if limit := cfg.BurstMax - 1; l.remaining > limit {
		l.remaining = limit
	}
	l.cfg = cfg
	if anim == nil {
		return
	}

	switch {
	case l.dead:
		if anim.Sequence() == cfg.DeathSequence {
			return
		}
		if _, ok := anim.Config().Sequence(cfg.DeathSequence); ok {
			anim.SetSequence(cfg.DeathSequence, false)
		}
		anim.ForceLastFrame()
	case l.attacking && anim.Sequence() != cfg.AttackSequence:
		l.attacking = false
		l.remaining = 0
		anim.SetSequence(cfg.WalkSequence, true)
		if cfg.RerollInterval {
			l.interval = l.rollInterval()
		}
	}
}

func (l *Lifecycle) Dead() bool { return l.dead }

func (l *Lifecycle) DeathDone() bool { return l.deathDone }

func (l *Lifecycle) Attacking() bool { return l.attacking }

// Remaining is the number of burst shots still queued after the current one.
func (l *Lifecycle) Remaining() int { return l.remaining }

func (l *Lifecycle) Timer() float64 { return l.timer }

func (l *Lifecycle) Interval() float64 { return l.interval }
