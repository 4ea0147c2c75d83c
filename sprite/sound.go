package sprite

// SoundCue is the sound capability an animator and lifecycle need. It is
// implemented by whatever owns the actual audio players.
type SoundCue interface {
	// PlayAttackSound starts (true) or stops (false) the looping attack sound.
	PlayAttackSound(play bool)
	// PlayDeathSound plays one sound picked from the death pool.
	PlayDeathSound()
}

// NopSoundCue ignores every cue.
type NopSoundCue struct{}

func (NopSoundCue) PlayAttackSound(bool) {}

func (NopSoundCue) PlayDeathSound() {}
