package sprite

import "image"

// Animator steps through the named frame sequences of a sprite sheet. It is
// driven by absolute time in milliseconds and keeps the texture offset of the
// current frame up to date for the renderer.
type Animator struct {
	cfg           SheetConfig
	cue           SoundCue
	frameDuration float64

	current  string
	index    int
	loop     bool
	finished bool
	lastTime float64

	offsetX float64
	offsetY float64

	Events AnimationEventEmitter
}

// NewAnimator creates an animator playing cfg.DefaultSequence in a loop.
// A nil cue is replaced with NopSoundCue.
func NewAnimator(cfg SheetConfig, cue SoundCue) *Animator {
	if cue == nil {
		cue = NopSoundCue{}
	}
	a := &Animator{
		cfg:           cfg,
		cue:           cue,
		frameDuration: cfg.FrameDuration(),
		current:       cfg.DefaultSequence,
		loop:          true,
	}
	a.updateOffset()
	return a
}

// SetSequence switches to the named sequence. Re-entering the current
// sequence with loop set is a no-op on the index; anything else restarts at
// index 0. Entering or leaving the attack sequence toggles the attack sound.
func (a *Animator) SetSequence(name string, loop bool) {
	if a == nil {
		return
	}
	attack := a.cfg.AttackName()
	wasAttacking := a.current == attack
	isAttacking := name == attack

	restarted := false
	if a.current != name || !loop {
		a.current = name
		a.index = 0
		a.loop = loop
		a.finished = false
		restarted = true
	}

	if isAttacking && !wasAttacking {
		a.cue.PlayAttackSound(true)
	} else if !isAttacking && wasAttacking {
		a.cue.PlayAttackSound(false)
	}

	if restarted {
		a.updateOffset()
		frame, _ := a.Frame()
		a.Events.Emit(a, AnimationEvent{Type: AnimationEventSequenceStarted, Sequence: name, Frame: frame})
	}
}

// ForceLastFrame jumps to the last frame of the current sequence and marks
// the animator finished.
func (a *Animator) ForceLastFrame() {
	if a == nil {
		return
	}
	seq, ok := a.cfg.Sequence(a.current)
	if !ok || len(seq) == 0 {
		return
	}
	a.index = len(seq) - 1
	a.updateOffset()
	a.finish()
}

// Update advances the current sequence by at most one frame once more than a
// frame duration has elapsed since the last advance.
func (a *Animator) Update(timeMs float64) {
	if a == nil || a.finished {
		return
	}
	seq, ok := a.cfg.Sequence(a.current)
	if !ok || len(seq) == 0 {
		return
	}

	last := len(seq) - 1
	if !a.loop && a.index >= last {
		a.ForceLastFrame()
		return
	}

	if timeMs-a.lastTime <= a.frameDuration {
		return
	}
	a.lastTime += a.frameDuration
	if timeMs-a.lastTime > a.frameDuration {
		// more than a frame behind (first update, or a long stall)
		a.lastTime = timeMs
	}

	a.index++
	if a.index > last {
		if a.loop {
			a.index = 0
		} else {
			a.index = last
		}
	}
	a.updateOffset()

	if !a.loop && a.index == last {
		a.finish()
	}
}

// SetConfig replaces the sheet configuration, keeping the current sequence
// when it still exists. The index is clamped into the new sequence bounds.
// A missing sequence falls back to the default, looping. The attack cue is
// stopped or started when the change moves the animator out of or into the
// attack sequence.
func (a *Animator) SetConfig(cfg SheetConfig) {
	if a == nil {
		return
	}
	wasAttacking := a.current == a.cfg.AttackName()
	a.cfg = cfg
	a.frameDuration = cfg.FrameDuration()

	restarted := false
	seq, ok := cfg.Sequence(a.current)
	if !ok {
		a.current = cfg.DefaultSequence
		a.index = 0
		a.loop = true
		a.finished = false
		restarted = true
		seq, _ = cfg.Sequence(a.current)
	}
	if len(seq) == 0 {
		a.index = 0
	} else if a.index > len(seq)-1 {
		a.index = len(seq) - 1
	}

	isAttacking := a.current == cfg.AttackName()
	if isAttacking && !wasAttacking {
		a.cue.PlayAttackSound(true)
	} else if !isAttacking && wasAttacking {
		a.cue.PlayAttackSound(false)
	}

	a.updateOffset()
	if restarted {
		frame, _ := a.Frame()
		a.Events.Emit(a, AnimationEvent{Type: AnimationEventSequenceStarted, Sequence: a.current, Frame: frame})
	}
}

func (a *Animator) finish() {
	if a.finished {
		return
	}
	a.finished = true
	frame, _ := a.Frame()
	a.Events.Emit(a, AnimationEvent{Type: AnimationEventFinished, Sequence: a.current, Frame: frame})
}

// Config returns the sheet configuration in use.
func (a *Animator) Config() SheetConfig { return a.cfg }

// Sequence returns the current sequence name.
func (a *Animator) Sequence() string { return a.current }

// Index returns the position within the current sequence.
func (a *Animator) Index() int { return a.index }

// Loop reports whether the current sequence wraps.
func (a *Animator) Loop() bool { return a.loop }

// Finished reports whether a non-looping sequence has reached its last frame.
func (a *Animator) Finished() bool { return a.finished }

// Frame returns the sheet cell index currently shown.
func (a *Animator) Frame() (int, bool) {
	if a == nil {
		return 0, false
	}
	seq, ok := a.cfg.Sequence(a.current)
	if !ok || a.index < 0 || a.index >= len(seq) {
		return 0, false
	}
	return seq[a.index], true
}

// Offset returns the texture offset of the current frame as column/row
// fractions, with the row measured from the bottom of the sheet.
func (a *Animator) Offset() (x, y float64) {
	return a.offsetX, a.offsetY
}

// FrameRect returns the pixel rectangle of the current frame on a sheet of
// the given size, measured from the top-left corner.
func (a *Animator) FrameRect(sheetW, sheetH int) image.Rectangle {
	frame, ok := a.Frame()
	if !ok || a.cfg.Cols <= 0 || a.cfg.Rows <= 0 || frame < 0 || frame >= a.cfg.FrameCount() {
		return image.Rectangle{}
	}
	fw := sheetW / a.cfg.Cols
	fh := sheetH / a.cfg.Rows
	col := frame % a.cfg.Cols
	row := frame / a.cfg.Cols
	return image.Rect(col*fw, row*fh, (col+1)*fw, (row+1)*fh)
}

func (a *Animator) updateOffset() {
	frame, ok := a.Frame()
	if !ok || a.cfg.Cols <= 0 || a.cfg.Rows <= 0 || frame < 0 || frame >= a.cfg.FrameCount() {
		return
	}
	cols := float64(a.cfg.Cols)
	rows := float64(a.cfg.Rows)
	col := frame % a.cfg.Cols
	row := frame / a.cfg.Cols
	a.offsetX = float64(col) / cols
	a.offsetY = 1 - float64(row+1)/rows
}
