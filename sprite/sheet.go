package sprite

import (
	"errors"
	"fmt"
	"sort"
)

const (
	defaultFPS            = 10
	defaultAttackSequence = "attack"
)

// ErrUnknownSequence is returned when a config names a sequence it does not define.
var ErrUnknownSequence = errors.New("sprite: unknown sequence")

// SheetConfig describes a sprite sheet laid out as a Cols x Rows grid and the
// named frame sequences played from it. Frame indices are row-major.
type SheetConfig struct {
	Cols            int
	Rows            int
	FPS             float64
	Sequences       map[string][]int
	DefaultSequence string
	AttackSequence  string
}

// FrameDuration returns the time between frame advances in milliseconds.
func (c SheetConfig) FrameDuration() float64 {
	fps := c.FPS
	if fps <= 0 {
		fps = defaultFPS
	}
	return 1000 / fps
}

// AttackName returns the sequence that toggles the attack sound cue.
func (c SheetConfig) AttackName() string {
	if c.AttackSequence == "" {
		return defaultAttackSequence
	}
	return c.AttackSequence
}

// FrameCount is the number of cells on the sheet.
func (c SheetConfig) FrameCount() int {
	if c.Cols <= 0 || c.Rows <= 0 {
		return 0
	}
	return c.Cols * c.Rows
}

// Sequence returns the frame list for name.
func (c SheetConfig) Sequence(name string) ([]int, bool) {
	seq, ok := c.Sequences[name]
	return seq, ok
}

// SequenceNames returns the defined sequence names in sorted order.
func (c SheetConfig) SequenceNames() []string {
	names := make([]string, 0, len(c.Sequences))
	for name := range c.Sequences {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate reports configuration errors that would leave the animator with
// nothing to show. The animator itself tolerates all of these at runtime.
func (c SheetConfig) Validate() error {
	if c.Cols <= 0 || c.Rows <= 0 {
		return fmt.Errorf("sprite: sheet grid %dx%d must be positive", c.Cols, c.Rows)
	}
	if _, ok := c.Sequences[c.DefaultSequence]; !ok {
		return fmt.Errorf("default sequence %q: %w", c.DefaultSequence, ErrUnknownSequence)
	}
	total := c.FrameCount()
	for _, name := range c.SequenceNames() {
		for i, frame := range c.Sequences[name] {
			if frame < 0 || frame >= total {
				return fmt.Errorf("sprite: sequence %q frame %d: index %d outside sheet of %d cells", name, i, frame, total)
			}
		}
	}
	return nil
}
