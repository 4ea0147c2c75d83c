package component

import "github.com/milk9111/spritesim/sprite"

// Soldier carries the attack/death lifecycle of a soldier entity.
type Soldier struct {
	Lifecycle *sprite.Lifecycle
	Cue       sprite.SoundCue
	Prefab    string
	// Radius is the ground footprint used for spawn spacing and picking.
	Radius float64
	// StandY and LyingY are the billboard centre heights alive and dead.
	StandY float64
	LyingY float64
}

var SoldierComponent = NewComponent[Soldier]("soldier")
