package component

import "github.com/milk9111/spritesim/sprite"

// Animation attaches a sprite animator. Prefab is the name of the prefab
// whose sheet config the animator runs, so reloads can find it.
type Animation struct {
	Animator *sprite.Animator
	Prefab   string
}

var AnimationComponent = NewComponent[Animation]("animation")
