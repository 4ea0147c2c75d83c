package system

import (
	"github.com/milk9111/spritesim/ecs"
	"github.com/milk9111/spritesim/ecs/component"
)

// AnimationSystem copies the current frame of each animator into its
// billboard. Animators are advanced by the soldier lifecycle.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.AnimationComponent.Kind(), component.BillboardComponent.Kind(), func(_ ecs.Entity, anim *component.Animation, bb *component.Billboard) {
		if anim.Animator == nil {
			return
		}
		bb.OffsetU, bb.OffsetV = anim.Animator.Offset()
		if bb.Sheet == nil {
			return
		}
		b := bb.Sheet.Bounds()
		if r := anim.Animator.FrameRect(b.Dx(), b.Dy()); !r.Empty() {
			bb.Source = r.Add(b.Min)
		}
	})
}
