package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/spritesim/ecs"
	"github.com/milk9111/spritesim/ecs/component"
)

// InputSource fills an Input component for the current frame.
type InputSource interface {
	Poll(in *component.Input)
}

// KeyboardInput reads the keyboard and mouse through ebiten.
type KeyboardInput struct{}

func (KeyboardInput) Poll(in *component.Input) {
	in.Left = ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	in.Right = ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	in.AddSoldier = inpututil.IsKeyJustPressed(ebiten.KeyA)
	in.KillSoldier = inpututil.IsKeyJustPressed(ebiten.KeyK)
	in.Clicked = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	if in.Clicked {
		x, y := ebiten.CursorPosition()
		in.ClickX = float64(x)
		in.ClickY = float64(y)
	}
}

type InputSystem struct {
	source InputSource
}

// NewInputSystem polls source every frame. A nil source reads the keyboard.
func NewInputSystem(source InputSource) *InputSystem {
	if source == nil {
		source = KeyboardInput{}
	}
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil {
		return
	}
	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, in *component.Input) {
		*in = component.Input{}
		i.source.Poll(in)
	})
}
