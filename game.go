package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/spritesim/common"
	"github.com/milk9111/spritesim/ecs/system"
)

type Game struct {
	frames int
	debug  bool

	scene *system.Scene
}

func NewGame(scene *system.Scene, debug bool) *Game {
	return &Game{scene: scene, debug: debug}
}

func (g *Game) Update() error {
	g.frames++
	g.scene.Update(common.FrameMs)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)

	line := fmt.Sprintf("Soldiers: %d alive / %d    FPS: %.2f    [<-/->] orbit  [A] add  [K] kill  [click] kill nearest",
		g.scene.LivingCount(), g.scene.Count(), ebiten.ActualFPS())
	if g.debug {
		st := g.scene.Stats()
		line += fmt.Sprintf("\nFrames: %d    spawned %d killed %d attacks %d deaths %d reloads %d",
			g.frames, st.Spawned, st.Killed, st.Attacks, st.Deaths, st.Reloaded)
	}
	ebitenutil.DebugPrint(screen, line)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
