package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Billboard is a camera-facing quad textured with one cell of a sheet.
// Height is in world units; width follows the frame aspect ratio.
type Billboard struct {
	Sheet   *ebiten.Image
	Source  image.Rectangle
	Height  float64
	OffsetU float64
	OffsetV float64
	// Lying renders the quad flat on the ground, as for a dead soldier.
	Lying bool
}

var BillboardComponent = NewComponent[Billboard]("billboard")
