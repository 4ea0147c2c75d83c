package system

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/spritesim/common"
	"github.com/milk9111/spritesim/ecs"
	"github.com/milk9111/spritesim/ecs/component"
	"github.com/milk9111/spritesim/ecs/render"
	"golang.org/x/image/colornames"
)

// RenderSystem draws the ground grid and every billboard, farthest first.
type RenderSystem struct {
	Background color.Color
	Grid       color.Color
	// GroundSize is the side of the square grid in world units.
	GroundSize int
}

func NewRenderSystem(background, grid color.Color, groundSize int) *RenderSystem {
	if background == nil {
		background = colornames.Black
	}
	if grid == nil {
		grid = colornames.Dimgray
	}
	if groundSize <= 0 {
		groundSize = 50
	}
	return &RenderSystem{Background: background, Grid: grid, GroundSize: groundSize}
}

func (r *RenderSystem) Update(w *ecs.World) {}

type drawItem struct {
	e     ecs.Entity
	t     *component.Transform
	bb    *component.Billboard
	sx    float64
	sy    float64
	depth float64
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	screen.Fill(r.Background)

	pr, cam, ok := cameraProjector(w)
	if !ok {
		return
	}
	r.drawGround(screen, pr)

	var items []drawItem
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.BillboardComponent.Kind(), func(e ecs.Entity, t *component.Transform, bb *component.Billboard) {
		if bb.Sheet == nil || bb.Source.Empty() {
			return
		}
		sx, sy, depth, ok := pr.Project(common.Vec3{X: t.X, Y: t.Y, Z: t.Z})
		if !ok {
			return
		}
		items = append(items, drawItem{e: e, t: t, bb: bb, sx: sx, sy: sy, depth: depth})
	})
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].depth != items[j].depth {
			return items[i].depth > items[j].depth
		}
		return uint64(items[i].e) < uint64(items[j].e)
	})

	for _, it := range items {
		drawBillboard(screen, pr, it, cam.FogDensity)
	}
}

func drawBillboard(screen *ebiten.Image, pr *render.Projector, it drawItem, fogDensity float64) {
	img, ok := it.bb.Sheet.SubImage(it.bb.Source).(*ebiten.Image)
	if !ok {
		return
	}
	srcW := float64(it.bb.Source.Dx())
	srcH := float64(it.bb.Source.Dy())
	heightPx := it.bb.Height * pr.PixelsPerUnit(it.depth)
	if heightPx <= 0 || srcH <= 0 {
		return
	}
	scale := heightPx / srcH

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-srcW/2, -srcH/2)
	if it.bb.Lying {
		// feet towards the camera, flattened by the view angle
		op.GeoM.Rotate(-math.Pi / 2)
		op.GeoM.Scale(1, 0.35)
	}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(it.sx, it.sy)
	op.Filter = ebiten.FilterNearest

	fog := float32(render.Fog(fogDensity, it.depth))
	op.ColorScale.Scale(fog, fog, fog, 1)

	screen.DrawImage(img, op)
}

func (r *RenderSystem) drawGround(screen *ebiten.Image, pr *render.Projector) {
	half := float64(r.GroundSize) / 2
	for i := 0; i <= r.GroundSize; i++ {
		v := -half + float64(i)
		r.drawGroundLine(screen, pr, common.Vec3{X: v, Z: -half}, common.Vec3{X: v, Z: half})
		r.drawGroundLine(screen, pr, common.Vec3{X: -half, Z: v}, common.Vec3{X: half, Z: v})
	}
}

// drawGroundLine draws a ground line in unit segments so parts behind the
// near plane are skipped instead of wrapping around the screen.
func (r *RenderSystem) drawGroundLine(screen *ebiten.Image, pr *render.Projector, a, b common.Vec3) {
	length := b.Sub(a).Len()
	steps := int(math.Ceil(length))
	if steps < 1 {
		steps = 1
	}
	bounds := screen.Bounds()
	for i := 0; i < steps; i++ {
		p0 := a.Add(b.Sub(a).Scale(float64(i) / float64(steps)))
		p1 := a.Add(b.Sub(a).Scale(float64(i+1) / float64(steps)))
		x0, y0, _, ok0 := pr.Project(p0)
		x1, y1, _, ok1 := pr.Project(p1)
		if !ok0 || !ok1 {
			continue
		}
		if !onScreen(bounds, x0, y0) && !onScreen(bounds, x1, y1) {
			continue
		}
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, r.Grid, true)
	}
}

func onScreen(b image.Rectangle, x, y float64) bool {
	return x >= float64(b.Min.X) && x <= float64(b.Max.X) && y >= float64(b.Min.Y) && y <= float64(b.Max.Y)
}
