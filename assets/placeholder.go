package assets

import (
	"image"
	"image/color"
)

// PlaceholderSheet draws a cols x rows sheet of simple figures on a flat
// background, for running a scene without real sprite art. Each
// cell gets a distinct body shade so frame changes stay visible.
func PlaceholderSheet(cols, rows, cellW, cellH int, background color.RGBA) *image.NRGBA {
	if cols <= 0 || rows <= 0 || cellW <= 0 || cellH <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, 1, 1))
	}
	img := image.NewNRGBA(image.Rect(0, 0, cols*cellW, rows*cellH))
	bg := color.NRGBA{R: background.R, G: background.G, B: background.B, A: 0xff}
	for y := 0; y < img.Bounds().Dy(); y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			img.SetNRGBA(x, y, bg)
		}
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			frame := row*cols + col
			body := color.NRGBA{
				R: uint8(80 + (frame*37)%150),
				G: uint8(60 + (frame*17)%120),
				B: uint8(40 + (frame*53)%40),
				A: 0xff,
			}
			ox, oy := col*cellW, row*cellH
			// torso
			fill(img, ox+cellW*3/8, oy+cellH/4, ox+cellW*5/8, oy+cellH*3/4, body)
			// head
			fill(img, ox+cellW*7/16, oy+cellH/8, ox+cellW*9/16, oy+cellH/4, body)
			// legs, spread by frame so walk cycles visibly move
			spread := (frame % 4) * cellW / 32
			fill(img, ox+cellW*3/8-spread, oy+cellH*3/4, ox+cellW*7/16-spread, oy+cellH*15/16, body)
			fill(img, ox+cellW*9/16+spread, oy+cellH*3/4, ox+cellW*5/8+spread, oy+cellH*15/16, body)
		}
	}
	return img
}

func fill(img *image.NRGBA, x0, y0, x1, y1 int, c color.NRGBA) {
	r := image.Rect(x0, y0, x1, y1).Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}
