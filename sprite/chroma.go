package sprite

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

const defaultChromaTolerance = 30

// ChromaKey clears the alpha of pixels close to any of its key colours.
type ChromaKey struct {
	Colors    []color.RGBA
	Tolerance int
}

// Matches reports whether every channel lies strictly within the tolerance
// of one key colour.
func (k ChromaKey) Matches(r, g, b uint8) bool {
	tol := k.Tolerance
	if tol <= 0 {
		tol = defaultChromaTolerance
	}
	for _, c := range k.Colors {
		if absDiff(r, c.R) < tol && absDiff(g, c.G) < tol && absDiff(b, c.B) < tol {
			return true
		}
	}
	return false
}

// Apply returns a copy of src with keyed pixels made fully transparent.
func (k ChromaKey) Apply(src image.Image) *image.NRGBA {
	if src == nil {
		return nil
	}
	bounds := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Copy(dst, image.Point{}, src, bounds, draw.Src, nil)
	if len(k.Colors) == 0 {
		return dst
	}

	pix := dst.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		if k.Matches(pix[i], pix[i+1], pix[i+2]) {
			pix[i+3] = 0
		}
	}
	return dst
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
