package render

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spritesim/assets"
	"github.com/milk9111/spritesim/prefabs"
)

const placeholderCell = 64

// KeyedSheet loads the sheet image of a soldier prefab and removes its
// chroma-key background. When the image cannot be loaded a generated
// placeholder sheet is returned and placeholder is true.
func KeyedSheet(spec *prefabs.SoldierSpec) (img *image.NRGBA, placeholder bool, err error) {
	if spec == nil {
		return nil, false, fmt.Errorf("render: nil soldier spec")
	}
	if spec.Cols <= 0 || spec.Rows <= 0 {
		return nil, false, fmt.Errorf("render: sheet grid %dx%d must be positive", spec.Cols, spec.Rows)
	}
	key := spec.ChromaKeyConfig()

	src, loadErr := assets.LoadImage(spec.Sheet)
	if loadErr != nil {
		bg := color.RGBA{R: 99, G: 116, B: 125, A: 0xff}
		if len(key.Colors) > 0 {
			bg = key.Colors[0]
		}
		src = assets.PlaceholderSheet(spec.Cols, spec.Rows, placeholderCell, placeholderCell, bg)
		placeholder = true
	}

	b := src.Bounds()
	if b.Dx()%spec.Cols != 0 || b.Dy()%spec.Rows != 0 {
		log.Printf("render: sheet %q size %dx%d is not a multiple of %dx%d cells", spec.Sheet, b.Dx(), b.Dy(), spec.Cols, spec.Rows)
	}
	return key.Apply(src), placeholder, nil
}

// LoadSheet returns the keyed sheet of a prefab as an ebiten image, cached
// under the prefab name.
func LoadSheet(name string, spec *prefabs.SoldierSpec) (*ebiten.Image, error) {
	if name == "" {
		return nil, fmt.Errorf("render: empty sheet key")
	}
	if img := GetImage(name); img != nil {
		return img, nil
	}
	keyed, placeholder, err := KeyedSheet(spec)
	if err != nil {
		return nil, fmt.Errorf("render: load sheet %q: %w", name, err)
	}
	if placeholder {
		log.Printf("render: sheet %q not found, using generated placeholder", spec.Sheet)
	}
	img := ebiten.NewImageFromImage(keyed)
	RegisterImage(name, img)
	return img, nil
}
