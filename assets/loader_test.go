package assets

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
)

func pngBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestCleanAssetPath(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"sprites/a.png", "sprites/a.png"},
		{"assets/sprites/a.png", "sprites/a.png"},
		{"/home/x/game/assets/sounds/b.wav", "sounds/b.wav"},
		{"/tmp/c.wav", "c.wav"},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			if got := cleanAssetPath(c.in); got != c.want {
				t.Fatalf("cleanAssetPath(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestLoadFromFS(t *testing.T) {
	sheet := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	sheet.SetNRGBA(1, 1, color.NRGBA{R: 9, A: 255})
	SetFS(fstest.MapFS{
		"sprites/sheet.png": {Data: pngBytes(t, sheet)},
		"sprites/bad.png":   {Data: []byte("not a png")},
		"sounds/theme.mid":  {Data: []byte("MThd")},
	})
	t.Cleanup(func() { SetDir("assets") })

	img, err := LoadImage("assets/sprites/sheet.png")
	if err != nil {
		t.Fatalf("load image: %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 2 {
		t.Fatalf("bounds %v", img.Bounds())
	}
	if r, _, _, _ := img.At(1, 1).RGBA(); r>>8 != 9 {
		t.Fatalf("pixel %v", img.At(1, 1))
	}

	if _, err := LoadImage("sprites/bad.png"); err == nil {
		t.Fatalf("expected decode error")
	}
	if _, err := LoadImage("sprites/missing.png"); err == nil {
		t.Fatalf("expected missing file error")
	}
	if _, err := LoadPCM("sounds/theme.mid"); !errors.Is(err, ErrUnsupportedAudio) {
		t.Fatalf("expected ErrUnsupportedAudio, got %v", err)
	}
}

func TestPlaceholderSheet(t *testing.T) {
	bg := color.RGBA{R: 99, G: 116, B: 125, A: 255}
	img := PlaceholderSheet(8, 7, 16, 16, bg)
	if img.Bounds().Dx() != 128 || img.Bounds().Dy() != 112 {
		t.Fatalf("bounds %v", img.Bounds())
	}
	if c := img.NRGBAAt(0, 0); c.R != bg.R || c.G != bg.G || c.B != bg.B {
		t.Fatalf("corner %v, want background", c)
	}
	// torso centre of cell (3, 2)
	c := img.NRGBAAt(3*16+8, 2*16+8)
	if c.B == bg.B {
		t.Fatalf("figure not drawn: %v", c)
	}
	if d := int(bg.B) - int(c.B); d < 30 {
		t.Fatalf("figure blue %d too close to background %d", c.B, bg.B)
	}

	if tiny := PlaceholderSheet(0, 7, 16, 16, bg); tiny.Bounds().Dx() != 1 {
		t.Fatalf("invalid grid should give a 1x1 image")
	}
}
