package sprite

import (
	"image"
	"image/color"
	"testing"
)

func TestChromaKeyMatches(t *testing.T) {
	key := ChromaKey{
		Colors:    []color.RGBA{{R: 99, G: 116, B: 125, A: 255}, {R: 125, G: 147, B: 158, A: 255}},
		Tolerance: 30,
	}
	cases := []struct {
		name    string
		r, g, b uint8
		want    bool
	}{
		{"exact_first", 99, 116, 125, true},
		{"exact_second", 125, 147, 158, true},
		{"inside_tolerance", 120, 130, 140, true},
		{"on_boundary", 129, 116, 125, false},
		{"one_channel_out", 99, 116, 200, false},
		{"black", 0, 0, 0, false},
		{"skin", 220, 170, 120, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := key.Matches(c.r, c.g, c.b); got != c.want {
				t.Fatalf("Matches(%d,%d,%d) = %v, want %v", c.r, c.g, c.b, got, c.want)
			}
		})
	}
}

func TestChromaKeyDefaultTolerance(t *testing.T) {
	key := ChromaKey{Colors: []color.RGBA{{R: 100, G: 100, B: 100}}}
	if !key.Matches(129, 71, 100) {
		t.Fatalf("expected match inside default tolerance")
	}
	if key.Matches(130, 100, 100) {
		t.Fatalf("expected no match at default tolerance")
	}
}

func TestChromaKeyApply(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 12, 11))
	src.Set(10, 10, color.RGBA{R: 99, G: 116, B: 125, A: 255})
	src.Set(11, 10, color.RGBA{R: 200, G: 30, B: 30, A: 255})

	key := ChromaKey{Colors: []color.RGBA{{R: 99, G: 116, B: 125, A: 255}}, Tolerance: 30}
	out := key.Apply(src)

	if out.Bounds() != image.Rect(0, 0, 2, 1) {
		t.Fatalf("bounds %v", out.Bounds())
	}
	if a := out.NRGBAAt(0, 0).A; a != 0 {
		t.Fatalf("keyed pixel alpha %d", a)
	}
	if c := out.NRGBAAt(1, 0); c != (color.NRGBA{R: 200, G: 30, B: 30, A: 255}) {
		t.Fatalf("kept pixel %v", c)
	}
	if c := src.RGBAAt(10, 10); c.A != 255 {
		t.Fatalf("source modified")
	}
}

func TestChromaKeyNoColors(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	src.Set(0, 0, color.RGBA{R: 99, G: 116, B: 125, A: 255})
	out := ChromaKey{}.Apply(src)
	if out.NRGBAAt(0, 0).A != 255 {
		t.Fatalf("pixel cleared without key colours")
	}
	if (ChromaKey{}).Apply(nil) != nil {
		t.Fatalf("nil source should give nil")
	}
}
