package draw

import (
	"image"
	"image/color"
	"testing"

	"github.com/BeatGlow/rgb"
	"github.com/BeatGlow/rgb/pixel"
)

var on = rgb.NewGray[uint8](0xff)

func newTestBuffer(w, h int) *pixel.Buffer[rgb.GRAY8] {
	return pixel.NewBuffer(image.Rect(0, 0, w, h), pixel.Gray8Model)
}

func testPixels(t *testing.T, b *pixel.Buffer[rgb.GRAY8], want ...image.Point) {
	t.Helper()
	set := make(map[image.Point]bool)
	for _, pt := range want {
		set[pt] = true
	}
	for y := b.Rect.Min.Y; y < b.Rect.Max.Y; y++ {
		for x := b.Rect.Min.X; x < b.Rect.Max.X; x++ {
			if v := b.Pixel(x, y) == on; v != set[image.Pt(x, y)] {
				t.Errorf("pixel (%d,%d) is set %t, expected %t", x, y, v, set[image.Pt(x, y)])
			}
		}
	}
}

func TestLine(t *testing.T) {
	tests := []struct {
		name string
		a, b image.Point
		want []image.Point
	}{
		{"point", image.Pt(1, 1), image.Pt(1, 1), []image.Point{{1, 1}}},
		{"horizontal", image.Pt(3, 0), image.Pt(0, 0), []image.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{"vertical", image.Pt(2, 3), image.Pt(2, 1), []image.Point{{2, 1}, {2, 2}, {2, 3}}},
		{"diagonal", image.Pt(0, 0), image.Pt(2, 2), []image.Point{{0, 0}, {1, 1}, {2, 2}}},
		{"diagonal up", image.Pt(0, 2), image.Pt(2, 0), []image.Point{{0, 2}, {1, 1}, {2, 0}}},
		{"wide", image.Pt(0, 0), image.Pt(4, 2), []image.Point{{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 2}}},
		{"high", image.Pt(0, 0), image.Pt(2, 4), []image.Point{{0, 0}, {0, 1}, {1, 2}, {1, 3}, {2, 4}}},
	}
	for _, test := range tests {
		t.Run(test.name, func(it *testing.T) {
			b := newTestBuffer(5, 5)
			Line[rgb.GRAY8](b, test.a, test.b, on)
			testPixels(it, b, test.want...)
		})
	}
}

func TestRectangle(t *testing.T) {
	b := newTestBuffer(5, 5)
	Rectangle[rgb.GRAY8](b, image.Rect(1, 1, 4, 4), on)
	testPixels(t, b,
		image.Pt(1, 1), image.Pt(2, 1), image.Pt(3, 1),
		image.Pt(1, 2), image.Pt(3, 2),
		image.Pt(1, 3), image.Pt(2, 3), image.Pt(3, 3),
	)

	b = newTestBuffer(5, 5)
	Rectangle[rgb.GRAY8](b, image.Rect(2, 2, 2, 4), on)
	testPixels(t, b)
}

func TestBox(t *testing.T) {
	b := newTestBuffer(4, 4)
	Box[rgb.GRAY8](b, image.Rect(2, 2, 10, 10), on)
	testPixels(t, b, image.Pt(2, 2), image.Pt(3, 2), image.Pt(2, 3), image.Pt(3, 3))
}

func TestColors(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 1))
	HorizontalLine[color.Color](Colors(img), 0, 0, 3, color.White)
	for x := 0; x < 3; x++ {
		if v := img.RGBAAt(x, 0); v != (color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
			t.Errorf("pixel (%d,0) is %v, expected white", x, v)
		}
	}
}

func TestGradient(t *testing.T) {
	b := pixel.NewBuffer(image.Rect(0, 0, 5, 2), pixel.RGBA8Model)
	Gradient[uint8, rgb.RGBA8](b, b.Rect, rgb.NewRgba[uint8, uint8](0, 0, 100, 0), rgb.NewRgba[uint8, uint8](200, 0, 0, 0xff))

	want := []rgb.RGBA8{
		{R: 0, G: 0, B: 100, A: 0},
		{R: 50, G: 0, B: 75, A: 64},
		{R: 100, G: 0, B: 50, A: 128},
		{R: 150, G: 0, B: 25, A: 191},
		{R: 200, G: 0, B: 0, A: 255},
	}
	for y := 0; y < 2; y++ {
		for x, px := range want {
			if v := b.Pixel(x, y); v != px {
				t.Errorf("pixel (%d,%d) is %s, expected %s", x, y, v, px)
			}
		}
	}

	g := pixel.NewBuffer(image.Rect(0, 0, 1, 1), pixel.Gray16Model)
	Gradient[uint16, rgb.GRAY16](g, g.Rect, rgb.NewGray[uint16](7), rgb.NewGray[uint16](9))
	if v := g.Pixel(0, 0); v.Y != 7 {
		t.Errorf("expected a single column to use the start color, got %s", v)
	}
}
