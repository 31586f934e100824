package rgb

import (
	"image/color"
	"testing"
)

func TestColor(t *testing.T) {
	tests := []struct {
		name       string
		c          color.Color
		r, g, b, a uint32
	}{
		{"rgb8", NewRgb[uint8](0xff, 0x80, 0), 0xffff, 0x8080, 0, 0xffff},
		{"bgr8", NewBgr[uint8](0, 0x80, 0xff), 0xffff, 0x8080, 0, 0xffff},
		{"grb16", NewGrb[uint16](2, 1, 3), 1, 2, 3, 0xffff},
		{"rgba8 opaque", NewRgba[uint8, uint8](0xff, 0, 0, 0xff), 0xffff, 0, 0, 0xffff},
		{"rgba8 transparent", NewRgba[uint8, uint8](0xff, 0xff, 0xff, 0), 0, 0, 0, 0},
		{"argb8 half", NewArgb[uint8, uint8](0x80, 0xff, 0, 0), 0x8080, 0, 0, 0x8080},
		{"rgbaf", NewRgba[float32, float32](1, 0, 0, 0.5), 0x8000, 0, 0, 0x8000},
		{"gray8", NewGray[uint8](0xff), 0xffff, 0xffff, 0xffff, 0xffff},
		{"graya8", NewGrayAlpha[uint8, uint8](0xff, 0), 0, 0, 0, 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(it *testing.T) {
			r, g, b, a := test.c.RGBA()
			if r != test.r || g != test.g || b != test.b || a != test.a {
				it.Errorf("expected (%#04x,%#04x,%#04x,%#04x), got (%#04x,%#04x,%#04x,%#04x)",
					test.r, test.g, test.b, test.a, r, g, b, a)
			}
		})
	}
}

func TestColorModel(t *testing.T) {
	// Converting through the standard models keeps opaque colors exact.
	c := color.RGBAModel.Convert(NewBgr[uint8](3, 2, 1)).(color.RGBA)
	if c != (color.RGBA{R: 1, G: 2, B: 3, A: 0xff}) {
		t.Errorf("expected {1 2 3 255}, got %v", c)
	}
	g := color.Gray16Model.Convert(NewGray[uint16](0x1234)).(color.Gray16)
	if g.Y != 0x1234 {
		t.Errorf("expected 0x1234, got %#04x", g.Y)
	}
}
