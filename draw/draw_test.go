package draw

import (
	"image"
	"image/color"
	"testing"

	"github.com/BeatGlow/rgb"
	"github.com/BeatGlow/rgb/pixel"
)

func TestDraw(t *testing.T) {
	src := pixel.NewBuffer(image.Rect(0, 0, 2, 2), pixel.RGB8Model)
	src.Fill(rgb.NewRgb[uint8](1, 2, 3))

	dst := pixel.NewBuffer(image.Rect(0, 0, 4, 4), pixel.BGRA8Model)
	Draw(dst, image.Rect(1, 1, 3, 3), src, image.Point{}, Src)

	if v := dst.Pixel(1, 1); v != rgb.NewBgra[uint8, uint8](3, 2, 1, 0xff) {
		t.Errorf("expected bgra(3,2,1,255), got %s", v)
	}
	if v := dst.Pixel(0, 0); v != (rgb.BGRA8{}) {
		t.Errorf("expected pixel outside of r to be unchanged, got %s", v)
	}

	Copy(dst, image.Pt(3, 3), src, src.Bounds(), Src)
	if v := dst.Pixel(3, 3); v != rgb.NewBgra[uint8, uint8](3, 2, 1, 0xff) {
		t.Errorf("expected bgra(3,2,1,255), got %s", v)
	}
}

func TestDrawMaskOver(t *testing.T) {
	dst := pixel.NewBuffer(image.Rect(0, 0, 1, 1), pixel.RGBA8Model)
	dst.Fill(color.White)

	src := image.NewUniform(color.Black)
	mask := image.NewUniform(color.Alpha{A: 0x80})
	DrawMask(dst, dst.Bounds(), src, image.Point{}, mask, image.Point{}, Over)

	if v := dst.Pixel(0, 0); v.R < 0x7e || v.R > 0x80 || v.A != 0xff {
		t.Errorf("expected half gray, got %s", v)
	}
}

func TestScale(t *testing.T) {
	src := pixel.NewBuffer(image.Rect(0, 0, 2, 2), pixel.Gray8Model)
	src.SetPixel(0, 0, rgb.NewGray[uint8](0xff))

	for _, name := range []string{"nearest", "approx", "bilinear", "catmullrom"} {
		interp, ok := ParseInterpolator(name)
		if !ok {
			t.Fatalf("expected interpolator %s", name)
		}
		dst := pixel.NewBuffer(image.Rect(0, 0, 4, 4), pixel.Gray8Model)
		Scale(dst, dst.Bounds(), src, src.Bounds(), Src, interp)
		if a, b := dst.Pixel(0, 0), dst.Pixel(3, 3); a.Y < 0x80 || b.Y >= a.Y {
			t.Errorf("%s: expected top left pixel to be lit and bottom right to be dark, got %s and %s", name, a, b)
		}
	}
	if _, ok := ParseInterpolator("lanczos"); ok {
		t.Error("expected unknown interpolator")
	}
}
