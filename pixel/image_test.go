package pixel

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/BeatGlow/rgb"
)

func TestFormatImage(t *testing.T) {
	for _, format := range Formats() {
		t.Run(format.String(), func(it *testing.T) {
			testImage(it, func(size image.Point) Image {
				i, err := format.NewImage(size.X, size.Y)
				if err != nil {
					panic(err)
				}
				return i
			}, format.Info().Model)
		})
	}
}

func TestRGB565Image(t *testing.T) {
	testImage(t, func(size image.Point) Image {
		return NewRGB565Image(size.X, size.Y)
	}, RGB565Model)
}

func testImage(t *testing.T, f func(image.Point) Image, model color.Model) {
	t.Helper()
	testCases := []image.Point{
		{},
		image.Pt(1, 1),
		image.Pt(2, 2),
		image.Pt(256, 32),
		image.Pt(256, 64),
	}
	for _, test := range testCases {
		t.Run(test.String(), func(it *testing.T) {
			i := f(test)

			if v := i.Bounds().Size(); !v.Eq(test) {
				it.Errorf("expected image size %s, got %s", test, v)
			}

			if v := i.ColorModel(); v != model {
				it.Errorf("expected color model %T, got %T", model, v)
			}

			it.Run("in-bounds", func(itt *testing.T) {
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						c := testRandomColor()
						i.Set(x, y, c)
						if v := i.ColorModel().Convert(c); i.At(x, y) != v {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, i.At(x, y), v, c)
							return
						}
					}
				}
			})

			it.Run("in-bounds-matching-model", func(itt *testing.T) {
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						c := model.Convert(testRandomColor())
						i.Set(x, y, c)
						if i.At(x, y) != c {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v", x, y, i.At(x, y), c)
							return
						}
					}
				}
			})

			it.Run("out-bounds", func(itt *testing.T) {
				for y := -test.Y; y < test.Y*2; y++ {
					for x := -test.X; x < test.X*2; x++ {
						i.Set(x, y, testRandomColor())
						if x < 0 || y < 0 || x >= test.X || y >= test.Y {
							if v := i.At(x, y); v != color.Transparent {
								itt.Fatalf("pixel (%d,%d) is %#+v, expected transparent", x, y, v)
								return
							}
						}
					}
				}
			})

			it.Run("fill", func(itt *testing.T) {
				c := testRandomColor()
				i.Fill(c)
				if test.X > 0 && test.Y > 0 {
					x := rand.Intn(test.X)
					y := rand.Intn(test.Y)
					if v := i.ColorModel().Convert(c); i.At(x, y) != v {
						itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, i.At(x, y), v, c)
						return
					}
				}
			})

			it.Run("clear", func(itt *testing.T) {
				i.Clear()
				if test.X > 0 && test.Y > 0 {
					x := rand.Intn(test.X)
					y := rand.Intn(test.Y)
					if r, g, b, _ := i.At(x, y).RGBA(); r != 0 || g != 0 || b != 0 {
						itt.Fatalf("pixel (%d,%d) is not black", x, y)
					}
				}
			})
		})
	}
}

func testRandomColor() color.Color {
	return color.RGBA{
		R: uint8(rand.Intn(255)),
		G: uint8(rand.Intn(255)),
		B: uint8(rand.Intn(255)),
		A: 0xFF,
	}
}

func TestBuffer(t *testing.T) {
	b := NewBuffer(image.Rect(0, 0, 4, 3), RGB8Model)
	b.SetPixel(1, 2, rgb.NewRgb[uint8](1, 2, 3))
	if v := b.Pixel(1, 2); v != rgb.NewRgb[uint8](1, 2, 3) {
		t.Errorf("expected rgb(1,2,3), got %s", v)
	}
	if v := b.Pix[2*4+1]; v != rgb.NewRgb[uint8](1, 2, 3) {
		t.Errorf("expected pixel to be stored in row-major order, got %s", v)
	}
	if v := b.Pixel(4, 0); v != (rgb.RGB8{}) {
		t.Errorf("expected zero pixel out of bounds, got %s", v)
	}
	b.SetPixel(-1, 0, rgb.NewRgb[uint8](9, 9, 9))
	if v := b.Row(-1); v != nil {
		t.Errorf("expected no row out of bounds, got %v", v)
	}
	if v := b.Row(2); len(v) != 4 || v[1] != rgb.NewRgb[uint8](1, 2, 3) {
		t.Errorf("expected row 2 to hold rgb(1,2,3), got %v", v)
	}
}

func TestBufferSubImage(t *testing.T) {
	b := NewBuffer(image.Rect(0, 0, 4, 4), Gray8Model)
	sub := b.SubImage(image.Rect(1, 1, 3, 3)).(*Buffer[rgb.GRAY8])
	if v := sub.Bounds(); v != image.Rect(1, 1, 3, 3) {
		t.Fatalf("expected bounds (1,1)-(3,3), got %s", v)
	}

	sub.Fill(color.White)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := rgb.GRAY8{}
			if x >= 1 && x < 3 && y >= 1 && y < 3 {
				want = rgb.NewGray[uint8](0xff)
			}
			if v := b.Pixel(x, y); v != want {
				t.Errorf("pixel (%d,%d) is %s, expected %s", x, y, v, want)
			}
		}
	}

	if v := sub.At(0, 0); v != color.Transparent {
		t.Errorf("expected transparent outside of sub image, got %v", v)
	}
	if v := b.SubImage(image.Rect(5, 5, 6, 6)).Bounds(); !v.Empty() {
		t.Errorf("expected empty sub image, got %s", v)
	}
}
