package pixel

import (
	"image/color"

	"github.com/BeatGlow/rgb"
)

// Models for the common pixel types.
var (
	RGB8Model        = NewModel(ToRgb[uint8])
	RGB16Model       = NewModel(ToRgb[uint16])
	BGR8Model        = NewModel(ToBgr[uint8])
	RGBA8Model       = NewModel(ToRgba[uint8, uint8])
	RGBA16Model      = NewModel(ToRgba[uint16, uint16])
	BGRA8Model       = NewModel(ToBgra[uint8, uint8])
	ARGB8Model       = NewModel(ToArgb[uint8, uint8])
	Gray8Model       = NewModel(ToGray[uint8])
	Gray16Model      = NewModel(ToGray[uint16])
	GrayAlpha8Model  = NewModel(ToGrayAlpha[uint8, uint8])
	GrayAlpha16Model = NewModel(ToGrayAlpha[uint16, uint16])
)

// Model is a color.Model that converts to pixels of type P.
type Model[P color.Color] struct {
	convert func(color.Color) P
}

// NewModel returns a model that uses f to convert colors of other types.
func NewModel[P color.Color](f func(color.Color) P) *Model[P] {
	return &Model[P]{convert: f}
}

// Convert implements color.Model.
func (m *Model[P]) Convert(c color.Color) color.Color {
	return m.Pixel(c)
}

// Pixel converts c to P. Values of type P are returned unchanged.
func (m *Model[P]) Pixel(c color.Color) P {
	if p, ok := c.(P); ok {
		return p
	}
	return m.convert(c)
}

// straight returns the color components of c without alpha premultiplication.
func straight(c color.Color) (r, g, b, a uint32) {
	r, g, b, a = c.RGBA()
	switch a {
	case 0xffff:
		return
	case 0:
		return 0, 0, 0, 0
	default:
		return unpremultiply(r, a), unpremultiply(g, a), unpremultiply(b, a), a
	}
}

func unpremultiply(v, a uint32) uint32 {
	return min((v*0xffff+a/2)/a, 0xffff)
}

// luma uses the same coefficients as the JFIF specification, 0.299, 0.587 and
// 0.114, on 16-bit components.
func luma(r, g, b uint32) uint32 {
	return (299*r + 587*g + 114*b + 500) / 1000
}

// ToRgb converts c to an Rgb pixel. Translucent colors are composited onto black.
func ToRgb[T rgb.Component](c color.Color) rgb.Rgb[T] {
	r, g, b, _ := c.RGBA()
	return rgb.Rgb[T]{
		R: rgb.FromUint16[T](uint16(r)),
		G: rgb.FromUint16[T](uint16(g)),
		B: rgb.FromUint16[T](uint16(b)),
	}
}

// ToBgr converts c to a Bgr pixel. Translucent colors are composited onto black.
func ToBgr[T rgb.Component](c color.Color) rgb.Bgr[T] {
	return ToRgb[T](c).ToBgr()
}

// ToRgba converts c to an Rgba pixel with straight alpha.
func ToRgba[T, A rgb.Component](c color.Color) rgb.Rgba[T, A] {
	r, g, b, a := straight(c)
	return rgb.Rgba[T, A]{
		R: rgb.FromUint16[T](uint16(r)),
		G: rgb.FromUint16[T](uint16(g)),
		B: rgb.FromUint16[T](uint16(b)),
		A: rgb.FromUint16[A](uint16(a)),
	}
}

// ToBgra converts c to a Bgra pixel with straight alpha.
func ToBgra[T, A rgb.Component](c color.Color) rgb.Bgra[T, A] {
	return ToRgba[T, A](c).ToBgra()
}

// ToArgb converts c to an Argb pixel with straight alpha.
func ToArgb[T, A rgb.Component](c color.Color) rgb.Argb[T, A] {
	return ToRgba[T, A](c).ToArgb()
}

// ToGray converts c to a Gray pixel.
func ToGray[T rgb.Component](c color.Color) rgb.Gray[T] {
	r, g, b, _ := c.RGBA()
	return rgb.Gray[T]{Y: rgb.FromUint16[T](uint16(luma(r, g, b)))}
}

// ToGrayAlpha converts c to a GrayAlpha pixel with straight alpha.
func ToGrayAlpha[T, A rgb.Component](c color.Color) rgb.GrayAlpha[T, A] {
	r, g, b, a := straight(c)
	return rgb.GrayAlpha[T, A]{
		Y: rgb.FromUint16[T](uint16(luma(r, g, b))),
		A: rgb.FromUint16[A](uint16(a)),
	}
}
