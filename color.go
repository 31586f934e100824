package rgb

import "image/color"

// Every pixel type implements color.Color. Components are scaled to 16 bits
// with ToUint16; straight alpha is premultiplied as color.Color requires.

func premultiply(v, a uint32) uint32 {
	return v * a / 0xffff
}

func (p Rgb[T]) RGBA() (r, g, b, a uint32) {
	return uint32(ToUint16(p.R)), uint32(ToUint16(p.G)), uint32(ToUint16(p.B)), 0xffff
}

func (p Bgr[T]) RGBA() (r, g, b, a uint32) { return p.ToRgb().RGBA() }

func (p Grb[T]) RGBA() (r, g, b, a uint32) { return p.ToRgb().RGBA() }

func (p Rgba[T, A]) RGBA() (r, g, b, a uint32) {
	a = uint32(ToUint16(p.A))
	r, g, b, _ = p.Rgb().RGBA()
	return premultiply(r, a), premultiply(g, a), premultiply(b, a), a
}

func (p Bgra[T, A]) RGBA() (r, g, b, a uint32) { return p.ToRgba().RGBA() }

func (p Argb[T, A]) RGBA() (r, g, b, a uint32) { return p.ToRgba().RGBA() }

func (p Abgr[T, A]) RGBA() (r, g, b, a uint32) { return p.ToRgba().RGBA() }

func (p Gray[T]) RGBA() (r, g, b, a uint32) {
	y := uint32(ToUint16(p.Y))
	return y, y, y, 0xffff
}

func (p GrayAlpha[T, A]) RGBA() (r, g, b, a uint32) {
	a = uint32(ToUint16(p.A))
	y := premultiply(uint32(ToUint16(p.Y)), a)
	return y, y, y, a
}

// Interface checks.
var (
	_ color.Color = Rgb[uint8]{}
	_ color.Color = Bgr[uint8]{}
	_ color.Color = Grb[uint8]{}
	_ color.Color = Rgba[uint8, uint8]{}
	_ color.Color = Bgra[uint8, uint8]{}
	_ color.Color = Argb[uint8, uint8]{}
	_ color.Color = Abgr[uint8, uint8]{}
	_ color.Color = Gray[uint8]{}
	_ color.Color = GrayAlpha[uint8, uint8]{}

	_ HomPixel[uint8]          = Rgb[uint8]{}
	_ HomPixel[uint16]         = Bgr[uint16]{}
	_ HomPixel[float32]        = Grb[float32]{}
	_ HomPixel[uint8]          = Rgba[uint8, uint8]{}
	_ HomPixel[uint8]          = Bgra[uint8, uint8]{}
	_ HomPixel[uint8]          = Argb[uint8, uint8]{}
	_ HomPixel[uint8]          = Abgr[uint8, uint8]{}
	_ HomPixel[uint8]          = Gray[uint8]{}
	_ HomPixel[uint8]          = GrayAlpha[uint8, uint8]{}
	_ HetPixel[uint8, float32] = Rgba[uint8, float32]{}
	_ HetPixel[uint16, uint8]  = GrayAlpha[uint16, uint8]{}
)
