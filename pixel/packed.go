package pixel

import (
	"encoding/binary"
	"image"
	"image/color"
)

// RGB565Model converts colors to RGB565.
var RGB565Model color.Model = color.ModelFunc(rgb565Model)

// RGB565 is a 16-bit 5-6-5 RGB color, as used by 16 bpp framebuffers.
type RGB565 struct {
	// Red, 5, Green, 6, Blue, 5
	V uint16
}

func (c RGB565) RGBA() (r, g, b, a uint32) {
	// Build a 5- or 6-bit value at the top of the low byte of each component.
	red := (c.V & 0xF800) >> 8
	grn := (c.V & 0x07E0) >> 3
	blu := (c.V & 0x001F) << 3
	// Duplicate the high bits in the low bits.
	red |= red >> 5
	grn |= grn >> 6
	blu |= blu >> 5
	// Duplicate the whole value in the high byte.
	red |= red << 8
	grn |= grn << 8
	blu |= blu << 8
	return uint32(red), uint32(grn), uint32(blu), 0xffff
}

func rgb565Model(c color.Color) color.Color {
	if c, ok := c.(RGB565); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	r = r & 0xF800
	g = (g & 0xFC00) >> 5
	b = (b & 0xF800) >> 11
	return RGB565{uint16(r | g | b)}
}

// RGB565Image is a 16-bits per pixel 5-6-5-bit RGB image.
type RGB565Image struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels, two bytes each.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int

	// Order is the byte order of a pixel in Pix.
	Order binary.ByteOrder
}

// NewRGB565Image returns a w×h image in little endian byte order.
func NewRGB565Image(w, h int) *RGB565Image {
	return &RGB565Image{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, w*2*h),
		Stride: w * 2,
		Order:  binary.LittleEndian,
	}
}

func (p *RGB565Image) Bounds() image.Rectangle {
	return p.Rect
}

func (p *RGB565Image) ColorModel() color.Model {
	return RGB565Model
}

func (p *RGB565Image) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*2
}

func (p *RGB565Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	return RGB565{p.Order.Uint16(p.Pix[p.PixOffset(x, y):])}
}

func (p *RGB565Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	p.Order.PutUint16(p.Pix[p.PixOffset(x, y):], rgb565Model(c).(RGB565).V)
}

func (p *RGB565Image) Clear() {
	p.fill(0)
}

func (p *RGB565Image) Fill(c color.Color) {
	p.fill(rgb565Model(c).(RGB565).V)
}

func (p *RGB565Image) fill(value uint16) {
	bytes := make([]byte, 2)
	p.Order.PutUint16(bytes, value)
	for y := p.Rect.Min.Y; y < p.Rect.Max.Y; y++ {
		row := p.Pix[p.PixOffset(p.Rect.Min.X, y):][:p.Rect.Dx()*2]
		for i := 0; i < len(row); i += 2 {
			copy(row[i:], bytes)
		}
	}
}

// SubImage returns an image representing the portion of p visible through r.
// The returned image shares pixels with p.
func (p *RGB565Image) SubImage(r image.Rectangle) image.Image {
	r = r.Intersect(p.Rect)
	if r.Empty() {
		return &RGB565Image{Order: p.Order}
	}
	i := p.PixOffset(r.Min.X, r.Min.Y)
	return &RGB565Image{
		Rect:   r,
		Pix:    p.Pix[i:],
		Stride: p.Stride,
		Order:  p.Order,
	}
}
