package pixel

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/BeatGlow/rgb"
)

type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Buffer is an image of pixels of type P, stored in row-major order.
type Buffer[P color.Color] struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []P

	// Stride is the Pix stride (in pixels) between vertically adjacent pixels.
	Stride int

	// Model converts colors written with Set.
	Model *Model[P]
}

// NewBuffer returns a new buffer covering r.
func NewBuffer[P color.Color](r image.Rectangle, m *Model[P]) *Buffer[P] {
	w, h := r.Dx(), r.Dy()
	rgb.Logger().Debug("pixel: allocate buffer", "width", w, "height", h, "type", typeName[P]())
	return &Buffer[P]{
		Rect:   r,
		Pix:    make([]P, w*h),
		Stride: w,
		Model:  m,
	}
}

func (p *Buffer[P]) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer[P]) ColorModel() color.Model {
	return p.Model
}

// PixOffset returns the index of the pixel at (x, y) in Pix.
func (p *Buffer[P]) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x - p.Rect.Min.X)
}

func (p *Buffer[P]) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	return p.Pix[p.PixOffset(x, y)]
}

// Pixel returns the pixel at (x, y), or the zero pixel if (x, y) is out of bounds.
func (p *Buffer[P]) Pixel(x, y int) P {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		var zero P
		return zero
	}
	return p.Pix[p.PixOffset(x, y)]
}

func (p *Buffer[P]) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = p.Model.Pixel(c)
}

// SetPixel stores v at (x, y) without conversion.
func (p *Buffer[P]) SetPixel(x, y int, v P) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = v
}

// Row returns the pixels of row y, or nil if y is out of bounds.
func (p *Buffer[P]) Row(y int) []P {
	if y < p.Rect.Min.Y || y >= p.Rect.Max.Y {
		return nil
	}
	i := p.PixOffset(p.Rect.Min.X, y)
	return p.Pix[i : i+p.Rect.Dx()]
}

// SubImage returns an image representing the portion of p visible through r.
// The returned image shares pixels with p.
func (p *Buffer[P]) SubImage(r image.Rectangle) image.Image {
	r = r.Intersect(p.Rect)
	if r.Empty() {
		return &Buffer[P]{Model: p.Model}
	}
	i := p.PixOffset(r.Min.X, r.Min.Y)
	return &Buffer[P]{
		Rect:   r,
		Pix:    p.Pix[i:],
		Stride: p.Stride,
		Model:  p.Model,
	}
}

func (p *Buffer[P]) Clear() {
	var zero P
	p.fill(zero)
}

func (p *Buffer[P]) Fill(c color.Color) {
	p.fill(p.Model.Pixel(c))
}

func (p *Buffer[P]) fill(v P) {
	for y := p.Rect.Min.Y; y < p.Rect.Max.Y; y++ {
		row := p.Row(y)
		for i := range row {
			row[i] = v
		}
	}
}

func typeName[P any]() string {
	var p P
	if s, ok := any(p).(interface{ Shape() rgb.Shape }); ok {
		return s.Shape().Name
	}
	return "packed"
}

// Interface checks.
var (
	_ Image = (*Buffer[rgb.RGB8])(nil)
	_ Image = (*Buffer[rgb.RGBA8])(nil)
	_ Image = (*Buffer[rgb.GRAY16])(nil)
	_ Image = (*RGB565Image)(nil)
)
