package draw

import (
	"image"
	"image/color"
	"math"

	"github.com/BeatGlow/rgb"
)

// Canvas is an image that stores pixels of type P without conversion.
// [pixel.Buffer] is a Canvas.
type Canvas[P any] interface {
	Bounds() image.Rectangle
	SetPixel(x, y int, v P)
}

// Colors returns a Canvas that sets colors on dst.
func Colors(dst Image) Canvas[color.Color] {
	return colorCanvas{dst}
}

type colorCanvas struct {
	Image
}

func (c colorCanvas) SetPixel(x, y int, v color.Color) {
	c.Set(x, y, v)
}

// Line draws a line between two points, both included.
func Line[P any](dst Canvas[P], a, b image.Point, v P) {
	bresenham(dst, a.X, a.Y, b.X, b.Y, v)
}

// HorizontalLine draws a line between (x,y) and (x+w-1,y).
func HorizontalLine[P any](dst Canvas[P], x, y, w int, v P) {
	for i := 0; i < w; i++ {
		dst.SetPixel(x+i, y, v)
	}
}

// VerticalLine draws a line between (x,y) and (x,y+h-1).
func VerticalLine[P any](dst Canvas[P], x, y, h int, v P) {
	for i := 0; i < h; i++ {
		dst.SetPixel(x, y+i, v)
	}
}

// Rectangle draws the outline of rect, inside its bounds.
func Rectangle[P any](dst Canvas[P], rect image.Rectangle, v P) {
	rect = rect.Canon()
	if rect.Empty() {
		return
	}
	w, h := rect.Dx(), rect.Dy()
	HorizontalLine(dst, rect.Min.X, rect.Min.Y, w, v)
	HorizontalLine(dst, rect.Min.X, rect.Max.Y-1, w, v)
	VerticalLine(dst, rect.Min.X, rect.Min.Y, h, v)
	VerticalLine(dst, rect.Max.X-1, rect.Min.Y, h, v)
}

// Box draws a filled rectangle.
func Box[P any](dst Canvas[P], rect image.Rectangle, v P) {
	rect = rect.Canon().Intersect(dst.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		HorizontalLine(dst, rect.Min.X, y, rect.Dx(), v)
	}
}

// Gradient fills rect with a horizontal linear gradient from the left to the
// right edge. Every channel is interpolated, alpha included.
func Gradient[T rgb.Component, P rgb.HomPixel[T]](dst Canvas[P], rect image.Rectangle, from, to P) {
	rect = rect.Canon()
	var (
		a = rgb.Components[T](&from)
		b = rgb.Components[T](&to)
		w = rect.Dx()
	)
	for x := 0; x < w; x++ {
		var t float64
		if w > 1 {
			t = float64(x) / float64(w-1)
		}
		var p P
		c := rgb.Components[T](&p)
		for i := range c {
			c[i] = lerp(a[i], b[i], t)
		}
		VerticalLine(dst, rect.Min.X+x, rect.Min.Y, rect.Dy(), p)
	}
}

func lerp[T rgb.Component](a, b T, t float64) T {
	v := float64(a) + (float64(b)-float64(a))*t
	if half := 0.5; T(half) == 0 {
		v = math.Round(v)
	}
	return T(v)
}

// Generalized with integer
func bresenham[P any](dst Canvas[P], x1, y1, x2, y2 int, v P) {
	// Drawing p1 -> p2 is equivalent to drawing p2 -> p1, so sort the points
	// in x-axis order to handle only half of the cases.
	if x1 > x2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	dx, dy := x2-x1, y2-y1
	sy := 1
	if dy < 0 {
		dy, sy = -dy, -1
	}

	switch {
	// Horizontal, vertical or a point.
	case dy == 0:
		HorizontalLine(dst, x1, y1, dx+1, v)
	case dx == 0:
		VerticalLine(dst, x1, min(y1, y2), dy+1, v)

	// Wider than high.
	case dx >= dy:
		e := dx
		for ; x1 != x2; x1++ {
			dst.SetPixel(x1, y1, v)
			if e -= 2 * dy; e < 0 {
				y1 += sy
				e += 2 * dx
			}
		}
		dst.SetPixel(x2, y2, v)

	// Higher than wide.
	default:
		e := dy
		for ; y1 != y2; y1 += sy {
			dst.SetPixel(x1, y1, v)
			if e -= 2 * dx; e < 0 {
				x1++
				e += 2 * dy
			}
		}
		dst.SetPixel(x2, y2, v)
	}
}
