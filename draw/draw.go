// Package draw provides image composition and simple shape drawing.
//
// Composition and scaling wrap [golang.org/x/image/draw]. The shape functions
// write pixels of a fixed type to a [Canvas] without color conversion.
package draw

import (
	"image"

	"golang.org/x/image/draw"
)

// Drawer is an alias for [draw.Drawer].
type Drawer = draw.Drawer

// Image is an alias for [draw.Image].
type Image = draw.Image

// Op is an alias for [draw.Op].
type Op = draw.Op

// Interpolator is an alias for [draw.Interpolator].
type Interpolator = draw.Interpolator

const (
	// Over specifies ``(src in mask) over dst''.
	Over = draw.Over

	// Src specifies ``src in mask''.
	Src = draw.Src
)

// Interpolators, from fastest to best quality.
var (
	NearestNeighbor Interpolator = draw.NearestNeighbor
	ApproxBiLinear  Interpolator = draw.ApproxBiLinear
	BiLinear        Interpolator = draw.BiLinear
	CatmullRom      Interpolator = draw.CatmullRom
)

// Draw calls [DrawMask] with a nil mask.
func Draw(dst Image, r image.Rectangle, src image.Image, sp image.Point, op Op) {
	DrawMask(dst, r, src, sp, nil, image.Point{}, op)
}

// DrawMask aligns r.Min in dst with sp in src and mp in mask and then replaces the rectangle r
// in dst with the result of a Porter-Duff composition. A nil mask is treated as opaque.
func DrawMask(dst Image, r image.Rectangle, src image.Image, sp image.Point, mask image.Image, mp image.Point, op Op) {
	draw.DrawMask(dst, r, src, sp, mask, mp, op)
}

// Copy copies the part of src within sr to dst, with sr.Min aligned to dp.
func Copy(dst Image, dp image.Point, src image.Image, sr image.Rectangle, op Op) {
	draw.Copy(dst, dp, src, sr, op, nil)
}

// Scale scales the part of src within sr to the part of dst within dr.
// A nil interpolator uses [ApproxBiLinear].
func Scale(dst Image, dr image.Rectangle, src image.Image, sr image.Rectangle, op Op, interp Interpolator) {
	if interp == nil {
		interp = ApproxBiLinear
	}
	interp.Scale(dst, dr, src, sr, op, nil)
}

// ParseInterpolator returns the interpolator with the given name: "nearest",
// "approx", "bilinear" or "catmullrom".
func ParseInterpolator(name string) (Interpolator, bool) {
	switch name {
	case "nearest":
		return NearestNeighbor, true
	case "approx", "":
		return ApproxBiLinear, true
	case "bilinear":
		return BiLinear, true
	case "catmullrom":
		return CatmullRom, true
	default:
		return nil, false
	}
}
