package rgb

import (
	"cmp"
	"unsafe"
)

// Gray is a single-channel brightness pixel.
type Gray[T Component] struct {
	Y T
}

// NewGray returns a Gray pixel.
func NewGray[T Component](y T) Gray[T] {
	return Gray[T]{Y: y}
}

func (p Gray[T]) Shape() Shape { return ShapeGray }

func (p Gray[T]) Color(i int) T {
	if i != 0 {
		panic(indexError(i, 1))
	}
	return p.Y
}

// SetColor sets color channel i, which must be 0.
func (p *Gray[T]) SetColor(i int, v T) {
	if i != 0 {
		panic(indexError(i, 1))
	}
	p.Y = v
}

// SetAlpha panics, since Gray has no alpha channel.
func (p *Gray[T]) SetAlpha(T) { panic(noAlphaError(ShapeGray)) }

func (p Gray[T]) Colors() []T { return []T{p.Y} }

func (p Gray[T]) Alpha() (T, bool) {
	var zero T
	return zero, false
}

// Map returns a pixel with f applied to the brightness.
func (p Gray[T]) Map(f func(T) T) Gray[T] { return Gray[T]{Y: f(p.Y)} }

// MapColors is Map, since Gray has no alpha channel.
func (p Gray[T]) MapColors(f func(T) T) Gray[T] { return p.Map(f) }

func (p Gray[T]) Compare(o Gray[T]) int { return cmp.Compare(p.Y, o.Y) }

func (p Gray[T]) Less(o Gray[T]) bool { return p.Compare(o) < 0 }

func (p Gray[T]) String() string { return formatPixel("gray", p.Y) }

// WithAlpha returns a GrayAlpha pixel with alpha a.
func (p Gray[T]) WithAlpha(a T) GrayAlpha[T, T] {
	return GrayAlpha[T, T]{Y: p.Y, A: a}
}

// ToRgb returns an Rgb pixel with the brightness in all three channels.
func (p Gray[T]) ToRgb() Rgb[T] { return Rgb[T]{R: p.Y, G: p.Y, B: p.Y} }

// ToBgr returns a Bgr pixel with the brightness in all three channels.
func (p Gray[T]) ToBgr() Bgr[T] { return Bgr[T]{B: p.Y, G: p.Y, R: p.Y} }

// MapGray returns p with f applied to the brightness.
func MapGray[T, U Component](p Gray[T], f func(T) U) Gray[U] {
	return Gray[U]{Y: f(p.Y)}
}

// GrayNewAlpha returns a GrayAlpha pixel with an alpha of a different type than the brightness.
func GrayNewAlpha[T, A Component](p Gray[T], a A) GrayAlpha[T, A] {
	return GrayAlpha[T, A]{Y: p.Y, A: a}
}

// GrayAlpha is a brightness channel followed by a straight alpha channel.
type GrayAlpha[T, A Component] struct {
	Y T
	A A
}

// NewGrayAlpha returns a GrayAlpha pixel.
func NewGrayAlpha[T, A Component](y T, a A) GrayAlpha[T, A] {
	return GrayAlpha[T, A]{Y: y, A: a}
}

func (p GrayAlpha[T, A]) Shape() Shape { return ShapeGrayAlpha }

func (p GrayAlpha[T, A]) Color(i int) T { return p.Gray().Color(i) }

// SetColor sets color channel i, which must be 0.
func (p *GrayAlpha[T, A]) SetColor(i int, v T) { p.GrayMut().SetColor(i, v) }

func (p GrayAlpha[T, A]) Colors() []T { return []T{p.Y} }

func (p GrayAlpha[T, A]) Alpha() (A, bool) { return p.A, true }

// SetAlpha sets the alpha channel.
func (p *GrayAlpha[T, A]) SetAlpha(a A) { p.A = a }

// Gray returns a copy of the brightness channel.
func (p GrayAlpha[T, A]) Gray() Gray[T] { return Gray[T]{Y: p.Y} }

// GrayMut returns the brightness of p as a Gray pixel that aliases p.
func (p *GrayAlpha[T, A]) GrayMut() *Gray[T] { return (*Gray[T])(unsafe.Pointer(&p.Y)) }

// WithAlpha returns p with alpha replaced by a.
func (p GrayAlpha[T, A]) WithAlpha(a A) GrayAlpha[T, A] {
	p.A = a
	return p
}

// MapColors returns p with f applied to the brightness. Alpha is copied unchanged.
func (p GrayAlpha[T, A]) MapColors(f func(T) T) GrayAlpha[T, A] {
	return GrayAlpha[T, A]{Y: f(p.Y), A: p.A}
}

// MapAlpha returns p with f applied to the alpha channel. Brightness is copied unchanged.
func (p GrayAlpha[T, A]) MapAlpha(f func(A) A) GrayAlpha[T, A] {
	return GrayAlpha[T, A]{Y: p.Y, A: f(p.A)}
}

// Compare orders pixels lexicographically by Y, A.
func (p GrayAlpha[T, A]) Compare(o GrayAlpha[T, A]) int {
	return cmp.Or(cmp.Compare(p.Y, o.Y), cmp.Compare(p.A, o.A))
}

func (p GrayAlpha[T, A]) Less(o GrayAlpha[T, A]) bool { return p.Compare(o) < 0 }

func (p GrayAlpha[T, A]) String() string { return formatPixel("graya", p.Y, p.A) }

// ToRgba returns an Rgba pixel with the brightness in all three color channels.
func (p GrayAlpha[T, A]) ToRgba() Rgba[T, A] {
	return Rgba[T, A]{R: p.Y, G: p.Y, B: p.Y, A: p.A}
}

// ToBgra returns a Bgra pixel with the brightness in all three color channels.
func (p GrayAlpha[T, A]) ToBgra() Bgra[T, A] {
	return Bgra[T, A]{B: p.Y, G: p.Y, R: p.Y, A: p.A}
}

// MapGrayAlpha returns p with f applied to both channels.
func MapGrayAlpha[T, U Component](p GrayAlpha[T, T], f func(T) U) GrayAlpha[U, U] {
	return GrayAlpha[U, U]{Y: f(p.Y), A: f(p.A)}
}

// MapGrayAlphaColors returns p with f applied to the brightness only.
func MapGrayAlphaColors[T, U, A Component](p GrayAlpha[T, A], f func(T) U) GrayAlpha[U, A] {
	return GrayAlpha[U, A]{Y: f(p.Y), A: p.A}
}

// MapGrayAlphaAlpha returns p with f applied to the alpha channel only.
func MapGrayAlphaAlpha[T, A, U Component](p GrayAlpha[T, A], f func(A) U) GrayAlpha[T, U] {
	return GrayAlpha[T, U]{Y: p.Y, A: f(p.A)}
}
