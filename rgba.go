package rgb

import (
	"cmp"
	"unsafe"
)

// Rgba is an Rgb pixel followed by a straight (not premultiplied) alpha channel.
//
// The alpha component type A may differ from the color component type T.
type Rgba[T, A Component] struct {
	R, G, B T
	A       A
}

// NewRgba returns an Rgba pixel.
func NewRgba[T, A Component](r, g, b T, a A) Rgba[T, A] {
	return Rgba[T, A]{R: r, G: g, B: b, A: a}
}

func (p Rgba[T, A]) Shape() Shape { return ShapeRgba }

func (p Rgba[T, A]) Color(i int) T { return p.Rgb().Color(i) }

// SetColor sets color channel i.
func (p *Rgba[T, A]) SetColor(i int, v T) { p.RgbMut().SetColor(i, v) }

func (p Rgba[T, A]) Colors() []T { return []T{p.R, p.G, p.B} }

func (p Rgba[T, A]) Alpha() (A, bool) { return p.A, true }

// SetAlpha sets the alpha channel.
func (p *Rgba[T, A]) SetAlpha(a A) { p.A = a }

// Rgb returns a copy of the color channels.
func (p Rgba[T, A]) Rgb() Rgb[T] { return Rgb[T]{R: p.R, G: p.G, B: p.B} }

// RgbMut returns the color channels of p as an Rgb pixel that aliases p.
func (p *Rgba[T, A]) RgbMut() *Rgb[T] { return (*Rgb[T])(unsafe.Pointer(&p.R)) }

// WithAlpha returns p with alpha replaced by a.
func (p Rgba[T, A]) WithAlpha(a A) Rgba[T, A] {
	p.A = a
	return p
}

// MapColors returns p with f applied to the color channels. Alpha is copied unchanged.
func (p Rgba[T, A]) MapColors(f func(T) T) Rgba[T, A] {
	return Rgba[T, A]{R: f(p.R), G: f(p.G), B: f(p.B), A: p.A}
}

// MapAlpha returns p with f applied to the alpha channel. Colors are copied unchanged.
func (p Rgba[T, A]) MapAlpha(f func(A) A) Rgba[T, A] {
	return Rgba[T, A]{R: p.R, G: p.G, B: p.B, A: f(p.A)}
}

// Compare orders pixels lexicographically by R, G, B, A.
func (p Rgba[T, A]) Compare(o Rgba[T, A]) int {
	return cmp.Or(p.Rgb().Compare(o.Rgb()), cmp.Compare(p.A, o.A))
}

func (p Rgba[T, A]) Less(o Rgba[T, A]) bool { return p.Compare(o) < 0 }

func (p Rgba[T, A]) String() string { return formatPixel("rgba", p.R, p.G, p.B, p.A) }

func (p Rgba[T, A]) ToRgba() Rgba[T, A] { return p }
func (p Rgba[T, A]) ToBgra() Bgra[T, A] { return Bgra[T, A]{B: p.B, G: p.G, R: p.R, A: p.A} }
func (p Rgba[T, A]) ToArgb() Argb[T, A] { return Argb[T, A]{A: p.A, R: p.R, G: p.G, B: p.B} }
func (p Rgba[T, A]) ToAbgr() Abgr[T, A] { return Abgr[T, A]{A: p.A, B: p.B, G: p.G, R: p.R} }

// MapRgba returns p with f applied to every channel, alpha included.
func MapRgba[T, U Component](p Rgba[T, T], f func(T) U) Rgba[U, U] {
	return Rgba[U, U]{R: f(p.R), G: f(p.G), B: f(p.B), A: f(p.A)}
}

// MapRgbaColors returns p with f applied to the color channels only.
func MapRgbaColors[T, U, A Component](p Rgba[T, A], f func(T) U) Rgba[U, A] {
	return Rgba[U, A]{R: f(p.R), G: f(p.G), B: f(p.B), A: p.A}
}

// MapRgbaAlpha returns p with f applied to the alpha channel only.
func MapRgbaAlpha[T, A, U Component](p Rgba[T, A], f func(A) U) Rgba[T, U] {
	return Rgba[T, U]{R: p.R, G: p.G, B: p.B, A: f(p.A)}
}

// Bgra is a Bgr pixel followed by a straight alpha channel.
type Bgra[T, A Component] struct {
	B, G, R T
	A       A
}

// NewBgra returns a Bgra pixel. Arguments are in declared order: blue first.
func NewBgra[T, A Component](b, g, r T, a A) Bgra[T, A] {
	return Bgra[T, A]{B: b, G: g, R: r, A: a}
}

func (p Bgra[T, A]) Shape() Shape { return ShapeBgra }

func (p Bgra[T, A]) Color(i int) T { return p.Bgr().Color(i) }

// SetColor sets color channel i.
func (p *Bgra[T, A]) SetColor(i int, v T) { p.BgrMut().SetColor(i, v) }

func (p Bgra[T, A]) Colors() []T { return []T{p.B, p.G, p.R} }

func (p Bgra[T, A]) Alpha() (A, bool) { return p.A, true }

// SetAlpha sets the alpha channel.
func (p *Bgra[T, A]) SetAlpha(a A) { p.A = a }

// Bgr returns a copy of the color channels.
func (p Bgra[T, A]) Bgr() Bgr[T] { return Bgr[T]{B: p.B, G: p.G, R: p.R} }

// BgrMut returns the color channels of p as a Bgr pixel that aliases p.
func (p *Bgra[T, A]) BgrMut() *Bgr[T] { return (*Bgr[T])(unsafe.Pointer(&p.B)) }

// WithAlpha returns p with alpha replaced by a.
func (p Bgra[T, A]) WithAlpha(a A) Bgra[T, A] {
	p.A = a
	return p
}

// MapColors returns p with f applied to the color channels. Alpha is copied unchanged.
func (p Bgra[T, A]) MapColors(f func(T) T) Bgra[T, A] {
	return Bgra[T, A]{B: f(p.B), G: f(p.G), R: f(p.R), A: p.A}
}

// MapAlpha returns p with f applied to the alpha channel. Colors are copied unchanged.
func (p Bgra[T, A]) MapAlpha(f func(A) A) Bgra[T, A] {
	return Bgra[T, A]{B: p.B, G: p.G, R: p.R, A: f(p.A)}
}

// Compare orders pixels lexicographically by B, G, R, A.
func (p Bgra[T, A]) Compare(o Bgra[T, A]) int {
	return cmp.Or(p.Bgr().Compare(o.Bgr()), cmp.Compare(p.A, o.A))
}

func (p Bgra[T, A]) Less(o Bgra[T, A]) bool { return p.Compare(o) < 0 }

func (p Bgra[T, A]) String() string { return formatPixel("bgra", p.B, p.G, p.R, p.A) }

func (p Bgra[T, A]) ToRgba() Rgba[T, A] { return Rgba[T, A]{R: p.R, G: p.G, B: p.B, A: p.A} }
func (p Bgra[T, A]) ToBgra() Bgra[T, A] { return p }
func (p Bgra[T, A]) ToArgb() Argb[T, A] { return Argb[T, A]{A: p.A, R: p.R, G: p.G, B: p.B} }
func (p Bgra[T, A]) ToAbgr() Abgr[T, A] { return Abgr[T, A]{A: p.A, B: p.B, G: p.G, R: p.R} }

// MapBgra returns p with f applied to every channel, alpha included.
func MapBgra[T, U Component](p Bgra[T, T], f func(T) U) Bgra[U, U] {
	return Bgra[U, U]{B: f(p.B), G: f(p.G), R: f(p.R), A: f(p.A)}
}

// MapBgraColors returns p with f applied to the color channels only.
func MapBgraColors[T, U, A Component](p Bgra[T, A], f func(T) U) Bgra[U, A] {
	return Bgra[U, A]{B: f(p.B), G: f(p.G), R: f(p.R), A: p.A}
}

// MapBgraAlpha returns p with f applied to the alpha channel only.
func MapBgraAlpha[T, A, U Component](p Bgra[T, A], f func(A) U) Bgra[T, U] {
	return Bgra[T, U]{B: p.B, G: p.G, R: p.R, A: f(p.A)}
}

// Argb is a straight alpha channel followed by an Rgb pixel.
type Argb[T, A Component] struct {
	A       A
	R, G, B T
}

// NewArgb returns an Argb pixel. Arguments are in declared order: alpha first.
func NewArgb[T, A Component](a A, r, g, b T) Argb[T, A] {
	return Argb[T, A]{A: a, R: r, G: g, B: b}
}

func (p Argb[T, A]) Shape() Shape { return ShapeArgb }

func (p Argb[T, A]) Color(i int) T { return p.Rgb().Color(i) }

// SetColor sets color channel i.
func (p *Argb[T, A]) SetColor(i int, v T) { p.RgbMut().SetColor(i, v) }

func (p Argb[T, A]) Colors() []T { return []T{p.R, p.G, p.B} }

func (p Argb[T, A]) Alpha() (A, bool) { return p.A, true }

// SetAlpha sets the alpha channel.
func (p *Argb[T, A]) SetAlpha(a A) { p.A = a }

// Rgb returns a copy of the color channels.
func (p Argb[T, A]) Rgb() Rgb[T] { return Rgb[T]{R: p.R, G: p.G, B: p.B} }

// RgbMut returns the color channels of p as an Rgb pixel that aliases p.
func (p *Argb[T, A]) RgbMut() *Rgb[T] { return (*Rgb[T])(unsafe.Pointer(&p.R)) }

// WithAlpha returns p with alpha replaced by a.
func (p Argb[T, A]) WithAlpha(a A) Argb[T, A] {
	p.A = a
	return p
}

// MapColors returns p with f applied to the color channels. Alpha is copied unchanged.
func (p Argb[T, A]) MapColors(f func(T) T) Argb[T, A] {
	return Argb[T, A]{A: p.A, R: f(p.R), G: f(p.G), B: f(p.B)}
}

// MapAlpha returns p with f applied to the alpha channel. Colors are copied unchanged.
func (p Argb[T, A]) MapAlpha(f func(A) A) Argb[T, A] {
	return Argb[T, A]{A: f(p.A), R: p.R, G: p.G, B: p.B}
}

// Compare orders pixels lexicographically by A, R, G, B.
func (p Argb[T, A]) Compare(o Argb[T, A]) int {
	return cmp.Or(cmp.Compare(p.A, o.A), p.Rgb().Compare(o.Rgb()))
}

func (p Argb[T, A]) Less(o Argb[T, A]) bool { return p.Compare(o) < 0 }

func (p Argb[T, A]) String() string { return formatPixel("argb", p.A, p.R, p.G, p.B) }

func (p Argb[T, A]) ToRgba() Rgba[T, A] { return Rgba[T, A]{R: p.R, G: p.G, B: p.B, A: p.A} }
func (p Argb[T, A]) ToBgra() Bgra[T, A] { return Bgra[T, A]{B: p.B, G: p.G, R: p.R, A: p.A} }
func (p Argb[T, A]) ToArgb() Argb[T, A] { return p }
func (p Argb[T, A]) ToAbgr() Abgr[T, A] { return Abgr[T, A]{A: p.A, B: p.B, G: p.G, R: p.R} }

// MapArgb returns p with f applied to every channel, alpha included.
func MapArgb[T, U Component](p Argb[T, T], f func(T) U) Argb[U, U] {
	return Argb[U, U]{A: f(p.A), R: f(p.R), G: f(p.G), B: f(p.B)}
}

// MapArgbColors returns p with f applied to the color channels only.
func MapArgbColors[T, U, A Component](p Argb[T, A], f func(T) U) Argb[U, A] {
	return Argb[U, A]{A: p.A, R: f(p.R), G: f(p.G), B: f(p.B)}
}

// MapArgbAlpha returns p with f applied to the alpha channel only.
func MapArgbAlpha[T, A, U Component](p Argb[T, A], f func(A) U) Argb[T, U] {
	return Argb[T, U]{A: f(p.A), R: p.R, G: p.G, B: p.B}
}

// Abgr is a straight alpha channel followed by a Bgr pixel.
type Abgr[T, A Component] struct {
	A       A
	B, G, R T
}

// NewAbgr returns an Abgr pixel. Arguments are in declared order: alpha first.
func NewAbgr[T, A Component](a A, b, g, r T) Abgr[T, A] {
	return Abgr[T, A]{A: a, B: b, G: g, R: r}
}

func (p Abgr[T, A]) Shape() Shape { return ShapeAbgr }

func (p Abgr[T, A]) Color(i int) T { return p.Bgr().Color(i) }

// SetColor sets color channel i.
func (p *Abgr[T, A]) SetColor(i int, v T) { p.BgrMut().SetColor(i, v) }

func (p Abgr[T, A]) Colors() []T { return []T{p.B, p.G, p.R} }

func (p Abgr[T, A]) Alpha() (A, bool) { return p.A, true }

// SetAlpha sets the alpha channel.
func (p *Abgr[T, A]) SetAlpha(a A) { p.A = a }

// Bgr returns a copy of the color channels.
func (p Abgr[T, A]) Bgr() Bgr[T] { return Bgr[T]{B: p.B, G: p.G, R: p.R} }

// BgrMut returns the color channels of p as a Bgr pixel that aliases p.
func (p *Abgr[T, A]) BgrMut() *Bgr[T] { return (*Bgr[T])(unsafe.Pointer(&p.B)) }

// WithAlpha returns p with alpha replaced by a.
func (p Abgr[T, A]) WithAlpha(a A) Abgr[T, A] {
	p.A = a
	return p
}

// MapColors returns p with f applied to the color channels. Alpha is copied unchanged.
func (p Abgr[T, A]) MapColors(f func(T) T) Abgr[T, A] {
	return Abgr[T, A]{A: p.A, B: f(p.B), G: f(p.G), R: f(p.R)}
}

// MapAlpha returns p with f applied to the alpha channel. Colors are copied unchanged.
func (p Abgr[T, A]) MapAlpha(f func(A) A) Abgr[T, A] {
	return Abgr[T, A]{A: f(p.A), B: p.B, G: p.G, R: p.R}
}

// Compare orders pixels lexicographically by A, B, G, R.
func (p Abgr[T, A]) Compare(o Abgr[T, A]) int {
	return cmp.Or(cmp.Compare(p.A, o.A), p.Bgr().Compare(o.Bgr()))
}

func (p Abgr[T, A]) Less(o Abgr[T, A]) bool { return p.Compare(o) < 0 }

func (p Abgr[T, A]) String() string { return formatPixel("abgr", p.A, p.B, p.G, p.R) }

func (p Abgr[T, A]) ToRgba() Rgba[T, A] { return Rgba[T, A]{R: p.R, G: p.G, B: p.B, A: p.A} }
func (p Abgr[T, A]) ToBgra() Bgra[T, A] { return Bgra[T, A]{B: p.B, G: p.G, R: p.R, A: p.A} }
func (p Abgr[T, A]) ToArgb() Argb[T, A] { return Argb[T, A]{A: p.A, R: p.R, G: p.G, B: p.B} }
func (p Abgr[T, A]) ToAbgr() Abgr[T, A] { return p }

// MapAbgr returns p with f applied to every channel, alpha included.
func MapAbgr[T, U Component](p Abgr[T, T], f func(T) U) Abgr[U, U] {
	return Abgr[U, U]{A: f(p.A), B: f(p.B), G: f(p.G), R: f(p.R)}
}

// MapAbgrColors returns p with f applied to the color channels only.
func MapAbgrColors[T, U, A Component](p Abgr[T, A], f func(T) U) Abgr[U, A] {
	return Abgr[U, A]{A: p.A, B: f(p.B), G: f(p.G), R: f(p.R)}
}

// MapAbgrAlpha returns p with f applied to the alpha channel only.
func MapAbgrAlpha[T, A, U Component](p Abgr[T, A], f func(A) U) Abgr[T, U] {
	return Abgr[T, U]{A: f(p.A), B: p.B, G: p.G, R: p.R}
}
