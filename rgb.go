package rgb

import "cmp"

// Rgb is a pixel with red, green and blue channels, in that order.
type Rgb[T Component] struct {
	R, G, B T
}

// NewRgb returns an Rgb pixel.
func NewRgb[T Component](r, g, b T) Rgb[T] {
	return Rgb[T]{R: r, G: g, B: b}
}

func (p Rgb[T]) Shape() Shape { return ShapeRgb }

func (p Rgb[T]) Color(i int) T {
	switch i {
	case 0:
		return p.R
	case 1:
		return p.G
	case 2:
		return p.B
	}
	panic(indexError(i, 3))
}

// SetColor sets color channel i.
func (p *Rgb[T]) SetColor(i int, v T) {
	switch i {
	case 0:
		p.R = v
	case 1:
		p.G = v
	case 2:
		p.B = v
	default:
		panic(indexError(i, 3))
	}
}

// SetAlpha panics, since Rgb has no alpha channel.
func (p *Rgb[T]) SetAlpha(T) { panic(noAlphaError(p.Shape())) }

func (p Rgb[T]) Colors() []T { return []T{p.R, p.G, p.B} }

func (p Rgb[T]) Alpha() (T, bool) {
	var zero T
	return zero, false
}

// Map returns a pixel with f applied to every channel.
func (p Rgb[T]) Map(f func(T) T) Rgb[T] {
	return Rgb[T]{R: f(p.R), G: f(p.G), B: f(p.B)}
}

// MapColors is Map, since Rgb has no alpha channel.
func (p Rgb[T]) MapColors(f func(T) T) Rgb[T] { return p.Map(f) }

// Compare orders pixels lexicographically by R, G, B.
func (p Rgb[T]) Compare(o Rgb[T]) int {
	return cmp.Or(cmp.Compare(p.R, o.R), cmp.Compare(p.G, o.G), cmp.Compare(p.B, o.B))
}

func (p Rgb[T]) Less(o Rgb[T]) bool { return p.Compare(o) < 0 }

func (p Rgb[T]) String() string { return formatPixel("rgb", p.R, p.G, p.B) }

// WithAlpha returns an Rgba pixel with alpha a.
func (p Rgb[T]) WithAlpha(a T) Rgba[T, T] {
	return Rgba[T, T]{R: p.R, G: p.G, B: p.B, A: a}
}

func (p Rgb[T]) ToRgb() Rgb[T] { return p }
func (p Rgb[T]) ToBgr() Bgr[T] { return Bgr[T]{B: p.B, G: p.G, R: p.R} }
func (p Rgb[T]) ToGrb() Grb[T] { return Grb[T]{G: p.G, R: p.R, B: p.B} }

// MapRgb returns p with f applied to every channel.
func MapRgb[T, U Component](p Rgb[T], f func(T) U) Rgb[U] {
	return Rgb[U]{R: f(p.R), G: f(p.G), B: f(p.B)}
}

// RgbNewAlpha returns an Rgba pixel with an alpha of a different type than the colors.
func RgbNewAlpha[T, A Component](p Rgb[T], a A) Rgba[T, A] {
	return Rgba[T, A]{R: p.R, G: p.G, B: p.B, A: a}
}

// Bgr is a pixel with blue, green and red channels, in that order.
type Bgr[T Component] struct {
	B, G, R T
}

// NewBgr returns a Bgr pixel. Arguments are in declared order: blue first.
func NewBgr[T Component](b, g, r T) Bgr[T] {
	return Bgr[T]{B: b, G: g, R: r}
}

func (p Bgr[T]) Shape() Shape { return ShapeBgr }

func (p Bgr[T]) Color(i int) T {
	switch i {
	case 0:
		return p.B
	case 1:
		return p.G
	case 2:
		return p.R
	}
	panic(indexError(i, 3))
}

// SetColor sets color channel i.
func (p *Bgr[T]) SetColor(i int, v T) {
	switch i {
	case 0:
		p.B = v
	case 1:
		p.G = v
	case 2:
		p.R = v
	default:
		panic(indexError(i, 3))
	}
}

// SetAlpha panics, since Bgr has no alpha channel.
func (p *Bgr[T]) SetAlpha(T) { panic(noAlphaError(p.Shape())) }

func (p Bgr[T]) Colors() []T { return []T{p.B, p.G, p.R} }

func (p Bgr[T]) Alpha() (T, bool) {
	var zero T
	return zero, false
}

// Map returns a pixel with f applied to every channel.
func (p Bgr[T]) Map(f func(T) T) Bgr[T] {
	return Bgr[T]{B: f(p.B), G: f(p.G), R: f(p.R)}
}

// MapColors is Map, since Bgr has no alpha channel.
func (p Bgr[T]) MapColors(f func(T) T) Bgr[T] { return p.Map(f) }

// Compare orders pixels lexicographically by B, G, R.
func (p Bgr[T]) Compare(o Bgr[T]) int {
	return cmp.Or(cmp.Compare(p.B, o.B), cmp.Compare(p.G, o.G), cmp.Compare(p.R, o.R))
}

func (p Bgr[T]) Less(o Bgr[T]) bool { return p.Compare(o) < 0 }

func (p Bgr[T]) String() string { return formatPixel("bgr", p.B, p.G, p.R) }

// WithAlpha returns a Bgra pixel with alpha a.
func (p Bgr[T]) WithAlpha(a T) Bgra[T, T] {
	return Bgra[T, T]{B: p.B, G: p.G, R: p.R, A: a}
}

func (p Bgr[T]) ToRgb() Rgb[T] { return Rgb[T]{R: p.R, G: p.G, B: p.B} }
func (p Bgr[T]) ToBgr() Bgr[T] { return p }
func (p Bgr[T]) ToGrb() Grb[T] { return Grb[T]{G: p.G, R: p.R, B: p.B} }

// MapBgr returns p with f applied to every channel.
func MapBgr[T, U Component](p Bgr[T], f func(T) U) Bgr[U] {
	return Bgr[U]{B: f(p.B), G: f(p.G), R: f(p.R)}
}

// BgrNewAlpha returns a Bgra pixel with an alpha of a different type than the colors.
func BgrNewAlpha[T, A Component](p Bgr[T], a A) Bgra[T, A] {
	return Bgra[T, A]{B: p.B, G: p.G, R: p.R, A: a}
}

// Grb is a pixel with green, red and blue channels, in that order.
type Grb[T Component] struct {
	G, R, B T
}

// NewGrb returns a Grb pixel. Arguments are in declared order: green first.
func NewGrb[T Component](g, r, b T) Grb[T] {
	return Grb[T]{G: g, R: r, B: b}
}

func (p Grb[T]) Shape() Shape { return ShapeGrb }

func (p Grb[T]) Color(i int) T {
	switch i {
	case 0:
		return p.G
	case 1:
		return p.R
	case 2:
		return p.B
	}
	panic(indexError(i, 3))
}

// SetColor sets color channel i.
func (p *Grb[T]) SetColor(i int, v T) {
	switch i {
	case 0:
		p.G = v
	case 1:
		p.R = v
	case 2:
		p.B = v
	default:
		panic(indexError(i, 3))
	}
}

// SetAlpha panics, since Grb has no alpha channel.
func (p *Grb[T]) SetAlpha(T) { panic(noAlphaError(p.Shape())) }

func (p Grb[T]) Colors() []T { return []T{p.G, p.R, p.B} }

func (p Grb[T]) Alpha() (T, bool) {
	var zero T
	return zero, false
}

// Map returns a pixel with f applied to every channel.
func (p Grb[T]) Map(f func(T) T) Grb[T] {
	return Grb[T]{G: f(p.G), R: f(p.R), B: f(p.B)}
}

// MapColors is Map, since Grb has no alpha channel.
func (p Grb[T]) MapColors(f func(T) T) Grb[T] { return p.Map(f) }

// Compare orders pixels lexicographically by G, R, B.
func (p Grb[T]) Compare(o Grb[T]) int {
	return cmp.Or(cmp.Compare(p.G, o.G), cmp.Compare(p.R, o.R), cmp.Compare(p.B, o.B))
}

func (p Grb[T]) Less(o Grb[T]) bool { return p.Compare(o) < 0 }

func (p Grb[T]) String() string { return formatPixel("grb", p.G, p.R, p.B) }

func (p Grb[T]) ToRgb() Rgb[T] { return Rgb[T]{R: p.R, G: p.G, B: p.B} }
func (p Grb[T]) ToBgr() Bgr[T] { return Bgr[T]{B: p.B, G: p.G, R: p.R} }
func (p Grb[T]) ToGrb() Grb[T] { return p }

// MapGrb returns p with f applied to every channel.
func MapGrb[T, U Component](p Grb[T], f func(T) U) Grb[U] {
	return Grb[U]{G: f(p.G), R: f(p.R), B: f(p.B)}
}
