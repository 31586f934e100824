package rgb

import (
	"fmt"
	"iter"
	"strings"
)

// HetPixel is implemented by every pixel type.
//
// T is the color component type and A the alpha component type. Pixels without
// an alpha channel use A = T and report ok == false from Alpha.
type HetPixel[T, A Component] interface {
	// Shape describes the channels of the pixel.
	Shape() Shape

	// Color returns color channel i, in declared order, alpha excluded.
	// It panics if i is not in [0, Shape().Colors).
	Color(i int) T

	// Colors returns a copy of the color channels in declared order.
	Colors() []T

	// Alpha returns the alpha channel.
	Alpha() (a A, ok bool)
}

// HomPixel is a pixel whose channels all share one component type.
//
// Homogeneous pixels have a fixed layout identical to [N]T and support the
// flat views in this package.
type HomPixel[T Component] interface {
	HetPixel[T, T]
}

// HetPixelPtr is the constraint for *P when generic code sets channels of P.
//
// SetAlpha panics with [ErrIndexOutOfRange] on pixels without alpha.
type HetPixelPtr[P any, T, A Component] interface {
	*P
	HetPixel[T, A]
	SetColor(i int, v T)
	SetAlpha(a A)
}

// FromColors returns a pixel with the first Shape().Colors values of colors as
// its color channels, in declared order, and alpha a. Pixels without alpha
// ignore a.
//
// It panics with [ErrShortComponents] if colors is too short.
func FromColors[P any, PP HetPixelPtr[P, T, A], T, A Component](colors []T, a A) P {
	var (
		p  P
		pp = PP(&p)
		s  = pp.Shape()
	)
	if len(colors) < s.Colors {
		panic(fmt.Errorf("%w: have %d colors, need %d", ErrShortComponents, len(colors), s.Colors))
	}
	for i := 0; i < s.Colors; i++ {
		pp.SetColor(i, colors[i])
	}
	if s.HasAlpha() {
		pp.SetAlpha(a)
	}
	return p
}

// ColorPart returns the color channels of p as the pixel C without alpha, such
// as Rgb for Rgba or Gray for GrayAlpha. Pixels without alpha map to their own
// type.
//
// It panics with [ErrLayout] if C does not hold the colors of p in the same order.
func ColorPart[C HomPixel[T], T, A Component, P HetPixel[T, A]](p P) C {
	var (
		c    C
		want = strings.ReplaceAll(p.Shape().Labels, "A", "")
	)
	if c.Shape().Labels != want {
		panic(fmt.Errorf("%w: %s does not hold the colors of %s", ErrLayout, c.Shape(), p.Shape()))
	}
	return FromComponents[C](p.Colors())
}

// Channels returns a copy of all channels of p, alpha included, in declared order.
func Channels[T Component, P HomPixel[T]](p P) []T {
	var (
		s      = p.Shape()
		a, ok  = p.Alpha()
		values = make([]T, 0, s.Channels())
	)
	if ok && s.Alpha == AlphaFirst {
		values = append(values, a)
	}
	values = append(values, p.Colors()...)
	if ok && s.Alpha == AlphaLast {
		values = append(values, a)
	}
	return values
}

// Channel returns channel i of p, alpha included, in declared order.
func Channel[T Component, P HomPixel[T]](p P, i int) T {
	s := p.Shape()
	if i < 0 || i >= s.Channels() {
		panic(indexError(i, s.Channels()))
	}
	if i == s.AlphaIndex() {
		a, _ := p.Alpha()
		return a
	}
	if s.Alpha == AlphaFirst {
		i--
	}
	return p.Color(i)
}

// All returns an iterator over all channels of p, alpha included.
func All[T Component, P HomPixel[T]](p P) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range Channels[T](p) {
			if !yield(v) {
				return
			}
		}
	}
}

// Map returns p with f applied to every channel, alpha included.
func Map[T Component, P HomPixel[T]](p P, f func(T) T) P {
	values := Components[T](&p)
	for i, v := range values {
		values[i] = f(v)
	}
	return p
}

func formatPixel(name string, values ...any) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('(')
	for i, v := range values {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprint(&b, v)
	}
	b.WriteByte(')')
	return b.String()
}
