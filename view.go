package rgb

import (
	"fmt"
	"iter"
	"unsafe"
)

// The views in this file reinterpret homogeneous pixels as their components.
// A pixel of type P with n channels of type T must have the size and alignment
// of [n]T. This holds for every pixel type in this package, because their
// fields all share type T and Go does not pad between fields of equal type.
// layoutOf checks it on every call regardless.

func layoutOf[T Component, P HomPixel[T]]() (channels int) {
	var (
		p P
		t T
	)
	channels = p.Shape().Channels()
	if unsafe.Sizeof(p) != uintptr(channels)*unsafe.Sizeof(t) || unsafe.Alignof(p) != unsafe.Alignof(t) {
		panic(fmt.Errorf("%w: %T is not [%d]%T", ErrLayout, p, channels, t))
	}
	return channels
}

// Components returns the channels of p as a slice that aliases p.
//
// Writes through the slice modify p. The slice must not be used after p goes
// out of scope, and must not be written while p is accessed concurrently.
func Components[T Component, P HomPixel[T]](p *P) []T {
	n := layoutOf[T, P]()
	return unsafe.Slice((*T)(unsafe.Pointer(p)), n)
}

// Flatten returns the channels of all pixels as one slice that aliases ps.
func Flatten[T Component, P HomPixel[T]](ps []P) []T {
	n := layoutOf[T, P]()
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(ps))), len(ps)*n)
}

// Bytes returns the memory of ps as a byte slice, in native byte order.
func Bytes[T Component, P HomPixel[T]](ps []P) []byte {
	var t T
	values := Flatten[T](ps)
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(values))), len(values)*int(unsafe.Sizeof(t)))
}

// Unflatten returns values as a slice of pixels that aliases values.
//
// It panics if len(values) is not a multiple of the channel count of P.
func Unflatten[P HomPixel[T], T Component](values []T) []P {
	n := layoutOf[T, P]()
	if len(values)%n != 0 {
		panic(fmt.Errorf("%w: %d components for %d channels per pixel", ErrShortComponents, len(values), n))
	}
	return unsafe.Slice((*P)(unsafe.Pointer(unsafe.SliceData(values))), len(values)/n)
}

// FromBytes returns b as a slice of pixels that aliases b.
//
// It panics if len(b) is not a multiple of the pixel size, or if b is not
// aligned for P (see [Aligned]).
func FromBytes[P HomPixel[T], T Component](b []byte) []P {
	layoutOf[T, P]()
	var p P
	if size := int(unsafe.Sizeof(p)); len(b)%size != 0 {
		panic(fmt.Errorf("%w: %d bytes for %d byte pixels", ErrShortComponents, len(b), size))
	}
	if !Aligned[P](b) {
		panic(fmt.Errorf("%w: buffer not aligned for %T", ErrLayout, p))
	}
	return unsafe.Slice((*P)(unsafe.Pointer(unsafe.SliceData(b))), len(b)/int(unsafe.Sizeof(p)))
}

// Aligned reports whether b starts at an address suitable for values of type P.
func Aligned[P any](b []byte) bool {
	var p P
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))%unsafe.Alignof(p) == 0
}

// FromComponents returns a pixel built from the first channels of values.
//
// It panics if values holds fewer components than P has channels; missing
// channels are never filled with zeros.
func FromComponents[P HomPixel[T], T Component](values []T) P {
	var p P
	dst := Components[T](&p)
	if len(values) < len(dst) {
		panic(fmt.Errorf("%w: have %d, need %d", ErrShortComponents, len(values), len(dst)))
	}
	copy(dst, values)
	return p
}

// Collect returns a pixel built from the first values yielded by seq.
// It panics if seq ends before every channel is filled.
func Collect[P HomPixel[T], T Component](seq iter.Seq[T]) P {
	var (
		p   P
		dst = Components[T](&p)
		n   int
	)
	for v := range seq {
		if n == len(dst) {
			break
		}
		dst[n] = v
		n++
	}
	if n < len(dst) {
		panic(fmt.Errorf("%w: have %d, need %d", ErrShortComponents, n, len(dst)))
	}
	return p
}
