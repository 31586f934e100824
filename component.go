package rgb

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Component is the constraint for pixel channel values.
type Component interface {
	constraints.Integer | constraints.Float
}

// Panic causes. Operations on pixels only fail on caller contract violations,
// in which case they panic with an error wrapping one of these.
var (
	ErrIndexOutOfRange = errors.New("rgb: channel index out of range")
	ErrShortComponents = errors.New("rgb: component count does not match pixel")
	ErrLayout          = errors.New("rgb: pixel layout does not match its components")
)

func indexError(i, n int) error {
	return fmt.Errorf("%w: index %d with %d channels", ErrIndexOutOfRange, i, n)
}

func noAlphaError(s Shape) error {
	return fmt.Errorf("%w: %s has no alpha channel", ErrIndexOutOfRange, s)
}

// Opaque returns the alpha value meaning fully opaque for component type A.
//
// For integer types this is the largest representable value (255 for uint8,
// 65535 for uint16, 127 for int8 and so on), for floating point types it is 1.
func Opaque[A Component]() A {
	var zero A
	bits := 8 * unsafe.Sizeof(zero)
	switch {
	case isFloat[A]():
		return 1
	case isSigned[A]():
		return A(^uint64(0) >> (65 - bits))
	default:
		return A(^uint64(0) >> (64 - bits))
	}
}

func isFloat[T Component]() bool {
	var x T = 1
	return x/2 != 0
}

func isSigned[T Component]() bool {
	var x T
	x--
	return x < 0
}

// ToUint16 scales v to the 16-bit range used by [image/color].
//
// Integer components are scaled from [0, Opaque], float components from
// [0, 1]. Values outside of the range are clamped.
func ToUint16[T Component](v T) uint16 {
	if v <= 0 {
		return 0
	}
	if isFloat[T]() {
		if v >= 1 {
			return 0xffff
		}
		return uint16(float64(v)*0xffff + 0.5)
	}
	m := Opaque[T]()
	if v >= m {
		return 0xffff
	}
	return uint16(float64(v)*0xffff/float64(m) + 0.5)
}

// FromUint16 is the inverse of [ToUint16].
func FromUint16[T Component](v uint16) T {
	if isFloat[T]() {
		return T(float64(v) / 0xffff)
	}
	m := Opaque[T]()
	f := float64(v)*float64(m)/0xffff + 0.5
	if f >= float64(m) {
		return m
	}
	return T(f)
}
