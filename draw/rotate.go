package draw

import (
	"fmt"
	"image"
	"strings"
)

// Rotation defines pixel rotation.
type Rotation uint8

// Supported rotations.
const (
	NoRotation Rotation = iota
	Rotate90            // Rotate 90° clock wise
	Rotate180           // Rotate 180°
	Rotate270           // Rotate 270° clock wise
)

func (r Rotation) String() string {
	switch r % 4 {
	case Rotate90:
		return "90°"
	case Rotate180:
		return "180°"
	case Rotate270:
		return "270°"
	default:
		return "0°"
	}
}

// ParseRotation parses a rotation such as "90", "cw" or "flip".
func ParseRotation(s string) (Rotation, error) {
	switch strings.ToLower(strings.TrimSuffix(s, "°")) {
	case "", "no", "0":
		return NoRotation, nil
	case "90", "right", "cw":
		return Rotate90, nil
	case "180", "flip":
		return Rotate180, nil
	case "270", "left", "ccw":
		return Rotate270, nil
	default:
		return NoRotation, fmt.Errorf("draw: invalid rotation %q", s)
	}
}

// RotatedSize returns the size of a size.X×size.Y image after rotation.
func RotatedSize(size image.Point, r Rotation) image.Point {
	if r%2 == 1 {
		return image.Pt(size.Y, size.X)
	}
	return size
}

// RotatePoint returns where p lands when an image of the given size, with its
// minimum point at the origin, is rotated by r.
func RotatePoint(p, size image.Point, r Rotation) image.Point {
	switch r % 4 {
	case Rotate90:
		return image.Pt(size.Y-1-p.Y, p.X)
	case Rotate180:
		return image.Pt(size.X-1-p.X, size.Y-1-p.Y)
	case Rotate270:
		return image.Pt(p.Y, size.X-1-p.X)
	default:
		return p
	}
}

// Rotate draws src rotated by r into dst, with the minimum point of the
// rotated image at dp.
func Rotate(dst Image, dp image.Point, src image.Image, r Rotation) {
	b := src.Bounds()
	size := b.Size()
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			q := RotatePoint(image.Pt(x, y), size, r).Add(dp)
			dst.Set(q.X, q.Y, src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
}
