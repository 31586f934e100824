package pixel

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"
	"unsafe"

	"golang.org/x/image/draw"

	"github.com/BeatGlow/rgb"
)

// Errors returned by the format functions.
var (
	ErrUnknownFormat = errors.New("pixel: unknown format")
	ErrShortBuffer   = errors.New("pixel: buffer too small for image")
	ErrImageType     = errors.New("pixel: image does not use format")
)

// Format represents a pixel storage format.
type Format uint8

const (
	// FormatRGB8 is 24-bit RGB (3 bytes per pixel, no alpha).
	FormatRGB8 Format = iota

	// FormatRGB16 is 48-bit RGB (6 bytes per pixel, no alpha).
	FormatRGB16

	// FormatBGR8 is 24-bit BGR (3 bytes per pixel, no alpha).
	FormatBGR8

	// FormatRGBA8 is 32-bit RGBA with straight alpha (4 bytes per pixel).
	FormatRGBA8

	// FormatRGBA16 is 64-bit RGBA with straight alpha (8 bytes per pixel).
	FormatRGBA16

	// FormatBGRA8 is 32-bit BGRA with straight alpha (4 bytes per pixel).
	// Common for 32 bpp framebuffers on little endian machines.
	FormatBGRA8

	// FormatARGB8 is 32-bit ARGB with straight alpha (4 bytes per pixel).
	FormatARGB8

	// FormatGray8 is 8-bit grayscale (1 byte per pixel).
	FormatGray8

	// FormatGray16 is 16-bit grayscale (2 bytes per pixel).
	FormatGray16

	// FormatGrayAlpha8 is 8-bit grayscale with alpha (2 bytes per pixel).
	FormatGrayAlpha8

	// FormatGrayAlpha16 is 16-bit grayscale with alpha (4 bytes per pixel).
	FormatGrayAlpha16

	// FormatRGB565 is 16-bit packed 5-6-5 RGB (2 bytes per pixel).
	FormatRGB565

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// Name is the lower case name used by ParseFormat.
	Name string

	// Shape of the pixel. Packed formats report the shape they unpack to.
	Shape rgb.Shape

	// BytesPerPixel is the number of bytes per pixel.
	BytesPerPixel int

	// BitsPerChannel is the number of bits per color channel, or 0 for
	// packed formats.
	BitsPerChannel int

	// Model converts colors to the pixel type of the format.
	Model color.Model

	ops formatOps
}

type formatOps struct {
	newImage  func(w, h int) Image
	fromBytes func(b []byte, w, h int) Image
	bytes     func(img image.Image) ([]byte, bool)
}

// formatInfoTable contains metadata for each format.
var formatInfoTable = [formatCount]FormatInfo{
	FormatRGB8:        infoFor[uint8]("rgb8", RGB8Model),
	FormatRGB16:       infoFor[uint16]("rgb16", RGB16Model),
	FormatBGR8:        infoFor[uint8]("bgr8", BGR8Model),
	FormatRGBA8:       infoFor[uint8]("rgba8", RGBA8Model),
	FormatRGBA16:      infoFor[uint16]("rgba16", RGBA16Model),
	FormatBGRA8:       infoFor[uint8]("bgra8", BGRA8Model),
	FormatARGB8:       infoFor[uint8]("argb8", ARGB8Model),
	FormatGray8:       infoFor[uint8]("gray8", Gray8Model),
	FormatGray16:      infoFor[uint16]("gray16", Gray16Model),
	FormatGrayAlpha8:  infoFor[uint8]("graya8", GrayAlpha8Model),
	FormatGrayAlpha16: infoFor[uint16]("graya16", GrayAlpha16Model),
	FormatRGB565: {
		Name:          "rgb565",
		Shape:         rgb.ShapeRgb,
		BytesPerPixel: 2,
		Model:         RGB565Model,
		ops: formatOps{
			newImage: func(w, h int) Image { return NewRGB565Image(w, h) },
			fromBytes: func(b []byte, w, h int) Image {
				img := NewRGB565Image(0, 0)
				img.Rect = image.Rect(0, 0, w, h)
				img.Pix = b[:w*h*2]
				img.Stride = w * 2
				return img
			},
			bytes: func(img image.Image) ([]byte, bool) {
				p, ok := img.(*RGB565Image)
				if !ok || p.Stride != p.Rect.Dx()*2 {
					return nil, false
				}
				return p.Pix[:p.Stride*p.Rect.Dy()], true
			},
		},
	},
}

// Pixel is the constraint for pixel types with a format.
type Pixel[T rgb.Component] interface {
	comparable
	color.Color
	rgb.HomPixel[T]
}

func infoFor[T rgb.Component, P Pixel[T]](name string, m *Model[P]) FormatInfo {
	var (
		p P
		t T
	)
	return FormatInfo{
		Name:           name,
		Shape:          p.Shape(),
		BytesPerPixel:  int(unsafe.Sizeof(p)),
		BitsPerChannel: 8 * int(unsafe.Sizeof(t)),
		Model:          m,
		ops: formatOps{
			newImage: func(w, h int) Image {
				return NewBuffer(image.Rect(0, 0, w, h), m)
			},
			fromBytes: func(b []byte, w, h int) Image {
				var pix []P
				if b = b[:w*h*int(unsafe.Sizeof(p))]; rgb.Aligned[P](b) {
					pix = rgb.FromBytes[P, T](b)
				} else {
					rgb.Logger().Debug("pixel: copying unaligned buffer", "format", name, "bytes", len(b))
					pix = make([]P, w*h)
					copy(rgb.Bytes[T](pix), b)
				}
				return &Buffer[P]{
					Rect:   image.Rect(0, 0, w, h),
					Pix:    pix,
					Stride: w,
					Model:  m,
				}
			},
			bytes: func(img image.Image) ([]byte, bool) {
				p, ok := img.(*Buffer[P])
				if !ok || p.Stride != p.Rect.Dx() {
					return nil, false
				}
				return rgb.Bytes[T](p.Pix[:p.Stride*p.Rect.Dy()]), true
			},
		},
	}
}

// ParseFormat returns the format with the given name, such as "rgba8".
// Names are case insensitive.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(name)
	for f := range formatInfoTable {
		if formatInfoTable[f].Name == name {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Formats returns all known formats.
func Formats() []Format {
	formats := make([]Format, formatCount)
	for i := range formats {
		formats[i] = Format(i)
	}
	return formats
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// BytesPerPixel returns the number of bytes per pixel for this format.
func (f Format) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// HasAlpha returns true if this format has an alpha channel.
func (f Format) HasAlpha() bool {
	return f.Info().Shape.HasAlpha()
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

func (f Format) String() string {
	if !f.IsValid() {
		return "unknown"
	}
	return f.Info().Name
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// ImageBytes calculates the total number of bytes needed for an image.
func (f Format) ImageBytes(width, height int) int {
	return f.RowBytes(width) * height
}

// NewImage returns a new w×h image in this format.
func (f Format) NewImage(w, h int) (Image, error) {
	if !f.IsValid() {
		return nil, ErrUnknownFormat
	}
	return f.Info().ops.newImage(w, h), nil
}

// FromBytes returns a w×h image in this format backed by b, without copying
// if b is suitably aligned. Multi-byte components are in native byte order,
// RGB565 pixels in little endian order.
func (f Format) FromBytes(b []byte, w, h int) (Image, error) {
	if !f.IsValid() {
		return nil, ErrUnknownFormat
	}
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("pixel: invalid size %dx%d", w, h)
	}
	if n := f.ImageBytes(w, h); len(b) < n {
		return nil, fmt.Errorf("%w: have %d bytes, need %d for %dx%d %s", ErrShortBuffer, len(b), n, w, h, f)
	}
	return f.Info().ops.fromBytes(b, w, h), nil
}

// Bytes returns the pixels of img in this format, without copying if img is
// a contiguous image of this format. Other images are converted.
func (f Format) Bytes(img image.Image) ([]byte, error) {
	if !f.IsValid() {
		return nil, ErrUnknownFormat
	}
	ops := f.Info().ops
	if b, ok := ops.bytes(img); ok {
		return b, nil
	}
	r := img.Bounds()
	dst := ops.newImage(r.Dx(), r.Dy())
	draw.Draw(dst, dst.Bounds(), img, r.Min, draw.Src)
	if b, ok := ops.bytes(dst); ok {
		return b, nil
	}
	return nil, fmt.Errorf("%w: %T as %s", ErrImageType, img, f)
}

// Convert copies src into dst, converting pixels to the color model of dst.
// The images are aligned at their minimum points.
func Convert(dst Image, src image.Image) {
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
}
