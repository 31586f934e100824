// Package framebuffer provides access to the operating system's native framebuffer
//
// This requires framebuffer device support in the operating system. The framebuffer
// can be opened with the [Open] call, and will otherwise function like a regular
// periph.io display. [NewMemory] returns a framebuffer backed by ordinary memory.
package framebuffer

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"periph.io/x/conn/v3/display"

	"github.com/BeatGlow/rgb"
	"github.com/BeatGlow/rgb/draw"
	"github.com/BeatGlow/rgb/pixel"
)

// Errors
var (
	ErrNotSupported      = errors.New("framebuffer: not supported")
	ErrUnsupportedFormat = errors.New("framebuffer: unsupported pixel format")
	ErrClosed            = errors.New("framebuffer: closed")
)

// BitField is the position of a color channel within a pixel.
type BitField struct {
	Offset   uint32 // Beginning of bitfield
	Length   uint32 // Length of bitfield
	MsbRight uint32 // != 0 : Most significant bit is right
}

// Layout is the pixel layout reported by a framebuffer device.
type Layout struct {
	BitsPerPixel            uint32
	Grayscale               uint32
	Red, Green, Blue, Alpha BitField
}

func (f BitField) is(offset, length uint32) bool {
	return f.Offset == offset && f.Length == length && f.MsbRight == 0
}

// DetectFormat returns the pixel format matching l. Offsets are relative to
// a little endian pixel word, as on every platform Linux framebuffers are
// commonly found on.
//
// A 32 bpp layout without an alpha channel maps to the format with an alpha
// byte in its place. Reading such a framebuffer returns whatever the device
// stores there.
func DetectFormat(l Layout) (pixel.Format, error) {
	var (
		r, g, b = l.Red, l.Green, l.Blue
		a       = l.Alpha
	)
	switch l.BitsPerPixel {
	case 8:
		if l.Grayscale != 0 {
			return pixel.FormatGray8, nil
		}

	case 16:
		switch {
		case l.Grayscale != 0:
			return pixel.FormatGray16, nil
		case r.is(11, 5) && g.is(5, 6) && b.is(0, 5) && a.Length == 0:
			return pixel.FormatRGB565, nil
		}

	case 24:
		switch {
		case r.is(16, 8) && g.is(8, 8) && b.is(0, 8):
			return pixel.FormatBGR8, nil
		case r.is(0, 8) && g.is(8, 8) && b.is(16, 8):
			return pixel.FormatRGB8, nil
		}

	case 32:
		switch {
		case r.is(16, 8) && g.is(8, 8) && b.is(0, 8) && (a.Length == 0 || a.is(24, 8)):
			return pixel.FormatBGRA8, nil
		case r.is(0, 8) && g.is(8, 8) && b.is(16, 8) && (a.Length == 0 || a.is(24, 8)):
			return pixel.FormatRGBA8, nil
		case r.is(8, 8) && g.is(16, 8) && b.is(24, 8) && (a.Length == 0 || a.is(0, 8)):
			return pixel.FormatARGB8, nil
		}
	}

	return 0, fmt.Errorf("%w: %d bpp, red %d/%d, green %d/%d, blue %d/%d, alpha %d/%d", ErrUnsupportedFormat,
		l.BitsPerPixel, r.Offset, r.Length, g.Offset, g.Length, b.Offset, b.Length, a.Offset, a.Length)
}

// View returns a w×h image of format f on mem, where each row of pixels
// starts lineLength bytes after the previous one.
func View(mem []byte, f pixel.Format, w, h, lineLength int) (pixel.Image, error) {
	bpp := f.BytesPerPixel()
	if bpp == 0 {
		return nil, pixel.ErrUnknownFormat
	}
	if lineLength < w*bpp || lineLength%bpp != 0 {
		return nil, fmt.Errorf("framebuffer: line length %d does not hold %d %s pixels", lineLength, w, f)
	}
	stride := lineLength / bpp
	img, err := f.FromBytes(mem, stride, h)
	if err != nil {
		return nil, err
	}
	if stride == w {
		return img, nil
	}
	sub, ok := img.(interface {
		SubImage(image.Rectangle) image.Image
	})
	if !ok {
		return nil, fmt.Errorf("framebuffer: %T has no sub images", img)
	}
	return sub.SubImage(image.Rect(0, 0, w, h)).(pixel.Image), nil
}

// Framebuffer is a display backed by framebuffer memory.
type Framebuffer struct {
	name     string
	format   pixel.Format
	img      pixel.Image
	rotation draw.Rotation
	unmap    func() error
}

func newFramebuffer(name string, format pixel.Format, img pixel.Image, unmap func() error) *Framebuffer {
	rgb.Logger().Info("framebuffer: open", "name", name, "size", img.Bounds().Size(), "format", format)
	return &Framebuffer{
		name:   name,
		format: format,
		img:    img,
		unmap:  unmap,
	}
}

// NewMemory returns a w×h framebuffer of format f backed by memory.
func NewMemory(w, h int, f pixel.Format) (*Framebuffer, error) {
	img, err := f.NewImage(w, h)
	if err != nil {
		return nil, err
	}
	return newFramebuffer("memory", f, img, nil), nil
}

func (fb *Framebuffer) String() string {
	size := fb.Bounds().Size()
	if fb.rotation != draw.NoRotation {
		return fmt.Sprintf("framebuffer(%s, %dx%d %s, %s)", fb.name, size.X, size.Y, fb.format, fb.rotation)
	}
	return fmt.Sprintf("framebuffer(%s, %dx%d %s)", fb.name, size.X, size.Y, fb.format)
}

// SetRotation sets the rotation applied by Draw. Bounds reports the rotated size.
func (fb *Framebuffer) SetRotation(r draw.Rotation) {
	fb.rotation = r % 4
}

// Rotation returns the rotation applied by Draw.
func (fb *Framebuffer) Rotation() draw.Rotation {
	return fb.rotation
}

// Halt clears the framebuffer.
func (fb *Framebuffer) Halt() error {
	if fb.img == nil {
		return ErrClosed
	}
	fb.img.Clear()
	return nil
}

// ColorModel returns the color model of the framebuffer pixel format.
func (fb *Framebuffer) ColorModel() color.Model {
	return fb.format.Info().Model
}

// Bounds returns the visible size of the framebuffer, after rotation.
func (fb *Framebuffer) Bounds() image.Rectangle {
	if fb.img == nil {
		return image.Rectangle{}
	}
	if fb.rotation == draw.NoRotation {
		return fb.img.Bounds()
	}
	return image.Rectangle{Max: draw.RotatedSize(fb.img.Bounds().Size(), fb.rotation)}
}

// Draw copies src to the framebuffer, with sp in src aligned to r.Min.
func (fb *Framebuffer) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	if fb.img == nil {
		return ErrClosed
	}
	if fb.rotation == draw.NoRotation {
		draw.Draw(fb.img, r, src, sp, draw.Src)
		return nil
	}

	var (
		size   = fb.Bounds().Size()
		clip   = r.Intersect(image.Rectangle{Max: size})
		origin = fb.img.Bounds().Min
	)
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		for x := clip.Min.X; x < clip.Max.X; x++ {
			c := src.At(sp.X+x-r.Min.X, sp.Y+y-r.Min.Y)
			q := draw.RotatePoint(image.Pt(x, y), size, fb.rotation).Add(origin)
			fb.img.Set(q.X, q.Y, c)
		}
	}
	return nil
}

// Image returns the framebuffer memory as an image. Writes are visible immediately.
func (fb *Framebuffer) Image() pixel.Image {
	return fb.img
}

// Format returns the pixel format of the framebuffer.
func (fb *Framebuffer) Format() pixel.Format {
	return fb.format
}

// Close releases the framebuffer. The image must not be used afterwards.
func (fb *Framebuffer) Close() error {
	if fb.img == nil {
		return ErrClosed
	}
	fb.img = nil
	rgb.Logger().Info("framebuffer: close", "name", fb.name)
	if fb.unmap != nil {
		return fb.unmap()
	}
	return nil
}

var _ display.Drawer = (*Framebuffer)(nil)
