package draw

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

var (
	regularOnce sync.Once
	regular     *truetype.Font
	regularErr  error
)

func regularFont() (*truetype.Font, error) {
	regularOnce.Do(func() {
		regular, regularErr = freetype.ParseFont(goregular.TTF)
	})
	return regular, regularErr
}

// Label draws text in the Go regular font with its baseline starting at pt.
// Size is the font size in pixels. It returns the point where the text ends.
func Label(dst Image, pt image.Point, text string, size float64, c color.Color) (image.Point, error) {
	f, err := regularFont()
	if err != nil {
		return pt, fmt.Errorf("draw: parse font: %w", err)
	}

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(f)
	ctx.SetFontSize(size)
	ctx.SetHinting(font.HintingFull)
	ctx.SetClip(dst.Bounds())
	ctx.SetDst(dst)
	ctx.SetSrc(image.NewUniform(c))

	end, err := ctx.DrawString(text, freetype.Pt(pt.X, pt.Y))
	if err != nil {
		return pt, fmt.Errorf("draw: label %q: %w", text, err)
	}
	return image.Pt(end.X.Round(), end.Y.Round()), nil
}

// LabelWidth returns the advance width of text in pixels, for the same font
// as [Label].
func LabelWidth(text string, size float64) (int, error) {
	f, err := regularFont()
	if err != nil {
		return 0, fmt.Errorf("draw: parse font: %w", err)
	}

	face := truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull})
	defer face.Close()

	var width fixed.Int26_6
	prev := rune(-1)
	for _, r := range text {
		if prev >= 0 {
			width += face.Kern(prev, r)
		}
		advance, ok := face.GlyphAdvance(r)
		if !ok {
			continue
		}
		width += advance
		prev = r
	}
	return width.Round(), nil
}
