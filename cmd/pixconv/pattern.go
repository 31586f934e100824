package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/BeatGlow/rgb"
	"github.com/BeatGlow/rgb/draw"
	"github.com/BeatGlow/rgb/pixel"
)

func patternCommand(cfg *Config, args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("pattern", flag.ContinueOnError)
	formatFlag := flags.String("format", cfg.Pattern.Format, "Output pixel format")
	widthFlag := flags.Int("width", cfg.Width, "Output width")
	heightFlag := flags.Int("height", cfg.Height, "Output height")
	labelFlag := flags.String("label", cfg.Pattern.Label, "Text to draw in the center")
	labelSizeFlag := flags.Float64("label-size", cfg.Pattern.LabelSize, "Label font size in pixels")
	flags.Usage = func() {
		fmt.Fprintln(flags.Output(), "Usage: pixconv pattern [flags] <output>")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return errUsage
	}

	format, err := pixel.ParseFormat(*formatFlag)
	if err != nil {
		return err
	}
	if *widthFlag <= 0 || *heightFlag <= 0 {
		return fmt.Errorf("invalid size %dx%d", *widthFlag, *heightFlag)
	}

	canvas := pixel.NewBuffer(image.Rect(0, 0, *widthFlag, *heightFlag), pixel.RGBA16Model)
	if err = drawPattern(canvas, *labelFlag, *labelSizeFlag); err != nil {
		return err
	}
	if err = writeImage(flags.Arg(0), format, canvas); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s: %s %s\n", flags.Arg(0), sizeString(canvas.Bounds()), format)
	return nil
}

var (
	patternRed   = rgb.NewRgba[uint16, uint16](0xffff, 0, 0, 0xffff)
	patternBlue  = rgb.NewRgba[uint16, uint16](0, 0, 0xffff, 0xffff)
	patternBlack = rgb.NewRgba[uint16, uint16](0, 0, 0, 0xffff)
	patternWhite = rgb.NewRgba[uint16, uint16](0xffff, 0xffff, 0xffff, 0xffff)
	patternGreen = rgb.NewRgba[uint16, uint16](0, 0xffff, 0, 0xffff)
)

// drawPattern draws a red to blue gradient over the top half of b, a gray
// ramp over the bottom half, a white border and a green diagonal. The label
// is centered if not empty.
func drawPattern(b *pixel.Buffer[rgb.RGBA16], label string, size float64) error {
	r := b.Bounds()
	top := image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+r.Dy()/2)
	bottom := image.Rect(r.Min.X, top.Max.Y, r.Max.X, r.Max.Y)

	draw.Gradient[uint16, rgb.RGBA16](b, top, patternRed, patternBlue)
	draw.Gradient[uint16, rgb.RGBA16](b, bottom, patternBlack, patternWhite)
	draw.Rectangle[rgb.RGBA16](b, r, patternWhite)
	draw.Line[rgb.RGBA16](b, r.Min, r.Max.Sub(image.Pt(1, 1)), patternGreen)

	if label == "" {
		return nil
	}
	width, err := draw.LabelWidth(label, size)
	if err != nil {
		return err
	}
	pt := image.Pt(r.Min.X+(r.Dx()-width)/2, r.Min.Y+(r.Dy()+int(size*0.7))/2)
	_, err = draw.Label(b, pt, label, size, color.White)
	return err
}
