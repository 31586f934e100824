package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"text/tabwriter"

	"github.com/BeatGlow/rgb"
	"github.com/BeatGlow/rgb/draw"
	"github.com/BeatGlow/rgb/pixel"
)

func convertCommand(cfg *Config, args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("convert", flag.ContinueOnError)
	fromFlag := flags.String("from", cfg.Convert.From, "Input pixel format")
	toFlag := flags.String("to", cfg.Convert.To, "Output pixel format")
	widthFlag := flags.Int("width", cfg.Width, "Input width")
	heightFlag := flags.Int("height", cfg.Height, "Input height")
	scaleFlag := flags.String("scale", "", "Output size as WxH (default: input size)")
	interpFlag := flags.String("interp", cfg.Convert.Interpolator, "Scaling interpolator: nearest, approx, bilinear or catmullrom")
	rotateFlag := flags.String("rotate", cfg.Convert.Rotate, "Rotation: 0, 90 (cw), 180 (flip) or 270 (ccw)")
	flags.Usage = func() {
		fmt.Fprintln(flags.Output(), "Usage: pixconv convert [flags] <input> <output>")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 2 {
		flags.Usage()
		return errUsage
	}

	from, err := pixel.ParseFormat(*fromFlag)
	if err != nil {
		return err
	}
	to, err := pixel.ParseFormat(*toFlag)
	if err != nil {
		return err
	}
	interp, ok := draw.ParseInterpolator(*interpFlag)
	if !ok {
		return fmt.Errorf("unknown interpolator %q", *interpFlag)
	}
	rotation, err := draw.ParseRotation(*rotateFlag)
	if err != nil {
		return err
	}

	src, err := readImage(flags.Arg(0), from, *widthFlag, *heightFlag)
	if err != nil {
		return err
	}

	size := src.Bounds().Size()
	if *scaleFlag != "" {
		if size, err = parseSize(*scaleFlag); err != nil {
			return err
		}
	}

	dst, err := to.NewImage(size.X, size.Y)
	if err != nil {
		return err
	}
	if size == src.Bounds().Size() {
		pixel.Convert(dst, src)
	} else {
		rgb.Logger().Debug("pixconv: scaling", "from", src.Bounds().Size(), "to", size, "interp", *interpFlag)
		draw.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, interp)
	}
	if rotation != draw.NoRotation {
		rsize := draw.RotatedSize(size, rotation)
		rotated, err := to.NewImage(rsize.X, rsize.Y)
		if err != nil {
			return err
		}
		draw.Rotate(rotated, image.Point{}, dst, rotation)
		dst = rotated
	}

	if err = writeImage(flags.Arg(1), to, dst); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s: %s %s -> %s: %s %s\n",
		flags.Arg(0), sizeString(src.Bounds()), from,
		flags.Arg(1), sizeString(dst.Bounds()), to)
	return nil
}

func formatsCommand(_ *Config, args []string, stdout io.Writer) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: formats takes no arguments", errUsage)
	}
	w := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSHAPE\tBYTES\tBITS\tALPHA")
	for _, f := range pixel.Formats() {
		info := f.Info()
		bits := "packed"
		if info.BitsPerChannel > 0 {
			bits = fmt.Sprint(info.BitsPerChannel)
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%t\n", info.Name, info.Shape, info.BytesPerPixel, bits, f.HasAlpha())
	}
	return w.Flush()
}

func sizeString(r image.Rectangle) string {
	return fmt.Sprintf("%dx%d", r.Dx(), r.Dy())
}
