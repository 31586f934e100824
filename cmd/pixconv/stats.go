package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/BeatGlow/rgb"
	"github.com/BeatGlow/rgb/pixel"
)

var errEmptyImage = errors.New("image is empty")

func statsCommand(cfg *Config, args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("stats", flag.ContinueOnError)
	formatFlag := flags.String("format", cfg.Stats.Format, "Input pixel format")
	widthFlag := flags.Int("width", cfg.Width, "Input width")
	heightFlag := flags.Int("height", cfg.Height, "Input height")
	refFlag := flags.String("ref", "", "Reference image of the same format and size, to report PSNR and SSIM")
	flags.Usage = func() {
		fmt.Fprintln(flags.Output(), "Usage: pixconv stats [flags] <input>")
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
	img, err := readImage(flags.Arg(0), format, *widthFlag, *heightFlag)
	if err != nil {
		return err
	}
	channels, err := channelValues(img, format.Info().Shape)
	if err != nil {
		return err
	}

	var ref [][]float64
	if *refFlag != "" {
		refImg, err := readImage(*refFlag, format, *widthFlag, *heightFlag)
		if err != nil {
			return err
		}
		if ref, err = channelValues(refImg, format.Info().Shape); err != nil {
			return err
		}
	}

	w := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	header := "CHANNEL\tMEAN\tSTDDEV\tMIN\tMAX"
	if ref != nil {
		header += "\tPSNR\tSSIM"
	}
	fmt.Fprintln(w, header)
	for i, label := range format.Info().Shape.Labels {
		s := channelStatsOf(channels[i])
		fmt.Fprintf(w, "%c\t%.4f\t%.4f\t%.4f\t%.4f", label, s.Mean, s.StdDev, s.Min, s.Max)
		if ref != nil {
			fmt.Fprintf(w, "\t%.2f\t%.4f", psnr(ref[i], channels[i]), ssim(ref[i], channels[i]))
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

// channelStats are statistics of one channel, normalized to [0, 1].
type channelStats struct {
	Mean, StdDev float64
	Min, Max     float64
}

func channelStatsOf(values []float64) channelStats {
	mean, std := stat.PopMeanStdDev(values, nil)
	return channelStats{
		Mean:   mean,
		StdDev: std,
		Min:    floats.Min(values),
		Max:    floats.Max(values),
	}
}

// channelValues returns the values of each channel of shape in img,
// normalized to [0, 1]. Channels are in the order of shape.Labels.
func channelValues(img image.Image, shape rgb.Shape) ([][]float64, error) {
	r := img.Bounds()
	if r.Empty() {
		return nil, errEmptyImage
	}

	buf := pixel.NewBuffer(image.Rect(0, 0, r.Dx(), r.Dy()), pixel.RGBA16Model)
	pixel.Convert(buf, img)
	flat := rgb.Flatten[uint16](buf.Pix)

	channels := make([][]float64, len(shape.Labels))
	for i, label := range shape.Labels {
		index := strings.IndexRune("RGBA", label)
		if label == 'Y' {
			// Gray converts to equal red, green and blue.
			index = 0
		}
		if index < 0 {
			return nil, fmt.Errorf("unknown channel %q in shape %s", label, shape)
		}
		values := make([]float64, len(buf.Pix))
		for j := range values {
			values[j] = float64(flat[j*4+index]) / 0xffff
		}
		channels[i] = values
	}
	return channels, nil
}

// psnr returns the peak signal to noise ratio of b against a in dB.
func psnr(a, b []float64) float64 {
	d := floats.Distance(a, b, 2)
	mse := d * d / float64(len(a))
	if mse == 0 {
		return math.Inf(1)
	}
	return 10 * math.Log10(1/mse)
}

// ssim returns the structural similarity index of b against a, computed
// over the whole channel.
func ssim(a, b []float64) float64 {
	const (
		k1 = 0.01
		k2 = 0.03
	)
	c1 := k1 * k1
	c2 := k2 * k2

	muA, muB := stat.Mean(a, nil), stat.Mean(b, nil)
	varA, varB := stat.Variance(a, nil), stat.Variance(b, nil)
	cov := stat.Covariance(a, b, nil)

	num := (2*muA*muB + c1) * (2*cov + c2)
	den := (muA*muA + muB*muB + c1) * (varA + varB + c2)
	if den > 0 {
		return num / den
	}
	return 0
}
