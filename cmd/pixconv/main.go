// Command pixconv converts, generates and inspects raw pixel buffers.
//
// Usage:
//
//	pixconv [-config file] [-v] <command> [flags] args...
//
// Commands are convert, pattern, stats and config. Raw buffers hold rows of
// pixels without any header, in one of the formats listed by "pixconv formats".
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/BeatGlow/rgb"
	"github.com/BeatGlow/rgb/pixel"
)

var errUsage = errors.New("usage error")

type command func(cfg *Config, args []string, stdout io.Writer) error

var commands = map[string]command{
	"config":  configCommand,
	"convert": convertCommand,
	"formats": formatsCommand,
	"pattern": patternCommand,
	"stats":   statsCommand,
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("pixconv", flag.ContinueOnError)
	configFlag := flags.String("config", "", "YAML file with flag defaults")
	verboseFlag := flags.Bool("v", os.Getenv("PIXEL_DEBUG") != "", "Enable debug logging (or set PIXEL_DEBUG)")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: pixconv [flags] <%s> [args]\n", strings.Join(commandNames(), "|"))
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *verboseFlag {
		rgb.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer rgb.SetLogger(nil)
	}

	if flags.NArg() == 0 {
		flags.Usage()
		return errUsage
	}

	cfg, err := LoadConfig(*configFlag)
	if err != nil {
		return err
	}

	name := flags.Arg(0)
	cmd, ok := commands[name]
	if !ok {
		flags.Usage()
		return fmt.Errorf("%w: unknown command %q", errUsage, name)
	}
	return cmd(cfg, flags.Args()[1:], stdout)
}

func commandNames() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// parseSize parses a size such as "320x240".
func parseSize(s string) (image.Point, error) {
	var size image.Point
	if _, err := fmt.Sscanf(strings.ToLower(s), "%dx%d", &size.X, &size.Y); err != nil {
		return size, fmt.Errorf("invalid size %q: %w", s, err)
	}
	if size.X <= 0 || size.Y <= 0 {
		return size, fmt.Errorf("invalid size %q", s)
	}
	return size, nil
}

// readImage reads a raw w×h image of format f from path.
func readImage(path string, f pixel.Format, w, h int) (pixel.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return f.FromBytes(data, w, h)
}

// writeImage writes img to path as raw pixels of format f.
func writeImage(path string, f pixel.Format, img image.Image) error {
	data, err := f.Bytes(img)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal:", err)
	os.Exit(1)
}
