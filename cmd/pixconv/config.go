package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the defaults for all subcommand flags.
type Config struct {
	// Width and Height of raw images in pixels.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	Convert struct {
		// From and To are the pixel format names.
		From string `yaml:"from"`
		To   string `yaml:"to"`

		// Interpolator used when scaling, see draw.ParseInterpolator.
		Interpolator string `yaml:"interpolator"`

		// Rotate is applied after scaling, see draw.ParseRotation.
		Rotate string `yaml:"rotate"`
	} `yaml:"convert"`

	Pattern struct {
		Format string `yaml:"format"`

		// Label is drawn in the center of the pattern if not empty.
		Label     string  `yaml:"label"`
		LabelSize float64 `yaml:"labelSize"`
	} `yaml:"pattern"`

	Stats struct {
		Format string `yaml:"format"`
	} `yaml:"stats"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{
		Width:  320,
		Height: 240,
	}
	cfg.Convert.From = "rgb8"
	cfg.Convert.To = "bgra8"
	cfg.Convert.Interpolator = "approx"
	cfg.Pattern.Format = "rgba8"
	cfg.Pattern.LabelSize = 16
	cfg.Stats.Format = "rgb8"
	return cfg
}

// LoadConfig loads the configuration from a YAML file on top of the defaults.
// An empty path returns the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config file %s does not exist", path)
	} else if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

func configCommand(cfg *Config, args []string, stdout io.Writer) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: config takes no arguments", errUsage)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = stdout.Write(data)
	return err
}
