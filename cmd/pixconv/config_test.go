package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 320 || cfg.Height != 240 {
		t.Errorf("expected default size 320x240, got %dx%d", cfg.Width, cfg.Height)
	}

	path := writeFile(t, "pixconv.yaml", []byte(`
width: 64
convert:
  to: rgb565
pattern:
  label: hello
  labelSize: 9.5
`))
	if cfg, err = LoadConfig(path); err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 64 {
		t.Errorf("expected width 64, got %d", cfg.Width)
	}
	if cfg.Height != 240 {
		t.Errorf("expected default height 240, got %d", cfg.Height)
	}
	if cfg.Convert.To != "rgb565" {
		t.Errorf("expected convert.to rgb565, got %q", cfg.Convert.To)
	}
	if cfg.Convert.From != "rgb8" {
		t.Errorf("expected default convert.from rgb8, got %q", cfg.Convert.From)
	}
	if cfg.Pattern.Label != "hello" || cfg.Pattern.LabelSize != 9.5 {
		t.Errorf("expected label hello at 9.5, got %q at %g", cfg.Pattern.Label, cfg.Pattern.LabelSize)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	path := writeFile(t, "bad.yaml", []byte("width: [1, 2"))
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestConfigCommand(t *testing.T) {
	path := writeFile(t, "pixconv.yaml", []byte("height: 16\nstats:\n  format: gray16\n"))

	var stdout bytes.Buffer
	if err := run([]string{"-config", path, "config"}, &stdout); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"width: 320", "height: 16", "format: gray16", "interpolator: approx"} {
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("expected %q in output, got:\n%s", want, stdout.String())
		}
	}
}

func TestConfigDefaults(t *testing.T) {
	in := writeFile(t, "in.raw", []byte{1, 2, 3, 4})
	path := writeFile(t, "pixconv.yaml", []byte("width: 2\nheight: 1\nstats:\n  format: graya8\n"))

	var stdout bytes.Buffer
	if err := run([]string{"-config", path, "stats", in}, &stdout); err != nil {
		t.Fatal(err)
	}
	if lines := strings.Split(strings.TrimSpace(stdout.String()), "\n"); len(lines) != 3 {
		t.Errorf("expected header and two channels for graya8, got %q", stdout.String())
	}
}
