package ioctl

import (
	"errors"
	"os"
	"testing"

	"golang.org/x/sys/unix"
)

func TestDoSizeMismatch(t *testing.T) {
	var v uint16
	if err := Do(0, Pointer[uint32](Read, 0x4600), &v); err == nil {
		t.Error("expected error for argument size mismatch")
	}
}

func TestDoNotTTY(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "ioctl")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var v [160]byte
	err = Do(f.Fd(), 0x4602, &v)
	if !errors.Is(err, unix.ENOTTY) {
		t.Errorf("expected %v for a regular file, got %v", unix.ENOTTY, err)
	}
}
