package framebuffer

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/BeatGlow/rgb"
	"github.com/BeatGlow/rgb/internal/ioctl"
)

const (
	// From <linux/fb.h>
	fbioGetVScreenInfo ioctl.Command = 0x4600
	fbioGetFScreenInfo ioctl.Command = 0x4602
)

// Open a Linux FrameBuffer device (fbdev) by name, typically /dev/fb[0..x].
func Open(name string) (*Framebuffer, error) {
	f, err := os.OpenFile(name, os.O_RDWR, os.ModeDevice)
	if err != nil {
		return nil, err
	}
	// The mapping stays valid after the file is closed.
	defer func() { _ = f.Close() }()

	var (
		fd    = f.Fd()
		info  fixScreenInfo
		vinfo varScreenInfo
	)
	if err = ioctl.Do(fd, fbioGetFScreenInfo, &info); err != nil {
		return nil, err
	}
	if err = ioctl.Do(fd, fbioGetVScreenInfo, &vinfo); err != nil {
		return nil, err
	}

	format, err := DetectFormat(vinfo.layout())
	if err != nil {
		return nil, err
	}
	rgb.Logger().Debug("framebuffer: detected format", "name", name, "format", format,
		"bpp", vinfo.BitsPerPixel, "line", info.LineLength, "visible", fmt.Sprintf("%dx%d", vinfo.Xres, vinfo.Yres))

	// Map pixel buffer.
	mem, err := unix.Mmap(int(fd), 0, int(info.SmemLen), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, &os.PathError{Op: "mmap", Path: name, Err: err}
	}

	// Skip to the visible part of the virtual screen.
	offset := int(vinfo.Yoffset)*int(info.LineLength) + int(vinfo.Xoffset)*format.BytesPerPixel()
	if offset > len(mem) {
		_ = unix.Munmap(mem)
		return nil, fmt.Errorf("framebuffer: %s: offset %d out of memory", name, offset)
	}

	img, err := View(mem[offset:], format, int(vinfo.Xres), int(vinfo.Yres), int(info.LineLength))
	if err != nil {
		_ = unix.Munmap(mem)
		return nil, err
	}

	return newFramebuffer(name, format, img, func() error {
		return unix.Munmap(mem)
	}), nil
}

type fixScreenInfo struct {
	ID           [16]byte  // Identification string eg "TT Builtin"
	SmemStart    uintptr   // Start of frame buffer mem
	SmemLen      uint32    // Length of frame buffer mem
	Type         uint32    // FB_TYPE_
	TypeAux      uint32    // Interleave for interleaved Planes
	Visual       uint32    // FB_VISUAL_
	Xpanstep     uint16    // Zero if no hardware panning
	Ypanstep     uint16    // Zero if no hardware panning
	Ywrapstep    uint16    // Zero if no hardware ywrap
	LineLength   uint32    // Length of a line in bytes
	MmioStart    uintptr   // Start of Memory Mapped I/O (physical address)
	MmioLen      uint32    // Length of Memory Mapped I/O
	Accel        uint32    // Type of acceleration available
	Capabilities uint16    // See FB_CAP_*
	Reserved     [2]uint16 // Reserved for future compatibility
}

// varScreenInfo contains device independent changeable information about a frame buffer device and a specific video mode.
type varScreenInfo struct {
	Xres                    uint32
	Yres                    uint32
	XresVirtual             uint32
	YresVirtual             uint32
	Xoffset                 uint32
	Yoffset                 uint32
	BitsPerPixel            uint32
	Grayscale               uint32
	Red, Green, Blue, Alpha BitField
	Nonstd                  uint32
	Activate                uint32
	Height                  uint32
	Width                   uint32
	AccelFlags              uint32
	Pixclock                uint32
	LeftMargin              uint32
	RightMargin             uint32
	UpperMargin             uint32
	LowerMargin             uint32
	HsyncLen                uint32
	VsyncLen                uint32
	Sync                    uint32
	Vmode                   uint32
	Rotate                  uint32
	Colorspace              uint32
	Reserved                [4]uint32
}

func (info *varScreenInfo) layout() Layout {
	return Layout{
		BitsPerPixel: info.BitsPerPixel,
		Grayscale:    info.Grayscale,
		Red:          info.Red,
		Green:        info.Green,
		Blue:         info.Blue,
		Alpha:        info.Alpha,
	}
}
