//go:build linux

package ioctl

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Do executes the ioctl call with a pointer to v as its argument. Commands
// that encode an argument size must match the size of T.
func Do[T any](fd uintptr, command Command, v *T) error {
	if size := command.Size(); size != 0 && size != int(unsafe.Sizeof(*v)) {
		return fmt.Errorf("%s: argument %T is %d bytes", command, *v, unsafe.Sizeof(*v))
	}
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, uintptr(command), uintptr(unsafe.Pointer(v)))
	if errno != 0 {
		return fmt.Errorf("%s failed: %w", command, errno)
	}
	return nil
}
