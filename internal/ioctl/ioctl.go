// Package ioctl encodes and performs ioctl system calls.
package ioctl

import (
	"fmt"
	"unsafe"
)

// Mode is the IOCTL mode.
type Mode uint8

// Modes
const (
	None Mode = iota
	Write
	Read
)

func (m Mode) String() string {
	switch m & (Read | Write) {
	case Write:
		return "write"
	case Read:
		return "read"
	case Read | Write:
		return "read/write"
	default:
		return "none"
	}
}

// Command to be sent over ioctl.
type Command uintptr

// Mode of the command.
func (c Command) Mode() Mode {
	return Mode(c >> 30 & 0x03)
}

// Size of the argument in bytes.
func (c Command) Size() int {
	return int(c >> 16 & 0x3fff)
}

func (c Command) String() string {
	return fmt.Sprintf("ioctl %s (%d bytes) %#04x", c.Mode(), c.Size(), uintptr(c&0xffff))
}

// Encode an ioctl command.
func Encode(mode Mode, size uint16, cmd uintptr) Command {
	return Command(mode)<<30 | Command(size&0x3fff)<<16 | Command(cmd&0xffff)
}

// Pointer encodes a command that passes a pointer to a T.
func Pointer[T any](mode Mode, cmd uintptr) Command {
	var v T
	return Encode(mode, uint16(unsafe.Sizeof(v)), cmd)
}
