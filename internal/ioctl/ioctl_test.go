package ioctl

import "testing"

func TestEncode(t *testing.T) {
	tests := []struct {
		command Command
		mode    Mode
		size    int
		want    string
	}{
		{Encode(None, 0, 0x4600), None, 0, "ioctl none (0 bytes) 0x4600"},
		{Encode(Read, 160, 0x4602), Read, 160, "ioctl read (160 bytes) 0x4602"},
		{Encode(Read|Write, 8, 0x12), Read | Write, 8, "ioctl read/write (8 bytes) 0x0012"},
		{Pointer[uint32](Write, 0x4601), Write, 4, "ioctl write (4 bytes) 0x4601"},
		{Pointer[[3]uint16](Read, 0x4605), Read, 6, "ioctl read (6 bytes) 0x4605"},
	}
	for _, test := range tests {
		if v := test.command.Mode(); v != test.mode {
			t.Errorf("%s: expected mode %s, got %s", test.want, test.mode, v)
		}
		if v := test.command.Size(); v != test.size {
			t.Errorf("%s: expected size %d, got %d", test.want, test.size, v)
		}
		if v := test.command.String(); v != test.want {
			t.Errorf("expected %q, got %q", test.want, v)
		}
	}
}

func TestEncodeLayout(t *testing.T) {
	// _IOR('F', 0x02, 160) from <asm-generic/ioctl.h>.
	if v := Encode(Read, 160, 0x4602); v != 0x80a04602 {
		t.Errorf("expected %#x, got %#x", uintptr(0x80a04602), uintptr(v))
	}
}
