package rgb

import "testing"

func TestConvertSlice(t *testing.T) {
	src := []RGB8{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	dst := make([]BGRA8, 2)
	if n := ConvertSlice(dst, src, func(p RGB8) BGRA8 { return p.ToBgr().WithAlpha(255) }); n != 2 {
		t.Fatalf("expected 2 pixels converted, got %d", n)
	}
	if dst[1] != NewBgra[uint8, uint8](6, 5, 4, 255) {
		t.Errorf("expected bgra(6,5,4,255), got %s", dst[1])
	}

	gray := []GRAY8{{10}, {20}}
	rgba := make([]RGBA16, 2)
	ConvertSlice(rgba, gray, func(g GRAY8) RGBA16 {
		return GrayToRgba[uint16](MapGray(g, func(y uint8) uint16 { return uint16(y) << 8 }))
	})
	if rgba[1] != NewRgba[uint16, uint16](20<<8, 20<<8, 20<<8, 0xffff) {
		t.Errorf("expected rgba(5120,5120,5120,65535), got %s", rgba[1])
	}
}
