package rgb

// Common instantiations. Multi-byte components are in native byte order.
type (
	RGB8    = Rgb[uint8]
	RGB16   = Rgb[uint16]
	BGR8    = Bgr[uint8]
	BGR16   = Bgr[uint16]
	GRB8    = Grb[uint8]
	RGBA8   = Rgba[uint8, uint8]
	RGBA16  = Rgba[uint16, uint16]
	BGRA8   = Bgra[uint8, uint8]
	BGRA16  = Bgra[uint16, uint16]
	ARGB8   = Argb[uint8, uint8] // Alpha first. 0 is transparent, 255 opaque.
	ABGR8   = Abgr[uint8, uint8] // Alpha first. 0 is transparent, 255 opaque.
	ARGB16  = Argb[uint16, uint16]
	ABGR16  = Abgr[uint16, uint16]
	GRAY8   = Gray[uint8]
	GRAY16  = Gray[uint16]
	GRAYA8  = GrayAlpha[uint8, uint8]
	GRAYA16 = GrayAlpha[uint16, uint16]
)
