package rgb

// AlphaPosition is the position of the alpha channel within a pixel.
type AlphaPosition uint8

// Alpha positions.
const (
	NoAlpha    AlphaPosition = iota // Pixel has no alpha channel
	AlphaLast                       // Alpha follows the color channels
	AlphaFirst                      // Alpha precedes the color channels
)

func (p AlphaPosition) String() string {
	switch p {
	case AlphaLast:
		return "last"
	case AlphaFirst:
		return "first"
	default:
		return "none"
	}
}

// Shape describes the channels of a pixel type.
type Shape struct {
	// Name of the channel ordering, such as "rgb" or "argb".
	Name string

	// Labels has one letter per channel, in declared order.
	Labels string

	// Colors is the number of color channels.
	Colors int

	// Alpha is the position of the alpha channel.
	Alpha AlphaPosition
}

// Shapes of the pixel types in this package.
var (
	ShapeRgb       = Shape{Name: "rgb", Labels: "RGB", Colors: 3}
	ShapeBgr       = Shape{Name: "bgr", Labels: "BGR", Colors: 3}
	ShapeGrb       = Shape{Name: "grb", Labels: "GRB", Colors: 3}
	ShapeRgba      = Shape{Name: "rgba", Labels: "RGBA", Colors: 3, Alpha: AlphaLast}
	ShapeBgra      = Shape{Name: "bgra", Labels: "BGRA", Colors: 3, Alpha: AlphaLast}
	ShapeArgb      = Shape{Name: "argb", Labels: "ARGB", Colors: 3, Alpha: AlphaFirst}
	ShapeAbgr      = Shape{Name: "abgr", Labels: "ABGR", Colors: 3, Alpha: AlphaFirst}
	ShapeGray      = Shape{Name: "gray", Labels: "Y", Colors: 1}
	ShapeGrayAlpha = Shape{Name: "graya", Labels: "YA", Colors: 1, Alpha: AlphaLast}
)

// Channels returns the total number of channels, alpha included.
func (s Shape) Channels() int {
	if s.Alpha == NoAlpha {
		return s.Colors
	}
	return s.Colors + 1
}

// HasAlpha reports whether the pixel has an alpha channel.
func (s Shape) HasAlpha() bool {
	return s.Alpha != NoAlpha
}

// AlphaIndex returns the flat index of the alpha channel, or -1.
func (s Shape) AlphaIndex() int {
	switch s.Alpha {
	case AlphaFirst:
		return 0
	case AlphaLast:
		return s.Colors
	default:
		return -1
	}
}

// ColorIndex returns the flat index of color channel i.
func (s Shape) ColorIndex(i int) int {
	if i < 0 || i >= s.Colors {
		panic(indexError(i, s.Colors))
	}
	if s.Alpha == AlphaFirst {
		return i + 1
	}
	return i
}

func (s Shape) String() string {
	return s.Name
}
