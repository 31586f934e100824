// Package rgb implements generic pixel value types.
//
// The package provides small fixed-layout pixel structs in several channel
// orderings ([Rgb], [Bgr], [Grb], [Rgba], [Bgra], [Argb], [Abgr]) and grayscale
// pixels ([Gray], [GrayAlpha]), parameterized over their component type.
//
// Every pixel type implements [HetPixel], which allows the color channels and
// the alpha channel to have different component types. Pixels whose alpha
// channel (if any) shares the color component type also satisfy [HomPixel],
// and can be viewed as a flat slice of their components without copying:
//
//	px := rgb.NewRgb[uint8](255, 0, 100)
//	c := rgb.Components[uint8](&px) // []uint8{255, 0, 100}, aliases px
//
//	row := []rgb.Rgb[uint8]{{1, 2, 3}, {4, 5, 6}}
//	b := rgb.Bytes[uint8](row) // []byte{1, 2, 3, 4, 5, 6}
//
// The declared field order of each pixel struct is its channel order and is
// part of the public layout. Reordering fields is a breaking change.
//
// Every pixel type is also a [color.Color]. Color models and images built on
// these types live in the pixel subpackage.
package rgb
