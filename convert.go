package rgb

// GrayOpaque returns g with a fully opaque alpha channel of type A.
//
// The source is assumed to be opaque: alpha is [Opaque], 255 for uint8 and
// 65535 for uint16.
func GrayOpaque[A, T Component](g Gray[T]) GrayAlpha[T, A] {
	return GrayAlpha[T, A]{Y: g.Y, A: Opaque[A]()}
}

// GrayToRgba returns g broadcast to all three color channels with a fully
// opaque alpha channel of type A.
func GrayToRgba[A, T Component](g Gray[T]) Rgba[T, A] {
	return Rgba[T, A]{R: g.Y, G: g.Y, B: g.Y, A: Opaque[A]()}
}

// ConvertSlice stores f(src[i]) in dst[i] and returns the number of pixels
// converted, which is the shorter of both lengths.
func ConvertSlice[S, D any](dst []D, src []S, f func(S) D) int {
	n := min(len(dst), len(src))
	for i, p := range src[:n] {
		dst[i] = f(p)
	}
	return n
}
