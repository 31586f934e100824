// Package pixel implements color models and images for the pixel types of package rgb.
//
// This package provides color models and images compatible with Go's native [color.Color] and
// [image.Image] / [draw.Image] interfaces, and a table of byte [Format]s used to move pixel
// data in and out of raw buffers such as framebuffer memory or files.
package pixel
