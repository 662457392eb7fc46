// Package sampler provides pure per-pixel texture samplers.
//
// Every sampler is a stateless function of pixel position and canvas size,
// so the same coordinates always yield the same color and whole images can
// be regenerated byte-for-byte.
package sampler

import (
	"image"
	"math"
)

// Func maps a pixel position on a width×height canvas to an RGB color.
// Channel values are real-valued and may fall outside [0,255]; they are
// clamped by the consumer (see ClampByte).
type Func func(x, y, width, height int) (r, g, b float64)

// ClampByte converts a real-valued channel to a stored byte: truncate toward
// zero, then clamp to [0,255]. NaN maps to 0, ±Inf to the nearest bound.
func ClampByte(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(int(v))
}

// FromImage adapts an in-memory image to the sampler contract, so composed
// images can flow through the same encoder as procedural ones. Positions are
// taken relative to the image's bounds origin.
func FromImage(img image.Image) Func {
	origin := img.Bounds().Min
	return func(x, y, width, height int) (float64, float64, float64) {
		r, g, b, _ := img.At(origin.X+x, origin.Y+y).RGBA()
		return float64(r >> 8), float64(g >> 8), float64(b >> 8)
	}
}
