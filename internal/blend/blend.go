// Package blend implements channel-level color mixing for the
// rasterizer.
//
// All mixing is plain linear interpolation in the 8-bit channel space
// with a float64 coverage weight. There is no alpha channel and no
// premultiplication: the weight says how much of the incoming color
// replaces what is already in the buffer.
package blend

import "math"

// Channel mixes a single 8-bit channel toward src by weight t in
// [0, 1]. The result is rounded half away from zero, so white over
// black at t=0.5 gives 128, not 127.
func Channel(dst, src uint8, t float64) uint8 {
	return uint8(math.Round(float64(dst)*(1-t) + float64(src)*t))
}

// Pixel mixes the 3-byte RGB pixel at the start of dst toward src by
// weight t in [0, 1].
func Pixel(dst []uint8, src [3]uint8, t float64) {
	dst[0] = Channel(dst[0], src[0], t)
	dst[1] = Channel(dst[1], src[1], t)
	dst[2] = Channel(dst[2], src[2], t)
}
