// Package raster implements the pixel-level routines behind the public
// draw operations: anti-aliased line segments, rectangle borders and
// fills, and ellipse borders and fills.
//
// Every routine writes into a Target whose coordinates the caller has
// already validated. Apart from the blended fringe of Line, routines
// write whole pixels and never read the buffer back.
package raster

// Target is an RGB pixel grid with 8 bits per channel and the origin
// at the bottom-left corner. Pix holds 3 bytes per pixel, row-major
// with the top row first, so increasing y walks toward the start of
// the slice.
type Target struct {
	Pix    []uint8
	Width  int
	Height int
}

// PixOffset returns the byte index of the first channel of (x, y).
func (t Target) PixOffset(x, y int) int {
	return (t.Width*(t.Height-1-y) + x) * 3
}

// set writes c at byte index i.
func (t Target) set(i int, c [3]uint8) {
	t.Pix[i] = c[0]
	t.Pix[i+1] = c[1]
	t.Pix[i+2] = c[2]
}

// fillRun paints the horizontal run y, x in [x1, x2], with c.
// The run is empty when x1 > x2.
func (t Target) fillRun(x1, x2, y int, c [3]uint8) {
	if x1 > x2 {
		return
	}
	start := t.PixOffset(x1, y)
	run := t.Pix[start : t.PixOffset(x2, y)+3]
	run[0], run[1], run[2] = c[0], c[1], c[2]
	for n := 3; n < len(run); n *= 2 {
		copy(run[n:], run[:n])
	}
}
