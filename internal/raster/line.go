package raster

import (
	"math"

	"github.com/pixkit/pix/internal/blend"
)

// snapEps is the distance from an exact pixel center below which the
// line rasterizer writes one solid pixel instead of a blended pair.
const snapEps = 0.00001

// Line draws an anti-aliased segment from (x1, y1) to (x2, y2),
// splitting coverage Xiaolin Wu style between the two pixels that
// straddle the ideal segment. Both endpoints must be in bounds.
//
// Iteration runs ascending along the major axis: a vertical segment
// with y1 > y2, a shallow one with x1 > x2, or a steep one with
// y1 > y2 draws nothing. Callers wanting orientation-independent
// segments must order the endpoints themselves.
func Line(t Target, x1, y1, x2, y2 int, c [3]uint8) {
	if x1 == x2 {
		for y := y1; y <= y2; y++ {
			t.set(t.PixOffset(x1, y), c)
		}
		return
	}

	slope := (float64(y1) - float64(y2)) / (float64(x1) - float64(x2))
	if math.Abs(slope) <= 1 {
		for x := x1; x <= x2; x++ {
			y := slope*float64(x-x1) + float64(y1)
			if math.Abs(y-math.Round(y)) < snapEps {
				t.set(t.PixOffset(x, int(math.Round(y))), c)
				continue
			}
			frac := y - math.Floor(y)
			upper := t.PixOffset(x, int(math.Ceil(y)))
			lower := upper + t.Width*3
			blend.Pixel(t.Pix[upper:upper+3], c, frac)
			blend.Pixel(t.Pix[lower:lower+3], c, 1-frac)
		}
		return
	}

	for y := y1; y <= y2; y++ {
		x := float64(y-y1)/slope + float64(x1)
		if math.Abs(x-math.Round(x)) < snapEps {
			t.set(t.PixOffset(int(math.Round(x)), y), c)
			continue
		}
		frac := math.Ceil(x) - x
		left := t.PixOffset(int(math.Floor(x)), y)
		right := left + 3
		blend.Pixel(t.Pix[left:left+3], c, frac)
		blend.Pixel(t.Pix[right:right+3], c, 1-frac)
	}
}
