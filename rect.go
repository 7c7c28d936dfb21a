package pix

import (
	"fmt"

	"github.com/pixkit/pix/internal/raster"
)

// DrawRect draws a rectangle border between corners (x1, y1) and
// (x2, y2), given in any order. Thickness grows inward: each layer
// past the first is inset by one pixel on every side, so thickness is
// capped at half the x-span plus one. A thickness of zero draws the
// same single layer as one; negative thickness is an error.
//
// Every layer is computed and bounds-checked before the first write,
// so a border that cannot be drawn in full leaves the image
// untouched. On a rectangle whose y-span is shorter than the
// thickness the inset folds back outward instead of nesting, and a
// folded layer can reach one row beyond the outer rectangle; at the
// image edge that fails the bounds check.
func (m *Image) DrawRect(x1, y1, x2, y2 int, c RGB, thickness int) error {
	if !m.inBounds(x1, y1) || !m.inBounds(x2, y2) {
		return fmt.Errorf("pix: draw rect (%d,%d)-(%d,%d) in %dx%d image: %w",
			x1, y1, x2, y2, m.width, m.height, ErrOutOfBounds)
	}
	if thickness < 0 || thickness > absDiff(x1, x2)/2+1 {
		return fmt.Errorf("pix: draw rect: invalid thickness %d for x-span %d: %w",
			thickness, absDiff(x1, x2), ErrThicknessTooLarge)
	}

	layers := raster.BorderLayers(x1, y1, x2, y2, thickness)
	t := m.target()
	for i, b := range layers {
		if !b.In(t) {
			return fmt.Errorf("pix: draw rect: border layer %d spans (%d,%d)-(%d,%d) outside %dx%d image: %w",
				i, b.MinX, b.MinY, b.MaxX, b.MaxY, m.width, m.height, ErrOutOfBounds)
		}
	}
	for _, b := range layers {
		raster.StrokeBox(t, b, c.triplet())
	}
	return nil
}

// DrawRectFilled fills the rectangle between corners (x1, y1) and
// (x2, y2), given in any order, edges included.
func (m *Image) DrawRectFilled(x1, y1, x2, y2 int, c RGB) error {
	if !m.inBounds(x1, y1) || !m.inBounds(x2, y2) {
		return fmt.Errorf("pix: fill rect (%d,%d)-(%d,%d) in %dx%d image: %w",
			x1, y1, x2, y2, m.width, m.height, ErrOutOfBounds)
	}
	raster.FillBox(m.target(), raster.NormBox(x1, y1, x2, y2), c.triplet())
	return nil
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
