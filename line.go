package pix

import (
	"fmt"

	"github.com/pixkit/pix/internal/raster"
)

// DrawLine draws an anti-aliased line segment from (x1, y1) to
// (x2, y2). Both endpoints must lie inside the image; on error
// nothing is drawn.
//
// Where the ideal segment passes through a pixel center the pixel is
// written solid; elsewhere the color is split between the two pixels
// straddling the segment and blended over the buffer's current
// contents, so repeated strokes compound.
//
// Iteration ascends the major axis: a segment whose start exceeds its
// end on that axis draws nothing and still returns nil.
func (m *Image) DrawLine(x1, y1, x2, y2 int, c RGB) error {
	if !m.inBounds(x1, y1) || !m.inBounds(x2, y2) {
		return fmt.Errorf("pix: draw line (%d,%d)-(%d,%d) in %dx%d image: %w",
			x1, y1, x2, y2, m.width, m.height, ErrOutOfBounds)
	}
	raster.Line(m.target(), x1, y1, x2, y2, c.triplet())
	return nil
}
