package pix

import (
	"fmt"

	"github.com/pixkit/pix/internal/raster"
)

// DrawEllipse draws an ellipse border centered at (cx, cy) with
// semi-axes rx and ry. The whole extent, center plus and minus each
// semi-axis, must lie inside the image. Thickness grows inward and is
// capped at the shorter semi-axis plus one, which fills the shape; a
// thickness of zero draws the same one-pixel border as one, and
// negative thickness is an error. On error nothing is drawn.
//
// The border is painted row by row as the span between the outer
// ellipse and an inner ellipse shrunk by thickness, kept at least one
// pixel wide per side, so the ring has no gaps.
func (m *Image) DrawEllipse(cx, cy, rx, ry int, c RGB, thickness int) error {
	return m.strokeEllipse("draw ellipse", cx, cy, rx, ry, c, thickness)
}

// DrawEllipseFilled fills the ellipse centered at (cx, cy) with
// semi-axes rx and ry. The whole extent must lie inside the image.
func (m *Image) DrawEllipseFilled(cx, cy, rx, ry int, c RGB) error {
	return m.fillEllipse("fill ellipse", cx, cy, rx, ry, c)
}

// DrawCircle draws a circle border of radius r centered at (cx, cy):
// an ellipse with equal semi-axes. A radius of zero draws the center
// pixel.
func (m *Image) DrawCircle(cx, cy, r int, c RGB, thickness int) error {
	return m.strokeEllipse("draw circle", cx, cy, r, r, c, thickness)
}

// DrawCircleFilled fills a circle of radius r centered at (cx, cy).
func (m *Image) DrawCircleFilled(cx, cy, r int, c RGB) error {
	return m.fillEllipse("fill circle", cx, cy, r, r, c)
}

func (m *Image) strokeEllipse(op string, cx, cy, rx, ry int, c RGB, thickness int) error {
	if err := m.checkEllipse(op, cx, cy, rx, ry); err != nil {
		return err
	}
	if thickness < 0 || thickness > min(rx, ry)+1 {
		return fmt.Errorf("pix: %s: invalid thickness %d for semi-axes (%d,%d): %w",
			op, thickness, rx, ry, ErrThicknessTooLarge)
	}
	raster.StrokeEllipse(m.target(), cx, cy, rx, ry, thickness, c.triplet())
	return nil
}

func (m *Image) fillEllipse(op string, cx, cy, rx, ry int, c RGB) error {
	if err := m.checkEllipse(op, cx, cy, rx, ry); err != nil {
		return err
	}
	raster.FillEllipse(m.target(), cx, cy, rx, ry, c.triplet())
	return nil
}

func (m *Image) checkEllipse(op string, cx, cy, rx, ry int) error {
	if rx < 0 || ry < 0 {
		return fmt.Errorf("pix: %s: negative semi-axes (%d,%d): %w", op, rx, ry, ErrInvalidDimensions)
	}
	if cx-rx < 0 || cx+rx >= m.width || cy-ry < 0 || cy+ry >= m.height {
		return fmt.Errorf("pix: %s: extent (%d,%d)-(%d,%d) outside %dx%d image: %w",
			op, cx-rx, cy-ry, cx+rx, cy+ry, m.width, m.height, ErrOutOfBounds)
	}
	return nil
}
