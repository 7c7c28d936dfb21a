package raster

import "math"

// halfSpan returns the half-width in whole pixels of the ellipse with
// semi-axes (rx, ry) at row offset dy from the center, or -1 when the
// row misses the ellipse entirely.
func halfSpan(rx, ry, dy int) int {
	if dy < -ry || dy > ry {
		return -1
	}
	if ry == 0 {
		return rx
	}
	f := float64(dy) / float64(ry)
	return int(math.Floor(float64(rx) * math.Sqrt(1-f*f)))
}

// FillEllipse paints the filled ellipse centered at (cx, cy) with
// semi-axes rx and ry, one horizontal run per row. The extent must be
// in bounds.
func FillEllipse(t Target, cx, cy, rx, ry int, c [3]uint8) {
	for dy := -ry; dy <= ry; dy++ {
		w := halfSpan(rx, ry, dy)
		t.fillRun(cx-w, cx+w, cy+dy, c)
	}
}

// StrokeEllipse paints an ellipse border that grows inward by
// thickness pixels. Each row paints the outer span minus the span of
// an inner ellipse whose semi-axes shrink by thickness, clamped so
// every row keeps at least one border pixel per side; the ring is
// therefore watertight. Thickness values below one paint a one-pixel
// border, and values past the shorter semi-axis fill the whole shape.
func StrokeEllipse(t Target, cx, cy, rx, ry, thickness int, c [3]uint8) {
	if thickness < 1 {
		thickness = 1
	}
	irx, iry := rx-thickness, ry-thickness
	if irx < 0 || iry < 0 {
		FillEllipse(t, cx, cy, rx, ry, c)
		return
	}
	for dy := -ry; dy <= ry; dy++ {
		w := halfSpan(rx, ry, dy)
		iw := halfSpan(irx, iry, dy)
		if iw > w-1 {
			iw = w - 1
		}
		if iw < 0 {
			t.fillRun(cx-w, cx+w, cy+dy, c)
			continue
		}
		t.fillRun(cx-w, cx-iw-1, cy+dy, c)
		t.fillRun(cx+iw+1, cx+w, cy+dy, c)
	}
}
