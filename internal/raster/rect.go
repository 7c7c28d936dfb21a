package raster

// Box is a rectangle normalized so MinX <= MaxX and MinY <= MaxY.
// All four edges are inclusive pixel coordinates.
type Box struct {
	MinX, MinY, MaxX, MaxY int
}

// NormBox builds the Box spanning corners (x1, y1) and (x2, y2),
// given in any order.
func NormBox(x1, y1, x2, y2 int) Box {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	return Box{MinX: x1, MinY: y1, MaxX: x2, MaxY: y2}
}

// In reports whether every pixel of b lies inside t.
func (b Box) In(t Target) bool {
	return b.MinX >= 0 && b.MinY >= 0 && b.MaxX < t.Width && b.MaxY < t.Height
}

// BorderLayers returns the concentric one-pixel border layers of a
// rectangle: the outer box first, each following layer inset by one
// pixel on every side and re-normalized. On a box whose y-span is
// shorter than the requested depth the inset folds back outward (the
// inset of a one-row layer is three rows tall), so a layer can reach
// one row beyond the outer box. Thickness values below one still
// produce the single outer layer.
func BorderLayers(x1, y1, x2, y2, thickness int) []Box {
	b := NormBox(x1, y1, x2, y2)
	layers := make([]Box, 1, max(thickness, 1))
	layers[0] = b
	for i := 1; i < thickness; i++ {
		b = NormBox(b.MinX+1, b.MinY+1, b.MaxX-1, b.MaxY-1)
		layers = append(layers, b)
	}
	return layers
}

// StrokeBox paints the one-pixel border of b: two horizontal runs and
// the two columns between them. Degenerate boxes repaint pixels
// rather than branch.
func StrokeBox(t Target, b Box, c [3]uint8) {
	t.fillRun(b.MinX, b.MaxX, b.MinY, c)
	t.fillRun(b.MinX, b.MaxX, b.MaxY, c)
	for y := b.MinY + 1; y < b.MaxY; y++ {
		t.set(t.PixOffset(b.MinX, y), c)
		t.set(t.PixOffset(b.MaxX, y), c)
	}
}

// FillBox paints every pixel of b.
func FillBox(t Target, b Box, c [3]uint8) {
	for y := b.MinY; y <= b.MaxY; y++ {
		t.fillRun(b.MinX, b.MaxX, y, c)
	}
}
