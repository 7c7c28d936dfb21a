package pix

// backgroundKind discriminates the two Clear targets.
type backgroundKind uint8

const (
	backgroundSolid backgroundKind = iota
	backgroundSnapshot
)

// background remembers what Clear restores: the solid color the image
// was created with, or a snapshot of the bytes it was decoded from.
// Exactly one variant is active, chosen at construction and never
// changed afterward.
type background struct {
	kind backgroundKind
	fill RGB
	snap []uint8
}

func solidBackground(c RGB) background {
	return background{kind: backgroundSolid, fill: c}
}

// snapshotBackground copies pix so later drawing cannot leak into the
// snapshot.
func snapshotBackground(pix []uint8) background {
	snap := make([]uint8, len(pix))
	copy(snap, pix)
	return background{kind: backgroundSnapshot, snap: snap}
}

// restore rewrites dst with the background contents.
func (b background) restore(dst []uint8) {
	switch b.kind {
	case backgroundSolid:
		fillRGB(dst, b.fill)
	case backgroundSnapshot:
		copy(dst, b.snap)
	}
}

// fillRGB tiles the 3-byte pattern of c across dst, doubling the
// copied prefix each pass.
func fillRGB(dst []uint8, c RGB) {
	if len(dst) < 3 {
		return
	}
	dst[0], dst[1], dst[2] = c.R, c.G, c.B
	for n := 3; n < len(dst); n *= 2 {
		copy(dst[n:], dst[:n])
	}
}
