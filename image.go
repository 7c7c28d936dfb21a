package pix

import (
	"fmt"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"github.com/pixkit/pix/internal/raster"
)

// Image is an in-memory RGB image with 8 bits per channel and no
// alpha.
//
// Drawing methods address pixels with the origin at the bottom-left
// corner, x growing right and y growing up. Storage, and therefore
// the Bytes view, is row-major with the top row first, matching PNG
// wire order; the flip between the two lives in one offset
// computation and nowhere else.
//
// Image also implements the read side of the standard library's
// image.Image, whose At method uses top-left coordinates.
//
// An Image is not safe for concurrent use.
type Image struct {
	pix    []uint8
	width  int
	height int
	bg     background
}

// New creates a width x height image filled with the background
// color. Clear restores that color later. Zero-area images are valid
// and hold no pixels.
func New(width, height int, bg RGB) (*Image, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("pix: new %dx%d image: %w", width, height, ErrInvalidDimensions)
	}
	m := &Image{
		pix:    make([]uint8, width*height*3),
		width:  width,
		height: height,
		bg:     solidBackground(bg),
	}
	fillRGB(m.pix, bg)
	return m, nil
}

// FromBytes creates an image from raw RGB bytes, 3 per pixel, rows
// top to bottom. The data is copied, so the caller may reuse the
// slice. Clear restores a snapshot of these bytes.
func FromBytes(width, height int, data []uint8) (*Image, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("pix: image from %dx%d bytes: %w", width, height, ErrInvalidDimensions)
	}
	if len(data) != width*height*3 {
		return nil, fmt.Errorf("pix: image from %dx%d bytes: got %d bytes, want %d: %w",
			width, height, len(data), width*height*3, ErrByteLength)
	}
	return newSnapshot(width, height, data), nil
}

// newSnapshot builds an image whose Clear target is a copy of data.
// len(data) must equal width*height*3.
func newSnapshot(width, height int, data []uint8) *Image {
	pix := make([]uint8, len(data))
	copy(pix, data)
	return &Image{
		pix:    pix,
		width:  width,
		height: height,
		bg:     snapshotBackground(data),
	}
}

// FromImage converts any standard library image, discarding alpha
// without compositing. Clear restores the converted pixels. The two
// common decoder output types convert directly; everything else goes
// through x/image/draw.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	switch v := src.(type) {
	case *image.NRGBA:
		return newSnapshot(w, h, flattenRGBA(v.Pix, v.PixOffset(b.Min.X, b.Min.Y), v.Stride, w, h))
	case *image.RGBA:
		return newSnapshot(w, h, flattenRGBA(v.Pix, v.PixOffset(b.Min.X, b.Min.Y), v.Stride, w, h))
	}

	tmp := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(tmp, tmp.Bounds(), src, b.Min, xdraw.Src)
	return newSnapshot(w, h, flattenRGBA(tmp.Pix, 0, tmp.Stride, w, h))
}

// flattenRGBA repacks w x h pixels from 4-byte RGBA rows into 3-byte
// RGB rows, dropping the alpha byte as-is.
func flattenRGBA(src []uint8, offset, stride, w, h int) []uint8 {
	dst := make([]uint8, w*h*3)
	di := 0
	for y := 0; y < h; y++ {
		row := src[offset+y*stride:]
		for x := 0; x < w; x++ {
			s := x * 4
			dst[di] = row[s]
			dst[di+1] = row[s+1]
			dst[di+2] = row[s+2]
			di += 3
		}
	}
	return dst
}

// Width returns the image width in pixels.
func (m *Image) Width() int { return m.width }

// Height returns the image height in pixels.
func (m *Image) Height() int { return m.height }

// Bytes returns the pixel storage: 3 bytes per pixel, rows top to
// bottom, ready for an encoder. The slice is a live view, not a copy;
// drawing into the image changes it.
func (m *Image) Bytes() []uint8 { return m.pix }

// Clone returns an independent copy of the image. The snapshot backing
// Clear is shared between the two, since it is never written after
// construction.
func (m *Image) Clone() *Image {
	pix := make([]uint8, len(m.pix))
	copy(pix, m.pix)
	return &Image{pix: pix, width: m.width, height: m.height, bg: m.bg}
}

// GetPixel returns the color at (x, y), origin bottom-left.
func (m *Image) GetPixel(x, y int) (RGB, error) {
	if !m.inBounds(x, y) {
		return RGB{}, fmt.Errorf("pix: get pixel (%d,%d) in %dx%d image: %w",
			x, y, m.width, m.height, ErrOutOfBounds)
	}
	i := m.pixOffset(x, y)
	return RGB{m.pix[i], m.pix[i+1], m.pix[i+2]}, nil
}

// SetPixel writes the color at (x, y), origin bottom-left.
func (m *Image) SetPixel(x, y int, c RGB) error {
	if !m.inBounds(x, y) {
		return fmt.Errorf("pix: set pixel (%d,%d) in %dx%d image: %w",
			x, y, m.width, m.height, ErrOutOfBounds)
	}
	i := m.pixOffset(x, y)
	m.pix[i], m.pix[i+1], m.pix[i+2] = c.R, c.G, c.B
	return nil
}

// Clear restores every pixel to the image background: the solid color
// for images made with New, the original bytes for images made from
// data or decoded from a file.
func (m *Image) Clear() {
	m.bg.restore(m.pix)
}

func (m *Image) inBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// pixOffset returns the byte index of (x, y). The y flip between
// bottom-left coordinates and top-first storage happens here only.
func (m *Image) pixOffset(x, y int) int {
	return (m.width*(m.height-1-y) + x) * 3
}

// target adapts the image for the rasterizer routines.
func (m *Image) target() raster.Target {
	return raster.Target{Pix: m.pix, Width: m.width, Height: m.height}
}

// ColorModel implements image.Image.
func (m *Image) ColorModel() color.Model { return RGBModel }

// Bounds implements image.Image.
func (m *Image) Bounds() image.Rectangle { return image.Rect(0, 0, m.width, m.height) }

// At implements image.Image with the standard library's top-left
// origin, unlike GetPixel. Out-of-range coordinates return the zero
// color.
func (m *Image) At(x, y int) color.Color {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return RGB{}
	}
	i := (y*m.width + x) * 3
	return RGB{m.pix[i], m.pix[i+1], m.pix[i+2]}
}

// Opaque reports whether the image is fully opaque. It always is.
func (m *Image) Opaque() bool { return true }

// ToImage copies the pixels into a standard library image. The result
// is fully opaque, so encoders treat it as plain truecolor.
func (m *Image) ToImage() *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, m.width, m.height))
	si := 0
	for di := 0; di < len(dst.Pix); di += 4 {
		dst.Pix[di] = m.pix[si]
		dst.Pix[di+1] = m.pix[si+1]
		dst.Pix[di+2] = m.pix[si+2]
		dst.Pix[di+3] = 255
		si += 3
	}
	return dst
}
