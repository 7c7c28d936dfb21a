package pix

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// pngSignature is the 8-byte PNG file magic.
var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// DecodePNG reads a PNG image from r. The file must use 8 bits per
// channel and be truecolor, with or without alpha; an alpha channel
// is dropped without compositing. Sixteen-bit files return
// ErrBitDepth, grayscale and paletted ones ErrColorType. Clear
// restores the image to the decoded pixels.
func DecodePNG(r io.Reader) (*Image, error) {
	br := bufio.NewReader(r)
	if err := checkPNGHeader(br); err != nil {
		return nil, err
	}
	img, err := png.Decode(br)
	if err != nil {
		return nil, fmt.Errorf("pix: decode PNG: %w", err)
	}
	m := FromImage(img)
	Logger().Debug("decoded PNG image", "width", m.width, "height", m.height)
	return m, nil
}

// checkPNGHeader peeks the signature and IHDR fields of a PNG stream
// and rejects depth and color combinations the standard decoder would
// otherwise fold into supported pixel formats. Streams that do not
// look like a PNG at all pass through for png.Decode to report.
func checkPNGHeader(br *bufio.Reader) error {
	// 8 signature bytes, 8 chunk header bytes, 4+4 dimension bytes,
	// then bit depth and color type.
	head, err := br.Peek(26)
	if err != nil || !bytes.Equal(head[:8], pngSignature) || string(head[12:16]) != "IHDR" {
		return nil
	}
	depth, colorType := head[24], head[25]
	if depth != 8 {
		return fmt.Errorf("pix: decode PNG: bit depth %d: %w", depth, ErrBitDepth)
	}
	// Truecolor is 2, truecolor with alpha 6.
	if colorType != 2 && colorType != 6 {
		return fmt.Errorf("pix: decode PNG: color type %d: %w", colorType, ErrColorType)
	}
	return nil
}

// EncodePNG writes the image to w as an 8-bit PNG. The pixels are
// fully opaque, so the encoder emits plain truecolor.
func (m *Image) EncodePNG(w io.Writer, opts ...EncodeOption) error {
	cfg := newEncodeConfig(opts...)
	enc := png.Encoder{CompressionLevel: cfg.pngLevel}
	if err := enc.Encode(w, m.ToImage()); err != nil {
		return fmt.Errorf("pix: encode PNG: %w", err)
	}
	Logger().Debug("encoded PNG image", "width", m.width, "height", m.height)
	return nil
}

// LoadPNG reads a PNG image from a file.
func LoadPNG(path string) (*Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("pix: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return DecodePNG(f)
}

// SavePNG writes the image to a PNG file.
func (m *Image) SavePNG(path string, opts ...EncodeOption) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("pix: create file: %w", err)
	}

	if err := m.EncodePNG(f, opts...); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// DecodeJPEG reads a JPEG image from r. Clear restores the image to
// the decoded pixels.
func DecodeJPEG(r io.Reader) (*Image, error) {
	img, err := jpeg.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("pix: decode JPEG: %w", err)
	}
	m := FromImage(img)
	Logger().Debug("decoded JPEG image", "width", m.width, "height", m.height)
	return m, nil
}

// EncodeJPEG writes the image to w as a JPEG.
func (m *Image) EncodeJPEG(w io.Writer, opts ...EncodeOption) error {
	cfg := newEncodeConfig(opts...)
	if err := jpeg.Encode(w, m.ToImage(), &jpeg.Options{Quality: cfg.jpegQuality}); err != nil {
		return fmt.Errorf("pix: encode JPEG: %w", err)
	}
	Logger().Debug("encoded JPEG image", "width", m.width, "height", m.height, "quality", cfg.jpegQuality)
	return nil
}

// LoadJPEG reads a JPEG image from a file.
func LoadJPEG(path string) (*Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("pix: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return DecodeJPEG(f)
}

// SaveJPEG writes the image to a JPEG file.
func (m *Image) SaveJPEG(path string, opts ...EncodeOption) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("pix: create file: %w", err)
	}

	if err := m.EncodeJPEG(f, opts...); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// DecodeBMP reads a BMP image from r. Clear restores the image to the
// decoded pixels.
func DecodeBMP(r io.Reader) (*Image, error) {
	img, err := bmp.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("pix: decode BMP: %w", err)
	}
	m := FromImage(img)
	Logger().Debug("decoded BMP image", "width", m.width, "height", m.height)
	return m, nil
}

// EncodeBMP writes the image to w as a 24-bit BMP.
func (m *Image) EncodeBMP(w io.Writer) error {
	if err := bmp.Encode(w, m.ToImage()); err != nil {
		return fmt.Errorf("pix: encode BMP: %w", err)
	}
	Logger().Debug("encoded BMP image", "width", m.width, "height", m.height)
	return nil
}

// LoadBMP reads a BMP image from a file.
func LoadBMP(path string) (*Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("pix: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return DecodeBMP(f)
}

// SaveBMP writes the image to a BMP file.
func (m *Image) SaveBMP(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("pix: create file: %w", err)
	}

	if err := m.EncodeBMP(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Decode reads an image from r, sniffing the format from its content.
// PNG, JPEG, and BMP are supported; PNG streams go through the
// DecodePNG depth and color checks.
func Decode(r io.Reader) (*Image, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(pngSignature)); err == nil && bytes.Equal(head, pngSignature) {
		return DecodePNG(br)
	}
	img, format, err := image.Decode(br)
	if err != nil {
		return nil, fmt.Errorf("pix: decode image: %w", err)
	}
	m := FromImage(img)
	Logger().Debug("decoded image", "format", format, "width", m.width, "height", m.height)
	return m, nil
}

// Load reads an image from a file, picking the decoder by extension
// and falling back to content sniffing for anything unrecognized.
func Load(path string) (*Image, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return LoadPNG(path)
	case ".jpg", ".jpeg":
		return LoadJPEG(path)
	case ".bmp":
		return LoadBMP(path)
	default:
		f, err := os.Open(filepath.Clean(path))
		if err != nil {
			return nil, fmt.Errorf("pix: open file: %w", err)
		}
		defer func() { _ = f.Close() }()

		return Decode(f)
	}
}
