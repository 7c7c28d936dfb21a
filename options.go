package pix

import (
	"image/jpeg"
	"image/png"
)

// EncodeOption adjusts encoder settings for the Encode and Save
// functions. Options aimed at another format are ignored.
//
// Example:
//
//	// Smallest file, slowest encode
//	err := img.SavePNG("out.png", pix.WithPNGCompression(png.BestCompression))
//
//	// Rough but small JPEG
//	err := img.SaveJPEG("out.jpg", pix.WithJPEGQuality(40))
type EncodeOption func(*encodeConfig)

// encodeConfig holds the encoder settings assembled from options.
type encodeConfig struct {
	pngLevel    png.CompressionLevel
	jpegQuality int
}

func newEncodeConfig(opts ...EncodeOption) encodeConfig {
	cfg := encodeConfig{
		pngLevel:    png.DefaultCompression,
		jpegQuality: jpeg.DefaultQuality,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithPNGCompression selects the PNG compression level.
func WithPNGCompression(level png.CompressionLevel) EncodeOption {
	return func(cfg *encodeConfig) { cfg.pngLevel = level }
}

// WithJPEGQuality selects the JPEG quality, clamped to [1, 100].
func WithJPEGQuality(quality int) EncodeOption {
	return func(cfg *encodeConfig) { cfg.jpegQuality = min(max(quality, 1), 100) }
}
