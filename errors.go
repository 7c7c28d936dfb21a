package pix

import "errors"

// Sentinel errors returned by image operations. Returned errors wrap
// these with the offending coordinates and dimensions, so callers
// match them with errors.Is.
var (
	// ErrInvalidDimensions signals a negative width, height, or
	// shape semi-axis.
	ErrInvalidDimensions = errors.New("pix: invalid dimensions")

	// ErrOutOfBounds signals a coordinate outside the image, passed
	// directly or produced by a border inset.
	ErrOutOfBounds = errors.New("pix: coordinates out of bounds")

	// ErrThicknessTooLarge signals a border thickness the target
	// shape cannot accommodate.
	ErrThicknessTooLarge = errors.New("pix: thickness too large")

	// ErrByteLength signals a raw pixel buffer whose size does not
	// match width*height*3.
	ErrByteLength = errors.New("pix: wrong byte slice length")

	// ErrBitDepth signals an encoded image with a channel depth
	// other than 8 bits.
	ErrBitDepth = errors.New("pix: unsupported bit depth")

	// ErrColorType signals an encoded image whose color type is
	// neither truecolor nor truecolor with alpha.
	ErrColorType = errors.New("pix: unsupported color type")
)
