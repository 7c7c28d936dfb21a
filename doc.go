// Package pix draws simple 2D shapes into an in-memory RGB image.
//
// # Overview
//
// pix keeps one pixel buffer with 8 bits per channel and no alpha and
// rasterizes directly into it: anti-aliased lines, rectangle borders
// and fills, ellipse and circle borders and fills. Images move in and
// out through raw bytes or through the PNG, JPEG, and BMP codecs.
//
// # Quick Start
//
//	import "github.com/pixkit/pix"
//
//	img, err := pix.New(640, 360, pix.White)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	_ = img.DrawLine(0, 0, 639, 359, pix.Red)
//	_ = img.DrawRect(40, 40, 280, 200, pix.Black, 3)
//	_ = img.DrawCircleFilled(480, 180, 90, pix.Blue)
//
//	if err := img.SavePNG("out.png"); err != nil {
//		log.Fatal(err)
//	}
//
// # Coordinate System
//
// Drawing uses mathematical conventions:
//   - Origin (0, 0) at the bottom-left corner
//   - X increases right, Y increases up
//   - Bytes returns rows top-first, matching PNG wire order
//   - The image.Image view (At, Bounds) uses top-left coordinates
//
// # Errors
//
// Operations validate their arguments before the first pixel changes,
// so a failed call leaves the image exactly as it was. All errors wrap
// the package sentinels (ErrOutOfBounds, ErrThicknessTooLarge, and
// friends) for errors.Is.
//
// # Logging
//
// pix is silent by default. SetLogger installs a log/slog logger that
// receives one debug record per codec call.
package pix

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
