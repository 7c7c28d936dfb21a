package pix

import (
	"fmt"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is one opaque pixel color with 8 bits per channel. It is the
// only color the drawing operations accept; conversion helpers bridge
// the standard library and go-colorful types.
type RGB struct {
	R, G, B uint8
}

// Predefined colors.
var (
	Black   = RGB{0, 0, 0}
	White   = RGB{255, 255, 255}
	Red     = RGB{255, 0, 0}
	Green   = RGB{0, 255, 0}
	Blue    = RGB{0, 0, 255}
	Yellow  = RGB{255, 255, 0}
	Cyan    = RGB{0, 255, 255}
	Magenta = RGB{255, 0, 255}
	Gray    = RGB{128, 128, 128}
)

// RGBModel converts any color.Color to RGB, discarding alpha.
var RGBModel color.Model = color.ModelFunc(func(c color.Color) color.Color {
	return FromColor(c)
})

// Hex parses a hex color string in the "#ff0080" or "#f08" form.
func Hex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("pix: parse hex color: %w", err)
	}
	return FromColorful(c), nil
}

// Hex formats c as "#rrggbb".
func (c RGB) Hex() string {
	return c.Colorful().Hex()
}

// RGBA implements color.Color. RGB colors are always fully opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	return r, g, b, 0xffff
}

// FromColor converts a standard library color, discarding alpha.
// Common concrete types convert byte-for-byte; anything else goes
// through color.Color.RGBA and keeps its premultiplied channels.
func FromColor(c color.Color) RGB {
	switch v := c.(type) {
	case RGB:
		return v
	case color.NRGBA:
		return RGB{v.R, v.G, v.B}
	case color.RGBA:
		return RGB{v.R, v.G, v.B}
	case color.Gray:
		return RGB{v.Y, v.Y, v.Y}
	}
	r, g, b, _ := c.RGBA()
	return RGB{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
}

// Colorful returns c as a go-colorful color for color-space work.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// FromColorful converts a go-colorful color, clamping to the
// displayable range and rounding to 8 bits.
func FromColorful(c colorful.Color) RGB {
	c = c.Clamped()
	return RGB{
		R: uint8(math.Round(c.R * 255)),
		G: uint8(math.Round(c.G * 255)),
		B: uint8(math.Round(c.B * 255)),
	}
}

// Mix blends a toward b by t in [0, 1]. Chromatic pairs blend in Lab
// space; when either end is achromatic the blend runs in plain RGB,
// since Lab interpolation tints gray endpoints.
func Mix(a, b RGB, t float64) RGB {
	ca, cb := a.Colorful(), b.Colorful()
	if a.achromatic() || b.achromatic() {
		return FromColorful(ca.BlendRgb(cb, t))
	}
	return FromColorful(ca.BlendLab(cb, t))
}

// Lighten raises the HCL lightness of c by amount in [0, 1].
func (c RGB) Lighten(amount float64) RGB {
	h, cc, l := c.Colorful().Hcl()
	return FromColorful(colorful.Hcl(h, cc, l+amount))
}

// Darken lowers the HCL lightness of c by amount in [0, 1].
func (c RGB) Darken(amount float64) RGB {
	h, cc, l := c.Colorful().Hcl()
	return FromColorful(colorful.Hcl(h, cc, l-amount))
}

func (c RGB) achromatic() bool {
	return c.R == c.G && c.G == c.B
}

// triplet returns the raw channel bytes in rasterizer form.
func (c RGB) triplet() [3]uint8 {
	return [3]uint8{c.R, c.G, c.B}
}
