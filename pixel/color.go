package pixel

import (
	"fmt"
	"image/color"
)

// Models for the color types in this package.
var (
	RGBModel  color.Model = color.ModelFunc(rgbModel)
	RGBAModel color.Model = color.ModelFunc(rgbaModel)
)

// Common colors.
var (
	Transparent = RGBA{}
	Black       = RGBA{0x00, 0x00, 0x00, 0xff}
	White       = RGBA{0xff, 0xff, 0xff, 0xff}
)

// RGB is an opaque 24-bit color.
type RGB struct {
	R, G, B uint8
}

func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Opaque lifts c to an RGBA with alpha set to 0xff.
func (c RGB) Opaque() RGBA {
	return OpaqueRGBA(c)
}

func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBA is a 32-bit color with a straight alpha channel.
type RGBA struct {
	R, G, B, A uint8
}

func (c RGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	r *= uint32(c.A)
	r /= 0xff
	g = uint32(c.G)
	g |= g << 8
	g *= uint32(c.A)
	g /= 0xff
	b = uint32(c.B)
	b |= b << 8
	b *= uint32(c.A)
	b /= 0xff
	a = uint32(c.A)
	a |= a << 8
	return
}

// RGB drops the alpha channel.
func (c RGBA) RGB() RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

func (c RGBA) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// OpaqueRGBA lifts c to an RGBA with alpha set to 0xff.
func OpaqueRGBA(c RGB) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

func rgbModel(c color.Color) color.Color {
	switch c := c.(type) {
	case RGB:
		return c
	case RGBA:
		return c.RGB()
	}
	// Anything translucent ends up composed over black.
	r, g, b, _ := c.RGBA()
	return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

func rgbaModel(c color.Color) color.Color {
	switch c := c.(type) {
	case RGBA:
		return c
	case RGB:
		return c.Opaque()
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Interface checks.
var (
	_ color.Color = RGB{}
	_ color.Color = RGBA{}
)
