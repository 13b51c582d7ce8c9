package raster

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"

	"simpleimage/pixel"
)

// ErrInvalidSize is returned by New when a dimension is not positive or the pixel buffer would
// not fit in an int.
var ErrInvalidSize = errors.New("raster: invalid image dimensions")

const bytesPerPixel = 4

// noCopy makes go vet's copylocks check flag copies of an Image.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Image is a row-major RGBA pixel buffer. The pixel at (x, y) starts at pix[y*stride + x*4] and
// holds straight (non-premultiplied) red, green, blue and alpha bytes.
type Image struct {
	noCopy noCopy

	pix    []uint8
	stride int
	rect   image.Rectangle
}

// New returns a width by height image with every pixel set to transparent black.
func New(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 || width > math.MaxInt/bytesPerPixel/height {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}
	return &Image{
		pix:    make([]uint8, width*height*bytesPerPixel),
		stride: width * bytesPerPixel,
		rect:   image.Rect(0, 0, width, height),
	}, nil
}

func (m *Image) Width() int {
	return m.rect.Dx()
}

func (m *Image) Height() int {
	return m.rect.Dy()
}

func (m *Image) Bounds() image.Rectangle {
	return m.rect
}

func (m *Image) ColorModel() color.Model {
	return pixel.RGBAModel
}

func (m *Image) pixOffset(x, y int) int {
	return y*m.stride + x*bytesPerPixel
}

func (m *Image) in(x, y int) bool {
	return (image.Point{X: x, Y: y}).In(m.rect)
}

// At returns the color at (x, y), or transparent black outside the image.
func (m *Image) At(x, y int) color.Color {
	return m.RGBAAt(x, y)
}

// RGBAAt returns the pixel at (x, y). Outside the image it returns transparent black, which
// callers cannot tell apart from a stored transparent black pixel; use Lookup for that.
func (m *Image) RGBAAt(x, y int) pixel.RGBA {
	c, _ := m.Lookup(x, y)
	return c
}

// Lookup returns the pixel at (x, y) and whether (x, y) lies inside the image.
func (m *Image) Lookup(x, y int) (pixel.RGBA, bool) {
	if !m.in(x, y) {
		return pixel.RGBA{}, false
	}
	i := m.pixOffset(x, y)
	s := m.pix[i : i+4 : i+4]
	return pixel.RGBA{R: s[0], G: s[1], B: s[2], A: s[3]}, true
}

// Set converts c to the image color model and stores it at (x, y). It makes Image usable as a
// draw.Image destination.
func (m *Image) Set(x, y int, c color.Color) {
	m.SetRGBA(x, y, pixel.RGBAModel.Convert(c).(pixel.RGBA))
}

// SetChannels writes the channels of c selected by mask to the pixel at (x, y); the other
// channels keep their value. It returns false, leaving the image untouched, when (x, y) is
// outside the image.
func (m *Image) SetChannels(x, y int, c pixel.RGBA, mask Channels) bool {
	if !m.in(x, y) {
		return false
	}
	m.write(m.pixOffset(x, y), c, mask)
	return true
}

// SetChannel writes v to the channels selected by mask.
func (m *Image) SetChannel(x, y int, mask Channels, v uint8) bool {
	return m.SetChannels(x, y, pixel.RGBA{R: v, G: v, B: v, A: v}, mask)
}

// SetRGB writes red, green and blue and leaves alpha untouched.
func (m *Image) SetRGB(x, y int, c pixel.RGB) bool {
	return m.SetChannels(x, y, pixel.RGBA{R: c.R, G: c.G, B: c.B}, RGBChannels)
}

// SetRGBA writes all four channels.
func (m *Image) SetRGBA(x, y int, c pixel.RGBA) bool {
	return m.SetChannels(x, y, c, AllChannels)
}

// Fill writes the channels of c selected by mask to every pixel. Fill(c, RGBChannels) keeps the
// alpha of each pixel, Fill(c, AllChannels) paints a uniform color.
func (m *Image) Fill(c pixel.RGBA, mask Channels) {
	if mask&AllChannels == AllChannels {
		if len(m.pix) == 0 {
			return
		}
		copy(m.pix, []byte{c.R, c.G, c.B, c.A})
		for n := bytesPerPixel; n < len(m.pix); n *= 2 {
			copy(m.pix[n:], m.pix[:n])
		}
		return
	}
	for i := 0; i < len(m.pix); i += bytesPerPixel {
		m.write(i, c, mask)
	}
}

// SetOpaque sets the alpha of every pixel to 0xff.
func (m *Image) SetOpaque() {
	for i := 3; i < len(m.pix); i += bytesPerPixel {
		m.pix[i] = 0xff
	}
}

// Clear resets every pixel to transparent black.
func (m *Image) Clear() {
	clear(m.pix)
}

func (m *Image) write(i int, c pixel.RGBA, mask Channels) {
	s := m.pix[i : i+4 : i+4]
	if mask&Red != 0 {
		s[0] = c.R
	}
	if mask&Green != 0 {
		s[1] = c.G
	}
	if mask&Blue != 0 {
		s[2] = c.B
	}
	if mask&Alpha != 0 {
		s[3] = c.A
	}
}

// Print dumps every pixel as {r,g,b,a}, one image row per line. It is meant for debugging.
func (m *Image) Print(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for y := m.rect.Min.Y; y < m.rect.Max.Y; y++ {
		row := m.pix[y*m.stride : (y+1)*m.stride]
		for i := 0; i < len(row); i += bytesPerPixel {
			fmt.Fprintf(bw, "{%d,%d,%d,%d} ", row[i], row[i+1], row[i+2], row[i+3])
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Interface checks.
var (
	_ image.Image = (*Image)(nil)
	_ draw.Image  = (*Image)(nil)
)
