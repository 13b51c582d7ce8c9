// Package solid implements the fill command, which paints a new image with one color or a
// horizontal gradient between two colors.
package solid

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"simpleimage/pixel"
	"simpleimage/raster"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Output    string      `arg:"" help:"Destination PNG file" type:"path"`
	Width     int         `help:"Image width" default:"64"`
	Height    int         `help:"Image height" default:"64"`
	Color     string      `help:"Fill color: #RGB, #RGBA, #RRGGBB, #RRGGBBAA or a color name" default:"black"`
	To        string      `help:"If given, paint a left to right gradient from --color to this color" group:"gradient"`
	KeepAlpha bool        `help:"Only write red, green and blue, leaving alpha untouched" default:"false"`
	Opaque    bool        `help:"Make every pixel fully opaque after painting" default:"false"`
	Print     bool        `help:"Dump the pixel values to stdout" default:"false"`
	FillColor pixel.RGBA  `kong:"-"`
	ToColor   *pixel.RGBA `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	switch {
	case c.Width <= 0:
		return fmt.Errorf("invalid width: %d", c.Width)
	case c.Height <= 0:
		return fmt.Errorf("invalid height: %d", c.Height)
	}

	var err error
	if c.FillColor, err = pixel.Parse(c.Color); err != nil {
		return fmt.Errorf("invalid fill color: %w", err)
	}

	if c.To != "" {
		to, err := pixel.Parse(c.To)
		if err != nil {
			return fmt.Errorf("invalid gradient color: %w", err)
		}
		c.ToColor = &to
	}

	return nil
}

func (c *CLICmd) Run(logger *slog.Logger) error {
	return c.run(logger, os.Stdout)
}

func (c *CLICmd) run(logger *slog.Logger, stdout io.Writer) error {
	logger = logger.With("file", c.Output)

	img, err := raster.New(c.Width, c.Height)
	if err != nil {
		return err
	}

	mask := raster.AllChannels
	if c.KeepAlpha {
		mask = raster.RGBChannels
	}

	if c.ToColor == nil {
		logger.Info("filling", "color", c.FillColor, "channels", mask)
		img.Fill(c.FillColor, mask)
	} else {
		logger.Info("painting gradient", "from", c.FillColor, "to", *c.ToColor, "channels", mask)
		gradient(img, c.FillColor, *c.ToColor, mask)
	}

	if c.Opaque {
		img.SetOpaque()
	}

	if c.Print {
		if err = img.Print(stdout); err != nil {
			return fmt.Errorf("could not print pixels: %w", err)
		}
	}

	if err = img.SavePNG(c.Output); err != nil {
		return err
	}
	logger.Info("saved", "width", img.Width(), "height", img.Height())
	return nil
}

func gradient(img *raster.Image, from, to pixel.RGBA, mask raster.Channels) {
	var (
		a = pixel.RGBAToVector(from)
		b = pixel.RGBAToVector(to)
		w = img.Width()
	)
	for x := range w {
		var t float64
		if w > 1 {
			t = float64(x) / float64(w-1)
		}
		col := pixel.VectorToRGBA(a.Lerp(b, t))
		for y := range img.Height() {
			img.SetChannels(x, y, col, mask)
		}
	}
}
