// Package swatch implements the swatch command, which renders one solid PNG per color.
package swatch

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"simpleimage/palette"
	"simpleimage/parallel"
	"simpleimage/pixel"
	"simpleimage/raster"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Colors      []string        `arg:"" optional:"" help:"Colors to render: #RGB, #RGBA, #RRGGBB, #RRGGBBAA or color names"`
	Palette     string          `help:"Built-in palette name (bw, gray4, gray16, vga16) or PAL file in RIFF format to render" group:"palette"`
	SavePalette string          `help:"Also write the colors to this PAL file in RIFF format" type:"path" group:"palette"`
	Size        int             `help:"Edge length of each swatch in pixels" default:"32"`
	Dest        string          `help:"Destination folder for the swatches" default:"." type:"path"`
	Workers     int             `help:"Number of swatches rendered concurrently, 0 uses one per CPU" default:"0"`
	Entries     palette.Palette `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if c.Size <= 0 {
		return fmt.Errorf("invalid swatch size: %d", c.Size)
	}
	if c.Workers < 0 {
		return fmt.Errorf("invalid number of workers: %d", c.Workers)
	}

	c.Entries = c.Entries[:0]
	if c.Palette != "" {
		pal, err := palette.Load(c.Palette)
		if err != nil {
			return err
		}
		c.Entries = append(c.Entries, pal...)
	}

	for _, s := range c.Colors {
		col, err := pixel.Parse(s)
		if err != nil {
			return fmt.Errorf("invalid color %q: %w", s, err)
		}
		c.Entries = append(c.Entries, col)
	}

	if len(c.Entries) == 0 {
		return fmt.Errorf("no colors given")
	}
	return nil
}

func (c *CLICmd) Run(logger *slog.Logger) error {
	if err := os.MkdirAll(c.Dest, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Dest, err)
	}

	if c.SavePalette != "" {
		if err := palette.Save(c.SavePalette, c.Entries); err != nil {
			return err
		}
		logger.Info("saved palette", "file", c.SavePalette, "colors", len(c.Entries))
	}

	var (
		pool                     = parallel.Start(c.Workers)
		processedCount, errCount atomic.Uint64
	)
	for i, col := range c.Entries {
		name := filepath.Join(c.Dest, FileName(i, col))
		pool.Go(func() error {
			fileLog := logger.With("file", name, "color", col)
			if err := render(name, c.Size, col); err != nil {
				errCount.Add(1)
				fileLog.Error("could not render swatch", "error", err)
				return err
			}
			processedCount.Add(1)
			fileLog.Debug("rendered swatch")
			return nil
		})
	}

	err := pool.Wait()

	processed := processedCount.Load()
	errors := errCount.Load()
	logger.Info("stats", "processed", processed, "errors", errors,
		"total", processed+errors)

	if err != nil {
		return fmt.Errorf("error rendering %d swatches: %w", errors, err)
	}
	return nil
}

// FileName is the name of the swatch file for the i-th color.
func FileName(i int, col pixel.RGBA) string {
	return fmt.Sprintf("%03d-%s.png", i, strings.TrimPrefix(col.String(), "#"))
}

func render(name string, size int, col pixel.RGBA) error {
	img, err := raster.New(size, size)
	if err != nil {
		return err
	}
	img.Fill(col, raster.AllChannels)
	return img.SavePNG(name)
}
