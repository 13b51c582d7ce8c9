package swatch

import (
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"simpleimage/palette"
	"simpleimage/pixel"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestValidate(t *testing.T) {
	cmd := CLICmd{
		Colors:  []string{"#f00", "blue"},
		Palette: "bw",
		Size:    4,
	}
	if err := cmd.Validate(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := palette.Palette{
		pixel.Black,
		pixel.White,
		{R: 0xff, A: 0xff},
		{B: 0xff, A: 0xff},
	}
	if !slices.Equal(cmd.Entries, want) {
		t.Errorf("expected %v, got %v", want, cmd.Entries)
	}

	for name, bad := range map[string]CLICmd{
		"no-colors": {Size: 4},
		"size":      {Size: 0, Colors: []string{"red"}},
		"workers":   {Size: 4, Workers: -1, Colors: []string{"red"}},
		"color":     {Size: 4, Colors: []string{"#xyz1"}},
		"palette":   {Size: 4, Palette: filepath.Join(t.TempDir(), "missing.pal")},
	} {
		t.Run(name, func(it *testing.T) {
			if err := bad.Validate(nil); err == nil {
				it.Error("expected error")
			}
		})
	}
}

func TestRun(t *testing.T) {
	dest := t.TempDir()
	palFile := filepath.Join(dest, "out.pal")
	cmd := CLICmd{
		Colors:      []string{"#01020304", "white", "#ff8000"},
		Palette:     "gray4",
		SavePalette: palFile,
		Size:        3,
		Dest:        dest,
		Workers:     3,
	}
	if err := cmd.Validate(nil); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Run(testLogger()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, col := range cmd.Entries {
		name := filepath.Join(dest, FileName(i, col))
		f, err := os.Open(name)
		if err != nil {
			t.Fatalf("swatch %d: %v", i, err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("swatch %d: could not decode: %v", i, err)
		}
		if v := img.Bounds().Dx(); v != 3 {
			t.Errorf("swatch %d: expected width 3, got %d", i, v)
		}
		want := color.NRGBA{R: col.R, G: col.G, B: col.B, A: col.A}
		if v := color.NRGBAModel.Convert(img.At(2, 2)); v != want {
			t.Errorf("swatch %d: expected %+v, got %+v", i, want, v)
		}
	}

	pal, err := palette.Load(palFile)
	if err != nil {
		t.Fatalf("could not load saved palette: %v", err)
	}
	if len(pal) != len(cmd.Entries) {
		t.Errorf("expected %d palette colors, got %d", len(cmd.Entries), len(pal))
	}
}

func TestFileName(t *testing.T) {
	if v := FileName(7, pixel.RGBA{R: 0xff, G: 0x80, A: 0x40}); v != "007-ff800040.png" {
		t.Errorf("unexpected file name %q", v)
	}
}
