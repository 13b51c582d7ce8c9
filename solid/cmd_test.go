package solid

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"simpleimage/pixel"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testDecode(t *testing.T, name string) *image.NRGBA {
	t.Helper()
	f, err := os.Open(name)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("could not decode %s: %v", name, err)
	}
	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		t.Fatalf("expected *image.NRGBA, got %T", img)
	}
	return nrgba
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cmd  CLICmd
		ok   bool
	}{
		{"defaults", CLICmd{Width: 1, Height: 1, Color: "black"}, true},
		{"gradient", CLICmd{Width: 1, Height: 1, Color: "#000", To: "#fff"}, true},
		{"width", CLICmd{Width: 0, Height: 1, Color: "black"}, false},
		{"height", CLICmd{Width: 1, Height: -1, Color: "black"}, false},
		{"color", CLICmd{Width: 1, Height: 1, Color: "#12"}, false},
		{"to", CLICmd{Width: 1, Height: 1, Color: "black", To: "nope"}, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(it *testing.T) {
			err := test.cmd.Validate(nil)
			if test.ok && err != nil {
				it.Errorf("unexpected error: %v", err)
			} else if !test.ok && err == nil {
				it.Error("expected error")
			}
		})
	}
}

func TestRunFill(t *testing.T) {
	cmd := CLICmd{
		Output: filepath.Join(t.TempDir(), "fill.png"),
		Width:  3,
		Height: 2,
		Color:  "#01020304",
		Print:  true,
	}
	if err := cmd.Validate(nil); err != nil {
		t.Fatal(err)
	}

	var out strings.Builder
	if err := cmd.run(testLogger(), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v, want := out.String(), strings.Repeat(strings.Repeat("{1,2,3,4} ", 3)+"\n", 2); v != want {
		t.Errorf("expected dump %q, got %q", want, v)
	}

	img := testDecode(t, cmd.Output)
	if v := img.Bounds().Size(); !v.Eq(image.Pt(3, 2)) {
		t.Fatalf("expected 3x2 image, got %s", v)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if v, want := img.NRGBAAt(x, y), (color.NRGBA{R: 1, G: 2, B: 3, A: 4}); v != want {
				t.Errorf("pixel (%d,%d) is %+v, expected %+v", x, y, v, want)
			}
		}
	}
}

func TestRunKeepAlphaOpaque(t *testing.T) {
	cmd := CLICmd{
		Output:    filepath.Join(t.TempDir(), "fill.png"),
		Width:     2,
		Height:    2,
		Color:     "teal",
		KeepAlpha: true,
		Opaque:    true,
	}
	if err := cmd.Validate(nil); err != nil {
		t.Fatal(err)
	}
	if err := cmd.run(testLogger(), io.Discard); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	img := testDecode(t, cmd.Output)
	if v, want := img.NRGBAAt(1, 1), (color.NRGBA{R: 0, G: 0x80, B: 0x80, A: 0xff}); v != want {
		t.Errorf("expected %+v, got %+v", want, v)
	}
}

func TestRunGradient(t *testing.T) {
	cmd := CLICmd{
		Output: filepath.Join(t.TempDir(), "gradient.png"),
		Width:  5,
		Height: 2,
		Color:  "#000000",
		To:     "#ffffff80",
	}
	if err := cmd.Validate(nil); err != nil {
		t.Fatal(err)
	}
	if err := cmd.run(testLogger(), io.Discard); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	img := testDecode(t, cmd.Output)
	want := []pixel.RGBA{
		{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
		{R: 0x40, G: 0x40, B: 0x40, A: 0xdf},
		{R: 0x80, G: 0x80, B: 0x80, A: 0xc0},
		{R: 0xbf, G: 0xbf, B: 0xbf, A: 0xa0},
		{R: 0xff, G: 0xff, B: 0xff, A: 0x80},
	}
	for x, c := range want {
		for y := 0; y < 2; y++ {
			if v := img.NRGBAAt(x, y); v != (color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}) {
				t.Errorf("pixel (%d,%d) is %+v, expected %+v", x, y, v, c)
			}
		}
	}
}

func TestRunUnwritable(t *testing.T) {
	cmd := CLICmd{
		Output: filepath.Join(t.TempDir(), "missing", "fill.png"),
		Width:  1,
		Height: 1,
		Color:  "red",
	}
	if err := cmd.Validate(nil); err != nil {
		t.Fatal(err)
	}
	if err := cmd.run(testLogger(), io.Discard); err == nil {
		t.Error("expected error")
	}
}
