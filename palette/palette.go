// Package palette reads and writes color palettes in the RIFF PAL format and provides a few
// built-in palettes.
package palette

import (
	"fmt"
	"os"
	"slices"
	"sort"

	"simpleimage/pixel"
)

// Palette is an ordered list of colors.
type Palette []pixel.RGBA

func gray(levels int) Palette {
	pal := make(Palette, levels)
	step := 0xff / (levels - 1)
	for i := range pal {
		y := uint8(i * step)
		pal[i] = pixel.RGBA{R: y, G: y, B: y, A: 0xff}
	}
	return pal
}

func hex(colors ...string) Palette {
	pal := make(Palette, len(colors))
	for i, s := range colors {
		c, err := pixel.ParseHex(s)
		if err != nil {
			panic(err)
		}
		pal[i] = c.Opaque()
	}
	return pal
}

var builtin = map[string]Palette{
	"bw":     {pixel.Black, pixel.White},
	"gray4":  gray(4),
	"gray16": gray(16),
	"vga16": hex(
		"000000", "0000aa", "00aa00", "00aaaa", "aa0000", "aa00aa", "aa5500", "aaaaaa",
		"555555", "5555ff", "55ff55", "55ffff", "ff5555", "ff55ff", "ffff55", "ffffff",
	),
}

// Names returns the names of the built-in palettes, sorted.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load returns the built-in palette called name, or otherwise reads name as a RIFF PAL file and
// concatenates every palette it holds.
func Load(name string) (Palette, error) {
	if pal, ok := builtin[name]; ok {
		return slices.Clone(pal), nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("could not open palette %q: %w", name, err)
	}
	defer f.Close()

	pals, err := ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("could not load palette %q: %w", name, err)
	}

	var res Palette
	for _, pal := range pals {
		res = append(res, pal...)
	}
	if len(res) == 0 {
		return nil, fmt.Errorf("palette %q has no colors", name)
	}
	return res, nil
}

// Save writes pal to a RIFF PAL file called name.
func Save(name string, pal Palette) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("could not create palette %q: %w", name, err)
	}

	if _, err = WriteTo(f, []Palette{pal}); err != nil {
		_ = f.Close()
		return fmt.Errorf("could not save palette %q: %w", name, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("could not close palette %q: %w", name, err)
	}
	return nil
}
