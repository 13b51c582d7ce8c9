package pixel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Parse errors.
var (
	ErrInvalidHex   = errors.New("pixel: invalid hex color")
	ErrUnknownColor = errors.New("pixel: unknown color")
)

// ParseHex parses "#RRGGBB" or "RRGGBB" into an RGB. Digits are case-insensitive and the most
// significant byte is red.
func ParseHex(s string) (RGB, error) {
	v, err := parseHexDigits(s, 6)
	if err != nil {
		return RGB{}, err
	}
	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// ParseHexAlpha parses "#RRGGBBAA" or "RRGGBBAA" into an RGBA. The least significant byte is
// alpha.
func ParseHexAlpha(s string) (RGBA, error) {
	v, err := parseHexDigits(s, 8)
	if err != nil {
		return RGBA{}, err
	}
	return RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// Parse accepts every color notation the command line understands: #RGB, #RGBA, #RRGGBB and
// #RRGGBBAA (the # is optional), SVG color names such as "teal", and "transparent".
//
// Short forms expand each digit, so "#f80" is "#ff8800".
func Parse(s string) (RGBA, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return RGBA{}, fmt.Errorf("%w: empty string", ErrUnknownColor)
	}
	if name == "transparent" {
		return Transparent, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return RGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}

	switch digits := strings.TrimPrefix(name, "#"); len(digits) {
	case 3:
		v, err := parseHexDigits(name, 3)
		if err != nil {
			return RGBA{}, err
		}
		return RGBA{
			R: nibble(v >> 8),
			G: nibble(v >> 4),
			B: nibble(v),
			A: 0xff,
		}, nil
	case 4:
		v, err := parseHexDigits(name, 4)
		if err != nil {
			return RGBA{}, err
		}
		return RGBA{
			R: nibble(v >> 12),
			G: nibble(v >> 8),
			B: nibble(v >> 4),
			A: nibble(v),
		}, nil
	case 6:
		c, err := ParseHex(name)
		if err != nil {
			return RGBA{}, err
		}
		return c.Opaque(), nil
	case 8:
		return ParseHexAlpha(name)
	default:
		if strings.HasPrefix(name, "#") {
			return RGBA{}, fmt.Errorf("%w %q: should be #RGB, #RGBA, #RRGGBB or #RRGGBBAA", ErrInvalidHex, s)
		}
		return RGBA{}, fmt.Errorf("%w %q", ErrUnknownColor, s)
	}
}

func parseHexDigits(s string, digits int) (uint32, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != digits {
		return 0, fmt.Errorf("%w %q: want %d hex digits, got %d", ErrInvalidHex, s, digits, len(hex))
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrInvalidHex, s, err)
	}
	return uint32(v), nil
}

// nibble expands the low 4 bits of v to a full byte.
func nibble(v uint32) uint8 {
	n := uint8(v & 0xf)
	return n | n<<4
}
