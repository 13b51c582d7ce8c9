package raster

import "strings"

// Channels selects which channels of a pixel a write touches.
type Channels uint8

// Channel bits.
const (
	Red Channels = 1 << iota
	Green
	Blue
	Alpha
)

// Channel combinations.
const (
	RGBChannels = Red | Green | Blue
	AllChannels = RGBChannels | Alpha
)

func (ch Channels) String() string {
	if ch&AllChannels == 0 {
		return "none"
	}
	var b strings.Builder
	for i, name := range []byte("rgba") {
		if ch&(1<<i) != 0 {
			b.WriteByte(name)
		}
	}
	return b.String()
}
