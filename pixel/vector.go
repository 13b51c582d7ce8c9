package pixel

import "math"

// Vector holds the channels of an RGBA as numbers, in [red, green, blue, alpha] order.
type Vector [4]float64

// RGBAToVector converts c to a Vector.
func RGBAToVector(c RGBA) Vector {
	return Vector{float64(c.R), float64(c.G), float64(c.B), float64(c.A)}
}

// VectorToRGBA converts v back to an RGBA, rounding each channel to the nearest integer and
// clamping it to [0, 255]. NaN becomes 0.
func VectorToRGBA(v Vector) RGBA {
	return RGBA{
		R: clampChannel(v[0]),
		G: clampChannel(v[1]),
		B: clampChannel(v[2]),
		A: clampChannel(v[3]),
	}
}

// Lerp interpolates linearly between v and w, t=0 yields v and t=1 yields w.
func (v Vector) Lerp(w Vector, t float64) Vector {
	var out Vector
	for i := range v {
		out[i] = v[i] + (w[i]-v[i])*t
	}
	return out
}

func clampChannel(f float64) uint8 {
	switch {
	case math.IsNaN(f), f <= 0:
		return 0
	case f >= 0xff:
		return 0xff
	}
	return uint8(math.Round(f))
}
