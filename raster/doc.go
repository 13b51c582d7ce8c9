// Package raster implements a fixed size RGBA pixel buffer that can be written out as PNG.
//
// An [Image] is created once with its final dimensions and mutated in place. Setters report
// whether the coordinates were inside the image; writes outside of it are dropped.
//
// An Image must not be copied after creation and is not safe for concurrent use.
package raster
