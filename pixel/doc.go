// Package pixel implements the byte packed RGB and RGBA color values used by the raster package.
//
// Colors are straight (non-premultiplied) and satisfy Go's native [color.Color] interface, so
// they can be handed to anything in the standard image packages.
package pixel
