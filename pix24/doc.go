// Package pix24 decodes jagex2 sprites into packed 24-bit images and
// composites them onto a draw2d.Surface.
//
// Indexed sprites live in two archive entries: "<name>.dat" holds the
// palette indices of every sprite of that name back to back, and the shared
// "index.dat" holds, at an offset named by the first two bytes of the .dat
// entry, the crop box, the palette and the per-sprite headers. Decoding is
// exact: palette index 0 is transparent, and a stored palette color of pure
// black is turned into 0x000001 so that it still draws.
//
// True-color images (JPEG backgrounds and the like) are decoded with the
// standard image decoders and packed into the same Image type.
//
// Draw and BlitOpaque reproduce the legacy renderer pixel for pixel,
// including its clipping against the surface's clip rectangle.
package pix24
