package pix24

import (
	"badc0de.net/pkg/go-jagex2/draw2d"
)

// span is the part of an image that survives clipping, expressed as linear
// offsets into the source and destination buffers plus the number of
// pixels to step over after each copied row.
type span struct {
	w, h            int
	srcOff, srcStep int
	dstOff, dstStep int
}

// clip positions img at (x, y) plus its crop offset and cuts it down to the
// surface's clip rectangle. The result is only meaningful when ok is true.
func (img *Image) clip(dst *draw2d.Surface, x, y int) (s span, ok bool) {
	x += img.CropX
	y += img.CropY

	s.w = img.Width
	s.h = img.Height
	s.dstOff = x + y*dst.Width
	s.dstStep = dst.Width - s.w

	c := dst.Clip

	if y < c.Top {
		cutoff := c.Top - y
		s.h -= cutoff
		y = c.Top
		s.srcOff += cutoff * s.w
		s.dstOff += cutoff * dst.Width
	}

	if y+s.h > c.Bottom {
		s.h -= y + s.h - c.Bottom
	}

	if x < c.Left {
		cutoff := c.Left - x
		s.w -= cutoff
		x = c.Left
		s.srcOff += cutoff
		s.dstOff += cutoff
		s.srcStep += cutoff
		s.dstStep += cutoff
	}

	if x+s.w > c.Right {
		cutoff := x + s.w - c.Right
		s.w -= cutoff
		s.srcStep += cutoff
		s.dstStep += cutoff
	}

	return s, s.w > 0 && s.h > 0
}

// Draw composites the image onto dst with its top-left corner at (x, y)
// plus the crop offset. Transparent (zero) pixels leave the destination
// untouched. Pixels outside dst.Clip are never written.
func (img *Image) Draw(dst *draw2d.Surface, x, y int) {
	s, ok := img.clip(dst, x, y)
	if !ok {
		return
	}
	copyKeyed(s, img.Pixels, dst.Pixels)
}

// BlitOpaque is like Draw, but copies every pixel including transparent
// ones.
func (img *Image) BlitOpaque(dst *draw2d.Surface, x, y int) {
	s, ok := img.clip(dst, x, y)
	if !ok {
		return
	}
	copyOpaque(s, img.Pixels, dst.Pixels)
}

func copyOpaque(s span, src, dst []uint32) {
	srcOff, dstOff := s.srcOff, s.dstOff
	for y := 0; y < s.h; y++ {
		copy(dst[dstOff:dstOff+s.w], src[srcOff:srcOff+s.w])
		srcOff += s.w + s.srcStep
		dstOff += s.w + s.dstStep
	}
}

// copyKeyed copies rows four pixels at a time, then the remaining w%4,
// skipping zero pixels.
func copyKeyed(s span, src, dst []uint32) {
	quads := s.w >> 2
	rest := s.w & 3
	srcOff, dstOff := s.srcOff, s.dstOff
	for y := 0; y < s.h; y++ {
		for x := 0; x < quads; x++ {
			if p := src[srcOff]; p != 0 {
				dst[dstOff] = p
			}
			if p := src[srcOff+1]; p != 0 {
				dst[dstOff+1] = p
			}
			if p := src[srcOff+2]; p != 0 {
				dst[dstOff+2] = p
			}
			if p := src[srcOff+3]; p != 0 {
				dst[dstOff+3] = p
			}
			srcOff += 4
			dstOff += 4
		}
		for x := 0; x < rest; x++ {
			if p := src[srcOff]; p != 0 {
				dst[dstOff] = p
			}
			srcOff++
			dstOff++
		}
		srcOff += s.srcStep
		dstOff += s.dstStep
	}
}
