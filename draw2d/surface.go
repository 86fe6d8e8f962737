// Package draw2d provides the destination framebuffer that sprites are
// composited onto.
//
// A Surface is a flat row-major buffer of packed 0x00RRGGBB pixels together
// with a clip rectangle. Every drawing operation receives the surface it
// writes to; there is no package-level target or clip state. A surface must
// only be written by one goroutine at a time.
package draw2d

import (
	"image"
	"image/color"
)

// Clip is the writable region of a surface. Left and Top are inclusive,
// Right and Bottom exclusive.
type Clip struct {
	Top, Bottom, Left, Right int
}

// Empty reports whether the clip rectangle admits no pixel at all.
func (c Clip) Empty() bool {
	return c.Left >= c.Right || c.Top >= c.Bottom
}

// Surface is a destination framebuffer.
type Surface struct {
	Pixels []uint32
	Width  int // also the row stride
	Height int

	Clip Clip
}

// NewSurface allocates a zeroed surface whose clip covers all of it.
func NewSurface(width, height int) *Surface {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	s := &Surface{
		Pixels: make([]uint32, width*height),
		Width:  width,
		Height: height,
	}
	s.ResetClip()
	return s
}

// SetClip restricts drawing to the passed rectangle, clamped to the surface.
func (s *Surface) SetClip(left, top, right, bottom int) {
	if left < 0 {
		left = 0
	}
	if top < 0 {
		top = 0
	}
	if right > s.Width {
		right = s.Width
	}
	if bottom > s.Height {
		bottom = s.Height
	}
	s.Clip = Clip{Top: top, Bottom: bottom, Left: left, Right: right}
}

// ResetClip makes the whole surface writable again.
func (s *Surface) ResetClip() {
	s.Clip = Clip{Top: 0, Bottom: s.Height, Left: 0, Right: s.Width}
}

// Clear zero-fills the whole surface, ignoring the clip.
func (s *Surface) Clear() {
	for i := range s.Pixels {
		s.Pixels[i] = 0
	}
}

// FillRect paints a solid rectangle, clipped to the clip rectangle.
func (s *Surface) FillRect(x, y, w, h int, rgb uint32) {
	if x < s.Clip.Left {
		w -= s.Clip.Left - x
		x = s.Clip.Left
	}
	if y < s.Clip.Top {
		h -= s.Clip.Top - y
		y = s.Clip.Top
	}
	if x+w > s.Clip.Right {
		w = s.Clip.Right - x
	}
	if y+h > s.Clip.Bottom {
		h = s.Clip.Bottom - y
	}
	if w <= 0 || h <= 0 {
		return
	}
	for row := y; row < y+h; row++ {
		line := s.Pixels[row*s.Width+x : row*s.Width+x+w]
		for i := range line {
			line[i] = rgb
		}
	}
}

// ColorModel, Bounds and At make the surface usable as an image.Image, so
// that it can be encoded or printed after a frame has been composited.
func (s *Surface) ColorModel() color.Model {
	return color.RGBAModel
}

func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.Width, s.Height)
}

func (s *Surface) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= s.Width || y >= s.Height {
		return color.RGBA{}
	}
	p := s.Pixels[x+y*s.Width]
	return color.RGBA{R: uint8(p >> 16), G: uint8(p >> 8), B: uint8(p), A: 0xFF}
}
