package pix24

import (
	"image"
	"image/color"
)

// Image is a decoded sprite: a row-major buffer of packed 0xAARRGGBB
// pixels (alpha is 0 for palette colors, which are always opaque) where the
// value 0 is transparent.
//
// CropX and CropY are added to the draw position. CropW and CropH are the
// logical box shared by all sprites of an archive entry and do not affect
// the stored buffer.
type Image struct {
	Pixels []uint32
	Width  int
	Height int

	CropX, CropY int
	CropW, CropH int
}

// New allocates a fully transparent image. The crop box is set to the image
// size.
func New(width, height int) *Image {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Image{
		Pixels: make([]uint32, width*height),
		Width:  width,
		Height: height,
		CropW:  width,
		CropH:  height,
	}
}

func (img *Image) ColorModel() color.Model {
	return color.NRGBAModel
}

func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width, img.Height)
}

// At reports a zero alpha byte as opaque, since palette colors carry no
// alpha. FromImage stores fully transparent source pixels as 0 so they stay
// transparent here.
func (img *Image) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= img.Width || y >= img.Height {
		return color.NRGBA{}
	}
	p := img.Pixels[x+y*img.Width]
	if p == 0 {
		return color.NRGBA{}
	}
	a := uint8(p >> 24)
	if a == 0 {
		a = 0xFF
	}
	return color.NRGBA{R: uint8(p >> 16), G: uint8(p >> 8), B: uint8(p), A: a}
}
