package main

import (
	"testing"

	"badc0de.net/pkg/go-jagex2/pix24"
	"badc0de.net/pkg/go-jagex2/ttesting"
)

func solid(w, h int, rgb uint32) *pix24.Image {
	img := pix24.New(w, h)
	for i := range img.Pixels {
		img.Pixels[i] = rgb
	}
	return img
}

func TestComposeWithCells(t *testing.T) {
	a := solid(2, 1, 0xAA)
	a.CropW, a.CropH = 2, 1
	// b claims a 1-wide box but is drawn offset by one, so every cell
	// grows to 3 pixels.
	b := solid(2, 1, 0xBB)
	b.CropX = 1
	b.CropW, b.CropH = 1, 1
	c := solid(1, 1, 0xCC)

	dst := composeWith([]*pix24.Image{a, b, c}, false, false, false)

	ttesting.AssertEqualInt(t, "width", dst.Width, 9)
	ttesting.AssertEqualInt(t, "height", dst.Height, 1)
	ttesting.AssertEqualPixels(t, "pixels", dst.Pixels, []uint32{
		0xAA, 0xAA, 0,
		0, 0xBB, 0xBB,
		0xCC, 0, 0,
	})
	ttesting.AssertEqualInt(t, "clip reset", dst.Clip.Right, 9)
}

func TestComposeWithFlips(t *testing.T) {
	img := pix24.New(2, 1)
	img.Pixels[0] = 0x11

	dst := composeWith([]*pix24.Image{img}, true, false, false)
	ttesting.AssertEqualPixels(t, "flipped", dst.Pixels, []uint32{0, 0x11})
}
