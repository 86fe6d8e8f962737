package pix24

import (
	"fmt"

	"badc0de.net/pkg/go-jagex2/draw2d"
)

// ExampleDecode decodes a one-sprite group and draws it onto a surface.
func ExampleDecode() {
	dat, index := buildSprites(16, 16, []uint32{0, 0xFF0000}, []testSprite{
		{cropX: 2, cropY: 3, w: 4, h: 2, order: PixelOrderRows, data: repeat(1, 8)},
	}, 0)

	img, err := Decode(dat, index, 0)
	if err != nil {
		fmt.Printf("failed to decode: %v\n", err)
		return
	}
	fmt.Printf("image: %dx%d at +%d+%d in %dx%d\n", img.Width, img.Height, img.CropX, img.CropY, img.CropW, img.CropH)

	dst := draw2d.NewSurface(img.CropW, img.CropH)
	img.Draw(dst, 0, 0)
	fmt.Printf("pixel at (2,3): %06x\n", dst.Pixels[2+3*dst.Width])
	fmt.Printf("pixel at (1,3): %06x\n", dst.Pixels[1+3*dst.Width])
	// Output:
	// image: 4x2 at +2+3 in 16x16
	// pixel at (2,3): ff0000
	// pixel at (1,3): 000000
}
