package pix24

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math/bits"
	"testing"

	"github.com/pkg/errors"

	"badc0de.net/pkg/go-jagex2/jagfile"
	"badc0de.net/pkg/go-jagex2/ttesting"
)

func TestFromTrueColor(t *testing.T) {
	img, err := FromTrueColor(2, 1, []byte{
		0x11, 0x22, 0x33, 0xFF,
		0xAA, 0xBB, 0xCC, 0x00,
	})
	if err != nil {
		t.Fatalf("FromTrueColor: %v", err)
	}
	ttesting.AssertEqualPixels(t, "packed", img.Pixels, []uint32{0xFF112233, 0x00AABBCC})
	ttesting.AssertEqualInt(t, "crop w", img.CropW, 2)

	if _, err := FromTrueColor(2, 2, make([]byte, 15)); !errors.Is(err, ErrMalformedArchive) {
		t.Errorf("short buffer err = %v; want ErrMalformedArchive", err)
	}
	// n*n*4 wraps to 0.
	n := 1 << (bits.UintSize / 2)
	if _, err := FromTrueColor(n, n, make([]byte, 16)); !errors.Is(err, ErrMalformedArchive) {
		t.Errorf("huge dimensions err = %v; want ErrMalformedArchive", err)
	}
}

func TestFromImageTransparent(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 0x40, G: 0x50, B: 0x60, A: 0})
	src.SetNRGBA(1, 0, color.NRGBA{R: 0x40, G: 0x50, B: 0x60, A: 0xFF})

	img := FromImage(src)
	ttesting.AssertEqualPixels(t, "pixels", img.Pixels, []uint32{0, 0xFF405060})
	if got := img.At(0, 0); got != (color.NRGBA{}) {
		t.Errorf("At(0, 0) = %v; want transparent", got)
	}
}

func TestFromJPEG(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 16, 8))
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i], src.Pix[i+1], src.Pix[i+2], src.Pix[i+3] = 0x20, 0x80, 0xE0, 0xFF
	}
	var jpg, pngb bytes.Buffer
	if err := jpeg.Encode(&jpg, src, &jpeg.Options{Quality: 100}); err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(&pngb, src); err != nil {
		t.Fatal(err)
	}
	a := jagfile.Files{"logo.dat": jpg.Bytes(), "titlebox.dat": pngb.Bytes(), "junk.dat": []byte("junk")}

	img, err := FromJPEG(a, "logo")
	if err != nil {
		t.Fatalf("FromJPEG(logo): %v", err)
	}
	ttesting.AssertEqualInt(t, "width", img.Width, 16)
	ttesting.AssertEqualInt(t, "height", img.Height, 8)
	p := img.Pixels[5]
	ttesting.AssertEqualUint32(t, "alpha", p>>24, 0xFF)
	ttesting.AssertInRangeUint32(t, "red", p>>16&0xFF, 0x18, 0x28)
	ttesting.AssertInRangeUint32(t, "green", p>>8&0xFF, 0x78, 0x88)
	ttesting.AssertInRangeUint32(t, "blue", p&0xFF, 0xD8, 0xE8)

	img, err = FromJPEG(a, "titlebox")
	if err != nil {
		t.Fatalf("FromJPEG(titlebox): %v", err)
	}
	ttesting.AssertEqualUint32(t, "lossless pixel", img.Pixels[0], 0xFF2080E0)

	if _, err := FromJPEG(a, "junk"); !errors.Is(err, ErrMalformedArchive) {
		t.Errorf("junk err = %v; want ErrMalformedArchive", err)
	}
	if _, err := FromJPEG(a, "missing"); !errors.Is(err, jagfile.ErrNotFound) {
		t.Errorf("missing err = %v; want ErrNotFound", err)
	}
}

func TestFromImageOffsetBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 12, 11))
	src.Set(11, 10, color.RGBA{R: 1, G: 2, B: 3, A: 0xFF})
	img := FromImage(src)
	ttesting.AssertEqualPixels(t, "pixels", img.Pixels, []uint32{0, 0xFF010203})
}

func TestImageAt(t *testing.T) {
	img := New(3, 1)
	img.Pixels[1] = 0x00102030
	img.Pixels[2] = 0x80102030

	if got := img.At(0, 0); got != (color.NRGBA{}) {
		t.Errorf("At(0,0) = %v; want transparent", got)
	}
	if got, want := img.At(1, 0), (color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF}); got != want {
		t.Errorf("At(1,0) = %v; want %v", got, want)
	}
	if got, want := img.At(2, 0), (color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x80}); got != want {
		t.Errorf("At(2,0) = %v; want %v", got, want)
	}
}
