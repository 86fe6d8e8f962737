package pix24

import (
	"bytes"
	"image"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-jagex2/jagfile"
)

// FromTrueColor packs non-premultiplied RGBA bytes, four per pixel, into an
// image.
func FromTrueColor(width, height int, rgba []byte) (*Image, error) {
	if width < 0 || height < 0 {
		return nil, malformed(errors.Errorf("bad dimensions %dx%d", width, height), "packing true color")
	}
	if width != 0 && height > len(rgba)/4/width {
		return nil, malformed(errors.Errorf("have %d bytes for %dx%d pixels", len(rgba), width, height), "packing true color")
	}
	img := New(width, height)
	for i := range img.Pixels {
		o := i * 4
		img.Pixels[i] = uint32(rgba[o+3])<<24 | uint32(rgba[o])<<16 | uint32(rgba[o+1])<<8 | uint32(rgba[o+2])
	}
	return img, nil
}

// FromImage converts any decoded image into an Image.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), src, b.Min, draw.Src)

	// A freshly allocated NRGBA has no row padding, so Pix is exactly the
	// packed RGBA stream FromTrueColor expects.
	img, _ := FromTrueColor(b.Dx(), b.Dy(), nrgba.Pix)
	for i, p := range img.Pixels {
		if p>>24 == 0 {
			img.Pixels[i] = 0
		}
	}
	return img
}

// FromJPEG decodes "<name>.dat" from the archive as a true-color image.
// Besides JPEG, anything image.Decode has a registered decoder for is
// accepted.
func FromJPEG(a jagfile.Archive, name string) (*Image, error) {
	dat, err := a.Read(name + ".dat")
	if err != nil {
		return nil, malformed(err, "reading "+name+".dat")
	}
	src, format, err := image.Decode(bytes.NewReader(dat))
	if err != nil {
		return nil, malformed(err, "decoding "+name+".dat")
	}
	img := FromImage(src)
	glog.V(2).Infof("pix24: %s.dat: %s image, %dx%d", name, format, img.Width, img.Height)
	return img, nil
}
