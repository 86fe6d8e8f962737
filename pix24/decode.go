package pix24

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-jagex2/jagfile"
	"badc0de.net/pkg/go-jagex2/packet"
)

// Pixel orders stored in a sprite header. Either way the decoded buffer is
// row-major; the order only says how the source bytes are laid out.
const (
	PixelOrderRows    = 0
	PixelOrderColumns = 1
)

// FromArchive decodes sprite number `sprite` (counting from 0) of the
// named sprite group, reading "<name>.dat" and "index.dat" from the archive.
func FromArchive(a jagfile.Archive, name string, sprite int) (*Image, error) {
	dat, err := a.Read(name + ".dat")
	if err != nil {
		return nil, malformed(err, "reading "+name+".dat")
	}
	index, err := a.Read("index.dat")
	if err != nil {
		return nil, malformed(err, "reading index.dat")
	}
	img, err := Decode(dat, index, sprite)
	if err != nil {
		return nil, errors.Wrapf(err, "sprite %s:%d", name, sprite)
	}
	return img, nil
}

// Decode builds one sprite from the raw .dat and index.dat contents.
//
// A sprite index beyond the last sprite is reported once a read runs past
// the end of either stream. An unknown pixel order is not an error: the
// returned image is fully transparent.
func Decode(data, index []byte, sprite int) (*Image, error) {
	if sprite < 0 {
		return nil, malformed(errors.Errorf("negative sprite index %d", sprite), "seeking to sprite")
	}

	dat := packet.New(data)
	idx := packet.New(index)

	off, err := dat.G2()
	if err != nil {
		return nil, malformed(err, "reading index offset")
	}
	idx.Pos = int(off)

	cropW, err := idx.G2()
	if err != nil {
		return nil, malformed(err, "reading crop width")
	}
	cropH, err := idx.G2()
	if err != nil {
		return nil, malformed(err, "reading crop height")
	}

	palette, err := readPalette(idx)
	if err != nil {
		return nil, err
	}

	for i := 0; i < sprite; i++ {
		idx.Skip(2)
		w, err := idx.G2()
		if err != nil {
			return nil, malformed(err, "skipping sprite width")
		}
		h, err := idx.G2()
		if err != nil {
			return nil, malformed(err, "skipping sprite height")
		}
		dat.Skip(int(w) * int(h))
		idx.Skip(1)
	}

	var hdr struct {
		cropX, cropY  uint8
		width, height uint16
		order         uint8
	}
	if hdr.cropX, err = idx.G1(); err != nil {
		return nil, malformed(err, "reading crop x")
	}
	if hdr.cropY, err = idx.G1(); err != nil {
		return nil, malformed(err, "reading crop y")
	}
	if hdr.width, err = idx.G2(); err != nil {
		return nil, malformed(err, "reading width")
	}
	if hdr.height, err = idx.G2(); err != nil {
		return nil, malformed(err, "reading height")
	}

	if hdr.order, err = idx.G1(); err != nil {
		return nil, malformed(err, "reading pixel order")
	}
	if n := int(hdr.width) * int(hdr.height); (hdr.order == PixelOrderRows || hdr.order == PixelOrderColumns) && dat.Remaining() < n {
		return nil, malformed(errors.Wrapf(packet.ErrExhausted, "need %d pixels at %d, have %d bytes", n, dat.Pos, dat.Remaining()), "reading pixels")
	}

	img := New(int(hdr.width), int(hdr.height))
	img.CropX = int(hdr.cropX)
	img.CropY = int(hdr.cropY)
	img.CropW = int(cropW)
	img.CropH = int(cropH)
	glog.V(2).Infof("pix24: sprite %d: %dx%d at +%d+%d, crop box %dx%d, %d colors, order %d",
		sprite, img.Width, img.Height, img.CropX, img.CropY, img.CropW, img.CropH, len(palette), hdr.order)

	switch hdr.order {
	case PixelOrderRows:
		for i := range img.Pixels {
			if img.Pixels[i], err = readPixel(dat, palette); err != nil {
				return nil, err
			}
		}
	case PixelOrderColumns:
		for x := 0; x < img.Width; x++ {
			for y := 0; y < img.Height; y++ {
				if img.Pixels[x+y*img.Width], err = readPixel(dat, palette); err != nil {
					return nil, err
				}
			}
		}
	default:
		glog.V(1).Infof("pix24: sprite %d has unknown pixel order %d, leaving it transparent", sprite, hdr.order)
	}

	return img, nil
}

// readPalette reads the color count and the colors following it. Entry 0 is
// transparent; a stored black is replaced by 1 so it is not mistaken for
// transparency when blitting.
func readPalette(idx *packet.Packet) ([]uint32, error) {
	count, err := idx.G1()
	if err != nil {
		return nil, malformed(err, "reading palette size")
	}
	palette := make([]uint32, count)
	for i := 1; i < int(count); i++ {
		rgb, err := idx.G3()
		if err != nil {
			return nil, malformed(err, "reading palette")
		}
		if rgb == 0 {
			rgb = 1
		}
		palette[i] = rgb
	}
	return palette, nil
}

func readPixel(dat *packet.Packet, palette []uint32) (uint32, error) {
	c, err := dat.G1()
	if err != nil {
		return 0, malformed(err, "reading pixels")
	}
	if int(c) >= len(palette) {
		return 0, malformed(errors.Errorf("color %d outside palette of %d", c, len(palette)), "reading pixels")
	}
	return palette[c], nil
}
