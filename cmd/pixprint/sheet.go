package main

import (
	"github.com/bradfitz/iter"
	"golang.org/x/sync/errgroup"

	"badc0de.net/pkg/go-jagex2/draw2d"
	"badc0de.net/pkg/go-jagex2/jagfile"
	"badc0de.net/pkg/go-jagex2/pix24"
)

// decodeSheet decodes sprites 0..n-1 of a group in parallel. Decoding only
// reads the archive, so the sprites do not need any coordination.
func decodeSheet(a jagfile.Archive, name string, n int) ([]*pix24.Image, error) {
	imgs := make([]*pix24.Image, n)
	var g errgroup.Group
	for i := range iter.N(n) {
		i := i
		g.Go(func() error {
			img, err := pix24.FromArchive(a, name, i)
			if err != nil {
				return err
			}
			imgs[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return imgs, nil
}

// cellSize is the smallest box every sprite fits in when drawn at the
// box's origin.
func cellSize(imgs []*pix24.Image) (w, h int) {
	for _, img := range imgs {
		w = max(w, img.CropW, img.CropX+img.Width)
		h = max(h, img.CropH, img.CropY+img.Height)
	}
	return w, h
}

// compose lays the images out left to right using the flip and blit flags.
func compose(imgs []*pix24.Image) *draw2d.Surface {
	return composeWith(imgs, *flipH, *flipV, *opaque)
}

// composeWith draws each image into its own cell, clipped to that cell.
func composeWith(imgs []*pix24.Image, flipH, flipV, opaque bool) *draw2d.Surface {
	cw, ch := cellSize(imgs)
	dst := draw2d.NewSurface(cw*len(imgs), ch)
	for i, img := range imgs {
		if flipH {
			img.FlipHorizontally()
		}
		if flipV {
			img.FlipVertically()
		}
		dst.SetClip(i*cw, 0, (i+1)*cw, ch)
		if opaque {
			img.BlitOpaque(dst, i*cw, 0)
		} else {
			img.Draw(dst, i*cw, 0)
		}
	}
	dst.ResetClip()
	return dst
}
