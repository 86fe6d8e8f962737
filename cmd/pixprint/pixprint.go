// Command pixprint decodes sprites or true-color images out of a jagex2
// archive and prints them on the terminal.
//
// Print one sprite:
//
//	pixprint -archive datafiles/media -name backbase1 -sprite 0
//
// Print the first ten sprites of a group side by side:
//
//	pixprint -archive datafiles/media -name mapfunction -count 10
package main

import (
	"flag"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/golang/glog"

	"badc0de.net/pkg/go-jagex2/jagfile"
	"badc0de.net/pkg/go-jagex2/paths"
	"badc0de.net/pkg/go-jagex2/pix24"
)

var (
	name     = flag.String("name", "", "name of the sprite group or image to print, without .dat")
	sprite   = flag.Int("sprite", 0, "sprite to print")
	count    = flag.Int("count", 0, "if set, print sprites 0 to count-1 of the group side by side")
	jpeg     = flag.Bool("jpeg", false, "decode the entry as a true-color image instead of a sprite")
	flipH    = flag.Bool("flip_h", false, "mirror sprites horizontally before drawing")
	flipV    = flag.Bool("flip_v", false, "mirror sprites vertically before drawing")
	opaque   = flag.Bool("opaque", false, "blit transparent pixels too")
	col      = flag.Bool("col", true, "whether to use color")
	col256   = flag.Bool("col256", false, "whether to use 256 col instead of 24 bit")
	iterm    = flag.Bool("iterm", false, "whether to print with iterm escape code instead of 24 bit")
	rasterm  = flag.Bool("rasterm", false, "whether to print with the rasterm library (kitty, iterm, sixel)")
	blanks   = flag.Bool("blanks", true, "whether to just use colored blanks instead of some bad ascii art")
	downsize = flag.Bool("downsize", false, "whether to shrink the output to fit the terminal")

	archivePath string
)

func main() {
	paths.SetupFilePathFlag("media", "archive", &archivePath)
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	if *name == "" {
		glog.Exitf("-name is required")
	}

	a, err := jagfile.OpenAny(archivePath)
	if err != nil {
		glog.Exitf("opening archive: %v", err)
	}

	if *jpeg {
		img, err := pix24.FromJPEG(a, *name)
		if err != nil {
			glog.Exitf("decoding %s: %v", *name, err)
		}
		out(compose([]*pix24.Image{img}))
		return
	}

	var imgs []*pix24.Image
	if *count > 0 {
		imgs, err = decodeSheet(a, *name, *count)
	} else {
		var img *pix24.Image
		img, err = pix24.FromArchive(a, *name, *sprite)
		imgs = []*pix24.Image{img}
	}
	if err != nil {
		glog.Exitf("decoding %s: %v", *name, err)
	}
	out(compose(imgs))
}
