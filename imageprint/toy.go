// Package imageprint prints images on terminal. UNSUPPORTED debug package.
//
// Both *pix24.Image and *draw2d.Surface implement image.Image and can be
// passed to any of the Print functions. Transparent pixels are printed as
// blanks on the terminal's default background.
//
// This package has an API with no stability guarantees.
package imageprint

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	ic "image/color"
	"image/png"
	"io"
	"os"

	"github.com/gookit/color"
)

// Out receives everything the Print functions write.
var Out io.Writer = os.Stdout

const reset = "\x1b[0m"

type cellStyle int

const (
	styleTrueColor cellStyle = iota
	style256
	styleNoColor
)

// cell returns the two characters representing one pixel.
func cell(col ic.Color, style cellStyle, blanks bool) string {
	cR, cG, cB, cA := col.RGBA()
	if cA == 0 {
		return reset + "  "
	}
	text := "  "
	if !blanks {
		a := ((cR + cG + cB) / 3) >> 8
		switch {
		case a < 32:
			text = ".."
		case a < 64:
			text = "--"
		case a < 128:
			text = "=="
		default:
			text = "##"
		}
	}
	r, g, b := uint8(cR>>8), uint8(cG>>8), uint8(cB>>8)
	switch style {
	case styleTrueColor:
		return fmt.Sprintf("\x1b[48;2;%d;%d;%dm%s%s", r, g, b, text, reset)
	case style256:
		return color.RGB(r, g, b, true).Sprint(text)
	default:
		return text
	}
}

func printImage(i image.Image, style cellStyle, blanks bool) {
	b := i.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		line := &bytes.Buffer{}
		for x := b.Min.X; x < b.Max.X; x++ {
			line.WriteString(cell(i.At(x, y), style, blanks))
		}
		if style != styleNoColor {
			line.WriteString(reset)
		}
		line.WriteString("\n")
		Out.Write(line.Bytes())
	}
}

// Print256Color draws an image using 256color'd ascii art.
func Print256Color(i image.Image, blanks bool) {
	printImage(i, style256, blanks)
}

// Print24bit draws an image using 24bit color escape sequences by changing background.
func Print24bit(i image.Image, blanks bool) {
	printImage(i, styleTrueColor, blanks)
}

// PrintNoColor draws an image without using color escape sequences. Only makes sense with blanks=false.
func PrintNoColor(i image.Image, blanks bool) {
	printImage(i, styleNoColor, blanks)
}

// PrintITerm draws an image using iTerm2's escape sequences.
//
// https://www.iterm2.com/documentation-images.html
func PrintITerm(i image.Image, fn string) {
	if !isTermItermWez() {
		return
	}
	name := base64.StdEncoding.EncodeToString([]byte(fn))
	b := &bytes.Buffer{}
	bEnc := base64.NewEncoder(base64.StdEncoding, b)
	png.Encode(bEnc, i)
	bEnc.Close()
	fmt.Fprintf(Out, "\n\033]1337;File=name=%s;inline=1;size=%d,width=%dpx;height=%dpx:%s\a\n", name, b.Len(), i.Bounds().Size().X, i.Bounds().Size().Y, b.String())
}
