package imageprint

import (
	"bytes"
	"strings"
	"testing"

	"badc0de.net/pkg/go-jagex2/draw2d"
	"badc0de.net/pkg/go-jagex2/pix24"
)

func capture(t *testing.T, f func()) string {
	t.Helper()
	old := Out
	buf := &bytes.Buffer{}
	Out = buf
	defer func() { Out = old }()
	f()
	return buf.String()
}

func TestPrintNoColorSprite(t *testing.T) {
	img := pix24.New(3, 2)
	img.Pixels[0] = 0xFFFFFF
	img.Pixels[1] = 1 // near-black still prints
	// Pixels[2] stays transparent.
	img.Pixels[3] = 0x606060

	got := capture(t, func() { PrintNoColor(img, false) })
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines; want 2: %q", len(lines), got)
	}
	if want := "##..\x1b[0m  "; lines[0] != want {
		t.Errorf("line 0 = %q; want %q", lines[0], want)
	}
	if !strings.HasPrefix(lines[1], "==") {
		t.Errorf("line 1 = %q; want a mid-gray cell first", lines[1])
	}
}

func TestPrint24bitSurface(t *testing.T) {
	s := draw2d.NewSurface(1, 1)
	s.Pixels[0] = 0x102030
	got := capture(t, func() { Print24bit(s, true) })
	if !strings.Contains(got, "\x1b[48;2;16;32;48m  ") {
		t.Errorf("output %q lacks the background escape for 102030", got)
	}
}
