// Package ttesting contains small assertion helpers shared by tests.
package ttesting

import (
	"testing"
)

func AssertEqualInt(t *testing.T, name string, got, want int) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %d; want %d", got, want)
		}
	})
}

func AssertEqualUint32(t *testing.T, name string, got, want uint32) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %d (%08x); want %d (%08x)", got, got, want, want)
		}
	})
}

func AssertInRangeUint32(t *testing.T, name string, got, wantMin, wantMax uint32) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if got < wantMin || got > wantMax {
			t.Errorf("got %d; want [%d,%d]", got, wantMin, wantMax)
		}
	})
}

// AssertEqualPixels compares two packed pixel buffers and reports the first
// few differing offsets.
func AssertEqualPixels(t *testing.T, name string, got, want []uint32) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if len(got) != len(want) {
			t.Fatalf("got %d pixels; want %d", len(got), len(want))
		}
		reported := 0
		for i := range got {
			if got[i] != want[i] {
				t.Errorf("pixel %d: got %08x; want %08x", i, got[i], want[i])
				reported++
				if reported >= 8 {
					t.Fatalf("too many differences")
				}
			}
		}
	})
}
