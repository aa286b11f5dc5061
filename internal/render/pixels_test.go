package render

import (
	"image/color"
	"testing"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{
		{R: 1, G: 2, B: 3, A: 255},
		{R: 10, G: 20, B: 30, A: 255},
	}
	cells := []uint8{0, 1, 5} // 5 clamps to the last palette entry
	buf := make([]byte, len(cells)*4)

	fillPaletteRGBA(buf, cells, palette)

	want := []byte{
		1, 2, 3, 255,
		10, 20, 30, 255,
		10, 20, 30, 255,
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf[%d] = %d, want %d", i, buf[i], want[i])
		}
	}
}

func TestFillPaletteRGBAEmptyPaletteUsesDefault(t *testing.T) {
	cells := []uint8{0, 1}
	buf := make([]byte, len(cells)*4)

	fillPaletteRGBA(buf, cells, nil)

	for i, col := range defaultPalette {
		base := i * 4
		if buf[base] != col.R || buf[base+1] != col.G || buf[base+2] != col.B || buf[base+3] != col.A {
			t.Fatalf("cell %d not painted with default palette entry %+v", i, col)
		}
	}
}
