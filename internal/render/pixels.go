package render

import "image/color"

// defaultPalette renders sims that provide no palette of their own:
// unoccupied water and a single growth tone.
var defaultPalette = []color.RGBA{
	{R: 8, G: 24, B: 48, A: 255},
	{R: 230, G: 230, B: 235, A: 255},
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette.
// Values past the palette's end clamp to its last entry; an empty
// palette falls back to the default water/growth pair.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		palette = defaultPalette
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
