package coral

import "image/color"

var coralPalette = []color.RGBA{
	cellWater: {R: 8, G: 24, B: 48, A: 255},
	cellCoral: {R: 240, G: 110, B: 90, A: 255},
	cellTip:   {R: 255, G: 220, B: 170, A: 255},
}

// Palette exposes the color palette used for rendering the coral world.
func (w *World) Palette() []color.RGBA {
	return coralPalette
}
