//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"coral-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type biasProvider interface {
	BiasVectors() (lightX, lightY, flowX, flowY float64)
}

// Overlay draws optional debugging visuals on top of the base
// simulation view: arrows for the light and flow bias directions.
type Overlay struct {
	sim      core.Sim
	scale    int
	showBias bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{sim: sim, scale: scale}
}

// Update handles overlay key toggles.
func (o *Overlay) Update() {
	if o == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		o.showBias = !o.showBias
	}
}

// Draw paints the enabled overlay layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil || !o.showBias {
		return
	}
	provider, ok := o.sim.(biasProvider)
	if !ok {
		return
	}
	lx, ly, fx, fy := provider.BiasVectors()
	size := o.sim.Size()
	cx := float64(size.W*o.scale) / 2
	cy := float64(size.H*o.scale) / 2
	span := float64(min(size.W, size.H)*o.scale) * 0.2

	drawArrow(screen, cx, cy, lx, ly, span, color.RGBA{R: 255, G: 240, B: 120, A: 255})
	drawArrow(screen, cx, cy, fx, fy, span, color.RGBA{R: 120, G: 200, B: 255, A: 255})
}

// drawArrow renders a direction vector from (cx, cy). Zero vectors
// (disabled bias terms) draw nothing.
func drawArrow(screen *ebiten.Image, cx, cy, dx, dy, span float64, col color.Color) {
	if dx == 0 && dy == 0 {
		return
	}
	tx := cx + dx*span
	ty := cy + dy*span
	vector.StrokeLine(screen, float32(cx), float32(cy), float32(tx), float32(ty), 2, col, true)

	// Arrowhead: two short strokes angled back from the tip.
	ang := math.Atan2(dy, dx)
	const headLen = 8.0
	for _, off := range []float64{math.Pi * 5 / 6, -math.Pi * 5 / 6} {
		hx := tx + math.Cos(ang+off)*headLen
		hy := ty + math.Sin(ang+off)*headLen
		vector.StrokeLine(screen, float32(tx), float32(ty), float32(hx), float32(hy), 2, col, true)
	}
}
