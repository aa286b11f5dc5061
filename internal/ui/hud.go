//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"coral-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

type statsProvider interface {
	StepCount() int
	TipCount() int
}

const (
	hudRowHeight  = 18
	hudPadding    = 8
	hudButtonSize = 12
)

type hudControlState struct {
	control core.ParameterControl
	value   string
	minus   image.Rectangle
	plus    image.Rectangle
}

// HUD renders the parameter panel to the right of the simulation view
// and applies click-to-adjust steppers for live tunables.
type HUD struct {
	sim         core.Sim
	width       int
	panel       *ebiten.Image
	lastHeight  int
	snapshot    core.ParameterSnapshot
	controls    []hudControlState
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
	offsetX     int
	pixel       *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width.
// Width 0 disables the panel.
func NewHUD(sim core.Sim, width int) *HUD {
	if width <= 0 {
		return nil
	}
	h := &HUD{sim: sim, width: width}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			h.controls = append(h.controls, hudControlState{control: ctrl, value: "--"})
		}
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

// Update refreshes the cached snapshot and handles stepper clicks. The
// offset is the panel's x position on screen.
func (h *HUD) Update(offsetX int) {
	if h == nil {
		return
	}
	h.offsetX = offsetX
	if provider, ok := h.sim.(parameterProvider); ok {
		h.snapshot = provider.Parameters()
	}
	h.refreshControlValues()
	h.handleClicks()
}

func (h *HUD) refreshControlValues() {
	if len(h.controls) == 0 {
		return
	}
	values := map[string]string{}
	for _, group := range h.snapshot.Groups {
		for _, param := range group.Params {
			values[param.Key] = param.Value
		}
	}
	for i := range h.controls {
		if v, ok := values[h.controls[i].control.Key]; ok {
			h.controls[i].value = v
		} else {
			h.controls[i].value = "--"
		}
	}
}

func (h *HUD) handleClicks() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	local := image.Pt(mx-h.offsetX, my)
	for i := range h.controls {
		state := &h.controls[i]
		switch {
		case local.In(state.minus):
			h.adjust(state, -1)
		case local.In(state.plus):
			h.adjust(state, 1)
		}
	}
}

func (h *HUD) adjust(state *hudControlState, dir float64) {
	ctrl := state.control
	switch ctrl.Type {
	case core.ParamTypeInt:
		if h.intSetter == nil {
			return
		}
		current, err := strconv.Atoi(state.value)
		if err != nil {
			return
		}
		step := int(ctrl.Step)
		if step == 0 {
			step = 1
		}
		next := current + int(dir)*step
		if ctrl.HasMin && float64(next) < ctrl.Min {
			next = int(ctrl.Min)
		}
		if ctrl.HasMax && float64(next) > ctrl.Max {
			next = int(ctrl.Max)
		}
		h.intSetter.SetIntParameter(ctrl.Key, next)
	case core.ParamTypeFloat:
		if h.floatSetter == nil {
			return
		}
		current, err := strconv.ParseFloat(state.value, 64)
		if err != nil {
			return
		}
		next := current + dir*ctrl.Step
		if ctrl.HasMin && next < ctrl.Min {
			next = ctrl.Min
		}
		if ctrl.HasMax && next > ctrl.Max {
			next = ctrl.Max
		}
		h.floatSetter.SetFloatParameter(ctrl.Key, next)
	}
}

// Draw paints the HUD panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := hudPadding + 12
	text.Draw(h.panel, h.sim.Name(), face, hudPadding, y, color.White)
	y += hudRowHeight

	if stats, ok := h.sim.(statsProvider); ok {
		line := fmt.Sprintf("step %d  tips %d", stats.StepCount(), stats.TipCount())
		text.Draw(h.panel, line, face, hudPadding, y, color.RGBA{R: 180, G: 180, B: 190, A: 255})
		y += hudRowHeight
	}
	y += hudRowHeight / 2

	for i := range h.controls {
		state := &h.controls[i]
		label := fmt.Sprintf("%s: %s", state.control.Label, state.value)
		text.Draw(h.panel, label, face, hudPadding, y, color.White)

		top := y - hudButtonSize + 2
		state.minus = image.Rect(h.width-2*hudButtonSize-hudPadding-4, top,
			h.width-hudButtonSize-hudPadding-4, top+hudButtonSize)
		state.plus = image.Rect(h.width-hudButtonSize-hudPadding, top,
			h.width-hudPadding, top+hudButtonSize)
		h.drawButton(state.minus, "-")
		h.drawButton(state.plus, "+")

		y += hudRowHeight
	}
	y += hudRowHeight / 2
	text.Draw(h.panel, "space pause  n step", face, hudPadding, y, color.RGBA{R: 120, G: 120, B: 130, A: 255})
	y += hudRowHeight
	text.Draw(h.panel, "r reset  s reseed  b bias", face, hudPadding, y, color.RGBA{R: 120, G: 120, B: 130, A: 255})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawButton(r image.Rectangle, glyph string) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.Scale(0.25, 0.25, 0.3, 1)
	h.panel.DrawImage(h.pixel, op)
	text.Draw(h.panel, glyph, basicfont.Face7x13, r.Min.X+3, r.Max.Y-2, color.White)
}
