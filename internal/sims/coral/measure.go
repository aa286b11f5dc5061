package coral

import "math"

// GrowthResult captures telemetry from a completed run, used by the
// parameter sweep and by tuning tests.
type GrowthResult struct {
	// HistoryLen counts every occupied cell, seed included.
	HistoryLen int
	// StepsRun reports how many protocol steps executed before
	// termination.
	StepsRun int
	// TipPeak tracks the largest tip-set size observed.
	TipPeak int
	// Width and Height span the bounding box of the grown structure.
	Width, Height int
	// Reach is the farthest distance grown from the seed along the
	// light direction, never below zero: growth entirely against the
	// light reads as no reach.
	Reach float64
	// Density is occupied cells over bounding-box area.
	Density float64
}

// Measure summarizes the structure grown so far.
func Measure(w *World) GrowthResult {
	hist := w.History()
	if len(hist) == 0 {
		return GrowthResult{}
	}
	seed := hist[0]
	minX, maxX := seed.X, seed.X
	minY, maxY := seed.Y, seed.Y
	reach := 0.0
	light := w.field.Light
	for _, p := range hist {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
		d := float64(p.X-seed.X)*light.X + float64(p.Y-seed.Y)*light.Y
		reach = math.Max(reach, d)
	}
	width := maxX - minX + 1
	height := maxY - minY + 1
	return GrowthResult{
		HistoryLen: len(hist),
		StepsRun:   w.StepCount(),
		TipPeak:    w.TipPeak(),
		Width:      width,
		Height:     height,
		Reach:      reach,
		Density:    float64(len(hist)) / float64(width*height),
	}
}

// RunMeasured builds a world for cfg, runs it to termination, and
// returns the telemetry. Configuration errors surface before any step.
func RunMeasured(cfg Config) (GrowthResult, error) {
	w, err := NewWithConfig(cfg)
	if err != nil {
		return GrowthResult{}, err
	}
	w.Run()
	return Measure(w), nil
}
