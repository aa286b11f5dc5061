// Package coral simulates branching coral growth on a bounded grid.
// Many independent tips advance under competing light and flow biases,
// constrained by local crowding, with stochastic branching and death.
// The externally observable artifact of a run is the ordered history of
// cells in occupation order.
package coral

import (
	"fmt"

	"coral-ca/internal/core"
	rng "coral-ca/pkg/core"
)

func init() {
	core.Register("coral", func(cfg map[string]string) core.Sim {
		return newWorld("coral", fromMapWith(DefaultConfig(), cfg))
	})
	core.Register("coral-classic", func(cfg map[string]string) core.Sim {
		return newWorld("coral-classic", fromMapWith(ClassicConfig(), cfg))
	})
}

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Display cell values exposed through Cells.
const (
	cellWater uint8 = iota
	cellCoral
	cellTip
)

// World runs the growth automaton. It owns the grid and the tip set
// exclusively; History is the only state handed to collaborators.
type World struct {
	name string
	cfg  Config
	size int

	grid    *core.Grid
	field   Field
	rng     *rng.RNG
	tips    []Point
	history []Point

	display  []uint8
	tipMarks []int

	steps   int
	tipPeak int

	candBuf  []candidate
	scoreBuf []float64
	probBuf  []float64
}

// New returns a coral world with default parameters on a size x size grid.
func New(size int) *World {
	cfg := DefaultConfig()
	cfg.GridSize = size
	w, err := NewWithConfig(cfg)
	if err != nil {
		panic(err)
	}
	return w
}

// NewWithConfig returns a world for the provided configuration, or a
// configuration error before any simulation state is touched.
func NewWithConfig(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newWorld("coral", cfg), nil
}

func newWorld(name string, cfg Config) *World {
	size := cfg.GridSize
	w := &World{
		name:    name,
		cfg:     cfg,
		size:    size,
		grid:    core.NewGrid(size),
		field:   NewField(cfg.Params),
		rng:     rng.NewRNG(cfg.Seed),
		display: make([]uint8, size*size),
	}
	w.Reset(cfg.Seed)
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return w.name }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.size, H: w.size} }

// Cells exposes the display buffer: water, coral, and active tips.
func (w *World) Cells() []uint8 { return w.display }

// History returns every occupied cell in occupation order, starting
// with the seed cell.
func (w *World) History() []Point { return w.history }

// Config returns the configuration the world was built with.
func (w *World) Config() Config { return w.cfg }

// TipCount returns the number of active growth fronts.
func (w *World) TipCount() int { return len(w.tips) }

// BiasVectors exposes the normalized light and flow directions for
// overlay rendering.
func (w *World) BiasVectors() (lightX, lightY, flowX, flowY float64) {
	return w.field.Light.X, w.field.Light.Y, w.field.Flow.X, w.field.Flow.Y
}

// TipPeak returns the largest tip-set size seen since the last Reset.
func (w *World) TipPeak() int { return w.tipPeak }

// StepCount returns how many protocol steps have run since Reset.
func (w *World) StepCount() int { return w.steps }

// Done reports whether the run has terminated: either every tip died
// or the step budget is exhausted.
func (w *World) Done() bool {
	return len(w.tips) == 0 || w.steps >= w.cfg.Params.NSteps
}

// seedPoint places the initial tip near the bottom center, clamped
// inside the min_dist margin.
func (w *World) seedPoint() Point {
	p := w.cfg.Params
	lo := p.MinDist
	hi := w.size - 1 - p.MinDist
	clamp := func(v int) int {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	}
	return Point{X: clamp(w.size / 2), Y: clamp(int(float64(w.size) * 0.8))}
}

// Reset rebuilds the initial state deterministically. A zero seed falls
// back to the configured seed.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng.Reseed(effective)
	w.grid.Clear()
	for i := range w.display {
		w.display[i] = cellWater
	}
	w.tipMarks = w.tipMarks[:0]

	start := w.seedPoint()
	if err := w.grid.Mark(start.X, start.Y); err != nil {
		panic(fmt.Sprintf("coral: seeding: %v", err))
	}
	w.tips = append(w.tips[:0], start)
	w.history = append(w.history[:0], start)
	w.display[w.grid.Index(start.X, start.Y)] = cellCoral
	w.steps = 0
	w.tipPeak = 1
	w.syncDisplay()
}

// Step runs one protocol step: pick a random tip, evaluate its
// candidates, sample one, grow, then apply branching and random death.
// A tip with no candidates is boxed in and dies; that is ordinary
// attrition, not an error. Once Done, Step is a no-op.
func (w *World) Step() {
	if w.Done() {
		return
	}
	w.steps++
	p := w.cfg.Params

	i := w.rng.IntN(len(w.tips))
	tip := w.tips[i]

	w.candBuf = w.evaluateCandidates(tip.X, tip.Y, w.candBuf)
	if len(w.candBuf) == 0 {
		w.removeTip(i)
		w.syncDisplay()
		return
	}

	c := w.sampleCandidate(w.candBuf)
	if err := w.grid.Mark(c.x, c.y); err != nil {
		panic(fmt.Sprintf("coral: growth step: %v", err))
	}
	grown := Point{X: c.x, Y: c.y}
	w.history = append(w.history, grown)
	w.display[w.grid.Index(c.x, c.y)] = cellCoral

	// Branch keeps the originating tip in place; otherwise the tip
	// advances onto the new cell.
	if w.rng.Chance(p.BranchRate) && len(w.tips) < p.MaxTips {
		w.tips = append(w.tips, grown)
	} else {
		w.tips[i] = grown
	}
	if len(w.tips) > w.tipPeak {
		w.tipPeak = len(w.tips)
	}

	// Random attrition, independent of the tip grown this step. The
	// last tip is never culled this way.
	if w.rng.Chance(p.DeathRate) && len(w.tips) > 1 {
		w.removeTip(w.rng.IntN(len(w.tips)))
	}
	w.syncDisplay()
}

// Run advances until termination and returns the growth history.
func (w *World) Run() []Point {
	for !w.Done() {
		w.Step()
	}
	return w.history
}

// removeTip deletes tip i; order within the tip set is irrelevant, so
// swap with the last entry.
func (w *World) removeTip(i int) {
	last := len(w.tips) - 1
	w.tips[i] = w.tips[last]
	w.tips = w.tips[:last]
}

// syncDisplay repaints tip highlights over the occupancy layer.
func (w *World) syncDisplay() {
	for _, idx := range w.tipMarks {
		w.display[idx] = cellCoral
	}
	w.tipMarks = w.tipMarks[:0]
	for _, t := range w.tips {
		idx := w.grid.Index(t.X, t.Y)
		w.display[idx] = cellTip
		w.tipMarks = append(w.tipMarks, idx)
	}
}
