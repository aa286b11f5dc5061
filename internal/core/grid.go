package core

import (
	"errors"
	"fmt"
)

// ErrOutOfRange reports coordinates outside the grid.
var ErrOutOfRange = errors.New("coordinates out of range")

// ErrOccupied reports an attempt to mark a cell that is already occupied.
var ErrOccupied = errors.New("cell already occupied")

// Grid stores a square 2D occupancy map in row-major order. Cells start
// unoccupied and never revert once marked.
type Grid struct {
	size int
	data []uint8
}

// NewGrid allocates an unoccupied grid with the given side length.
func NewGrid(size int) *Grid {
	if size <= 0 {
		size = 1
	}
	return &Grid{size: size, data: make([]uint8, size*size)}
}

// Size returns the grid side length.
func (g *Grid) Size() int { return g.size }

// Cells exposes the backing slice so renderers can read values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.size + x }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.size && y >= 0 && y < g.size
}

// Occupied reports whether the cell at (x, y) is occupied.
func (g *Grid) Occupied(x, y int) (bool, error) {
	if !g.InBounds(x, y) {
		return false, fmt.Errorf("occupied(%d,%d): %w", x, y, ErrOutOfRange)
	}
	return g.data[g.Index(x, y)] != 0, nil
}

// Mark sets the cell at (x, y) occupied. The caller must only mark
// unoccupied in-bounds cells.
func (g *Grid) Mark(x, y int) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("mark(%d,%d): %w", x, y, ErrOutOfRange)
	}
	idx := g.Index(x, y)
	if g.data[idx] != 0 {
		return fmt.Errorf("mark(%d,%d): %w", x, y, ErrOccupied)
	}
	g.data[idx] = 1
	return nil
}

// NeighborhoodCount counts occupied cells in the square window
// [x-radius, x+radius] x [y-radius, y+radius] clipped to the grid.
func (g *Grid) NeighborhoodCount(x, y, radius int) int {
	if radius < 0 {
		radius = 0
	}
	x0, x1 := x-radius, x+radius
	y0, y1 := y-radius, y+radius
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 >= g.size {
		x1 = g.size - 1
	}
	if y1 >= g.size {
		y1 = g.size - 1
	}
	count := 0
	for cy := y0; cy <= y1; cy++ {
		row := cy * g.size
		for cx := x0; cx <= x1; cx++ {
			if g.data[row+cx] != 0 {
				count++
			}
		}
	}
	return count
}

// Clear resets every cell to unoccupied.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
