package core

import (
	"errors"
	"testing"
)

func TestGridOccupiedOutOfRange(t *testing.T) {
	g := NewGrid(8)
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}} {
		if _, err := g.Occupied(c[0], c[1]); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("Occupied(%d,%d): expected ErrOutOfRange, got %v", c[0], c[1], err)
		}
	}
	occ, err := g.Occupied(3, 3)
	if err != nil || occ {
		t.Fatalf("fresh cell: occ=%v err=%v", occ, err)
	}
}

func TestGridMarkIsMonotonic(t *testing.T) {
	g := NewGrid(8)
	if err := g.Mark(2, 5); err != nil {
		t.Fatalf("Mark: %v", err)
	}
	occ, err := g.Occupied(2, 5)
	if err != nil || !occ {
		t.Fatalf("marked cell not occupied: occ=%v err=%v", occ, err)
	}
	if err := g.Mark(2, 5); !errors.Is(err, ErrOccupied) {
		t.Fatalf("double mark: expected ErrOccupied, got %v", err)
	}
	if err := g.Mark(9, 0); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("out-of-range mark: expected ErrOutOfRange, got %v", err)
	}
}

func TestNeighborhoodCountClipsWindow(t *testing.T) {
	g := NewGrid(5)
	mustMark := func(x, y int) {
		if err := g.Mark(x, y); err != nil {
			t.Fatalf("Mark(%d,%d): %v", x, y, err)
		}
	}
	mustMark(0, 0)
	mustMark(1, 0)
	mustMark(4, 4)

	if n := g.NeighborhoodCount(0, 0, 1); n != 2 {
		t.Fatalf("corner window: got %d, want 2", n)
	}
	// (4,4) sits at Chebyshev distance exactly 2 from the center, so
	// the radius-2 window spans the whole grid and sees all three.
	if n := g.NeighborhoodCount(2, 2, 2); n != 3 {
		t.Fatalf("center radius-2 window: got %d, want 3", n)
	}
	if n := g.NeighborhoodCount(2, 2, 1); n != 0 {
		t.Fatalf("center radius-1 window: got %d, want 0", n)
	}
	if n := g.NeighborhoodCount(3, 3, 1); n != 1 {
		t.Fatalf("radius-1 window at (3,3): got %d, want 1", n)
	}
	if n := g.NeighborhoodCount(2, 2, 4); n != 3 {
		t.Fatalf("full-grid window: got %d, want 3", n)
	}
	if n := g.NeighborhoodCount(0, 0, 0); n != 1 {
		t.Fatalf("zero-radius window on occupied cell: got %d, want 1", n)
	}
	if n := g.NeighborhoodCount(3, 3, 0); n != 0 {
		t.Fatalf("zero-radius window on empty cell: got %d, want 0", n)
	}
}

func TestGridClear(t *testing.T) {
	g := NewGrid(4)
	if err := g.Mark(1, 1); err != nil {
		t.Fatalf("Mark: %v", err)
	}
	g.Clear()
	occ, err := g.Occupied(1, 1)
	if err != nil || occ {
		t.Fatalf("cell still occupied after Clear: occ=%v err=%v", occ, err)
	}
	if err := g.Mark(1, 1); err != nil {
		t.Fatalf("Mark after Clear: %v", err)
	}
}
