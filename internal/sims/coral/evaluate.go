package coral

import "math"

// moves are the 8 compass and diagonal offsets a tip may grow along.
var moves = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// unitMoves caches each offset normalized to length 1 (diagonals scale
// by 1/sqrt2).
var unitMoves = buildUnitMoves()

func buildUnitMoves() [8]Vec2 {
	var out [8]Vec2
	for i, m := range moves {
		norm := math.Hypot(float64(m[0]), float64(m[1]))
		out[i] = Vec2{X: float64(m[0]) / norm, Y: float64(m[1]) / norm}
	}
	return out
}

// candidate is a legal next cell for a tip together with its score.
type candidate struct {
	x, y  int
	score float64
}

// evaluateCandidates collects the legal, scored moves for the tip at
// (x, y) into buf. A candidate must land strictly inside the min_dist
// margin (so crowding windows stay in-bounds), on an unoccupied cell,
// and in a neighborhood no denser than crowding_max. An empty result is
// a normal growth-halt condition for the tip, not an error.
func (w *World) evaluateCandidates(x, y int, buf []candidate) []candidate {
	buf = buf[:0]
	p := w.cfg.Params
	lo := p.MinDist
	hi := w.size - 1 - p.MinDist
	for i, m := range moves {
		nx, ny := x+m[0], y+m[1]
		if nx < lo || nx > hi || ny < lo || ny > hi {
			continue
		}
		occ, err := w.grid.Occupied(nx, ny)
		if err != nil || occ {
			continue
		}
		if w.grid.NeighborhoodCount(nx, ny, p.MinDist) > p.CrowdingMax {
			continue
		}
		u := unitMoves[i]
		alignLight := u.Dot(w.field.Light)
		alignFlow := u.Dot(w.field.Flow)
		lateral := 1 - math.Abs(alignLight)
		noise := w.rng.Float64()
		score := p.LightWeight*alignLight +
			p.FlowWeight*alignFlow +
			p.LateralWeight*lateral +
			p.NoiseWeight*noise
		buf = append(buf, candidate{x: nx, y: ny, score: score})
	}
	return buf
}
