package coral

import "math"

// Vec2 is a 2D direction in grid space.
type Vec2 struct {
	X, Y float64
}

// Field holds the normalized directional biases for a run. It is built
// once from the configured raw vectors and never changes afterwards.
type Field struct {
	Light Vec2
	Flow  Vec2
}

// NewField normalizes the raw light and flow vectors. A zero raw vector
// normalizes to the zero vector, which makes that bias term vanish
// rather than failing the run.
func NewField(p Params) Field {
	return Field{
		Light: normalize(Vec2{X: p.LightDirX, Y: p.LightDirY}),
		Flow:  normalize(Vec2{X: p.FlowDirX, Y: p.FlowDirY}),
	}
}

// Dot returns the dot product with w.
func (v Vec2) Dot(w Vec2) float64 { return v.X*w.X + v.Y*w.Y }

func normalize(v Vec2) Vec2 {
	mag := math.Hypot(v.X, v.Y)
	if mag == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / mag, Y: v.Y / mag}
}
