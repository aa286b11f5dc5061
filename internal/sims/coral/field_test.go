package coral

import (
	"math"
	"testing"
)

func TestFieldNormalizesRawVectors(t *testing.T) {
	p := Params{LightDirX: 0, LightDirY: -3, FlowDirX: 4, FlowDirY: 3}
	f := NewField(p)

	if f.Light.X != 0 || f.Light.Y != -1 {
		t.Fatalf("light = (%g,%g), want (0,-1)", f.Light.X, f.Light.Y)
	}
	if math.Abs(f.Flow.X-0.8) > 1e-12 || math.Abs(f.Flow.Y-0.6) > 1e-12 {
		t.Fatalf("flow = (%g,%g), want (0.8,0.6)", f.Flow.X, f.Flow.Y)
	}
	if mag := math.Hypot(f.Flow.X, f.Flow.Y); math.Abs(mag-1) > 1e-12 {
		t.Fatalf("flow magnitude %g, want 1", mag)
	}
}

// A zero raw vector is deliberately normalized to the zero vector so
// the corresponding bias term vanishes instead of failing the run.
func TestFieldZeroVectorDisablesBias(t *testing.T) {
	f := NewField(Params{})
	if (f.Light != Vec2{}) || (f.Flow != Vec2{}) {
		t.Fatalf("zero raw vectors must normalize to zero, got light=%v flow=%v", f.Light, f.Flow)
	}
	if f.Light.Dot(Vec2{X: 1, Y: 1}) != 0 {
		t.Fatal("zero light vector must contribute nothing to scores")
	}
}

func TestUnitMovesHaveUnitLength(t *testing.T) {
	for i, u := range unitMoves {
		if mag := math.Hypot(u.X, u.Y); math.Abs(mag-1) > 1e-12 {
			t.Fatalf("move %d normalized to magnitude %g", i, mag)
		}
	}
}
