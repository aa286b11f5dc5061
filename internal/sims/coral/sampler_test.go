package coral

import (
	"math"
	"testing"
)

func TestSoftmaxSumsToOne(t *testing.T) {
	scores := []float64{-1.5, 0.2, 0.9, 3.1}
	for _, temp := range []float64{0.001, 0.5, 1, 4, 32} {
		probs := softmaxDistribution(scores, temp, nil)
		sum := 0.0
		for _, p := range probs {
			if p < 0 {
				t.Fatalf("temp %g: negative probability %g", temp, p)
			}
			sum += p
		}
		if math.Abs(sum-1) > 1e-12 {
			t.Fatalf("temp %g: probabilities sum to %g", temp, sum)
		}
	}
}

func TestSoftmaxSharpensWithTemperature(t *testing.T) {
	scores := []float64{0.1, 0.4, 1.2}
	best := 2
	prev := 0.0
	for _, temp := range []float64{0.5, 1, 2, 4, 8, 16} {
		probs := softmaxDistribution(scores, temp, nil)
		if probs[best] < prev {
			t.Fatalf("best-candidate probability fell from %g to %g at temp %g", prev, probs[best], temp)
		}
		for i, p := range probs {
			if i != best && p > probs[best] {
				t.Fatalf("temp %g: candidate %d outranks the best score", temp, i)
			}
		}
		prev = probs[best]
	}
}

func TestSoftmaxApproachesUniformAtLowTemperature(t *testing.T) {
	scores := []float64{-2, 0, 5}
	probs := softmaxDistribution(scores, 1e-9, nil)
	for _, p := range probs {
		if math.Abs(p-1.0/3.0) > 1e-6 {
			t.Fatalf("expected near-uniform distribution, got %v", probs)
		}
	}
}

func TestSoftmaxStableUnderLargeScores(t *testing.T) {
	scores := []float64{1e8, 1e8 + 1, 1e8 - 3}
	probs := softmaxDistribution(scores, 1, nil)
	for _, p := range probs {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			t.Fatalf("softmax not numerically stable: %v", probs)
		}
	}
}

func TestSampleCandidateFavorsHighScores(t *testing.T) {
	w := New(64)
	w.cfg.Params.Temperature = 8

	cands := []candidate{
		{x: 1, y: 1, score: 0},
		{x: 2, y: 2, score: 3},
	}
	wins := 0
	const draws = 2000
	for i := 0; i < draws; i++ {
		if c := w.sampleCandidate(cands); c.x == 2 {
			wins++
		}
	}
	// exp(3*8) dwarfs exp(0); essentially every draw picks the second.
	if wins < draws*99/100 {
		t.Fatalf("high-score candidate won only %d of %d draws", wins, draws)
	}
}

func TestSampleCandidateEmptySetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when sampling from an empty candidate set")
		}
	}()
	w := New(64)
	w.sampleCandidate(nil)
}
