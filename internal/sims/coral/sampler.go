package coral

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// softmaxDistribution converts scores into a categorical distribution
// using the numerically stable form exp((s - max) * temperature). The
// result sums to 1; higher temperatures sharpen the distribution toward
// the best score. At least one score is required.
func softmaxDistribution(scores []float64, temperature float64, out []float64) []float64 {
	out = out[:0]
	m := floats.Max(scores)
	for _, s := range scores {
		out = append(out, math.Exp((s-m)*temperature))
	}
	floats.Scale(1/floats.Sum(out), out)
	return out
}

// sampleCandidate draws one candidate index according to the softmax
// distribution over the candidate scores, using the engine's seeded
// source. Sampling from an empty set is a protocol violation.
func (w *World) sampleCandidate(cands []candidate) candidate {
	if len(cands) == 0 {
		panic("coral: sampled from empty candidate set")
	}
	w.scoreBuf = w.scoreBuf[:0]
	for _, c := range cands {
		w.scoreBuf = append(w.scoreBuf, c.score)
	}
	w.probBuf = softmaxDistribution(w.scoreBuf, w.cfg.Params.Temperature, w.probBuf)
	weighted := sampleuv.NewWeighted(w.probBuf, w.rng.Src())
	idx, ok := weighted.Take()
	if !ok {
		panic("coral: weighted draw failed")
	}
	return cands[idx]
}
