// Package signal holds the sample-sequence primitives shared by the
// denoising filter and the neurocognitive impact estimator: the canonical
// EEG frequency bands, normalization helpers and deterministic test-signal
// generators.
package signal

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Band is a half-open frequency interval [Low, High) in Hz.
type Band struct {
	Name string
	Low  float64
	High float64
}

// Bands returns the five canonical EEG bands in declaration order.
// The order is load bearing: the impact estimator pairs wavelet
// coefficient arrays with bands positionally.
func Bands() []Band {
	return []Band{
		{Name: "delta", Low: 1, High: 4},
		{Name: "theta", Low: 4, High: 8},
		{Name: "alpha", Low: 8, High: 13},
		{Name: "beta", Low: 13, High: 30},
		{Name: "gamma", Low: 30, High: 100},
	}
}

// zScoreEpsilon guards the standard-deviation division for constant signals.
const zScoreEpsilon = 1e-10

// ZScore returns a mean-zero unit-variance copy of sig. A constant signal
// maps to all zeros instead of dividing by zero.
func ZScore(sig []float64) []float64 {
	out := make([]float64, len(sig))
	if len(sig) == 0 {
		return out
	}
	mean, std := stat.MeanStdDev(sig, nil)
	if math.IsNaN(std) || std < zScoreEpsilon {
		std = zScoreEpsilon
	}
	for i, v := range sig {
		out[i] = (v - mean) / std
	}
	return out
}

// Power returns the mean squared sample value of sig, 0 for an empty slice.
func Power(sig []float64) float64 {
	if len(sig) == 0 {
		return 0
	}
	var sum float64
	for _, v := range sig {
		sum += v * v
	}
	return sum / float64(len(sig))
}
