package signal

import (
	"math"
	"math/rand"
)

// Sinusoid returns n samples of amplitude*sin(2*pi*freq*t) sampled at fs Hz.
func Sinusoid(freq, amplitude, fs float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / fs
		out[i] = amplitude * math.Sin(2*math.Pi*freq*t)
	}
	return out
}

// Compose sums the given equal-length signals sample by sample.
func Compose(sigs ...[]float64) []float64 {
	if len(sigs) == 0 {
		return nil
	}
	out := make([]float64, len(sigs[0]))
	for _, s := range sigs {
		for i, v := range s {
			out[i] += v
		}
	}
	return out
}

// AddGaussianNoise returns sig plus zero-mean Gaussian noise with the given
// standard deviation, drawn from rng so fixtures stay deterministic.
func AddGaussianNoise(sig []float64, stddev float64, rng *rand.Rand) []float64 {
	out := make([]float64, len(sig))
	for i, v := range sig {
		out[i] = v + rng.NormFloat64()*stddev
	}
	return out
}
