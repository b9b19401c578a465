package dsp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sine(freq, fs float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * freq * float64(i) / fs)
	}
	return out
}

// steadyPower skips the filter transient before measuring.
func steadyPower(sig []float64, skip int) float64 {
	var sum float64
	for _, v := range sig[skip:] {
		sum += v * v
	}
	return sum / float64(len(sig)-skip)
}

func TestBandPassKeepsInBandTone(t *testing.T) {
	bp, err := NewBandPass(8, 13, 256)
	require.NoError(t, err)

	in := sine(10, 256, 2048)
	out := bp.Apply(in)
	require.Len(t, out, len(in))
	assert.Greater(t, steadyPower(out, 256), 0.25*steadyPower(in, 256))
}

func TestBandPassRejectsOutOfBandTone(t *testing.T) {
	bp, err := NewBandPass(30, 100, 256)
	require.NoError(t, err)

	in := sine(5, 256, 2048)
	out := bp.Apply(in)
	assert.Less(t, steadyPower(out, 256), 0.01*steadyPower(in, 256))
}

func TestBandPassNyquistClipping(t *testing.T) {
	bp, err := NewBandPass(30, 100, 128)
	require.NoError(t, err)
	low, high := bp.Edges()
	assert.Equal(t, 30.0, low)
	assert.InDelta(t, 0.99*64, high, 1e-9)
}

func TestBandPassEmptyBandAfterClipping(t *testing.T) {
	_, err := NewBandPass(200, 300, 256)
	require.Error(t, err)
}

func TestBandPassInvalidSamplingRate(t *testing.T) {
	_, err := NewBandPass(8, 13, 0)
	require.Error(t, err)
}

func TestApplyIsStateless(t *testing.T) {
	bp, err := NewBandPass(8, 13, 256)
	require.NoError(t, err)

	in := sine(10, 256, 512)
	first := bp.Apply(in)
	second := bp.Apply(in)
	assert.Equal(t, first, second)
}
