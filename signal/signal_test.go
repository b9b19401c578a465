package signal

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestBandsOrderAndEdges(t *testing.T) {
	bands := Bands()
	require.Len(t, bands, 5)

	names := []string{"delta", "theta", "alpha", "beta", "gamma"}
	lows := []float64{1, 4, 8, 13, 30}
	highs := []float64{4, 8, 13, 30, 100}
	for i, b := range bands {
		assert.Equal(t, names[i], b.Name)
		assert.Equal(t, lows[i], b.Low)
		assert.Equal(t, highs[i], b.High)
	}
}

func TestZScoreNormalizes(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	sig := make([]float64, 2048)
	for i := range sig {
		sig[i] = 3 + 2*rng.NormFloat64()
	}

	z := ZScore(sig)
	mean, std := stat.MeanStdDev(z, nil)
	assert.InDelta(t, 0, mean, 1e-9)
	assert.InDelta(t, 1, std, 1e-9)
}

func TestZScoreConstantSignal(t *testing.T) {
	z := ZScore([]float64{5, 5, 5, 5})
	for _, v := range z {
		assert.Equal(t, 0.0, v)
	}
}

func TestSinusoidPower(t *testing.T) {
	// Mean power of a unit sinusoid over whole periods is 1/2.
	sig := Sinusoid(10, 1, 256, 1024)
	assert.InDelta(t, 0.5, Power(sig), 1e-3)
}

func TestComposeSums(t *testing.T) {
	sum := Compose([]float64{1, 2}, []float64{3, 4})
	assert.Equal(t, []float64{4, 6}, sum)
}

func TestAcquisition(t *testing.T) {
	a := Acquisition{SamplingRate: DefaultSamplingRate, Channels: 8, Samples: 1024}
	assert.InDelta(t, 4.0, a.Duration(), 1e-12)
	assert.Equal(t, 128.0, a.Nyquist())
	assert.Equal(t, 0.0, Acquisition{}.Duration())
}

func TestAddGaussianNoiseDeterministic(t *testing.T) {
	base := Sinusoid(2, 1, 256, 64)
	a := AddGaussianNoise(base, 0.1, rand.New(rand.NewSource(42)))
	b := AddGaussianNoise(base, 0.1, rand.New(rand.NewSource(42)))
	assert.Equal(t, a, b)
}
