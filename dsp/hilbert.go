package dsp

import (
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Analytic returns the analytic signal of sig via the FFT method: the
// negative-frequency half of the spectrum is zeroed, the positive half
// doubled, and the result transformed back.
func Analytic(sig []float64) []complex128 {
	n := len(sig)
	if n == 0 {
		return nil
	}
	data := make([]complex128, n)
	for i, v := range sig {
		data[i] = complex(v, 0)
	}
	ft := fourier.NewCmplxFFT(n)
	coefs := ft.Coefficients(nil, data)

	// Single-sided spectrum multiplier: DC (and Nyquist for even n) stay,
	// positive frequencies double, negative frequencies vanish.
	half := n / 2
	for i := 1; i < n; i++ {
		switch {
		case n%2 == 0 && i == half:
			// Nyquist bin unchanged
		case i < half || (n%2 == 1 && i <= half):
			coefs[i] *= 2
		default:
			coefs[i] = 0
		}
	}

	out := ft.Sequence(nil, coefs)
	scale := complex(1/float64(n), 0)
	for i := range out {
		out[i] *= scale
	}
	return out
}

// InstantaneousPhase returns the phase angle of the analytic signal,
// sample by sample, in (-pi, pi].
func InstantaneousPhase(sig []float64) []float64 {
	analytic := Analytic(sig)
	phase := make([]float64, len(analytic))
	for i, c := range analytic {
		phase[i] = cmplx.Phase(c)
	}
	return phase
}
