// Package dsp provides the signal-decomposition capabilities behind the
// impact estimator: Daubechies wavelet decomposition, Butterworth band-pass
// filtering and the Hilbert analytic signal. Each capability is an explicit
// value constructed up front, so a degraded mode is a visible configuration
// choice rather than a runtime surprise.
package dsp

import (
	"fmt"
	"math"
)

// Decomposer turns a signal into one coefficient array per decomposition
// level. Implementations never fail at call time; construction is where
// capability is decided.
type Decomposer interface {
	Decompose(sig []float64) [][]float64
}

// daubechies scaling (low-pass) coefficients, ordered h0..hL-1.
var daubechiesFilters = map[string][]float64{
	"db1": {
		0.7071067811865476, 0.7071067811865476,
	},
	"db2": {
		0.48296291314469025, 0.836516303737469,
		0.22414386804185735, -0.12940952255092145,
	},
	"db4": {
		0.23037781330885523, 0.7148465705525415,
		0.6308807679295904, -0.02798376941698385,
		-0.18703481171888114, 0.030841381835986965,
		0.032883011666982945, -0.010597401784997278,
	},
}

// Daubechies performs a multi-level discrete wavelet decomposition with
// periodic boundary handling, soft-thresholding each coefficient array
// independently at ThresholdFactor times its own peak magnitude.
type Daubechies struct {
	name      string
	level     int
	threshold float64
	lo        []float64
	hi        []float64
}

// NewDaubechies returns a Daubechies decomposer for a named filter
// ("db1", "db2" or "db4"), decomposition level and soft-threshold factor.
func NewDaubechies(name string, level int, thresholdFactor float64) (*Daubechies, error) {
	lo, ok := daubechiesFilters[name]
	if !ok {
		return nil, fmt.Errorf("dsp: unknown wavelet %q", name)
	}
	if level < 1 {
		return nil, fmt.Errorf("dsp: decomposition level must be >= 1, got %d", level)
	}
	// Quadrature mirror: g[n] = (-1)^n h[L-1-n]
	hi := make([]float64, len(lo))
	for n := range lo {
		hi[n] = lo[len(lo)-1-n]
		if n%2 == 1 {
			hi[n] = -hi[n]
		}
	}
	return &Daubechies{
		name:      name,
		level:     level,
		threshold: thresholdFactor,
		lo:        lo,
		hi:        hi,
	}, nil
}

// Name returns the wavelet family name.
func (d *Daubechies) Name() string { return d.name }

// Decompose runs the decomposition pyramid and returns the coefficient
// arrays ordered [cA_n, cD_n, ..., cD_1]. The pyramid stops early if the
// approximation becomes shorter than the filter, so fewer than level+1
// arrays may come back for short signals.
func (d *Daubechies) Decompose(sig []float64) [][]float64 {
	if len(sig) == 0 {
		return [][]float64{{}}
	}
	approx := append([]float64(nil), sig...)
	details := make([][]float64, 0, d.level)
	for l := 0; l < d.level && len(approx) >= len(d.lo); l++ {
		next, detail := d.step(approx)
		details = append(details, detail)
		approx = next
	}

	coefs := make([][]float64, 0, len(details)+1)
	coefs = append(coefs, approx)
	for i := len(details) - 1; i >= 0; i-- {
		coefs = append(coefs, details[i])
	}
	for _, c := range coefs {
		SoftThreshold(c, d.threshold*maxAbs(c))
	}
	return coefs
}

// step performs one analysis level with periodic wrap-around.
func (d *Daubechies) step(a []float64) (approx, detail []float64) {
	n := len(a)
	half := (n + 1) / 2
	approx = make([]float64, half)
	detail = make([]float64, half)
	for k := 0; k < half; k++ {
		var lo, hi float64
		for i, h := range d.lo {
			v := a[(2*k+i)%n]
			lo += h * v
			hi += d.hi[i] * v
		}
		approx[k] = lo
		detail[k] = hi
	}
	return approx, detail
}

// SoftThreshold shrinks coefficients toward zero in place:
// c -> sign(c) * max(|c|-t, 0).
func SoftThreshold(coefs []float64, t float64) {
	if t <= 0 {
		return
	}
	for i, c := range coefs {
		m := math.Abs(c) - t
		if m <= 0 {
			coefs[i] = 0
			continue
		}
		coefs[i] = math.Copysign(m, c)
	}
}

func maxAbs(coefs []float64) float64 {
	var m float64
	for _, c := range coefs {
		if a := math.Abs(c); a > m {
			m = a
		}
	}
	return m
}

// Identity is the degraded-mode decomposer: it returns the input signal
// unchanged as a single coefficient array. Selecting it is the explicit
// equivalent of running without a wavelet capability.
type Identity struct{}

// Decompose wraps sig in a single-element coefficient list.
func (Identity) Decompose(sig []float64) [][]float64 {
	return [][]float64{append([]float64(nil), sig...)}
}
