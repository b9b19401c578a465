package dsp

import (
	"fmt"
	"math"
)

// biquad is one second-order section, processed in Direct Form II
// Transposed. Coefficients are normalized so a0 == 1.
type biquad struct {
	b0, b1, b2 float64
	a1, a2     float64
}

// process runs one sample through the section, mutating the state pair.
func (s biquad) process(x float64, z *[2]float64) float64 {
	y := s.b0*x + z[0]
	z[0] = s.b1*x - s.a1*y + z[1]
	z[1] = s.b2*x - s.a2*y
	return y
}

// Butterworth pole-pair quality factors for a 4th-order filter.
var butterworthQ4 = [2]float64{0.5411961001461969, 1.3065629648763766}

// BandPass is a 4th-order Butterworth band-pass filter realized as a
// cascade of second-order sections: a 4th-order high-pass at the low edge
// followed by a 4th-order low-pass at the high edge. Apply allocates fresh
// section state, so one BandPass may be shared between goroutines.
type BandPass struct {
	low      float64
	high     float64
	sampling float64
	sections []biquad
}

// NewBandPass designs a band-pass for the half-open band [low, high) Hz at
// the given sampling rate. Edges are clipped to [0, 0.99*Nyquist]; the band
// must keep a positive width after clipping.
func NewBandPass(low, high, samplingRate float64) (*BandPass, error) {
	if samplingRate <= 0 {
		return nil, fmt.Errorf("dsp: sampling rate must be positive, got %v", samplingRate)
	}
	edge := 0.99 * samplingRate / 2
	low = clip(low, 0, edge)
	high = clip(high, 0, edge)
	if high <= low {
		return nil, fmt.Errorf("dsp: empty band [%v, %v) after Nyquist clipping", low, high)
	}

	sections := make([]biquad, 0, 4)
	for _, q := range butterworthQ4 {
		if low > 0 {
			sections = append(sections, highPassSection(low, samplingRate, q))
		}
		sections = append(sections, lowPassSection(high, samplingRate, q))
	}
	return &BandPass{low: low, high: high, sampling: samplingRate, sections: sections}, nil
}

// Edges returns the clipped band edges actually in effect.
func (bp *BandPass) Edges() (low, high float64) { return bp.low, bp.high }

// Apply filters sig and returns a new slice of the same length.
func (bp *BandPass) Apply(sig []float64) []float64 {
	out := make([]float64, len(sig))
	state := make([][2]float64, len(bp.sections))
	for i, x := range sig {
		for j, s := range bp.sections {
			x = s.process(x, &state[j])
		}
		out[i] = x
	}
	return out
}

func lowPassSection(cutoff, fs, q float64) biquad {
	w0 := 2 * math.Pi * cutoff / fs
	cw, sw := math.Cos(w0), math.Sin(w0)
	alpha := sw / (2 * q)
	a0 := 1 + alpha
	return biquad{
		b0: (1 - cw) / 2 / a0,
		b1: (1 - cw) / a0,
		b2: (1 - cw) / 2 / a0,
		a1: -2 * cw / a0,
		a2: (1 - alpha) / a0,
	}
}

func highPassSection(cutoff, fs, q float64) biquad {
	w0 := 2 * math.Pi * cutoff / fs
	cw, sw := math.Cos(w0), math.Sin(w0)
	alpha := sw / (2 * q)
	a0 := 1 + alpha
	return biquad{
		b0: (1 + cw) / 2 / a0,
		b1: -(1 + cw) / a0,
		b2: (1 + cw) / 2 / a0,
		a1: -2 * cw / a0,
		a2: (1 - alpha) / a0,
	}
}

func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
