// Package kalman implements the adaptive scalar Kalman filter used to
// denoise EEG channels. The process model is static (the state is assumed
// constant between samples); all dynamics enter through the process-noise
// covariance, which self-tunes together with the measurement-noise
// covariance from the observed innovation sequence.
package kalman

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// Default constructor parameters.
const (
	DefaultProcessNoise     = 1.0
	DefaultMeasurementNoise = 1.0
	DefaultAdaptationRate   = 0.01
)

// Adaptation schedule and guard rails.
const (
	adaptationInterval = 100
	adaptationWindow   = 50
	minNoise           = 0.01
	maxNoise           = 10.0
	gainHighWater      = 0.7
	gainLowWater       = 0.3
	processNoiseGrow   = 1.1
	processNoiseShrink = 0.9
)

// AdaptiveFilter is a per-channel scalar Kalman filter with online Q/R
// adaptation. Every FilterSignal call starts from the constructor-configured
// noise parameters; nothing learned on one signal carries over to the next.
// An AdaptiveFilter is not goroutine safe: its state is mutated in place
// during a call.
type AdaptiveFilter struct {
	// configured initial values, restored on every reset
	processNoise     float64
	measurementNoise float64
	adaptationRate   float64

	// per-call state
	estimate    float64
	errCov      float64
	adaptiveQ   float64
	adaptiveR   float64
	innovations []float64
	gains       []float64
}

// New returns a filter with initial process noise q, measurement noise r
// and adaptation rate. All three must be positive; passing zero or negative
// values is an unchecked precondition violation that degrades filtering
// quality rather than failing.
func New(q, r, adaptationRate float64) *AdaptiveFilter {
	return &AdaptiveFilter{
		processNoise:     q,
		measurementNoise: r,
		adaptationRate:   adaptationRate,
	}
}

// NewDefault returns a filter with the default parameters.
func NewDefault() *AdaptiveFilter {
	return New(DefaultProcessNoise, DefaultMeasurementNoise, DefaultAdaptationRate)
}

// reset discards all per-call state and restores the configured noise
// covariances.
func (f *AdaptiveFilter) reset() {
	f.estimate = 0
	f.errCov = 1
	f.adaptiveQ = f.processNoise
	f.adaptiveR = f.measurementNoise
	f.innovations = f.innovations[:0]
	f.gains = f.gains[:0]
}

// FilterSignal denoises sig and returns the filtered signal, always of the
// same length as the input, together with quality metrics comparing the
// original and filtered series.
func (f *AdaptiveFilter) FilterSignal(sig []float64) ([]float64, Metrics) {
	start := time.Now()
	f.reset()

	out := make([]float64, len(sig))
	for i, z := range sig {
		out[i] = f.step(z)
		if i > 0 && i%adaptationInterval == 0 {
			f.adapt()
		}
	}
	return out, computeMetrics(sig, out, time.Since(start))
}

// step runs one predict/update cycle and returns the new estimate.
func (f *AdaptiveFilter) step(measurement float64) float64 {
	// Static process model: the prediction is the previous estimate.
	predictedEstimate := f.estimate
	predictedCov := f.errCov + f.adaptiveQ

	innovation := measurement - predictedEstimate
	innovationCov := predictedCov + f.adaptiveR
	gain := predictedCov / innovationCov

	f.estimate = predictedEstimate + gain*innovation
	f.errCov = (1 - gain) * predictedCov

	f.innovations = append(f.innovations, innovation)
	f.gains = append(f.gains, gain)
	return f.estimate
}

// adapt re-estimates the noise covariances from the trailing innovation and
// gain windows. R follows the innovation variance through an exponential
// blend; Q grows when the filter has been leaning on measurements and
// shrinks when it has been leaning on the model.
func (f *AdaptiveFilter) adapt() {
	if len(f.innovations) < adaptationWindow {
		return
	}
	window := f.innovations[len(f.innovations)-adaptationWindow:]
	innovationVar := stat.Variance(window, nil)
	f.adaptiveR = (1-f.adaptationRate)*f.adaptiveR + f.adaptationRate*innovationVar

	meanGain := stat.Mean(f.gains[len(f.gains)-adaptationWindow:], nil)
	switch {
	case meanGain > gainHighWater:
		f.adaptiveQ *= processNoiseGrow
	case meanGain < gainLowWater:
		f.adaptiveQ *= processNoiseShrink
	}

	f.adaptiveQ = clampNoise(f.adaptiveQ)
	f.adaptiveR = clampNoise(f.adaptiveR)
}

func clampNoise(v float64) float64 {
	if v < minNoise {
		return minNoise
	}
	if v > maxNoise {
		return maxNoise
	}
	return v
}
