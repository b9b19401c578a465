package signal

// DefaultSamplingRate is the sampling rate in Hz assumed throughout the
// core when a caller does not specify one.
const DefaultSamplingRate = 256.0

// Acquisition describes one EEG recording window.
type Acquisition struct {
	// Sampling rate in Hz
	SamplingRate float64
	// Number of electrode channels
	Channels int
	// Number of samples per channel
	Samples int
}

// Duration returns the window length in seconds.
func (a Acquisition) Duration() float64 {
	if a.SamplingRate <= 0 {
		return 0
	}
	return float64(a.Samples) / a.SamplingRate
}

// Nyquist returns half the sampling rate.
func (a Acquisition) Nyquist() float64 {
	return a.SamplingRate / 2
}
