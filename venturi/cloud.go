package venturi

import "context"

// Cloud sizes the cloud-offload throughput. Each call is a pure function of
// its inputs.
type Cloud struct{}

// Optimize computes bandwidth/(latency+1)·datasensitivity + renderQuality.
// The context is accepted for shape parity with the eventual real offload
// request; no call suspends today. Recognized feature keys: bandwidth,
// latency, datasensitivity.
func (Cloud) Optimize(_ context.Context, features map[string]float64, renderQuality float64) float64 {
	bandwidth := features["bandwidth"]
	latency := features["latency"]
	sensitivity := features["datasensitivity"]
	return bandwidth/(latency+1)*sensitivity + renderQuality
}
