package venturi

const (
	// overloadThreshold is the cognitive load above which rendering
	// throughput is cut. The cut is a hard step, not a continuous ramp.
	overloadThreshold = 0.8
	overloadScale     = 0.6
	demandWeight      = 0.7

	// defaultHardwareCapacity keeps the throughput term finite when the
	// hardwarecapacity feature is absent.
	defaultHardwareCapacity = 1.0
)

// Rendering adapts rendering throughput to hardware and learner state. Each
// call is a pure function of its inputs.
type Rendering struct{}

// Adjust computes framerate²/hardwarecapacity + 0.7·renderdemand, then
// scales the result to 60% when the learner is cognitively overloaded.
// Recognized feature keys: framerate, hardwarecapacity, renderdemand.
func (Rendering) Adjust(features map[string]float64, cognitiveLoad float64) float64 {
	framerate := features["framerate"]
	capacity := features["hardwarecapacity"]
	if capacity == 0 {
		capacity = defaultHardwareCapacity
	}
	demand := features["renderdemand"]

	throughput := framerate*framerate/capacity + demandWeight*demand
	if cognitiveLoad > overloadThreshold {
		throughput *= overloadScale
	}
	return throughput
}
