package venturi

import "context"

// System orchestrates the three stateless controllers in their fixed
// data-dependency order: EEG features feed cognitive load, load feeds
// rendering, rendering feeds cloud offload.
type System struct {
	Cognitive Cognitive
	Rendering Rendering
	Cloud     Cloud
}

// NewSystem returns a ready pipeline.
func NewSystem() *System {
	return &System{}
}

// Balance runs the pipeline once and returns the cognitive load, the
// rendering rate and the cloud-offload throughput.
func (s *System) Balance(ctx context.Context, eeg, render, cloud map[string]float64) (load, renderRate, offload float64) {
	load = s.Cognitive.Calculate(eeg)
	renderRate = s.Rendering.Adjust(render, load)
	offload = s.Cloud.Optimize(ctx, cloud, renderRate)
	return load, renderRate, offload
}
