package venturi

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchControllerEmergencyReset(t *testing.T) {
	c := NewBatchController(8, 128, 100, 50)
	// Error rate above 0.2 overrides the grow decision made in the same call.
	assert.Equal(t, 8, c.Adjust(10, 5, 0.25))
}

func TestBatchControllerGrowth(t *testing.T) {
	c := NewBatchController(8, 128, 100, 50)
	for i := 0; i < 20; i++ {
		size := c.Adjust(10, 5, 0)
		assert.GreaterOrEqual(t, size, 8)
		assert.LessOrEqual(t, size, 128)
	}
	assert.Equal(t, 128, c.BatchSize())
}

func TestBatchControllerThrottleOnQueuePressure(t *testing.T) {
	c := NewBatchController(8, 128, 100, 50)
	for i := 0; i < 10; i++ {
		c.Adjust(10, 5, 0)
	}
	grown := c.BatchSize()
	shrunk := c.Adjust(10, 90, 0)
	assert.Less(t, shrunk, grown)
}

func TestBatchControllerBoundsUnderRandomTelemetry(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	c := NewBatchController(8, 128, 100, 50)
	for i := 0; i < 5000; i++ {
		size := c.Adjust(rng.Float64()*200, rng.Intn(150), rng.Float64())
		require.GreaterOrEqual(t, size, 8)
		require.LessOrEqual(t, size, 128)
	}
}

func TestBatcherBoundsAndHistory(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	b := NewBatcher(4, 64, 20)
	for i := 0; i < 2500; i++ {
		size := b.Update(rng.Float64() * 40)
		require.GreaterOrEqual(t, size, 4)
		require.LessOrEqual(t, size, 64)
	}
	// History is bounded by the ring capacity, not the call count.
	history := b.History()
	assert.Len(t, history, historyCapacity)
	assert.Equal(t, b.BatchSize(), history[len(history)-1])
}

func TestSchedulerPartitioning(t *testing.T) {
	s := NewScheduler(1000)
	data := make([]float64, 99)
	batches := s.OptimizeFlow(data)

	// 1000/(99+1) = 10 per batch.
	require.Len(t, batches, 10)
	var total int
	for _, batch := range batches {
		total += len(batch)
		assert.LessOrEqual(t, len(batch), 10)
	}
	assert.Equal(t, len(data), total)
}

func TestSchedulerMinimumBatchSize(t *testing.T) {
	s := NewScheduler(1)
	batches := s.OptimizeFlow(make([]float64, 5))
	assert.Len(t, batches, 5)
}

func TestSchedulerEmptyInput(t *testing.T) {
	assert.Nil(t, NewScheduler(100).OptimizeFlow(nil))
}

func TestCognitiveLoadBounds(t *testing.T) {
	var c Cognitive
	cases := []map[string]float64{
		nil,
		{},
		{"focusvelocity": 1e6, "stresspressure": 1e6},
		{"focusvelocity": -1e6, "stresspressure": -1e6},
		{"focusvelocity": 0.5, "stresspressure": 0.2, "neuroplasticity": 0.8},
		{"focusvelocity": 3, "neuroplasticity": -5},
	}
	for _, features := range cases {
		load := c.Calculate(features)
		assert.GreaterOrEqual(t, load, 0.0)
		assert.LessOrEqual(t, load, 1.0)
	}
}

func TestCognitiveNeuroplasticityFloor(t *testing.T) {
	var c Cognitive
	// neuroplasticity 0 is floored at 0.1, not a division blow-up.
	load := c.Calculate(map[string]float64{"focusvelocity": 0.1})
	assert.False(t, math.IsInf(load, 1))
	assert.InDelta(t, 0.01/(2*9.81*0.1), load, 1e-12)
}

func TestRenderingThresholdScaling(t *testing.T) {
	var r Rendering
	features := map[string]float64{
		"framerate":        60,
		"hardwarecapacity": 100,
		"renderdemand":     0.5,
	}
	base := r.Adjust(features, 0.0)
	reduced := r.Adjust(features, 0.81)
	assert.InDelta(t, 0.6*base, reduced, 1e-12)

	// At the threshold itself the cut does not fire.
	assert.Equal(t, base, r.Adjust(features, 0.8))
}

func TestRenderingMissingCapacityDefaults(t *testing.T) {
	var r Rendering
	out := r.Adjust(map[string]float64{"framerate": 2}, 0)
	assert.Equal(t, 4.0, out)
}

func TestCloudOffloadFormula(t *testing.T) {
	var c Cloud
	features := map[string]float64{
		"bandwidth":       100,
		"latency":         4,
		"datasensitivity": 0.5,
	}
	out := c.Optimize(context.Background(), features, 2)
	assert.InDelta(t, 100.0/5*0.5+2, out, 1e-12)
}

func TestCloudMissingFeatures(t *testing.T) {
	var c Cloud
	assert.Equal(t, 1.5, c.Optimize(context.Background(), nil, 1.5))
}

func TestSystemBalancePipeline(t *testing.T) {
	sys := NewSystem()
	eeg := map[string]float64{"focusvelocity": 2, "stresspressure": 3, "neuroplasticity": 0.5}
	render := map[string]float64{"framerate": 30, "hardwarecapacity": 50, "renderdemand": 1}
	cloud := map[string]float64{"bandwidth": 50, "latency": 9, "datasensitivity": 1}

	load, renderRate, offload := sys.Balance(context.Background(), eeg, render, cloud)

	wantLoad := sys.Cognitive.Calculate(eeg)
	wantRender := sys.Rendering.Adjust(render, wantLoad)
	wantOffload := sys.Cloud.Optimize(context.Background(), cloud, wantRender)
	assert.Equal(t, wantLoad, load)
	assert.Equal(t, wantRender, renderRate)
	assert.Equal(t, wantOffload, offload)
}

func TestSessionOwnsControllerState(t *testing.T) {
	a := NewSession(8, 128, 100, 50, nil)
	b := NewSession(8, 128, 100, 50, nil)
	require.NotEqual(t, a.ID, b.ID)

	a.Observe(10, 5, 0)
	assert.Greater(t, a.Controller.BatchSize(), b.Controller.BatchSize())
}

func TestRingEviction(t *testing.T) {
	r := newIntRing(3)
	for i := 1; i <= 5; i++ {
		r.push(i)
	}
	assert.Equal(t, []int{3, 4, 5}, r.values())
}
