// Package venturi holds a family of small, independent controllers that map
// scalar telemetry to control decisions. The naming follows the fluid
// Venturi effect (constriction, acceleration, pressure drop) as a design
// metaphor; none of these controllers simulate fluids. Missing telemetry
// fields default instead of failing: silent degradation is the universal
// policy of this subsystem.
package venturi

// Batch growth/shrink factor shared by the two batch controllers.
const batchGamma = 1.5

// BatchController sizes work batches from latency, queue depth and error
// rate. The three checks in Adjust are evaluated unconditionally in a fixed
// order (throttle, grow, emergency reset), so a high error rate overrides a
// grow decision made in the same call.
type BatchController struct {
	minBatch      int
	maxBatch      int
	maxQueueSize  int
	targetLatency float64
	batchSize     int
}

// NewBatchController returns a controller starting at minBatch. Latency is
// in the same unit the caller reports to Adjust.
func NewBatchController(minBatch, maxBatch, maxQueueSize int, targetLatency float64) *BatchController {
	return &BatchController{
		minBatch:      minBatch,
		maxBatch:      maxBatch,
		maxQueueSize:  maxQueueSize,
		targetLatency: targetLatency,
		batchSize:     minBatch,
	}
}

// Adjust revises the batch size from the latest observations and returns
// it. The result never leaves [minBatch, maxBatch].
func (c *BatchController) Adjust(lastLatency float64, queueSize int, errRate float64) int {
	queue := float64(queueSize)
	capacity := float64(c.maxQueueSize)

	if queue > 0.8*capacity || errRate > 0.1 {
		c.batchSize = maxInt(c.minBatch, int(float64(c.batchSize)/batchGamma))
	}
	if lastLatency < c.targetLatency && queue < 0.5*capacity {
		c.batchSize = minInt(c.maxBatch, int(float64(c.batchSize)*batchGamma))
	}
	if errRate > 0.2 {
		c.batchSize = c.minBatch
	}
	return c.batchSize
}

// BatchSize returns the current batch size.
func (c *BatchController) BatchSize() int { return c.batchSize }

// Batcher is the simpler latency-only variant: geometric growth under the
// latency target, geometric shrink above it. Every update is recorded in a
// fixed-capacity history ring.
type Batcher struct {
	minBatch      int
	maxBatch      int
	gamma         float64
	targetLatency float64
	batchSize     int
	history       *intRing
}

// NewBatcher returns a batcher starting at minBatch with the default gamma.
func NewBatcher(minBatch, maxBatch int, targetLatency float64) *Batcher {
	return &Batcher{
		minBatch:      minBatch,
		maxBatch:      maxBatch,
		gamma:         batchGamma,
		targetLatency: targetLatency,
		batchSize:     minBatch,
		history:       newIntRing(historyCapacity),
	}
}

// Update revises the batch size from the last observed latency, records it
// and returns it.
func (b *Batcher) Update(lastLatency float64) int {
	if lastLatency < b.targetLatency {
		b.batchSize = minInt(b.maxBatch, int(float64(b.batchSize)*b.gamma))
	} else {
		b.batchSize = maxInt(b.minBatch, int(float64(b.batchSize)/b.gamma))
	}
	b.history.push(b.batchSize)
	return b.batchSize
}

// BatchSize returns the current batch size.
func (b *Batcher) BatchSize() int { return b.batchSize }

// History returns the recorded batch sizes, oldest first, capped at the
// ring capacity.
func (b *Batcher) History() []int { return b.history.values() }

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
