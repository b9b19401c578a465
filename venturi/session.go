package venturi

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session owns the long-lived mutable controller state for one logical
// stream, e.g. one learner session. It makes the controller lifetime
// explicit: create one Session per stream, keep it for the stream's life,
// and drop it with the stream.
type Session struct {
	ID         uuid.UUID
	Controller *BatchController
	Batcher    *Batcher
	logger     *zap.Logger
}

// NewSession returns a session with its own batch controllers. A nil
// logger disables decision logging.
func NewSession(minBatch, maxBatch, maxQueueSize int, targetLatency float64, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		ID:         uuid.New(),
		Controller: NewBatchController(minBatch, maxBatch, maxQueueSize, targetLatency),
		Batcher:    NewBatcher(minBatch, maxBatch, targetLatency),
		logger:     logger,
	}
}

// Observe feeds one telemetry sample to the batch controller and returns
// the resulting batch size.
func (s *Session) Observe(lastLatency float64, queueSize int, errRate float64) int {
	before := s.Controller.BatchSize()
	size := s.Controller.Adjust(lastLatency, queueSize, errRate)
	if size != before {
		s.logger.Debug("venturi: batch size adjusted",
			zap.String("session", s.ID.String()),
			zap.Int("before", before),
			zap.Int("after", size),
			zap.Float64("latency", lastLatency),
			zap.Int("queue", queueSize),
			zap.Float64("err_rate", errRate),
		)
	}
	return size
}
