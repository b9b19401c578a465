package venturi

// Scheduler statically partitions a sample sequence into contiguous batches
// sized proportionally to a configured throughput ceiling. It is not a
// feedback mechanism.
type Scheduler struct {
	maxThroughput int
}

// NewScheduler returns a scheduler with the given throughput ceiling.
func NewScheduler(maxThroughput int) *Scheduler {
	return &Scheduler{maxThroughput: maxThroughput}
}

// OptimizeFlow splits data into contiguous batches of size
// maxThroughput/(len(data)+1), floored at 1.
func (s *Scheduler) OptimizeFlow(data []float64) [][]float64 {
	if len(data) == 0 {
		return nil
	}
	size := s.maxThroughput / (len(data) + 1)
	if size < 1 {
		size = 1
	}
	batches := make([][]float64, 0, (len(data)+size-1)/size)
	for start := 0; start < len(data); start += size {
		end := minInt(start+size, len(data))
		batches = append(batches, data[start:end])
	}
	return batches
}
