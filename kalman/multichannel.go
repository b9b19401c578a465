package kalman

import (
	"sync"

	"gonum.org/v1/gonum/mat"
)

// FilterMultichannel filters every channel (row) of a channels-by-samples
// frame independently and returns a same-shape frame plus one Metrics per
// channel in row order. Channels share no information; each is processed by
// a fresh filter carrying the receiver's configured parameters, so the
// channels can run concurrently without touching the receiver's state.
func (f *AdaptiveFilter) FilterMultichannel(frame mat.Matrix) (*mat.Dense, []Metrics) {
	rows, cols := frame.Dims()
	out := mat.NewDense(rows, cols, nil)
	metrics := make([]Metrics, rows)

	var wg sync.WaitGroup
	wg.Add(rows)
	for ch := 0; ch < rows; ch++ {
		go func(ch int) {
			defer wg.Done()
			channel := mat.Row(nil, ch, frame)
			filtered, m := New(f.processNoise, f.measurementNoise, f.adaptationRate).FilterSignal(channel)
			out.SetRow(ch, filtered)
			metrics[ch] = m
		}(ch)
	}
	wg.Wait()
	return out, metrics
}
