package kalman

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/SergiLIFE/SergiLIFE-life-azure-system-sub008/signal"
)

// Metrics summarizes one filtering pass. SNRdB and NoiseReductionDB are
// power ratios in decibels and become +Inf when the relevant noise power is
// exactly zero; SignalPreservation is NaN when either series has zero
// variance. Callers must check for these sentinels before aggregating.
type Metrics struct {
	SNRdB              float64 `json:"snr_db"`
	NoiseReductionDB   float64 `json:"noise_reduction_db"`
	SignalPreservation float64 `json:"signal_preservation"`
	ArtifactRejection  float64 `json:"artifact_rejection_rate"`
	ProcessingMS       float64 `json:"processing_time_ms"`
	Timestamp          string  `json:"timestamp"`
}

func computeMetrics(original, filtered []float64, elapsed time.Duration) Metrics {
	residual := make([]float64, len(original))
	for i := range original {
		residual[i] = original[i] - filtered[i]
	}

	snr := math.Inf(1)
	if p := signal.Power(residual); p > 0 {
		snr = 10 * math.Log10(signal.Power(filtered)/p)
	}

	varOriginal := stat.Variance(original, nil)
	varFiltered := stat.Variance(filtered, nil)
	reduction := math.Inf(1)
	if varFiltered > 0 {
		reduction = 10 * math.Log10(varOriginal/varFiltered)
	} else if varOriginal == 0 {
		reduction = math.NaN()
	}

	return Metrics{
		SNRdB:              snr,
		NoiseReductionDB:   reduction,
		SignalPreservation: stat.Correlation(original, filtered, nil),
		ArtifactRejection:  artifactRejection(original, filtered),
		ProcessingMS:       float64(elapsed) / float64(time.Millisecond),
		Timestamp:          time.Now().UTC().Format(time.RFC3339Nano),
	}
}

// artifactRejection counts original samples deviating more than three
// standard deviations from the mean and reports the fraction of them pulled
// back inside that envelope by the filter. A signal with no artifacts
// rejects all of them vacuously.
func artifactRejection(original, filtered []float64) float64 {
	mean, std := stat.MeanStdDev(original, nil)
	if math.IsNaN(std) || std == 0 {
		return 1
	}
	limit := 3 * std
	var artifacts, rejected int
	for i := range original {
		if math.Abs(original[i]-mean) <= limit {
			continue
		}
		artifacts++
		if math.Abs(filtered[i]-mean) <= limit {
			rejected++
		}
	}
	if artifacts == 0 {
		return 1
	}
	return float64(rejected) / float64(artifacts)
}
