// Package impact quantifies neural engagement from a single EEG channel by
// combining multi-resolution wavelet energy with a per-band phase-synchrony
// measure, producing one scalar impact score per window plus a per-band
// breakdown.
package impact

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/SergiLIFE/SergiLIFE-life-azure-system-sub008/dsp"
	"github.com/SergiLIFE/SergiLIFE-life-azure-system-sub008/signal"
	"github.com/SergiLIFE/SergiLIFE-life-azure-system-sub008/telemetry"
)

// Config collects the estimator parameters. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	// Wavelet family name, e.g. "db4"
	Wavelet string
	// Decomposition level
	Level int
	// Soft-threshold factor, fraction of each array's peak magnitude
	ThresholdFactor float64
	// Fixed additive noise floor representing baseline neural variability
	CognitiveNoise float64
}

// DefaultConfig returns the standard estimator configuration.
func DefaultConfig() Config {
	return Config{
		Wavelet:         "db4",
		Level:           5,
		ThresholdFactor: 0.1,
		CognitiveNoise:  0.04,
	}
}

// Result is the outcome of one Optimize call. BandImpacts and PLIScores
// always carry exactly the five canonical band keys.
type Result struct {
	TotalImpact    float64            `json:"total_impact"`
	BandImpacts    map[string]float64 `json:"band_impacts"`
	WaveletEnergy  float64            `json:"wavelet_energy"`
	PLIScores      map[string]float64 `json:"pli_scores"`
	CognitiveNoise float64            `json:"cognitive_noise"`
	Timestamp      float64            `json:"timestamp"`
}

// envelope is the wire shape streamed to the sink.
type envelope struct {
	SubjectID string `json:"subject_id"`
	Result
}

// Optimizer estimates neurocognitive impact. It is not goroutine safe with
// respect to Close; Optimize calls themselves share no mutable state beyond
// the sink. An Optimizer configured with a sink must be Closed when done.
type Optimizer struct {
	cfg        Config
	decomposer dsp.Decomposer
	sink       telemetry.Sink
	logger     *zap.Logger
}

// New returns an estimator. A nil sink disables streaming; a nil logger
// disables logging. An unknown wavelet name or invalid level does not fail:
// the estimator degrades to the identity decomposer, which returns the
// input unchanged as a single coefficient array, and logs the downgrade.
func New(cfg Config, sink telemetry.Sink, logger *zap.Logger) *Optimizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	var decomposer dsp.Decomposer
	d, err := dsp.NewDaubechies(cfg.Wavelet, cfg.Level, cfg.ThresholdFactor)
	if err != nil {
		logger.Warn("impact: wavelet unavailable, decomposition degraded to identity", zap.Error(err))
		decomposer = dsp.Identity{}
	} else {
		decomposer = d
	}
	return &Optimizer{
		cfg:        cfg,
		decomposer: decomposer,
		sink:       sink,
		logger:     logger,
	}
}

// Decompose runs the configured multi-level wavelet decomposition with
// per-array soft thresholding. In degraded mode the result is the input
// signal wrapped in a single-element list.
func (o *Optimizer) Decompose(sig []float64) [][]float64 {
	return o.decomposer.Decompose(sig)
}

// WaveletEnergy sums squared coefficient magnitudes across all non-empty
// arrays. The result is never negative.
func WaveletEnergy(coefs [][]float64) float64 {
	var total float64
	for _, c := range coefs {
		if len(c) == 0 {
			continue
		}
		total += floats.Dot(c, c)
	}
	return total
}

// PhaseLagIndex returns a phase-consistency score in [0, 1] per canonical
// band. This is a single-channel proxy, not the inter-channel phase lag
// index: it measures the sign consistency of the instantaneous phase
// derivative within one channel. Signals shorter than 4 samples, and bands
// whose edges collapse after Nyquist clipping, score 0.
func (o *Optimizer) PhaseLagIndex(sig []float64, samplingRate float64) map[string]float64 {
	scores := make(map[string]float64, 5)
	for _, band := range signal.Bands() {
		scores[band.Name] = 0
	}
	if len(sig) < 4 {
		return scores
	}
	for _, band := range signal.Bands() {
		bp, err := dsp.NewBandPass(band.Low, band.High, samplingRate)
		if err != nil {
			o.logger.Debug("impact: band-pass unavailable",
				zap.String("band", band.Name), zap.Error(err))
			continue
		}
		phase := dsp.InstantaneousPhase(bp.Apply(sig))
		scores[band.Name] = phaseSignConsistency(phase)
	}
	return scores
}

// phaseSignConsistency is |mean(sign(wrapped first phase differences))|.
func phaseSignConsistency(phase []float64) float64 {
	if len(phase) < 2 {
		return 0
	}
	var sum float64
	for i := 1; i < len(phase); i++ {
		d := phase[i] - phase[i-1]
		wrapped := math.Atan2(math.Sin(d), math.Cos(d))
		switch {
		case wrapped > 0:
			sum++
		case wrapped < 0:
			sum--
		}
	}
	return math.Abs(sum / float64(len(phase)-1))
}

// BandImpacts pairs the first five coefficient arrays positionally with the
// canonical bands and weights each array's energy by the band's PLI score.
// Bands beyond the available arrays get impact 0; the five keys are always
// present. The positional pairing assumes the decomposition level count
// lines up with the band count and truncates when it does not.
func BandImpacts(coefs [][]float64, pli map[string]float64) map[string]float64 {
	impacts := make(map[string]float64, 5)
	for i, band := range signal.Bands() {
		if i >= len(coefs) || len(coefs[i]) == 0 {
			impacts[band.Name] = 0
			continue
		}
		impacts[band.Name] = floats.Dot(coefs[i], coefs[i]) * pli[band.Name]
	}
	return impacts
}

// Optimize scores one EEG window: z-score normalize, decompose, measure
// energy and per-band phase consistency, combine. The result is returned
// regardless of the streaming outcome; streaming failures are swallowed,
// logged, and reported through the Outcome value.
func (o *Optimizer) Optimize(ctx context.Context, sig []float64, samplingRate float64, subjectID string) (Result, telemetry.Outcome) {
	normalized := signal.ZScore(sig)
	coefs := o.Decompose(normalized)
	pli := o.PhaseLagIndex(normalized, samplingRate)
	bandImpacts := BandImpacts(coefs, pli)

	total := o.cfg.CognitiveNoise
	for _, v := range bandImpacts {
		total += v
	}

	result := Result{
		TotalImpact:    total,
		BandImpacts:    bandImpacts,
		WaveletEnergy:  WaveletEnergy(coefs),
		PLIScores:      pli,
		CognitiveNoise: o.cfg.CognitiveNoise,
		Timestamp:      float64(time.Now().UnixNano()) / float64(time.Second),
	}
	return result, o.stream(ctx, result, subjectID)
}

// OptimizeFrame scores a channels-by-samples frame using only the first
// channel.
func (o *Optimizer) OptimizeFrame(ctx context.Context, frame mat.Matrix, samplingRate float64, subjectID string) (Result, telemetry.Outcome) {
	rows, _ := frame.Dims()
	if rows == 0 {
		return o.Optimize(ctx, nil, samplingRate, subjectID)
	}
	return o.Optimize(ctx, mat.Row(nil, 0, frame), samplingRate, subjectID)
}

// stream sends the result to the configured sink, best effort.
func (o *Optimizer) stream(ctx context.Context, result Result, subjectID string) telemetry.Outcome {
	if o.sink == nil {
		return telemetry.OutcomeSkipped
	}
	payload, err := json.Marshal(envelope{SubjectID: subjectID, Result: result})
	if err == nil {
		err = o.sink.Send(ctx, payload)
	}
	if err != nil {
		o.logger.Warn("impact: streaming failed", zap.String("subject", subjectID), zap.Error(err))
		return telemetry.OutcomeFailed
	}
	return telemetry.OutcomeSent
}

// Close releases the streaming sink. Required when a sink was configured.
func (o *Optimizer) Close(ctx context.Context) error {
	if o.sink == nil {
		return nil
	}
	return o.sink.Close(ctx)
}
