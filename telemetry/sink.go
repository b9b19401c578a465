// Package telemetry provides the streaming egress capability for the
// impact estimator. Streaming is best effort by contract: a failed send
// never propagates into the processing pipeline, but the outcome of every
// attempt is reported so operators can monitor it.
package telemetry

import "context"

// Sink receives one serialized payload per impact result.
type Sink interface {
	Send(ctx context.Context, payload []byte) error
	Close(ctx context.Context) error
}

// Outcome reports what happened to one streaming attempt.
type Outcome int

const (
	// OutcomeSkipped means no sink was configured.
	OutcomeSkipped Outcome = iota
	// OutcomeSent means the sink accepted the payload.
	OutcomeSent
	// OutcomeFailed means the sink returned an error, which was swallowed.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSent:
		return "sent"
	case OutcomeFailed:
		return "failed"
	default:
		return "skipped"
	}
}

// NopSink discards every payload successfully. It is the explicit null
// implementation for deployments without a streaming destination.
type NopSink struct{}

func (NopSink) Send(context.Context, []byte) error { return nil }
func (NopSink) Close(context.Context) error        { return nil }
