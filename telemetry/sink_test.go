package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNopSink(t *testing.T) {
	var s NopSink
	assert.NoError(t, s.Send(context.Background(), []byte("payload")))
	assert.NoError(t, s.Close(context.Background()))
}

func TestOutcomeStrings(t *testing.T) {
	assert.Equal(t, "skipped", OutcomeSkipped.String())
	assert.Equal(t, "sent", OutcomeSent.String())
	assert.Equal(t, "failed", OutcomeFailed.String())
}

func TestEventHubSinkLazyClose(t *testing.T) {
	// No producer was ever created, so Close is a no-op.
	s := NewEventHubSink("Endpoint=sb://example/;SharedAccessKeyName=k;SharedAccessKey=v", "hub", nil)
	assert.NoError(t, s.Close(context.Background()))
}
