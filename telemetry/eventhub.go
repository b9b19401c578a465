package telemetry

import (
	"context"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/messaging/azeventhubs"
	"go.uber.org/zap"
)

// EventHubSink streams payloads to an Azure Event Hub. The producer client
// is created lazily on the first send and cached for the lifetime of the
// sink; Close releases it. Callers that configure an EventHubSink must call
// Close when done or the underlying AMQP connection leaks.
type EventHubSink struct {
	connectionString string
	hubName          string
	logger           *zap.Logger

	mu       sync.Mutex
	producer *azeventhubs.ProducerClient
}

// NewEventHubSink returns a sink for the given connection string and hub
// name. No connection is made until the first Send. A nil logger disables
// logging.
func NewEventHubSink(connectionString, hubName string, logger *zap.Logger) *EventHubSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventHubSink{
		connectionString: connectionString,
		hubName:          hubName,
		logger:           logger,
	}
}

// Send publishes one payload as a single-event batch.
func (s *EventHubSink) Send(ctx context.Context, payload []byte) error {
	producer, err := s.client(ctx)
	if err != nil {
		return err
	}
	batch, err := producer.NewEventDataBatch(ctx, nil)
	if err != nil {
		return err
	}
	if err := batch.AddEventData(&azeventhubs.EventData{Body: payload}, nil); err != nil {
		return err
	}
	return producer.SendEventDataBatch(ctx, batch, nil)
}

// Close releases the cached producer client, if one was ever created.
func (s *EventHubSink) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.producer == nil {
		return nil
	}
	err := s.producer.Close(ctx)
	s.producer = nil
	return err
}

func (s *EventHubSink) client(ctx context.Context) (*azeventhubs.ProducerClient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.producer != nil {
		return s.producer, nil
	}
	producer, err := azeventhubs.NewProducerClientFromConnectionString(s.connectionString, s.hubName, nil)
	if err != nil {
		return nil, err
	}
	s.logger.Info("telemetry: event hub producer connected", zap.String("hub", s.hubName))
	s.producer = producer
	return producer, nil
}
