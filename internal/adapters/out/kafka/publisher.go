// Package kafka publishes onboarding facts to an external event stream.
// Delivery is best-effort: the decision workflow has already committed by the
// time an event is published, so failures are logged and dropped rather than
// surfaced.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"

	"onboarding/internal/core/ports"

	"github.com/IBM/sarama"
)

// overridable in tests
var newSyncProducer = sarama.NewSyncProducer

// courierValidatedDTO is the wire format of a courier-validated event.
type courierValidatedDTO struct {
	CourierID string `json:"courierId"`
	Approved  bool   `json:"approved"`
}

// Publisher emits onboarding events through a Sarama synchronous producer.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewPublisher creates a Kafka event publisher.
// Returns nil when no brokers are configured so callers can treat the event
// stream as optional wiring.
func NewPublisher(logger *slog.Logger, brokers []string, topic string) (*Publisher, error) {
	if len(brokers) == 0 || topic == "" {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll

	producer, err := newSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	return &Publisher{
		producer: producer,
		topic:    topic,
		logger:   logger.With("component", "kafka_publisher"),
	}, nil
}

// PublishCourierValidated emits a courier-validated fact keyed by courier ID.
// A nil publisher silently drops events; publish failures are logged, never returned.
func (p *Publisher) PublishCourierValidated(ctx context.Context, event ports.CourierValidatedEvent) {
	if p == nil {
		return
	}

	payload, err := json.Marshal(courierValidatedDTO{
		CourierID: event.CourierID.String(),
		Approved:  event.Approved,
	})
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to encode courier-validated event",
			"courier_id", event.CourierID.String(),
			"error", err)
		return
	}

	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.CourierID.String()),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to publish courier-validated event",
			"courier_id", event.CourierID.String(),
			"approved", event.Approved,
			"error", err)
		return
	}

	p.logger.InfoContext(ctx, "published courier-validated event",
		"courier_id", event.CourierID.String(),
		"approved", event.Approved)
}

// Close shuts down the underlying producer.
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.producer.Close()
}
