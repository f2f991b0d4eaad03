package ports

import (
	"context"

	"onboarding/internal/core/domain/model/kernel"
)

// CourierValidatedEvent is the fact emitted after an admin decision on a
// courier registration has been durably committed.
type CourierValidatedEvent struct {
	CourierID kernel.UUID
	Approved  bool
}

// EventPublisher emits structured facts to an external stream for other
// subsystems to consume. Implementations are best-effort with at-most-once
// delivery: publish failures are logged by the publisher and never surfaced
// to the calling workflow.
type EventPublisher interface {
	// PublishCourierValidated emits a courier-validated fact.
	PublishCourierValidated(ctx context.Context, event CourierValidatedEvent)
}
