package ports

import "context"

// NotificationSender dispatches templated messages to a recipient address.
// Implementations are best-effort: delivery failures are logged by the
// sender and never surfaced to the calling workflow.
type NotificationSender interface {
	// SendRegistrationReceived notifies a courier that their registration
	// was received and awaits review.
	SendRegistrationReceived(ctx context.Context, to string)

	// SendAccountApproved notifies a courier that their registration was approved.
	SendAccountApproved(ctx context.Context, to string)

	// SendAccountRejected notifies a courier that their registration was
	// declined. The reason is included when non-empty.
	SendAccountRejected(ctx context.Context, to string, reason string)
}
