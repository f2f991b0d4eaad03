package ports

import (
	"context"

	"onboarding/internal/core/domain/model/kernel"
	"onboarding/internal/core/domain/model/pendingupdate"
)

// PendingUpdateRepository defines the persistence contract for staged
// profile-change requests.
type PendingUpdateRepository interface {
	// Add persists a new staged update request.
	Add(ctx context.Context, request *pendingupdate.Request) error

	// Update persists changes to an existing request (e.g. marking it rejected).
	Update(ctx context.Context, request *pendingupdate.Request) error

	// Get retrieves a request by its unique identifier.
	// Returns an ObjectNotFoundError when no such request exists.
	Get(ctx context.Context, id kernel.UUID) (*pendingupdate.Request, error)

	// Delete removes a fully consumed request.
	Delete(ctx context.Context, id kernel.UUID) error
}
