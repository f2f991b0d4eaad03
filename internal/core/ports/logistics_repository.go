package ports

import (
	"context"

	"onboarding/internal/core/domain/model/kernel"
	"onboarding/internal/core/domain/model/logistics"
)

// LogisticsRepository defines the persistence contract for logistics profiles.
type LogisticsRepository interface {
	// Add persists a new logistics profile.
	Add(ctx context.Context, profile *logistics.Profile) error

	// Update persists changes to an existing logistics profile.
	Update(ctx context.Context, profile *logistics.Profile) error

	// GetByCourierID retrieves the logistics profile owned by the given courier.
	// Returns an ObjectNotFoundError when the courier has no profile.
	GetByCourierID(ctx context.Context, courierID kernel.UUID) (*logistics.Profile, error)
}
