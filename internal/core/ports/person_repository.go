package ports

import (
	"context"

	"onboarding/internal/core/domain/model/kernel"
	"onboarding/internal/core/domain/model/person"
)

// PersonRepository defines read access to the identity records behind
// couriers. The onboarding core never creates or mutates persons.
type PersonRepository interface {
	// Get retrieves a person by its unique identifier.
	// Returns an ObjectNotFoundError when no such person exists.
	Get(ctx context.Context, id kernel.UUID) (*person.Person, error)
}
