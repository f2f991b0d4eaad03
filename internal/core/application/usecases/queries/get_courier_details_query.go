// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"onboarding/internal/core/domain/model/kernel"
	"onboarding/internal/pkg/guard"
)

var ErrGetCourierDetailsQueryIsNotConstructed = errors.New(
	"GetCourierDetailsQuery must be created via NewGetCourierDetailsQuery constructor",
)

// GetCourierDetailsQuery retrieves the full review card for one courier:
// the courier record joined with the identity record behind it.
//
// Example:
//
//	query, err := NewGetCourierDetailsQuery(courierID)
//	if err != nil {
//	    return fmt.Errorf("invalid courier ID: %w", err)
//	}
//
//	handler := NewGetCourierDetailsQueryHandler(db)
//	details, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve details: %w", err)
//	}
//	fmt.Printf("%s %s (%s): %s\n", details.FirstName, details.LastName, details.Email, details.Status)
type GetCourierDetailsQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCourierDetailsQuery creates a query for one courier's review card.
func NewGetCourierDetailsQuery(courierID kernel.UUID) (GetCourierDetailsQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierDetailsQuery{}, err
	}

	return GetCourierDetailsQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCourierDetailsQueryIsNotConstructed if validation fails.
func (q GetCourierDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierDetailsQueryIsNotConstructed)
}

// CourierID returns the identifier of the courier being inspected.
func (q GetCourierDetailsQuery) CourierID() kernel.UUID {
	return q.courierID
}

// GetCourierDetailsQueryResponse is the review card read model: courier
// fields flattened together with the person behind the account.
type GetCourierDetailsQueryResponse struct {
	ID             kernel.UUID
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Status         string
	CommercialName string
}
