package queries

import (
	"errors"

	"onboarding/internal/pkg/guard"
)

var ErrGetReviewBacklogQueryIsNotConstructed = errors.New(
	"GetReviewBacklogQuery must be created via NewGetReviewBacklogQuery constructor",
)

// GetReviewBacklogQuery retrieves the amount of admin work waiting in the
// system: registrations still pending a decision and staged profile updates
// still unresolved.
type GetReviewBacklogQuery struct {
	guard guard.ConstructorGuard
}

// NewGetReviewBacklogQuery creates a query for the current review backlog.
// This is a parameterless query that counts outstanding review work.
func NewGetReviewBacklogQuery() GetReviewBacklogQuery {
	return GetReviewBacklogQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetReviewBacklogQueryIsNotConstructed if validation fails.
func (q GetReviewBacklogQuery) Validate() error {
	return q.guard.Validate(ErrGetReviewBacklogQueryIsNotConstructed)
}

// GetReviewBacklogQueryResponse is the backlog read model.
type GetReviewBacklogQueryResponse struct {
	PendingRegistrations int
	UnresolvedUpdates    int
}
