package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetReviewBacklogQueryHandler counts outstanding review work.
// Feeds both the admin HTTP surface and the periodic backlog reminder job.
type GetReviewBacklogQueryHandler struct {
	db *gorm.DB
}

// NewGetReviewBacklogQueryHandler creates a handler for backlog queries.
// Requires a GORM database connection for query execution.
func NewGetReviewBacklogQueryHandler(db *gorm.DB) GetReviewBacklogQueryHandler {
	return GetReviewBacklogQueryHandler{db: db}
}

// Handle executes the backlog counts.
// Pending registrations are couriers still in Pending status; unresolved
// updates are staged requests still awaiting review.
func (h GetReviewBacklogQueryHandler) Handle(
	ctx context.Context,
	query GetReviewBacklogQuery,
) (GetReviewBacklogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetReviewBacklogQueryResponse{}, err
	}

	var backlog GetReviewBacklogQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM couriers WHERE status = 'Pending'),
			(SELECT COUNT(*) FROM pending_update_requests WHERE status = 'PendingReview')
	`).Row()

	if err := row.Scan(&backlog.PendingRegistrations, &backlog.UnresolvedUpdates); err != nil {
		return GetReviewBacklogQueryResponse{}, err
	}

	return backlog, nil
}
