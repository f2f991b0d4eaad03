package queries

import (
	"context"

	"onboarding/internal/core/domain/model/kernel"
	"onboarding/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCourierDetailsQueryHandler builds the review card for one courier.
// Uses direct SQL queries for optimal read performance in the CQRS pattern;
// the courier and person rows are joined in the database rather than loaded
// as aggregates.
type GetCourierDetailsQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierDetailsQueryHandler creates a handler for courier detail queries.
// Requires a GORM database connection for query execution.
func NewGetCourierDetailsQueryHandler(db *gorm.DB) GetCourierDetailsQueryHandler {
	return GetCourierDetailsQueryHandler{db: db}
}

// Handle executes the query for one courier's review card.
// Returns an ObjectNotFoundError when the courier does not exist.
func (h GetCourierDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetCourierDetailsQuery,
) (GetCourierDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCourierDetailsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			p.first_name,
			p.last_name,
			p.email,
			p.phone,
			c.status,
			c.commercial_name
		FROM couriers c
		JOIN persons p ON p.id = c.person_id
		WHERE c.id = ?
	`, query.CourierID().Bytes()).Rows()
	if err != nil {
		return GetCourierDetailsQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetCourierDetailsQueryResponse{}, err
		}
		return GetCourierDetailsQueryResponse{},
			errs.NewObjectNotFoundError("courier_id", query.CourierID())
	}

	var details GetCourierDetailsQueryResponse
	var id uuid.UUID

	err = rows.Scan(
		&id,
		&details.FirstName,
		&details.LastName,
		&details.Email,
		&details.Phone,
		&details.Status,
		&details.CommercialName,
	)
	if err != nil {
		return GetCourierDetailsQueryResponse{}, err
	}

	courierID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return GetCourierDetailsQueryResponse{}, idErr
	}
	details.ID = courierID

	return details, nil
}
