package pendingupdaterepo

import (
	"context"
	"errors"

	"onboarding/internal/core/domain/model/kernel"
	"onboarding/internal/core/domain/model/pendingupdate"
	"onboarding/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPendingUpdateRepository implements PendingUpdateRepository using GORM.
type GormPendingUpdateRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPendingUpdateRepository creates a new GORM staged update repository.
func NewGormPendingUpdateRepository(db *gorm.DB, tracker aggregateTracker) *GormPendingUpdateRepository {
	return &GormPendingUpdateRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new staged update request to the database.
func (r *GormPendingUpdateRepository) Add(ctx context.Context, request *pendingupdate.Request) error {
	if err := request.Validate(); err != nil {
		return err
	}

	dto := fromDomain(request)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(request.ID(), request)
	return nil
}

// Update saves an existing staged update request to the database.
func (r *GormPendingUpdateRepository) Update(ctx context.Context, request *pendingupdate.Request) error {
	if err := request.Validate(); err != nil {
		return err
	}

	dto := fromDomain(request)

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(request.ID(), request)
	return nil
}

// Get retrieves a staged update request by ID.
func (r *GormPendingUpdateRepository) Get(ctx context.Context, id kernel.UUID) (*pendingupdate.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pending update", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a fully consumed staged update request.
func (r *GormPendingUpdateRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&RequestDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("pending update", id.String())
	}

	return nil
}
