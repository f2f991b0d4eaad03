package logisticsrepo

import (
	"context"
	"errors"

	"onboarding/internal/core/domain/model/kernel"
	"onboarding/internal/core/domain/model/logistics"
	"onboarding/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLogisticsRepository implements LogisticsRepository using GORM.
type GormLogisticsRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormLogisticsRepository creates a new GORM logistics profile repository.
func NewGormLogisticsRepository(db *gorm.DB, tracker aggregateTracker) *GormLogisticsRepository {
	return &GormLogisticsRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new logistics profile to the database.
func (r *GormLogisticsRepository) Add(ctx context.Context, profile *logistics.Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	dto := fromDomain(profile)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(profile.ID(), profile)
	return nil
}

// Update saves an existing logistics profile to the database.
func (r *GormLogisticsRepository) Update(ctx context.Context, profile *logistics.Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	dto := fromDomain(profile)

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(profile.ID(), profile)
	return nil
}

// GetByCourierID retrieves the logistics profile owned by the given courier.
func (r *GormLogisticsRepository) GetByCourierID(ctx context.Context, courierID kernel.UUID) (*logistics.Profile, error) {
	if err := courierID.Validate(); err != nil {
		return nil, err
	}

	var dto ProfileDTO
	if err := r.db.WithContext(ctx).First(&dto, "courier_id = ?", courierID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("logistics profile for courier", courierID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
