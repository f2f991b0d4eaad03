// Package logisticsrepo provides data transfer objects and mapping functions
// for logistics profile persistence.
package logisticsrepo

import (
	"onboarding/internal/core/domain/model/kernel"
	"onboarding/internal/core/domain/model/logistics"

	"github.com/google/uuid"
)

// ProfileDTO represents the database structure for persisting logistics profiles.
// Each courier owns at most one profile, enforced by the unique index.
type ProfileDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourierID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	LogisticsType string    `gorm:"type:varchar(32);not null"`
	DocumentImage string    `gorm:"type:varchar(512);not null;default:''"`
}

// TableName specifies the database table name for logistics profile entities.
// Overrides GORM's default naming convention to use "logistics_profiles" instead of "profile_dtos".
func (ProfileDTO) TableName() string {
	return "logistics_profiles"
}

// fromDomain converts a logistics profile entity to its database representation.
func fromDomain(profile *logistics.Profile) ProfileDTO {
	return ProfileDTO{
		ID:            profile.ID().Bytes(),
		CourierID:     profile.CourierID().Bytes(),
		LogisticsType: profile.LogisticsType().String(),
		DocumentImage: profile.DocumentImage(),
	}
}

// toDomain converts a database DTO to a logistics profile entity.
func toDomain(dto ProfileDTO) (*logistics.Profile, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	logisticsType, err := logistics.TypeFromString(dto.LogisticsType)
	if err != nil {
		return nil, err
	}

	return logistics.RestoreProfile(id, courierID, logisticsType, dto.DocumentImage)
}
