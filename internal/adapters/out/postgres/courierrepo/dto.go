// Package courierrepo provides data transfer objects and mapping functions for courier persistence.
// This package implements the repository pattern for the courier domain aggregate, handling
// the conversion between domain entities and database representations.
package courierrepo

import (
	"onboarding/internal/core/domain/model/courier"
	"onboarding/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting courier aggregates.
// The version column backs the optimistic-concurrency check on updates.
type CourierDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	PersonID           uuid.UUID `gorm:"type:uuid;not null;index"`
	Status             string    `gorm:"type:varchar(32);not null;index"`
	CommercialName     string    `gorm:"type:varchar(255);not null"`
	CommercialRegister string    `gorm:"type:varchar(255);not null;default:''"`
	Version            int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for courier entities.
// Overrides GORM's default naming convention to use "couriers" instead of "courier_dtos".
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier domain aggregate to its database representation.
func fromDomain(courier *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:                 courier.ID().Bytes(),
		PersonID:           courier.PersonID().Bytes(),
		Status:             courier.Status().String(),
		CommercialName:     courier.CommercialName(),
		CommercialRegister: courier.CommercialRegister(),
		Version:            courier.Version(),
	}
}

// toDomain converts a database DTO to a courier domain aggregate.
// Reconstructs the aggregate at its persisted version using RestoreCourier.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	personID, err := kernel.UUIDFromBytes(dto.PersonID[:])
	if err != nil {
		return nil, err
	}

	status, err := courier.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(id, personID, status, dto.CommercialName, dto.CommercialRegister, dto.Version)
}
