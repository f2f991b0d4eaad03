// Package pendingupdaterepo provides data transfer objects and mapping
// functions for staged profile-change request persistence.
package pendingupdaterepo

import (
	"onboarding/internal/core/domain/model/kernel"
	"onboarding/internal/core/domain/model/pendingupdate"

	"github.com/google/uuid"
)

// RequestDTO represents the database structure for persisting staged updates.
// The payload is stored verbatim as submitted; it is parsed only when an
// admin approves the request.
type RequestDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourierID uuid.UUID `gorm:"type:uuid;not null;index"`
	Payload   []byte    `gorm:"type:jsonb;not null"`
	Status    string    `gorm:"type:varchar(32);not null;index"`
}

// TableName specifies the database table name for staged update entities.
// Overrides GORM's default naming convention to use "pending_update_requests" instead of "request_dtos".
func (RequestDTO) TableName() string {
	return "pending_update_requests"
}

// fromDomain converts a staged update request to its database representation.
func fromDomain(request *pendingupdate.Request) RequestDTO {
	return RequestDTO{
		ID:        request.ID().Bytes(),
		CourierID: request.CourierID().Bytes(),
		Payload:   request.Payload(),
		Status:    request.Status().String(),
	}
}

// toDomain converts a database DTO to a staged update request.
func toDomain(dto RequestDTO) (*pendingupdate.Request, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	status, err := pendingupdate.RequestStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return pendingupdate.RestoreRequest(id, courierID, dto.Payload, status)
}
