// Package personrepo provides read-only access to the identity records behind
// couriers. The onboarding service never creates or mutates persons; rows are
// owned by the identity subsystem and only projected here.
package personrepo

import (
	"onboarding/internal/core/domain/model/kernel"
	"onboarding/internal/core/domain/model/person"

	"github.com/google/uuid"
)

// PersonDTO represents the database structure of identity records.
type PersonDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string    `gorm:"type:varchar(255);not null"`
	LastName  string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);not null"`
	Phone     string    `gorm:"type:varchar(64);not null;default:''"`
}

// TableName specifies the database table name for person entities.
// Overrides GORM's default naming convention to use "persons" instead of "person_dtos".
func (PersonDTO) TableName() string {
	return "persons"
}

// toDomain converts a database DTO to a person entity.
func toDomain(dto PersonDTO) (*person.Person, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return person.RestorePerson(id, dto.FirstName, dto.LastName, dto.Email, dto.Phone)
}
