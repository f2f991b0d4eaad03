package personrepo

import (
	"context"
	"errors"

	"onboarding/internal/core/domain/model/kernel"
	"onboarding/internal/core/domain/model/person"
	"onboarding/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPersonRepository implements PersonRepository using GORM.
type GormPersonRepository struct {
	db *gorm.DB
}

// NewGormPersonRepository creates a new GORM person repository.
func NewGormPersonRepository(db *gorm.DB) *GormPersonRepository {
	return &GormPersonRepository{db: db}
}

// Get retrieves a person by ID.
func (r *GormPersonRepository) Get(ctx context.Context, id kernel.UUID) (*person.Person, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PersonDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("person", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
