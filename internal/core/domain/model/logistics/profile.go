package logistics

import (
	"errors"

	"onboarding/internal/core/domain/model/kernel"
	"onboarding/internal/pkg/errs"
	"onboarding/internal/pkg/guard"
)

// Domain errors for logistics profile operations.
var (
	// ErrDocumentImageIsRequired is returned when attempting to set an empty supporting document.
	ErrDocumentImageIsRequired = errs.NewValueIsRequiredError("document image")
	// ErrProfileIsNotConstructed is returned when using an improperly initialized Profile.
	ErrProfileIsNotConstructed = errors.New("Profile must be created via NewProfile constructor")
)

// Profile is the logistics profile aggregate owned 1:1 by a courier.
// It holds the delivery-capability metadata an admin reviews: the vehicle
// category and a reference to the supporting document image.
//
// The profile is created alongside its courier by the registration flow and
// mutated only when an admin applies a staged profile update. Its lifecycle
// is tied to the owning courier; this core never destroys it.
type Profile struct {
	// id uniquely identifies the logistics profile
	id kernel.UUID
	// courierID identifies the owning courier
	courierID kernel.UUID
	// logisticsType is the vehicle category
	logisticsType LogisticsType
	// documentImage references the uploaded supporting document
	documentImage string
	// guard ensures the profile was properly constructed
	guard guard.ConstructorGuard
}

// NewProfile creates a logistics profile for the given courier.
// All parameters are validated; errors for multiple invalid parameters
// are aggregated.
func NewProfile(id, courierID kernel.UUID, logisticsType LogisticsType, documentImage string) (*Profile, error) {
	profile := &Profile{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		profile.setID(id),
		profile.setCourierID(courierID),
		profile.setLogisticsType(logisticsType),
		profile.setDocumentImage(documentImage),
	); err != nil {
		return nil, err
	}

	return profile, nil
}

// RestoreProfile reconstructs a logistics profile from persistent storage.
func RestoreProfile(id, courierID kernel.UUID, logisticsType LogisticsType, documentImage string) (*Profile, error) {
	return NewProfile(id, courierID, logisticsType, documentImage)
}

// Validate checks if the Profile was properly constructed using a constructor.
// The zero value of Profile is invalid and will fail this validation.
func (p *Profile) Validate() error {
	if p == nil {
		return ErrProfileIsNotConstructed
	}
	return p.guard.Validate(ErrProfileIsNotConstructed)
}

// ID returns the unique identifier of the logistics profile.
func (p *Profile) ID() kernel.UUID {
	return p.id
}

// CourierID returns the identifier of the owning courier.
func (p *Profile) CourierID() kernel.UUID {
	return p.courierID
}

// LogisticsType returns the vehicle category.
func (p *Profile) LogisticsType() LogisticsType {
	return p.logisticsType
}

// DocumentImage returns the supporting document reference.
func (p *Profile) DocumentImage() string {
	return p.documentImage
}

// ChangeLogisticsType updates the vehicle category.
// Used when applying an approved staged profile update.
func (p *Profile) ChangeLogisticsType(lt LogisticsType) error {
	return p.setLogisticsType(lt)
}

// ChangeDocumentImage updates the supporting document reference.
// Used when applying an approved staged profile update.
func (p *Profile) ChangeDocumentImage(image string) error {
	return p.setDocumentImage(image)
}

func (p *Profile) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	p.id = id
	return nil
}

func (p *Profile) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	p.courierID = courierID
	return nil
}

func (p *Profile) setLogisticsType(lt LogisticsType) error {
	if err := lt.Validate(); err != nil {
		return err
	}

	p.logisticsType = lt
	return nil
}

func (p *Profile) setDocumentImage(image string) error {
	if image == "" {
		return ErrDocumentImageIsRequired
	}

	p.documentImage = image
	return nil
}
