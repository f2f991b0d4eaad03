package courier

import (
	"errors"

	"onboarding/internal/core/domain/model/kernel"
	"onboarding/internal/pkg/errs"
	"onboarding/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrCommercialNameIsRequired is returned when attempting to create a courier without a commercial name.
	ErrCommercialNameIsRequired = errs.NewValueIsRequiredError("commercial name")
	// ErrCommercialRegisterIsRequired is returned when attempting to set an empty commercial register.
	ErrCommercialRegisterIsRequired = errs.NewValueIsRequiredError("commercial register")
	// ErrVersionIsRequired is returned when restoring a courier with a non-positive version.
	ErrVersionIsRequired = errs.NewValueIsRequiredError("version")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier represents a delivery courier registration in the system.
// It is an aggregate root that manages courier identity, lifecycle status,
// and the commercial profile fields an admin may review and amend.
//
// Key responsibilities:
//   - Managing courier identity (ID, linked person ID)
//   - Enforcing the registration state machine (Pending -> Approved / Rejected)
//   - Holding commercial profile fields subject to staged updates
//   - Carrying an optimistic-concurrency version for conditional writes
//
// Business rules:
//   - Courier must have a valid UUID, a linked person ID, and a commercial name
//   - A courier is created Pending; an admin decision moves it to a final state once
//   - Approved and Rejected couriers can never be decided on again
//   - Every persisted mutation increments the version; a stale version loses the write
//
// Example usage:
//
//	c, err := NewCourier(kernel.NewUUID(), personID, "Speedy Deliveries")
//	if err != nil {
//	    // Handle construction error
//	}
//	if err := c.Approve(); err != nil {
//	    // Courier was not Pending
//	}
type Courier struct {
	// id uniquely identifies the courier
	id kernel.UUID
	// personID links the courier to its underlying identity record
	personID kernel.UUID
	// status is the registration lifecycle state
	status Status
	// commercialName is the business name the courier operates under
	commercialName string
	// commercialRegister is the commercial registration number, empty until provided
	commercialRegister string
	// version is the optimistic-concurrency counter checked on every write
	version int
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier creates a new Courier in the Pending state.
// This is the only way to create a valid fresh Courier instance.
//
// Parameters:
//   - id: Unique identifier for the courier (must be valid UUID)
//   - personID: Identifier of the linked Person record (must be valid UUID)
//   - commercialName: Business name (must be non-empty)
//
// Returns the courier at version 1, awaiting an admin decision.
// Validation errors for multiple invalid parameters are aggregated.
func NewCourier(id, personID kernel.UUID, commercialName string) (*Courier, error) {
	courier := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setPersonID(personID),
		courier.setCommercialName(commercialName),
		courier.setStatus(Pending),
		courier.setVersion(1),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

// RestoreCourier reconstructs a Courier aggregate from persistent storage.
// Unlike NewCourier, which always starts a registration in Pending at
// version 1, this constructor restores a courier to its previously persisted
// state including its status, commercial register, and version.
//
// The restored courier behaves identically to one created through normal
// domain operations.
func RestoreCourier(
	id, personID kernel.UUID,
	status Status,
	commercialName, commercialRegister string,
	version int,
) (*Courier, error) {
	courier := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setPersonID(personID),
		courier.setStatus(status),
		courier.setCommercialName(commercialName),
		courier.setVersion(version),
	); err != nil {
		return nil, err
	}

	// Restored registers may legitimately be empty (not yet provided)
	courier.commercialRegister = commercialRegister

	return courier, nil
}

// IsEqual compares two couriers for equality based on their unique identifiers.
// Two couriers are considered equal if they have the same ID, regardless of
// other attributes.
func (c *Courier) IsEqual(other *Courier) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// Validate checks if the Courier was properly constructed using a constructor.
// The zero value of Courier is invalid and will fail this validation.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// ID returns the unique identifier of the courier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// PersonID returns the identifier of the linked Person record.
func (c *Courier) PersonID() kernel.UUID {
	return c.personID
}

// Status returns the registration lifecycle state of the courier.
func (c *Courier) Status() Status {
	return c.status
}

// CommercialName returns the business name the courier operates under.
func (c *Courier) CommercialName() string {
	return c.commercialName
}

// CommercialRegister returns the commercial registration number.
// Empty until provided through a staged profile update.
func (c *Courier) CommercialRegister() string {
	return c.commercialRegister
}

// Version returns the optimistic-concurrency version of the aggregate.
// Repositories compare it against the persisted row on every update and
// reject stale writes.
func (c *Courier) Version() int {
	return c.version
}

// Approve transitions a Pending courier to Approved.
//
// Returns an InvalidStateError if the courier is not Pending. The decision
// is final: once approved, the courier can never be decided on again.
func (c *Courier) Approve() error {
	if err := c.status.ValidateDecide(); err != nil {
		return err
	}

	c.status = Approved
	return nil
}

// Reject transitions a Pending courier to Rejected.
//
// Returns an InvalidStateError if the courier is not Pending. The decision
// is final: once rejected, the courier can never be decided on again.
func (c *Courier) Reject() error {
	if err := c.status.ValidateDecide(); err != nil {
		return err
	}

	c.status = Rejected
	return nil
}

// ChangeCommercialName updates the courier's commercial name.
// Used when applying an approved staged profile update.
func (c *Courier) ChangeCommercialName(name string) error {
	return c.setCommercialName(name)
}

// ChangeCommercialRegister updates the courier's commercial registration number.
// Used when applying an approved staged profile update.
func (c *Courier) ChangeCommercialRegister(register string) error {
	if register == "" {
		return ErrCommercialRegisterIsRequired
	}

	c.commercialRegister = register
	return nil
}

// setID sets the courier's unique identifier with validation.
// This is an internal setter used during courier construction.
func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

// setPersonID sets the linked person identifier with validation.
// This is an internal setter used during courier construction.
func (c *Courier) setPersonID(personID kernel.UUID) error {
	if err := personID.Validate(); err != nil {
		return err
	}

	c.personID = personID
	return nil
}

// setStatus sets the courier's lifecycle status with validation.
// This is an internal setter used during construction and restoration.
func (c *Courier) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

// setCommercialName sets the courier's commercial name with validation.
func (c *Courier) setCommercialName(name string) error {
	if name == "" {
		return ErrCommercialNameIsRequired
	}

	c.commercialName = name
	return nil
}

// setVersion sets the optimistic-concurrency version with validation.
func (c *Courier) setVersion(version int) error {
	if version <= 0 {
		return ErrVersionIsRequired
	}

	c.version = version
	return nil
}
