// Package person implements the Person identity record linked one-to-one to a
// courier. It is read-only from the onboarding core's perspective: the record
// is created and maintained by the account subsystem, and this core only
// reads it to address notifications and build the admin details projection.
package person

import (
	"errors"
	"strings"

	"onboarding/internal/core/domain/model/kernel"
	"onboarding/internal/pkg/errs"
	"onboarding/internal/pkg/guard"
)

// Domain errors for person construction.
var (
	// ErrFirstNameIsRequired is returned when restoring a person without a first name.
	ErrFirstNameIsRequired = errs.NewValueIsRequiredError("first name")
	// ErrEmailIsRequired is returned when restoring a person without an email address.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrPersonIsNotConstructed is returned when using an improperly initialized Person.
	ErrPersonIsNotConstructed = errors.New("Person must be created via RestorePerson constructor")
)

// Person is the identity record behind a courier: name, email, and phone.
type Person struct {
	id        kernel.UUID
	firstName string
	lastName  string
	email     string
	phone     string
	guard     guard.ConstructorGuard
}

// RestorePerson reconstructs a Person from persistent storage.
// There is no NewPerson: this core never creates identity records.
func RestorePerson(id kernel.UUID, firstName, lastName, email, phone string) (*Person, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if firstName == "" {
		return nil, ErrFirstNameIsRequired
	}
	if email == "" {
		return nil, ErrEmailIsRequired
	}

	return &Person{
		id:        id,
		firstName: firstName,
		lastName:  lastName,
		email:     email,
		phone:     phone,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Person was properly constructed via RestorePerson.
func (p *Person) Validate() error {
	if p == nil {
		return ErrPersonIsNotConstructed
	}
	return p.guard.Validate(ErrPersonIsNotConstructed)
}

// ID returns the unique identifier of the person.
func (p *Person) ID() kernel.UUID {
	return p.id
}

// FirstName returns the person's first name.
func (p *Person) FirstName() string {
	return p.firstName
}

// LastName returns the person's last name.
func (p *Person) LastName() string {
	return p.lastName
}

// FullName returns first and last name joined for display.
func (p *Person) FullName() string {
	return strings.TrimSpace(p.firstName + " " + p.lastName)
}

// Email returns the person's email address, the recipient of all
// onboarding notifications.
func (p *Person) Email() string {
	return p.email
}

// Phone returns the person's phone number.
func (p *Person) Phone() string {
	return p.phone
}
