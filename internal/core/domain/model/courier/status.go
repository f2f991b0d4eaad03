package courier

import (
	"fmt"

	"onboarding/internal/pkg/errs"
)

// Status represents the lifecycle state of a courier registration.
// It implements a one-way state machine: an admin decision moves a
// courier out of Pending exactly once.
//
// State transitions:
//
//	Pending ──┬──> Approved
//	          └──> Rejected
//
// Approved and Rejected are final states. There is no transition between
// them and no re-entry into Pending.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status after registration.
	// Couriers in this status are awaiting an admin decision.
	Pending

	// Approved indicates the registration was accepted by an admin.
	// This is a final state.
	Approved

	// Rejected indicates the registration was declined by an admin.
	// This is a final state.
	Rejected
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Pending:  "Pending",
		Approved: "Approved",
		Rejected: "Rejected",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:  "Pending",
		Approved: "Approved",
		Rejected: "Rejected",
	}
}

// StatusFromString parses a status from its string representation.
// Used when reconstructing couriers from persistence or external input.
// Returns an error for unknown strings.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Approved, Rejected.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns "Unknown" for invalid status values. Implements fmt.Stringer
// and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateDecide checks whether an admin decision is allowed from the
// current status without performing the transition.
//
// Only Pending couriers can be decided on. Deciding on an Approved or
// Rejected courier is a business-rule violation, not a transient fault.
func (s Status) ValidateDecide() error {
	if s != Pending {
		return errs.NewInvalidStateError("courier status", s.String(), Pending.String())
	}
	return nil
}
