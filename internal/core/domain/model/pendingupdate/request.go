package pendingupdate

import (
	"errors"
	"fmt"

	"onboarding/internal/core/domain/model/kernel"
	"onboarding/internal/pkg/errs"
	"onboarding/internal/pkg/guard"
)

// Domain errors for pending-update operations.
var (
	// ErrPayloadIsRequired is returned when creating a request without a payload document.
	ErrPayloadIsRequired = errs.NewValueIsRequiredError("payload")
	// ErrRequestIsNotConstructed is returned when using an improperly initialized Request.
	ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest constructor")
)

// RequestStatus is the lifecycle state of a pending-update request.
// A request exists as PendingReview until an admin resolves it: an applied
// request is deleted outright, a declined one is marked RequestRejected and
// retained for audit.
type RequestStatus int

const (
	// UnknownRequestStatus represents an invalid or undefined request status.
	UnknownRequestStatus RequestStatus = iota

	// PendingReview is the initial status of a staged update.
	PendingReview

	// RequestRejected indicates an admin declined the staged update.
	RequestRejected
)

func getRequestStatusStrings() map[RequestStatus]string {
	return map[RequestStatus]string{
		UnknownRequestStatus: "Unknown",
		PendingReview:        "PendingReview",
		RequestRejected:      "Rejected",
	}
}

// RequestStatusFromString parses a request status from its string representation.
func RequestStatusFromString(s string) (RequestStatus, error) {
	for status, str := range getRequestStatusStrings() {
		if status != UnknownRequestStatus && str == s {
			return status, nil
		}
	}
	return UnknownRequestStatus, errs.NewValueIsInvalidErrorWithCause(
		"request status", fmt.Errorf("%q is not a valid request status", s))
}

// Validate checks if the RequestStatus value is valid.
func (s RequestStatus) Validate() error {
	if s != PendingReview && s != RequestRejected {
		return errs.NewValueIsInvalidErrorWithCause(
			"request status is invalid", fmt.Errorf("%d is not a valid request status", s))
	}
	return nil
}

// String returns the human-readable name of the request status.
func (s RequestStatus) String() string {
	if str, ok := getRequestStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Request is a staged, admin-reviewable change to a courier's profile.
// It carries the raw payload document as submitted; the typed ProfilePatch is
// only produced when an admin approves the request, so a malformed document
// is discovered at resolution time and the request stays retryable.
type Request struct {
	// id uniquely identifies the request
	id kernel.UUID
	// courierID identifies the courier the change targets
	courierID kernel.UUID
	// payload is the staged partial-update document, opaque until parsed
	payload []byte
	// status tracks whether the request awaits review or was declined
	status RequestStatus
	// guard ensures the request was properly constructed
	guard guard.ConstructorGuard
}

// NewRequest creates a staged update request in PendingReview.
func NewRequest(id, courierID kernel.UUID, payload []byte) (*Request, error) {
	request := &Request{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		request.setID(id),
		request.setCourierID(courierID),
		request.setPayload(payload),
	); err != nil {
		return nil, err
	}

	request.status = PendingReview
	return request, nil
}

// RestoreRequest reconstructs a request from persistent storage.
func RestoreRequest(id, courierID kernel.UUID, payload []byte, status RequestStatus) (*Request, error) {
	request := &Request{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		request.setID(id),
		request.setCourierID(courierID),
		request.setPayload(payload),
		request.setStatus(status),
	); err != nil {
		return nil, err
	}

	return request, nil
}

// Validate checks if the Request was properly constructed using a constructor.
func (r *Request) Validate() error {
	if r == nil {
		return ErrRequestIsNotConstructed
	}
	return r.guard.Validate(ErrRequestIsNotConstructed)
}

// ID returns the unique identifier of the request.
func (r *Request) ID() kernel.UUID {
	return r.id
}

// CourierID returns the identifier of the targeted courier.
func (r *Request) CourierID() kernel.UUID {
	return r.courierID
}

// Payload returns the staged partial-update document as submitted.
// The returned slice is a copy to prevent external modification.
func (r *Request) Payload() []byte {
	out := make([]byte, len(r.payload))
	copy(out, r.payload)
	return out
}

// Status returns the lifecycle state of the request.
func (r *Request) Status() RequestStatus {
	return r.status
}

// Parse decodes the staged payload into a typed ProfilePatch.
// The request itself is not mutated: a MalformedPayloadError leaves it
// untouched so a corrected resubmission remains possible.
func (r *Request) Parse() (ProfilePatch, error) {
	return ParseProfilePatch(r.payload)
}

// Reject marks the request as declined. The request is retained for audit
// instead of being deleted.
func (r *Request) Reject() {
	r.status = RequestRejected
}

func (r *Request) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	r.id = id
	return nil
}

func (r *Request) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	r.courierID = courierID
	return nil
}

func (r *Request) setPayload(payload []byte) error {
	if len(payload) == 0 {
		return ErrPayloadIsRequired
	}

	r.payload = make([]byte, len(payload))
	copy(r.payload, payload)
	return nil
}

func (r *Request) setStatus(status RequestStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}

	r.status = status
	return nil
}
