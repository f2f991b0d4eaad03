package commands

import (
	"errors"

	"onboarding/internal/core/domain/model/kernel"
	"onboarding/internal/pkg/guard"
)

var ErrResolvePendingUpdateCommandIsNotConstructed = errors.New(
	"ResolvePendingUpdateCommand must be created via NewResolvePendingUpdateCommand constructor",
)

// ResolvePendingUpdateCommand represents an admin verdict on a staged
// profile-change request. Approval applies the staged fields to the courier
// and its logistics profile and consumes the request; rejection discards the
// staged fields and keeps the request around marked as rejected.
type ResolvePendingUpdateCommand struct { //nolint:recvcheck //using for validation
	updateID kernel.UUID
	approved bool

	guard guard.ConstructorGuard
}

// NewResolvePendingUpdateCommand creates a command resolving a staged update request.
func NewResolvePendingUpdateCommand(updateID kernel.UUID, approved bool) (ResolvePendingUpdateCommand, error) {
	resolveCommand := ResolvePendingUpdateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := resolveCommand.setUpdateID(updateID); err != nil {
		return ResolvePendingUpdateCommand{}, err
	}

	resolveCommand.approved = approved

	return resolveCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrResolvePendingUpdateCommandIsNotConstructed if validation fails.
func (c ResolvePendingUpdateCommand) Validate() error {
	return c.guard.Validate(ErrResolvePendingUpdateCommandIsNotConstructed)
}

// UpdateID returns the identifier of the staged update request.
func (c ResolvePendingUpdateCommand) UpdateID() kernel.UUID {
	return c.updateID
}

// Approved reports whether the staged fields should be applied.
func (c ResolvePendingUpdateCommand) Approved() bool {
	return c.approved
}

func (c *ResolvePendingUpdateCommand) setUpdateID(updateID kernel.UUID) error {
	if err := updateID.Validate(); err != nil {
		return err
	}

	c.updateID = updateID
	return nil
}
