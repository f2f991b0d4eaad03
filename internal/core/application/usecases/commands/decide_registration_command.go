package commands

import (
	"errors"

	"onboarding/internal/core/domain/model/kernel"
	"onboarding/internal/pkg/guard"
)

var ErrDecideRegistrationCommandIsNotConstructed = errors.New(
	"DecideRegistrationCommand must be created via NewDecideRegistrationCommand constructor",
)

// DecideRegistrationCommand represents an admin verdict on a pending courier
// registration. Approved verdicts activate the account; rejected verdicts
// close it, optionally with a human-readable reason that is relayed to the
// courier.
//
// Example:
//
//	cmd, err := NewDecideRegistrationCommand(courierID, false, "illegible documents")
//	if err != nil {
//	    return fmt.Errorf("invalid decision: %w", err)
//	}
//
//	handler := NewDecideRegistrationCommandHandler(uowFactory, notifier, publisher, dispatcher, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to record decision: %w", err)
//	}
type DecideRegistrationCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	approved  bool
	reason    string

	guard guard.ConstructorGuard
}

// NewDecideRegistrationCommand creates a command carrying an admin decision.
// The reason is only meaningful for rejections and may be empty.
func NewDecideRegistrationCommand(courierID kernel.UUID, approved bool, reason string) (DecideRegistrationCommand, error) {
	decideCommand := DecideRegistrationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := decideCommand.setCourierID(courierID); err != nil {
		return DecideRegistrationCommand{}, err
	}

	decideCommand.approved = approved
	decideCommand.reason = reason

	return decideCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDecideRegistrationCommandIsNotConstructed if validation fails.
func (c DecideRegistrationCommand) Validate() error {
	return c.guard.Validate(ErrDecideRegistrationCommandIsNotConstructed)
}

// CourierID returns the identifier of the courier being decided on.
func (c DecideRegistrationCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Approved reports whether the admin approved the registration.
func (c DecideRegistrationCommand) Approved() bool {
	return c.approved
}

// Reason returns the rejection reason. Empty for approvals.
func (c DecideRegistrationCommand) Reason() string {
	return c.reason
}

func (c *DecideRegistrationCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}
