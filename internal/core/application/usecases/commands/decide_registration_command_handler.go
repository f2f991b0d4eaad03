package commands

import (
	"context"
	"log/slog"

	"onboarding/internal/core/domain/model/courier"
	"onboarding/internal/core/ports"
)

// DecideRegistrationCommandHandler applies an admin verdict to a pending
// courier registration. The status transition and version bump are committed
// first; the courier notification and the courier-validated event are then
// fired through the task dispatcher so that a slow mail server or broker can
// never roll back a recorded decision.
//
// Example:
//
//	handler := NewDecideRegistrationCommandHandler(uowFactory, notifier, publisher, dispatcher, logger)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("Unknown courier")
//	case errors.Is(err, errs.ErrInvalidState):
//	    log.Println("Courier already decided")
//	case errors.Is(err, errs.ErrVersionConflict):
//	    log.Println("Concurrent decision won")
//	case err != nil:
//	    log.Printf("Decision failed: %v", err)
//	}
type DecideRegistrationCommandHandler struct {
	uowFactory DecisionUoWFactory
	notifier   ports.NotificationSender
	publisher  ports.EventPublisher
	tasks      TaskDispatcher
	logger     *slog.Logger
}

// NewDecideRegistrationCommandHandler creates a handler for registration decisions.
func NewDecideRegistrationCommandHandler(
	uowFactory DecisionUoWFactory,
	notifier ports.NotificationSender,
	publisher ports.EventPublisher,
	tasks TaskDispatcher,
	logger *slog.Logger,
) DecideRegistrationCommandHandler {
	return DecideRegistrationCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		publisher:  publisher,
		tasks:      tasks,
		logger:     logger,
	}
}

// Handle processes the registration decision command.
// Loads the courier, applies the verdict (only PENDING couriers accept one),
// and persists the new status under an optimistic version check. Side effects
// run only after a successful commit and never affect the returned error.
func (h DecideRegistrationCommandHandler) Handle(ctx context.Context, command DecideRegistrationCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()

	decidedCourier, err := courierRepo.Get(ctx, command.CourierID())
	if err != nil {
		return err
	}

	if command.Approved() {
		err = decidedCourier.Approve()
	} else {
		err = decidedCourier.Reject()
	}
	if err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, decidedCourier); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.dispatchSideEffects(ctx, uow, decidedCourier, command)

	return nil
}

// dispatchSideEffects queues the decision notification and the
// courier-validated event. The person lookup runs on the base connection
// since the transaction is already committed; when it fails the decision
// stands and only the side effects are skipped.
func (h DecideRegistrationCommandHandler) dispatchSideEffects(
	ctx context.Context,
	uow DecisionUoW,
	decidedCourier *courier.Courier,
	command DecideRegistrationCommand,
) {
	courierPerson, err := uow.PersonRepository().Get(ctx, decidedCourier.PersonID())
	if err != nil {
		h.logger.ErrorContext(ctx, "decision committed but person lookup failed, side effects skipped",
			"courier_id", decidedCourier.ID().String(),
			"person_id", decidedCourier.PersonID().String(),
			"error", err)
		return
	}

	email := courierPerson.Email()
	approved := command.Approved()
	reason := command.Reason()

	h.tasks.Submit("decision-notification", func(ctx context.Context) {
		if approved {
			h.notifier.SendAccountApproved(ctx, email)
		} else {
			h.notifier.SendAccountRejected(ctx, email, reason)
		}
	})

	event := ports.CourierValidatedEvent{
		CourierID: decidedCourier.ID(),
		Approved:  approved,
	}
	h.tasks.Submit("courier-validated-event", func(ctx context.Context) {
		h.publisher.PublishCourierValidated(ctx, event)
	})
}
