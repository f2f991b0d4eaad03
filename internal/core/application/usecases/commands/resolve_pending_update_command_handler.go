package commands

import (
	"context"

	"onboarding/internal/core/domain/model/logistics"
)

// ResolvePendingUpdateCommandHandler resolves a staged profile-change request.
// Approval re-parses the staged payload, applies each present field to the
// owning courier and its logistics profile, and deletes the consumed request.
// All writes share one transaction so a failure midway leaves the courier,
// the profile, and the request exactly as they were.
//
// Example:
//
//	handler := NewResolvePendingUpdateCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("Unknown update request")
//	case errors.Is(err, errs.ErrMalformedPayload):
//	    log.Println("Staged payload cannot be applied")
//	case err != nil:
//	    log.Printf("Resolution failed: %v", err)
//	}
type ResolvePendingUpdateCommandHandler struct {
	uowFactory ReconciliationUoWFactory
}

// NewResolvePendingUpdateCommandHandler creates a handler for staged update resolutions.
func NewResolvePendingUpdateCommandHandler(uowFactory ReconciliationUoWFactory) ResolvePendingUpdateCommandHandler {
	return ResolvePendingUpdateCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the resolution command.
// Rejection marks the request rejected and touches nothing else. Approval
// applies only the fields present in the staged payload; absent and null
// fields leave current values untouched. A payload that fails to parse
// returns a MalformedPayloadError and no state changes.
func (h ResolvePendingUpdateCommandHandler) Handle(ctx context.Context, command ResolvePendingUpdateCommand) error {
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

	requestRepo := uow.PendingUpdateRepository()

	request, err := requestRepo.Get(ctx, command.UpdateID())
	if err != nil {
		return err
	}

	if !command.Approved() {
		request.Reject()
		if err = requestRepo.Update(ctx, request); err != nil {
			return err
		}
		return uow.Commit(ctx)
	}

	patch, err := request.Parse()
	if err != nil {
		return err
	}

	// The courier is loaded even for logistics-only patches: a request whose
	// courier is gone must not be silently consumed.
	courierRepo := uow.CourierRepository()

	patchedCourier, err := courierRepo.Get(ctx, request.CourierID())
	if err != nil {
		return err
	}

	if patch.TouchesCourier() {
		if patch.CommercialName != nil {
			if err = patchedCourier.ChangeCommercialName(*patch.CommercialName); err != nil {
				return err
			}
		}
		if patch.CommercialRegister != nil {
			if err = patchedCourier.ChangeCommercialRegister(*patch.CommercialRegister); err != nil {
				return err
			}
		}

		if err = courierRepo.Update(ctx, patchedCourier); err != nil {
			return err
		}
	}

	if patch.TouchesLogistics() {
		logisticsRepo := uow.LogisticsRepository()

		profile, getErr := logisticsRepo.GetByCourierID(ctx, patchedCourier.ID())
		if getErr != nil {
			return getErr
		}

		if patch.LogisticsType != nil {
			logisticsType, typeErr := logistics.TypeFromString(*patch.LogisticsType)
			if typeErr != nil {
				return typeErr
			}
			if err = profile.ChangeLogisticsType(logisticsType); err != nil {
				return err
			}
		}
		if patch.DocumentImage != nil {
			if err = profile.ChangeDocumentImage(*patch.DocumentImage); err != nil {
				return err
			}
		}

		if err = logisticsRepo.Update(ctx, profile); err != nil {
			return err
		}
	}

	if err = requestRepo.Delete(ctx, request.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
