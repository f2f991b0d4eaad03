// Package http exposes the admin review workflows over an echo HTTP server.
package http

import (
	"errors"
	"net/http"

	"onboarding/internal/core/application/usecases/commands"
	"onboarding/internal/core/application/usecases/queries"
	"onboarding/internal/core/domain/model/kernel"
	"onboarding/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	decideRegistrationHandler   commands.DecideRegistrationCommandHandler
	resolvePendingUpdateHandler commands.ResolvePendingUpdateCommandHandler

	// Query handlers
	getCourierDetailsHandler queries.GetCourierDetailsQueryHandler
	getReviewBacklogHandler  queries.GetReviewBacklogQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	decideRegistrationHandler commands.DecideRegistrationCommandHandler,
	resolvePendingUpdateHandler commands.ResolvePendingUpdateCommandHandler,
	getCourierDetailsHandler queries.GetCourierDetailsQueryHandler,
	getReviewBacklogHandler queries.GetReviewBacklogQueryHandler,
) *Server {
	return &Server{
		decideRegistrationHandler:   decideRegistrationHandler,
		resolvePendingUpdateHandler: resolvePendingUpdateHandler,
		getCourierDetailsHandler:    getCourierDetailsHandler,
		getReviewBacklogHandler:     getReviewBacklogHandler,
	}
}

// RegisterRoutes mounts the admin API onto the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	admin := e.Group("/api/admin")
	admin.POST("/delivery-persons/validate", s.ValidateRegistration)
	admin.POST("/delivery-persons/updates/:updateId/review", s.ReviewUpdate)
	admin.GET("/delivery-persons/:id", s.GetCourierDetails)
	admin.GET("/review-backlog", s.GetReviewBacklog)
}

// errorResponse is the uniform error body of the admin API.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// validateRegistrationRequest carries an admin verdict on a registration.
type validateRegistrationRequest struct {
	CourierID string `json:"courierId"`
	Approved  bool   `json:"approved"`
	Reason    string `json:"reason"`
}

// reviewUpdateRequest carries an admin verdict on a staged profile update.
// Reason is accepted for API compatibility; resolving an update does not
// notify the courier, so it is not used.
type reviewUpdateRequest struct {
	Approved bool   `json:"approved"`
	Reason   string `json:"reason"`
}

// courierDetailsResponse is the wire form of the courier review card.
type courierDetailsResponse struct {
	ID             string `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Status         string `json:"status"`
	CommercialName string `json:"commercialName"`
}

// reviewBacklogResponse is the wire form of the outstanding review work counts.
type reviewBacklogResponse struct {
	PendingRegistrations int `json:"pendingRegistrations"`
	UnresolvedUpdates    int `json:"unresolvedUpdates"`
}

// ValidateRegistration handles POST /api/admin/delivery-persons/validate.
// Records an approve/reject verdict on a pending courier registration.
func (s *Server) ValidateRegistration(ctx echo.Context) error {
	var request validateRegistrationRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	courierID, err := kernel.UUIDFromString(request.CourierID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid courier ID",
		})
	}

	cmd, err := commands.NewDecideRegistrationCommand(courierID, request.Approved, request.Reason)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid decision data: " + err.Error(),
		})
	}

	if handleErr := s.decideRegistrationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.mapError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReviewUpdate handles POST /api/admin/delivery-persons/updates/:updateId/review.
// Applies or discards a staged profile-change request.
func (s *Server) ReviewUpdate(ctx echo.Context) error {
	updateID, err := kernel.UUIDFromString(ctx.Param("updateId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid update ID",
		})
	}

	var request reviewUpdateRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewResolvePendingUpdateCommand(updateID, request.Approved)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid resolution data: " + err.Error(),
		})
	}

	if handleErr := s.resolvePendingUpdateHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.mapError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCourierDetails handles GET /api/admin/delivery-persons/:id.
// Returns the courier review card joined with the person behind the account.
func (s *Server) GetCourierDetails(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid courier ID",
		})
	}

	query, err := queries.NewGetCourierDetailsQuery(courierID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid query data: " + err.Error(),
		})
	}

	details, err := s.getCourierDetailsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, courierDetailsResponse{
		ID:             details.ID.String(),
		FirstName:      details.FirstName,
		LastName:       details.LastName,
		Email:          details.Email,
		Phone:          details.Phone,
		Status:         details.Status,
		CommercialName: details.CommercialName,
	})
}

// GetReviewBacklog handles GET /api/admin/review-backlog.
// Returns the counts of registrations and staged updates awaiting review.
func (s *Server) GetReviewBacklog(ctx echo.Context) error {
	query := queries.NewGetReviewBacklogQuery()

	backlog, err := s.getReviewBacklogHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, reviewBacklogResponse{
		PendingRegistrations: backlog.PendingRegistrations,
		UnresolvedUpdates:    backlog.UnresolvedUpdates,
	})
}

// mapError translates domain error kinds to HTTP statuses.
func (s *Server) mapError(ctx echo.Context, err error) error {
	var status int

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidState), errors.Is(err, errs.ErrVersionConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrMalformedPayload),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		status = http.StatusUnprocessableEntity
	default:
		status = http.StatusInternalServerError
	}

	return ctx.JSON(status, errorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
