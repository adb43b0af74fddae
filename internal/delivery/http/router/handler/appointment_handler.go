package handler

import (
	"net/http"
	"time"

	"pawmart/internal/delivery/http/middleware"
	"pawmart/internal/delivery/http/response"
	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AppointmentHandler holds dependencies for booking handlers.
type AppointmentHandler struct {
	uc usecase.AppointmentUsecase
}

// NewAppointmentHandler is the constructor for AppointmentHandler, injected by Fx.
func NewAppointmentHandler(uc usecase.AppointmentUsecase) *AppointmentHandler {
	return &AppointmentHandler{uc: uc}
}

type bookAppointmentRequest struct {
	ServiceID       uuid.UUID `json:"service_id" validate:"required"`
	AppointmentDate time.Time `json:"appointment_date" validate:"required"`
	Notes           string    `json:"notes"`
}

type updateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// BookAppointment books a service offering.
func (h *AppointmentHandler) BookAppointment(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req bookAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid appointment input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	appointment, err := h.uc.BookAppointment(c.Request().Context(), actor.UserID, &usecase.AppointmentInput{
		ServiceID:       req.ServiceID,
		AppointmentDate: req.AppointmentDate,
		Notes:           req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, appointment, "Appointment booked successfully")
}

// ListAppointments returns the caller's bookings, or all for an admin.
func (h *AppointmentHandler) ListAppointments(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	appointments, err := h.uc.ListAppointments(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, appointments, "Appointments retrieved successfully")
}

// UpdateAppointmentStatus sets the booking's status. Admin only.
func (h *AppointmentHandler) UpdateAppointmentStatus(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid appointment id")
	}

	var req updateAppointmentStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	appointment, err := h.uc.UpdateAppointmentStatus(c.Request().Context(), actor, appointmentID, req.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, appointment, "Appointment status updated")
}

// DeleteAppointment removes a booking. Admin only.
func (h *AppointmentHandler) DeleteAppointment(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid appointment id")
	}

	if err := h.uc.DeleteAppointment(c.Request().Context(), actor, appointmentID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
