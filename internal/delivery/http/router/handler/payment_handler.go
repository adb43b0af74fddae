package handler

import (
	"net/http"

	"pawmart/internal/delivery/http/middleware"
	"pawmart/internal/delivery/http/response"
	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PaymentHandler holds dependencies for payment handlers.
type PaymentHandler struct {
	uc usecase.PaymentUsecase
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

type recordPaymentRequest struct {
	OrderID       *uuid.UUID `json:"order_id"`
	AppointmentID *uuid.UUID `json:"appointment_id"`
	Method        string     `json:"payment_method" validate:"required"`
	Amount        int64      `json:"amount" validate:"required"`
}

type mpesaInitiateRequest struct {
	OrderID       *uuid.UUID `json:"order_id"`
	AppointmentID *uuid.UUID `json:"appointment_id"`
	PhoneNumber   string     `json:"phone_number" validate:"required"`
	Amount        int64      `json:"amount" validate:"required"`
}

// RecordPayment persists a payment attempt.
func (h *PaymentHandler) RecordPayment(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req recordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	payment, err := h.uc.RecordPayment(c.Request().Context(), actor.UserID, &usecase.PaymentInput{
		OrderID:       req.OrderID,
		AppointmentID: req.AppointmentID,
		Method:        req.Method,
		Amount:        req.Amount,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, payment, "Payment recorded successfully")
}

// InitiateMpesa simulates an M-Pesa STK push.
func (h *PaymentHandler) InitiateMpesa(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req mpesaInitiateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid M-Pesa input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	payment, err := h.uc.InitiateMpesa(c.Request().Context(), actor.UserID, &usecase.MpesaInitiateInput{
		OrderID:       req.OrderID,
		AppointmentID: req.AppointmentID,
		PhoneNumber:   req.PhoneNumber,
		Amount:        req.Amount,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, payment, "M-Pesa payment initiated")
}

// ListOwnPayments returns the caller's payments.
func (h *PaymentHandler) ListOwnPayments(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	payments, err := h.uc.ListOwnPayments(c.Request().Context(), actor.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payments, "Payments retrieved successfully")
}

// ListUserPayments returns another user's payments. Admin only.
func (h *PaymentHandler) ListUserPayments(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid user id")
	}

	payments, err := h.uc.ListUserPayments(c.Request().Context(), actor, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payments, "Payments retrieved successfully")
}
