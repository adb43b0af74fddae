package handler

import (
	"net/http"

	"pawmart/internal/delivery/http/middleware"
	"pawmart/internal/delivery/http/response"
	"pawmart/internal/domain/entity"
	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for checkout and order handlers.
type OrderHandler struct {
	checkoutUC usecase.CheckoutUsecase
	orderUC    usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(checkoutUC usecase.CheckoutUsecase, orderUC usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{
		checkoutUC: checkoutUC,
		orderUC:    orderUC,
	}
}

type checkoutRequest struct {
	DeliveryZoneID *uuid.UUID `json:"delivery_zone_id"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type statusHistoryResponse struct {
	Order         *entity.Order               `json:"order"`
	StatusHistory []*entity.OrderStatusChange `json:"status_history"`
}

// Checkout converts the caller's cart into an order.
func (h *OrderHandler) Checkout(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	// The body is optional; an empty request checks out without a
	// delivery zone.
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}

	order, err := h.checkoutUC.Checkout(c.Request().Context(), actor.UserID, req.DeliveryZoneID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed successfully")
}

// ListOrders returns the caller's orders, or every order for an admin.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// GetStatusHistory returns the order's audit trail.
func (h *OrderHandler) GetStatusHistory(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid order id")
	}

	order, history, err := h.orderUC.GetStatusHistory(c.Request().Context(), actor, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, statusHistoryResponse{
		Order:         order,
		StatusHistory: history,
	}, "Status history retrieved successfully")
}

// UpdateStatus moves the order through the status state machine.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid order id")
	}

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.orderUC.UpdateStatus(c.Request().Context(), actor, orderID, req.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated")
}

// GetOrderQR returns a PNG QR code identifying the order.
func (h *OrderHandler) GetOrderQR(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid order id")
	}

	png, err := h.orderUC.GenerateOrderQR(c.Request().Context(), actor, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
