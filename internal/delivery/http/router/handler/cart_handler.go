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

// CartHandler holds dependencies for cart-related handlers.
type CartHandler struct {
	uc usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type addCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required"`
}

// GetCart returns the caller's cart with lines and total.
func (h *CartHandler) GetCart(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	cart, err := h.uc.GetCart(c.Request().Context(), actor.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Cart retrieved successfully")
}

// AddItem puts a product into the caller's cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := h.uc.AddItem(c.Request().Context(), actor.UserID, req.ProductID, req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Item added to cart")
}

// UpdateItem replaces a cart line's quantity.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid cart item id")
	}

	var req updateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}

	item, err := h.uc.UpdateItem(c.Request().Context(), actor.UserID, itemID, req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "Cart item updated")
}

// RemoveItem deletes one cart line.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid cart item id")
	}

	if err := h.uc.RemoveItem(c.Request().Context(), actor.UserID, itemID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Clear empties the caller's cart.
func (h *CartHandler) Clear(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	if err := h.uc.Clear(c.Request().Context(), actor.UserID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
