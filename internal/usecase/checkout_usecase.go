package usecase

import (
	"context"

	"pawmart/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckoutUsecase converts a cart into an order.
type CheckoutUsecase interface {
	// Checkout converts the user's cart into a Pending order in one atomic
	// transaction: stock is re-checked under row locks and decremented,
	// order lines snapshot the product name and unit price, low-stock
	// alerts are raised, and the cart is emptied. Any failure rolls the
	// whole conversion back.
	Checkout(ctx context.Context, userID uuid.UUID, deliveryZoneID *uuid.UUID) (*entity.Order, error)
}
