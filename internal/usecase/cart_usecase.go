package usecase

import (
	"context"

	"pawmart/internal/domain/entity"

	"github.com/google/uuid"
)

// CartView is the cart with its lines and the running total at current
// catalog prices.
type CartView struct {
	CartID uuid.UUID          `json:"cart_id"`
	Items  []*entity.CartItem `json:"items"`
	Total  int64              `json:"total"`
}

// CartUsecase defines the interface for cart management use cases
type CartUsecase interface {
	// GetCart retrieves the user's cart with lines and total. A user who
	// never added anything gets an empty view, not an error.
	GetCart(ctx context.Context, userID uuid.UUID) (*CartView, error)

	// AddItem puts quantity of a product into the cart, merging with an
	// existing line for the same product.
	AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entity.CartItem, error)

	// UpdateItem replaces the line's quantity.
	UpdateItem(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*entity.CartItem, error)

	// RemoveItem deletes one line from the user's cart.
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error

	// Clear removes every line from the user's cart. Clearing an empty or
	// absent cart succeeds.
	Clear(ctx context.Context, userID uuid.UUID) error
}
