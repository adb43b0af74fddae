package repository

import (
	"context"

	"pawmart/internal/domain/entity"
	"pawmart/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrCartNotFound is returned when the user has no cart yet.
	ErrCartNotFound = errors.New("cart not found")
	// ErrCartItemNotFound is returned when no cart item matches the lookup.
	ErrCartItemNotFound = errors.New("cart item not found")
)

// CartRepository persists per-user carts and their lines.
type CartRepository interface {
	// EnsureCart returns the user's cart, creating it when absent.
	EnsureCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// FindCartByUser retrieves the user's cart without creating one.
	FindCartByUser(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// FindCartItems retrieves the cart's lines with products loaded, in the
	// order they were added.
	FindCartItems(ctx context.Context, cartID uuid.UUID) ([]*entity.CartItem, error)

	// FindCartItemByID retrieves one line with its cart and product loaded.
	FindCartItemByID(ctx context.Context, itemID uuid.UUID) (*entity.CartItem, error)

	// UpsertCartItem adds quantity to the (cart, product) line, creating the
	// line when it does not exist yet.
	UpsertCartItem(ctx context.Context, cartID, productID uuid.UUID, quantity int) (*entity.CartItem, error)

	// UpdateCartItemQuantity replaces the line's quantity.
	UpdateCartItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error

	// DeleteCartItem removes one line.
	DeleteCartItem(ctx context.Context, itemID uuid.UUID) error

	// ClearCartItems removes every line of the cart. The cart row persists.
	ClearCartItems(ctx context.Context, cartID uuid.UUID) error

	// DeleteCartItemsByProduct removes the product's lines from all carts.
	DeleteCartItemsByProduct(ctx context.Context, productID uuid.UUID) error
}
