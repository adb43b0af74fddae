package entity

import (
	"time"

	"github.com/google/uuid"
)

// Cart is the per-user staging area of intended purchases. One cart exists
// per user; a successful checkout empties it but never deletes it.
type Cart struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CartItem is a (cart, product) line. The pair is unique; adding the same
// product again increments the quantity instead of duplicating the line.
type CartItem struct {
	ID        uuid.UUID `json:"id"`
	CartID    uuid.UUID `json:"cart_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`

	// Product is the live catalog record, loaded for display and for
	// stock ceiling checks. It is not a snapshot.
	Product *Product `json:"product,omitempty"`
}

// Subtotal is the line value at the product's current catalog price.
func (i *CartItem) Subtotal() int64 {
	if i.Product == nil {
		return 0
	}

	return i.Product.Price * int64(i.Quantity)
}
