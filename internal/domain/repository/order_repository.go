package repository

import (
	"context"

	"pawmart/internal/domain/entity"
	"pawmart/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when no order matches the lookup.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository persists orders, their lines and the append-only status
// history.
type OrderRepository interface {
	// CreateOrder persists a new order together with its items.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order with its items.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrdersByUser retrieves the user's orders, newest first.
	FindOrdersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// ListOrders retrieves all orders, newest first.
	ListOrders(ctx context.Context) ([]*entity.Order, error)

	// UpdateOrderStatus sets the order's status field.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error

	// AppendStatusHistory appends one audit entry. Entries are never
	// updated or deleted.
	AppendStatusHistory(ctx context.Context, change *entity.OrderStatusChange) error

	// FindStatusHistory retrieves the order's audit trail in chronological
	// order.
	FindStatusHistory(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderStatusChange, error)

	// CountOrderItemsByProduct counts historical order lines referencing
	// the product. Product deletion is forbidden while this is non-zero.
	CountOrderItemsByProduct(ctx context.Context, productID uuid.UUID) (int64, error)
}
