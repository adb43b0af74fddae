package usecase

import (
	"context"

	"pawmart/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderUsecase defines the interface for order management use cases
type OrderUsecase interface {
	// ListOrders retrieves the actor's own orders, or every order for an
	// admin.
	ListOrders(ctx context.Context, actor Actor) ([]*entity.Order, error)

	// GetOrder retrieves one order. Allowed to the order's owner or an admin.
	GetOrder(ctx context.Context, actor Actor, orderID uuid.UUID) (*entity.Order, error)

	// UpdateStatus moves the order to a new status. Admin only; the raw
	// status must name a recognized state and the move must be a legal
	// transition. Success appends exactly one history entry.
	UpdateStatus(ctx context.Context, actor Actor, orderID uuid.UUID, rawStatus string) (*entity.Order, error)

	// GetStatusHistory retrieves the order together with its audit trail in
	// chronological order. Allowed to the order's owner or an admin; other
	// authenticated users are forbidden.
	GetStatusHistory(ctx context.Context, actor Actor, orderID uuid.UUID) (*entity.Order, []*entity.OrderStatusChange, error)

	// GenerateOrderQR renders a PNG QR code identifying the order for
	// pickup verification. Allowed to the order's owner or an admin.
	GenerateOrderQR(ctx context.Context, actor Actor, orderID uuid.UUID) ([]byte, error)
}
