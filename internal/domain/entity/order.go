package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order is the immutable record of a committed purchase. Only Status may
// change after creation, and only through the status state machine.
type Order struct {
	ID             uuid.UUID   `json:"id"`
	UserID         uuid.UUID   `json:"user_id"`
	DeliveryZoneID *uuid.UUID  `json:"delivery_zone_id,omitempty"`
	Status         OrderStatus `json:"status"`
	TotalAmount    int64       `json:"total_amount"`
	CreatedAt      time.Time   `json:"created_at"`

	Items []OrderItem `json:"items"`
}

// OrderItem is one purchased line. ProductName and UnitPrice are snapshots
// taken at checkout time; later catalog changes never alter them.
type OrderItem struct {
	ID          uuid.UUID `json:"id"`
	OrderID     uuid.UUID `json:"order_id"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	UnitPrice   int64     `json:"unit_price"`
	Subtotal    int64     `json:"subtotal"`
}

// OrderStatusChange is one append-only audit entry. Entries are never
// updated or deleted.
type OrderStatusChange struct {
	ID        uuid.UUID   `json:"id"`
	OrderID   uuid.UUID   `json:"order_id"`
	Status    OrderStatus `json:"status"`
	ChangedAt time.Time   `json:"changed_at"`
}
