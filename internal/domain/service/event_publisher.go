package service

import (
	"context"
)

// Event types published by the commerce core.
const (
	EventTypeOrderCreated = "order.created"
	EventTypeLowStock     = "inventory.low_stock"
)

// CommerceEvent is a domain event emitted after a checkout commits. Events
// are best effort: a publish failure is logged, never surfaced to the buyer.
type CommerceEvent struct {
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing
	EventType   string `json:"event_type"`
	OrderID     string `json:"order_id,omitempty"`
	UserID      string `json:"user_id,omitempty"`
	ProductID   string `json:"product_id,omitempty"`
	ProductName string `json:"product_name,omitempty"`
	TotalAmount int64  `json:"total_amount,omitempty"`
	StockLeft   int    `json:"stock_left,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCommerceEvent publishes a commerce event for async processing
	PublishCommerceEvent(ctx context.Context, event *CommerceEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
