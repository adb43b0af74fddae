package entity

// OrderStatus is the lifecycle state of an order. The normal path is
// Pending -> Approved -> Out for Delivery -> Delivered; Cancelled is
// reachable from any non-terminal state. Delivered and Cancelled are
// terminal.
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "Pending"
	OrderStatusApproved       OrderStatus = "Approved"
	OrderStatusOutForDelivery OrderStatus = "Out for Delivery"
	OrderStatusDelivered      OrderStatus = "Delivered"
	OrderStatusCancelled      OrderStatus = "Cancelled"
)

// OrderStatuses lists every recognized status in lifecycle order. Error
// messages enumerate this set.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusApproved,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// ParseOrderStatus maps a raw string onto a recognized status.
func ParseOrderStatus(raw string) (OrderStatus, bool) {
	for _, status := range OrderStatuses {
		if string(status) == raw {
			return status, true
		}
	}

	return "", false
}

// Terminal reports whether no further transition is allowed from s.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo reports whether moving from s to next is a legal
// transition. Only adjacent forward steps are allowed; Cancelled is legal
// from any non-terminal state.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.Terminal() {
		return false
	}
	if next == OrderStatusCancelled {
		return true
	}

	switch s {
	case OrderStatusPending:
		return next == OrderStatusApproved
	case OrderStatusApproved:
		return next == OrderStatusOutForDelivery
	case OrderStatusOutForDelivery:
		return next == OrderStatusDelivered
	default:
		return false
	}
}
