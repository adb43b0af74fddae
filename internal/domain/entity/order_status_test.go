package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOrderStatus(t *testing.T) {
	for _, status := range OrderStatuses {
		parsed, ok := ParseOrderStatus(string(status))
		assert.True(t, ok)
		assert.Equal(t, status, parsed)
	}

	_, ok := ParseOrderStatus("Shipped")
	assert.False(t, ok)

	// Matching is exact, not case folded.
	_, ok = ParseOrderStatus("pending")
	assert.False(t, ok)
}

func TestOrderStatus_Terminal(t *testing.T) {
	assert.False(t, OrderStatusPending.Terminal())
	assert.False(t, OrderStatusApproved.Terminal())
	assert.False(t, OrderStatusOutForDelivery.Terminal())
	assert.True(t, OrderStatusDelivered.Terminal())
	assert.True(t, OrderStatusCancelled.Terminal())
}

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	allowed := map[OrderStatus][]OrderStatus{
		OrderStatusPending:        {OrderStatusApproved, OrderStatusCancelled},
		OrderStatusApproved:       {OrderStatusOutForDelivery, OrderStatusCancelled},
		OrderStatusOutForDelivery: {OrderStatusDelivered, OrderStatusCancelled},
		OrderStatusDelivered:      {},
		OrderStatusCancelled:      {},
	}

	for _, from := range OrderStatuses {
		for _, to := range OrderStatuses {
			want := false
			for _, next := range allowed[from] {
				if next == to {
					want = true

					break
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}
