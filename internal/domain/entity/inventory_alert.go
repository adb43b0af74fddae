package entity

import (
	"time"

	"github.com/google/uuid"
)

// InventoryAlert marks a product whose stock fell at or below the
// configured threshold during a checkout. At most one alert exists per
// product; an admin clears it explicitly, replenishing stock does not.
type InventoryAlert struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Threshold int       `json:"threshold"`
	CreatedAt time.Time `json:"created_at"`
}
