package model

import (
	"time"

	"github.com/google/uuid"
)

// InventoryAlertModel is the GORM-specific struct for the
// 'inventory_alerts' table. The unique product index is the backstop for
// the at-most-one-alert-per-product invariant under concurrent checkouts.
type InventoryAlertModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Threshold int       `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (InventoryAlertModel) TableName() string {
	return "inventory_alerts"
}
