package repository

import (
	"context"

	"pawmart/internal/domain/entity"
	"pawmart/internal/errors"

	"github.com/google/uuid"
)

// ErrAlertNotFound is returned when no alert matches the lookup.
var ErrAlertNotFound = errors.New("inventory alert not found")

// InventoryAlertRepository persists low-stock alerts.
type InventoryAlertRepository interface {
	// CreateAlertIfAbsent inserts the alert unless one already exists for
	// the product. The unique product constraint backstops the existence
	// check against concurrent checkouts. Returns true when a row was
	// inserted.
	CreateAlertIfAbsent(ctx context.Context, alert *entity.InventoryAlert) (bool, error)

	// ListAlerts retrieves all alerts, newest first.
	ListAlerts(ctx context.Context) ([]*entity.InventoryAlert, error)

	// DeleteAlert removes an alert. Deleting an absent alert is a no-op,
	// not an error.
	DeleteAlert(ctx context.Context, id uuid.UUID) error
}
