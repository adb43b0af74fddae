package usecase

import (
	"context"

	"pawmart/internal/domain/entity"

	"github.com/google/uuid"
)

// InventoryUsecase defines the interface for low-stock alert use cases.
// Alerts are created only inside the checkout transaction; this interface
// covers the admin's read and acknowledge side.
type InventoryUsecase interface {
	// ListAlerts retrieves all open alerts, newest first. Admin only.
	ListAlerts(ctx context.Context, actor Actor) ([]*entity.InventoryAlert, error)

	// DeleteAlert acknowledges an alert. Admin only; deleting an absent
	// alert succeeds.
	DeleteAlert(ctx context.Context, actor Actor, alertID uuid.UUID) error
}
