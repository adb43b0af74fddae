package impl

import (
	"context"

	"pawmart/internal/domain/entity"
	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/domain/repository"
	"pawmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type inventoryService struct {
	alertRepo repository.InventoryAlertRepository
}

// InventoryServiceParams holds dependencies for InventoryService, injected by Fx.
type InventoryServiceParams struct {
	fx.In

	AlertRepo repository.InventoryAlertRepository
}

// NewInventoryService creates a new inventory service instance
func NewInventoryService(params InventoryServiceParams) usecase.InventoryUsecase {
	return &inventoryService{
		alertRepo: params.AlertRepo,
	}
}

// ListAlerts retrieves all open alerts, newest first. Admin only.
func (s *inventoryService) ListAlerts(ctx context.Context, actor usecase.Actor) ([]*entity.InventoryAlert, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}

	alerts, err := s.alertRepo.ListAlerts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list inventory alerts")
	}

	return alerts, nil
}

// DeleteAlert acknowledges an alert. Deleting an absent alert succeeds.
func (s *inventoryService) DeleteAlert(ctx context.Context, actor usecase.Actor, alertID uuid.UUID) error {
	if !actor.IsAdmin() {
		return domainerrors.ErrForbidden
	}

	if err := s.alertRepo.DeleteAlert(ctx, alertID); err != nil {
		return errors.Wrap(err, "failed to delete inventory alert")
	}

	return nil
}
