package postgres

import (
	"context"

	"pawmart/internal/domain/entity"
	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/domain/repository"
	"pawmart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// inventoryAlertRepository implements the repository.InventoryAlertRepository interface.
type inventoryAlertRepository struct {
	db *gorm.DB
}

// NewInventoryAlertRepository is the constructor for inventoryAlertRepository.
func NewInventoryAlertRepository(db *gorm.DB) repository.InventoryAlertRepository {
	return &inventoryAlertRepository{
		db: db,
	}
}

// CreateAlertIfAbsent inserts the alert unless one already exists for the
// product. ON CONFLICT DO NOTHING on the unique product index closes the
// check-then-insert race between concurrent checkouts.
func (repo *inventoryAlertRepository) CreateAlertIfAbsent(ctx context.Context, alert *entity.InventoryAlert) (bool, error) {
	alertM := &model.InventoryAlertModel{
		ID:        alert.ID,
		ProductID: alert.ProductID,
		Threshold: alert.Threshold,
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}},
			DoNothing: true,
		}).
		Create(alertM)

	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create inventory alert")
	}

	if result.RowsAffected == 0 {
		return false, nil
	}

	alert.ID = alertM.ID
	alert.CreatedAt = alertM.CreatedAt

	return true, nil
}

// ListAlerts retrieves all alerts, newest first.
func (repo *inventoryAlertRepository) ListAlerts(ctx context.Context) ([]*entity.InventoryAlert, error) {
	var alertModels []*model.InventoryAlertModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&alertModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list inventory alerts")
	}

	alerts := make([]*entity.InventoryAlert, 0, len(alertModels))
	for _, alertM := range alertModels {
		alerts = append(alerts, &entity.InventoryAlert{
			ID:        alertM.ID,
			ProductID: alertM.ProductID,
			Threshold: alertM.Threshold,
			CreatedAt: alertM.CreatedAt,
		})
	}

	return alerts, nil
}

// DeleteAlert removes an alert. Deleting an absent alert is a no-op so the
// admin operation stays idempotent.
func (repo *inventoryAlertRepository) DeleteAlert(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.InventoryAlertModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete inventory alert")
	}

	return nil
}
