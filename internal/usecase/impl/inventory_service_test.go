package impl

import (
	"context"
	"testing"

	"pawmart/internal/domain/entity"
	domainerrors "pawmart/internal/domain/errors"
	mockRepo "pawmart/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryService_ListAlerts_Admin(t *testing.T) {
	alertRepo := mockRepo.NewMockInventoryAlertRepository(t)
	service := NewInventoryService(InventoryServiceParams{AlertRepo: alertRepo})

	ctx := context.Background()
	expected := []*entity.InventoryAlert{{ID: uuid.New(), ProductID: uuid.New(), Threshold: 5}}

	alertRepo.EXPECT().
		ListAlerts(ctx).
		Return(expected, nil)

	alerts, err := service.ListAlerts(ctx, adminActor())
	require.NoError(t, err)
	assert.Equal(t, expected, alerts)
}

func TestInventoryService_ListAlerts_CustomerForbidden(t *testing.T) {
	alertRepo := mockRepo.NewMockInventoryAlertRepository(t)
	service := NewInventoryService(InventoryServiceParams{AlertRepo: alertRepo})

	alerts, err := service.ListAlerts(context.Background(), customerActor())
	assert.Nil(t, alerts)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestInventoryService_DeleteAlert_Admin(t *testing.T) {
	alertRepo := mockRepo.NewMockInventoryAlertRepository(t)
	service := NewInventoryService(InventoryServiceParams{AlertRepo: alertRepo})

	ctx := context.Background()
	alertID := uuid.New()

	// The repository treats deleting an absent alert as a no-op, so the
	// usecase never surfaces a not-found here.
	alertRepo.EXPECT().
		DeleteAlert(ctx, alertID).
		Return(nil)

	assert.NoError(t, service.DeleteAlert(ctx, adminActor(), alertID))
}

func TestInventoryService_DeleteAlert_CustomerForbidden(t *testing.T) {
	alertRepo := mockRepo.NewMockInventoryAlertRepository(t)
	service := NewInventoryService(InventoryServiceParams{AlertRepo: alertRepo})

	err := service.DeleteAlert(context.Background(), customerActor(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
