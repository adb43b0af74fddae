package impl

import (
	"context"
	"net/http"
	"testing"

	"pawmart/internal/domain/entity"
	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/domain/repository"
	mockRepo "pawmart/internal/mocks/repository"
	mockSvc "pawmart/internal/mocks/service"
	"pawmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrderService(t *testing.T) (usecase.OrderUsecase, *mockRepo.MockOrderRepository, *mockSvc.MockQRCodeService) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewOrderRepository().Return(orderRepo).Maybe()

	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()

	service := NewOrderService(OrderServiceParams{
		OrderRepo:     orderRepo,
		TxManager:     txManager,
		QRCodeService: qrService,
	})

	return service, orderRepo, qrService
}

func adminActor() usecase.Actor {
	return usecase.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}
}

func customerActor() usecase.Actor {
	return usecase.Actor{UserID: uuid.New(), Role: entity.RoleCustomer}
}

func TestOrderService_ListOrders_CustomerSeesOwnOrders(t *testing.T) {
	service, orderRepo, _ := newOrderService(t)

	ctx := context.Background()
	actor := customerActor()
	own := []*entity.Order{{ID: uuid.New(), UserID: actor.UserID}}

	orderRepo.EXPECT().
		FindOrdersByUser(ctx, actor.UserID).
		Return(own, nil)

	orders, err := service.ListOrders(ctx, actor)
	require.NoError(t, err)
	assert.Equal(t, own, orders)
}

func TestOrderService_ListOrders_AdminSeesAllOrders(t *testing.T) {
	service, orderRepo, _ := newOrderService(t)

	ctx := context.Background()
	all := []*entity.Order{{ID: uuid.New()}, {ID: uuid.New()}}

	orderRepo.EXPECT().
		ListOrders(ctx).
		Return(all, nil)

	orders, err := service.ListOrders(ctx, adminActor())
	require.NoError(t, err)
	assert.Equal(t, all, orders)
}

func TestOrderService_GetOrder_ForeignOrderForbidden(t *testing.T) {
	service, orderRepo, _ := newOrderService(t)

	ctx := context.Background()
	actor := customerActor()
	orderID := uuid.New()

	orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: uuid.New()}, nil)

	order, err := service.GetOrder(ctx, actor, orderID)
	assert.Nil(t, order)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FORBIDDEN", appErr.ErrorCode())
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode())
}

func TestOrderService_UpdateStatus_CustomerForbidden(t *testing.T) {
	service, _, _ := newOrderService(t)

	order, err := service.UpdateStatus(context.Background(), customerActor(), uuid.New(), "Approved")
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_UpdateStatus_UnknownStatus(t *testing.T) {
	service, _, _ := newOrderService(t)

	order, err := service.UpdateStatus(context.Background(), adminActor(), uuid.New(), "Shipped")
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderStatus)
}

func TestOrderService_UpdateStatus_Transitions(t *testing.T) {
	cases := []struct {
		name    string
		from    entity.OrderStatus
		to      string
		allowed bool
	}{
		{"pending to approved", entity.OrderStatusPending, "Approved", true},
		{"approved to out for delivery", entity.OrderStatusApproved, "Out for Delivery", true},
		{"out for delivery to delivered", entity.OrderStatusOutForDelivery, "Delivered", true},
		{"pending cancelled", entity.OrderStatusPending, "Cancelled", true},
		{"approved cancelled", entity.OrderStatusApproved, "Cancelled", true},
		{"out for delivery cancelled", entity.OrderStatusOutForDelivery, "Cancelled", true},
		{"pending skips to out for delivery", entity.OrderStatusPending, "Out for Delivery", false},
		{"pending skips to delivered", entity.OrderStatusPending, "Delivered", false},
		{"approved skips to delivered", entity.OrderStatusApproved, "Delivered", false},
		{"approved back to pending", entity.OrderStatusApproved, "Pending", false},
		{"delivered is terminal", entity.OrderStatusDelivered, "Cancelled", false},
		{"cancelled is terminal", entity.OrderStatusCancelled, "Approved", false},
		{"cancelled stays cancelled", entity.OrderStatusCancelled, "Cancelled", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			service, orderRepo, _ := newOrderService(t)

			ctx := context.Background()
			orderID := uuid.New()

			orderRepo.EXPECT().
				FindOrderByID(ctx, orderID).
				Return(&entity.Order{ID: orderID, Status: tc.from}, nil)

			if tc.allowed {
				orderRepo.EXPECT().
					UpdateOrderStatus(ctx, orderID, entity.OrderStatus(tc.to)).
					Return(nil)
				orderRepo.EXPECT().
					AppendStatusHistory(ctx, mock.AnythingOfType("*entity.OrderStatusChange")).
					Return(nil)
			}

			order, err := service.UpdateStatus(ctx, adminActor(), orderID, tc.to)
			if tc.allowed {
				require.NoError(t, err)
				assert.Equal(t, entity.OrderStatus(tc.to), order.Status)
			} else {
				assert.Nil(t, order)

				var appErr domainerrors.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, "ILLEGAL_STATUS_TRANSITION", appErr.ErrorCode())
			}
		})
	}
}

func TestOrderService_UpdateStatus_OrderNotFound(t *testing.T) {
	service, orderRepo, _ := newOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(nil, repository.ErrOrderNotFound)

	order, err := service.UpdateStatus(ctx, adminActor(), orderID, "Approved")
	assert.Nil(t, order)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.ErrorCode())
}

func TestOrderService_GetStatusHistory_OwnerSeesTrail(t *testing.T) {
	service, orderRepo, _ := newOrderService(t)

	ctx := context.Background()
	actor := customerActor()
	orderID := uuid.New()
	trail := []*entity.OrderStatusChange{
		{ID: uuid.New(), OrderID: orderID, Status: entity.OrderStatusPending},
		{ID: uuid.New(), OrderID: orderID, Status: entity.OrderStatusApproved},
	}

	own := &entity.Order{ID: orderID, UserID: actor.UserID}
	orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(own, nil)
	orderRepo.EXPECT().
		FindStatusHistory(ctx, orderID).
		Return(trail, nil)

	order, history, err := service.GetStatusHistory(ctx, actor, orderID)
	require.NoError(t, err)
	assert.Equal(t, own, order)
	assert.Equal(t, trail, history)
}

func TestOrderService_GetStatusHistory_ForeignCustomerForbidden(t *testing.T) {
	service, orderRepo, _ := newOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	// The order exists but belongs to someone else. An authenticated
	// non-owner gets forbidden, not a missing-order answer.
	orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: uuid.New()}, nil)

	order, history, err := service.GetStatusHistory(ctx, customerActor(), orderID)
	assert.Nil(t, order)
	assert.Nil(t, history)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FORBIDDEN", appErr.ErrorCode())
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode())
}

func TestOrderService_GetStatusHistory_MissingOrderNotFound(t *testing.T) {
	service, orderRepo, _ := newOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(nil, repository.ErrOrderNotFound)

	_, _, err := service.GetStatusHistory(ctx, customerActor(), orderID)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.ErrorCode())
}

func TestOrderService_UpdateStatus_HistoryFailureFailsTransition(t *testing.T) {
	service, orderRepo, _ := newOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, Status: entity.OrderStatusPending}, nil)
	orderRepo.EXPECT().
		UpdateOrderStatus(ctx, orderID, entity.OrderStatusApproved).
		Return(nil)
	orderRepo.EXPECT().
		AppendStatusHistory(ctx, mock.AnythingOfType("*entity.OrderStatusChange")).
		Return(assert.AnError)

	// Both writes run inside one transaction, so a failed audit append
	// surfaces as an error instead of leaving an unaudited status change.
	order, err := service.UpdateStatus(ctx, adminActor(), orderID, "Approved")
	assert.Nil(t, order)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestOrderService_GenerateOrderQR_Owner(t *testing.T) {
	service, orderRepo, qrService := newOrderService(t)

	ctx := context.Background()
	actor := customerActor()
	orderID := uuid.New()
	png := []byte{0x89, 0x50, 0x4e, 0x47}

	orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: actor.UserID}, nil)
	qrService.EXPECT().
		GenerateOrderQR(orderID).
		Return(png, nil)

	data, err := service.GenerateOrderQR(ctx, actor, orderID)
	require.NoError(t, err)
	assert.Equal(t, png, data)
}
