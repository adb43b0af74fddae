package impl

import (
	"context"
	"testing"

	"pawmart/internal/domain/entity"
	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/domain/repository"
	domainservice "pawmart/internal/domain/service"
	mockRepo "pawmart/internal/mocks/repository"
	mockSvc "pawmart/internal/mocks/service"
	"pawmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutMocks struct {
	cartRepo    *mockRepo.MockCartRepository
	productRepo *mockRepo.MockProductRepository
	orderRepo   *mockRepo.MockOrderRepository
	alertRepo   *mockRepo.MockInventoryAlertRepository
	zoneRepo    *mockRepo.MockDeliveryZoneRepository
	publisher   *mockSvc.MockEventPublisher
}

// newCheckoutService wires a checkout service whose transaction manager
// runs the callback against the mocked repositories.
func newCheckoutService(t *testing.T, lowStockThreshold int) (usecase.CheckoutUsecase, *checkoutMocks) {
	m := &checkoutMocks{
		cartRepo:    mockRepo.NewMockCartRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		alertRepo:   mockRepo.NewMockInventoryAlertRepository(t),
		zoneRepo:    mockRepo.NewMockDeliveryZoneRepository(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewCartRepository().Return(m.cartRepo).Maybe()
	factory.EXPECT().NewProductRepository().Return(m.productRepo).Maybe()
	factory.EXPECT().NewOrderRepository().Return(m.orderRepo).Maybe()
	factory.EXPECT().NewInventoryAlertRepository().Return(m.alertRepo).Maybe()

	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()

	service := NewCheckoutService(CheckoutServiceParams{
		TxManager: txManager,
		ZoneRepo:  m.zoneRepo,
		Publisher: m.publisher,
		Config:    newTestConfig(lowStockThreshold),
		Logger:    newDiscardLogger(),
	})

	return service, m
}

func TestCheckoutService_Checkout_Success(t *testing.T) {
	service, m := newCheckoutService(t, 5)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()
	foodID := uuid.New()
	leashID := uuid.New()

	m.cartRepo.EXPECT().
		FindCartByUser(ctx, userID).
		Return(&entity.Cart{ID: cartID, UserID: userID}, nil)

	m.cartRepo.EXPECT().
		FindCartItems(ctx, cartID).
		Return([]*entity.CartItem{
			{ID: uuid.New(), CartID: cartID, ProductID: foodID, Quantity: 2},
			{ID: uuid.New(), CartID: cartID, ProductID: leashID, Quantity: 1},
		}, nil)

	m.productRepo.EXPECT().
		FindProductByIDForUpdate(ctx, foodID).
		Return(&entity.Product{ID: foodID, Name: "Puppy Chow", Price: 1500, StockQuantity: 50}, nil)
	m.productRepo.EXPECT().
		DecrementStock(ctx, foodID, 2).
		Return(nil)

	m.productRepo.EXPECT().
		FindProductByIDForUpdate(ctx, leashID).
		Return(&entity.Product{ID: leashID, Name: "Leash", Price: 800, StockQuantity: 30}, nil)
	m.productRepo.EXPECT().
		DecrementStock(ctx, leashID, 1).
		Return(nil)

	m.orderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)
	m.orderRepo.EXPECT().
		AppendStatusHistory(ctx, mock.AnythingOfType("*entity.OrderStatusChange")).
		Return(nil)

	m.cartRepo.EXPECT().
		ClearCartItems(ctx, cartID).
		Return(nil)

	m.publisher.EXPECT().
		PublishCommerceEvent(ctx, mock.AnythingOfType("*service.CommerceEvent")).
		Return(nil)

	order, err := service.Checkout(ctx, userID, nil)
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, userID, order.UserID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, int64(2*1500+800), order.TotalAmount)

	require.Len(t, order.Items, 2)
	assert.Equal(t, "Puppy Chow", order.Items[0].ProductName)
	assert.Equal(t, int64(1500), order.Items[0].UnitPrice)
	assert.Equal(t, int64(3000), order.Items[0].Subtotal)
	assert.Equal(t, "Leash", order.Items[1].ProductName)
}

func TestCheckoutService_Checkout_NoCart(t *testing.T) {
	service, m := newCheckoutService(t, 5)

	ctx := context.Background()
	userID := uuid.New()

	m.cartRepo.EXPECT().
		FindCartByUser(ctx, userID).
		Return(nil, repository.ErrCartNotFound)

	order, err := service.Checkout(ctx, userID, nil)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
}

func TestCheckoutService_Checkout_EmptyCart(t *testing.T) {
	service, m := newCheckoutService(t, 5)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()

	m.cartRepo.EXPECT().
		FindCartByUser(ctx, userID).
		Return(&entity.Cart{ID: cartID, UserID: userID}, nil)
	m.cartRepo.EXPECT().
		FindCartItems(ctx, cartID).
		Return([]*entity.CartItem{}, nil)

	order, err := service.Checkout(ctx, userID, nil)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
}

func TestCheckoutService_Checkout_InsufficientStock(t *testing.T) {
	service, m := newCheckoutService(t, 5)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()
	productID := uuid.New()

	m.cartRepo.EXPECT().
		FindCartByUser(ctx, userID).
		Return(&entity.Cart{ID: cartID, UserID: userID}, nil)
	m.cartRepo.EXPECT().
		FindCartItems(ctx, cartID).
		Return([]*entity.CartItem{
			{ID: uuid.New(), CartID: cartID, ProductID: productID, Quantity: 10},
		}, nil)
	m.productRepo.EXPECT().
		FindProductByIDForUpdate(ctx, productID).
		Return(&entity.Product{ID: productID, Name: "Cat Tree", Price: 9000, StockQuantity: 3}, nil)

	order, err := service.Checkout(ctx, userID, nil)
	assert.Nil(t, order)

	var stockErr *domainerrors.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Cat Tree", stockErr.ProductName)
	assert.Equal(t, "Insufficient stock for Cat Tree", stockErr.Message())
}

func TestCheckoutService_Checkout_DecrementGuardFails(t *testing.T) {
	service, m := newCheckoutService(t, 5)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()
	productID := uuid.New()

	m.cartRepo.EXPECT().
		FindCartByUser(ctx, userID).
		Return(&entity.Cart{ID: cartID, UserID: userID}, nil)
	m.cartRepo.EXPECT().
		FindCartItems(ctx, cartID).
		Return([]*entity.CartItem{
			{ID: uuid.New(), CartID: cartID, ProductID: productID, Quantity: 2},
		}, nil)
	m.productRepo.EXPECT().
		FindProductByIDForUpdate(ctx, productID).
		Return(&entity.Product{ID: productID, Name: "Bird Seed", Price: 400, StockQuantity: 2}, nil)
	m.productRepo.EXPECT().
		DecrementStock(ctx, productID, 2).
		Return(repository.ErrInsufficientStock)

	order, err := service.Checkout(ctx, userID, nil)
	assert.Nil(t, order)

	var stockErr *domainerrors.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Bird Seed", stockErr.ProductName)
}

func TestCheckoutService_Checkout_ProductRemovedFromCatalog(t *testing.T) {
	service, m := newCheckoutService(t, 5)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()
	productID := uuid.New()

	m.cartRepo.EXPECT().
		FindCartByUser(ctx, userID).
		Return(&entity.Cart{ID: cartID, UserID: userID}, nil)
	m.cartRepo.EXPECT().
		FindCartItems(ctx, cartID).
		Return([]*entity.CartItem{
			{
				ID:        uuid.New(),
				CartID:    cartID,
				ProductID: productID,
				Quantity:  1,
				Product:   &entity.Product{ID: productID, Name: "Retired Toy"},
			},
		}, nil)
	m.productRepo.EXPECT().
		FindProductByIDForUpdate(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	order, err := service.Checkout(ctx, userID, nil)
	assert.Nil(t, order)

	var stockErr *domainerrors.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Retired Toy", stockErr.ProductName)
}

func TestCheckoutService_Checkout_LowStockRaisesAlert(t *testing.T) {
	service, m := newCheckoutService(t, 5)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()
	productID := uuid.New()

	m.cartRepo.EXPECT().
		FindCartByUser(ctx, userID).
		Return(&entity.Cart{ID: cartID, UserID: userID}, nil)
	m.cartRepo.EXPECT().
		FindCartItems(ctx, cartID).
		Return([]*entity.CartItem{
			{ID: uuid.New(), CartID: cartID, ProductID: productID, Quantity: 3},
		}, nil)
	m.productRepo.EXPECT().
		FindProductByIDForUpdate(ctx, productID).
		Return(&entity.Product{ID: productID, Name: "Hamster Wheel", Price: 700, StockQuantity: 7}, nil)
	m.productRepo.EXPECT().
		DecrementStock(ctx, productID, 3).
		Return(nil)

	m.alertRepo.EXPECT().
		CreateAlertIfAbsent(ctx, mock.AnythingOfType("*entity.InventoryAlert")).
		Run(func(ctx context.Context, alert *entity.InventoryAlert) {
			assert.Equal(t, productID, alert.ProductID)
			assert.Equal(t, 5, alert.Threshold)
		}).
		Return(true, nil)

	m.orderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)
	m.orderRepo.EXPECT().
		AppendStatusHistory(ctx, mock.AnythingOfType("*entity.OrderStatusChange")).
		Return(nil)
	m.cartRepo.EXPECT().
		ClearCartItems(ctx, cartID).
		Return(nil)

	var eventTypes []string
	m.publisher.EXPECT().
		PublishCommerceEvent(ctx, mock.AnythingOfType("*service.CommerceEvent")).
		Run(func(ctx context.Context, event *domainservice.CommerceEvent) {
			eventTypes = append(eventTypes, event.EventType)
		}).
		Return(nil).
		Times(2)

	order, err := service.Checkout(ctx, userID, nil)
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, []string{"order.created", "inventory.low_stock"}, eventTypes)
}

func TestCheckoutService_Checkout_AlertAlreadyRaised(t *testing.T) {
	service, m := newCheckoutService(t, 5)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()
	productID := uuid.New()

	m.cartRepo.EXPECT().
		FindCartByUser(ctx, userID).
		Return(&entity.Cart{ID: cartID, UserID: userID}, nil)
	m.cartRepo.EXPECT().
		FindCartItems(ctx, cartID).
		Return([]*entity.CartItem{
			{ID: uuid.New(), CartID: cartID, ProductID: productID, Quantity: 1},
		}, nil)
	m.productRepo.EXPECT().
		FindProductByIDForUpdate(ctx, productID).
		Return(&entity.Product{ID: productID, Name: "Hamster Wheel", Price: 700, StockQuantity: 4}, nil)
	m.productRepo.EXPECT().
		DecrementStock(ctx, productID, 1).
		Return(nil)

	// An alert for the product already exists; no duplicate row, no event.
	m.alertRepo.EXPECT().
		CreateAlertIfAbsent(ctx, mock.AnythingOfType("*entity.InventoryAlert")).
		Return(false, nil)

	m.orderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)
	m.orderRepo.EXPECT().
		AppendStatusHistory(ctx, mock.AnythingOfType("*entity.OrderStatusChange")).
		Return(nil)
	m.cartRepo.EXPECT().
		ClearCartItems(ctx, cartID).
		Return(nil)

	m.publisher.EXPECT().
		PublishCommerceEvent(ctx, mock.AnythingOfType("*service.CommerceEvent")).
		Return(nil).
		Once()

	_, err := service.Checkout(ctx, userID, nil)
	require.NoError(t, err)
}

func TestCheckoutService_Checkout_UnknownDeliveryZone(t *testing.T) {
	service, m := newCheckoutService(t, 5)

	ctx := context.Background()
	userID := uuid.New()
	zoneID := uuid.New()

	m.zoneRepo.EXPECT().
		FindDeliveryZoneByID(ctx, zoneID).
		Return(nil, repository.ErrDeliveryZoneNotFound)

	order, err := service.Checkout(ctx, userID, &zoneID)
	assert.Nil(t, order)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Equal(t, "unknown delivery zone", appErr.Details())
}

func TestCheckoutService_Checkout_PublishFailureDoesNotFailOrder(t *testing.T) {
	service, m := newCheckoutService(t, 0)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()
	productID := uuid.New()

	m.cartRepo.EXPECT().
		FindCartByUser(ctx, userID).
		Return(&entity.Cart{ID: cartID, UserID: userID}, nil)
	m.cartRepo.EXPECT().
		FindCartItems(ctx, cartID).
		Return([]*entity.CartItem{
			{ID: uuid.New(), CartID: cartID, ProductID: productID, Quantity: 1},
		}, nil)
	m.productRepo.EXPECT().
		FindProductByIDForUpdate(ctx, productID).
		Return(&entity.Product{ID: productID, Name: "Dog Bed", Price: 2500, StockQuantity: 10}, nil)
	m.productRepo.EXPECT().
		DecrementStock(ctx, productID, 1).
		Return(nil)
	m.orderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)
	m.orderRepo.EXPECT().
		AppendStatusHistory(ctx, mock.AnythingOfType("*entity.OrderStatusChange")).
		Return(nil)
	m.cartRepo.EXPECT().
		ClearCartItems(ctx, cartID).
		Return(nil)

	m.publisher.EXPECT().
		PublishCommerceEvent(ctx, mock.AnythingOfType("*service.CommerceEvent")).
		Return(errors.New("broker unavailable"))

	order, err := service.Checkout(ctx, userID, nil)
	require.NoError(t, err)
	assert.NotNil(t, order)
}
