package impl

import (
	"context"
	"testing"

	"pawmart/internal/domain/entity"
	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/domain/repository"
	mockRepo "pawmart/internal/mocks/repository"
	"pawmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartService(t *testing.T) (usecase.CartUsecase, *mockRepo.MockCartRepository, *mockRepo.MockProductRepository) {
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewCartService(CartServiceParams{
		CartRepo:    cartRepo,
		ProductRepo: productRepo,
	})

	return service, cartRepo, productRepo
}

func TestCartService_GetCart_NoCartYet(t *testing.T) {
	service, cartRepo, _ := newCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	cartRepo.EXPECT().
		FindCartByUser(ctx, userID).
		Return(nil, repository.ErrCartNotFound)

	view, err := service.GetCart(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Empty(t, view.Items)
	assert.Equal(t, int64(0), view.Total)
}

func TestCartService_GetCart_TotalsLines(t *testing.T) {
	service, cartRepo, _ := newCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()

	cartRepo.EXPECT().
		FindCartByUser(ctx, userID).
		Return(&entity.Cart{ID: cartID, UserID: userID}, nil)
	cartRepo.EXPECT().
		FindCartItems(ctx, cartID).
		Return([]*entity.CartItem{
			{ID: uuid.New(), Quantity: 2, Product: &entity.Product{Price: 1500}},
			{ID: uuid.New(), Quantity: 1, Product: &entity.Product{Price: 800}},
		}, nil)

	view, err := service.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, cartID, view.CartID)
	assert.Equal(t, int64(3800), view.Total)
}

func TestCartService_AddItem_ZeroQuantity(t *testing.T) {
	service, _, _ := newCartService(t)

	item, err := service.AddItem(context.Background(), uuid.New(), uuid.New(), 0)
	assert.Nil(t, item)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
}

func TestCartService_AddItem_UnknownProduct(t *testing.T) {
	service, _, productRepo := newCartService(t)

	ctx := context.Background()
	productID := uuid.New()

	productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	item, err := service.AddItem(ctx, uuid.New(), productID, 1)
	assert.Nil(t, item)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.ErrorCode())
}

func TestCartService_AddItem_Success(t *testing.T) {
	service, cartRepo, productRepo := newCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()
	productID := uuid.New()

	productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID, Name: "Puppy Chow", StockQuantity: 10}, nil)
	cartRepo.EXPECT().
		EnsureCart(ctx, userID).
		Return(&entity.Cart{ID: cartID, UserID: userID}, nil)
	cartRepo.EXPECT().
		FindCartItems(ctx, cartID).
		Return([]*entity.CartItem{}, nil)
	cartRepo.EXPECT().
		UpsertCartItem(ctx, cartID, productID, 3).
		Return(&entity.CartItem{ID: uuid.New(), CartID: cartID, ProductID: productID, Quantity: 3}, nil)

	item, err := service.AddItem(ctx, userID, productID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, item.Quantity)
}

func TestCartService_AddItem_ExceedsStockWithExistingLine(t *testing.T) {
	service, cartRepo, productRepo := newCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()
	productID := uuid.New()

	productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID, Name: "Puppy Chow", StockQuantity: 5}, nil)
	cartRepo.EXPECT().
		EnsureCart(ctx, userID).
		Return(&entity.Cart{ID: cartID, UserID: userID}, nil)
	cartRepo.EXPECT().
		FindCartItems(ctx, cartID).
		Return([]*entity.CartItem{
			{ID: uuid.New(), CartID: cartID, ProductID: productID, Quantity: 4},
		}, nil)

	// 4 already in the cart plus 2 more exceeds the 5 in stock.
	item, err := service.AddItem(ctx, userID, productID, 2)
	assert.Nil(t, item)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "OUT_OF_STOCK", appErr.ErrorCode())
	assert.Equal(t, "Puppy Chow", appErr.Details())
}

func TestCartService_UpdateItem_ForeignLineReportsNotFound(t *testing.T) {
	service, cartRepo, _ := newCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()

	cartRepo.EXPECT().
		FindCartItemByID(ctx, itemID).
		Return(&entity.CartItem{ID: itemID, CartID: uuid.New()}, nil)
	cartRepo.EXPECT().
		FindCartByUser(ctx, userID).
		Return(&entity.Cart{ID: uuid.New(), UserID: userID}, nil)

	item, err := service.UpdateItem(ctx, userID, itemID, 2)
	assert.Nil(t, item)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.ErrorCode())
}

func TestCartService_UpdateItem_Success(t *testing.T) {
	service, cartRepo, _ := newCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()
	itemID := uuid.New()

	cartRepo.EXPECT().
		FindCartItemByID(ctx, itemID).
		Return(&entity.CartItem{
			ID:       itemID,
			CartID:   cartID,
			Quantity: 1,
			Product:  &entity.Product{Name: "Leash", StockQuantity: 8},
		}, nil)
	cartRepo.EXPECT().
		FindCartByUser(ctx, userID).
		Return(&entity.Cart{ID: cartID, UserID: userID}, nil)
	cartRepo.EXPECT().
		UpdateCartItemQuantity(ctx, itemID, 5).
		Return(nil)

	item, err := service.UpdateItem(ctx, userID, itemID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, item.Quantity)
}

func TestCartService_Clear_NoCartIsNoop(t *testing.T) {
	service, cartRepo, _ := newCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	cartRepo.EXPECT().
		FindCartByUser(ctx, userID).
		Return(nil, repository.ErrCartNotFound)

	assert.NoError(t, service.Clear(ctx, userID))
}

func TestCartService_RemoveItem_Success(t *testing.T) {
	service, cartRepo, _ := newCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()
	itemID := uuid.New()

	cartRepo.EXPECT().
		FindCartItemByID(ctx, itemID).
		Return(&entity.CartItem{ID: itemID, CartID: cartID}, nil)
	cartRepo.EXPECT().
		FindCartByUser(ctx, userID).
		Return(&entity.Cart{ID: cartID, UserID: userID}, nil)
	cartRepo.EXPECT().
		DeleteCartItem(ctx, itemID).
		Return(nil)

	assert.NoError(t, service.RemoveItem(ctx, userID, itemID))
}
