package impl

import (
	"context"
	"io"
	"strings"
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

type catalogMocks struct {
	productRepo  *mockRepo.MockProductRepository
	categoryRepo *mockRepo.MockCategoryRepository
	serviceRepo  *mockRepo.MockServiceRepository
	zoneRepo     *mockRepo.MockDeliveryZoneRepository
	reviewRepo   *mockRepo.MockReviewRepository
	orderRepo    *mockRepo.MockOrderRepository
	cartRepo     *mockRepo.MockCartRepository
	mediaStore   *mockSvc.MockMediaStore
}

func newCatalogService(t *testing.T) (usecase.CatalogUsecase, *catalogMocks) {
	m := &catalogMocks{
		productRepo:  mockRepo.NewMockProductRepository(t),
		categoryRepo: mockRepo.NewMockCategoryRepository(t),
		serviceRepo:  mockRepo.NewMockServiceRepository(t),
		zoneRepo:     mockRepo.NewMockDeliveryZoneRepository(t),
		reviewRepo:   mockRepo.NewMockReviewRepository(t),
		orderRepo:    mockRepo.NewMockOrderRepository(t),
		cartRepo:     mockRepo.NewMockCartRepository(t),
		mediaStore:   mockSvc.NewMockMediaStore(t),
	}
	service := NewCatalogService(CatalogServiceParams{
		ProductRepo:  m.productRepo,
		CategoryRepo: m.categoryRepo,
		ServiceRepo:  m.serviceRepo,
		ZoneRepo:     m.zoneRepo,
		ReviewRepo:   m.reviewRepo,
		OrderRepo:    m.orderRepo,
		CartRepo:     m.cartRepo,
		MediaStore:   m.mediaStore,
	})

	return service, m
}

func TestCatalogService_CreateProduct_Admin(t *testing.T) {
	service, m := newCatalogService(t)

	ctx := context.Background()

	m.productRepo.EXPECT().
		CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	product, err := service.CreateProduct(ctx, adminActor(), &usecase.ProductInput{
		Name:          "Puppy Chow",
		Price:         1500,
		StockQuantity: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, "Puppy Chow", product.Name)
	assert.NotEqual(t, uuid.Nil, product.ID)
}

func TestCatalogService_CreateProduct_CustomerForbidden(t *testing.T) {
	service, _ := newCatalogService(t)

	product, err := service.CreateProduct(context.Background(), customerActor(), &usecase.ProductInput{
		Name:  "Puppy Chow",
		Price: 1500,
	})
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCatalogService_CreateProduct_NegativePrice(t *testing.T) {
	service, _ := newCatalogService(t)

	product, err := service.CreateProduct(context.Background(), adminActor(), &usecase.ProductInput{
		Name:  "Puppy Chow",
		Price: -1,
	})
	assert.Nil(t, product)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCatalogService_DeleteProduct_ReferencedByOrders(t *testing.T) {
	service, m := newCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()

	m.productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID, Name: "Puppy Chow"}, nil)
	m.orderRepo.EXPECT().
		CountOrderItemsByProduct(ctx, productID).
		Return(int64(3), nil)

	err := service.DeleteProduct(ctx, adminActor(), productID)
	assert.ErrorIs(t, err, domainerrors.ErrProductReferenced)
}

func TestCatalogService_DeleteProduct_RemovesCartLines(t *testing.T) {
	service, m := newCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()

	m.productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID, Name: "Puppy Chow"}, nil)
	m.orderRepo.EXPECT().
		CountOrderItemsByProduct(ctx, productID).
		Return(int64(0), nil)
	m.cartRepo.EXPECT().
		DeleteCartItemsByProduct(ctx, productID).
		Return(nil)
	m.productRepo.EXPECT().
		DeleteProduct(ctx, productID).
		Return(nil)

	assert.NoError(t, service.DeleteProduct(ctx, adminActor(), productID))
}

func TestCatalogService_UploadProductImage_Admin(t *testing.T) {
	service, m := newCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()

	m.productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID, Name: "Puppy Chow"}, nil)
	m.mediaStore.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), "image/png", mock.Anything).
		Run(func(ctx context.Context, key string, contentType string, body io.Reader) {
			assert.True(t, strings.HasPrefix(key, "products/"+productID.String()+"/"))
			assert.True(t, strings.HasSuffix(key, ".png"))
		}).
		Return("https://media.example.com/products/x.png", nil)
	m.productRepo.EXPECT().
		UpdateProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	product, err := service.UploadProductImage(ctx, adminActor(), productID, "front.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://media.example.com/products/x.png", product.ImageURL)
}

func TestCatalogService_CreateReview_RequiresSingleTarget(t *testing.T) {
	service, _ := newCatalogService(t)

	productID := uuid.New()
	serviceID := uuid.New()

	review, err := service.CreateReview(context.Background(), uuid.New(), &usecase.ReviewInput{
		ProductID: &productID,
		ServiceID: &serviceID,
		Rating:    4,
	})
	assert.Nil(t, review)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCatalogService_CreateReview_RatingOutOfRange(t *testing.T) {
	service, _ := newCatalogService(t)

	productID := uuid.New()

	review, err := service.CreateReview(context.Background(), uuid.New(), &usecase.ReviewInput{
		ProductID: &productID,
		Rating:    6,
	})
	assert.Nil(t, review)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCatalogService_CreateReview_ForProduct(t *testing.T) {
	service, m := newCatalogService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	m.productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID}, nil)
	m.reviewRepo.EXPECT().
		CreateReview(ctx, mock.AnythingOfType("*entity.Review")).
		Return(nil)

	review, err := service.CreateReview(ctx, userID, &usecase.ReviewInput{
		ProductID: &productID,
		Rating:    5,
		Comment:   "My dog loves it",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, review.UserID)
	assert.Equal(t, 5, review.Rating)
	assert.Nil(t, review.ServiceID)
}

func TestCatalogService_CreateReview_UnknownService(t *testing.T) {
	service, m := newCatalogService(t)

	ctx := context.Background()
	serviceID := uuid.New()

	m.serviceRepo.EXPECT().
		FindServiceByID(ctx, serviceID).
		Return(nil, repository.ErrServiceNotFound)

	review, err := service.CreateReview(ctx, uuid.New(), &usecase.ReviewInput{
		ServiceID: &serviceID,
		Rating:    3,
	})
	assert.Nil(t, review)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.ErrorCode())
}

func TestCatalogService_CreateCategory_Admin(t *testing.T) {
	service, m := newCatalogService(t)

	ctx := context.Background()

	m.categoryRepo.EXPECT().
		CreateCategory(ctx, mock.AnythingOfType("*entity.Category")).
		Return(nil)

	category, err := service.CreateCategory(ctx, adminActor(), "Dog Food", "product")
	require.NoError(t, err)
	assert.Equal(t, "Dog Food", category.Name)
}

func TestCatalogService_CreateDeliveryZone_NegativeFee(t *testing.T) {
	service, _ := newCatalogService(t)

	zone, err := service.CreateDeliveryZone(context.Background(), adminActor(), &usecase.DeliveryZoneInput{
		ZoneName:    "Westlands",
		DeliveryFee: -200,
	})
	assert.Nil(t, zone)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}
