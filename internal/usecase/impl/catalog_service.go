package impl

import (
	"context"
	"io"
	"path"
	"time"

	"pawmart/internal/domain/entity"
	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/domain/repository"
	"pawmart/internal/domain/service"
	"pawmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	serviceRepo  repository.ServiceRepository
	zoneRepo     repository.DeliveryZoneRepository
	reviewRepo   repository.ReviewRepository
	orderRepo    repository.OrderRepository
	cartRepo     repository.CartRepository
	mediaStore   service.MediaStore
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	ServiceRepo  repository.ServiceRepository
	ZoneRepo     repository.DeliveryZoneRepository
	ReviewRepo   repository.ReviewRepository
	OrderRepo    repository.OrderRepository
	CartRepo     repository.CartRepository
	MediaStore   service.MediaStore
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		serviceRepo:  params.ServiceRepo,
		zoneRepo:     params.ZoneRepo,
		reviewRepo:   params.ReviewRepo,
		orderRepo:    params.OrderRepo,
		cartRepo:     params.CartRepo,
		mediaStore:   params.MediaStore,
	}
}

// CreateProduct persists a new product. Admin only.
func (s *catalogService) CreateProduct(ctx context.Context, actor usecase.Actor, input *usecase.ProductInput) (*entity.Product, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product := &entity.Product{
		ID:            uuid.New(),
		Name:          input.Name,
		Description:   input.Description,
		ImageURL:      input.ImageURL,
		Price:         input.Price,
		StockQuantity: input.StockQuantity,
		CategoryID:    input.CategoryID,
	}

	if err := s.productRepo.CreateProduct(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	return product, nil
}

// GetProduct retrieves a product by ID
func (s *catalogService) GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("product not found")
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return product, nil
}

// ListProducts retrieves all products
func (s *catalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// UpdateProduct persists changed product fields. Admin only.
func (s *catalogService) UpdateProduct(ctx context.Context, actor usecase.Actor, productID uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product, err := s.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Description = input.Description
	if input.ImageURL != "" {
		product.ImageURL = input.ImageURL
	}
	product.Price = input.Price
	product.StockQuantity = input.StockQuantity
	product.CategoryID = input.CategoryID
	product.UpdatedAt = time.Now()

	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("product not found")
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// DeleteProduct removes a product and its cart lines. Admin only. Deletion
// is refused while historical order items still reference the product, so
// order snapshots keep a resolvable product id.
func (s *catalogService) DeleteProduct(ctx context.Context, actor usecase.Actor, productID uuid.UUID) error {
	if !actor.IsAdmin() {
		return domainerrors.ErrForbidden
	}

	if _, err := s.GetProduct(ctx, productID); err != nil {
		return err
	}

	referenced, err := s.orderRepo.CountOrderItemsByProduct(ctx, productID)
	if err != nil {
		return errors.Wrap(err, "failed to count order items by product")
	}
	if referenced > 0 {
		return domainerrors.ErrProductReferenced
	}

	if err := s.cartRepo.DeleteCartItemsByProduct(ctx, productID); err != nil {
		return errors.Wrap(err, "failed to delete cart items by product")
	}

	if err := s.productRepo.DeleteProduct(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrNotFound.WithDetails("product not found")
		}

		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

// UploadProductImage stores the image and sets the product's image URL. Admin only.
func (s *catalogService) UploadProductImage(ctx context.Context, actor usecase.Actor, productID uuid.UUID, filename, contentType string, body io.Reader) (*entity.Product, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}

	product, err := s.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	key := "products/" + productID.String() + "/" + uuid.NewString() + path.Ext(filename)
	imageURL, err := s.mediaStore.Save(ctx, key, contentType, body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to save product image")
	}

	product.ImageURL = imageURL
	product.UpdatedAt = time.Now()
	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product image URL")
	}

	return product, nil
}

// CreateCategory persists a new category. Admin only.
func (s *catalogService) CreateCategory(ctx context.Context, actor usecase.Actor, name, categoryType string) (*entity.Category, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("category name is required")
	}

	category := &entity.Category{
		ID:           uuid.New(),
		Name:         name,
		CategoryType: categoryType,
	}

	if err := s.categoryRepo.CreateCategory(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	return category, nil
}

// ListCategories retrieves all categories
func (s *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// CreateService persists a new service offering. Admin only.
func (s *catalogService) CreateService(ctx context.Context, actor usecase.Actor, input *usecase.ServiceInput) (*entity.ServiceOffering, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}
	if err := validateServiceInput(input); err != nil {
		return nil, err
	}

	offering := &entity.ServiceOffering{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		BasePrice:   input.BasePrice,
		CategoryID:  input.CategoryID,
	}

	if err := s.serviceRepo.CreateService(ctx, offering); err != nil {
		return nil, errors.Wrap(err, "failed to create service offering")
	}

	return offering, nil
}

// ListServices retrieves all service offerings
func (s *catalogService) ListServices(ctx context.Context) ([]*entity.ServiceOffering, error) {
	services, err := s.serviceRepo.ListServices(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list service offerings")
	}

	return services, nil
}

// UpdateService persists changed service offering fields. Admin only.
func (s *catalogService) UpdateService(ctx context.Context, actor usecase.Actor, serviceID uuid.UUID, input *usecase.ServiceInput) (*entity.ServiceOffering, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}
	if err := validateServiceInput(input); err != nil {
		return nil, err
	}

	offering := &entity.ServiceOffering{
		ID:          serviceID,
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		BasePrice:   input.BasePrice,
		CategoryID:  input.CategoryID,
	}

	if err := s.serviceRepo.UpdateService(ctx, offering); err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("service offering not found")
		}

		return nil, errors.Wrap(err, "failed to update service offering")
	}

	return offering, nil
}

// DeleteService removes a service offering. Admin only.
func (s *catalogService) DeleteService(ctx context.Context, actor usecase.Actor, serviceID uuid.UUID) error {
	if !actor.IsAdmin() {
		return domainerrors.ErrForbidden
	}

	if err := s.serviceRepo.DeleteService(ctx, serviceID); err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return domainerrors.ErrNotFound.WithDetails("service offering not found")
		}

		return errors.Wrap(err, "failed to delete service offering")
	}

	return nil
}

// CreateDeliveryZone persists a new delivery zone. Admin only.
func (s *catalogService) CreateDeliveryZone(ctx context.Context, actor usecase.Actor, input *usecase.DeliveryZoneInput) (*entity.DeliveryZone, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}
	if err := validateZoneInput(input); err != nil {
		return nil, err
	}

	zone := &entity.DeliveryZone{
		ID:          uuid.New(),
		ZoneName:    input.ZoneName,
		DeliveryFee: input.DeliveryFee,
	}

	if err := s.zoneRepo.CreateDeliveryZone(ctx, zone); err != nil {
		return nil, errors.Wrap(err, "failed to create delivery zone")
	}

	return zone, nil
}

// ListDeliveryZones retrieves all delivery zones
func (s *catalogService) ListDeliveryZones(ctx context.Context) ([]*entity.DeliveryZone, error) {
	zones, err := s.zoneRepo.ListDeliveryZones(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list delivery zones")
	}

	return zones, nil
}

// UpdateDeliveryZone persists changed delivery zone fields. Admin only.
func (s *catalogService) UpdateDeliveryZone(ctx context.Context, actor usecase.Actor, zoneID uuid.UUID, input *usecase.DeliveryZoneInput) (*entity.DeliveryZone, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}
	if err := validateZoneInput(input); err != nil {
		return nil, err
	}

	zone := &entity.DeliveryZone{
		ID:          zoneID,
		ZoneName:    input.ZoneName,
		DeliveryFee: input.DeliveryFee,
	}

	if err := s.zoneRepo.UpdateDeliveryZone(ctx, zone); err != nil {
		if errors.Is(err, repository.ErrDeliveryZoneNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("delivery zone not found")
		}

		return nil, errors.Wrap(err, "failed to update delivery zone")
	}

	return zone, nil
}

// DeleteDeliveryZone removes a delivery zone. Admin only.
func (s *catalogService) DeleteDeliveryZone(ctx context.Context, actor usecase.Actor, zoneID uuid.UUID) error {
	if !actor.IsAdmin() {
		return domainerrors.ErrForbidden
	}

	if err := s.zoneRepo.DeleteDeliveryZone(ctx, zoneID); err != nil {
		if errors.Is(err, repository.ErrDeliveryZoneNotFound) {
			return domainerrors.ErrNotFound.WithDetails("delivery zone not found")
		}

		return errors.Wrap(err, "failed to delete delivery zone")
	}

	return nil
}

// CreateReview persists customer feedback for a product or a service
func (s *catalogService) CreateReview(ctx context.Context, userID uuid.UUID, input *usecase.ReviewInput) (*entity.Review, error) {
	if (input.ProductID == nil) == (input.ServiceID == nil) {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			"review must target exactly one of a product or a service",
		)
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("rating must be between 1 and 5")
	}

	if input.ProductID != nil {
		if _, err := s.GetProduct(ctx, *input.ProductID); err != nil {
			return nil, err
		}
	} else {
		if _, err := s.serviceRepo.FindServiceByID(ctx, *input.ServiceID); err != nil {
			if errors.Is(err, repository.ErrServiceNotFound) {
				return nil, domainerrors.ErrNotFound.WithDetails("service offering not found")
			}

			return nil, errors.Wrap(err, "failed to find service offering by ID")
		}
	}

	review := &entity.Review{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: input.ProductID,
		ServiceID: input.ServiceID,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}

	if err := s.reviewRepo.CreateReview(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to create review")
	}

	return review, nil
}

// ListProductReviews retrieves the product's reviews, newest first
func (s *catalogService) ListProductReviews(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error) {
	reviews, err := s.reviewRepo.ListReviewsByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list product reviews")
	}

	return reviews, nil
}

// ListServiceReviews retrieves the service's reviews, newest first
func (s *catalogService) ListServiceReviews(ctx context.Context, serviceID uuid.UUID) ([]*entity.Review, error) {
	reviews, err := s.reviewRepo.ListReviewsByService(ctx, serviceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list service reviews")
	}

	return reviews, nil
}

func validateProductInput(input *usecase.ProductInput) error {
	if input.Name == "" {
		return domainerrors.ErrValidationFailed.WithDetails("product name is required")
	}
	if input.Price < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}
	if input.StockQuantity < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("stock quantity must not be negative")
	}

	return nil
}

func validateServiceInput(input *usecase.ServiceInput) error {
	if input.Name == "" {
		return domainerrors.ErrValidationFailed.WithDetails("service name is required")
	}
	if input.BasePrice < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("base price must not be negative")
	}

	return nil
}

func validateZoneInput(input *usecase.DeliveryZoneInput) error {
	if input.ZoneName == "" {
		return domainerrors.ErrValidationFailed.WithDetails("zone name is required")
	}
	if input.DeliveryFee < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("delivery fee must not be negative")
	}

	return nil
}
