package usecase

import (
	"context"
	"io"

	"pawmart/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductInput carries product create/update fields.
type ProductInput struct {
	Name          string
	Description   string
	ImageURL      string
	Price         int64
	StockQuantity int
	CategoryID    *uuid.UUID
}

// ServiceInput carries service offering create/update fields.
type ServiceInput struct {
	Name        string
	Description string
	ImageURL    string
	BasePrice   int64
	CategoryID  *uuid.UUID
}

// DeliveryZoneInput carries delivery zone create/update fields.
type DeliveryZoneInput struct {
	ZoneName    string
	DeliveryFee int64
}

// ReviewInput carries a review for exactly one of a product or a service.
type ReviewInput struct {
	ProductID *uuid.UUID
	ServiceID *uuid.UUID
	Rating    int
	Comment   string
}

// CatalogUsecase defines the interface for catalog management use cases.
// Reads are public; writes are admin only.
type CatalogUsecase interface {
	// Products.
	CreateProduct(ctx context.Context, actor Actor, input *ProductInput) (*entity.Product, error)
	GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error)
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	UpdateProduct(ctx context.Context, actor Actor, productID uuid.UUID, input *ProductInput) (*entity.Product, error)

	// DeleteProduct removes a product and its cart lines. Deletion is
	// refused while historical order items still reference the product.
	DeleteProduct(ctx context.Context, actor Actor, productID uuid.UUID) error

	// UploadProductImage stores the image and sets the product's image URL.
	UploadProductImage(ctx context.Context, actor Actor, productID uuid.UUID, filename, contentType string, body io.Reader) (*entity.Product, error)

	// Categories.
	CreateCategory(ctx context.Context, actor Actor, name, categoryType string) (*entity.Category, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// Service offerings.
	CreateService(ctx context.Context, actor Actor, input *ServiceInput) (*entity.ServiceOffering, error)
	ListServices(ctx context.Context) ([]*entity.ServiceOffering, error)
	UpdateService(ctx context.Context, actor Actor, serviceID uuid.UUID, input *ServiceInput) (*entity.ServiceOffering, error)
	DeleteService(ctx context.Context, actor Actor, serviceID uuid.UUID) error

	// Delivery zones.
	CreateDeliveryZone(ctx context.Context, actor Actor, input *DeliveryZoneInput) (*entity.DeliveryZone, error)
	ListDeliveryZones(ctx context.Context) ([]*entity.DeliveryZone, error)
	UpdateDeliveryZone(ctx context.Context, actor Actor, zoneID uuid.UUID, input *DeliveryZoneInput) (*entity.DeliveryZone, error)
	DeleteDeliveryZone(ctx context.Context, actor Actor, zoneID uuid.UUID) error

	// Reviews.
	CreateReview(ctx context.Context, userID uuid.UUID, input *ReviewInput) (*entity.Review, error)
	ListProductReviews(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error)
	ListServiceReviews(ctx context.Context, serviceID uuid.UUID) ([]*entity.Review, error)
}
