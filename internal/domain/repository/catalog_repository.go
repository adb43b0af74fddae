package repository

import (
	"context"

	"pawmart/internal/domain/entity"
	"pawmart/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrCategoryNotFound is returned when no category matches the lookup.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrServiceNotFound is returned when no service offering matches the lookup.
	ErrServiceNotFound = errors.New("service offering not found")
	// ErrDeliveryZoneNotFound is returned when no delivery zone matches the lookup.
	ErrDeliveryZoneNotFound = errors.New("delivery zone not found")
)

// CategoryRepository persists catalog categories.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, category *entity.Category) error
	ListCategories(ctx context.Context) ([]*entity.Category, error)
}

// ServiceRepository persists bookable service offerings.
type ServiceRepository interface {
	CreateService(ctx context.Context, service *entity.ServiceOffering) error
	FindServiceByID(ctx context.Context, id uuid.UUID) (*entity.ServiceOffering, error)
	ListServices(ctx context.Context) ([]*entity.ServiceOffering, error)
	UpdateService(ctx context.Context, service *entity.ServiceOffering) error
	DeleteService(ctx context.Context, id uuid.UUID) error
}

// DeliveryZoneRepository persists flat delivery fee records.
type DeliveryZoneRepository interface {
	CreateDeliveryZone(ctx context.Context, zone *entity.DeliveryZone) error
	FindDeliveryZoneByID(ctx context.Context, id uuid.UUID) (*entity.DeliveryZone, error)
	ListDeliveryZones(ctx context.Context) ([]*entity.DeliveryZone, error)
	UpdateDeliveryZone(ctx context.Context, zone *entity.DeliveryZone) error
	DeleteDeliveryZone(ctx context.Context, id uuid.UUID) error
}

// ReviewRepository persists customer reviews.
type ReviewRepository interface {
	CreateReview(ctx context.Context, review *entity.Review) error
	ListReviewsByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error)
	ListReviewsByService(ctx context.Context, serviceID uuid.UUID) ([]*entity.Review, error)
}
