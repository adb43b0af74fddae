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
)

// categoryRepository implements the repository.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (repo *categoryRepository) CreateCategory(ctx context.Context, category *entity.Category) error {
	categoryM := &model.CategoryModel{
		ID:           category.ID,
		Name:         category.Name,
		CategoryType: category.CategoryType,
	}

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.ID = categoryM.ID

	return nil
}

func (repo *categoryRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, &entity.Category{
			ID:           categoryM.ID,
			Name:         categoryM.Name,
			CategoryType: categoryM.CategoryType,
		})
	}

	return categories, nil
}

// serviceRepository implements the repository.ServiceRepository interface.
type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository is the constructor for serviceRepository.
func NewServiceRepository(db *gorm.DB) repository.ServiceRepository {
	return &serviceRepository{db: db}
}

func (repo *serviceRepository) CreateService(ctx context.Context, service *entity.ServiceOffering) error {
	serviceM := fromServiceDomain(service)

	if err := repo.db.WithContext(ctx).Create(serviceM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create service offering")
	}

	service.ID = serviceM.ID

	return nil
}

func (repo *serviceRepository) FindServiceByID(ctx context.Context, id uuid.UUID) (*entity.ServiceOffering, error) {
	var serviceM model.ServiceOfferingModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&serviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find service offering by ID")
	}

	return toServiceDomain(&serviceM), nil
}

func (repo *serviceRepository) ListServices(ctx context.Context) ([]*entity.ServiceOffering, error) {
	var serviceModels []*model.ServiceOfferingModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&serviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list service offerings")
	}

	services := make([]*entity.ServiceOffering, 0, len(serviceModels))
	for _, serviceM := range serviceModels {
		services = append(services, toServiceDomain(serviceM))
	}

	return services, nil
}

func (repo *serviceRepository) UpdateService(ctx context.Context, service *entity.ServiceOffering) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ServiceOfferingModel{}).
		Where("id = ?", service.ID).
		Updates(map[string]any{
			"name":        service.Name,
			"description": service.Description,
			"image_url":   service.ImageURL,
			"base_price":  service.BasePrice,
			"category_id": service.CategoryID,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update service offering")
	}

	if result.RowsAffected == 0 {
		return repository.ErrServiceNotFound
	}

	return nil
}

func (repo *serviceRepository) DeleteService(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ServiceOfferingModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete service offering")
	}

	if result.RowsAffected == 0 {
		return repository.ErrServiceNotFound
	}

	return nil
}

// deliveryZoneRepository implements the repository.DeliveryZoneRepository interface.
type deliveryZoneRepository struct {
	db *gorm.DB
}

// NewDeliveryZoneRepository is the constructor for deliveryZoneRepository.
func NewDeliveryZoneRepository(db *gorm.DB) repository.DeliveryZoneRepository {
	return &deliveryZoneRepository{db: db}
}

func (repo *deliveryZoneRepository) CreateDeliveryZone(ctx context.Context, zone *entity.DeliveryZone) error {
	zoneM := &model.DeliveryZoneModel{
		ID:          zone.ID,
		ZoneName:    zone.ZoneName,
		DeliveryFee: zone.DeliveryFee,
	}

	if err := repo.db.WithContext(ctx).Create(zoneM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create delivery zone")
	}

	zone.ID = zoneM.ID

	return nil
}

func (repo *deliveryZoneRepository) FindDeliveryZoneByID(ctx context.Context, id uuid.UUID) (*entity.DeliveryZone, error) {
	var zoneM model.DeliveryZoneModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&zoneM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeliveryZoneNotFound
		}

		return nil, errors.Wrap(err, "failed to find delivery zone by ID")
	}

	return &entity.DeliveryZone{
		ID:          zoneM.ID,
		ZoneName:    zoneM.ZoneName,
		DeliveryFee: zoneM.DeliveryFee,
	}, nil
}

func (repo *deliveryZoneRepository) ListDeliveryZones(ctx context.Context) ([]*entity.DeliveryZone, error) {
	var zoneModels []*model.DeliveryZoneModel

	if err := repo.db.WithContext(ctx).
		Order("zone_name ASC").
		Find(&zoneModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list delivery zones")
	}

	zones := make([]*entity.DeliveryZone, 0, len(zoneModels))
	for _, zoneM := range zoneModels {
		zones = append(zones, &entity.DeliveryZone{
			ID:          zoneM.ID,
			ZoneName:    zoneM.ZoneName,
			DeliveryFee: zoneM.DeliveryFee,
		})
	}

	return zones, nil
}

func (repo *deliveryZoneRepository) UpdateDeliveryZone(ctx context.Context, zone *entity.DeliveryZone) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeliveryZoneModel{}).
		Where("id = ?", zone.ID).
		Updates(map[string]any{
			"zone_name":    zone.ZoneName,
			"delivery_fee": zone.DeliveryFee,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update delivery zone")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeliveryZoneNotFound
	}

	return nil
}

func (repo *deliveryZoneRepository) DeleteDeliveryZone(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DeliveryZoneModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete delivery zone")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeliveryZoneNotFound
	}

	return nil
}

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (repo *reviewRepository) CreateReview(ctx context.Context, review *entity.Review) error {
	reviewM := &model.ReviewModel{
		ID:        review.ID,
		UserID:    review.UserID,
		ProductID: review.ProductID,
		ServiceID: review.ServiceID,
		Rating:    review.Rating,
		Comment:   review.Comment,
	}

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("rating out of range")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt

	return nil
}

func (repo *reviewRepository) ListReviewsByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error) {
	return repo.listReviews(ctx, "product_id = ?", productID)
}

func (repo *reviewRepository) ListReviewsByService(ctx context.Context, serviceID uuid.UUID) ([]*entity.Review, error) {
	return repo.listReviews(ctx, "service_id = ?", serviceID)
}

func (repo *reviewRepository) listReviews(ctx context.Context, query string, arg any) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where(query, arg).
		Order("created_at DESC").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, &entity.Review{
			ID:        reviewM.ID,
			UserID:    reviewM.UserID,
			ProductID: reviewM.ProductID,
			ServiceID: reviewM.ServiceID,
			Rating:    reviewM.Rating,
			Comment:   reviewM.Comment,
			CreatedAt: reviewM.CreatedAt,
		})
	}

	return reviews, nil
}

// --- Mapper Functions ---

func toServiceDomain(data *model.ServiceOfferingModel) *entity.ServiceOffering {
	if data == nil {
		return nil
	}

	return &entity.ServiceOffering{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		BasePrice:   data.BasePrice,
		CategoryID:  data.CategoryID,
	}
}

func fromServiceDomain(data *entity.ServiceOffering) *model.ServiceOfferingModel {
	if data == nil {
		return nil
	}

	return &model.ServiceOfferingModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		BasePrice:   data.BasePrice,
		CategoryID:  data.CategoryID,
	}
}
