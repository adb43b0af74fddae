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

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// CreateOrder persists a new order together with its items.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user or delivery zone reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	for i := range orderM.Items {
		order.Items[i].ID = orderM.Items[i].ID
		order.Items[i].OrderID = orderM.ID
	}

	return nil
}

// FindOrderByID retrieves an order with its items.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindOrdersByUser retrieves the user's orders, newest first.
func (repo *orderRepository) FindOrdersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// ListOrders retrieves all orders, newest first.
func (repo *orderRepository) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// UpdateOrderStatus sets the order's status field. Everything else on the
// order row is immutable after creation.
func (repo *orderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// AppendStatusHistory appends one audit entry.
func (repo *orderRepository) AppendStatusHistory(ctx context.Context, change *entity.OrderStatusChange) error {
	changeM := &model.OrderStatusHistoryModel{
		ID:        change.ID,
		OrderID:   change.OrderID,
		Status:    string(change.Status),
		ChangedAt: change.ChangedAt,
	}

	if err := repo.db.WithContext(ctx).Create(changeM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append status history")
	}

	change.ID = changeM.ID

	return nil
}

// FindStatusHistory retrieves the order's audit trail in chronological order.
func (repo *orderRepository) FindStatusHistory(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderStatusChange, error) {
	var changeModels []*model.OrderStatusHistoryModel

	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("changed_at ASC").
		Find(&changeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find status history")
	}

	changes := make([]*entity.OrderStatusChange, 0, len(changeModels))
	for _, changeM := range changeModels {
		changes = append(changes, &entity.OrderStatusChange{
			ID:        changeM.ID,
			OrderID:   changeM.OrderID,
			Status:    entity.OrderStatus(changeM.Status),
			ChangedAt: changeM.ChangedAt,
		})
	}

	return changes, nil
}

// CountOrderItemsByProduct counts historical order lines referencing the product.
func (repo *orderRepository) CountOrderItemsByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderItemModel{}).
		Where("product_id = ?", productID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count order items by product")
	}

	return count, nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:             data.ID,
		UserID:         data.UserID,
		DeliveryZoneID: data.DeliveryZoneID,
		Status:         entity.OrderStatus(data.Status),
		TotalAmount:    data.TotalAmount,
		CreatedAt:      data.CreatedAt,
		Items:          make([]entity.OrderItem, 0, len(data.Items)),
	}
	for _, itemM := range data.Items {
		order.Items = append(order.Items, entity.OrderItem{
			ID:          itemM.ID,
			OrderID:     itemM.OrderID,
			ProductID:   itemM.ProductID,
			ProductName: itemM.ProductName,
			Quantity:    itemM.Quantity,
			UnitPrice:   itemM.UnitPrice,
			Subtotal:    itemM.Subtotal,
		})
	}

	return order
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	orderM := &model.OrderModel{
		ID:             data.ID,
		UserID:         data.UserID,
		DeliveryZoneID: data.DeliveryZoneID,
		Status:         string(data.Status),
		TotalAmount:    data.TotalAmount,
		CreatedAt:      data.CreatedAt,
		Items:          make([]model.OrderItemModel, 0, len(data.Items)),
	}
	for _, item := range data.Items {
		orderM.Items = append(orderM.Items, model.OrderItemModel{
			ID:          item.ID,
			OrderID:     item.OrderID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal,
		})
	}

	return orderM
}
