package impl

import (
	"context"
	"log/slog"
	"time"

	"pawmart/config"
	"pawmart/internal/domain/entity"
	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/domain/repository"
	"pawmart/internal/domain/service"
	"pawmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type checkoutService struct {
	txManager repository.TransactionManager
	zoneRepo  repository.DeliveryZoneRepository
	publisher service.EventPublisher
	config    *config.Config
	logger    *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	ZoneRepo  repository.DeliveryZoneRepository
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewCheckoutService creates a new checkout service instance
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		txManager: params.TxManager,
		zoneRepo:  params.ZoneRepo,
		publisher: params.Publisher,
		config:    params.Config,
		logger:    params.Logger,
	}
}

// lowStockEvent captures an alert raised inside the transaction so the
// matching event can be published after the commit.
type lowStockEvent struct {
	productID   uuid.UUID
	productName string
	stockLeft   int
}

// Checkout converts the user's cart into a Pending order. All writes
// happen in one database transaction; events go out only after the commit.
func (s *checkoutService) Checkout(ctx context.Context, userID uuid.UUID, deliveryZoneID *uuid.UUID) (*entity.Order, error) {
	if deliveryZoneID != nil {
		if _, err := s.zoneRepo.FindDeliveryZoneByID(ctx, *deliveryZoneID); err != nil {
			if errors.Is(err, repository.ErrDeliveryZoneNotFound) {
				return nil, domainerrors.ErrValidationFailed.WithDetails("unknown delivery zone")
			}

			return nil, errors.Wrap(err, "failed to find delivery zone by ID")
		}
	}

	var order *entity.Order
	var lowStock []lowStockEvent
	threshold := s.config.Inventory.LowStockThreshold

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		cartRepo := f.NewCartRepository()
		productRepo := f.NewProductRepository()
		orderRepo := f.NewOrderRepository()
		alertRepo := f.NewInventoryAlertRepository()

		cart, err := cartRepo.FindCartByUser(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrCartNotFound) {
				return domainerrors.ErrEmptyCart
			}

			return errors.Wrap(err, "failed to find cart by user")
		}

		items, err := cartRepo.FindCartItems(ctx, cart.ID)
		if err != nil {
			return errors.Wrap(err, "failed to find cart items")
		}
		if len(items) == 0 {
			return domainerrors.ErrEmptyCart
		}

		order = &entity.Order{
			ID:             uuid.New(),
			UserID:         userID,
			DeliveryZoneID: deliveryZoneID,
			Status:         entity.OrderStatusPending,
			CreatedAt:      time.Now(),
		}

		var total int64
		for _, item := range items {
			// The row lock holds the stock steady between the check and
			// the decrement. Concurrent checkouts for the same product
			// serialize here.
			product, err := productRepo.FindProductByIDForUpdate(ctx, item.ProductID)
			if err != nil {
				if errors.Is(err, repository.ErrProductNotFound) {
					// Product removed since it was added to the cart.
					return domainerrors.NewInsufficientStockError(cartLineName(item))
				}

				return errors.Wrap(err, "failed to lock product row")
			}

			if product.StockQuantity < item.Quantity {
				return domainerrors.NewInsufficientStockError(product.Name)
			}

			if err := productRepo.DecrementStock(ctx, product.ID, item.Quantity); err != nil {
				if errors.Is(err, repository.ErrInsufficientStock) {
					return domainerrors.NewInsufficientStockError(product.Name)
				}

				return errors.Wrap(err, "failed to decrement stock")
			}

			lineSubtotal := product.Price * int64(item.Quantity)
			order.Items = append(order.Items, entity.OrderItem{
				ID:          uuid.New(),
				OrderID:     order.ID,
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    item.Quantity,
				UnitPrice:   product.Price,
				Subtotal:    lineSubtotal,
			})
			total += lineSubtotal

			remaining := product.StockQuantity - item.Quantity
			if remaining <= threshold {
				inserted, err := alertRepo.CreateAlertIfAbsent(ctx, &entity.InventoryAlert{
					ID:        uuid.New(),
					ProductID: product.ID,
					Threshold: threshold,
				})
				if err != nil {
					return errors.Wrap(err, "failed to create inventory alert")
				}
				if inserted {
					lowStock = append(lowStock, lowStockEvent{
						productID:   product.ID,
						productName: product.Name,
						stockLeft:   remaining,
					})
				}
			}
		}

		order.TotalAmount = total

		if err := orderRepo.CreateOrder(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		if err := orderRepo.AppendStatusHistory(ctx, &entity.OrderStatusChange{
			ID:        uuid.New(),
			OrderID:   order.ID,
			Status:    entity.OrderStatusPending,
			ChangedAt: time.Now(),
		}); err != nil {
			return errors.Wrap(err, "failed to append status history")
		}

		if err := cartRepo.ClearCartItems(ctx, cart.ID); err != nil {
			return errors.Wrap(err, "failed to clear cart items")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvents(ctx, order, lowStock)

	return order, nil
}

// publishEvents emits the post-commit domain events. Publishing is best
// effort: the order already committed, so failures are only logged.
func (s *checkoutService) publishEvents(ctx context.Context, order *entity.Order, lowStock []lowStockEvent) {
	if err := s.publisher.PublishCommerceEvent(ctx, &service.CommerceEvent{
		EventType:   service.EventTypeOrderCreated,
		OrderID:     order.ID.String(),
		UserID:      order.UserID.String(),
		TotalAmount: order.TotalAmount,
	}); err != nil {
		s.logger.Warn("failed to publish order.created event",
			slog.String("order_id", order.ID.String()),
			slog.Any("error", err),
		)
	}

	for _, event := range lowStock {
		if err := s.publisher.PublishCommerceEvent(ctx, &service.CommerceEvent{
			EventType:   service.EventTypeLowStock,
			ProductID:   event.productID.String(),
			ProductName: event.productName,
			StockLeft:   event.stockLeft,
		}); err != nil {
			s.logger.Warn("failed to publish low stock event",
				slog.String("product_id", event.productID.String()),
				slog.Any("error", err),
			)
		}
	}
}

// cartLineName names a cart line for error messages when the live product
// row is gone.
func cartLineName(item *entity.CartItem) string {
	if item.Product != nil && item.Product.Name != "" {
		return item.Product.Name
	}

	return item.ProductID.String()
}
