package impl

import (
	"context"
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

type orderService struct {
	orderRepo     repository.OrderRepository
	txManager     repository.TransactionManager
	qrcodeService service.QRCodeService
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo     repository.OrderRepository
	TxManager     repository.TransactionManager
	QRCodeService service.QRCodeService
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:     params.OrderRepo,
		txManager:     params.TxManager,
		qrcodeService: params.QRCodeService,
	}
}

// ListOrders retrieves the actor's own orders, or every order for an admin
func (s *orderService) ListOrders(ctx context.Context, actor usecase.Actor) ([]*entity.Order, error) {
	if actor.IsAdmin() {
		orders, err := s.orderRepo.ListOrders(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list orders")
		}

		return orders, nil
	}

	orders, err := s.orderRepo.FindOrdersByUser(ctx, actor.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	return orders, nil
}

// GetOrder retrieves one order for its owner or an admin
func (s *orderService) GetOrder(ctx context.Context, actor usecase.Actor, orderID uuid.UUID) (*entity.Order, error) {
	return s.findVisibleOrder(ctx, actor, orderID)
}

// UpdateStatus moves the order to a new status. Admin only.
func (s *orderService) UpdateStatus(ctx context.Context, actor usecase.Actor, orderID uuid.UUID, rawStatus string) (*entity.Order, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}

	next, ok := entity.ParseOrderStatus(rawStatus)
	if !ok {
		return nil, domainerrors.ErrInvalidOrderStatus
	}

	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("order not found")
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, domainerrors.ErrIllegalStatusTransition.WithDetails(
			string(order.Status) + " -> " + string(next),
		)
	}

	// The status write and its audit row commit or roll back together.
	err = s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		txOrderRepo := f.NewOrderRepository()

		if err := txOrderRepo.UpdateOrderStatus(ctx, orderID, next); err != nil {
			return errors.Wrap(err, "failed to update order status")
		}

		if err := txOrderRepo.AppendStatusHistory(ctx, &entity.OrderStatusChange{
			ID:        uuid.New(),
			OrderID:   orderID,
			Status:    next,
			ChangedAt: time.Now(),
		}); err != nil {
			return errors.Wrap(err, "failed to append status history")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	order.Status = next

	return order, nil
}

// GetStatusHistory retrieves the order together with its audit trail in
// chronological order
func (s *orderService) GetStatusHistory(ctx context.Context, actor usecase.Actor, orderID uuid.UUID) (*entity.Order, []*entity.OrderStatusChange, error) {
	order, err := s.findVisibleOrder(ctx, actor, orderID)
	if err != nil {
		return nil, nil, err
	}

	history, err := s.orderRepo.FindStatusHistory(ctx, orderID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to find status history")
	}

	return order, history, nil
}

// GenerateOrderQR renders a PNG QR code identifying the order
func (s *orderService) GenerateOrderQR(ctx context.Context, actor usecase.Actor, orderID uuid.UUID) ([]byte, error) {
	if _, err := s.findVisibleOrder(ctx, actor, orderID); err != nil {
		return nil, err
	}

	qrCode, err := s.qrcodeService.GenerateOrderQR(orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate order QR")
	}

	return qrCode, nil
}

// findVisibleOrder loads the order and verifies the actor may see it.
// Missing orders are not found; existing orders the actor does not own are
// forbidden.
func (s *orderService) findVisibleOrder(ctx context.Context, actor usecase.Actor, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("order not found")
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	if !actor.IsAdmin() && order.UserID != actor.UserID {
		return nil, domainerrors.ErrForbidden.WithDetails("not your order")
	}

	return order, nil
}
