package impl

import (
	"context"
	"fmt"
	"time"

	"pawmart/internal/domain/entity"
	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/domain/repository"
	"pawmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type paymentService struct {
	paymentRepo     repository.PaymentRepository
	orderRepo       repository.OrderRepository
	appointmentRepo repository.AppointmentRepository
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	PaymentRepo     repository.PaymentRepository
	OrderRepo       repository.OrderRepository
	AppointmentRepo repository.AppointmentRepository
}

// NewPaymentService creates a new payment service instance
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		paymentRepo:     params.PaymentRepo,
		orderRepo:       params.OrderRepo,
		appointmentRepo: params.AppointmentRepo,
	}
}

// RecordPayment persists a payment attempt in pending status
func (s *paymentService) RecordPayment(ctx context.Context, userID uuid.UUID, input *usecase.PaymentInput) (*entity.Payment, error) {
	method := entity.PaymentMethod(input.Method)
	if !method.Valid() {
		return nil, domainerrors.ErrInvalidPaymentMethod
	}

	if err := s.validateTarget(ctx, userID, input.OrderID, input.AppointmentID); err != nil {
		return nil, err
	}

	if input.Amount <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("amount must be positive")
	}

	payment := &entity.Payment{
		ID:            uuid.New(),
		UserID:        userID,
		OrderID:       input.OrderID,
		AppointmentID: input.AppointmentID,
		Method:        method,
		Amount:        input.Amount,
		Status:        entity.PaymentStatusPending,
		PaymentDate:   time.Now(),
	}

	if err := s.paymentRepo.CreatePayment(ctx, payment); err != nil {
		return nil, errors.Wrap(err, "failed to create payment")
	}

	return payment, nil
}

// InitiateMpesa simulates an M-Pesa STK push. The generated checkout
// request id stands in for the gateway's; there is no callback flow, so
// the payment stays pending until reconciled manually.
func (s *paymentService) InitiateMpesa(ctx context.Context, userID uuid.UUID, input *usecase.MpesaInitiateInput) (*entity.Payment, error) {
	if input.PhoneNumber == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("phone number is required")
	}

	if err := s.validateTarget(ctx, userID, input.OrderID, input.AppointmentID); err != nil {
		return nil, err
	}

	if input.Amount <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("amount must be positive")
	}

	now := time.Now()
	payment := &entity.Payment{
		ID:                uuid.New(),
		UserID:            userID,
		OrderID:           input.OrderID,
		AppointmentID:     input.AppointmentID,
		Method:            entity.PaymentMethodMpesa,
		Amount:            input.Amount,
		Status:            entity.PaymentStatusPending,
		PhoneNumber:       input.PhoneNumber,
		CheckoutRequestID: fmt.Sprintf("CHK_%d_%s", now.Unix(), userID),
		MerchantRequestID: uuid.NewString(),
		PaymentDate:       now,
	}

	if err := s.paymentRepo.CreatePayment(ctx, payment); err != nil {
		return nil, errors.Wrap(err, "failed to create payment")
	}

	return payment, nil
}

// ListOwnPayments retrieves the caller's payments, newest first
func (s *paymentService) ListOwnPayments(ctx context.Context, userID uuid.UUID) ([]*entity.Payment, error) {
	payments, err := s.paymentRepo.FindPaymentsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find payments by user")
	}

	return payments, nil
}

// ListUserPayments retrieves another user's payments. Admin only.
func (s *paymentService) ListUserPayments(ctx context.Context, actor usecase.Actor, userID uuid.UUID) ([]*entity.Payment, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}

	payments, err := s.paymentRepo.FindPaymentsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find payments by user")
	}

	return payments, nil
}

// validateTarget enforces the order-xor-appointment rule and verifies the
// referenced record exists and belongs to the payer.
func (s *paymentService) validateTarget(ctx context.Context, userID uuid.UUID, orderID, appointmentID *uuid.UUID) error {
	if (orderID == nil) == (appointmentID == nil) {
		return domainerrors.ErrInvalidPaymentTarget
	}

	if orderID != nil {
		order, err := s.orderRepo.FindOrderByID(ctx, *orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrNotFound.WithDetails("order not found")
			}

			return errors.Wrap(err, "failed to find order by ID")
		}
		if order.UserID != userID {
			return domainerrors.ErrNotFound.WithDetails("order not found")
		}

		return nil
	}

	appointment, err := s.appointmentRepo.FindAppointmentByID(ctx, *appointmentID)
	if err != nil {
		if errors.Is(err, repository.ErrAppointmentNotFound) {
			return domainerrors.ErrNotFound.WithDetails("appointment not found")
		}

		return errors.Wrap(err, "failed to find appointment by ID")
	}
	if appointment.UserID != userID {
		return domainerrors.ErrNotFound.WithDetails("appointment not found")
	}

	return nil
}
