package impl

import (
	"context"
	"strings"
	"testing"

	"pawmart/internal/domain/entity"
	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/domain/repository"
	mockRepo "pawmart/internal/mocks/repository"
	"pawmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type paymentMocks struct {
	paymentRepo     *mockRepo.MockPaymentRepository
	orderRepo       *mockRepo.MockOrderRepository
	appointmentRepo *mockRepo.MockAppointmentRepository
}

func newPaymentService(t *testing.T) (usecase.PaymentUsecase, *paymentMocks) {
	m := &paymentMocks{
		paymentRepo:     mockRepo.NewMockPaymentRepository(t),
		orderRepo:       mockRepo.NewMockOrderRepository(t),
		appointmentRepo: mockRepo.NewMockAppointmentRepository(t),
	}
	service := NewPaymentService(PaymentServiceParams{
		PaymentRepo:     m.paymentRepo,
		OrderRepo:       m.orderRepo,
		AppointmentRepo: m.appointmentRepo,
	})

	return service, m
}

func TestPaymentService_RecordPayment_ForOrder(t *testing.T) {
	service, m := newPaymentService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	m.orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: userID}, nil)
	m.paymentRepo.EXPECT().
		CreatePayment(ctx, mock.AnythingOfType("*entity.Payment")).
		Return(nil)

	payment, err := service.RecordPayment(ctx, userID, &usecase.PaymentInput{
		OrderID: &orderID,
		Method:  "Cash",
		Amount:  3800,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentMethodCash, payment.Method)
	assert.Equal(t, entity.PaymentStatusPending, payment.Status)
	assert.Equal(t, orderID, *payment.OrderID)
	assert.Nil(t, payment.AppointmentID)
}

func TestPaymentService_RecordPayment_InvalidMethod(t *testing.T) {
	service, _ := newPaymentService(t)

	orderID := uuid.New()
	payment, err := service.RecordPayment(context.Background(), uuid.New(), &usecase.PaymentInput{
		OrderID: &orderID,
		Method:  "Cheque",
		Amount:  100,
	})
	assert.Nil(t, payment)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPaymentMethod)
}

func TestPaymentService_RecordPayment_BothTargets(t *testing.T) {
	service, _ := newPaymentService(t)

	orderID := uuid.New()
	appointmentID := uuid.New()
	payment, err := service.RecordPayment(context.Background(), uuid.New(), &usecase.PaymentInput{
		OrderID:       &orderID,
		AppointmentID: &appointmentID,
		Method:        "Cash",
		Amount:        100,
	})
	assert.Nil(t, payment)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPaymentTarget)
}

func TestPaymentService_RecordPayment_NeitherTarget(t *testing.T) {
	service, _ := newPaymentService(t)

	payment, err := service.RecordPayment(context.Background(), uuid.New(), &usecase.PaymentInput{
		Method: "Cash",
		Amount: 100,
	})
	assert.Nil(t, payment)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPaymentTarget)
}

func TestPaymentService_RecordPayment_ForeignOrderReportsNotFound(t *testing.T) {
	service, m := newPaymentService(t)

	ctx := context.Background()
	orderID := uuid.New()

	m.orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: uuid.New()}, nil)

	payment, err := service.RecordPayment(ctx, uuid.New(), &usecase.PaymentInput{
		OrderID: &orderID,
		Method:  "Cash",
		Amount:  100,
	})
	assert.Nil(t, payment)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.ErrorCode())
}

func TestPaymentService_RecordPayment_NonPositiveAmount(t *testing.T) {
	service, m := newPaymentService(t)

	ctx := context.Background()
	userID := uuid.New()
	appointmentID := uuid.New()

	m.appointmentRepo.EXPECT().
		FindAppointmentByID(ctx, appointmentID).
		Return(&entity.Appointment{ID: appointmentID, UserID: userID}, nil)

	payment, err := service.RecordPayment(ctx, userID, &usecase.PaymentInput{
		AppointmentID: &appointmentID,
		Method:        "M-Pesa",
		Amount:        0,
	})
	assert.Nil(t, payment)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestPaymentService_InitiateMpesa_Success(t *testing.T) {
	service, m := newPaymentService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	m.orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: userID}, nil)
	m.paymentRepo.EXPECT().
		CreatePayment(ctx, mock.AnythingOfType("*entity.Payment")).
		Return(nil)

	payment, err := service.InitiateMpesa(ctx, userID, &usecase.MpesaInitiateInput{
		OrderID:     &orderID,
		Amount:      3800,
		PhoneNumber: "254700000001",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentMethodMpesa, payment.Method)
	assert.Equal(t, entity.PaymentStatusPending, payment.Status)
	assert.Equal(t, "254700000001", payment.PhoneNumber)
	assert.True(t, strings.HasPrefix(payment.CheckoutRequestID, "CHK_"))
	assert.NotEmpty(t, payment.MerchantRequestID)
}

func TestPaymentService_InitiateMpesa_MissingPhone(t *testing.T) {
	service, _ := newPaymentService(t)

	orderID := uuid.New()
	payment, err := service.InitiateMpesa(context.Background(), uuid.New(), &usecase.MpesaInitiateInput{
		OrderID: &orderID,
		Amount:  100,
	})
	assert.Nil(t, payment)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestPaymentService_ListUserPayments_AdminOnly(t *testing.T) {
	service, _ := newPaymentService(t)

	payments, err := service.ListUserPayments(context.Background(), customerActor(), uuid.New())
	assert.Nil(t, payments)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestPaymentService_ListUserPayments_Admin(t *testing.T) {
	service, m := newPaymentService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.Payment{{ID: uuid.New(), UserID: userID}}

	m.paymentRepo.EXPECT().
		FindPaymentsByUser(ctx, userID).
		Return(expected, nil)

	payments, err := service.ListUserPayments(ctx, adminActor(), userID)
	require.NoError(t, err)
	assert.Equal(t, expected, payments)
}

func TestPaymentService_RecordPayment_AppointmentGone(t *testing.T) {
	service, m := newPaymentService(t)

	ctx := context.Background()
	appointmentID := uuid.New()

	m.appointmentRepo.EXPECT().
		FindAppointmentByID(ctx, appointmentID).
		Return(nil, repository.ErrAppointmentNotFound)

	payment, err := service.RecordPayment(ctx, uuid.New(), &usecase.PaymentInput{
		AppointmentID: &appointmentID,
		Method:        "Cash",
		Amount:        100,
	})
	assert.Nil(t, payment)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.ErrorCode())
}
