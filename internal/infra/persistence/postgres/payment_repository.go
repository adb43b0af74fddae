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

// paymentRepository implements the repository.PaymentRepository interface.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (repo *paymentRepository) CreatePayment(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidPaymentTarget
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	payment.ID = paymentM.ID
	payment.PaymentDate = paymentM.PaymentDate

	return nil
}

func (repo *paymentRepository) FindPaymentsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Payment, error) {
	var paymentModels []*model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("payment_date DESC").
		Find(&paymentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list payments by user")
	}

	payments := make([]*entity.Payment, 0, len(paymentModels))
	for _, paymentM := range paymentModels {
		payments = append(payments, toPaymentDomain(paymentM))
	}

	return payments, nil
}

// --- Mapper Functions ---

func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	if data == nil {
		return nil
	}

	return &entity.Payment{
		ID:                 data.ID,
		UserID:             data.UserID,
		OrderID:            data.OrderID,
		AppointmentID:      data.AppointmentID,
		Method:             entity.PaymentMethod(data.Method),
		Amount:             data.Amount,
		Status:             entity.PaymentStatus(data.Status),
		PhoneNumber:        data.PhoneNumber,
		CheckoutRequestID:  data.CheckoutRequestID,
		MerchantRequestID:  data.MerchantRequestID,
		MpesaReceiptNumber: data.MpesaReceiptNumber,
		PaymentDate:        data.PaymentDate,
	}
}

func fromPaymentDomain(data *entity.Payment) *model.PaymentModel {
	if data == nil {
		return nil
	}

	return &model.PaymentModel{
		ID:                 data.ID,
		UserID:             data.UserID,
		OrderID:            data.OrderID,
		AppointmentID:      data.AppointmentID,
		Method:             string(data.Method),
		Amount:             data.Amount,
		Status:             string(data.Status),
		PhoneNumber:        data.PhoneNumber,
		CheckoutRequestID:  data.CheckoutRequestID,
		MerchantRequestID:  data.MerchantRequestID,
		MpesaReceiptNumber: data.MpesaReceiptNumber,
		PaymentDate:        data.PaymentDate,
	}
}
