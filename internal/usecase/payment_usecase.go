package usecase

import (
	"context"

	"pawmart/internal/domain/entity"

	"github.com/google/uuid"
)

// PaymentInput carries a payment record request. Exactly one of OrderID
// and AppointmentID must be set.
type PaymentInput struct {
	OrderID       *uuid.UUID
	AppointmentID *uuid.UUID
	Method        string
	Amount        int64
}

// MpesaInitiateInput carries a simulated M-Pesa STK push request.
type MpesaInitiateInput struct {
	OrderID       *uuid.UUID
	AppointmentID *uuid.UUID
	PhoneNumber   string
	Amount        int64
}

// PaymentUsecase defines the interface for payment recording use cases
type PaymentUsecase interface {
	// RecordPayment persists a payment attempt in pending status.
	RecordPayment(ctx context.Context, userID uuid.UUID, input *PaymentInput) (*entity.Payment, error)

	// InitiateMpesa simulates an M-Pesa STK push: it records a pending
	// M-Pesa payment with a generated checkout request id. There is no
	// automated transition to success.
	InitiateMpesa(ctx context.Context, userID uuid.UUID, input *MpesaInitiateInput) (*entity.Payment, error)

	// ListOwnPayments retrieves the caller's payments, newest first.
	ListOwnPayments(ctx context.Context, userID uuid.UUID) ([]*entity.Payment, error)

	// ListUserPayments retrieves another user's payments. Admin only.
	ListUserPayments(ctx context.Context, actor Actor, userID uuid.UUID) ([]*entity.Payment, error)
}
