package repository

import (
	"context"

	"pawmart/internal/domain/entity"
	"pawmart/internal/errors"

	"github.com/google/uuid"
)

// ErrPaymentNotFound is returned when no payment matches the lookup.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentRepository persists payment attempts.
type PaymentRepository interface {
	// CreatePayment persists a new payment attempt.
	CreatePayment(ctx context.Context, payment *entity.Payment) error

	// FindPaymentsByUser retrieves the user's payments, newest first.
	FindPaymentsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Payment, error)
}
