package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod is the channel a payment was attempted through.
type PaymentMethod string

const (
	PaymentMethodMpesa PaymentMethod = "M-Pesa"
	PaymentMethodCash  PaymentMethod = "Cash"
)

// Valid reports whether the method is one of the accepted channels.
func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodMpesa || m == PaymentMethodCash
}

// PaymentStatus is the settlement state of a payment attempt.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusSuccess PaymentStatus = "success"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// Payment records one payment attempt against exactly one of an order or
// an appointment. The mutual exclusion is validated at write time; there
// is no automated transition to success (gateway callbacks are out of
// scope, M-Pesa initiation is simulated).
type Payment struct {
	ID            uuid.UUID     `json:"id"`
	UserID        uuid.UUID     `json:"user_id"`
	OrderID       *uuid.UUID    `json:"order_id,omitempty"`
	AppointmentID *uuid.UUID    `json:"appointment_id,omitempty"`
	Method        PaymentMethod `json:"payment_method"`
	Amount        int64         `json:"amount"`
	Status        PaymentStatus `json:"status"`

	// M-Pesa specific fields, populated by the simulated initiation flow.
	PhoneNumber        string `json:"phone_number,omitempty"`
	CheckoutRequestID  string `json:"checkout_request_id,omitempty"`
	MerchantRequestID  string `json:"merchant_request_id,omitempty"`
	MpesaReceiptNumber string `json:"mpesa_receipt_number,omitempty"`

	PaymentDate time.Time `json:"payment_date"`
}
