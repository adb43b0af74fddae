package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentModel is the GORM-specific struct for the 'payments' table. The
// CHECK constraint enforces the order-xor-appointment target invariant at
// the database level, mirroring the write-time validation.
type PaymentModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	OrderID       *uuid.UUID `gorm:"type:uuid;index;check:chk_payment_target,(order_id IS NULL) <> (appointment_id IS NULL)"`
	AppointmentID *uuid.UUID `gorm:"type:uuid;index"`
	Method        string     `gorm:"type:varchar(32);not null;column:payment_method"`
	Amount        int64      `gorm:"not null"`
	Status        string     `gorm:"type:varchar(32);not null;default:'pending'"`

	PhoneNumber        string `gorm:"type:varchar(32)"`
	CheckoutRequestID  string `gorm:"type:varchar(64);uniqueIndex:idx_checkout_request_id,where:checkout_request_id <> ''"`
	MerchantRequestID  string `gorm:"type:varchar(64)"`
	MpesaReceiptNumber string `gorm:"type:varchar(64)"`

	PaymentDate time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
