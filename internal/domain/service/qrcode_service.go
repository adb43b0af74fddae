package service

import "github.com/google/uuid"

// QRCodeService renders machine-readable order references.
type QRCodeService interface {
	// GenerateOrderQR generates a PNG QR code identifying an order for
	// in-store pickup verification.
	GenerateOrderQR(orderID uuid.UUID) ([]byte, error)

	// ParseOrderQR extracts the order ID from scanned QR payload data.
	ParseOrderQR(data string) (uuid.UUID, error)
}
