package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a physical item sold through the marketplace. Price is in
// integer minor currency units. StockQuantity never goes below zero; the
// checkout transaction is the only writer that decrements it.
type Product struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	ImageURL      string     `json:"image_url"`
	Price         int64      `json:"price"`
	StockQuantity int        `json:"stock_quantity"`
	CategoryID    *uuid.UUID `json:"category_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Category groups products and service offerings.
type Category struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	CategoryType string    `json:"category_type"`
}

// ServiceOffering is a bookable service (grooming, vet visit, ...). It is
// sold through appointments, not through the cart pipeline.
type ServiceOffering struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	ImageURL    string     `json:"image_url"`
	BasePrice   int64      `json:"base_price"`
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
}

// DeliveryZone is a flat fee record referenced optionally by orders.
type DeliveryZone struct {
	ID          uuid.UUID `json:"id"`
	ZoneName    string    `json:"zone_name"`
	DeliveryFee int64     `json:"delivery_fee"`
}

// Review is customer feedback on either a product or a service offering.
type Review struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	ProductID *uuid.UUID `json:"product_id,omitempty"`
	ServiceID *uuid.UUID `json:"service_id,omitempty"`
	Rating    int        `json:"rating"`
	Comment   string     `json:"comment"`
	CreatedAt time.Time  `json:"created_at"`
}
