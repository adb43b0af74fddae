package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel is the GORM-specific struct for the 'products' table.
// The CHECK constraint is the database-level backstop for the invariant
// that stock never goes negative.
type ProductModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Description   string    `gorm:"type:text"`
	ImageURL      string    `gorm:"type:text"`
	Price         int64     `gorm:"not null"`
	StockQuantity int       `gorm:"not null;default:0;check:stock_quantity >= 0"`
	CategoryID    *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// CategoryModel is the GORM-specific struct for the 'categories' table.
type CategoryModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name         string    `gorm:"type:varchar(255);not null"`
	CategoryType string    `gorm:"type:varchar(64)"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ServiceOfferingModel is the GORM-specific struct for the 'services' table.
type ServiceOfferingModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string     `gorm:"type:varchar(255);not null"`
	Description string     `gorm:"type:text"`
	ImageURL    string     `gorm:"type:text"`
	BasePrice   int64      `gorm:"not null"`
	CategoryID  *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName explicitly sets the table name for GORM.
func (ServiceOfferingModel) TableName() string {
	return "services"
}

// DeliveryZoneModel is the GORM-specific struct for the 'delivery_zones' table.
type DeliveryZoneModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ZoneName    string    `gorm:"type:varchar(255);not null"`
	DeliveryFee int64     `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (DeliveryZoneModel) TableName() string {
	return "delivery_zones"
}

// ReviewModel is the GORM-specific struct for the 'reviews' table.
type ReviewModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProductID *uuid.UUID `gorm:"type:uuid;index"`
	ServiceID *uuid.UUID `gorm:"type:uuid;index"`
	Rating    int        `gorm:"not null;check:rating BETWEEN 1 AND 5"`
	Comment   string     `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
