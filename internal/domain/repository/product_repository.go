package repository

import (
	"context"

	"pawmart/internal/domain/entity"
	"pawmart/internal/errors"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when no product matches the lookup.
var ErrProductNotFound = errors.New("product not found")

// ErrInsufficientStock is returned when a stock decrement would drive the
// quantity below zero. The guard lives in the database update itself so
// concurrent checkouts can never oversell.
var ErrInsufficientStock = errors.New("insufficient stock")

// ProductRepository persists catalog products and owns the stock counter.
type ProductRepository interface {
	// CreateProduct persists a new product.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// FindProductByID retrieves a product by its unique ID.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindProductByIDForUpdate retrieves a product with a row-level write
	// lock. Only meaningful inside a transaction; the checkout loop uses it
	// so the stock read-check-decrement sequence is isolated per product.
	FindProductByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListProducts retrieves all products.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// UpdateProduct persists changed product fields.
	UpdateProduct(ctx context.Context, product *entity.Product) error

	// DeleteProduct removes a product.
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	// DecrementStock subtracts quantity from the product's stock, guarded
	// by stock_quantity >= quantity. Returns ErrInsufficientStock when the
	// guard fails.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error
}
