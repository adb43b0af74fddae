// Package impl provides the concrete use case implementations wired by Fx.
package impl

import (
	"context"

	"pawmart/internal/domain/entity"
	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/domain/repository"
	"pawmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
}

// NewCartService creates a new cart service instance
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
	}
}

// GetCart retrieves the user's cart with lines and total
func (s *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*usecase.CartView, error) {
	cart, err := s.cartRepo.FindCartByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			// A user who never added anything still gets a cart view.
			return &usecase.CartView{Items: []*entity.CartItem{}}, nil
		}

		return nil, errors.Wrap(err, "failed to find cart by user")
	}

	items, err := s.cartRepo.FindCartItems(ctx, cart.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cart items")
	}

	var total int64
	for _, item := range items {
		total += item.Subtotal()
	}

	return &usecase.CartView{
		CartID: cart.ID,
		Items:  items,
		Total:  total,
	}, nil
}

// AddItem puts quantity of a product into the cart
func (s *cartService) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entity.CartItem, error) {
	if quantity <= 0 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("product not found")
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	cart, err := s.cartRepo.EnsureCart(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to ensure cart")
	}

	// The cart ceiling is advisory; the checkout transaction re-checks
	// stock under a row lock.
	requested := quantity
	items, err := s.cartRepo.FindCartItems(ctx, cart.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cart items")
	}
	for _, item := range items {
		if item.ProductID == productID {
			requested += item.Quantity

			break
		}
	}

	if requested > product.StockQuantity {
		return nil, domainerrors.ErrOutOfStock.WithDetails(product.Name)
	}

	item, err := s.cartRepo.UpsertCartItem(ctx, cart.ID, productID, quantity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upsert cart item")
	}

	return item, nil
}

// UpdateItem replaces the line's quantity
func (s *cartService) UpdateItem(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*entity.CartItem, error) {
	if quantity <= 0 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	item, err := s.findOwnedItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	if item.Product != nil && quantity > item.Product.StockQuantity {
		return nil, domainerrors.ErrOutOfStock.WithDetails(item.Product.Name)
	}

	if err := s.cartRepo.UpdateCartItemQuantity(ctx, itemID, quantity); err != nil {
		return nil, errors.Wrap(err, "failed to update cart item quantity")
	}

	item.Quantity = quantity

	return item, nil
}

// RemoveItem deletes one line from the user's cart
func (s *cartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error {
	if _, err := s.findOwnedItem(ctx, userID, itemID); err != nil {
		return err
	}

	if err := s.cartRepo.DeleteCartItem(ctx, itemID); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return domainerrors.ErrNotFound.WithDetails("cart item not found")
		}

		return errors.Wrap(err, "failed to delete cart item")
	}

	return nil
}

// Clear removes every line from the user's cart
func (s *cartService) Clear(ctx context.Context, userID uuid.UUID) error {
	cart, err := s.cartRepo.FindCartByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			// Nothing to clear.
			return nil
		}

		return errors.Wrap(err, "failed to find cart by user")
	}

	if err := s.cartRepo.ClearCartItems(ctx, cart.ID); err != nil {
		return errors.Wrap(err, "failed to clear cart items")
	}

	return nil
}

// findOwnedItem loads the line and verifies it belongs to the user's cart.
// A foreign line is reported as not found, never as forbidden, so item IDs
// cannot be probed.
func (s *cartService) findOwnedItem(ctx context.Context, userID, itemID uuid.UUID) (*entity.CartItem, error) {
	item, err := s.cartRepo.FindCartItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("cart item not found")
		}

		return nil, errors.Wrap(err, "failed to find cart item by ID")
	}

	cart, err := s.cartRepo.FindCartByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("cart item not found")
		}

		return nil, errors.Wrap(err, "failed to find cart by user")
	}

	if item.CartID != cart.ID {
		return nil, domainerrors.ErrNotFound.WithDetails("cart item not found")
	}

	return item, nil
}
