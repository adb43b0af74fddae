package impl

import (
	"context"
	"sync"
	"testing"

	"pawmart/internal/domain/entity"
	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/domain/repository"
	mockRepo "pawmart/internal/mocks/repository"
	mockSvc "pawmart/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memCommerceStore is a hand-written in-memory backend for exercising the
// checkout transaction with real interleaving. The tx manager serializes
// transactions on the store mutex and restores a snapshot when the closure
// fails, the same visible behavior a rolled-back database transaction has.
type memCommerceStore struct {
	mu       sync.Mutex
	products map[uuid.UUID]*entity.Product
	carts    map[uuid.UUID]*entity.Cart
	items    map[uuid.UUID][]*entity.CartItem
	orders   []*entity.Order
	history  []*entity.OrderStatusChange
	alerts   map[uuid.UUID]*entity.InventoryAlert
}

func newMemCommerceStore() *memCommerceStore {
	return &memCommerceStore{
		products: make(map[uuid.UUID]*entity.Product),
		carts:    make(map[uuid.UUID]*entity.Cart),
		items:    make(map[uuid.UUID][]*entity.CartItem),
		alerts:   make(map[uuid.UUID]*entity.InventoryAlert),
	}
}

func (s *memCommerceStore) seedCart(userID, productID uuid.UUID, quantity int) {
	cart := &entity.Cart{ID: uuid.New(), UserID: userID}
	s.carts[userID] = cart
	s.items[cart.ID] = []*entity.CartItem{
		{ID: uuid.New(), CartID: cart.ID, ProductID: productID, Quantity: quantity},
	}
}

type memStoreState struct {
	stock      map[uuid.UUID]int
	items      map[uuid.UUID][]*entity.CartItem
	orderCount int
	histCount  int
	alertKeys  []uuid.UUID
}

func (s *memCommerceStore) snapshot() memStoreState {
	state := memStoreState{
		stock:      make(map[uuid.UUID]int, len(s.products)),
		items:      make(map[uuid.UUID][]*entity.CartItem, len(s.items)),
		orderCount: len(s.orders),
		histCount:  len(s.history),
	}
	for id, product := range s.products {
		state.stock[id] = product.StockQuantity
	}
	for cartID, lines := range s.items {
		state.items[cartID] = append([]*entity.CartItem(nil), lines...)
	}
	for productID := range s.alerts {
		state.alertKeys = append(state.alertKeys, productID)
	}

	return state
}

func (s *memCommerceStore) restore(state memStoreState) {
	for id, stock := range state.stock {
		s.products[id].StockQuantity = stock
	}
	s.items = state.items
	s.orders = s.orders[:state.orderCount]
	s.history = s.history[:state.histCount]
	kept := make(map[uuid.UUID]*entity.InventoryAlert, len(state.alertKeys))
	for _, productID := range state.alertKeys {
		kept[productID] = s.alerts[productID]
	}
	s.alerts = kept
}

type memTxManager struct {
	store *memCommerceStore
}

func (m *memTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	state := m.store.snapshot()
	if err := fn(&memFactory{store: m.store}); err != nil {
		m.store.restore(state)

		return err
	}

	return nil
}

type memFactory struct {
	store *memCommerceStore
}

func (f *memFactory) NewCartRepository() repository.CartRepository {
	return &memCartRepo{store: f.store}
}

func (f *memFactory) NewProductRepository() repository.ProductRepository {
	return &memProductRepo{store: f.store}
}

func (f *memFactory) NewOrderRepository() repository.OrderRepository {
	return &memOrderRepo{store: f.store}
}

func (f *memFactory) NewInventoryAlertRepository() repository.InventoryAlertRepository {
	return &memAlertRepo{store: f.store}
}

// The fakes embed their interface so only the methods the checkout
// transaction touches need bodies.

type memCartRepo struct {
	repository.CartRepository
	store *memCommerceStore
}

func (r *memCartRepo) FindCartByUser(_ context.Context, userID uuid.UUID) (*entity.Cart, error) {
	cart, ok := r.store.carts[userID]
	if !ok {
		return nil, repository.ErrCartNotFound
	}

	return cart, nil
}

func (r *memCartRepo) FindCartItems(_ context.Context, cartID uuid.UUID) ([]*entity.CartItem, error) {
	return append([]*entity.CartItem(nil), r.store.items[cartID]...), nil
}

func (r *memCartRepo) ClearCartItems(_ context.Context, cartID uuid.UUID) error {
	r.store.items[cartID] = nil

	return nil
}

type memProductRepo struct {
	repository.ProductRepository
	store *memCommerceStore
}

func (r *memProductRepo) FindProductByIDForUpdate(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	product, ok := r.store.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	snapshot := *product

	return &snapshot, nil
}

func (r *memProductRepo) DecrementStock(_ context.Context, id uuid.UUID, quantity int) error {
	product, ok := r.store.products[id]
	if !ok || product.StockQuantity < quantity {
		return repository.ErrInsufficientStock
	}
	product.StockQuantity -= quantity

	return nil
}

type memOrderRepo struct {
	repository.OrderRepository
	store *memCommerceStore
}

func (r *memOrderRepo) CreateOrder(_ context.Context, order *entity.Order) error {
	r.store.orders = append(r.store.orders, order)

	return nil
}

func (r *memOrderRepo) AppendStatusHistory(_ context.Context, change *entity.OrderStatusChange) error {
	r.store.history = append(r.store.history, change)

	return nil
}

type memAlertRepo struct {
	repository.InventoryAlertRepository
	store *memCommerceStore
}

func (r *memAlertRepo) CreateAlertIfAbsent(_ context.Context, alert *entity.InventoryAlert) (bool, error) {
	if _, exists := r.store.alerts[alert.ProductID]; exists {
		return false, nil
	}
	r.store.alerts[alert.ProductID] = alert

	return true, nil
}

func TestCheckoutService_Checkout_ConcurrentLastUnit(t *testing.T) {
	store := newMemCommerceStore()
	productID := uuid.New()
	store.products[productID] = &entity.Product{
		ID:            productID,
		Name:          "Last Bone",
		Price:         500,
		StockQuantity: 1,
	}

	userA := uuid.New()
	userB := uuid.New()
	store.seedCart(userA, productID, 1)
	store.seedCart(userB, productID, 1)

	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().
		PublishCommerceEvent(mock.Anything, mock.Anything).
		Return(nil).
		Maybe()

	service := NewCheckoutService(CheckoutServiceParams{
		TxManager: &memTxManager{store: store},
		ZoneRepo:  mockRepo.NewMockDeliveryZoneRepository(t),
		Publisher: publisher,
		Config:    newTestConfig(0),
		Logger:    newDiscardLogger(),
	})

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, userID := range []uuid.UUID{userA, userB} {
		wg.Add(1)
		go func(slot int, userID uuid.UUID) {
			defer wg.Done()
			_, errs[slot] = service.Checkout(context.Background(), userID, nil)
		}(i, userID)
	}
	wg.Wait()

	var won, lost int
	for _, err := range errs {
		if err == nil {
			won++

			continue
		}

		var stockErr *domainerrors.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, "Last Bone", stockErr.ProductName)
		lost++
	}

	// Exactly one checkout wins the last unit; the loser aborts whole and
	// keeps its cart.
	assert.Equal(t, 1, won)
	assert.Equal(t, 1, lost)
	assert.Equal(t, 0, store.products[productID].StockQuantity)
	assert.Len(t, store.orders, 1)
	assert.Len(t, store.history, 1)

	var remainingLines int
	for _, lines := range store.items {
		remainingLines += len(lines)
	}
	assert.Equal(t, 1, remainingLines)
}
