package mocks

import (
	"context"
	"sync"

	"cinetix/internal/domain"
)

// MemorySelectionRepo is a map-backed stand-in for the Redis selection
// repository.
type MemorySelectionRepo struct {
	mu         sync.Mutex
	selections map[string]domain.Selection
}

func NewMemorySelectionRepo() *MemorySelectionRepo {
	return &MemorySelectionRepo{
		selections: map[string]domain.Selection{},
	}
}

func (m *MemorySelectionRepo) Get(ctx context.Context, sessionID string) (domain.Selection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	selection, ok := m.selections[sessionID]
	if !ok {
		return domain.Selection{}, nil
	}

	return selection, nil
}

func (m *MemorySelectionRepo) Save(ctx context.Context, sessionID string, selection domain.Selection) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.selections[sessionID] = selection

	return nil
}

func (m *MemorySelectionRepo) Delete(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.selections, sessionID)

	return nil
}

// MemoryCartRepo is a map-backed stand-in for the Redis cart repository.
type MemoryCartRepo struct {
	mu    sync.Mutex
	carts map[string]*domain.Cart
}

func NewMemoryCartRepo() *MemoryCartRepo {
	return &MemoryCartRepo{
		carts: map[string]*domain.Cart{},
	}
}

func (m *MemoryCartRepo) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cart, ok := m.carts[sessionID]
	if !ok {
		return domain.NewCart(), nil
	}

	return cart, nil
}

func (m *MemoryCartRepo) Save(ctx context.Context, sessionID string, cart *domain.Cart) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.carts[sessionID] = cart

	return nil
}

func (m *MemoryCartRepo) Delete(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.carts, sessionID)

	return nil
}

// MemoryOrderRepo is a map-backed stand-in for the Redis order repository.
type MemoryOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*domain.Order
}

func NewMemoryOrderRepo() *MemoryOrderRepo {
	return &MemoryOrderRepo{
		orders: map[string]*domain.Order{},
	}
}

func (m *MemoryOrderRepo) Get(ctx context.Context, sessionID string) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	order, ok := m.orders[sessionID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}

	return order, nil
}

func (m *MemoryOrderRepo) Save(ctx context.Context, sessionID string, order *domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.orders[sessionID] = order

	return nil
}

func (m *MemoryOrderRepo) Delete(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.orders, sessionID)

	return nil
}
