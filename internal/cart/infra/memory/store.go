// Package memory keeps carts in a process-local map. Nothing survives a
// restart; it is the backend used when no Redis address is configured.
package memory

import (
	"context"
	"sync"

	"github.com/dwikikusuma/cartservice/internal/cart/domain"
)

type Store struct {
	mu    sync.Mutex
	carts map[string]domain.Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]domain.Cart)}
}

// AddItem holds the lock across read-merge-write.
func (s *Store) AddItem(ctx context.Context, userID, productID string, quantity int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[userID]
	if !ok {
		cart = domain.NewCart(userID)
	}
	cart.Add(productID, quantity)
	s.carts[userID] = cart
	return nil
}

func (s *Store) GetCart(ctx context.Context, userID string) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[userID]
	if !ok {
		return domain.NewCart(userID), nil
	}
	return cart.Clone(), nil
}

func (s *Store) EmptyCart(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[userID] = domain.NewCart(userID)
	return nil
}

func (s *Store) Ping(ctx context.Context) bool { return true }
