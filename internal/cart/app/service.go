package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dwikikusuma/cartservice/internal/cart/domain"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrStorageUnavailable = errors.New("cart storage unavailable")
	ErrSerialization      = errors.New("cart storage returned unreadable data")
)

type Service struct {
	store CartStore
}

func NewService(store CartStore) *Service {
	return &Service{
		store: store,
	}
}

// AddItem rejects a nil item like a blank product id.
func (s *Service) AddItem(ctx context.Context, userID string, item *domain.CartItem) error {
	if err := validateUserID(userID); err != nil {
		return err
	}
	if item == nil {
		return fmt.Errorf("%w: item is required", ErrInvalidInput)
	}
	if strings.TrimSpace(item.ProductID) == "" {
		return fmt.Errorf("%w: product_id is required", ErrInvalidInput)
	}
	if item.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive, got %d", ErrInvalidInput, item.Quantity)
	}

	return s.store.AddItem(ctx, userID, item.ProductID, item.Quantity)
}

func (s *Service) GetCart(ctx context.Context, userID string) (domain.Cart, error) {
	if err := validateUserID(userID); err != nil {
		return domain.Cart{}, err
	}

	cart, err := s.store.GetCart(ctx, userID)
	if err != nil {
		return domain.Cart{}, err
	}
	if cart.Items == nil {
		cart.Items = []domain.CartItem{}
	}
	return cart, nil
}

func (s *Service) EmptyCart(ctx context.Context, userID string) error {
	if err := validateUserID(userID); err != nil {
		return err
	}
	return s.store.EmptyCart(ctx, userID)
}

func validateUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}
	return nil
}
