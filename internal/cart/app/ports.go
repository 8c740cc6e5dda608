package app

import (
	"context"
	"time"

	"github.com/dwikikusuma/cartservice/internal/cart/domain"
)

// CartStore.GetCart returns an empty cart, not an error, for an unknown user.
type CartStore interface {
	AddItem(ctx context.Context, userID, productID string, quantity int32) error
	GetCart(ctx context.Context, userID string) (domain.Cart, error)
	EmptyCart(ctx context.Context, userID string) error
	Ping(ctx context.Context) bool
}

type Call struct {
	Method   string
	Outcome  string // gRPC code name
	Duration time.Duration
	Err      error // unsanitized, for logs only
}

type CallObserver interface {
	ObserveCall(ctx context.Context, call Call)
}
