// Package redis stores carts in Redis as hipstershop.Cart protobuf bytes
// under "cart:<userID>", the layout peer services read.
package redis

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	goredis "github.com/go-redis/redis/v8"

	"github.com/dwikikusuma/cartservice/internal/cart/app"
	"github.com/dwikikusuma/cartservice/internal/cart/domain"
)

const (
	DefaultPort = "6379"

	keyPrefix   = "cart:"
	pingTimeout = 2 * time.Second
)

type Options struct {
	// Addr is host[:port]; a missing port means DefaultPort.
	Addr string

	MaxRetries      int
	MinRetryBackoff time.Duration
	MaxRetryBackoff time.Duration

	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func DefaultOptions(addr string) Options {
	return Options{
		Addr:            addr,
		MaxRetries:      3,
		MinRetryBackoff: 8 * time.Millisecond,
		MaxRetryBackoff: 512 * time.Millisecond,
		DialTimeout:     5 * time.Second,
		ReadTimeout:     3 * time.Second,
		WriteTimeout:    3 * time.Second,
	}
}

// Store runs AddItem as GET then SET; concurrent adds for one user can lose
// an update.
type Store struct {
	client *goredis.Client
	addr   string
}

func NewStore(opts Options) *Store {
	addr := normalizeAddr(opts.Addr)
	client := goredis.NewClient(&goredis.Options{
		Addr:            addr,
		MaxRetries:      opts.MaxRetries,
		MinRetryBackoff: opts.MinRetryBackoff,
		MaxRetryBackoff: opts.MaxRetryBackoff,
		DialTimeout:     opts.DialTimeout,
		ReadTimeout:     opts.ReadTimeout,
		WriteTimeout:    opts.WriteTimeout,
	})
	return &Store{client: client, addr: addr}
}

func (s *Store) Addr() string { return s.addr }

func (s *Store) WaitReady(ctx context.Context, maxElapsed time.Duration) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.MaxInterval = 5 * time.Second

	_, err := backoff.Retry(ctx, func() (string, error) {
		return s.client.Ping(ctx).Result()
	}, backoff.WithBackOff(b), backoff.WithMaxElapsedTime(maxElapsed))
	if err != nil {
		return fmt.Errorf("%w: redis at %s: %v", app.ErrStorageUnavailable, s.addr, err)
	}
	return nil
}

func (s *Store) AddItem(ctx context.Context, userID, productID string, quantity int32) error {
	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return err
	}
	cart.Add(productID, quantity)
	return s.put(ctx, userID, cart)
}

func (s *Store) GetCart(ctx context.Context, userID string) (domain.Cart, error) {
	key := cartKey(userID)
	raw, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return domain.NewCart(userID), nil
	}
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%w: get %s: %v", app.ErrStorageUnavailable, key, err)
	}

	cart, err := decodeCart(raw)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%w: decode %s: %v", app.ErrSerialization, key, err)
	}
	if cart.UserID == "" {
		cart.UserID = userID
	}
	return cart, nil
}

// EmptyCart writes an empty cart; the key is never deleted.
func (s *Store) EmptyCart(ctx context.Context, userID string) error {
	return s.put(ctx, userID, domain.NewCart(userID))
}

// Ping is true only for a PONG reply.
func (s *Store) Ping(ctx context.Context) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	reply, err := s.client.Ping(ctx).Result()
	return err == nil && reply == "PONG"
}

func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) put(ctx context.Context, userID string, cart domain.Cart) error {
	key := cartKey(userID)
	if err := s.client.Set(ctx, key, encodeCart(cart), 0).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %v", app.ErrStorageUnavailable, key, err)
	}
	return nil
}

func cartKey(userID string) string {
	return keyPrefix + userID
}

func normalizeAddr(addr string) string {
	addr = strings.TrimSpace(addr)
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return net.JoinHostPort(strings.Trim(addr, "[]"), DefaultPort)
	}
	if port == "" {
		port = DefaultPort
	}
	return net.JoinHostPort(host, port)
}
