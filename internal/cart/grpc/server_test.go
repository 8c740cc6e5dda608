package grpc

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"sync"
	"testing"

	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	cartv1 "github.com/dwikikusuma/cartservice/api/gen/cart/v1"
	"github.com/dwikikusuma/cartservice/internal/cart/app"
	"github.com/dwikikusuma/cartservice/internal/cart/domain"
	"github.com/dwikikusuma/cartservice/internal/cart/infra/memory"
)

func startCartServer(t *testing.T, store app.CartStore, observers ...app.CallObserver) (cartv1.CartServiceClient, grpc_health_v1.HealthClient) {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := gogrpc.NewServer()
	cartv1.RegisterCartServiceServer(srv, NewServer(app.NewService(store), observers...))
	grpc_health_v1.RegisterHealthServer(srv, NewHealth(store))

	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := gogrpc.NewClient(
		"passthrough:///bufnet",
		gogrpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		gogrpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial bufconn: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	return cartv1.NewCartServiceClient(conn), grpc_health_v1.NewHealthClient(conn)
}

type brokenStore struct {
	err error
}

func (b brokenStore) AddItem(context.Context, string, string, int32) error { return b.err }
func (b brokenStore) GetCart(context.Context, string) (domain.Cart, error) {
	return domain.Cart{}, b.err
}
func (b brokenStore) EmptyCart(context.Context, string) error { return b.err }
func (b brokenStore) Ping(context.Context) bool             { return false }

type panickyStore struct{ *memory.Store }

func (panickyStore) Ping(context.Context) bool { panic("probe exploded") }

type recordingObserver struct {
	mu    sync.Mutex
	calls []app.Call
}

func (r *recordingObserver) ObserveCall(_ context.Context, call app.Call) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call)
}

type panickingObserver struct{}

func (panickingObserver) ObserveCall(context.Context, app.Call) { panic("sink down") }

func addItem(t *testing.T, c cartv1.CartServiceClient, userID, productID string, qty int32) {
	t.Helper()
	_, err := c.AddItem(context.Background(), &cartv1.AddItemRequest{
		UserId: userID,
		Item:   &cartv1.CartItem{ProductId: productID, Quantity: qty},
	})
	if err != nil {
		t.Fatalf("AddItem(%s, %s, %d): %v", userID, productID, qty, err)
	}
}

func getItems(t *testing.T, c cartv1.CartServiceClient, userID string) []string {
	t.Helper()
	cart, err := c.GetCart(context.Background(), &cartv1.GetCartRequest{UserId: userID})
	if err != nil {
		t.Fatalf("GetCart(%s): %v", userID, err)
	}
	if cart.GetUserId() != userID {
		t.Fatalf("expected user %q, got %q", userID, cart.GetUserId())
	}
	out := make([]string, 0, len(cart.GetItems()))
	for _, it := range cart.GetItems() {
		out = append(out, fmt.Sprintf("%s=%d", it.GetProductId(), it.GetQuantity()))
	}
	return out
}

func TestCartScenarios(t *testing.T) {
	t.Run("add twice merges", func(t *testing.T) {
		c, _ := startCartServer(t, memory.NewStore())
		addItem(t, c, "u1", "p1", 2)
		addItem(t, c, "u1", "p1", 3)

		if got := getItems(t, c, "u1"); strings.Join(got, ",") != "p1=5" {
			t.Fatalf("got %v", got)
		}
	})

	t.Run("unknown user is empty", func(t *testing.T) {
		c, _ := startCartServer(t, memory.NewStore())
		if got := getItems(t, c, "ghost"); len(got) != 0 {
			t.Fatalf("expected empty cart, got %v", got)
		}
	})

	t.Run("empty then get", func(t *testing.T) {
		c, _ := startCartServer(t, memory.NewStore())
		addItem(t, c, "u1", "p1", 2)
		addItem(t, c, "u1", "p2", 1)

		if _, err := c.EmptyCart(context.Background(), &cartv1.EmptyCartRequest{UserId: "u1"}); err != nil {
			t.Fatalf("EmptyCart: %v", err)
		}
		if got := getItems(t, c, "u1"); len(got) != 0 {
			t.Fatalf("expected empty cart, got %v", got)
		}
	})

	t.Run("rejected add leaves cart alone", func(t *testing.T) {
		c, _ := startCartServer(t, memory.NewStore())
		addItem(t, c, "u1", "p1", 2)

		_, err := c.AddItem(context.Background(), &cartv1.AddItemRequest{
			UserId: "u1",
			Item:   &cartv1.CartItem{ProductId: "", Quantity: 1},
		})
		if status.Code(err) != codes.InvalidArgument {
			t.Fatalf("expected InvalidArgument, got %v", err)
		}
		if got := getItems(t, c, "u1"); strings.Join(got, ",") != "p1=2" {
			t.Fatalf("got %v", got)
		}
	})
}

func TestValidationCodes(t *testing.T) {
	c, _ := startCartServer(t, memory.NewStore())
	ctx := context.Background()

	cases := []struct {
		name string
		call func() error
	}{
		{"add blank user", func() error {
			_, err := c.AddItem(ctx, &cartv1.AddItemRequest{UserId: " ", Item: &cartv1.CartItem{ProductId: "p1", Quantity: 1}})
			return err
		}},
		{"add missing item", func() error {
			_, err := c.AddItem(ctx, &cartv1.AddItemRequest{UserId: "u1"})
			return err
		}},
		{"add zero quantity", func() error {
			_, err := c.AddItem(ctx, &cartv1.AddItemRequest{UserId: "u1", Item: &cartv1.CartItem{ProductId: "p1"}})
			return err
		}},
		{"get blank user", func() error {
			_, err := c.GetCart(ctx, &cartv1.GetCartRequest{})
			return err
		}},
		{"empty blank user", func() error {
			_, err := c.EmptyCart(ctx, &cartv1.EmptyCartRequest{UserId: "\t"})
			return err
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if code := status.Code(tc.call()); code != codes.InvalidArgument {
				t.Fatalf("expected InvalidArgument, got %s", code)
			}
		})
	}
}

func TestStorageFailuresAreSanitized(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    codes.Code
		message string
	}{
		{"unavailable", fmt.Errorf("%w: get cart:u1: dial tcp 10.0.0.3:6379: connection refused", app.ErrStorageUnavailable), codes.FailedPrecondition, "can't access cart storage"},
		{"unreadable", fmt.Errorf("%w: decode cart:u1: field 1: unexpected wire type 0", app.ErrSerialization), codes.FailedPrecondition, "can't read cart from storage"},
		{"unexpected", fmt.Errorf("password=hunter2 rejected"), codes.Internal, "internal error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := startCartServer(t, brokenStore{err: tc.err})

			_, err := c.GetCart(context.Background(), &cartv1.GetCartRequest{UserId: "u1"})
			st, _ := status.FromError(err)
			if st.Code() != tc.code || st.Message() != tc.message {
				t.Fatalf("got (%s, %q), want (%s, %q)", st.Code(), st.Message(), tc.code, tc.message)
			}

			_, err = c.AddItem(context.Background(), &cartv1.AddItemRequest{UserId: "u1", Item: &cartv1.CartItem{ProductId: "p1", Quantity: 1}})
			if status.Code(err) != tc.code {
				t.Fatalf("AddItem: expected %s, got %v", tc.code, err)
			}
			_, err = c.EmptyCart(context.Background(), &cartv1.EmptyCartRequest{UserId: "u1"})
			if status.Code(err) != tc.code {
				t.Fatalf("EmptyCart: expected %s, got %v", tc.code, err)
			}
		})
	}
}

func TestObserversSeeEveryCall(t *testing.T) {
	rec := &recordingObserver{}
	c, _ := startCartServer(t, memory.NewStore(), panickingObserver{}, rec)
	ctx := context.Background()

	addItem(t, c, "u1", "p1", 1)
	_, _ = c.AddItem(ctx, &cartv1.AddItemRequest{UserId: "u1"})
	_ = getItems(t, c, "u1")
	if _, err := c.EmptyCart(ctx, &cartv1.EmptyCartRequest{UserId: "u1"}); err != nil {
		t.Fatalf("EmptyCart: %v", err)
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	want := []string{"AddItem/OK", "AddItem/InvalidArgument", "GetCart/OK", "EmptyCart/OK"}
	if len(rec.calls) != len(want) {
		t.Fatalf("expected %d calls, got %+v", len(want), rec.calls)
	}
	for i, call := range rec.calls {
		if got := call.Method + "/" + call.Outcome; got != want[i] {
			t.Fatalf("call %d: got %s want %s", i, got, want[i])
		}
	}
	if rec.calls[1].Err == nil {
		t.Fatal("expected the validation cause to reach observers")
	}
}

func TestLogObserver(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))
	c, _ := startCartServer(t, brokenStore{err: fmt.Errorf("%w: redis down", app.ErrStorageUnavailable)}, NewLogObserver(log))

	ctx := metadata.AppendToOutgoingContext(context.Background(), RequestIDHeader, "req-123")
	_, _ = c.GetCart(ctx, &cartv1.GetCartRequest{UserId: "u1"})

	out := buf.String()
	for _, want := range []string{`"msg":"cart call failed"`, `"method":"GetCart"`, `"outcome":"FailedPrecondition"`, `"request_id":"req-123"`, "redis down"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log line missing %s:\n%s", want, out)
		}
	}
}

func TestHealthCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("serving", func(t *testing.T) {
		_, h := startCartServer(t, memory.NewStore())
		resp, err := h.Check(ctx, &grpc_health_v1.HealthCheckRequest{})
		if err != nil {
			t.Fatalf("Check: %v", err)
		}
		if resp.GetStatus() != grpc_health_v1.HealthCheckResponse_SERVING {
			t.Fatalf("expected SERVING, got %s", resp.GetStatus())
		}
	})

	t.Run("store unreachable", func(t *testing.T) {
		_, h := startCartServer(t, brokenStore{err: app.ErrStorageUnavailable})
		resp, err := h.Check(ctx, &grpc_health_v1.HealthCheckRequest{})
		if err != nil {
			t.Fatalf("Check: %v", err)
		}
		if resp.GetStatus() != grpc_health_v1.HealthCheckResponse_NOT_SERVING {
			t.Fatalf("expected NOT_SERVING, got %s", resp.GetStatus())
		}
	})

	t.Run("probe panics", func(t *testing.T) {
		_, h := startCartServer(t, panickyStore{memory.NewStore()})
		resp, err := h.Check(ctx, &grpc_health_v1.HealthCheckRequest{Service: "hipstershop.CartService"})
		if err != nil {
			t.Fatalf("Check: %v", err)
		}
		if resp.GetStatus() != grpc_health_v1.HealthCheckResponse_NOT_SERVING {
			t.Fatalf("expected NOT_SERVING, got %s", resp.GetStatus())
		}
	})
}
