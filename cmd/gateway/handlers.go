package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"

	cartv1 "github.com/dwikikusuma/cartservice/api/gen/cart/v1"
	cartgrpc "github.com/dwikikusuma/cartservice/internal/cart/grpc"
)

const (
	maxBodyBytes  = 1 << 20
	upstreamLimit = 5 * time.Second
	readyLimit    = 2 * time.Second
)

type healthChecker interface {
	Check(ctx context.Context, in *grpc_health_v1.HealthCheckRequest, opts ...grpc.CallOption) (*grpc_health_v1.HealthCheckResponse, error)
}

type gateway struct {
	carts   cartv1.CartServiceClient
	health  healthChecker
	metrics http.Handler
	log     *slog.Logger

	// instrument wraps every route, typically with request metrics.
	instrument func(http.Handler) http.Handler
}

type itemJSON struct {
	ProductID string `json:"product_id"`
	Quantity  int32  `json:"quantity"`
}

type cartJSON struct {
	UserID string     `json:"user_id"`
	Items  []itemJSON `json:"items"`
}

type requestIDKey struct{}

func newRouter(gw *gateway) http.Handler {
	r := chi.NewRouter()
	if gw.instrument != nil {
		r.Use(gw.instrument)
	}
	r.Use(gw.requestID)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/readyz", gw.ready)
	if gw.metrics != nil {
		r.Handle("/metrics", gw.metrics)
	}

	r.Get("/v1/carts/{userID}", gw.getCart)
	r.Delete("/v1/carts/{userID}", gw.emptyCart)
	r.Post("/v1/carts/{userID}/items", gw.addItem)
	return r
}

// requestID reuses the caller's X-Request-Id or mints one, echoes it back and
// forwards it to the cart service as gRPC metadata.
func (gw *gateway) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(cartgrpc.RequestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(cartgrpc.RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func upstreamContext(r *http.Request) (context.Context, context.CancelFunc) {
	ctx := r.Context()
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		ctx = metadata.AppendToOutgoingContext(ctx, cartgrpc.RequestIDHeader, id)
	}
	return context.WithTimeout(ctx, upstreamLimit)
}

func (gw *gateway) getCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := upstreamContext(r)
	defer cancel()

	cart, err := gw.carts.GetCart(ctx, &cartv1.GetCartRequest{UserId: chi.URLParam(r, "userID")})
	if err != nil {
		gw.upstreamFailed(r, "GetCart", err)
		writeGRPCError(w, err)
		return
	}

	out := cartJSON{UserID: cart.GetUserId(), Items: make([]itemJSON, 0, len(cart.GetItems()))}
	for _, it := range cart.GetItems() {
		out.Items = append(out.Items, itemJSON{ProductID: it.GetProductId(), Quantity: it.GetQuantity()})
	}
	writeJSON(w, http.StatusOK, out)
}

func (gw *gateway) addItem(w http.ResponseWriter, r *http.Request) {
	var in itemJSON
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&in); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "INVALID_ARGUMENT", "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "invalid JSON body")
		return
	}

	ctx, cancel := upstreamContext(r)
	defer cancel()

	_, err := gw.carts.AddItem(ctx, &cartv1.AddItemRequest{
		UserId: chi.URLParam(r, "userID"),
		Item:   &cartv1.CartItem{ProductId: in.ProductID, Quantity: in.Quantity},
	})
	if err != nil {
		gw.upstreamFailed(r, "AddItem", err)
		writeGRPCError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (gw *gateway) emptyCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := upstreamContext(r)
	defer cancel()

	if _, err := gw.carts.EmptyCart(ctx, &cartv1.EmptyCartRequest{UserId: chi.URLParam(r, "userID")}); err != nil {
		gw.upstreamFailed(r, "EmptyCart", err)
		writeGRPCError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (gw *gateway) ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyLimit)
	defer cancel()

	resp, err := gw.health.Check(ctx, &grpc_health_v1.HealthCheckRequest{})
	if err != nil {
		gw.upstreamFailed(r, "Check", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "UNREACHABLE"})
		return
	}
	statusCode := http.StatusOK
	if resp.GetStatus() != grpc_health_v1.HealthCheckResponse_SERVING {
		statusCode = http.StatusServiceUnavailable
	}
	writeJSON(w, statusCode, map[string]string{"status": resp.GetStatus().String()})
}

func (gw *gateway) upstreamFailed(r *http.Request, method string, err error) {
	id, _ := r.Context().Value(requestIDKey{}).(string)
	gw.log.Warn("cart upstream failed",
		slog.String("method", method),
		slog.String("request_id", id),
		slog.Any("err", err),
	)
}
