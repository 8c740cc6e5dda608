package grpc

import (
	"context"

	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

type Pinger interface {
	Ping(ctx context.Context) bool
}

// Health answers grpc.health.v1 Check by probing the store on every call.
// It keeps no serving state of its own.
type Health struct {
	grpc_health_v1.UnimplementedHealthServer
	store Pinger
}

func NewHealth(store Pinger) *Health {
	return &Health{store: store}
}

func (h *Health) Check(ctx context.Context, _ *grpc_health_v1.HealthCheckRequest) (*grpc_health_v1.HealthCheckResponse, error) {
	st := grpc_health_v1.HealthCheckResponse_NOT_SERVING
	if h.ping(ctx) {
		st = grpc_health_v1.HealthCheckResponse_SERVING
	}
	return &grpc_health_v1.HealthCheckResponse{Status: st}, nil
}

func (h *Health) ping(ctx context.Context) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return h.store.Ping(ctx)
}
