// Package server wires the cart gRPC API, its health check and the storage
// lifecycle onto one listener.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"

	cartv1 "github.com/dwikikusuma/cartservice/api/gen/cart/v1"
	"github.com/dwikikusuma/cartservice/internal/cart/app"
	cartgrpc "github.com/dwikikusuma/cartservice/internal/cart/grpc"
	"github.com/dwikikusuma/cartservice/pkg/shutdown"
)

type Options struct {
	// MaxMessageBytes bounds both received and sent messages.
	MaxMessageBytes int

	KeepaliveTime     time.Duration
	KeepaliveTimeout  time.Duration
	KeepaliveMinTime  time.Duration
	MaxConnectionIdle time.Duration

	// ShutdownTimeout bounds the graceful drain before in-flight calls are
	// cut off.
	ShutdownTimeout time.Duration
}

func DefaultOptions() Options {
	return Options{
		MaxMessageBytes:   4 << 20,
		KeepaliveTime:     2 * time.Minute,
		KeepaliveTimeout:  20 * time.Second,
		KeepaliveMinTime:  10 * time.Second,
		MaxConnectionIdle: 15 * time.Minute,
		ShutdownTimeout:   10 * time.Second,
	}
}

// Server hosts CartService and grpc.health.v1 over a single listener.
type Server struct {
	listener   net.Listener
	grpcServer *grpc.Server
	store      app.CartStore
	log        *slog.Logger
	opts       Options

	closeStoreOnce sync.Once
}

// NewWithAddr listens on addr and builds the server.
func NewWithAddr(addr string, store app.CartStore, log *slog.Logger, opts Options, observers ...app.CallObserver) (*Server, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}
	return New(lis, store, log, opts, observers...), nil
}

func New(lis net.Listener, store app.CartStore, log *slog.Logger, opts Options, observers ...app.CallObserver) *Server {
	if log == nil {
		log = slog.Default()
	}

	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.MaxRecvMsgSize(opts.MaxMessageBytes),
		grpc.MaxSendMsgSize(opts.MaxMessageBytes),
		grpc.KeepaliveParams(keepalive.ServerParameters{
			MaxConnectionIdle: opts.MaxConnectionIdle,
			Time:              opts.KeepaliveTime,
			Timeout:           opts.KeepaliveTimeout,
		}),
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             opts.KeepaliveMinTime,
			PermitWithoutStream: true,
		}),
	)

	cartv1.RegisterCartServiceServer(grpcServer, cartgrpc.NewServer(app.NewService(store), observers...))
	grpc_health_v1.RegisterHealthServer(grpcServer, cartgrpc.NewHealth(store))

	return &Server{
		listener:   lis,
		grpcServer: grpcServer,
		store:      store,
		log:        log,
		opts:       opts,
	}
}

func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Serve blocks until ctx ends or the gRPC server fails. On ctx end it stops
// accepting calls, waits up to ShutdownTimeout for in-flight ones, cuts the
// rest off, and finally closes the store. Handlers that ignore cancellation
// are abandoned, so Serve returns within a few ShutdownTimeouts.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}

	s.log.Info("grpc starting", slog.String("addr", s.Addr()))
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		s.log.Info("shutdown requested")
		if !shutdown.Drain(s.opts.ShutdownTimeout, s.grpcServer.GracefulStop, s.grpcServer.Stop) {
			s.log.Warn("graceful stop timeout, forced stop")
		}
		select {
		case err := <-serveErr:
			s.closeStore()
			return serveResult(err)
		case <-time.After(s.opts.ShutdownTimeout):
			s.log.Warn("handlers ignored cancellation, abandoning them")
			s.closeStore()
			return nil
		}
	case err := <-serveErr:
		s.closeStore()
		return serveResult(err)
	}
}

// Close stops the server immediately and releases the store.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
	s.closeStore()
}

func (s *Server) closeStore() {
	s.closeStoreOnce.Do(func() {
		c, ok := s.store.(io.Closer)
		if !ok {
			return
		}
		if err := c.Close(); err != nil {
			s.log.Error("close cart store", slog.Any("err", err))
		}
	})
}

func serveResult(err error) error {
	if err == nil || errors.Is(err, grpc.ErrServerStopped) {
		return nil
	}
	return fmt.Errorf("serve gRPC: %w", err)
}
