package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"

	cartv1 "github.com/dwikikusuma/cartservice/api/gen/cart/v1"
	"github.com/dwikikusuma/cartservice/internal/cart/infra/metrics"
	"github.com/dwikikusuma/cartservice/pkg/config"
	"github.com/dwikikusuma/cartservice/pkg/logger"
	"github.com/dwikikusuma/cartservice/pkg/shutdown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "gateway: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Options{
		Service:   "gateway",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: true,
	})

	root := context.Background()
	ctx, cancel := shutdown.WithSignals(root)
	defer cancel()

	reg := metrics.NewRegistry()
	httpMetrics, err := metrics.NewHTTPRecorder(reg)
	if err != nil {
		log.Error("metrics setup failed", slog.Any("err", err))
		os.Exit(1)
	}

	conn, err := grpc.NewClient(cfg.CartServiceAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	)
	if err != nil {
		log.Error("cart client setup failed", slog.Any("err", err), slog.String("addr", cfg.CartServiceAddr))
		os.Exit(1)
	}
	defer conn.Close()

	gw := &gateway{
		carts:      cartv1.NewCartServiceClient(conn),
		health:     grpc_health_v1.NewHealthClient(conn),
		metrics:    metrics.Handler(reg),
		log:        log,
		instrument: httpMetrics.Middleware,
	}

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           newRouter(gw),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("http server starting", slog.String("addr", addr), slog.String("cart_service", cfg.CartServiceAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown error", slog.Any("err", err))
	}

	wg.Wait()
	log.Info("bye")
}
