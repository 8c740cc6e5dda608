package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	cartgrpc "github.com/dwikikusuma/cartservice/internal/cart/grpc"
	"github.com/dwikikusuma/cartservice/internal/cart/infra/metrics"
	"github.com/dwikikusuma/cartservice/internal/cart/server"
	"github.com/dwikikusuma/cartservice/pkg/config"
	"github.com/dwikikusuma/cartservice/pkg/logger"
	"github.com/dwikikusuma/cartservice/pkg/shutdown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cartservice: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Options{Service: "cartservice", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("cartservice stopped", slog.Any("err", err))
		os.Exit(1)
	}
	log.Info("bye")
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	store := openStore(ctx, cfg, log)

	reg := metrics.NewRegistry()
	recorder, err := metrics.NewRecorder(reg)
	if err != nil {
		closeStore(store, log)
		return err
	}

	srv, err := server.NewWithAddr(
		fmt.Sprintf(":%d", cfg.GRPCPort),
		store,
		log,
		serverOptions(cfg),
		cartgrpc.NewLogObserver(log),
		recorder,
	)
	if err != nil {
		closeStore(store, log)
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Serve(gctx)
	})

	if cfg.MetricsPort > 0 {
		addr := fmt.Sprintf(":%d", cfg.MetricsPort)
		metricsServer := &http.Server{
			Addr:              addr,
			Handler:           metrics.Handler(reg),
			ReadHeaderTimeout: 5 * time.Second,
		}
		g.Go(func() error {
			log.Info("metrics server starting", slog.String("addr", addr))
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer stop()
			return metricsServer.Shutdown(shutdownCtx)
		})
	}

	return g.Wait()
}

func serverOptions(cfg config.Config) server.Options {
	opts := server.DefaultOptions()
	opts.MaxMessageBytes = cfg.GRPCMaxMessageBytes
	opts.KeepaliveTime = cfg.GRPCKeepaliveTime
	opts.KeepaliveTimeout = cfg.GRPCKeepaliveTimeout
	opts.MaxConnectionIdle = cfg.GRPCMaxConnectionIdle
	opts.ShutdownTimeout = cfg.ShutdownTimeout
	return opts
}

func closeStore(store any, log *slog.Logger) {
	if c, ok := store.(io.Closer); ok {
		if err := c.Close(); err != nil {
			log.Error("close cart store", slog.Any("err", err))
		}
	}
}
