package main

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dwikikusuma/cartservice/internal/cart/app"
	"github.com/dwikikusuma/cartservice/internal/cart/infra/memory"
	cartredis "github.com/dwikikusuma/cartservice/internal/cart/infra/redis"
	"github.com/dwikikusuma/cartservice/pkg/config"
)

// openStore picks Redis when REDIS_ADDR is set and the in-process store
// otherwise. An unreachable Redis is not fatal: the service starts anyway and
// health reports NOT_SERVING until Redis answers.
func openStore(ctx context.Context, cfg config.Config, log *slog.Logger) app.CartStore {
	if strings.TrimSpace(cfg.RedisAddr) == "" {
		log.Info("cart store selected", slog.String("backend", "memory"))
		return memory.NewStore()
	}

	opts := cartredis.DefaultOptions(cfg.RedisAddr)
	opts.MaxRetries = cfg.RedisMaxRetries
	store := cartredis.NewStore(opts)

	log.Info("cart store selected", slog.String("backend", "redis"), slog.String("addr", store.Addr()))
	if err := store.WaitReady(ctx, cfg.RedisConnectTimeout); err != nil {
		log.Error("redis not reachable, starting anyway", slog.Any("err", err))
	}
	return store
}
