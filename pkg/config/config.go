package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	AppEnv   string `env:"APP_ENV" envDefault:"dev"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	GRPCPort int `env:"GRPC_PORT" envDefault:"7070"`
	HTTPPort int `env:"HTTP_PORT" envDefault:"8080"`
	// MetricsPort 0 turns the metrics listener off.
	MetricsPort int `env:"METRICS_PORT" envDefault:"9464"`

	// RedisAddr empty selects the in-process store.
	RedisAddr           string        `env:"REDIS_ADDR"`
	RedisMaxRetries     int           `env:"REDIS_MAX_RETRIES" envDefault:"3"`
	RedisConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`

	// CartServiceAddr is where the gateway dials the cart service.
	CartServiceAddr string `env:"CART_SERVICE_ADDR" envDefault:"localhost:7070"`

	GRPCMaxMessageBytes   int           `env:"GRPC_MAX_MESSAGE_BYTES" envDefault:"4194304"`
	GRPCKeepaliveTime     time.Duration `env:"GRPC_KEEPALIVE_TIME" envDefault:"2m"`
	GRPCKeepaliveTimeout  time.Duration `env:"GRPC_KEEPALIVE_TIMEOUT" envDefault:"20s"`
	GRPCMaxConnectionIdle time.Duration `env:"GRPC_MAX_CONNECTION_IDLE" envDefault:"15m"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads Config from the environment. Unset variables take their
// defaults; malformed ones are an error rather than a silent fallback.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var errs []error
	for name, port := range map[string]int{"GRPC_PORT": c.GRPCPort, "HTTP_PORT": c.HTTPPort} {
		if port < 1 || port > 65535 {
			errs = append(errs, fmt.Errorf("%s out of range: %d", name, port))
		}
	}
	if c.MetricsPort < 0 || c.MetricsPort > 65535 {
		errs = append(errs, fmt.Errorf("METRICS_PORT out of range: %d", c.MetricsPort))
	}
	if c.GRPCMaxMessageBytes <= 0 {
		errs = append(errs, fmt.Errorf("GRPC_MAX_MESSAGE_BYTES must be positive: %d", c.GRPCMaxMessageBytes))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("SHUTDOWN_TIMEOUT must be positive: %s", c.ShutdownTimeout))
	}
	if c.RedisMaxRetries < -1 {
		errs = append(errs, fmt.Errorf("REDIS_MAX_RETRIES must be -1 or more: %d", c.RedisMaxRetries))
	}
	return errors.Join(errs...)
}
