package grpc

import (
	"context"
	"log/slog"

	"google.golang.org/grpc/metadata"

	"github.com/dwikikusuma/cartservice/internal/cart/app"
)

// RequestIDHeader is the metadata key callers use to correlate log lines.
const RequestIDHeader = "x-request-id"

// LogObserver writes one log line per cart call.
type LogObserver struct {
	log *slog.Logger
}

func NewLogObserver(log *slog.Logger) *LogObserver {
	return &LogObserver{log: log}
}

func (o *LogObserver) ObserveCall(ctx context.Context, call app.Call) {
	attrs := []slog.Attr{
		slog.String("method", call.Method),
		slog.String("outcome", call.Outcome),
		slog.Duration("duration", call.Duration),
	}
	if id := requestID(ctx); id != "" {
		attrs = append(attrs, slog.String("request_id", id))
	}

	if call.Err != nil {
		attrs = append(attrs, slog.Any("err", call.Err))
		o.log.LogAttrs(ctx, slog.LevelWarn, "cart call failed", attrs...)
		return
	}
	o.log.LogAttrs(ctx, slog.LevelInfo, "cart call", attrs...)
}

func requestID(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if v := md.Get(RequestIDHeader); len(v) > 0 {
		return v[0]
	}
	return ""
}
