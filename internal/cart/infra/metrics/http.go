package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

const gatewayNamespace = "cartgateway"

// HTTPRecorder counts gateway requests by chi route pattern, so user ids
// never become label values.
type HTTPRecorder struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewHTTPRecorder(reg prometheus.Registerer) (*HTTPRecorder, error) {
	h := &HTTPRecorder{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: gatewayNamespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of gateway HTTP requests, by method, route and status.",
			},
			[]string{"method", "route", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: gatewayNamespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of gateway HTTP requests.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}

	for _, c := range []prometheus.Collector{h.requests, h.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// Middleware must sit on the chi router itself; the route pattern is read
// after routing has run.
func (h *HTTPRecorder) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		h.requests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		h.duration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
