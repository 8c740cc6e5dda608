package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/dwikikusuma/cartservice/internal/cart/app"
)

func TestRecorderCountsByOutcome(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, err := NewRecorder(reg)
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}

	ctx := context.Background()
	r.ObserveCall(ctx, app.Call{Method: "AddItem", Outcome: "OK", Duration: 2 * time.Millisecond})
	r.ObserveCall(ctx, app.Call{Method: "AddItem", Outcome: "OK", Duration: 3 * time.Millisecond})
	r.ObserveCall(ctx, app.Call{Method: "AddItem", Outcome: "InvalidArgument", Duration: time.Millisecond})

	if got := testutil.ToFloat64(r.requests.WithLabelValues("AddItem", "OK")); got != 2 {
		t.Fatalf("expected 2 OK calls, got %v", got)
	}
	if got := testutil.ToFloat64(r.requests.WithLabelValues("AddItem", "InvalidArgument")); got != 1 {
		t.Fatalf("expected 1 invalid call, got %v", got)
	}
	if got := testutil.CollectAndCount(r.duration); got != 1 {
		t.Fatalf("expected one duration series, got %d", got)
	}
}

func TestNewRecorderDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewRecorder(reg); err != nil {
		t.Fatalf("first NewRecorder: %v", err)
	}
	if _, err := NewRecorder(reg); err == nil {
		t.Fatal("expected duplicate registration error")
	}
}

func TestHandlerServesCartMetrics(t *testing.T) {
	reg := NewRegistry()
	r, err := NewRecorder(reg)
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}
	r.ObserveCall(context.Background(), app.Call{Method: "GetCart", Outcome: "OK", Duration: time.Millisecond})

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `cartservice_rpc_requests_total{method="GetCart",outcome="OK"} 1`) {
		t.Fatalf("missing request counter in:\n%s", body)
	}
	if !strings.Contains(body, "go_goroutines") {
		t.Fatal("missing go runtime collector")
	}
}
