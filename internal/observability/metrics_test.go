package observability

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rr.Code)
	}
	return rr.Body.String()
}

func TestMetricsMiddlewareRecordsRequest(t *testing.T) {
	metrics := NewMetrics()

	handler := metrics.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	routeCtx := chi.NewRouteContext()
	routeCtx.RoutePatterns = append(routeCtx.RoutePatterns, "/entity/{key}")

	req := httptest.NewRequest(http.MethodGet, "/entity/employees", nil)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx)
	req = req.WithContext(ctx)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusTeapot {
		t.Fatalf("expected status %d, got %d", http.StatusTeapot, rr.Code)
	}

	body := scrape(t, metrics)
	if !strings.Contains(body, `qualitydesk_http_requests_total{code="418",route="/entity/{key}"} 1`) {
		t.Fatalf("expected metrics to record request, got: %s", body)
	}
	if !strings.Contains(body, `qualitydesk_http_request_duration_seconds_bucket{route="/entity/{key}"`) {
		t.Fatalf("expected duration histogram to be present, got: %s", body)
	}
}

func TestObserveQuery(t *testing.T) {
	metrics := NewMetrics()

	metrics.ObserveQuery("select", "employees", 5*time.Millisecond, nil)
	metrics.ObserveQuery("insert", "employees", time.Millisecond, errors.New("not null"))

	body := scrape(t, metrics)
	if !strings.Contains(body, `qualitydesk_datastore_query_duration_seconds_count{op="select",table="employees"} 1`) {
		t.Fatalf("expected query histogram, got: %s", body)
	}
	if !strings.Contains(body, `qualitydesk_datastore_errors_total{op="insert",table="employees"} 1`) {
		t.Fatalf("expected error counter, got: %s", body)
	}
	if strings.Contains(body, `qualitydesk_datastore_errors_total{op="select"`) {
		t.Fatalf("successful query must not count as error: %s", body)
	}
}

func TestNilMetrics(t *testing.T) {
	var metrics *Metrics
	metrics.ObserveQuery("select", "employees", time.Millisecond, nil)

	rr := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rr.Code)
	}
}
