package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qualitydesk/qualitydesk/internal/catalog"
	"github.com/qualitydesk/qualitydesk/internal/datastore"
	"github.com/qualitydesk/qualitydesk/internal/dmt"
	"github.com/qualitydesk/qualitydesk/internal/entity"
	"github.com/qualitydesk/qualitydesk/internal/observability"
	"github.com/qualitydesk/qualitydesk/internal/shared"
	"github.com/qualitydesk/qualitydesk/internal/view"
)

type testApp struct {
	router http.Handler
	store  datastore.Store
}

func newTestApp(t *testing.T, wrap func(datastore.Store) datastore.Store) testApp {
	t.Helper()
	sqlite, err := datastore.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, sqlite.Bootstrap(context.Background()))
	t.Cleanup(func() { _ = sqlite.Close() })

	metrics := observability.NewMetrics()
	var store datastore.Store = datastore.Instrument(sqlite, metrics)
	if wrap != nil {
		store = wrap(store)
	}

	templates, err := view.NewEngine()
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &Config{AppEnv: "development", RateLimitPerMinute: 1000}

	router := NewRouter(RouterParams{
		Logger:        logger,
		Config:        cfg,
		Templates:     templates,
		Store:         store,
		EntityHandler: entity.NewHandler(logger, entity.NewService(catalog.MustDefault(), store), templates),
		DMTHandler:    dmt.NewHandler(logger, dmt.NewService(store, nil), templates),
		Metrics:       metrics,
	})
	return testApp{router: router, store: store}
}

func (a testApp) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, req)
	return rr
}

func TestWorkcenterScenario(t *testing.T) {
	a := newTestApp(t, nil)
	require.NoError(t, a.store.Insert(context.Background(), "workcenters", map[string]any{"name": "Line A", "code": "L1"}))

	rr := a.do(t, httptest.NewRequest(http.MethodGet, "/entity/workcenters", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Line A")

	form := url.Values{"name": {"Line B"}}
	req := httptest.NewRequest(http.MethodPost, "/entity/workcenters/create", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr = a.do(t, req)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = a.do(t, httptest.NewRequest(http.MethodGet, "/entity/workcenters", nil))
	body := rr.Body.String()
	first, second := strings.Index(body, "Line A"), strings.Index(body, "Line B")
	require.True(t, first >= 0 && second >= 0, body)
	assert.Less(t, first, second)
}

func TestShellAndHome(t *testing.T) {
	a := newTestApp(t, nil)

	rr := a.do(t, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `hx-get="/home"`)
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rr.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, rr.Header().Get("Content-Security-Policy"))

	rr = a.do(t, httptest.NewRequest(http.MethodGet, "/home", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Welcome to the Quality Management System")
}

func TestUnknownEntityRoute(t *testing.T) {
	a := newTestApp(t, nil)

	rr := a.do(t, httptest.NewRequest(http.MethodGet, "/entity/nope", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDMTRoutes(t *testing.T) {
	a := newTestApp(t, nil)
	require.NoError(t, a.store.Insert(context.Background(), dmt.Table, map[string]any{"id": "d1"}))

	rr := a.do(t, httptest.NewRequest(http.MethodGet, "/dmt/list", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "d1")

	rr = a.do(t, httptest.NewRequest(http.MethodDelete, "/dmt/delete/d1", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = a.do(t, httptest.NewRequest(http.MethodGet, "/dmt/list", nil))
	assert.Contains(t, rr.Body.String(), "No DMT records found")
}

func TestHealthzAndMetrics(t *testing.T) {
	a := newTestApp(t, nil)

	rr := a.do(t, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())

	a.do(t, httptest.NewRequest(http.MethodGet, "/entity/customers", nil))
	rr = a.do(t, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `qualitydesk_datastore_query_duration_seconds_count{op="select",table="customers"} 1`)
	assert.Contains(t, rr.Body.String(), `route="/entity/{key}"`)
}

type unreachable struct {
	datastore.Store
}

func (unreachable) Ping(context.Context) error {
	return shared.NewDataStoreError("ping", "", errors.New("dial tcp: connection refused"))
}

func TestHealthzReportsDatastoreFailure(t *testing.T) {
	a := newTestApp(t, func(s datastore.Store) datastore.Store { return unreachable{Store: s} })

	rr := a.do(t, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Contains(t, rr.Body.String(), "degraded")
}

func TestStaticAssets(t *testing.T) {
	a := newTestApp(t, nil)

	rr := a.do(t, httptest.NewRequest(http.MethodGet, "/static/css/app.css", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "public, max-age=3600", rr.Header().Get("Cache-Control"))
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/css")
}
