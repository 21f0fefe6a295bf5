package server_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shopapi/internal/config"
	"shopapi/internal/domain/model"
	"shopapi/internal/metrics"
	repo "shopapi/internal/repository"
	"shopapi/internal/server"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =====================
// Stub（固定値を返すだけ）
// =====================

type stubProducts struct{}

func (stubProducts) ListByName(ctx context.Context, name string) ([]model.Product, error) {
	return []model.Product{}, nil
}
func (stubProducts) ListAll(ctx context.Context) ([]model.Product, error) {
	return []model.Product{}, nil
}
func (stubProducts) ListSummaries(ctx context.Context) ([]model.ProductSummary, error) {
	return []model.ProductSummary{}, nil
}
func (stubProducts) FindByID(ctx context.Context, id string) (model.Product, error) {
	return model.Product{}, repo.ErrNotFound
}
func (stubProducts) CreateMany(ctx context.Context, products []model.Product) ([]model.Product, error) {
	return products, nil
}
func (stubProducts) Update(ctx context.Context, id string, patch model.ProductPatch) (model.Product, error) {
	return model.Product{}, repo.ErrNotFound
}
func (stubProducts) Delete(ctx context.Context, id string) error { return repo.ErrNotFound }

type stubOrders struct{}

func (stubOrders) ListHistory(ctx context.Context, q repo.OrderHistoryQuery) ([]model.Order, error) {
	return []model.Order{}, nil
}
func (stubOrders) CountHistory(ctx context.Context, f repo.OrderHistoryFilter) (int64, error) {
	return 0, nil
}
func (stubOrders) FindOwned(ctx context.Context, orderID, userID string) (model.Order, error) {
	return model.Order{}, repo.ErrNotFound
}

type okPinger struct{}

func (okPinger) Ping(ctx context.Context) error { return nil }

func newServer(t *testing.T, max int) *echo.Echo {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := config.Config{
		JWTSecret:        "test-secret",
		StoreDriver:      config.DriverMongo,
		CORSAllowOrigins: []string{"*"},
		RateLimitWindow:  15 * time.Minute,
		RateLimitMax:     max,
	}
	return server.New(cfg, server.Deps{
		Log:      log,
		Metrics:  metrics.NewHTTPMetrics(),
		Products: stubProducts{},
		Orders:   stubOrders{},
		Health:   okPinger{},
	})
}

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// =====================
// Tests
// =====================

func TestServer_RoutesAreWired(t *testing.T) {
	e := newServer(t, 100)

	assert.Equal(t, http.StatusOK, get(e, "/productlist").Code)
	assert.Equal(t, http.StatusOK, get(e, "/healthz").Code)
	assert.Equal(t, http.StatusUnauthorized, get(e, "/admin/products").Code)
	assert.Equal(t, http.StatusUnauthorized, get(e, "/orderhistory/my").Code)
}

func TestServer_UnknownRouteIsJSONEnvelope(t *testing.T) {
	e := newServer(t, 100)

	rec := get(e, "/nope")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error":true`)
}

func TestServer_RequestIDHeader(t *testing.T) {
	e := newServer(t, 100)

	rec := get(e, "/productlist")

	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestServer_RateLimitAfterMax(t *testing.T) {
	e := newServer(t, 2)

	assert.Equal(t, http.StatusOK, get(e, "/productlist").Code)
	assert.Equal(t, http.StatusOK, get(e, "/productlist").Code)

	rec := get(e, "/productlist")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "Too many requests, please try again later.")

	// healthz は数えない
	assert.Equal(t, http.StatusOK, get(e, "/healthz").Code)
}

func TestServer_CORSPreflight(t *testing.T) {
	e := newServer(t, 1)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodOptions, "/admin/products", nil)
		req.Header.Set(echo.HeaderOrigin, "http://localhost:3000")
		req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	}
}

func TestServer_MetricsExposeRequests(t *testing.T) {
	e := newServer(t, 100)
	get(e, "/productlist")

	rec := get(e, "/metrics")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total{method="GET",route="/productlist",status="2xx"} 1`)
}

func TestStart_ShutsDownOnCancel(t *testing.T) {
	e := newServer(t, 100)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- server.Start(ctx, e, "127.0.0.1:0", time.Second) }()

	// 起動を待つ
	require.Eventually(t, func() bool { return e.ListenerAddr() != nil }, 2*time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}
