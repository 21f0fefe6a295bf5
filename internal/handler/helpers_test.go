package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"shopapi/internal/config"
	"shopapi/internal/domain/model"
	"shopapi/internal/handler"
	repo "shopapi/internal/repository"
	"shopapi/internal/usecase"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testSecret  = "test-secret"
	adminID     = "65a1b2c3d4e5f60718293a01"
	userID      = "65a1b2c3d4e5f60718293a02"
	productID   = "65a1b2c3d4e5f60718293a4b"
	otherUserID = "65a1b2c3d4e5f60718293a03"
)

// =====================
// Mocks（handler専用）
// =====================

type productRepoMock struct{ mock.Mock }

func (m *productRepoMock) ListByName(ctx context.Context, name string) ([]model.Product, error) {
	args := m.Called(ctx, name)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *productRepoMock) ListAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *productRepoMock) ListSummaries(ctx context.Context) ([]model.ProductSummary, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.ProductSummary)
	return items, args.Error(1)
}

func (m *productRepoMock) FindByID(ctx context.Context, id string) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *productRepoMock) CreateMany(ctx context.Context, products []model.Product) ([]model.Product, error) {
	args := m.Called(ctx, products)
	created, _ := args.Get(0).([]model.Product)
	return created, args.Error(1)
}

func (m *productRepoMock) Update(ctx context.Context, id string, patch model.ProductPatch) (model.Product, error) {
	args := m.Called(ctx, id, patch)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *productRepoMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type orderRepoMock struct{ mock.Mock }

func (m *orderRepoMock) ListHistory(ctx context.Context, q repo.OrderHistoryQuery) ([]model.Order, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Order)
	return items, args.Error(1)
}

func (m *orderRepoMock) CountHistory(ctx context.Context, f repo.OrderHistoryFilter) (int64, error) {
	args := m.Called(ctx, f)
	n, _ := args.Get(0).(int64)
	return n, args.Error(1)
}

func (m *orderRepoMock) FindOwned(ctx context.Context, orderID, userID string) (model.Order, error) {
	args := m.Called(ctx, orderID, userID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

type pingerMock struct{ err error }

func (p pingerMock) Ping(ctx context.Context) error { return p.err }

// =====================
// helper
// =====================

type testApp struct {
	e        *echo.Echo
	products *productRepoMock
	orders   *orderRepoMock
}

func newTestApp(t *testing.T, pingErr error) testApp {
	t.Helper()

	cfg := config.Config{JWTSecret: testSecret}
	log := logrus.New()
	log.SetOutput(io.Discard)

	products := new(productRepoMock)
	orders := new(orderRepoMock)

	e := echo.New()
	e.HTTPErrorHandler = handler.NewHTTPErrorHandler(log)

	productUC := usecase.NewProductUsecase(products)
	handler.NewProductHandler(productUC).RegisterRoutes(e)
	handler.NewAdminProductHandler(productUC).RegisterRoutes(e, cfg)
	handler.NewOrderHistoryHandler(usecase.NewOrderHistoryUsecase(orders)).RegisterRoutes(e, cfg)
	handler.NewHealthHandler(pingerMock{err: pingErr}, "mongo").RegisterRoutes(e)

	return testApp{e: e, products: products, orders: orders}
}

func bearer(t *testing.T, sub, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	s, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + s
}

func (a testApp) do(method, path, auth, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if auth != "" {
		req.Header.Set(echo.HeaderAuthorization, auth)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}
