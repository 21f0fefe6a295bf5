package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shopapi/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func limitedEcho(max int) *echo.Echo {
	e := echo.New()
	e.Use(middleware.RateLimiter(middleware.RateLimitConfig{
		Window:    15 * time.Minute,
		Max:       max,
		SkipPaths: []string{"/healthz", "/"},
	}))
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	e.GET("/", ok)
	e.GET("/healthz", ok)
	e.GET("/productlist", ok)
	e.OPTIONS("/productlist", ok)
	return e
}

func requestFrom(e *echo.Echo, method, path, ip string) int {
	req := httptest.NewRequest(method, path, nil)
	req.RemoteAddr = ip + ":12345"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimiter_DeniesAfterMax(t *testing.T) {
	e := limitedEcho(3)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, requestFrom(e, http.MethodGet, "/productlist", "10.0.0.1"))
	}
	assert.Equal(t, http.StatusTooManyRequests, requestFrom(e, http.MethodGet, "/productlist", "10.0.0.1"))

	// 別IPは別バケット
	assert.Equal(t, http.StatusOK, requestFrom(e, http.MethodGet, "/productlist", "10.0.0.2"))
}

func TestRateLimiter_SkipsAllowList(t *testing.T) {
	e := limitedEcho(1)

	assert.Equal(t, http.StatusOK, requestFrom(e, http.MethodGet, "/productlist", "10.0.0.9"))
	assert.Equal(t, http.StatusTooManyRequests, requestFrom(e, http.MethodGet, "/productlist", "10.0.0.9"))

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, requestFrom(e, http.MethodGet, "/healthz", "10.0.0.9"))
		assert.Equal(t, http.StatusOK, requestFrom(e, http.MethodGet, "/", "10.0.0.9"))
		assert.Equal(t, http.StatusOK, requestFrom(e, http.MethodOptions, "/productlist", "10.0.0.9"))
	}
}
