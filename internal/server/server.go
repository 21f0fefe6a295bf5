// Package server はEchoの組み立てと起動/停止。
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"shopapi/internal/config"
	"shopapi/internal/handler"
	"shopapi/internal/metrics"
	"shopapi/internal/middleware"
	"shopapi/internal/repository"
	"shopapi/internal/usecase"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

// Deps は起動時に外から渡す部品
type Deps struct {
	Log      *logrus.Logger
	Metrics  *metrics.HTTPMetrics
	Products repository.ProductRepository
	Orders   repository.OrderRepository
	Health   repository.Pinger
}

func New(cfg config.Config, d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handler.NewHTTPErrorHandler(d.Log)

	e.Use(middleware.RequestID())
	e.Use(middleware.Metrics(d.Metrics))
	e.Use(middleware.RequestLogger(d.Log))
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(middleware.RateLimiter(middleware.RateLimitConfig{
		Window:    cfg.RateLimitWindow,
		Max:       cfg.RateLimitMax,
		SkipPaths: []string{"/healthz", "/"},
	}))

	RegisterRoutes(e, cfg, d)
	return e
}

// RegisterRoutes は全ハンドラを登録する。
func RegisterRoutes(e *echo.Echo, cfg config.Config, d Deps) {
	productUC := usecase.NewProductUsecase(d.Products)
	orderUC := usecase.NewOrderHistoryUsecase(d.Orders)

	handler.NewHealthHandler(d.Health, cfg.StoreDriver).RegisterRoutes(e)
	handler.NewProductHandler(productUC).RegisterRoutes(e)
	handler.NewAdminProductHandler(productUC).RegisterRoutes(e, cfg)
	handler.NewOrderHistoryHandler(orderUC).RegisterRoutes(e, cfg)

	e.GET("/metrics", echo.WrapHandler(d.Metrics.Handler()))
}

// Start は ctx が終わるまで待ち、timeout 以内に graceful shutdown する。
func Start(ctx context.Context, e *echo.Echo, addr string, timeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
