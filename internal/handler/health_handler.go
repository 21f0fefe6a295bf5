package handler

import (
	"context"
	"net/http"
	"time"

	"shopapi/internal/repository"
	"shopapi/internal/usecase"

	"github.com/labstack/echo/v4"
)

const healthTimeout = 2 * time.Second

type HealthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}

type BannerResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// /healthz と /
type HealthHandler struct {
	store  repository.Pinger
	driver string
}

func NewHealthHandler(store repository.Pinger, driver string) *HealthHandler {
	return &HealthHandler{store: store, driver: driver}
}

func (h *HealthHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.healthz)
	e.GET("/", h.root)
}

func (h *HealthHandler) healthz(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		return writeError(c, usecase.WrapHTTPError(http.StatusInternalServerError, "store unavailable", err))
	}
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok", Store: h.driver})
}

func (h *HealthHandler) root(c echo.Context) error {
	return c.JSON(http.StatusOK, BannerResponse{Message: "shop api is running"})
}
