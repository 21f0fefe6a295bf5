package handler

import (
	"net/http"

	"shopapi/internal/config"
	"shopapi/internal/middleware"
	"shopapi/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /orderhistory（ログインユーザー本人の注文だけ）
type OrderHistoryHandler struct {
	uc *usecase.OrderHistoryUsecase
}

func NewOrderHistoryHandler(uc *usecase.OrderHistoryUsecase) *OrderHistoryHandler {
	return &OrderHistoryHandler{uc: uc}
}

func (h *OrderHistoryHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/orderhistory")
	g.Use(middleware.AuthJWT(cfg))

	g.GET("/my", h.list)
	g.GET("/my/:orderId", h.detail)
}

// ?limit&page&status&from&to&sort
func (h *OrderHistoryHandler) list(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	out, err := h.uc.ListMyOrders(c.Request().Context(), userID, c.QueryParams())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHistoryHandler) detail(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	o, err := h.uc.GetMyOrder(c.Request().Context(), userID, c.Param("orderId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, o)
}
