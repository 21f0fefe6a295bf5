package handler

import (
	"net/http"
	"net/url"

	"shopapi/internal/domain/model"
	"shopapi/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ProductsResponse struct {
	Error    bool            `json:"error"`
	Products []model.Product `json:"products"`
	Message  string          `json:"message"`
}

type ProductSummariesResponse struct {
	Error    bool                   `json:"error"`
	Products []model.ProductSummary `json:"products"`
	Message  string                 `json:"message"`
}

// 公開API（認証なし）
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// 公開商品のルートを登録
func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/productdetail/:product_name", h.detail)
	e.GET("/productlist", h.list)
}

// 同じ商品名のバリアント一覧
func (h *ProductHandler) detail(c echo.Context) error {
	name := pathParam(c, "product_name")

	items, err := h.uc.ListByName(c.Request().Context(), name)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, ProductsResponse{
		Products: items,
		Message:  "Get product successfully!",
	})
}

// 商品名ごとの最安サマリ
func (h *ProductHandler) list(c echo.Context) error {
	items, err := h.uc.ListSummaries(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, ProductSummariesResponse{
		Products: items,
		Message:  "All products successfully!",
	})
}

// RawPath があるときだけ echo は未デコードの値を返すので、その場合だけ戻す
func pathParam(c echo.Context, name string) string {
	raw := c.Param(name)
	if c.Request().URL.RawPath == "" {
		return raw
	}
	v, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return v
}
