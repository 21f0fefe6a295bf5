package handler

import (
	"net/http"

	"shopapi/internal/catalog"
	"shopapi/internal/config"
	"shopapi/internal/middleware"
	"shopapi/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 管理画面向けはUI形（variances入り）で返す
type AdminProductsResponse struct {
	Error bool                `json:"error"`
	Items []catalog.UIProduct `json:"items"`
}

type AdminProductResponse struct {
	Error   bool              `json:"error"`
	Product catalog.UIProduct `json:"product"`
	Message string            `json:"message,omitempty"`
}

type AdminProductsCreatedResponse struct {
	Error    bool                `json:"error"`
	Products []catalog.UIProduct `json:"products"`
	Count    int                 `json:"count"`
	Message  string              `json:"message"`
}

type SuccessResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// /admin/products
type AdminProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewAdminProductHandler(uc *usecase.ProductUsecase) *AdminProductHandler {
	return &AdminProductHandler{uc: uc}
}

// adminを登録
func (h *AdminProductHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	admin := e.Group("/admin")

	admin.Use(middleware.AuthJWT(cfg))
	admin.Use(middleware.AdminRoleGuard())

	admin.GET("/products", h.listProducts)
	admin.GET("/products/:id", h.getProduct)
	admin.POST("/products", h.createProduct)
	admin.PUT("/products/:id", h.updateProduct)
	admin.DELETE("/products/:id", h.deleteProduct)
}

func (h *AdminProductHandler) listProducts(c echo.Context) error {
	items, err := h.uc.AdminList(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, AdminProductsResponse{Items: items})
}

func (h *AdminProductHandler) getProduct(c echo.Context) error {
	p, err := h.uc.AdminGet(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, AdminProductResponse{Product: p})
}

func (h *AdminProductHandler) createProduct(c echo.Context) error {
	payload, err := bindPayload(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: true, Message: "Invalid JSON body"})
	}

	userID, _ := middleware.UserID(c)

	out, err := h.uc.AdminCreate(c.Request().Context(), userID, payload)
	if err != nil {
		return writeError(c, err)
	}

	if out.FromVariances {
		return c.JSON(http.StatusCreated, AdminProductsCreatedResponse{
			Products: out.Products,
			Count:    len(out.Products),
			Message:  "Products created successfully from variances",
		})
	}
	return c.JSON(http.StatusCreated, AdminProductResponse{
		Product: out.Products[0],
		Message: "Product created",
	})
}

func (h *AdminProductHandler) updateProduct(c echo.Context) error {
	payload, err := bindPayload(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: true, Message: "Invalid JSON body"})
	}

	p, err := h.uc.AdminUpdate(c.Request().Context(), c.Param("id"), payload)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, AdminProductResponse{Product: p, Message: "Product updated"})
}

func (h *AdminProductHandler) deleteProduct(c echo.Context) error {
	if err := h.uc.AdminDelete(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "Product deleted"})
}

// bindPayload はキー名の揺れを残したままbodyを読む。空bodyは空のPayload。
func bindPayload(c echo.Context) (catalog.Payload, error) {
	var p catalog.Payload
	if err := c.Bind(&p); err != nil {
		return nil, err
	}
	if p == nil {
		p = catalog.Payload{}
	}
	return p, nil
}
