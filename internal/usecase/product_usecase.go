package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"shopapi/internal/catalog"
	"shopapi/internal/domain/model"
	repo "shopapi/internal/repository"
)

const (
	msgProductNotFound   = "Product not found"
	msgInvalidProductID  = "Invalid product id"
	msgRequiredFields    = "Required field still empty. Please fill the required field before try again"
	msgNoChanges         = "No changes provided"
	msgNoUserID          = "Unauthorized - no user ID found"
	msgInternalServerErr = "Internal Server Error"
)

type ProductUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

// GET /productdetail/:product_name
func (u *ProductUsecase) ListByName(ctx context.Context, name string) ([]model.Product, error) {
	items, err := u.productRepo.ListByName(ctx, name)
	if err != nil {
		return nil, WrapHTTPError(http.StatusInternalServerError, msgInternalServerErr, err)
	}
	if items == nil {
		items = []model.Product{}
	}
	return items, nil
}

// GET /productlist
func (u *ProductUsecase) ListSummaries(ctx context.Context) ([]model.ProductSummary, error) {
	items, err := u.productRepo.ListSummaries(ctx)
	if err != nil {
		return nil, WrapHTTPError(http.StatusInternalServerError, msgInternalServerErr, err)
	}
	if items == nil {
		items = []model.ProductSummary{}
	}
	return items, nil
}

// ===== Admin（UI形で返す） =====

func (u *ProductUsecase) AdminList(ctx context.Context) ([]catalog.UIProduct, error) {
	docs, err := u.productRepo.ListAll(ctx)
	if err != nil {
		return nil, WrapHTTPError(http.StatusInternalServerError, msgInternalServerErr, err)
	}
	return catalog.ToUIShapes(docs), nil
}

func (u *ProductUsecase) AdminGet(ctx context.Context, id string) (catalog.UIProduct, error) {
	if !model.IsValidID(id) {
		return catalog.UIProduct{}, NewHTTPError(http.StatusBadRequest, msgInvalidProductID)
	}
	doc, err := u.productRepo.FindByID(ctx, id)
	if err != nil {
		return catalog.UIProduct{}, productLookupError(err)
	}
	return catalog.ToUIShape(doc), nil
}

type AdminCreateOutput struct {
	Products []catalog.UIProduct
	// variances から複数作ったかどうか
	FromVariances bool
}

// AdminCreate は variances をバリアントごとのレコードに分けて保存する。
// 有効なバリアントが無ければトップレベルの項目から1件だけ作る。
func (u *ProductUsecase) AdminCreate(ctx context.Context, userID string, payload catalog.Payload) (AdminCreateOutput, error) {
	shared := catalog.SharedFieldsFrom(payload)
	if shared.Name == "" || shared.Category == "" {
		return AdminCreateOutput{}, NewHTTPError(http.StatusBadRequest, msgRequiredFields)
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return AdminCreateOutput{}, NewHTTPError(http.StatusUnauthorized, msgNoUserID)
	}
	shared.UserID = userID

	docs := catalog.ExtractVariantRecords(shared, payload.Variants())
	fromVariances := len(docs) > 0
	if !fromVariances {
		// variances が全部空ならトップレベルの項目で1件作る
		docs = []model.Product{shared.Record(catalog.VariantFrom(payload))}
	}

	created, err := u.productRepo.CreateMany(ctx, docs)
	if err != nil {
		return AdminCreateOutput{}, WrapHTTPError(http.StatusInternalServerError, msgInternalServerErr, err)
	}
	return AdminCreateOutput{
		Products:      catalog.ToUIShapes(created),
		FromVariances: fromVariances,
	}, nil
}

// AdminUpdate は送られた項目だけ更新する。
// 管理者ロールのルートなので作成者以外の管理者も更新できる。
func (u *ProductUsecase) AdminUpdate(ctx context.Context, id string, payload catalog.Payload) (catalog.UIProduct, error) {
	if !model.IsValidID(id) {
		return catalog.UIProduct{}, NewHTTPError(http.StatusBadRequest, msgInvalidProductID)
	}

	patch := catalog.ToDBPatch(payload)
	if patch.IsEmpty() {
		return catalog.UIProduct{}, NewHTTPError(http.StatusBadRequest, msgNoChanges)
	}
	// 必須項目を空にする更新は不可
	if (patch.Name != nil && *patch.Name == "") || (patch.Category != nil && *patch.Category == "") {
		return catalog.UIProduct{}, NewHTTPError(http.StatusBadRequest, msgRequiredFields)
	}

	doc, err := u.productRepo.Update(ctx, id, patch)
	if err != nil {
		return catalog.UIProduct{}, productLookupError(err)
	}
	return catalog.ToUIShape(doc), nil
}

func (u *ProductUsecase) AdminDelete(ctx context.Context, id string) error {
	if !model.IsValidID(id) {
		return NewHTTPError(http.StatusBadRequest, msgInvalidProductID)
	}
	if err := u.productRepo.Delete(ctx, id); err != nil {
		return productLookupError(err)
	}
	return nil
}

func productLookupError(err error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, msgProductNotFound)
	}
	return WrapHTTPError(http.StatusInternalServerError, msgInternalServerErr, err)
}
