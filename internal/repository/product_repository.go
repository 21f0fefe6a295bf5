package repository

import (
	"context"
	"errors"

	"shopapi/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 商品レコードの永続化だけを約束。
// 1レコード = 1バリアント。商品名でのまとめは読み出し時に行う。
type ProductRepository interface {
	// 指定名のレコードを新しい順で返す
	ListByName(ctx context.Context, name string) ([]model.Product, error)
	// 全レコードを新しい順で返す
	ListAll(ctx context.Context) ([]model.Product, error)
	// 商品名ごとの最安レコード。minPrice 昇順、同額は _id 昇順
	ListSummaries(ctx context.Context) ([]model.ProductSummary, error)

	FindByID(ctx context.Context, id string) (model.Product, error)

	// CreateMany は ID と作成日時を埋めて保存し、保存後のレコードを返す。
	CreateMany(ctx context.Context, products []model.Product) ([]model.Product, error)
	// Update は patch を当てた後のレコードを返す。無ければ ErrNotFound。
	Update(ctx context.Context, id string, patch model.ProductPatch) (model.Product, error)
	Delete(ctx context.Context, id string) error
}
