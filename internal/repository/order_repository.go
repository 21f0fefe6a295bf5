package repository

import (
	"context"
	"time"

	"shopapi/internal/domain/model"
)

type OrderSort string

const (
	OrderSortCreatedDesc OrderSort = "createdAt_desc"
	OrderSortCreatedAsc  OrderSort = "createdAt_asc"
)

// 注文履歴の絞り込み。UserID は必須、他は任意。
type OrderHistoryFilter struct {
	UserID string
	Status string
	From   *time.Time
	To     *time.Time
}

type OrderHistoryQuery struct {
	Filter OrderHistoryFilter
	Sort   OrderSort
	Page   int
	Limit  int
}

func (q OrderHistoryQuery) Offset() int {
	if q.Page < 1 {
		return 0
	}
	return (q.Page - 1) * q.Limit
}

// 注文は別サブシステムが作る。ここでは読むだけ。
type OrderRepository interface {
	ListHistory(ctx context.Context, q OrderHistoryQuery) ([]model.Order, error)
	// ページングなしで同じ条件の件数
	CountHistory(ctx context.Context, f OrderHistoryFilter) (int64, error)
	// _id と user_id の両方が一致するものだけ。無ければ ErrNotFound
	FindOwned(ctx context.Context, orderID, userID string) (model.Order, error)
}
