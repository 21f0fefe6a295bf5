package usecase

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"shopapi/internal/domain/model"
	repo "shopapi/internal/repository"

	"golang.org/x/sync/errgroup"
)

const (
	msgUnauthorized   = "Unauthorized"
	msgInvalidOrderID = "Invalid order id"
	msgOrderNotFound  = "Order not found"
)

type OrderHistoryUsecase struct {
	orderRepo repo.OrderRepository
}

func NewOrderHistoryUsecase(orderRepo repo.OrderRepository) *OrderHistoryUsecase {
	return &OrderHistoryUsecase{orderRepo: orderRepo}
}

type OrderHistoryOutput struct {
	Orders []model.Order `json:"orders"`
	Total  int64         `json:"total"`
	Page   int           `json:"page"`
	Limit  int           `json:"limit"`
}

// ListMyOrders は一覧と件数を並行に取る。どちらかが失敗したら全体を失敗にする。
func (u *OrderHistoryUsecase) ListMyOrders(ctx context.Context, userID string, params url.Values) (OrderHistoryOutput, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return OrderHistoryOutput{}, NewHTTPError(http.StatusUnauthorized, msgUnauthorized)
	}

	q := BuildOrderQuery(userID, params)

	var (
		orders []model.Order
		total  int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = u.orderRepo.ListHistory(gctx, q)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = u.orderRepo.CountHistory(gctx, q.Filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return OrderHistoryOutput{}, WrapHTTPError(http.StatusInternalServerError, msgInternalServerErr, err)
	}

	if orders == nil {
		orders = []model.Order{}
	}
	return OrderHistoryOutput{
		Orders: orders,
		Total:  total,
		Page:   q.Page,
		Limit:  q.Limit,
	}, nil
}

// GetMyOrder は本人の注文だけ返す。IDの形式はストアに問い合わせる前に確認する。
func (u *OrderHistoryUsecase) GetMyOrder(ctx context.Context, userID, orderID string) (model.Order, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return model.Order{}, NewHTTPError(http.StatusUnauthorized, msgUnauthorized)
	}
	if !model.IsValidID(orderID) {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, msgInvalidOrderID)
	}

	o, err := u.orderRepo.FindOwned(ctx, orderID, userID)
	if errors.Is(err, repo.ErrNotFound) {
		// 他人の注文も「無い」扱い
		return model.Order{}, NewHTTPError(http.StatusNotFound, msgOrderNotFound)
	}
	if err != nil {
		return model.Order{}, WrapHTTPError(http.StatusInternalServerError, msgInternalServerErr, err)
	}
	return o, nil
}
