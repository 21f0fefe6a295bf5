package usecase_test

import (
	"context"

	"shopapi/internal/domain/model"
	repo "shopapi/internal/repository"

	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) ListByName(ctx context.Context, name string) ([]model.Product, error) {
	args := m.Called(ctx, name)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) ListAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) ListSummaries(ctx context.Context) ([]model.ProductSummary, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.ProductSummary)
	return items, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id string) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) CreateMany(ctx context.Context, products []model.Product) ([]model.Product, error) {
	args := m.Called(ctx, products)
	created, _ := args.Get(0).([]model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, id string, patch model.ProductPatch) (model.Product, error) {
	args := m.Called(ctx, id, patch)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ repo.ProductRepository = (*ProductRepoMock)(nil)

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) ListHistory(ctx context.Context, q repo.OrderHistoryQuery) ([]model.Order, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Order)
	return items, args.Error(1)
}

func (m *OrderRepoMock) CountHistory(ctx context.Context, f repo.OrderHistoryFilter) (int64, error) {
	args := m.Called(ctx, f)
	n, _ := args.Get(0).(int64)
	return n, args.Error(1)
}

func (m *OrderRepoMock) FindOwned(ctx context.Context, orderID, userID string) (model.Order, error) {
	args := m.Called(ctx, orderID, userID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

var _ repo.OrderRepository = (*OrderRepoMock)(nil)
