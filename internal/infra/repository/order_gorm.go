package repository

import (
	"context"
	"errors"

	"shopapi/internal/domain/model"
	repo "shopapi/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) ListHistory(ctx context.Context, q repo.OrderHistoryQuery) ([]model.Order, error) {
	var items []model.Order
	err := historyScope(r.db.WithContext(ctx).Model(&model.Order{}), q.Filter).
		Order(orderClause(q.Sort)).
		Order("id " + sortDirection(q.Sort)).
		Limit(q.Limit).
		Offset(q.Offset()).
		Find(&items).Error
	if err != nil {
		return []model.Order{}, err
	}
	return items, nil
}

func (r *OrderGormRepository) CountHistory(ctx context.Context, f repo.OrderHistoryFilter) (int64, error) {
	var total int64
	if err := historyScope(r.db.WithContext(ctx).Model(&model.Order{}), f).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *OrderGormRepository) FindOwned(ctx context.Context, orderID, userID string) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

// user_id は必ず、status / 期間は指定があるときだけ
func historyScope(tx *gorm.DB, f repo.OrderHistoryFilter) *gorm.DB {
	tx = tx.Where("user_id = ?", f.UserID)
	if f.Status != "" {
		tx = tx.Where("order_status = ?", f.Status)
	}
	if f.From != nil {
		tx = tx.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		tx = tx.Where("created_at <= ?", *f.To)
	}
	return tx
}

func orderClause(s repo.OrderSort) string {
	return "created_at " + sortDirection(s)
}

func sortDirection(s repo.OrderSort) string {
	if s == repo.OrderSortCreatedAsc {
		return "asc"
	}
	return "desc"
}
