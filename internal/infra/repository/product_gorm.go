package repository

import (
	"context"
	"errors"
	"time"

	"shopapi/internal/catalog"
	"shopapi/internal/domain/model"
	repo "shopapi/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// 新しい順（同時刻はID降順）
func (r *ProductGormRepository) ListByName(ctx context.Context, name string) ([]model.Product, error) {
	products := []model.Product{}
	err := r.db.WithContext(ctx).
		Where("product_name = ?", name).
		Order("created_at desc").Order("id desc").
		Find(&products).Error
	if err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

func (r *ProductGormRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	products := []model.Product{}
	err := r.db.WithContext(ctx).
		Order("created_at desc").Order("id desc").
		Find(&products).Error
	if err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

// 集計はGoで行う（Mongo側のパイプラインと同じ規則）
func (r *ProductGormRepository) ListSummaries(ctx context.Context) ([]model.ProductSummary, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Select("id", "product_name", "product_brand", "product_category", "product_tag", "product_image", "product_price").
		Find(&products).Error
	if err != nil {
		return []model.ProductSummary{}, err
	}
	return catalog.GroupByName(products), nil
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, id string) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// まとめて作成（1トランザクション）
func (r *ProductGormRepository) CreateMany(ctx context.Context, products []model.Product) ([]model.Product, error) {
	if len(products) == 0 {
		return []model.Product{}, nil
	}

	now := time.Now().UTC()
	rows := make([]model.Product, len(products))
	for i, p := range products {
		if p.ID == "" {
			p.ID = model.NewID()
		}
		p.CreatedAt = now
		p.UpdatedAt = now
		rows[i] = p
	}

	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return []model.Product{}, err
	}
	return rows, nil
}

// 部分更新して更新後を返す
func (r *ProductGormRepository) Update(ctx context.Context, id string, patch model.ProductPatch) (model.Product, error) {
	var out model.Product
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cur model.Product
		if err := tx.First(&cur, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repo.ErrNotFound
			}
			return err
		}

		next := patch.Apply(cur)
		next.UpdatedAt = time.Now().UTC()
		if err := tx.Save(&next).Error; err != nil {
			return err
		}
		out = next
		return nil
	})
	if err != nil {
		return model.Product{}, err
	}
	return out, nil
}

// 商品削除
func (r *ProductGormRepository) Delete(ctx context.Context, id string) error {
	res := deleteByID(r.db.WithContext(ctx), id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func deleteByID(tx *gorm.DB, id string) *gorm.DB {
	return tx.Delete(&model.Product{}, "id = ?", id)
}
