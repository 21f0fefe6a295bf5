package repository

import (
	"shopapi/internal/domain/model"

	"gorm.io/gorm"
)

// AutoMigrate は商品と注文のテーブルを作る（注文の書き込みは別サービス）。
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.Product{}, &model.Order{})
}
