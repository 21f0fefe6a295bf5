package model

import (
	"time"

	"github.com/lib/pq"
)

// 1バリアント = 1レコード。同じ product_name のレコード群が1つの商品になる。
type Product struct {
	ID          string         `gorm:"primaryKey;type:varchar(24)" json:"_id"`
	Name        string         `gorm:"column:product_name;type:varchar(255);not null;index" json:"product_name"`
	Brand       string         `gorm:"column:product_brand;type:varchar(255)" json:"product_brand"`
	Category    string         `gorm:"column:product_category;type:varchar(255);not null" json:"product_category"`
	Description string         `gorm:"column:product_description;type:text" json:"product_description"`
	Tags        pq.StringArray `gorm:"column:product_tag;type:text[]" json:"product_tag"`
	Color       string         `gorm:"column:product_color;type:varchar(100)" json:"product_color"`
	Price       float64        `gorm:"column:product_price;not null;default:0" json:"product_price"`
	Stock       int64          `gorm:"column:product_stock;not null;default:0" json:"product_stock"`
	Image       string         `gorm:"column:product_image;type:text" json:"product_image"`
	UserID      string         `gorm:"column:user_id;type:varchar(24);index" json:"user_id,omitempty"`
	CreatedAt   time.Time      `gorm:"not null;autoCreateTime;index" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}

// 部分更新。nilの項目は変更しない。
type ProductPatch struct {
	Name        *string
	Brand       *string
	Category    *string
	Description *string
	Tags        *[]string
	Color       *string
	Price       *float64
	Stock       *int64
	Image       *string
}

func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Brand == nil && p.Category == nil && p.Description == nil &&
		p.Tags == nil && p.Color == nil && p.Price == nil && p.Stock == nil && p.Image == nil
}

// Apply は patch をレコードに反映したコピーを返す。
func (p ProductPatch) Apply(cur Product) Product {
	if p.Name != nil {
		cur.Name = *p.Name
	}
	if p.Brand != nil {
		cur.Brand = *p.Brand
	}
	if p.Category != nil {
		cur.Category = *p.Category
	}
	if p.Description != nil {
		cur.Description = *p.Description
	}
	if p.Tags != nil {
		cur.Tags = append(pq.StringArray{}, (*p.Tags)...)
	}
	if p.Color != nil {
		cur.Color = *p.Color
	}
	if p.Price != nil {
		cur.Price = *p.Price
	}
	if p.Stock != nil {
		cur.Stock = *p.Stock
	}
	if p.Image != nil {
		cur.Image = *p.Image
	}
	return cur
}

// 商品名ごとの集計結果（最安バリアントの情報）
type ProductSummary struct {
	ProductID string   `json:"product_id"`
	Name      string   `json:"product_name"`
	Brand     string   `json:"product_brand"`
	Category  string   `json:"product_category"`
	Tags      []string `json:"product_tag"`
	Image     string   `json:"product_image"`
	MinPrice  float64  `json:"minPrice"`
}
