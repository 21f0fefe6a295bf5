package model

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// 注文明細（注文時点のスナップショット）
type OrderItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Color       string  `json:"product_color,omitempty"`
	Quantity    int64   `json:"quantity"`
	Price       float64 `json:"price"`
}

// 注文は別サービスが作成する。ここでは参照のみ。
type Order struct {
	ID              string      `gorm:"primaryKey;type:varchar(24)" json:"_id"`
	UserID          string      `gorm:"column:user_id;type:varchar(24);not null;index" json:"user_id"`
	Status          OrderStatus `gorm:"column:order_status;type:varchar(20);not null;index" json:"order_status"`
	Items           []OrderItem `gorm:"column:items;serializer:json" json:"items"`
	TotalPrice      float64     `gorm:"column:total_price;not null;default:0" json:"total_price"`
	ShippingAddress string      `gorm:"column:shipping_address;type:text" json:"shipping_address,omitempty"`
	CreatedAt       time.Time   `gorm:"not null;autoCreateTime;index" json:"createdAt"`
	UpdatedAt       time.Time   `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}
