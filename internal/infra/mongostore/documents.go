// Package mongostore は商品と注文の MongoDB 実装。
package mongostore

import (
	"time"

	"shopapi/internal/domain/model"

	"github.com/lib/pq"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ProductsCollection = "products"
	OrdersCollection   = "orders"
)

// 1バリアント = 1ドキュメント
type productDoc struct {
	ID          primitive.ObjectID `bson:"_id"`
	Name        string             `bson:"product_name"`
	Brand       string             `bson:"product_brand"`
	Category    string             `bson:"product_category"`
	Description string             `bson:"product_description"`
	Tags        []string           `bson:"product_tag"`
	Color       string             `bson:"product_color"`
	Price       float64            `bson:"product_price"`
	Stock       int64              `bson:"product_stock"`
	Image       string             `bson:"product_image"`
	UserID      interface{}        `bson:"user_id,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

type summaryDoc struct {
	Name      string             `bson:"_id"`
	ProductID primitive.ObjectID `bson:"product_id"`
	Brand     string             `bson:"product_brand"`
	Category  string             `bson:"product_category"`
	Tags      []string           `bson:"product_tag"`
	Image     string             `bson:"product_image"`
	MinPrice  float64            `bson:"minPrice"`
}

type orderItemDoc struct {
	ProductID   interface{} `bson:"product_id"`
	ProductName string      `bson:"product_name"`
	Color       string      `bson:"product_color,omitempty"`
	Quantity    int64       `bson:"quantity"`
	Price       float64     `bson:"price"`
}

type orderDoc struct {
	ID              primitive.ObjectID `bson:"_id"`
	UserID          interface{}        `bson:"user_id"`
	Status          string             `bson:"order_status"`
	Items           []orderItemDoc     `bson:"items"`
	TotalPrice      float64            `bson:"total_price"`
	ShippingAddress string             `bson:"shipping_address,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt"`
}

// ユーザーIDはObjectIDで保存する。hexでなければ文字列のまま。
func userRef(id string) interface{} {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return oid
	}
	return id
}

// ObjectID / 文字列どちらでも文字列にそろえる
func refString(v interface{}) string {
	switch t := v.(type) {
	case primitive.ObjectID:
		return t.Hex()
	case string:
		return t
	}
	return ""
}

func newProductDoc(p model.Product) (productDoc, error) {
	oid, err := primitive.ObjectIDFromHex(p.ID)
	if err != nil {
		return productDoc{}, err
	}
	tags := []string{}
	if p.Tags != nil {
		tags = append(tags, p.Tags...)
	}
	d := productDoc{
		ID:          oid,
		Name:        p.Name,
		Brand:       p.Brand,
		Category:    p.Category,
		Description: p.Description,
		Tags:        tags,
		Color:       p.Color,
		Price:       p.Price,
		Stock:       p.Stock,
		Image:       p.Image,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.UserID != "" {
		d.UserID = userRef(p.UserID)
	}
	return d, nil
}

func (d productDoc) toModel() model.Product {
	// product_tag が無いドキュメントも [] で返す
	tags := pq.StringArray{}
	if d.Tags != nil {
		tags = append(tags, d.Tags...)
	}
	return model.Product{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Brand:       d.Brand,
		Category:    d.Category,
		Description: d.Description,
		Tags:        tags,
		Color:       d.Color,
		Price:       d.Price,
		Stock:       d.Stock,
		Image:       d.Image,
		UserID:      refString(d.UserID),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (d summaryDoc) toModel() model.ProductSummary {
	tags := []string{}
	if d.Tags != nil {
		tags = append(tags, d.Tags...)
	}
	return model.ProductSummary{
		ProductID: d.ProductID.Hex(),
		Name:      d.Name,
		Brand:     d.Brand,
		Category:  d.Category,
		Tags:      tags,
		Image:     d.Image,
		MinPrice:  d.MinPrice,
	}
}

func (d orderDoc) toModel() model.Order {
	items := make([]model.OrderItem, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, model.OrderItem{
			ProductID:   refString(it.ProductID),
			ProductName: it.ProductName,
			Color:       it.Color,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}
	return model.Order{
		ID:              d.ID.Hex(),
		UserID:          refString(d.UserID),
		Status:          model.OrderStatus(d.Status),
		Items:           items,
		TotalPrice:      d.TotalPrice,
		ShippingAddress: d.ShippingAddress,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}
