package mongostore

import (
	"time"

	"shopapi/internal/domain/model"
	repo "shopapi/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// 新しい順。同時刻は _id 降順
var newestFirst = bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}

// orderFilter は {user_id, order_status?, createdAt: {$gte?, $lte?}} を作る。
func orderFilter(f repo.OrderHistoryFilter) bson.M {
	filter := bson.M{"user_id": userRef(f.UserID)}
	if f.Status != "" {
		filter["order_status"] = f.Status
	}

	rng := bson.M{}
	if f.From != nil {
		rng["$gte"] = *f.From
	}
	if f.To != nil {
		rng["$lte"] = *f.To
	}
	if len(rng) > 0 {
		filter["createdAt"] = rng
	}
	return filter
}

func orderSort(s repo.OrderSort) bson.D {
	dir := -1
	if s == repo.OrderSortCreatedAsc {
		dir = 1
	}
	return bson.D{{Key: "createdAt", Value: dir}, {Key: "_id", Value: dir}}
}

// summaryPipeline は商品名ごとに最安ドキュメントを1件選ぶ。
// 価格→_id の順で並べてから $first を取るので、同額なら _id が小さい方。
func summaryPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{{Key: "product_price", Value: 1}, {Key: "_id", Value: 1}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$product_name"},
			{Key: "product_id", Value: bson.D{{Key: "$first", Value: "$_id"}}},
			{Key: "product_brand", Value: bson.D{{Key: "$first", Value: "$product_brand"}}},
			{Key: "product_category", Value: bson.D{{Key: "$first", Value: "$product_category"}}},
			{Key: "product_tag", Value: bson.D{{Key: "$first", Value: "$product_tag"}}},
			{Key: "product_image", Value: bson.D{{Key: "$first", Value: "$product_image"}}},
			{Key: "minPrice", Value: bson.D{{Key: "$min", Value: "$product_price"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "minPrice", Value: 1}, {Key: "product_id", Value: 1}}}},
	}
}

// patchUpdate は送られた項目だけの $set を作る。
func patchUpdate(p model.ProductPatch, now time.Time) bson.M {
	set := bson.M{"updatedAt": now}
	if p.Name != nil {
		set["product_name"] = *p.Name
	}
	if p.Brand != nil {
		set["product_brand"] = *p.Brand
	}
	if p.Category != nil {
		set["product_category"] = *p.Category
	}
	if p.Description != nil {
		set["product_description"] = *p.Description
	}
	if p.Tags != nil {
		tags := append([]string{}, (*p.Tags)...)
		set["product_tag"] = tags
	}
	if p.Color != nil {
		set["product_color"] = *p.Color
	}
	if p.Price != nil {
		set["product_price"] = *p.Price
	}
	if p.Stock != nil {
		set["product_stock"] = *p.Stock
	}
	if p.Image != nil {
		set["product_image"] = *p.Image
	}
	return bson.M{"$set": set}
}
