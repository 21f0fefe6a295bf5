package mongostore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes は起動時に1回呼ぶ。既にあれば何もしない。
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	products := []mongo.IndexModel{
		{Keys: bson.D{{Key: "product_name", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "product_price", Value: 1}, {Key: "_id", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}
	if _, err := db.Collection(ProductsCollection).Indexes().CreateMany(ctx, products); err != nil {
		return fmt.Errorf("product indexes: %w", err)
	}

	orders := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "order_status", Value: 1}, {Key: "createdAt", Value: -1}}},
	}
	if _, err := db.Collection(OrdersCollection).Indexes().CreateMany(ctx, orders); err != nil {
		return fmt.Errorf("order indexes: %w", err)
	}
	return nil
}
