package mongostore

import (
	"context"
	"errors"
	"fmt"

	"shopapi/internal/domain/model"
	repo "shopapi/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// 注文は読むだけ
type OrderStore struct {
	coll *mongo.Collection
}

func NewOrderStore(db *mongo.Database) *OrderStore {
	return &OrderStore{coll: db.Collection(OrdersCollection)}
}

func (s *OrderStore) ListHistory(ctx context.Context, q repo.OrderHistoryQuery) ([]model.Order, error) {
	opts := options.Find().
		SetSort(orderSort(q.Sort)).
		SetSkip(int64(q.Offset())).
		SetLimit(int64(q.Limit))

	cur, err := s.coll.Find(ctx, orderFilter(q.Filter), opts)
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}
	var docs []orderDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}

	out := make([]model.Order, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toModel())
	}
	return out, nil
}

func (s *OrderStore) CountHistory(ctx context.Context, f repo.OrderHistoryFilter) (int64, error) {
	n, err := s.coll.CountDocuments(ctx, orderFilter(f))
	if err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}

// _id と user_id の両方で絞る（他人の注文は見つからない扱い）
func (s *OrderStore) FindOwned(ctx context.Context, orderID, userID string) (model.Order, error) {
	oid, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return model.Order{}, repo.ErrNotFound
	}

	var d orderDoc
	err = s.coll.FindOne(ctx, bson.M{"_id": oid, "user_id": userRef(userID)}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return d.toModel(), nil
}
