package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shopapi/internal/domain/model"
	repo "shopapi/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProductStore struct {
	coll *mongo.Collection
}

func NewProductStore(db *mongo.Database) *ProductStore {
	return &ProductStore{coll: db.Collection(ProductsCollection)}
}

func (s *ProductStore) ListByName(ctx context.Context, name string) ([]model.Product, error) {
	return s.find(ctx, bson.M{"product_name": name})
}

func (s *ProductStore) ListAll(ctx context.Context) ([]model.Product, error) {
	return s.find(ctx, bson.M{})
}

func (s *ProductStore) ListSummaries(ctx context.Context) ([]model.ProductSummary, error) {
	cur, err := s.coll.Aggregate(ctx, summaryPipeline())
	if err != nil {
		return nil, fmt.Errorf("aggregate summaries: %w", err)
	}
	var docs []summaryDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode summaries: %w", err)
	}

	out := make([]model.ProductSummary, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toModel())
	}
	return out, nil
}

func (s *ProductStore) FindByID(ctx context.Context, id string) (model.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.Product{}, repo.ErrNotFound
	}

	var d productDoc
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return d.toModel(), nil
}

// CreateMany は insertMany 1回で保存する
func (s *ProductStore) CreateMany(ctx context.Context, products []model.Product) ([]model.Product, error) {
	if len(products) == 0 {
		return []model.Product{}, nil
	}

	now := time.Now().UTC().Truncate(time.Millisecond)
	docs := make([]interface{}, 0, len(products))
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if p.ID == "" {
			p.ID = model.NewID()
		}
		p.CreatedAt = now
		p.UpdatedAt = now

		d, err := newProductDoc(p)
		if err != nil {
			return nil, fmt.Errorf("product id %q: %w", p.ID, err)
		}
		docs = append(docs, d)
		out = append(out, d.toModel())
	}

	if _, err := s.coll.InsertMany(ctx, docs); err != nil {
		return nil, fmt.Errorf("insert products: %w", err)
	}
	return out, nil
}

func (s *ProductStore) Update(ctx context.Context, id string, patch model.ProductPatch) (model.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.Product{}, repo.ErrNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var d productDoc
	err = s.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, patchUpdate(patch, time.Now().UTC()), opts).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return d.toModel(), nil
}

func (s *ProductStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repo.ErrNotFound
	}

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (s *ProductStore) find(ctx context.Context, filter bson.M) ([]model.Product, error) {
	cur, err := s.coll.Find(ctx, filter, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	var docs []productDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	out := make([]model.Product, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toModel())
	}
	return out, nil
}
