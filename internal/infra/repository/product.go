package repository

import (
	"context"

	"salon-storefront/internal/domain/product"
	"salon-storefront/internal/infra/db"
	"salon-storefront/internal/infra/docstore"
	"salon-storefront/internal/infra/repository/converter"
	"salon-storefront/internal/usecase/queries"

	"go.mongodb.org/mongo-driver/bson"
)

// ProductRepository serves both the read and the write side of products.
type ProductRepository struct {
	store *docstore.Store[converter.ProductDocument]
}

func NewProductRepository(coll docstore.Collection) *ProductRepository {
	return &ProductRepository{store: docstore.New[converter.ProductDocument](coll, db.CollectionProducts)}
}

func (r *ProductRepository) Find(ctx context.Context, filter queries.ProductFilter, limit int64) ([]*product.Product, error) {
	q := bson.D{}
	if filter.Category != nil {
		q = append(q, bson.E{Key: "category", Value: *filter.Category})
	}
	if filter.Featured != nil {
		q = append(q, bson.E{Key: "featured", Value: *filter.Featured})
	}

	docs, err := r.store.Find(ctx, docstore.Query{Filter: q, Limit: limit})
	if err != nil {
		return nil, err
	}
	out := make([]*product.Product, 0, len(docs))
	for _, d := range docs {
		out = append(out, converter.ProductFromDocument(d))
	}
	return out, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*product.Product, error) {
	d, err := r.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.ProductFromDocument(*d), nil
}

func (r *ProductRepository) Insert(ctx context.Context, p *product.Product) (string, error) {
	d := converter.ProductToDocument(p)
	return r.store.Insert(ctx, &d)
}

func (r *ProductRepository) Replace(ctx context.Context, id string, p *product.Product) error {
	d := converter.ProductToDocument(p)
	return r.store.ReplaceByID(ctx, id, &d)
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	return r.store.DeleteByID(ctx, id)
}

func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	return r.store.Count(ctx, nil)
}

func (r *ProductRepository) InsertMany(ctx context.Context, ps []*product.Product) error {
	docs := make([]converter.ProductDocument, 0, len(ps))
	for _, p := range ps {
		docs = append(docs, converter.ProductToDocument(p))
	}
	return r.store.InsertMany(ctx, docs)
}
