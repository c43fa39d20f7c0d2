package repository

import (
	"context"

	"salon-storefront/internal/domain/review"
	"salon-storefront/internal/infra/db"
	"salon-storefront/internal/infra/docstore"
	"salon-storefront/internal/infra/repository/converter"
	"salon-storefront/internal/usecase/queries"

	"go.mongodb.org/mongo-driver/bson"
)

type ReviewRepository struct {
	store *docstore.Store[converter.ReviewDocument]
}

func NewReviewRepository(coll docstore.Collection) *ReviewRepository {
	return &ReviewRepository{store: docstore.New[converter.ReviewDocument](coll, db.CollectionReviews)}
}

func (r *ReviewRepository) Find(ctx context.Context, filter queries.ReviewFilter, limit int64) ([]*review.Review, error) {
	q := bson.D{}
	if filter.Approved != nil {
		q = append(q, bson.E{Key: "approved", Value: *filter.Approved})
	}

	docs, err := r.store.Find(ctx, docstore.Query{Filter: q, Sort: newestFirst, Limit: limit})
	if err != nil {
		return nil, err
	}
	out := make([]*review.Review, 0, len(docs))
	for _, d := range docs {
		out = append(out, converter.ReviewFromDocument(d))
	}
	return out, nil
}

func (r *ReviewRepository) FindByID(ctx context.Context, id string) (*review.Review, error) {
	d, err := r.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.ReviewFromDocument(*d), nil
}

func (r *ReviewRepository) Insert(ctx context.Context, rv *review.Review) (string, error) {
	d := converter.ReviewToDocument(rv)
	return r.store.Insert(ctx, &d)
}

func (r *ReviewRepository) SetApproval(ctx context.Context, id string, approved bool) error {
	return r.store.SetByID(ctx, id, bson.D{{Key: "approved", Value: approved}})
}

func (r *ReviewRepository) InsertMany(ctx context.Context, rs []*review.Review) error {
	docs := make([]converter.ReviewDocument, 0, len(rs))
	for _, rv := range rs {
		docs = append(docs, converter.ReviewToDocument(rv))
	}
	return r.store.InsertMany(ctx, docs)
}
