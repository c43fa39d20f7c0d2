package queries

import (
	"context"

	"salon-storefront/internal/domain/review"
)

//go:generate mockgen -source=review.go -destination=../../../tests/mock/queries/review.go -package=mock_queries

type ReviewReadStore interface {
	Find(ctx context.Context, filter ReviewFilter, limit int64) ([]*review.Review, error)
}

type ReviewQueries interface {
	List(ctx context.Context, filter ReviewFilter) ([]*review.Review, error)
}

type reviewQueriesImpl struct {
	store ReviewReadStore
}

func NewReviewQueries(store ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{store: store}
}

// List returns reviews newest first. The public site asks for
// approved=true; the admin panel omits the filter.
func (q *reviewQueriesImpl) List(ctx context.Context, filter ReviewFilter) ([]*review.Review, error) {
	return q.store.Find(ctx, filter, ListLimit)
}
