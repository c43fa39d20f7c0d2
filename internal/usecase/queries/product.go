package queries

import (
	"context"

	"salon-storefront/internal/domain/product"
	"salon-storefront/internal/infra"
)

//go:generate mockgen -source=product.go -destination=../../../tests/mock/queries/product.go -package=mock_queries

type ProductReadStore interface {
	Find(ctx context.Context, filter ProductFilter, limit int64) ([]*product.Product, error)
	FindByID(ctx context.Context, id string) (*product.Product, error)
}

type ProductQueries interface {
	List(ctx context.Context, filter ProductFilter) ([]*product.Product, error)
	GetByID(ctx context.Context, id string) (*product.Product, error)
}

type productQueriesImpl struct {
	store ProductReadStore
}

func NewProductQueries(store ProductReadStore) ProductQueries {
	return &productQueriesImpl{store: store}
}

// List returns products in store order.
func (q *productQueriesImpl) List(ctx context.Context, filter ProductFilter) ([]*product.Product, error) {
	return q.store.Find(ctx, filter, ListLimit)
}

func (q *productQueriesImpl) GetByID(ctx context.Context, id string) (*product.Product, error) {
	p, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, product.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}
